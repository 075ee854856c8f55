package provisioning

import (
	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
)

// Per-row rejection reasons. These exact strings are part of the wire
// contract; admins match on them when fixing and re-uploading failed rows.
const (
	ReasonInvalidRole         = "Invalid role"
	ReasonMissingRoleName     = "Missing required fields (role, name)"
	ReasonMissingAdmissionNum = "Missing Admission Number"
	ReasonMissingEmployeeID   = "Missing Employee ID"
	ReasonMissingTeacherEmail = "Missing Email for teacher"
)

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ValidateRow checks one normalized row and builds the role-tagged record.
// Rules run in order and the first failure wins. No email or phone format
// validation happens here; the identity store is the authority on that.
func ValidateRow(row domain.RawRow) (domain.Record, error) {
	role := domain.Role(row["role"])
	if !role.Valid() {
		return nil, &ValidationError{Reason: ReasonInvalidRole}
	}
	if row["name"] == "" {
		return nil, &ValidationError{Reason: ReasonMissingRoleName}
	}

	switch role {
	case domain.RoleStudent:
		if row["admissionNumber"] == "" {
			return nil, &ValidationError{Reason: ReasonMissingAdmissionNum}
		}
		return domain.StudentRecord{
			Name:            row["name"],
			AdmissionNumber: row["admissionNumber"],
			Class:           row["class"],
			Section:         row["section"],
			RollNumber:      row["rollNumber"],
			ParentPhone:     row["parentPhone"],
			PhoneNumber:     row["phone"],
			Email:           row["email"],
		}, nil
	default:
		if row["employeeId"] == "" {
			return nil, &ValidationError{Reason: ReasonMissingEmployeeID}
		}
		if row["email"] == "" {
			return nil, &ValidationError{Reason: ReasonMissingTeacherEmail}
		}
		return domain.TeacherRecord{
			Name:        row["name"],
			EmployeeID:  row["employeeId"],
			Subject:     row["subject"],
			PhoneNumber: row["phone"],
			Email:       row["email"],
		}, nil
	}
}
