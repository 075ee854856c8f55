package provisioning

// RawRow is one uploaded row as parsed from the request body or a roster
// file. Keys may carry stray whitespace until normalization.
type RawRow map[string]string

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// Record is the tagged union of provisionable account shapes, discriminated
// by role and constructed only after boundary validation.
type Record interface {
	AccountRole() Role
	DisplayName() string
	// Identifier is the enrollment identifier credentials derive from:
	// admission number for students, employee id for teachers.
	Identifier() string
	SuppliedEmail() string
	Phone() string
	// RoleFields returns the role-specific profile document fields.
	RoleFields() map[string]any
}

type StudentRecord struct {
	Name            string
	AdmissionNumber string
	Class           string
	Section         string
	RollNumber      string
	ParentPhone     string
	PhoneNumber     string
	Email           string
}

func (s StudentRecord) AccountRole() Role     { return RoleStudent }
func (s StudentRecord) DisplayName() string   { return s.Name }
func (s StudentRecord) Identifier() string    { return s.AdmissionNumber }
func (s StudentRecord) SuppliedEmail() string { return s.Email }
func (s StudentRecord) Phone() string         { return s.PhoneNumber }

func (s StudentRecord) RoleFields() map[string]any {
	return map[string]any{
		"admissionNumber": s.AdmissionNumber,
		"class":           s.Class,
		"section":         s.Section,
		"rollNumber":      s.RollNumber,
		"parentPhone":     s.ParentPhone,
	}
}

type TeacherRecord struct {
	Name        string
	EmployeeID  string
	Subject     string
	PhoneNumber string
	Email       string
}

func (t TeacherRecord) AccountRole() Role     { return RoleTeacher }
func (t TeacherRecord) DisplayName() string   { return t.Name }
func (t TeacherRecord) Identifier() string    { return t.EmployeeID }
func (t TeacherRecord) SuppliedEmail() string { return t.Email }
func (t TeacherRecord) Phone() string         { return t.PhoneNumber }

func (t TeacherRecord) RoleFields() map[string]any {
	return map[string]any{
		"employeeId": t.EmployeeID,
		"subject":    t.Subject,
	}
}
