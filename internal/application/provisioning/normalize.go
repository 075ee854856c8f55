package provisioning

import (
	"strings"

	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
)

// NormalizeRows cleans raw uploaded rows into a canonical shape: keys are
// trimmed, the batch-selected role is attached when a row carries none, and
// the role value is lower-cased. Count and order are preserved; no row is
// ever dropped here, rejection happens only in validation.
func NormalizeRows(rows []domain.RawRow, batchRole string) []domain.RawRow {
	normalized := make([]domain.RawRow, 0, len(rows))
	for _, row := range rows {
		normalized = append(normalized, NormalizeRow(row, batchRole))
	}
	return normalized
}

func NormalizeRow(row domain.RawRow, batchRole string) domain.RawRow {
	cleaned := make(domain.RawRow, len(row)+1)
	for key, value := range row {
		cleaned[strings.TrimSpace(key)] = value
	}
	if cleaned["role"] == "" && batchRole != "" {
		cleaned["role"] = batchRole
	}
	if role, ok := cleaned["role"]; ok {
		cleaned["role"] = strings.ToLower(role)
	}
	return cleaned
}
