package repository

import (
	"database/sql"
	"strings"

	"github.com/alexanderramin/trainsafe/internal/domain"
)

// nullableString converts an empty string to SQL NULL.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

func joinFlags(flags []domain.ReasonFlag) string {
	parts := make([]string, len(flags))
	for i, f := range flags {
		parts[i] = string(f)
	}
	return strings.Join(parts, ",")
}

func splitFlags(s string) []domain.ReasonFlag {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	flags := make([]domain.ReasonFlag, len(parts))
	for i, p := range parts {
		flags[i] = domain.ReasonFlag(p)
	}
	return flags
}

func overrideFromColumns(status, reason sql.NullString, applied int) *domain.OverrideMetadata {
	if !status.Valid {
		return nil
	}
	return &domain.OverrideMetadata{
		Status:  domain.SafetyStatus(status.String),
		Reason:  reason.String,
		Applied: intToBool(applied),
	}
}
