package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDonorNotFound       = errors.New("donor not found")
	ErrMobileAlreadyExists = errors.New("mobile number already registered")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidBloodGroup   = errors.New("invalid blood group")
	ErrInvalidAvailability = errors.New("availability must be either 'high' or 'low'")
	ErrInvalidDonorID      = errors.New("invalid donor id")
	ErrForbidden           = errors.New("donor profile belongs to another identity")
)

// Conflict fields reported alongside a uniqueness violation.
const (
	ConflictFieldMobile = "mobile"
	ConflictFieldEmail  = "email"
)

// ConflictField names the field behind a conflict error, or "" for any other error.
func ConflictField(err error) string {
	switch {
	case errors.Is(err, ErrMobileAlreadyExists):
		return ConflictFieldMobile
	case errors.Is(err, ErrEmailAlreadyExists):
		return ConflictFieldEmail
	}
	return ""
}

// translateUniqueViolation maps a store unique violation onto the conflict
// sentinel for the offending column; it returns nil for any other error.
func translateUniqueViolation(err error) error {
	switch {
	case isDuplicateKeyError(err, "mobile"):
		return ErrMobileAlreadyExists
	case isDuplicateKeyError(err, "email"):
		return ErrEmailAlreadyExists
	}
	return nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// on a constraint whose name contains constraintName
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
