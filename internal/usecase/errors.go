package usecase

import (
	"errors"
	"fmt"
)

// Taksonomi error domain. Handler menerjemahkan ke status HTTP:
// ValidationError -> 400, ErrForbidden -> 403, ErrNotFound -> 404,
// ConflictError -> 409.
var (
	ErrNotFound  = errors.New("data tidak ditemukan")
	ErrForbidden = errors.New("akses ditolak")
)

// ConflictError: request-nya valid, tapi entitas sedang tidak berada di
// status yang mengizinkan transisi (misal approve cuti yang sudah diputuskan).
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func conflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

// ValidationError membawa detail kesalahan per field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for field, msg := range e.Fields {
		return field + ": " + msg
	}
	return "input tidak valid"
}

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
