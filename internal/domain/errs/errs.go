// Package errs agrupa los errores compartidos por los módulos de dominio.
// Todos terminan como HTTP 500 con su texto; los tipos existen para que
// los tests y los logs puedan distinguirlos.
package errs

import (
	"errors"
	"fmt"
)

// ValidationError: una referencia (owner, start_time) no se pudo convertir.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError cubre tanto un id mal formado como un registro inexistente.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	if e.Msg == "" {
		return "not found"
	}
	return e.Msg
}

// DbError envuelve cualquier falla del storage (conexión, escritura, decode).
type DbError struct {
	Op  string
	Err error
}

func (e *DbError) Error() string {
	return fmt.Sprintf("db %s: %v", e.Op, e.Err)
}

func (e *DbError) Unwrap() error { return e.Err }

func Validation(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

func NotFound(msg string) error {
	return &NotFoundError{Msg: msg}
}

// Db devuelve nil si err es nil, para poder usarlo directo en returns.
func Db(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DbError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsDb(err error) bool {
	var d *DbError
	return errors.As(err, &d)
}
