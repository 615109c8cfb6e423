package payload

import (
	"errors"
	"fmt"
)

// ErrMissingField indica que el payload no trae una key requerida.
var ErrMissingField = errors.New("missing field")

// MalformedFieldError: el valor crudo no se puede convertir al tipo declarado.
type MalformedFieldError struct {
	Kind  string // "int", "float", "datetime", "duration", ...
	Value string
	Err   error
}

func (e *MalformedFieldError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed %s value %q", e.Kind, e.Value)
	}
	return fmt.Sprintf("malformed %s value %q: %v", e.Kind, e.Value, e.Err)
}

func (e *MalformedFieldError) Unwrap() error {
	return e.Err
}

// UnknownEnumValueError: el código no pertenece al conjunto cerrado del enum.
type UnknownEnumValueError struct {
	Enum  string
	Value string
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("unknown %s value %q", e.Enum, e.Value)
}

// ConstructionError identifica la entidad y el campo que impidieron construir el record.
type ConstructionError struct {
	Entity string
	Field  string
	Err    error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construct %s: field %q: %v", e.Entity, e.Field, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// IsConstructionError reporta si err (o algo que envuelve) es un ConstructionError.
func IsConstructionError(err error) bool {
	var ce *ConstructionError
	return errors.As(err, &ce)
}
