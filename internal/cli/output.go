package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"gopkg.in/yaml.v3"

	"vetmanager-api-gateway/internal/domain/explorer"
)

const (
	ExitSuccess  = 0
	ExitFailure  = 1 // error de Vetmanager o payload inválido
	ExitUsage    = 2 // flags/args/config
	ExitNotFound = 3
)

// ExitError lleva el exit code hasta main.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode: ExitFailure si err no es un ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// fromExplorer traduce con el mismo criterio que el explorer HTTP.
func fromExplorer(err error) error {
	if err == nil {
		return nil
	}
	switch explorer.StatusFor(err) {
	case http.StatusNotFound:
		return WrapExitError(ExitNotFound, "not found", err)
	case http.StatusBadRequest:
		return WrapExitError(ExitUsage, "bad request", err)
	default:
		return WrapExitError(ExitFailure, "vetmanager request failed", err)
	}
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
