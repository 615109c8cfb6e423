package payload

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Formatos y sentinels que usa la API (MySQL por detrás).
const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"

	SentinelDateTime = "0000-00-00 00:00:00"
	SentinelDate     = "0000-00-00"
)

var errEmpty = errors.New("empty value")

// Todas las funciones de este archivo son puras: sin red, sin estado.

// ToOptionalInt: null/"" -> nil; resto se parsea como entero.
func ToOptionalInt(raw *string) (*int, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(*raw)
	if err != nil {
		return nil, &MalformedFieldError{Kind: "int", Value: *raw, Err: err}
	}
	return &n, nil
}

// ToInt es la variante requerida de ToOptionalInt.
// null es ErrMissingField; "" es un valor mal formado.
func ToInt(raw *string) (int, error) {
	if raw == nil {
		return 0, ErrMissingField
	}
	n, err := ToOptionalInt(raw)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return 0, &MalformedFieldError{Kind: "int", Err: errEmpty}
	}
	return *n, nil
}

// ToOptionalID es para foreign keys: además de null/"" también "0" significa "sin relación".
func ToOptionalID(raw *string) (*int, error) {
	n, err := ToOptionalInt(raw)
	if err != nil || n == nil {
		return nil, err
	}
	if *n == 0 {
		return nil, nil
	}
	return n, nil
}

// ToOptionalFloat: null/"" -> nil.
func ToOptionalFloat(raw *string) (*float64, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		return nil, &MalformedFieldError{Kind: "float", Value: *raw, Err: err}
	}
	return &f, nil
}

func ToFloat(raw *string) (float64, error) {
	if raw == nil {
		return 0, ErrMissingField
	}
	f, err := ToOptionalFloat(raw)
	if err != nil {
		return 0, err
	}
	if f == nil {
		return 0, &MalformedFieldError{Kind: "float", Err: errEmpty}
	}
	return *f, nil
}

// ToBool: "0", "" y null son false; cualquier otro string es true.
func ToBool(raw *string) bool {
	return raw != nil && *raw != "" && *raw != "0"
}

// ToString: null -> "".
func ToString(raw *string) string {
	if raw == nil {
		return ""
	}
	return *raw
}

// ToOptionalString: null y "" -> nil.
func ToOptionalString(raw *string) *string {
	if raw == nil || *raw == "" {
		return nil
	}
	s := *raw
	return &s
}

// ToOptionalDateTime: null, "" y "0000-00-00 00:00:00" -> nil.
func ToOptionalDateTime(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" || *raw == SentinelDateTime {
		return nil, nil
	}
	t, err := time.Parse(DateTimeLayout, *raw)
	if err != nil {
		t2, err2 := time.Parse(time.RFC3339, *raw)
		if err2 != nil {
			return nil, &MalformedFieldError{Kind: "datetime", Value: *raw, Err: err}
		}
		t = t2
	}
	return &t, nil
}

// ToOptionalDate acepta "YYYY-MM-DD" o un datetime completo (se queda con la fecha).
func ToOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" || *raw == SentinelDate || *raw == SentinelDateTime {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *raw)
	if err == nil {
		return &t, nil
	}
	full, err2 := time.Parse(DateTimeLayout, *raw)
	if err2 != nil {
		return nil, &MalformedFieldError{Kind: "date", Value: *raw, Err: err}
	}
	d := time.Date(full.Year(), full.Month(), full.Day(), 0, 0, 0, 0, time.UTC)
	return &d, nil
}

// ToOptionalDuration parsea "HH:MM:SS" (columna TIME). Las horas pueden pasar de 24.
// Con sentinelZero, "00:00:00" -> nil. null/"" -> nil.
func ToOptionalDuration(raw *string, sentinelZero bool) (*time.Duration, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parts := strings.Split(*raw, ":")
	if len(parts) != 3 {
		return nil, &MalformedFieldError{Kind: "duration", Value: *raw, Err: errors.New("expected HH:MM:SS")}
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || p == "" {
			return nil, &MalformedFieldError{Kind: "duration", Value: *raw, Err: errors.New("non-numeric component")}
		}
		if i > 0 && n > 59 {
			return nil, &MalformedFieldError{Kind: "duration", Value: *raw, Err: errors.New("component out of range")}
		}
		nums[i] = n
	}

	d := time.Duration(nums[0])*time.Hour + time.Duration(nums[1])*time.Minute + time.Duration(nums[2])*time.Second
	if d == 0 && sentinelZero {
		return nil, nil
	}
	return &d, nil
}

// ParseEnum compara exacto contra los códigos conocidos; no hay default.
func ParseEnum[T ~string](enum string, value string, known ...T) (T, error) {
	for _, k := range known {
		if string(k) == value {
			return k, nil
		}
	}
	var zero T
	return zero, &UnknownEnumValueError{Enum: enum, Value: value}
}

// ToEnum es ParseEnum sobre un valor crudo; null se trata como "".
func ToEnum[T ~string](raw *string, enum string, known ...T) (T, error) {
	return ParseEnum(enum, ToString(raw), known...)
}
