package payload

import "time"

// Reader aplica los normalizers campo por campo sobre un Raw.
// Se queda con el primer error; el constructor consulta Err() al final
// y descarta el record entero si hubo alguno.
//
//	r := payload.NewReader("Client", raw)
//	c := Client{ID: r.Int("id"), Email: r.String("email")}
//	if err := r.Err(); err != nil { ... }
type Reader struct {
	entity string
	raw    Raw
	err    error
}

func NewReader(entity string, raw Raw) *Reader {
	return &Reader{entity: entity, raw: raw}
}

func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) fail(field string, err error) {
	if r.err != nil || err == nil {
		return
	}
	r.err = &ConstructionError{Entity: r.entity, Field: field, Err: err}
}

// scalar devuelve el valor crudo; si required y la key no está, registra ErrMissingField.
func (r *Reader) scalar(field string, required bool) (*string, bool) {
	v, present, err := r.raw.Scalar(field)
	if err != nil {
		r.fail(field, err)
		return nil, false
	}
	if !present {
		if required {
			r.fail(field, ErrMissingField)
		}
		return nil, false
	}
	return v, true
}

func (r *Reader) Int(field string) int {
	v, ok := r.scalar(field, true)
	if !ok {
		return 0
	}
	n, err := ToInt(v)
	r.fail(field, err)
	return n
}

func (r *Reader) OptionalInt(field string) *int {
	v, _ := r.scalar(field, false)
	n, err := ToOptionalInt(v)
	r.fail(field, err)
	return n
}

func (r *Reader) OptionalID(field string) *int {
	v, _ := r.scalar(field, false)
	n, err := ToOptionalID(v)
	r.fail(field, err)
	return n
}

func (r *Reader) Float(field string) float64 {
	v, ok := r.scalar(field, true)
	if !ok {
		return 0
	}
	f, err := ToFloat(v)
	r.fail(field, err)
	return f
}

func (r *Reader) OptionalFloat(field string) *float64 {
	v, _ := r.scalar(field, false)
	f, err := ToOptionalFloat(v)
	r.fail(field, err)
	return f
}

func (r *Reader) String(field string) string {
	v, _ := r.scalar(field, true)
	return ToString(v)
}

func (r *Reader) OptionalString(field string) *string {
	v, _ := r.scalar(field, false)
	return ToOptionalString(v)
}

func (r *Reader) Bool(field string) bool {
	v, _ := r.scalar(field, true)
	return ToBool(v)
}

func (r *Reader) OptionalDateTime(field string) *time.Time {
	v, _ := r.scalar(field, false)
	t, err := ToOptionalDateTime(v)
	r.fail(field, err)
	return t
}

func (r *Reader) OptionalDate(field string) *time.Time {
	v, _ := r.scalar(field, false)
	t, err := ToOptionalDate(v)
	r.fail(field, err)
	return t
}

func (r *Reader) OptionalDuration(field string, sentinelZero bool) *time.Duration {
	v, _ := r.scalar(field, false)
	d, err := ToOptionalDuration(v, sentinelZero)
	r.fail(field, err)
	return d
}

// Object devuelve un sub-objeto embebido; present=false si la key no vino.
func (r *Reader) Object(field string) (Raw, bool) {
	obj, present, err := r.raw.Object(field)
	if err != nil {
		r.fail(field, err)
		return nil, false
	}
	return obj, present
}

// Nested construye un record embebido y propaga su error como error de field.
func Nested[T any](r *Reader, field string, construct func(Raw) (T, error)) (value *T, present bool) {
	obj, present := r.Object(field)
	if !present || obj == nil {
		return nil, present
	}
	v, err := construct(obj)
	if err != nil {
		r.fail(field, err)
		return nil, true
	}
	return &v, true
}

// Enum lee un campo requerido de un conjunto cerrado.
func Enum[T ~string](r *Reader, field, enum string, known ...T) T {
	v, ok := r.scalar(field, true)
	if !ok {
		var zero T
		return zero
	}
	e, err := ToEnum(v, enum, known...)
	r.fail(field, err)
	return e
}
