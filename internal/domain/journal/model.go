package journal

import "time"

// Entry es un request hecho a la API de Vetmanager.
type Entry struct {
	ID            string
	CorrelationID string
	Route         string
	Query         string
	Rows          int
	Error         string // vacío si salió bien
	Duration      time.Duration
	RequestedAt   time.Time
}

func (e Entry) Failed() bool {
	return e.Error != ""
}
