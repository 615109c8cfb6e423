package entities

import (
	"strings"
	"unicode/utf8"
)

// FullName agrupa nombre, patronímico y apellido tal como vienen de la API.
type FullName struct {
	First  string
	Middle string
	Last   string
}

// FullStartingFromFirst: "Ivan Ivanovich Petrov".
func (n FullName) FullStartingFromFirst() string {
	return joinNonEmpty(n.First, n.Middle, n.Last)
}

// FullStartingFromLast: "Petrov Ivan Ivanovich".
func (n FullName) FullStartingFromLast() string {
	return joinNonEmpty(n.Last, n.First, n.Middle)
}

// LastAndInitials: "Petrov I. I.".
func (n FullName) LastAndInitials() string {
	return joinNonEmpty(n.Last, initial(n.First), initial(n.Middle))
}

// Initials: "I. I.".
func (n FullName) Initials() string {
	return joinNonEmpty(initial(n.First), initial(n.Middle))
}

func initial(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(r) + "."
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
