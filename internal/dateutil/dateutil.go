// Package dateutil formats dates the way NBR 6023 reference entries
// expect them, with Portuguese month names.
package dateutil

import (
	"fmt"
	"time"
)

// Month abbreviations per NBR 6023: three letters plus a period, except
// "maio" which is never abbreviated.
var monthAbbrev = [...]string{
	"jan.", "fev.", "mar.", "abr.", "maio", "jun.",
	"jul.", "ago.", "set.", "out.", "nov.", "dez.",
}

// FormatAccessDate renders t as a reference access date: "30 ago. 2026".
func FormatAccessDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthAbbrev[t.Month()-1], t.Year())
}
