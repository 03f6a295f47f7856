package todo

import (
	"fmt"
	"strings"
)

// Day is a localized weekday label. The remote API stores these labels
// verbatim, so they double as grouping keys.
type Day string

const (
	Senin  Day = "Senin"
	Selasa Day = "Selasa"
	Rabu   Day = "Rabu"
	Kamis  Day = "Kamis"
	Jumat  Day = "Jumat"
	Sabtu  Day = "Sabtu"
	Minggu Day = "Minggu"
)

var week = []Day{Senin, Selasa, Rabu, Kamis, Jumat, Sabtu, Minggu}

var aliases = map[string]Day{
	"monday": Senin, "mon": Senin,
	"tuesday": Selasa, "tue": Selasa,
	"wednesday": Rabu, "wed": Rabu,
	"thursday": Kamis, "thu": Kamis,
	"friday": Jumat, "fri": Jumat,
	"saturday": Sabtu, "sat": Sabtu,
	"sunday": Minggu, "sun": Minggu,
}

// Week returns the seven labels in display order, Monday first.
func Week() []Day {
	out := make([]Day, len(week))
	copy(out, week)
	return out
}

// Valid reports whether d is one of the seven labels.
func (d Day) Valid() bool {
	return d.Index() >= 0
}

// Index returns the position of d in Week, or -1.
func (d Day) Index() int {
	for i, w := range week {
		if w == d {
			return i
		}
	}
	return -1
}

func (d Day) String() string {
	return string(d)
}

// ParseDay accepts a label in any case or an English weekday name or
// three-letter abbreviation.
func ParseDay(s string) (Day, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, w := range week {
		if strings.ToLower(string(w)) == key {
			return w, nil
		}
	}
	if d, ok := aliases[key]; ok {
		return d, nil
	}
	return "", fmt.Errorf("unknown day %q", s)
}
