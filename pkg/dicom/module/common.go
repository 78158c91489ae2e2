package module

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jpfielding/overlay.go/pkg/dicom/tag"
)

// Date represents a DICOM Date (DA VR)
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week the date falls on
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func NewDate(t time.Time) Date {
	return Date{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
	}
}

// ParseDate parses a packed YYYYMMDD date. The ACR-NEMA form YYYY.MM.DD is also accepted.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	layout := "20060102"
	if len(s) == 10 && s[4] == '.' && s[7] == '.' {
		layout = "2006.01.02"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("date %q: %w", s, err)
	}
	return NewDate(t), nil
}

// Time represents a DICOM Time (TM VR)
type Time struct {
	Hour   int
	Minute int
	Second int
	Nano   int
}

func (t Time) String() string {
	// Format as HHMMSS.FFFFFF
	return fmt.Sprintf("%02d%02d%02d.%06d", t.Hour, t.Minute, t.Second, t.Nano/1000)
}

func NewTime(t time.Time) Time {
	return Time{
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Nano:   t.Nanosecond(),
	}
}

// ParseTime parses a packed HHMMSS.FFFFFF time. Minutes and seconds may be
// omitted (HH, HHMM) and the legacy HH:MM:SS punctuation is accepted.
func ParseTime(s string) (Time, error) {
	raw := s
	s = strings.ReplaceAll(strings.TrimSpace(s), ":", "")
	whole, frac, _ := strings.Cut(s, ".")
	if len(whole) > 6 {
		whole = whole[:6]
	}
	if len(whole) == 0 || len(whole)%2 != 0 || !digits(whole) {
		return Time{}, fmt.Errorf("time %q: want HH[MM[SS]][.F]", raw)
	}
	var t Time
	parts := []*int{&t.Hour, &t.Minute, &t.Second}
	for i := 0; i*2 < len(whole); i++ {
		*parts[i], _ = strconv.Atoi(whole[i*2 : i*2+2])
	}
	if frac != "" {
		if len(frac) > 6 {
			frac = frac[:6]
		}
		if !digits(frac) {
			return Time{}, fmt.Errorf("time %q: bad fraction", raw)
		}
		f, _ := strconv.Atoi(frac + strings.Repeat("0", 6-len(frac)))
		t.Nano = f * 1000
	}
	// 60 admits a leap second
	if t.Hour > 23 || t.Minute > 59 || t.Second > 60 {
		return Time{}, fmt.Errorf("time %q: out of range", raw)
	}
	return t, nil
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// PersonName represents a DICOM Person Name (PN VR)
type PersonName struct {
	FamilyName string
	GivenName  string
	MiddleName string
	Prefix     string
	Suffix     string
}

func (p PersonName) String() string {
	// DICOM format: Family^Given^Middle^Prefix^Suffix
	s := fmt.Sprintf("%s^%s^%s^%s^%s", p.FamilyName, p.GivenName, p.MiddleName, p.Prefix, p.Suffix)
	return strings.TrimRight(s, "^")
}

// ParsePersonName splits the alphabetic group of a packed person name into its components
func ParsePersonName(s string) PersonName {
	alphabetic, _, _ := strings.Cut(s, "=")
	c := strings.SplitN(alphabetic, "^", 5)
	for len(c) < 5 {
		c = append(c, "")
	}
	return PersonName{
		FamilyName: strings.TrimSpace(c[0]),
		GivenName:  strings.TrimSpace(c[1]),
		MiddleName: strings.TrimSpace(c[2]),
		Prefix:     strings.TrimSpace(c[3]),
		Suffix:     strings.TrimSpace(c[4]),
	}
}

// Common module interfaces
type IODModule interface {
	ToTags() []IODElement
}

type IODElement struct {
	Tag   tag.Tag
	Value interface{}
}
