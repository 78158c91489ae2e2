// Package overlay formats image metadata into the four corner text blocks
// drawn over a viewport.
package overlay

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jpfielding/overlay.go/pkg/dicom/module"
	"github.com/shopspring/decimal"
)

// FormatNumberPrecision renders n with precision decimals, rounding half away
// from zero on the shortest decimal form of n (12.345 -> "12.35"). A nil or
// non-finite n yields nothing.
func FormatNumberPrecision(n *float64, precision int) (string, bool) {
	if n == nil {
		return "", false
	}
	return FormatFloat(*n, precision)
}

// FormatFloat is FormatNumberPrecision for a value known to be present
func FormatFloat(f float64, precision int) (string, bool) {
	if !finite(f) {
		return "", false
	}
	return decimal.NewFromFloat(f).StringFixed(int32(precision)), true
}

// FormatDecimalString renders the first value of a DICOM decimal string
func FormatDecimalString(ds string, precision int) (string, bool) {
	first, _, _ := strings.Cut(ds, "\\")
	f, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
	if err != nil {
		return "", false
	}
	return FormatFloat(f, precision)
}

// FormatDA renders a packed date with the default locale
func FormatDA(date string) (string, bool) {
	return PortugueseBR.FormatDA(date)
}

// FormatTM renders a packed HHmmss.SSS time as HH:mm:ss; the fraction is dropped.
// Empty or malformed times yield nothing.
func FormatTM(tm string) (string, bool) {
	if tm == "" {
		return "", false
	}
	t, err := module.ParseTime(tm)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second), true
}

// FormatPN renders a packed person name: the first ^ becomes ", ", the rest
// become spaces. Only the alphabetic group is shown.
func FormatPN(name string) (string, bool) {
	alphabetic, _, _ := strings.Cut(name, "=")
	s := strings.Replace(alphabetic, "^", ", ", 1)
	s = strings.TrimSpace(strings.ReplaceAll(s, "^", " "))
	if s == "" {
		return "", false
	}
	return s, true
}

// IsValidNumber reports whether v is present, finite and not NaN
func IsValidNumber(v *float64) bool {
	return v != nil && finite(*v)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FormatFrameRate renders 1000/frameTime rounded to one decimal and shown with two.
// Absent, zero or negative frame times yield nothing.
func FormatFrameRate(cine module.CineModule) (string, bool) {
	rate := cine.FrameRate()
	if !finite(rate) || rate < 0 {
		return "", false
	}
	return decimal.NewFromFloat(rate).Round(1).StringFixed(2), true
}
