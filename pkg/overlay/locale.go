package overlay

import (
	"fmt"

	"github.com/jpfielding/overlay.go/pkg/dicom/module"
)

// Locale holds the fixed display strings of the overlay. Dates are rendered
// from these tables rather than from a calendar library's own formatting.
type Locale struct {
	Name      string
	Days      [7]string  // Sunday first, indexed by time.Weekday
	Months    [12]string // January first
	Of        string     // joins month and year, and instance and stack size
	Female    string
	Male      string
	Age       string // suffix after the patient age
	Zoom      string
	Series    string
	Image     string
	Location  string
	Thickness string
	Lossy     string // prefix of the ratio when the compression method is unknown
	Lossless  string
}

// PortugueseBR is the default locale
var PortugueseBR = Locale{
	Name:      "pt-BR",
	Days:      [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sab"},
	Months:    [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"},
	Of:        "de",
	Female:    "Feminino",
	Male:      "Masculino",
	Age:       "Ano(s)",
	Zoom:      "Zoom",
	Series:    "Ser",
	Image:     "Img",
	Location:  "Loc",
	Thickness: "Esp",
	Lossy:     "Perca: ",
	Lossless:  "Sem perca / Não comprimido",
}

// English renders the same layout with English tables
var English = Locale{
	Name:      "en",
	Days:      [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	Months:    [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	Of:        "of",
	Female:    "Female",
	Male:      "Male",
	Age:       "Year(s)",
	Zoom:      "Zoom",
	Series:    "Ser",
	Image:     "Img",
	Location:  "Loc",
	Thickness: "Thick",
	Lossy:     "Lossy: ",
	Lossless:  "Lossless / Uncompressed",
}

// LookupLocale finds a locale by name
func LookupLocale(name string) (Locale, error) {
	for _, l := range []Locale{PortugueseBR, English} {
		if l.Name == name {
			return l, nil
		}
	}
	return Locale{}, fmt.Errorf("unknown locale %q", name)
}

// FormatDA renders a packed YYYYMMDD date as "<Day> <d>, <Month> de <Year>".
// Empty or malformed dates yield nothing.
func (l Locale) FormatDA(date string) (string, bool) {
	if date == "" {
		return "", false
	}
	d, err := module.ParseDate(date)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s %d, %s %s %d", l.Days[d.Weekday()], d.Day, l.Months[d.Month-1], l.Of, d.Year), true
}
