package overlay

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// WriteText lays the overlay out as a block width columns wide: the top
// corners on the first rows, the bottom corners aligned to the last rows.
// A nil overlay writes nothing.
func WriteText(w io.Writer, o *Overlay, width int) error {
	if o == nil {
		return nil
	}
	var b strings.Builder
	for _, row := range pair(o.TopLeft, o.TopRight, false) {
		b.WriteString(justify(row[0], row[1], width))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	for _, row := range pair(o.BottomLeft, o.BottomRight, true) {
		b.WriteString(justify(row[0], row[1], width))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// pair zips two columns, padding the shorter one at the top when bottom is set
func pair(left, right []string, bottom bool) [][2]string {
	n := max(len(left), len(right))
	rows := make([][2]string, n)
	for i := range rows {
		li, ri := i, i
		if bottom {
			li, ri = i-(n-len(left)), i-(n-len(right))
		}
		if li >= 0 && li < len(left) {
			rows[i][0] = left[li]
		}
		if ri >= 0 && ri < len(right) {
			rows[i][1] = right[ri]
		}
	}
	return rows
}

func justify(left, right string, width int) string {
	if right == "" {
		return left
	}
	gap := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

var htmlOverlay = template.Must(template.New("overlay").Parse(
	`<div class="ViewportOverlay">{{range .Regions}}<div class="{{.Name}} overlay-element">{{range .Lines}}<div>{{.}}</div>{{end}}</div>{{end}}</div>`,
))

// WriteHTML writes the overlay markup; a nil overlay writes nothing
func WriteHTML(w io.Writer, o *Overlay) error {
	if o == nil {
		return nil
	}
	if err := htmlOverlay.Execute(w, o); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteJSON writes the overlay as JSON; a nil overlay writes null
func WriteJSON(w io.Writer, o *Overlay) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(o)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// EncodeWriter wraps w so text is written in the named charset (utf-8 or
// latin1). Runes latin1 cannot represent are replaced. Close flushes but does
// not close w.
func EncodeWriter(w io.Writer, charset string) (io.WriteCloser, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return nopCloser{w}, nil
	case "latin1", "iso-8859-1", "iso_ir 100":
		return transform.NewWriter(w, encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())), nil
	}
	return nil, fmt.Errorf("unsupported charset %q", charset)
}
