package overlay

import (
	"fmt"
	"strings"

	"github.com/jpfielding/overlay.go/pkg/metadata"
)

// Props is the view state an overlay is rendered for
type Props struct {
	ImageID      string  `json:"imageId"`
	Scale        float64 `json:"scale"`
	WindowWidth  float64 `json:"windowWidth"`
	WindowCenter float64 `json:"windowCenter"`
	ImageIndex   int     `json:"imageIndex"` // zero based position in the stack
	StackSize    int     `json:"stackSize"`
}

// Region names, also the CSS classes of the HTML output
const (
	TopLeft     = "top-left"
	TopRight    = "top-right"
	BottomRight = "bottom-right"
	BottomLeft  = "bottom-left"
)

// Overlay is the text of the four corners. Lines without data are left out.
type Overlay struct {
	ImageID     string   `json:"imageId"`
	TopLeft     []string `json:"topLeft"`
	TopRight    []string `json:"topRight"`
	BottomRight []string `json:"bottomRight"`
	BottomLeft  []string `json:"bottomLeft"`
}

// Region is one corner block
type Region struct {
	Name  string
	Lines []string
}

// Regions returns the four corners in drawing order
func (o *Overlay) Regions() []Region {
	if o == nil {
		return nil
	}
	return []Region{
		{Name: TopLeft, Lines: o.TopLeft},
		{Name: TopRight, Lines: o.TopRight},
		{Name: BottomRight, Lines: o.BottomRight},
		{Name: BottomLeft, Lines: o.BottomLeft},
	}
}

// Option configures a Renderer
type Option func(*Renderer)

// WithLocale selects the display strings
func WithLocale(l Locale) Option {
	return func(r *Renderer) {
		r.Locale = l
	}
}

// Renderer builds overlays from the metadata of a provider
type Renderer struct {
	Accessor metadata.Accessor
	Locale   Locale
}

func NewRenderer(p metadata.Provider, opts ...Option) *Renderer {
	r := &Renderer{
		Accessor: metadata.NewAccessor(p),
		Locale:   PortugueseBR,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the overlay for props, nil when there is no image
func (r *Renderer) Render(props Props) *Overlay {
	if props.ImageID == "" {
		return nil
	}
	id := props.ImageID
	l := r.Locale
	patient := r.Accessor.Patient(id)
	study := r.Accessor.Study(id)
	series := r.Accessor.Series(id)
	plane := r.Accessor.ImagePlane(id)
	image := r.Accessor.GeneralImage(id)
	cine := r.Accessor.Cine(id)

	ov := &Overlay{ImageID: id}
	add := func(region *[]string, s string, ok bool) {
		if ok && s != "" {
			*region = append(*region, s)
		}
	}

	name, ok := FormatPN(patient.PatientName)
	add(&ov.TopLeft, name, ok)
	sex := l.Male
	if patient.PatientSex == "F" {
		sex = l.Female
	}
	if age := patient.PatientAge; age != "" {
		sex = fmt.Sprintf("%s - %s %s", sex, age, l.Age)
	}
	add(&ov.TopLeft, sex, true)
	add(&ov.TopLeft, patient.PatientID, true)

	add(&ov.TopRight, study.StudyDescription, true)
	date, ok := l.FormatDA(study.StudyDate)
	add(&ov.TopRight, date, ok)
	tm, ok := FormatTM(study.StudyTime)
	add(&ov.TopRight, tm, ok)

	if zoom, ok := FormatFloat(props.Scale*100, 0); ok {
		add(&ov.BottomRight, fmt.Sprintf("%s: %s%%", l.Zoom, zoom), true)
	}
	ww, wwOK := FormatFloat(props.WindowWidth, 0)
	wc, wcOK := FormatFloat(props.WindowCenter, 0)
	add(&ov.BottomRight, fmt.Sprintf("W: %s L: %s", ww, wc), wwOK && wcOK)
	add(&ov.BottomRight, l.Compression(image), true)

	if series.SeriesNumber != nil && *series.SeriesNumber >= 0 {
		add(&ov.BottomLeft, fmt.Sprintf("%s: %d", l.Series, *series.SeriesNumber), true)
	}
	if props.StackSize > 1 {
		instance := props.ImageIndex + 1
		if image.InstanceNumber != nil {
			instance = *image.InstanceNumber
		}
		add(&ov.BottomLeft, fmt.Sprintf("%s: %d %s %d", l.Image, instance, l.Of, props.StackSize), true)
	}
	if fps, ok := FormatFrameRate(cine); ok {
		add(&ov.BottomLeft, fps+" FPS", true)
	}
	if plane.Columns != nil && plane.Rows != nil {
		add(&ov.BottomLeft, fmt.Sprintf("%d x %d", *plane.Columns, *plane.Rows), true)
	}
	var position []string
	if IsValidNumber(plane.SliceLocation) {
		loc, _ := FormatFloat(*plane.SliceLocation, 2)
		position = append(position, fmt.Sprintf("%s: %s mm", l.Location, loc))
	}
	if IsValidNumber(plane.SliceThickness) && *plane.SliceThickness != 0 {
		esp, _ := FormatFloat(*plane.SliceThickness, 2)
		position = append(position, fmt.Sprintf("%s: %s mm", l.Thickness, esp))
	}
	add(&ov.BottomLeft, strings.Join(position, " "), true)
	add(&ov.BottomLeft, series.SeriesDescription, true)

	return ov
}

// Lines counts the lines of all regions
func (o *Overlay) Lines() int {
	n := 0
	for _, r := range o.Regions() {
		n += len(r.Lines)
	}
	return n
}
