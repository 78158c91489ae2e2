package dicom

import (
	"strconv"
	"strings"

	"github.com/jpfielding/overlay.go/pkg/dicom/tag"
	"github.com/jpfielding/overlay.go/pkg/dicom/vr"
)

// Dataset represents a complete DICOM dataset
type Dataset struct {
	Elements map[Tag]*Element
}

// Element represents a single DICOM element
type Element struct {
	Tag   Tag
	VR    vr.VR
	Value interface{} // string, []string, int, []int, float64, []float64, []*Dataset or BulkData
}

// Tag alias to avoid duplication
type Tag = tag.Tag

// BulkData is an opaque binary value, either inline (base64) or by reference
type BulkData struct {
	InlineBinary string `json:"InlineBinary,omitempty"`
	BulkDataURI  string `json:"BulkDataURI,omitempty"`
}

// FindElement returns an element by tag
func (ds *Dataset) FindElement(group, element uint16) (*Element, bool) {
	if ds == nil {
		return nil, false
	}
	elem, ok := ds.Elements[Tag{Group: group, Element: element}]
	return elem, ok
}

// Find returns an element by tag
func (ds *Dataset) Find(t Tag) (*Element, bool) {
	return ds.FindElement(t.Group, t.Element)
}

// GetString returns a string value from an element. Multi-valued elements are
// joined with the DICOM value delimiter, numbers are printed in shortest form.
func (elem *Element) GetString() (string, bool) {
	switch v := elem.Value.(type) {
	case string:
		return v, true
	case []string:
		return strings.Join(v, "\\"), true
	case int:
		return strconv.Itoa(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case []int:
		s := make([]string, len(v))
		for i, n := range v {
			s[i] = strconv.Itoa(n)
		}
		return strings.Join(s, "\\"), true
	case []float64:
		s := make([]string, len(v))
		for i, f := range v {
			s[i] = strconv.FormatFloat(f, 'f', -1, 64)
		}
		return strings.Join(s, "\\"), true
	}
	return "", false
}

// GetStrings returns every value of a string element
func (elem *Element) GetStrings() ([]string, bool) {
	switch v := elem.Value.(type) {
	case []string:
		return v, true
	case string:
		return strings.Split(v, "\\"), true
	}
	return nil, false
}

// GetInt returns the first value of an element as an int
func (elem *Element) GetInt() (int, bool) {
	switch v := elem.Value.(type) {
	case int:
		return v, true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	case string:
		first, _, _ := strings.Cut(v, "\\")
		if i, err := strconv.Atoi(strings.TrimSpace(first)); err == nil {
			return i, true
		}
	case []int:
		if len(v) > 0 {
			return v[0], true
		}
	case []float64:
		if len(v) > 0 && v[0] == float64(int(v[0])) {
			return int(v[0]), true
		}
	case []string:
		if len(v) > 0 {
			if i, err := strconv.Atoi(strings.TrimSpace(v[0])); err == nil {
				return i, true
			}
		}
	}
	return 0, false
}

// GetFloat returns the first value of an element as a float64
func (elem *Element) GetFloat() (float64, bool) {
	fs, ok := elem.GetFloats()
	if !ok || len(fs) == 0 {
		return 0, false
	}
	return fs[0], true
}

// GetFloats returns a slice of float64s from an element
func (elem *Element) GetFloats() ([]float64, bool) {
	switch v := elem.Value.(type) {
	case []float64:
		return v, true
	case float64:
		return []float64{v}, true
	case int:
		return []float64{float64(v)}, true
	case []int:
		res := make([]float64, len(v))
		for i, val := range v {
			res[i] = float64(val)
		}
		return res, true
	case string:
		return parseFloats(strings.Split(v, "\\"))
	case []string:
		return parseFloats(v)
	}
	return nil, false
}

func parseFloats(ss []string) ([]float64, bool) {
	res := make([]float64, 0, len(ss))
	for _, s := range ss {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, false
		}
		res = append(res, f)
	}
	return res, true
}

// GetSequence returns the items of a sequence element
func (elem *Element) GetSequence() ([]*Dataset, bool) {
	seq, ok := elem.Value.([]*Dataset)
	return seq, ok
}
