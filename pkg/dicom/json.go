package dicom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/jpfielding/overlay.go/pkg/dicom/tag"
	"github.com/jpfielding/overlay.go/pkg/dicom/vr"
)

// jsonAttribute is one attribute of the DICOM JSON model
type jsonAttribute struct {
	VR           string            `json:"vr"`
	Value        []json.RawMessage `json:"Value,omitempty"`
	InlineBinary string            `json:"InlineBinary,omitempty"`
	BulkDataURI  string            `json:"BulkDataURI,omitempty"`
}

type personName struct {
	Alphabetic  string `json:"Alphabetic,omitempty"`
	Ideographic string `json:"Ideographic,omitempty"`
	Phonetic    string `json:"Phonetic,omitempty"`
}

// ReadJSONFile reads a DICOM JSON document from disk
func ReadJSONFile(path string) ([]*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return ParseJSON(f)
}

// ParseJSON decodes a DICOM JSON document holding either one dataset or an
// array of them (the shape of a DICOMweb metadata response)
func ParseJSON(r io.Reader) ([]*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidJSON)
	}

	var objects []map[string]jsonAttribute
	if data[0] == '[' {
		err = json.Unmarshal(data, &objects)
	} else {
		var single map[string]jsonAttribute
		err = json.Unmarshal(data, &single)
		objects = append(objects, single)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	out := make([]*Dataset, 0, len(objects))
	for i, obj := range objects {
		ds, err := decodeDataset(obj)
		if err != nil {
			return nil, fmt.Errorf("dataset %d: %w", i, err)
		}
		out = append(out, ds)
	}
	return out, nil
}

func decodeDataset(obj map[string]jsonAttribute) (*Dataset, error) {
	ds := &Dataset{Elements: make(map[Tag]*Element, len(obj))}
	for key, attr := range obj {
		t, err := tag.ParseKey(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTag, err)
		}
		value, err := decodeValue(vr.VR(attr.VR), attr)
		if err != nil {
			return nil, fmt.Errorf("element %v: %w", t, err)
		}
		ds.Elements[t] = &Element{Tag: t, VR: vr.VR(attr.VR), Value: value}
	}
	return ds, nil
}

func decodeValue(v vr.VR, attr jsonAttribute) (interface{}, error) {
	if attr.InlineBinary != "" || attr.BulkDataURI != "" {
		return BulkData{InlineBinary: attr.InlineBinary, BulkDataURI: attr.BulkDataURI}, nil
	}
	if len(attr.Value) == 0 {
		return nil, nil
	}

	switch {
	case v.IsSequence():
		items := make([]*Dataset, 0, len(attr.Value))
		for _, raw := range attr.Value {
			var obj map[string]jsonAttribute
			if err := json.Unmarshal(raw, &obj); err != nil {
				return nil, fmt.Errorf("%w: sequence item: %v", ErrInvalidJSON, err)
			}
			item, err := decodeDataset(obj)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil

	case v == vr.PN:
		names := make([]string, 0, len(attr.Value))
		for _, raw := range attr.Value {
			var pn personName
			if err := json.Unmarshal(raw, &pn); err != nil {
				// some producers send the packed string directly
				var s string
				if json.Unmarshal(raw, &s) != nil {
					return nil, fmt.Errorf("%w: person name: %v", ErrInvalidJSON, err)
				}
				pn.Alphabetic = s
			}
			names = append(names, pn.Alphabetic)
		}
		return collapse(names), nil

	case v.IsNumber():
		nums := make([]float64, 0, len(attr.Value))
		raws := make([]string, 0, len(attr.Value))
		malformed := false
		for _, raw := range attr.Value {
			if string(raw) == "null" {
				continue
			}
			var f float64
			text := string(raw)
			if err := json.Unmarshal(raw, &f); err != nil {
				// DS and IS may be carried as strings
				if json.Unmarshal(raw, &text) != nil {
					return nil, fmt.Errorf("%w: number: %v", ErrInvalidJSON, err)
				}
				if f, err = strconv.ParseFloat(strings.TrimSpace(text), 64); err != nil {
					malformed = true
				}
			}
			if v.IsInteger() && !integral(f) {
				malformed = true
			}
			nums = append(nums, f)
			raws = append(raws, text)
		}
		if len(raws) == 0 {
			return nil, nil
		}
		// keep malformed numbers as text so the numeric getters report them absent
		if malformed {
			slog.Debug("keeping malformed number as text", "vr", v, "value", raws)
			return collapse(raws), nil
		}
		if v.IsInteger() {
			ints := make([]int, len(nums))
			for i, f := range nums {
				ints[i] = int(f)
			}
			return collapse(ints), nil
		}
		return collapse(nums), nil

	default:
		strs := make([]string, 0, len(attr.Value))
		for _, raw := range attr.Value {
			var s *string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, fmt.Errorf("%w: string: %v", ErrInvalidJSON, err)
			}
			if s == nil {
				strs = append(strs, "")
				continue
			}
			strs = append(strs, *s)
		}
		return collapse(strs), nil
	}
}

// integral reports whether f converts to an int without loss
func integral(f float64) bool {
	return f == math.Trunc(f) && f >= float64(math.MinInt) && f < float64(math.MaxInt)
}

func allIntegral(fs []float64) bool {
	for _, f := range fs {
		if !integral(f) {
			return false
		}
	}
	return true
}

// collapse stores single values as scalars
func collapse[T any](vals []T) interface{} {
	if len(vals) == 1 {
		return vals[0]
	}
	return vals
}

// MarshalJSON writes the dataset in the DICOM JSON model. Keys are sorted by
// encoding/json, which matches tag order for 8-digit upper case hex.
func (ds *Dataset) MarshalJSON() ([]byte, error) {
	out := make(map[string]jsonAttributeOut, len(ds.Elements))
	for t, elem := range ds.Elements {
		attr, err := encodeElement(elem)
		if err != nil {
			return nil, fmt.Errorf("element %v: %w", t, err)
		}
		out[t.Key()] = attr
	}
	return json.Marshal(out)
}

type jsonAttributeOut struct {
	VR           string        `json:"vr"`
	Value        []interface{} `json:"Value,omitempty"`
	InlineBinary string        `json:"InlineBinary,omitempty"`
	BulkDataURI  string        `json:"BulkDataURI,omitempty"`
}

func encodeElement(elem *Element) (jsonAttributeOut, error) {
	attr := jsonAttributeOut{VR: string(elem.VR)}
	switch v := elem.Value.(type) {
	case nil:
		return attr, nil
	case BulkData:
		attr.InlineBinary = v.InlineBinary
		attr.BulkDataURI = v.BulkDataURI
		return attr, nil
	case []*Dataset:
		for _, item := range v {
			attr.Value = append(attr.Value, item)
		}
		return attr, nil
	}

	if elem.VR.IsNumber() {
		if fs, ok := elem.GetFloats(); ok && (!elem.VR.IsInteger() || allIntegral(fs)) {
			for _, f := range fs {
				if elem.VR.IsInteger() {
					attr.Value = append(attr.Value, int(f))
				} else {
					attr.Value = append(attr.Value, f)
				}
			}
			return attr, nil
		}
	}

	strs, ok := elem.GetStrings()
	if !ok {
		s, ok := elem.GetString()
		if !ok {
			return attr, fmt.Errorf("unsupported value type %T", elem.Value)
		}
		strs = strings.Split(s, "\\")
	}
	for _, s := range strs {
		if elem.VR == vr.PN {
			attr.Value = append(attr.Value, personName{Alphabetic: s})
			continue
		}
		attr.Value = append(attr.Value, s)
	}
	return attr, nil
}

// WriteJSON writes datasets as a DICOM JSON array
func WriteJSON(w io.Writer, datasets []*Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(datasets); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
