package tag

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// String returns a string representation of the Tag (GGGG,EEEE)
func (t Tag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.Group, t.Element)
}

// Key returns the DICOM JSON attribute key (GGGGEEEE, upper case hex)
func (t Tag) Key() string {
	return fmt.Sprintf("%04X%04X", t.Group, t.Element)
}

// ParseKey parses a DICOM JSON attribute key such as "00100010"
func ParseKey(s string) (Tag, error) {
	if len(s) != 8 {
		return Tag{}, fmt.Errorf("tag key %q: want 8 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Tag{}, fmt.Errorf("tag key %q: %w", s, err)
	}
	return Tag{Group: uint16(v >> 16), Element: uint16(v)}, nil
}

// MarshalJSON returns a JSON representation of the Tag
func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
