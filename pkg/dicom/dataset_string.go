package dicom

import (
	"fmt"
	"sort"
	"strings"
)

// String returns "[tag] VR Name: value"
func (e *Element) String() string {
	tagName := e.Tag.LookupName()
	if tagName != "" {
		tagName = " " + tagName
	}

	var valStr string
	switch v := e.Value.(type) {
	case nil:
		valStr = "<empty>"
	case []*Dataset:
		valStr = fmt.Sprintf("Sequence (%d items)", len(v))
	case BulkData:
		if v.BulkDataURI != "" {
			valStr = "Bulk Data " + v.BulkDataURI
		} else {
			valStr = fmt.Sprintf("Inline Binary (%d chars)", len(v.InlineBinary))
		}
	default:
		if s, ok := e.GetString(); ok {
			valStr = s
		} else {
			valStr = fmt.Sprintf("%v", v)
		}
	}

	return fmt.Sprintf("[%s] %s%s: %s", e.Tag, e.VR, tagName, valStr)
}

// String lists the elements of the dataset in tag order, one per line
func (ds *Dataset) String() string {
	if ds == nil {
		return "<nil>"
	}
	keys := make([]Tag, 0, len(ds.Elements))
	for k := range ds.Elements {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(ds.Elements[k].String())
		b.WriteString("\n")
	}
	return b.String()
}
