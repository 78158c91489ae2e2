// Package dicom provides the in-memory DICOM dataset the overlay reads its
// metadata from, together with the DICOM JSON model (PS3.18 Annex F) codec
// used to load it.
//
// Basic usage:
//
//	// Load the instances of a series from a DICOMweb metadata response
//	instances, err := dicom.ReadJSONFile("/path/to/series.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rows := dicom.GetRows(instances[0])
package dicom

import (
	"errors"
	"strings"

	"github.com/jpfielding/overlay.go/pkg/dicom/tag"
)

var (
	ErrInvalidTag  = errors.New("dicom: invalid tag")
	ErrInvalidJSON = errors.New("dicom: invalid JSON model")
)

// GetString returns the trimmed string value of a tag, "" when absent
func GetString(ds *Dataset, t Tag) string {
	if elem, ok := ds.Find(t); ok {
		if s, ok := elem.GetString(); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// GetIntPtr returns the first integer value of a tag, nil when absent or malformed
func GetIntPtr(ds *Dataset, t Tag) *int {
	if elem, ok := ds.Find(t); ok {
		if v, ok := elem.GetInt(); ok {
			return &v
		}
	}
	return nil
}

// GetFloatPtr returns the first decimal value of a tag, nil when absent or malformed
func GetFloatPtr(ds *Dataset, t Tag) *float64 {
	if elem, ok := ds.Find(t); ok {
		if v, ok := elem.GetFloat(); ok {
			return &v
		}
	}
	return nil
}

// GetRows returns the number of rows in the image
func GetRows(ds *Dataset) int {
	if v := GetIntPtr(ds, tag.Rows); v != nil {
		return *v
	}
	return 0
}

// GetColumns returns the number of columns in the image
func GetColumns(ds *Dataset) int {
	if v := GetIntPtr(ds, tag.Columns); v != nil {
		return *v
	}
	return 0
}

// GetInstanceNumber returns the instance number (0020,0013)
func GetInstanceNumber(ds *Dataset) int {
	if v := GetIntPtr(ds, tag.InstanceNumber); v != nil {
		return *v
	}
	return 0
}

// GetSeriesDescription returns the series description (0008,103E)
func GetSeriesDescription(ds *Dataset) string {
	return GetString(ds, tag.SeriesDescription)
}

// GetSOPInstanceUID returns the SOP instance UID (0008,0018)
func GetSOPInstanceUID(ds *Dataset) string {
	return GetString(ds, tag.SOPInstanceUID)
}

// GetModality returns the modality string from the dataset
func GetModality(ds *Dataset) string {
	return GetString(ds, tag.Modality)
}
