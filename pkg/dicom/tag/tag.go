// Package tag defines the DICOM tags read by the viewport overlay
package tag

// Tag represents a DICOM tag with Group and Element
type Tag struct {
	Group   uint16
	Element uint16
}

// New creates a new Tag
func New(group, element uint16) Tag {
	return Tag{Group: group, Element: element}
}

// IsPrivate returns true if this is a private tag (odd group number)
func (t Tag) IsPrivate() bool {
	return t.Group%2 == 1
}

// Less orders tags by group then element
func (t Tag) Less(other Tag) bool {
	if t.Group != other.Group {
		return t.Group < other.Group
	}
	return t.Element < other.Element
}

// SOP Common Module
var (
	SpecificCharacterSet = Tag{0x0008, 0x0005}
	InstanceCreationDate = Tag{0x0008, 0x0012}
	InstanceCreationTime = Tag{0x0008, 0x0013}
	SOPClassUID          = Tag{0x0008, 0x0016}
	SOPInstanceUID       = Tag{0x0008, 0x0018}
)

// Patient Module (Group 0010)
var (
	PatientName = Tag{0x0010, 0x0010}
	PatientID   = Tag{0x0010, 0x0020}
	PatientSex  = Tag{0x0010, 0x0040}
	PatientAge  = Tag{0x0010, 0x1010}
)

// General Study Module (Group 0008, 0020)
var (
	StudyDate        = Tag{0x0008, 0x0020}
	StudyTime        = Tag{0x0008, 0x0030}
	StudyDescription = Tag{0x0008, 0x1030}
	StudyInstanceUID = Tag{0x0020, 0x000D}
)

// General Series Module
var (
	Modality          = Tag{0x0008, 0x0060}
	SeriesDescription = Tag{0x0008, 0x103E}
	SeriesInstanceUID = Tag{0x0020, 0x000E}
	SeriesNumber      = Tag{0x0020, 0x0011}
)

// General Image Module
var (
	InstanceNumber              = Tag{0x0020, 0x0013}
	LossyImageCompression       = Tag{0x0028, 0x2110} // CS - 00=lossless, 01=lossy
	LossyImageCompressionRatio  = Tag{0x0028, 0x2112} // DS - Compression ratio
	LossyImageCompressionMethod = Tag{0x0028, 0x2114} // CS - ISO_10918_1, ISO_14495_1, ...
)

// Image Plane / Image Pixel Module
var (
	Rows           = Tag{0x0028, 0x0010}
	Columns        = Tag{0x0028, 0x0011}
	PixelSpacing   = Tag{0x0028, 0x0030}
	SliceThickness = Tag{0x0018, 0x0050}
	SliceLocation  = Tag{0x0020, 0x1041}
)

// Cine Module
var (
	FrameTime = Tag{0x0018, 0x1063} // DS - ms per frame
)

// VOI LUT Module
var (
	WindowCenter                 = Tag{0x0028, 0x1050}
	WindowWidth                  = Tag{0x0028, 0x1051}
	WindowCenterWidthExplanation = Tag{0x0028, 0x1055} // LO - Window explanation
)

// LookupName returns a human-readable name for the tags this package knows
func (t Tag) LookupName() string {
	return names[t]
}

var names = map[Tag]string{
	SpecificCharacterSet:         "SpecificCharacterSet",
	InstanceCreationDate:         "InstanceCreationDate",
	InstanceCreationTime:         "InstanceCreationTime",
	SOPClassUID:                  "SOPClassUID",
	SOPInstanceUID:               "SOPInstanceUID",
	PatientName:                  "PatientName",
	PatientID:                    "PatientID",
	PatientSex:                   "PatientSex",
	PatientAge:                   "PatientAge",
	StudyDate:                    "StudyDate",
	StudyTime:                    "StudyTime",
	StudyDescription:             "StudyDescription",
	StudyInstanceUID:             "StudyInstanceUID",
	Modality:                     "Modality",
	SeriesDescription:            "SeriesDescription",
	SeriesInstanceUID:            "SeriesInstanceUID",
	SeriesNumber:                 "SeriesNumber",
	InstanceNumber:               "InstanceNumber",
	LossyImageCompression:        "LossyImageCompression",
	LossyImageCompressionRatio:   "LossyImageCompressionRatio",
	LossyImageCompressionMethod:  "LossyImageCompressionMethod",
	Rows:                         "Rows",
	Columns:                      "Columns",
	PixelSpacing:                 "PixelSpacing",
	SliceThickness:               "SliceThickness",
	SliceLocation:                "SliceLocation",
	FrameTime:                    "FrameTime",
	WindowCenter:                 "WindowCenter",
	WindowWidth:                  "WindowWidth",
	WindowCenterWidthExplanation: "WindowCenterWidthExplanation",
}
