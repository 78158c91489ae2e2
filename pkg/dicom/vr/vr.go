// Package vr defines DICOM Value Representations
package vr

import "github.com/jpfielding/overlay.go/pkg/dicom/tag"

// VR represents a DICOM Value Representation
type VR string

// Standard DICOM Value Representations
const (
	AE VR = "AE" // Application Entity (16 bytes max)
	AS VR = "AS" // Age String (4 bytes fixed)
	AT VR = "AT" // Attribute Tag (4 bytes fixed)
	CS VR = "CS" // Code String (16 bytes max)
	DA VR = "DA" // Date (8 bytes fixed)
	DS VR = "DS" // Decimal String (16 bytes max)
	DT VR = "DT" // DateTime (26 bytes max)
	FL VR = "FL" // Floating Point Single (4 bytes fixed)
	FD VR = "FD" // Floating Point Double (8 bytes fixed)
	IS VR = "IS" // Integer String (12 bytes max)
	LO VR = "LO" // Long String (64 bytes max)
	LT VR = "LT" // Long Text (10240 bytes max)
	OB VR = "OB" // Other Byte String
	OD VR = "OD" // Other Double String
	OF VR = "OF" // Other Float String
	OL VR = "OL" // Other Long
	OV VR = "OV" // Other 64-bit Very Long
	OW VR = "OW" // Other Word String
	PN VR = "PN" // Person Name (64 bytes max per component)
	SH VR = "SH" // Short String (16 bytes max)
	SL VR = "SL" // Signed Long (4 bytes fixed)
	SQ VR = "SQ" // Sequence of Items
	SS VR = "SS" // Signed Short (2 bytes fixed)
	SV VR = "SV" // Signed 64-bit Very Long
	ST VR = "ST" // Short Text (1024 bytes max)
	TM VR = "TM" // Time (16 bytes max)
	UC VR = "UC" // Unlimited Characters
	UI VR = "UI" // Unique Identifier (64 bytes max)
	UL VR = "UL" // Unsigned Long (4 bytes fixed)
	UN VR = "UN" // Unknown
	UR VR = "UR" // Universal Resource Identifier
	US VR = "US" // Unsigned Short (2 bytes fixed)
	UT VR = "UT" // Unlimited Text
	UV VR = "UV" // Unsigned 64-bit Very Long
)

// IsString returns true if this VR contains string data
func (v VR) IsString() bool {
	switch v {
	case AE, AS, CS, DA, DS, DT, IS, LO, LT, PN, SH, ST, TM, UC, UI, UR, UT:
		return true
	default:
		return false
	}
}

// IsNumber returns true if the DICOM JSON model carries this VR as JSON numbers
func (v VR) IsNumber() bool {
	switch v {
	case DS, FL, FD, IS, SL, SS, SV, UL, US, UV:
		return true
	default:
		return false
	}
}

// IsInteger returns true for the integral numeric VRs
func (v VR) IsInteger() bool {
	switch v {
	case IS, SL, SS, SV, UL, US, UV:
		return true
	default:
		return false
	}
}

// IsBulk returns true for VRs whose values travel as InlineBinary or BulkDataURI
func (v VR) IsBulk() bool {
	switch v {
	case OB, OD, OF, OL, OV, OW, UN:
		return true
	default:
		return false
	}
}

// IsSequence returns true if this is a sequence VR
func (v VR) IsSequence() bool {
	return v == SQ
}

// ForTag returns the VR of the tags this module writes, UN when unknown
func ForTag(t tag.Tag) VR {
	switch t {
	case tag.PatientName:
		return PN
	case tag.PatientID, tag.StudyDescription, tag.SeriesDescription, tag.WindowCenterWidthExplanation:
		return LO
	case tag.PatientSex, tag.Modality, tag.LossyImageCompression, tag.LossyImageCompressionMethod, tag.SpecificCharacterSet:
		return CS
	case tag.PatientAge:
		return AS
	case tag.StudyDate, tag.InstanceCreationDate:
		return DA
	case tag.StudyTime, tag.InstanceCreationTime:
		return TM
	case tag.StudyInstanceUID, tag.SeriesInstanceUID, tag.SOPClassUID, tag.SOPInstanceUID:
		return UI
	case tag.SeriesNumber, tag.InstanceNumber:
		return IS
	case tag.Rows, tag.Columns:
		return US
	case tag.PixelSpacing, tag.SliceThickness, tag.SliceLocation, tag.FrameTime,
		tag.LossyImageCompressionRatio, tag.WindowCenter, tag.WindowWidth:
		return DS
	default:
		return UN
	}
}
