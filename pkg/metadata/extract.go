package metadata

import (
	"github.com/jpfielding/overlay.go/pkg/dicom"
	"github.com/jpfielding/overlay.go/pkg/dicom/module"
	"github.com/jpfielding/overlay.go/pkg/dicom/tag"
)

// PatientModuleOf reads the patient record out of a dataset
func PatientModuleOf(ds *dicom.Dataset) module.PatientModule {
	return module.PatientModule{
		PatientName: dicom.GetString(ds, tag.PatientName),
		PatientID:   dicom.GetString(ds, tag.PatientID),
		PatientSex:  dicom.GetString(ds, tag.PatientSex),
		PatientAge:  dicom.GetString(ds, tag.PatientAge),
	}
}

func GeneralStudyModuleOf(ds *dicom.Dataset) module.GeneralStudyModule {
	return module.GeneralStudyModule{
		StudyInstanceUID: dicom.GetString(ds, tag.StudyInstanceUID),
		StudyDate:        dicom.GetString(ds, tag.StudyDate),
		StudyTime:        dicom.GetString(ds, tag.StudyTime),
		StudyDescription: dicom.GetString(ds, tag.StudyDescription),
	}
}

func GeneralSeriesModuleOf(ds *dicom.Dataset) module.GeneralSeriesModule {
	return module.GeneralSeriesModule{
		Modality:          dicom.GetModality(ds),
		SeriesInstanceUID: dicom.GetString(ds, tag.SeriesInstanceUID),
		SeriesNumber:      dicom.GetIntPtr(ds, tag.SeriesNumber),
		SeriesDescription: dicom.GetSeriesDescription(ds),
	}
}

func ImagePlaneModuleOf(ds *dicom.Dataset) module.ImagePlaneModule {
	m := module.ImagePlaneModule{
		Rows:           dicom.GetIntPtr(ds, tag.Rows),
		Columns:        dicom.GetIntPtr(ds, tag.Columns),
		SliceThickness: dicom.GetFloatPtr(ds, tag.SliceThickness),
		SliceLocation:  dicom.GetFloatPtr(ds, tag.SliceLocation),
	}
	if elem, ok := ds.Find(tag.PixelSpacing); ok {
		m.PixelSpacing, _ = elem.GetFloats()
	}
	return m
}

func GeneralImageModuleOf(ds *dicom.Dataset) module.GeneralImageModule {
	return module.GeneralImageModule{
		InstanceNumber:              dicom.GetIntPtr(ds, tag.InstanceNumber),
		LossyImageCompression:       dicom.GetString(ds, tag.LossyImageCompression),
		LossyImageCompressionRatio:  dicom.GetString(ds, tag.LossyImageCompressionRatio),
		LossyImageCompressionMethod: dicom.GetString(ds, tag.LossyImageCompressionMethod),
	}
}

func CineModuleOf(ds *dicom.Dataset) module.CineModule {
	return module.CineModule{FrameTime: dicom.GetFloatPtr(ds, tag.FrameTime)}
}

// VOILUTModuleOf pairs the multi-valued window center and width; extra values of either are dropped
func VOILUTModuleOf(ds *dicom.Dataset) module.VOILUTModule {
	var m module.VOILUTModule
	var centers, widths []float64
	var explanations []string
	if elem, ok := ds.Find(tag.WindowCenter); ok {
		centers, _ = elem.GetFloats()
	}
	if elem, ok := ds.Find(tag.WindowWidth); ok {
		widths, _ = elem.GetFloats()
	}
	if elem, ok := ds.Find(tag.WindowCenterWidthExplanation); ok {
		explanations, _ = elem.GetStrings()
	}
	for i := 0; i < len(centers) && i < len(widths); i++ {
		var explanation string
		if i < len(explanations) {
			explanation = explanations[i]
		}
		m.AddWindow(centers[i], widths[i], explanation)
	}
	return m
}
