package overlay

import (
	"strings"

	"github.com/jpfielding/overlay.go/pkg/dicom/module"
	"github.com/jpfielding/overlay.go/pkg/metadata"
)

// Compression describes the lossy compression of an image with the default locale
func Compression(acc metadata.Accessor, imageID string) string {
	return PortugueseBR.Compression(acc.GeneralImage(imageID))
}

// Compression returns "<method><ratio> : 1" for lossy images that carry a ratio,
// using the locale's lossy prefix when the method is unknown, and the
// lossless indicator otherwise.
func (l Locale) Compression(img module.GeneralImageModule) string {
	ratio := strings.TrimSpace(img.LossyImageCompressionRatio)
	if img.LossyImageCompression != module.LossyCompression || ratio == "" {
		return l.Lossless
	}
	method := img.LossyImageCompressionMethod
	if method == "" {
		method = l.Lossy
	}
	formatted, ok := FormatDecimalString(ratio, 2)
	if !ok {
		formatted = ratio
	}
	return method + formatted + " : 1"
}
