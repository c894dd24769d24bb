package wizard

import (
	"errors"
)

// Image acceptance limits. Files violating these never reach object storage.
const (
	MaxImages    = 10
	MaxImageSize = 5 << 20 // 5MB
)

// ErrBatchExceedsCap signals that accepting the batch's valid files would
// push the draft past MaxImages; none of the batch is added.
var ErrBatchExceedsCap = errors.New("image batch exceeds the 10-image limit")

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// StagedImage is an accepted image held in the draft until final
// submission. Nothing is uploaded before the publish step.
type StagedImage struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Data        []byte `json:"-"`
}

// ImageRejection explains why one file of a batch was not accepted.
type ImageRejection struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// AcceptImages validates a batch against the type/size rules and the image
// cap. Invalid files are rejected individually with a reason and never
// mutate the accepted set. The cap counts stored images carried into an
// edit session too; if the remaining valid files would exceed it, the whole
// batch is refused and none of it is added.
func AcceptImages(accepted []StagedImage, batch []StagedImage, stored int) ([]StagedImage, []ImageRejection, error) {
	var valid []StagedImage
	var rejections []ImageRejection

	for _, img := range batch {
		if _, ok := allowedImageTypes[img.ContentType]; !ok {
			rejections = append(rejections, ImageRejection{
				Filename: img.Filename,
				Reason:   "error.image.type",
			})
			continue
		}
		if img.Size > MaxImageSize {
			rejections = append(rejections, ImageRejection{
				Filename: img.Filename,
				Reason:   "error.image.size",
			})
			continue
		}
		valid = append(valid, img)
	}

	if stored+len(accepted)+len(valid) > MaxImages {
		return accepted, rejections, ErrBatchExceedsCap
	}

	return append(accepted, valid...), rejections, nil
}

// ImageExtension returns the storage extension for an accepted content type.
func ImageExtension(contentType string) string {
	return allowedImageTypes[contentType]
}
