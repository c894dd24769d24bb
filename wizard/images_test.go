package wizard

import (
	"errors"
	"fmt"
	"testing"
)

func jpeg(name string, size int64) StagedImage {
	return StagedImage{Filename: name, ContentType: "image/jpeg", Size: size}
}

func TestAcceptImagesMixedBatch(t *testing.T) {
	batch := []StagedImage{
		jpeg("ok.jpg", 1024),
		{Filename: "doc.pdf", ContentType: "application/pdf", Size: 1024},
		{Filename: "huge.png", ContentType: "image/png", Size: MaxImageSize + 1},
		{Filename: "ok.webp", ContentType: "image/webp", Size: 2048},
	}

	accepted, rejections, err := AcceptImages(nil, batch, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accepted) != 2 {
		t.Errorf("accepted %d files, want 2", len(accepted))
	}
	if len(rejections) != 2 {
		t.Fatalf("rejected %d files, want 2", len(rejections))
	}

	reasons := map[string]string{}
	for _, r := range rejections {
		reasons[r.Filename] = r.Reason
	}
	if reasons["doc.pdf"] != "error.image.type" {
		t.Errorf("doc.pdf reason = %q, want error.image.type", reasons["doc.pdf"])
	}
	if reasons["huge.png"] != "error.image.size" {
		t.Errorf("huge.png reason = %q, want error.image.size", reasons["huge.png"])
	}
}

func TestAcceptImagesBatchOverCapRefusedWhole(t *testing.T) {
	var accepted []StagedImage
	for i := 0; i < 8; i++ {
		accepted = append(accepted, jpeg(fmt.Sprintf("existing_%d.jpg", i), 1024))
	}

	// 3 valid files on top of 8 accepted would exceed the cap of 10
	batch := []StagedImage{
		jpeg("a.jpg", 1024),
		jpeg("b.jpg", 1024),
		jpeg("c.jpg", 1024),
	}

	got, _, err := AcceptImages(accepted, batch, 0)
	if !errors.Is(err, ErrBatchExceedsCap) {
		t.Fatalf("err = %v, want ErrBatchExceedsCap", err)
	}
	if len(got) != len(accepted) {
		t.Errorf("accepted set grew to %d, want unchanged %d", len(got), len(accepted))
	}
}

func TestAcceptImagesInvalidFilesDoNotCountTowardCap(t *testing.T) {
	var accepted []StagedImage
	for i := 0; i < 9; i++ {
		accepted = append(accepted, jpeg(fmt.Sprintf("existing_%d.jpg", i), 1024))
	}

	// One valid plus two invalid: the invalid ones are rejected individually
	// and the single valid file still fits
	batch := []StagedImage{
		jpeg("last.jpg", 1024),
		{Filename: "nope.gif", ContentType: "image/gif", Size: 100},
		{Filename: "big.jpg", ContentType: "image/jpeg", Size: MaxImageSize * 2},
	}

	got, rejections, err := AcceptImages(accepted, batch, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("accepted %d files, want 10", len(got))
	}
	if len(rejections) != 2 {
		t.Errorf("rejected %d files, want 2", len(rejections))
	}
}

func TestAcceptImagesStoredImagesCountTowardCap(t *testing.T) {
	var accepted []StagedImage
	for i := 0; i < 2; i++ {
		accepted = append(accepted, jpeg(fmt.Sprintf("staged_%d.jpg", i), 1024))
	}

	// 7 stored + 2 staged leaves room for exactly one more
	batch := []StagedImage{
		jpeg("a.jpg", 1024),
		jpeg("b.jpg", 1024),
	}
	if _, _, err := AcceptImages(accepted, batch, 7); !errors.Is(err, ErrBatchExceedsCap) {
		t.Fatalf("err = %v, want ErrBatchExceedsCap", err)
	}

	got, _, err := AcceptImages(accepted, batch[:1], 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("accepted %d staged files, want 3", len(got))
	}
}

func TestImageExtension(t *testing.T) {
	if ext := ImageExtension("image/webp"); ext != ".webp" {
		t.Errorf("ImageExtension(image/webp) = %q, want .webp", ext)
	}
	if ext := ImageExtension("application/pdf"); ext != "" {
		t.Errorf("ImageExtension(application/pdf) = %q, want empty", ext)
	}
}
