package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// listingFolder is the storage namespace for listing photos; each listing
// gets its own subfolder keyed by its identifier.
const listingFolder = "house-haven/listings"

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// ListingFolder returns the storage folder for one listing.
func ListingFolder(listingID string) string {
	return fmt.Sprintf("%s/%s", listingFolder, listingID)
}

// UploadImage uploads one image under the listing's folder and returns the
// public delivery URL together with the storage public ID used for removal.
func (s *CloudinaryService) UploadImage(ctx context.Context, data []byte, name, listingID string) (url string, publicID string, err error) {
	unique := true
	overwrite := false
	uploadParams := uploader.UploadParams{
		Folder:         ListingFolder(listingID),
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if name != "" {
		uploadParams.PublicID = name
	}

	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploadParams)
	if err != nil {
		return "", "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", "", fmt.Errorf("upload successful but no URL returned")
	}
	return result.SecureURL, result.PublicID, nil
}

// DeleteImage deletes one image by its storage public ID.
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}

// DeleteListingFolder deletes a listing's whole image folder, used when the
// listing is removed or a submission left orphaned uploads behind.
func (s *CloudinaryService) DeleteListingFolder(ctx context.Context, listingID string) error {
	folder := ListingFolder(listingID)
	_, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{folder},
	})
	if err != nil {
		return fmt.Errorf("failed to delete assets in folder %s: %w", folder, err)
	}
	// Cloudinary auto-removes empty folders; the explicit call is advisory.
	s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{Folder: folder})
	return nil
}
