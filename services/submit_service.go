package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrNotReady means the wizard has not validated every step yet.
	ErrNotReady = errors.New("wizard is not ready for submission")
	// ErrCoreWrite means the core property row could not be written. The
	// draft is preserved so the user may retry manually.
	ErrCoreWrite = errors.New("failed to write the property record")
)

// SubmitIssues collects the best-effort failures of one submission: image
// uploads or auxiliary category writes that failed while the core record
// (and any already-succeeded writes) remain persisted. This non-atomicity
// is deliberate; there is no compensating rollback.
type SubmitIssues struct {
	ImageErrors    map[string]string `json:"image_errors,omitempty"`
	CategoryErrors map[string]string `json:"category_errors,omitempty"`
}

// Any reports whether the submission should be surfaced as failed.
func (i *SubmitIssues) Any() bool {
	return len(i.ImageErrors) > 0 || len(i.CategoryErrors) > 0
}

// SubmitService turns a completed wizard draft into persisted rows: object
// storage uploads, one core record write, and one insert batch per
// categorical side table.
type SubmitService struct {
	db      *gorm.DB
	storage *CloudinaryService
}

func NewSubmitService(db *gorm.DB, storage *CloudinaryService) *SubmitService {
	return &SubmitService{db: db, storage: storage}
}

// Submit persists a completed wizard. Order of effects:
//  1. every staged image is uploaded, collecting public URLs; individual
//     failures are recorded and do not abort the rest;
//  2. the core row is created (or updated on edit) and awaited before any
//     auxiliary write starts;
//  3. the categorical lists are written concurrently with each other and
//     collectively awaited.
//
// On edit, removed images are deleted from storage and the index, and each
// categorical list is replaced wholesale rather than diffed.
func (s *SubmitService) Submit(ctx context.Context, w *wizard.Wizard, userID uuid.UUID, geoSnapshot datatypes.JSON) (*models.Property, *SubmitIssues, error) {
	if !w.Ready() {
		return nil, nil, ErrNotReady
	}

	draft := w.Draft()
	issues := &SubmitIssues{
		ImageErrors:    map[string]string{},
		CategoryErrors: map[string]string{},
	}

	propertyID := uuid.Must(uuid.NewV7())
	if w.EditingID != nil {
		propertyID = *w.EditingID
	}

	// Step 1: image uploads, namespaced by the record identifier.
	newImages := s.uploadImages(ctx, w.Images(), propertyID, len(w.KeptImages), issues)

	// Step 2: core record write. A failure here is a full failure; the
	// draft stays on the final step for manual retry.
	property := propertyFromDraft(&draft, propertyID, userID)
	property.GeocodeSnapshot = geoSnapshot
	if len(geoSnapshot) > 0 {
		var geo GeocodeResult
		if err := json.Unmarshal(geoSnapshot, &geo); err == nil {
			property.State = geo.State
			property.Zip = geo.Zip
		}
	}
	if w.EditingID != nil {
		if err := s.updateCore(ctx, property, newImages, w.RemovedImages); err != nil {
			log.Printf("❌ Failed to update listing %s: %v", propertyID, err)
			return nil, issues, ErrCoreWrite
		}
	} else {
		property.Images = newImages
		if err := s.db.WithContext(ctx).Create(property).Error; err != nil {
			log.Printf("❌ Failed to create listing: %v", err)
			return nil, issues, ErrCoreWrite
		}
	}

	// Step 3: categorical side tables, one concurrent replace per category.
	s.writeCategories(ctx, propertyID, draft.Categories, issues)

	if issues.Any() {
		log.Printf("⚠️  Listing %s submitted with partial failures: %d image, %d category",
			propertyID, len(issues.ImageErrors), len(issues.CategoryErrors))
	} else {
		log.Printf("✅ Listing %s (%s) submitted", propertyID, property.RefNumber)
	}
	return property, issues, nil
}

func (s *SubmitService) uploadImages(ctx context.Context, staged []wizard.StagedImage, propertyID uuid.UUID, sortOffset int, issues *SubmitIssues) []models.PropertyImage {
	var uploaded []models.PropertyImage
	for i, img := range staged {
		name := fmt.Sprintf("photo_%d%s", sortOffset+i, wizard.ImageExtension(img.ContentType))
		url, publicID, err := s.storage.UploadImage(ctx, img.Data, name, propertyID.String())
		if err != nil {
			log.Printf("⚠️  Image upload failed for %s: %v", img.Filename, err)
			issues.ImageErrors[img.Filename] = "error.image.upload"
			continue
		}
		uploaded = append(uploaded, models.PropertyImage{
			PropertyID:  propertyID,
			URL:         url,
			StoragePath: publicID,
			SortOrder:   sortOffset + i,
		})
	}
	return uploaded
}

// updateCore saves the edited core row, inserts the new image index rows,
// and reconciles removed images against both storage and the index.
func (s *SubmitService) updateCore(ctx context.Context, property *models.Property, newImages []models.PropertyImage, removed []models.PropertyImage) error {
	db := s.db.WithContext(ctx)
	if err := db.Model(&models.Property{}).
		Where("id = ?", property.ID).
		Select("*").
		Omit("id", "user_id", "ref_number", "created_at", "views", "status").
		Updates(property).Error; err != nil {
		return err
	}
	if len(newImages) > 0 {
		if err := db.Create(&newImages).Error; err != nil {
			return err
		}
	}
	for _, img := range removed {
		if err := s.storage.DeleteImage(ctx, img.StoragePath); err != nil {
			log.Printf("⚠️  Failed to delete stored image %s: %v", img.StoragePath, err)
		}
		if err := db.Delete(&models.PropertyImage{}, "id = ?", img.ID).Error; err != nil {
			log.Printf("⚠️  Failed to delete image index row %s: %v", img.ID, err)
		}
	}
	return nil
}

// writeCategories replaces every categorical list (delete-all-then-insert).
// Categories run concurrently with each other; a failure in one never
// aborts the others and never rolls back the core record.
func (s *SubmitService) writeCategories(ctx context.Context, propertyID uuid.UUID, categories models.CategoryLists, issues *SubmitIssues) {
	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	results := make(chan categoryResult, len(models.CategoryNames))

	for _, category := range models.CategoryNames {
		category := category
		labels := categories.Labels(category)
		g.Go(func() error {
			err := s.replaceCategory(gctx, propertyID, category, labels)
			results <- categoryResult{category: category, err: err}
			return nil
		})
	}
	g.Wait()
	close(results)

	for res := range results {
		if res.err != nil {
			log.Printf("⚠️  Category write failed for %s: %v", res.category, res.err)
			issues.CategoryErrors[res.category] = "error.category.write"
		}
	}
}

type categoryResult struct {
	category string
	err      error
}

func (s *SubmitService) replaceCategory(ctx context.Context, propertyID uuid.UUID, category string, labels []string) error {
	table := models.CategoryTable[category]
	db := s.db.WithContext(ctx)

	if err := db.Table(table).Where("property_id = ?", propertyID).Delete(nil).Error; err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	if len(labels) == 0 {
		return nil
	}
	rows := make([]models.FeatureRow, len(labels))
	for i, label := range labels {
		rows[i] = models.FeatureRow{
			ID:         uuid.Must(uuid.NewV7()),
			PropertyID: propertyID,
			Label:      label,
		}
	}
	if err := db.Table(table).Create(&rows).Error; err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// propertyFromDraft maps the accumulated draft onto the persistence model.
func propertyFromDraft(d *wizard.Draft, id, userID uuid.UUID) *models.Property {
	return &models.Property{
		ID:               id,
		UserID:           userID,
		RefNumber:        d.RefNumber,
		Title:            d.Title,
		Description:      d.Description,
		ListingType:      d.ListingType,
		PropertyType:     d.PropertyType,
		Price:            d.Price,
		Currency:         d.Currency,
		Beds:             d.Beds,
		Baths:            d.Baths,
		Rooms:            d.Rooms,
		Area:             d.Area,
		TerraceArea:      d.TerraceArea,
		YearBuilt:        d.YearBuilt,
		CeilingHeight:    d.CeilingHeight,
		FloorLevel:       d.FloorLevel,
		TotalFloors:      d.TotalFloors,
		Condition:        d.Condition,
		FurnitureType:    d.FurnitureType,
		HeatingType:      d.HeatingType,
		ParkingType:      d.ParkingType,
		BuildingMaterial: d.BuildingMaterial,
		KitchenType:      d.KitchenType,
		ContactName:      d.ContactName,
		ContactPhone:     d.ContactPhone,
		Street:           d.Street,
		District:         d.District,
		City:             d.City,
		Lat:              d.Lat,
		Lng:              d.Lng,
		PropertyFlags:    d.Flags,
		Status:           "active",
	}
}
