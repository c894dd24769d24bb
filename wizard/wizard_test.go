package wizard

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/spacemen100/house-haven-market-sub000/locations"
	"github.com/spacemen100/house-haven-market-sub000/models"
)

func validTypeSelection() TypeSelectionOutput {
	return TypeSelectionOutput{ListingType: models.ListingSale, PropertyType: models.PropertyApartment}
}

func validContactInfo() ContactInfoOutput {
	return ContactInfoOutput{ContactName: "Nino Beridze", ContactPhone: "+995 555 123 456"}
}

func validBasicInfo() BasicInfoOutput {
	return BasicInfoOutput{
		Title:    "Sunny apartment in Vake",
		Price:    150000,
		Currency: models.CurrencyUSD,
		Beds:     2,
		Baths:    1,
		Rooms:    3,
		Area:     75,
	}
}

func validFeatures() FeaturesAndAddressOutput {
	return FeaturesAndAddressOutput{
		City:     "Tbilissi",
		District: "Vake",
		Street:   "Chavchavadze Avenue",
		Lat:      41.708,
		Lng:      44.76,
	}
}

func advanceAll(t *testing.T, w *Wizard) {
	t.Helper()
	outputs := []StepOutput{
		validTypeSelection(),
		validContactInfo(),
		validBasicInfo(),
		validFeatures(),
		MediaAndPublishOutput{},
	}
	for _, out := range outputs {
		fieldErrs, err := w.Advance(out)
		if err != nil {
			t.Fatalf("Advance(%v) error: %v", out.Step(), err)
		}
		if len(fieldErrs) > 0 {
			t.Fatalf("Advance(%v) field errors: %v", out.Step(), fieldErrs)
		}
	}
}

func TestRefNumberStableAcrossNavigation(t *testing.T) {
	w := New(locations.DefaultCatalog())
	ref := w.RefNumber()
	if len(ref) != RefNumberLength {
		t.Fatalf("ref %q has length %d, want %d", ref, len(ref), RefNumberLength)
	}

	if _, err := w.Advance(validTypeSelection()); err != nil {
		t.Fatal(err)
	}
	if err := w.Back(); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Advance(validTypeSelection()); err != nil {
		t.Fatal(err)
	}

	if w.RefNumber() != ref {
		t.Errorf("ref changed from %q to %q during navigation", ref, w.RefNumber())
	}
}

func TestAdvanceRejectsWrongStepOutput(t *testing.T) {
	w := New(locations.DefaultCatalog())

	// Still on type selection; contact info must be refused
	if _, err := w.Advance(validContactInfo()); !errors.Is(err, ErrWrongStep) {
		t.Errorf("err = %v, want ErrWrongStep", err)
	}
	if w.Current() != StepTypeSelection {
		t.Errorf("current = %v, want StepTypeSelection", w.Current())
	}
}

func TestValidationFailureBlocksAdvance(t *testing.T) {
	w := New(locations.DefaultCatalog())
	if _, err := w.Advance(validTypeSelection()); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Advance(validContactInfo()); err != nil {
		t.Fatal(err)
	}

	bad := validBasicInfo()
	bad.Price = 0
	bad.CeilingHeight = 1.5

	fieldErrs, err := w.Advance(bad)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fieldErrs["price"] != "error.price.positive" {
		t.Errorf("price error = %q, want error.price.positive", fieldErrs["price"])
	}
	if fieldErrs["ceiling_height"] != "error.ceiling_height.range" {
		t.Errorf("ceiling_height error = %q, want error.ceiling_height.range", fieldErrs["ceiling_height"])
	}
	if w.Current() != StepBasicInfo {
		t.Errorf("current = %v, want unchanged StepBasicInfo", w.Current())
	}
	if w.Draft().Title != "" {
		t.Error("rejected output leaked into the draft")
	}
}

func TestCeilingHeightBounds(t *testing.T) {
	tests := []struct {
		height float64
		valid  bool
	}{
		{0, true}, // not provided
		{1.9, false},
		{2.0, true},
		{4.5, true},
		{7.0, true},
		{7.1, false},
	}
	for _, tt := range tests {
		o := validBasicInfo()
		o.CeilingHeight = tt.height
		errs := validateBasicInfo(o)
		_, got := errs["ceiling_height"]
		if got == tt.valid {
			t.Errorf("height %v: valid = %v, want %v", tt.height, !got, tt.valid)
		}
	}
}

func TestDistrictMustBelongToCity(t *testing.T) {
	catalog := locations.DefaultCatalog()

	o := validFeatures()
	o.City = "Batumi" // Vake is not in Batumi
	errs := validateFeaturesAndAddress(o, catalog)
	if errs["district"] != "error.district.not_in_city" {
		t.Errorf("district error = %q, want error.district.not_in_city", errs["district"])
	}
}

func TestStreetRequiresDistrict(t *testing.T) {
	catalog := locations.DefaultCatalog()

	o := validFeatures()
	o.District = ""
	errs := validateFeaturesAndAddress(o, catalog)
	if errs["street"] != "error.street.requires_district" {
		t.Errorf("street error = %q, want error.street.requires_district", errs["street"])
	}
}

func TestFullFlowReadyAndFinish(t *testing.T) {
	w := New(locations.DefaultCatalog())
	if w.Ready() {
		t.Error("fresh wizard must not be ready")
	}

	advanceAll(t, w)

	if !w.Ready() {
		t.Fatal("wizard with every step validated must be ready")
	}
	if w.Current() != StepMediaAndPublish {
		t.Errorf("current = %v, want StepMediaAndPublish", w.Current())
	}

	w.Finish()
	if _, err := w.Advance(MediaAndPublishOutput{}); !errors.Is(err, ErrAlreadyFinished) {
		t.Errorf("err = %v, want ErrAlreadyFinished", err)
	}
	if err := w.Back(); !errors.Is(err, ErrAlreadyFinished) {
		t.Errorf("Back err = %v, want ErrAlreadyFinished", err)
	}
}

func TestBackAtFirstStep(t *testing.T) {
	w := New(locations.DefaultCatalog())
	if err := w.Back(); !errors.Is(err, ErrAtFirstStep) {
		t.Errorf("err = %v, want ErrAtFirstStep", err)
	}
}

func TestDefaultMapPointFromCityCenter(t *testing.T) {
	w := New(locations.DefaultCatalog())
	if _, err := w.Advance(validTypeSelection()); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Advance(validContactInfo()); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Advance(validBasicInfo()); err != nil {
		t.Fatal(err)
	}

	o := validFeatures()
	o.Lat, o.Lng = 0, 0
	if _, err := w.Advance(o); err != nil {
		t.Fatal(err)
	}

	d := w.Draft()
	if d.Lat != 41.7151 || d.Lng != 44.8271 {
		t.Errorf("map point = (%v, %v), want the city center", d.Lat, d.Lng)
	}
}

func TestDefaultMapPointFallsBackToCapital(t *testing.T) {
	w := New(locations.DefaultCatalog())
	if _, err := w.Advance(validTypeSelection()); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Advance(validContactInfo()); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Advance(validBasicInfo()); err != nil {
		t.Fatal(err)
	}

	// A city outside the catalog is allowed; it just has no center
	o := FeaturesAndAddressOutput{City: "Telavi"}
	if _, err := w.Advance(o); err != nil {
		t.Fatal(err)
	}

	d := w.Draft()
	if d.Lat != DefaultCenterLat || d.Lng != DefaultCenterLng {
		t.Errorf("map point = (%v, %v), want the capital fallback", d.Lat, d.Lng)
	}
}

func TestNewForEditKeepsRefNumber(t *testing.T) {
	p := &models.Property{
		ID:           uuid.Must(uuid.NewV7()),
		RefNumber:    "Ab3xY9Z",
		Title:        "Old title",
		ListingType:  models.ListingRent,
		PropertyType: models.PropertyHouse,
		Price:        900,
		Currency:     models.CurrencyGEL,
		Area:         120,
		ContactName:  "Giorgi",
		ContactPhone: "+995 599 000 111",
		City:         "Tbilissi",
	}

	w := NewForEdit(locations.DefaultCatalog(), p, models.CategoryLists{})

	if w.RefNumber() != "Ab3xY9Z" {
		t.Errorf("ref = %q, want the stored one", w.RefNumber())
	}
	if w.EditingID == nil || *w.EditingID != p.ID {
		t.Error("editing target not recorded")
	}

	d := w.Draft()
	if d.Title != "Old title" || d.Price != 900 {
		t.Errorf("draft not pre-populated: %+v", d)
	}

	// Media step has no stored output yet, so an edit session is not
	// immediately submittable
	if w.Ready() {
		t.Error("edit session must pass the publish step before Ready")
	}
}

func TestRemoveStoredImageMovesToRemoved(t *testing.T) {
	imgID := uuid.Must(uuid.NewV7())
	p := &models.Property{
		ID:        uuid.Must(uuid.NewV7()),
		RefNumber: "Zz9aB1c",
		Images: []models.PropertyImage{
			{ID: imgID, URL: "https://cdn.example/1.jpg"},
		},
	}

	w := NewForEdit(locations.DefaultCatalog(), p, nil)
	if w.ImageCount() != 1 {
		t.Fatalf("image count = %d, want 1", w.ImageCount())
	}

	if !w.RemoveStoredImage(imgID) {
		t.Fatal("expected removal to succeed")
	}
	if w.ImageCount() != 0 {
		t.Errorf("image count = %d, want 0", w.ImageCount())
	}
	if len(w.RemovedImages) != 1 || w.RemovedImages[0].ID != imgID {
		t.Error("removed image not queued for deletion")
	}

	if w.RemoveStoredImage(imgID) {
		t.Error("second removal of the same image must fail")
	}
}

func TestNewForEditDropsStaleAddress(t *testing.T) {
	p := &models.Property{
		ID:        uuid.Must(uuid.NewV7()),
		RefNumber: "Qq2wE4r",
		City:      "Tbilissi",
		District:  "Vake",
		Street:    "No Longer Registered Street",
	}

	w := NewForEdit(locations.DefaultCatalog(), p, nil)

	d := w.Draft()
	if d.City != "Tbilissi" || d.District != "Vake" {
		t.Errorf("valid parents must survive: %+v", d)
	}
	if d.Street != "" {
		t.Errorf("street %q is not registered for the district and must be dropped", d.Street)
	}
}

func TestEditSessionImageCapCountsStoredImages(t *testing.T) {
	images := make([]models.PropertyImage, 8)
	for i := range images {
		images[i] = models.PropertyImage{ID: uuid.Must(uuid.NewV7())}
	}
	p := &models.Property{
		ID:        uuid.Must(uuid.NewV7()),
		RefNumber: "Xy7tR2m",
		Images:    images,
	}

	w := NewForEdit(locations.DefaultCatalog(), p, nil)

	batch := make([]StagedImage, 5)
	for i := range batch {
		batch[i] = StagedImage{
			Filename:    fmt.Sprintf("new_%d.jpg", i),
			ContentType: "image/jpeg",
			Size:        1024,
		}
	}
	if _, err := w.AddImages(batch); !errors.Is(err, ErrBatchExceedsCap) {
		t.Fatalf("err = %v, want ErrBatchExceedsCap", err)
	}
	if w.ImageCount() != 8 {
		t.Errorf("image count = %d, want the 8 stored images untouched", w.ImageCount())
	}

	// Two more still fit under the cap of 10
	if _, err := w.AddImages(batch[:2]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.ImageCount() != 10 {
		t.Errorf("image count = %d, want 10", w.ImageCount())
	}

	// Removing a stored image frees a slot
	if !w.RemoveStoredImage(images[0].ID) {
		t.Fatal("expected removal to succeed")
	}
	if _, err := w.AddImages(batch[:1]); err != nil {
		t.Fatalf("unexpected error after freeing a slot: %v", err)
	}
	if w.ImageCount() != 10 {
		t.Errorf("image count = %d, want 10", w.ImageCount())
	}
}
