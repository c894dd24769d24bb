package wizard

import (
	"errors"

	"github.com/google/uuid"
	"github.com/spacemen100/house-haven-market-sub000/locations"
	"github.com/spacemen100/house-haven-market-sub000/models"
)

// Fallback map point when the selected city has no registered center.
const (
	DefaultCenterLat = 41.7151
	DefaultCenterLng = 44.8271
)

var (
	ErrWrongStep       = errors.New("output does not belong to the current step")
	ErrAlreadyFinished = errors.New("wizard already submitted")
	ErrAtFirstStep     = errors.New("already at the first step")
)

// Wizard is the linear listing form state machine. It owns the accumulated
// draft exclusively; steps merge validated outputs into it and nothing is
// persisted before final submission.
type Wizard struct {
	catalog *locations.Catalog

	current   Step
	refNumber string
	outputs   map[Step]StepOutput
	images    []StagedImage

	// Edit mode: the listing being edited, its stored images, and the ones
	// the user removed during the session (deleted at submit).
	EditingID     *uuid.UUID
	KeptImages    []models.PropertyImage
	RemovedImages []models.PropertyImage

	// GeocodeSnapshot is the raw reverse-geocode response captured when the
	// map point was resolved, persisted verbatim at submit.
	GeocodeSnapshot []byte
}

// New creates an empty wizard. The reference number is generated here,
// exactly once; back-and-forth navigation never regenerates it.
func New(catalog *locations.Catalog) *Wizard {
	return &Wizard{
		catalog:   catalog,
		current:   StepTypeSelection,
		refNumber: NewRefNumber(),
		outputs:   make(map[Step]StepOutput),
	}
}

// NewForEdit creates a wizard pre-populated from a stored listing. The
// stored reference number is kept, not regenerated.
func NewForEdit(catalog *locations.Catalog, p *models.Property, categories models.CategoryLists) *Wizard {
	w := &Wizard{
		catalog:    catalog,
		current:    StepTypeSelection,
		refNumber:  p.RefNumber,
		outputs:    make(map[Step]StepOutput),
		EditingID:  &p.ID,
		KeptImages: append([]models.PropertyImage(nil), p.Images...),
	}
	w.outputs[StepTypeSelection] = TypeSelectionOutput{
		ListingType:  p.ListingType,
		PropertyType: p.PropertyType,
	}
	w.outputs[StepContactInfo] = ContactInfoOutput{
		ContactName:  p.ContactName,
		ContactPhone: p.ContactPhone,
	}
	w.outputs[StepBasicInfo] = BasicInfoOutput{
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		Currency:      p.Currency,
		Beds:          p.Beds,
		Baths:         p.Baths,
		Rooms:         p.Rooms,
		Area:          p.Area,
		TerraceArea:   p.TerraceArea,
		YearBuilt:     p.YearBuilt,
		CeilingHeight: p.CeilingHeight,
		FloorLevel:    p.FloorLevel,
		TotalFloors:   p.TotalFloors,
	}
	// A stored address may predate a catalog change; the cascade drops any
	// value whose parent no longer lists it.
	address := locations.NewSelector(catalog).Restore(locations.Selection{
		City:     p.City,
		District: p.District,
		Street:   p.Street,
	})
	w.outputs[StepFeaturesAndAddress] = FeaturesAndAddressOutput{
		Street:           address.Street,
		District:         address.District,
		City:             p.City,
		Lat:              p.Lat,
		Lng:              p.Lng,
		Condition:        p.Condition,
		FurnitureType:    p.FurnitureType,
		HeatingType:      p.HeatingType,
		ParkingType:      p.ParkingType,
		BuildingMaterial: p.BuildingMaterial,
		KitchenType:      p.KitchenType,
		Flags:            p.PropertyFlags,
		Categories:       categories,
	}
	return w
}

// Current returns the active step.
func (w *Wizard) Current() Step { return w.current }

// RefNumber returns the immutable reference number of this draft.
func (w *Wizard) RefNumber() string { return w.refNumber }

// Draft reduces the accumulated outputs into the current draft snapshot.
func (w *Wizard) Draft() Draft {
	return Reduce(w.refNumber, w.outputs)
}

// Images returns the staged image files.
func (w *Wizard) Images() []StagedImage { return w.images }

// Advance validates the output for the current step, merges it into the
// accumulated draft and moves one state forward. Validation failure blocks
// advancing, surfaces field-level messages and leaves the draft untouched.
func (w *Wizard) Advance(out StepOutput) (models.FieldErrors, error) {
	if w.current == StepSubmitted {
		return nil, ErrAlreadyFinished
	}
	if out.Step() != w.current {
		return nil, ErrWrongStep
	}
	if errs := validate(out, w.catalog); len(errs) > 0 {
		return errs, nil
	}
	if feat, ok := out.(FeaturesAndAddressOutput); ok {
		out = w.defaultMapPoint(feat)
	}
	w.outputs[w.current] = out
	if w.current != StepMediaAndPublish {
		w.current++
	}
	return nil, nil
}

// Back moves to the immediate predecessor step without discarding any
// already-accumulated draft data.
func (w *Wizard) Back() error {
	if w.current == StepSubmitted {
		return ErrAlreadyFinished
	}
	if w.current == StepTypeSelection {
		return ErrAtFirstStep
	}
	w.current--
	return nil
}

// Ready reports whether every step up to and including MediaAndPublish has
// a validated output, which is the precondition for final submission.
func (w *Wizard) Ready() bool {
	if w.current == StepSubmitted {
		return false
	}
	for _, step := range stepOrder {
		if _, ok := w.outputs[step]; !ok {
			return false
		}
	}
	return true
}

// Finish marks the wizard submitted. Callers invoke it only after the store
// write succeeded; a failed submission leaves the wizard on the final step.
func (w *Wizard) Finish() {
	w.current = StepSubmitted
}

// AddImages stages an image batch, enforcing the type/size/cap rules. Kept
// stored images count toward the cap alongside the staged ones.
func (w *Wizard) AddImages(batch []StagedImage) ([]ImageRejection, error) {
	accepted, rejections, err := AcceptImages(w.images, batch, len(w.KeptImages))
	if err != nil {
		return rejections, err
	}
	w.images = accepted
	return rejections, nil
}

// RemoveStagedImage drops one staged image by index.
func (w *Wizard) RemoveStagedImage(index int) bool {
	if index < 0 || index >= len(w.images) {
		return false
	}
	w.images = append(w.images[:index], w.images[index+1:]...)
	return true
}

// ImageCount counts staged plus kept stored images against the cap.
func (w *Wizard) ImageCount() int {
	return len(w.images) + len(w.KeptImages)
}

// RemoveStoredImage marks a stored image (edit mode) for deletion at
// submit time.
func (w *Wizard) RemoveStoredImage(imageID uuid.UUID) bool {
	for i, img := range w.KeptImages {
		if img.ID == imageID {
			w.RemovedImages = append(w.RemovedImages, img)
			w.KeptImages = append(w.KeptImages[:i], w.KeptImages[i+1:]...)
			return true
		}
	}
	return false
}

// defaultMapPoint fills an unpicked coordinate with the selected city's
// center, falling back to the capital when the city is unregistered.
func (w *Wizard) defaultMapPoint(o FeaturesAndAddressOutput) FeaturesAndAddressOutput {
	if o.Lat != 0 || o.Lng != 0 {
		return o
	}
	if lat, lng, ok := w.catalog.Center(o.City); ok {
		o.Lat, o.Lng = lat, lng
		return o
	}
	o.Lat, o.Lng = DefaultCenterLat, DefaultCenterLng
	return o
}
