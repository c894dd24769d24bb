package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyImage indexes one uploaded listing photo. URL is the public
// delivery URL; StoragePath is the object-storage path used for deletion.
type PropertyImage struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PropertyID  uuid.UUID `json:"property_id" gorm:"type:uuid;not null;index"`
	URL         string    `json:"url" gorm:"type:text;not null"`
	StoragePath string    `json:"storage_path" gorm:"type:text;not null"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (i *PropertyImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (PropertyImage) TableName() string {
	return "property_images"
}
