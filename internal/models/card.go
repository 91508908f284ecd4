package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Card is a media/content entry shown on dashboards. The description is a
// list of content blocks kept as raw JSON; only allow-listed block types
// survive creation and update. The image itself lives in object storage, the
// card keeps the public URL and the handle needed to delete it.
type Card struct {
	ID          uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string            `json:"title" gorm:"not null"`
	Type        string            `json:"type" gorm:"index"`
	Description []json.RawMessage `json:"description" gorm:"serializer:json"`
	ImageURL    string            `json:"image"`
	ImageHandle string            `json:"image_public_id"`
	CreatedByID *uuid.UUID        `json:"created_by_id,omitempty" gorm:"type:uuid"`
	CreatedAt   time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate assigns an ID when none is set.
func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
