package services

import (
	"context"
	"encoding/json"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"mobility-service/internal/models"
	"mobility-service/internal/repository"
	"mobility-service/internal/storage"
)

// ImageStore is the external object-storage collaborator: upload returns a
// public URL plus an opaque deletion handle, and delete takes that handle.
type ImageStore interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (*storage.StoredImage, error)
	Delete(ctx context.Context, handle string) error
}

// allowedBlockTypes is the content-block allow-list; anything else is
// silently dropped from card descriptions.
var allowedBlockTypes = map[string]bool{
	"heading":   true,
	"paragraph": true,
	"list":      true,
	"quote":     true,
}

// FilterDescription parses a JSON-encoded array of content blocks and keeps,
// in their original order, only the blocks whose type is allow-listed.
// Unparseable input is a validation error; individual non-object elements are
// dropped like any other unrecognized block.
func FilterDescription(raw string) ([]json.RawMessage, error) {
	var blocks []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &blocks); err != nil {
		return nil, validationErr("invalid description format")
	}
	filtered := make([]json.RawMessage, 0, len(blocks))
	for _, block := range blocks {
		var peek struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(block, &peek); err != nil {
			continue
		}
		if allowedBlockTypes[peek.Type] {
			filtered = append(filtered, block)
		}
	}
	return filtered, nil
}

// ImageUpload is an incoming image file, decoupled from the HTTP multipart layer.
type ImageUpload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
	Size        int64
}

// CreateCardInput carries the fields accepted on card creation.
type CreateCardInput struct {
	Title       string
	Type        string
	Description string
	Image       *ImageUpload
	CreatedBy   *uuid.UUID
}

// UpdateCardInput carries the fields accepted on card update; nil fields are
// left untouched.
type UpdateCardInput struct {
	Title       *string
	Type        *string
	Description *string
	Image       *ImageUpload
}

// CardService owns card content: description filtering and the image
// url/handle pair persisted after delegating bytes to the ImageStore.
type CardService struct {
	db     *gorm.DB
	images ImageStore
}

// NewCardService creates a new CardService on the given database and image store.
func NewCardService(db *gorm.DB, images ImageStore) *CardService {
	return &CardService{db: db, images: images}
}

// CreateCard filters the description, uploads the image and persists the
// card. If the database insert fails the freshly uploaded image is removed
// again so storage does not accumulate orphans.
func (s *CardService) CreateCard(ctx context.Context, in CreateCardInput) (*models.Card, error) {
	if in.Title == "" {
		return nil, validationErr("card title is required")
	}
	if in.Image == nil {
		return nil, validationErr("image upload failed or no image provided")
	}
	description, err := FilterDescription(in.Description)
	if err != nil {
		return nil, err
	}

	stored, err := s.images.Upload(ctx, in.Image.Filename, in.Image.ContentType, in.Image.Reader, in.Image.Size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store card image")
	}

	card := &models.Card{
		Title:       in.Title,
		Type:        in.Type,
		Description: description,
		ImageURL:    stored.URL,
		ImageHandle: stored.Handle,
		CreatedByID: in.CreatedBy,
	}
	if err := repository.NewCardRepository(s.db).CreateCard(card); err != nil {
		if delErr := s.images.Delete(ctx, stored.Handle); delErr != nil {
			log.Printf("failed to clean up orphaned card image %s: %v", stored.Handle, delErr)
		}
		return nil, errors.Wrap(err, "failed to save card")
	}
	return card, nil
}

// GetCard returns a card by ID.
func (s *CardService) GetCard(id uuid.UUID) (*models.Card, error) {
	card, err := repository.NewCardRepository(s.db).GetCard(id)
	if err != nil {
		return nil, orNotFound(err, "card not found")
	}
	return card, nil
}

// ListCards returns all cards, newest first.
func (s *CardService) ListCards() ([]models.Card, error) {
	return repository.NewCardRepository(s.db).ListCards()
}

// UpdateCard applies field updates. A new description is filtered like on
// creation. A new image first deletes the old one via its handle, then stores
// the replacement; deleting first keeps a failed old-image deletion from
// stranding the new upload.
func (s *CardService) UpdateCard(ctx context.Context, id uuid.UUID, in UpdateCardInput) (*models.Card, error) {
	cards := repository.NewCardRepository(s.db)
	card, err := cards.GetCard(id)
	if err != nil {
		return nil, orNotFound(err, "card not found")
	}

	if in.Description != nil {
		description, err := FilterDescription(*in.Description)
		if err != nil {
			return nil, err
		}
		card.Description = description
	}
	if in.Title != nil {
		card.Title = *in.Title
	}
	if in.Type != nil {
		card.Type = *in.Type
	}

	if in.Image != nil {
		if card.ImageHandle != "" {
			if err := s.images.Delete(ctx, card.ImageHandle); err != nil {
				log.Printf("failed to delete previous card image %s: %v", card.ImageHandle, err)
			}
		}
		stored, err := s.images.Upload(ctx, in.Image.Filename, in.Image.ContentType, in.Image.Reader, in.Image.Size)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store card image")
		}
		card.ImageURL = stored.URL
		card.ImageHandle = stored.Handle
	}

	if err := cards.UpdateCard(card); err != nil {
		return nil, errors.Wrap(err, "failed to update card")
	}
	return card, nil
}

// DeleteCard removes a card and, best effort, its stored image.
func (s *CardService) DeleteCard(ctx context.Context, id uuid.UUID) error {
	cards := repository.NewCardRepository(s.db)
	card, err := cards.GetCard(id)
	if err != nil {
		return orNotFound(err, "card not found")
	}
	if err := cards.DeleteCard(id); err != nil {
		return errors.Wrap(err, "failed to delete card")
	}
	if card.ImageHandle != "" {
		if err := s.images.Delete(ctx, card.ImageHandle); err != nil {
			log.Printf("failed to delete card image %s: %v", card.ImageHandle, err)
		}
	}
	return nil
}

// CountByCategory counts cards carrying the given type tag.
func (s *CardService) CountByCategory(category string) (int64, error) {
	return repository.NewCardRepository(s.db).CountCardsByCategory(category)
}
