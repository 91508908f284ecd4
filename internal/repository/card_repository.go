package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mobility-service/internal/models"
)

// CardRepository provides methods to interact with the Card model in the database.
type CardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new CardRepository instance with the provided GORM database connection.
func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// CreateCard creates a new Card in the database.
func (r *CardRepository) CreateCard(card *models.Card) error {
	return r.db.Create(card).Error
}

// GetCard retrieves a Card by its ID.
func (r *CardRepository) GetCard(id uuid.UUID) (*models.Card, error) {
	var card models.Card
	err := r.db.First(&card, "id = ?", id).Error
	return &card, err
}

// ListCards retrieves all Cards, newest first.
func (r *CardRepository) ListCards() ([]models.Card, error) {
	var cards []models.Card
	err := r.db.Order("created_at DESC").Find(&cards).Error
	return cards, err
}

// UpdateCard updates an existing Card in the database.
func (r *CardRepository) UpdateCard(card *models.Card) error {
	return r.db.Save(card).Error
}

// DeleteCard deletes a Card by its ID.
func (r *CardRepository) DeleteCard(id uuid.UUID) error {
	return r.db.Delete(&models.Card{}, "id = ?", id).Error
}

// CountCardsByCategory counts Cards with the given type tag.
func (r *CardRepository) CountCardsByCategory(category string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Card{}).Where("type = ?", category).Count(&count).Error
	return count, err
}
