package handlers

import (
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mobility-service/internal/middleware"
	"mobility-service/internal/services"
)

type CardHandler struct {
	cardService *services.CardService
}

func NewCardHandler(cardService *services.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// imageFromForm converts an uploaded multipart file into an ImageUpload.
// The returned closer must be closed by the caller once the upload finished.
func imageFromForm(fh *multipart.FileHeader) (*services.ImageUpload, multipart.File, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &services.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Reader:      file,
		Size:        fh.Size,
	}, file, nil
}

// CreateCard creates a new card
// @Summary Create a new card
// @Description Create a card from multipart form data; the description is filtered to supported content blocks
// @Tags cards
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Card title"
// @Param type formData string false "Card category"
// @Param description formData string false "JSON array of content blocks"
// @Param image formData file true "Card image"
// @Success 201 {object} models.Card "Card successfully created"
// @Failure 400 {object} map[string]interface{} "Bad request - Missing title, image or malformed description"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cards [post]
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		log.Printf("Error reading card image: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Card image is required",
			"details": err.Error(),
		})
	}
	image, file, err := imageFromForm(fh)
	if err != nil {
		log.Printf("Error opening card image: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Could not read card image",
			"details": err.Error(),
		})
	}
	defer file.Close()

	var createdBy *uuid.UUID
	if caller := middleware.CallerFromCtx(c); caller != nil {
		createdBy = &caller.ID
	}

	card, err := h.cardService.CreateCard(c.Context(), services.CreateCardInput{
		Title:       c.FormValue("title"),
		Type:        c.FormValue("type"),
		Description: c.FormValue("description"),
		Image:       image,
		CreatedBy:   createdBy,
	})
	if err != nil {
		log.Printf("Error creating card: %v", err)
		return errorJSON(c, "Failed to create card", err)
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

// ListCards returns all cards
// @Summary List all cards
// @Description Get a list of all cards, newest first
// @Tags cards
// @Accept json
// @Produce json
// @Success 200 {array} models.Card "List of all cards"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cards [get]
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	cards, err := h.cardService.ListCards()
	if err != nil {
		log.Printf("Error listing cards: %v", err)
		return errorJSON(c, "Failed to list cards", err)
	}
	return c.JSON(cards)
}

// GetCard returns a card by ID
// @Summary Get a card by ID
// @Description Get details of a specific card
// @Tags cards
// @Accept json
// @Produce json
// @Param id path string true "Card ID" Format(uuid)
// @Success 200 {object} models.Card "Card found"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Card not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cards/{id} [get]
func (h *CardHandler) GetCard(c *fiber.Ctx) error {
	cardID, ok := parsePathUUID(c, "id")
	if !ok {
		return nil
	}
	card, err := h.cardService.GetCard(cardID)
	if err != nil {
		log.Printf("Error fetching card: ID=%s, Error=%v", cardID, err)
		return errorJSON(c, "Card not found", err)
	}
	return c.JSON(card)
}

// UpdateCard updates a card
// @Summary Update a card
// @Description Update card fields from multipart form data; a new image replaces the stored one
// @Tags cards
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Card ID" Format(uuid)
// @Param title formData string false "Card title"
// @Param type formData string false "Card category"
// @Param description formData string false "JSON array of content blocks"
// @Param image formData file false "Replacement image"
// @Success 200 {object} models.Card "Updated card"
// @Failure 400 {object} map[string]interface{} "Bad request - Invalid UUID or malformed description"
// @Failure 404 {object} map[string]interface{} "Card not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cards/{id} [put]
func (h *CardHandler) UpdateCard(c *fiber.Ctx) error {
	cardID, ok := parsePathUUID(c, "id")
	if !ok {
		return nil
	}

	in := services.UpdateCardInput{}
	if v := c.FormValue("title"); v != "" {
		in.Title = &v
	}
	if v := c.FormValue("type"); v != "" {
		in.Type = &v
	}
	if v := c.FormValue("description"); v != "" {
		in.Description = &v
	}
	if fh, err := c.FormFile("image"); err == nil {
		image, file, err := imageFromForm(fh)
		if err != nil {
			log.Printf("Error opening card image: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   true,
				"message": "Could not read card image",
				"details": err.Error(),
			})
		}
		defer file.Close()
		in.Image = image
	}

	card, err := h.cardService.UpdateCard(c.Context(), cardID, in)
	if err != nil {
		log.Printf("Error updating card: ID=%s, Error=%v", cardID, err)
		return errorJSON(c, "Failed to update card", err)
	}
	return c.JSON(card)
}

// DeleteCard deletes a card
// @Summary Delete a card
// @Description Delete a card and remove its stored image
// @Tags cards
// @Accept json
// @Produce json
// @Param id path string true "Card ID" Format(uuid)
// @Success 200 {object} map[string]interface{} "Card deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Card not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cards/{id} [delete]
func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	cardID, ok := parsePathUUID(c, "id")
	if !ok {
		return nil
	}
	if err := h.cardService.DeleteCard(c.Context(), cardID); err != nil {
		log.Printf("Error deleting card: ID=%s, Error=%v", cardID, err)
		return errorJSON(c, "Failed to delete card", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Card deleted successfully",
		"id":      cardID.String(),
	})
}

// CountCards returns the number of cards in a category
// @Summary Count cards by category
// @Description Get the number of cards whose type matches the given category
// @Tags cards
// @Accept json
// @Produce json
// @Param category path string true "Card category"
// @Success 200 {object} map[string]interface{} "Card count for the category"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cards/count/{category} [get]
func (h *CardHandler) CountCards(c *fiber.Ctx) error {
	category := c.Params("category")
	count, err := h.cardService.CountByCategory(category)
	if err != nil {
		log.Printf("Error counting cards: category=%s, Error=%v", category, err)
		return errorJSON(c, "Failed to count cards", err)
	}
	return c.JSON(fiber.Map{
		"category": category,
		"count":    count,
	})
}
