package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"mobility-service/internal/services"
)

type MobilityHandler struct {
	statsService *services.StatsService
}

func NewMobilityHandler(statsService *services.StatsService) *MobilityHandler {
	return &MobilityHandler{statsService: statsService}
}

// Overview returns the mobility overview counters
// @Summary Mobility overview
// @Description Get project counts by status and application counts by status
// @Tags mobility
// @Accept json
// @Produce json
// @Success 200 {object} services.OverviewStats "Overview counters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mobility/overview [get]
func (h *MobilityHandler) Overview(c *fiber.Ctx) error {
	stats, err := h.statsService.Overview()
	if err != nil {
		log.Printf("Error computing overview stats: %v", err)
		return errorJSON(c, "Failed to compute overview", err)
	}
	return c.JSON(stats)
}

// ApplicationStats returns applications grouped by project
// @Summary Application statistics
// @Description Get all applications grouped per project with applicant display fields
// @Tags mobility
// @Accept json
// @Produce json
// @Success 200 {object} services.ApplicationStatsReport "Applications grouped by project"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mobility/application-stats [get]
func (h *MobilityHandler) ApplicationStats(c *fiber.Ctx) error {
	report, err := h.statsService.ApplicationStats()
	if err != nil {
		log.Printf("Error computing application stats: %v", err)
		return errorJSON(c, "Failed to compute application stats", err)
	}
	return c.JSON(report)
}

// ApplicationsByDate returns date-wise application buckets
// @Summary Date-wise application counts
// @Description Get applications within an inclusive date range, bucketed per day with per-status counts
// @Tags mobility
// @Accept json
// @Produce json
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} services.DatewiseBucket "Per-day application buckets"
// @Failure 400 {object} map[string]interface{} "Missing or malformed date parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mobility/datewise [get]
func (h *MobilityHandler) ApplicationsByDate(c *fiber.Ctx) error {
	buckets, err := h.statsService.ApplicationsByDate(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		log.Printf("Error computing date-wise stats: %v", err)
		return errorJSON(c, "Failed to compute date-wise applications", err)
	}
	return c.JSON(buckets)
}
