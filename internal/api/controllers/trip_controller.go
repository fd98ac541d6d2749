package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"wanderplan/internal/models/request_models"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

func currentUserId(c *gin.Context) string {
	return c.GetString("user_id")
}

// Save godoc
// @Summary Save a generated itinerary
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SaveTripRequest true "Itinerary plus the trip request that produced it"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) Save(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tripId, err := t.tripService.SaveTrip(c.Request.Context(), currentUserId(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": tripId}, "Trip saved successfully")
}

// List godoc
// @Summary List saved trips
// @Tags Trips
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidPageSize)
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), currentUserId(c), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// Get godoc
// @Summary Get one saved trip with its full itinerary
// @Tags Trips
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [get]
func (t *TripController) Get(c *gin.Context) {
	detail, err := t.tripService.GetTrip(c.Request.Context(), currentUserId(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Trip fetched successfully")
}

// Delete godoc
// @Summary Delete a saved trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [delete]
func (t *TripController) Delete(c *gin.Context) {
	if err := t.tripService.DeleteTrip(c.Request.Context(), currentUserId(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// Share godoc
// @Summary Create or fetch the share link token for a trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/share [post]
func (t *TripController) Share(c *gin.Context) {
	token, err := t.tripService.ShareTrip(c.Request.Context(), currentUserId(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"share_token": token}, "Share link created")
}

// Shared godoc
// @Summary View a shared trip by its token (no auth required)
// @Tags Trips
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /shared/{token} [get]
func (t *TripController) Shared(c *gin.Context) {
	detail, err := t.tripService.ResolveSharedTrip(c.Request.Context(), c.Param("token"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Trip fetched successfully")
}

// Similar godoc
// @Summary Suggest saved trips similar to this one
// @Tags Trips
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/similar [get]
func (t *TripController) Similar(c *gin.Context) {
	trips, err := t.tripService.SimilarTrips(c.Request.Context(), currentUserId(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Similar trips fetched successfully")
}

// Export godoc
// @Summary Export a trip itinerary as plain text
// @Tags Trips
// @Produce plain
// @Param id path string true "Trip id"
// @Success 200 {string} string
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/export [get]
func (t *TripController) Export(c *gin.Context) {
	text, err := t.tripService.ExportTrip(c.Request.Context(), currentUserId(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="itinerary.txt"`)
	c.String(http.StatusOK, text)
}

// Stats godoc
// @Summary Aggregate stats over the user's saved trips
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/stats [get]
func (t *TripController) Stats(c *gin.Context) {
	stats, err := t.tripService.TravelerStats(c.Request.Context(), currentUserId(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}
