package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/numerology-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/numerology-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/numerology-service/internal/app"
)

// ReportPath is the public route prefix for stored reports.
const ReportPath = "/api/v1/reports/"

// ReportURL returns the public link for a report id.
func ReportURL(id string) string {
	return ReportPath + id
}

// NumerologyHandler serves readings.
type NumerologyHandler struct {
	service *app.ReadingService
}

// NewNumerologyHandler creates a numerology handler.
func NewNumerologyHandler(service *app.ReadingService) *NumerologyHandler {
	return &NumerologyHandler{service: service}
}

// Calculate handles POST /api/v1/numerology. Authenticated callers get the
// reading stored in their history.
//
// @Summary Calculate numerology numbers
// @Tags numerology
// @Accept json
// @Produce json
// @Param request body dto.CalculateRequest true "Name and date of birth"
// @Success 200 {object} dto.CalculateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/numerology [post]
func (h *NumerologyHandler) Calculate(c *gin.Context) {
	var req dto.CalculateRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	reading, err := h.service.Calculate(c.Request.Context(), app.CalculateInput{
		Name:        req.Name,
		DateOfBirth: req.DOB,
		OwnerID:     middleware.UserID(c),
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CalculateResponse{
		Message:         "Numerology calculated successfully",
		ReadingResponse: dto.NewReadingResponse(reading, ReportURL),
	})
}

// History handles GET /api/v1/numerology/history.
//
// @Summary List the caller's readings
// @Tags numerology
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} dto.HistoryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/numerology/history [get]
func (h *NumerologyHandler) History(c *gin.Context) {
	var query dto.PageQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	page, err := h.service.History(c.Request.Context(), middleware.UserID(c), query.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewHistoryResponse(page, ReportURL))
}

// Get handles GET /api/v1/numerology/:id.
//
// @Summary Get one of the caller's readings
// @Tags numerology
// @Produce json
// @Param id path string true "Reading ID"
// @Success 200 {object} dto.ReadingResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/numerology/{id} [get]
func (h *NumerologyHandler) Get(c *gin.Context) {
	reading, err := h.service.Get(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReadingResponse(reading, ReportURL))
}

// Delete handles DELETE /api/v1/numerology/:id.
//
// @Summary Delete one of the caller's readings
// @Tags numerology
// @Produce json
// @Param id path string true "Reading ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/numerology/{id} [delete]
func (h *NumerologyHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{
		Message: "Reading deleted successfully",
		ID:      id,
	})
}

// RegisterRoutes mounts the numerology routes. auth protects history, get
// and delete; optional decorates calculate.
func (h *NumerologyHandler) RegisterRoutes(rg *gin.RouterGroup, required, optional gin.HandlerFunc) {
	g := rg.Group("/numerology")
	g.POST("", optional, h.Calculate)
	g.GET("/history", required, h.History)
	g.GET("/:id", required, h.Get)
	g.DELETE("/:id", required, h.Delete)
}
