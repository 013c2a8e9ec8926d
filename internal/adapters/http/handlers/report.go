package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/numerology-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/numerology-service/internal/app"
)

const contentTypePDF = "application/pdf"

// ReportHandler renders and serves PDF reports.
type ReportHandler struct {
	service *app.ReportService
}

// NewReportHandler creates a report handler.
func NewReportHandler(service *app.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Generate handles POST /api/v1/pdf/generate. The reading behind the report
// is not stored.
//
// @Summary Render a PDF report
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.CalculateRequest true "Name and date of birth"
// @Success 201 {object} dto.GenerateReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/pdf/generate [post]
func (h *ReportHandler) Generate(c *gin.Context) {
	var req dto.CalculateRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	report, _, err := h.service.Generate(c.Request.Context(), req.Name, req.DOB)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.GenerateReportResponse{
		Success: true,
		File:    report.Filename,
		URL:     ReportURL(report.ID),
		Message: "PDF generated successfully",
	})
}

// Download handles GET /api/v1/pdf/download/:filename. The .pdf suffix is
// optional.
//
// @Summary Download a report as an attachment
// @Tags reports
// @Produce application/pdf
// @Param filename path string true "Report file name"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/pdf/download/{filename} [get]
func (h *ReportHandler) Download(c *gin.Context) {
	h.send(c, strings.TrimSuffix(c.Param("filename"), ".pdf"), "attachment")
}

// Serve handles GET /api/v1/reports/:id.
//
// @Summary View a report
// @Tags reports
// @Produce application/pdf
// @Param id path string true "Report ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/reports/{id} [get]
func (h *ReportHandler) Serve(c *gin.Context) {
	h.send(c, c.Param("id"), "inline")
}

func (h *ReportHandler) send(c *gin.Context, id, disposition string) {
	rc, report, err := h.service.Open(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, report.Size, contentTypePDF, rc, map[string]string{
		"Content-Disposition": fmt.Sprintf("%s; filename=%q", disposition, report.Filename),
	})
}

// RegisterRoutes mounts the report routes. Generating and downloading need
// auth; viewing by id does not.
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup, required gin.HandlerFunc) {
	pdf := rg.Group("/pdf", required)
	pdf.POST("/generate", h.Generate)
	pdf.GET("/download/:filename", h.Download)

	rg.GET("/reports/:id", h.Serve)
}
