package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"checklist-service/internal/http/middleware"
	"checklist-service/internal/model"
	"checklist-service/internal/service"
)

func (h *Handler) listReports(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	opts := service.ListReportsOptions{
		VehicleID: strings.TrimSpace(c.Query("vehicle_id")),
		Location:  strings.TrimSpace(c.Query("location")),
	}
	var err error
	if opts.DateFrom, err = parseDateParam(c, "from"); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid 'from' date"))
		return
	}
	if opts.DateTo, err = parseDateParam(c, "to"); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid 'to' date"))
		return
	}
	opts.Limit, opts.Offset = parsePagination(c)

	reports, err := h.reportService.List(c.Request.Context(), principal, opts)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": reports}))
}

func (h *Handler) getReport(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid report id"))
		return
	}

	report, err := h.reportService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(report))
}

func (h *Handler) createReport(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		VehicleID     string             `json:"vehicle_id" binding:"required"`
		Items         []model.ReportItem `json:"items" binding:"required"`
		KerusakanLain *model.DamageNote  `json:"kerusakan_lain"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), principal, service.CreateReportInput{
		VehicleID:     strings.TrimSpace(req.VehicleID),
		Items:         req.Items,
		KerusakanLain: req.KerusakanLain,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(report))
}

func (h *Handler) exportReports(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	from, err := parseDateParam(c, "from")
	if err != nil || from == nil {
		c.JSON(http.StatusBadRequest, errorResponse("'from' date is required"))
		return
	}
	to, err := parseDateParam(c, "to")
	if err != nil || to == nil {
		c.JSON(http.StatusBadRequest, errorResponse("'to' date is required"))
		return
	}

	file, err := h.exportService.ReportRecap(c.Request.Context(), principal, service.ExportOptions{
		Location:  strings.TrimSpace(c.Query("location")),
		VehicleID: strings.TrimSpace(c.Query("vehicle_id")),
		From:      *from,
		To:        *to,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := fmt.Sprintf("rekap-checklist-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		h.log.Error().Err(err).Msg("write xlsx response")
	}
}

func (h *Handler) listVehicleStatuses(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	records, err := h.reportService.VehicleStatuses(c.Request.Context(), principal, strings.TrimSpace(c.Query("location")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": records}))
}

func (h *Handler) getVehicleStatus(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	hullNumber := strings.TrimSpace(c.Param("hull_number"))
	if hullNumber == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid hull number"))
		return
	}

	record, err := h.reportService.VehicleStatus(c.Request.Context(), principal, hullNumber)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(record))
}
