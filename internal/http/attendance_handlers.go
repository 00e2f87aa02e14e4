package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"checklist-service/internal/http/middleware"
	"checklist-service/internal/service"
)

func (h *Handler) listAttendance(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var opts service.ListAttendanceOptions
	if userParam := strings.TrimSpace(c.Query("user_id")); userParam != "" {
		id, err := uuid.Parse(userParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid user_id"))
			return
		}
		opts.UserID = &id
	}
	opts.DateFrom = strings.TrimSpace(c.Query("from"))
	opts.DateTo = strings.TrimSpace(c.Query("to"))
	opts.Limit, opts.Offset = parsePagination(c)

	attendances, err := h.attendanceService.List(c.Request.Context(), principal, opts)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": attendances}))
}

func (h *Handler) attendanceToday(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	day, err := h.attendanceService.Today(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(day))
}

func (h *Handler) clockIn(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		Photo string `json:"photo" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	attendance, err := h.attendanceService.ClockIn(c.Request.Context(), principal, req.Photo)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(attendance))
}

func (h *Handler) clockOut(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		Photo string `json:"photo" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	attendance, err := h.attendanceService.ClockOut(c.Request.Context(), principal, req.Photo)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(attendance))
}

func (h *Handler) listPenalties(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var opts service.ListPenaltiesOptions
	if userParam := strings.TrimSpace(c.Query("user_id")); userParam != "" {
		id, err := uuid.Parse(userParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid user_id"))
			return
		}
		opts.UserID = &id
	}
	opts.Limit, opts.Offset = parsePagination(c)

	penalties, err := h.penaltyService.List(c.Request.Context(), principal, opts)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": penalties}))
}

func (h *Handler) createPenalty(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		UserID            string `json:"user_id" binding:"required"`
		VehicleHullNumber string `json:"vehicle_hull_number"`
		Points            int    `json:"points" binding:"required"`
		Reason            string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	userID, err := uuid.Parse(strings.TrimSpace(req.UserID))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid user_id"))
		return
	}

	penalty, err := h.penaltyService.Create(c.Request.Context(), principal, service.CreatePenaltyInput{
		UserID:            userID,
		VehicleHullNumber: strings.TrimSpace(req.VehicleHullNumber),
		Points:            req.Points,
		Reason:            req.Reason,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(penalty))
}

func (h *Handler) penaltySummary(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	userID, err := uuid.Parse(strings.TrimSpace(c.Param("user_id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid user id"))
		return
	}

	summary, err := h.penaltyService.Summary(c.Request.Context(), principal, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(summary))
}
