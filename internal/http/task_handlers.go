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

func (h *Handler) listTasks(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var opts service.ListTasksOptions
	if statusParam := c.Query("status"); statusParam != "" {
		for _, val := range splitCSV(statusParam) {
			opts.Statuses = append(opts.Statuses, model.TaskStatus(strings.ToUpper(val)))
		}
	}
	opts.VehicleID = strings.TrimSpace(c.Query("vehicle_id"))
	if mechanicParam := strings.TrimSpace(c.Query("mechanic_id")); mechanicParam != "" {
		id, err := uuid.Parse(mechanicParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid mechanic_id"))
			return
		}
		opts.MechanicID = &id
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

	records, err := h.taskService.List(c.Request.Context(), principal, opts)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": records}))
}

func (h *Handler) getTask(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid task id"))
		return
	}

	details, err := h.taskService.GetDetails(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(details))
}

func (h *Handler) createTask(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		VehicleHullNumber string               `json:"vehicle_hull_number" binding:"required"`
		RepairDescription string               `json:"repair_description" binding:"required"`
		TargetDate        string               `json:"target_date" binding:"required"`
		TargetTime        string               `json:"target_time" binding:"required"`
		TriggeringReport  string               `json:"triggering_report_id"`
		Mechanics         []model.TaskMechanic `json:"mechanics" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	input := service.CreateTaskInput{
		VehicleHullNumber: strings.TrimSpace(req.VehicleHullNumber),
		RepairDescription: req.RepairDescription,
		TargetDate:        strings.TrimSpace(req.TargetDate),
		TargetTime:        strings.TrimSpace(req.TargetTime),
		Mechanics:         req.Mechanics,
	}
	if raw := strings.TrimSpace(req.TriggeringReport); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid triggering_report_id"))
			return
		}
		input.TriggeringReport = &id
	}

	task, err := h.taskService.Create(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(task))
}

func (h *Handler) updateTaskStatus(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid task id"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	status := model.TaskStatus(strings.ToUpper(strings.TrimSpace(req.Status)))

	if err := h.taskService.UpdateStatus(c.Request.Context(), principal, id, status, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "updated"}))
}

func (h *Handler) logSpareParts(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid task id"))
		return
	}

	var req struct {
		PartsUsed string `json:"parts_used" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	log, err := h.taskService.LogSpareParts(c.Request.Context(), principal, id, service.SparePartInput{PartsUsed: req.PartsUsed})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(log))
}

func (h *Handler) listSpareParts(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	from, err := parseDateParam(c, "from")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid 'from' date"))
		return
	}
	to, err := parseDateParam(c, "to")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid 'to' date"))
		return
	}

	logs, err := h.taskService.ListSpareParts(c.Request.Context(), principal, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": logs}))
}

func (h *Handler) exportSpareParts(c *gin.Context) {
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

	file, err := h.exportService.SparePartRecap(c.Request.Context(), principal, *from, *to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := fmt.Sprintf("rekap-suku-cadang-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		h.log.Error().Err(err).Msg("write xlsx response")
	}
}
