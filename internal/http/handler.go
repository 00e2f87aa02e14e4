package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"checklist-service/internal/model"
	"checklist-service/internal/service"
)

type Handler struct {
	authService       *service.AuthService
	reportService     *service.ReportService
	taskService       *service.TaskService
	attendanceService *service.AttendanceService
	penaltyService    *service.PenaltyService
	feedbackService   *service.FeedbackService
	ritasiService     *service.RitasiService
	adminService      *service.AdminService
	exportService     *service.ExportService
	log               zerolog.Logger
}

func NewHandler(
	authService *service.AuthService,
	reportService *service.ReportService,
	taskService *service.TaskService,
	attendanceService *service.AttendanceService,
	penaltyService *service.PenaltyService,
	feedbackService *service.FeedbackService,
	ritasiService *service.RitasiService,
	adminService *service.AdminService,
	exportService *service.ExportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		authService:       authService,
		reportService:     reportService,
		taskService:       taskService,
		attendanceService: attendanceService,
		penaltyService:    penaltyService,
		feedbackService:   feedbackService,
		ritasiService:     ritasiService,
		adminService:      adminService,
		exportService:     exportService,
		log:               log,
	}
}

func (h *Handler) login(c *gin.Context) {
	var req struct {
		Login    string `json:"login" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

// Service errors wrap the sentinels with context, so mapping goes through
// errors.Is rather than equality.
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse(err.Error()))
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func parseDateParam(c *gin.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	ts, err := time.ParseInLocation(model.DateLayout, raw, time.Local)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func parsePagination(c *gin.Context) (limit, offset int) {
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	if raw := strings.TrimSpace(c.Query("offset")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			offset = v
		}
	}
	return limit, offset
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

type responseEnvelope struct {
	Data interface{} `json:"data"`
}

func successResponse(data interface{}) responseEnvelope {
	return responseEnvelope{Data: data}
}

func errorResponse(msg string) gin.H {
	return gin.H{"error": msg}
}
