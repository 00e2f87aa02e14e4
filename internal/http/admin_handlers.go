package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"checklist-service/internal/http/middleware"
	"checklist-service/internal/model"
	"checklist-service/internal/service"
)

func (h *Handler) listUsers(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var roles []model.Role
	if roleParam := c.Query("role"); roleParam != "" {
		for _, val := range splitCSV(roleParam) {
			roles = append(roles, model.Role(strings.ToUpper(val)))
		}
	}

	users, err := h.adminService.ListUsers(c.Request.Context(), principal, roles, strings.TrimSpace(c.Query("search")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": users}))
}

type userPayload struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Nik      string `json:"nik"`
	Batangan string `json:"batangan"`
	Location string `json:"location"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (p userPayload) toInput() service.UserInput {
	return service.UserInput{
		Name:     strings.TrimSpace(p.Name),
		Role:     model.Role(strings.ToUpper(strings.TrimSpace(p.Role))),
		Nik:      strings.TrimSpace(p.Nik),
		Batangan: strings.TrimSpace(p.Batangan),
		Location: strings.TrimSpace(p.Location),
		Username: strings.TrimSpace(p.Username),
		Password: p.Password,
	}
}

func (h *Handler) createUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req userPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	user, err := h.adminService.CreateUser(c.Request.Context(), principal, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(user))
}

func (h *Handler) updateUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid user id"))
		return
	}

	var req userPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	user, err := h.adminService.UpdateUser(c.Request.Context(), principal, id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(user))
}

func (h *Handler) deleteUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid user id"))
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) listVehicles(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	vehicles, err := h.adminService.ListVehicles(
		c.Request.Context(),
		principal,
		strings.TrimSpace(c.Query("location")),
		strings.TrimSpace(c.Query("type")),
		strings.TrimSpace(c.Query("search")),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": vehicles}))
}

type vehiclePayload struct {
	HullNumber   string `json:"hull_number"`
	LicensePlate string `json:"license_plate"`
	Type         string `json:"type"`
	OperatorName string `json:"operator_name"`
	Location     string `json:"location"`
}

func (p vehiclePayload) toInput() service.VehicleInput {
	return service.VehicleInput{
		HullNumber:   strings.TrimSpace(p.HullNumber),
		LicensePlate: strings.TrimSpace(p.LicensePlate),
		Type:         strings.TrimSpace(p.Type),
		OperatorName: strings.TrimSpace(p.OperatorName),
		Location:     strings.TrimSpace(p.Location),
	}
}

func (h *Handler) createVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req vehiclePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := h.adminService.CreateVehicle(c.Request.Context(), principal, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(vehicle))
}

func (h *Handler) updateVehicle(c *gin.Context) {
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

	var req vehiclePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := h.adminService.UpdateVehicle(c.Request.Context(), principal, hullNumber, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicle))
}

func (h *Handler) deleteVehicle(c *gin.Context) {
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

	if err := h.adminService.DeleteVehicle(c.Request.Context(), principal, hullNumber); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) listLocations(c *gin.Context) {
	locations, err := h.adminService.ListLocations(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": locations}))
}

func (h *Handler) createLocation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	location, err := h.adminService.CreateLocation(c.Request.Context(), principal, strings.TrimSpace(req.Name))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(location))
}

func (h *Handler) deleteLocation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid location id"))
		return
	}

	if err := h.adminService.DeleteLocation(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) listJobMixes(c *gin.Context) {
	formulas, err := h.adminService.ListJobMixes(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": formulas}))
}

type jobMixPayload struct {
	Name       string               `json:"name" binding:"required"`
	Grade      string               `json:"grade"`
	Components []model.MixComponent `json:"components" binding:"required"`
}

func (h *Handler) createJobMix(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req jobMixPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	formula, err := h.adminService.CreateJobMix(c.Request.Context(), principal, service.JobMixInput{
		Name:       strings.TrimSpace(req.Name),
		Grade:      strings.TrimSpace(req.Grade),
		Components: req.Components,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(formula))
}

func (h *Handler) updateJobMix(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid job mix id"))
		return
	}

	var req struct {
		Name       string               `json:"name"`
		Grade      string               `json:"grade"`
		Components []model.MixComponent `json:"components"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	formula, err := h.adminService.UpdateJobMix(c.Request.Context(), principal, id, service.JobMixInput{
		Name:       strings.TrimSpace(req.Name),
		Grade:      strings.TrimSpace(req.Grade),
		Components: req.Components,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(formula))
}

func (h *Handler) deleteJobMix(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid job mix id"))
		return
	}

	if err := h.adminService.DeleteJobMix(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}
