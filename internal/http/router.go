package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		ExposeHeaders:   []string{"Content-Type", "Content-Disposition"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/api/v1/auth/login", handler.login)

	protected := router.Group("/api/v1")
	protected.Use(authMiddleware)
	{
		protected.GET("/reports", handler.listReports)
		protected.GET("/reports/export", handler.exportReports)
		protected.GET("/reports/:id", handler.getReport)
		protected.POST("/reports", handler.createReport)

		protected.GET("/vehicles", handler.listVehicles)
		protected.GET("/vehicles/statuses", handler.listVehicleStatuses)
		protected.GET("/vehicles/:hull_number/status", handler.getVehicleStatus)
		protected.POST("/vehicles", handler.createVehicle)
		protected.PUT("/vehicles/:hull_number", handler.updateVehicle)
		protected.DELETE("/vehicles/:hull_number", handler.deleteVehicle)

		protected.GET("/tasks", handler.listTasks)
		protected.GET("/tasks/:id", handler.getTask)
		protected.POST("/tasks", handler.createTask)
		protected.PUT("/tasks/:id/status", handler.updateTaskStatus)
		protected.POST("/tasks/:id/spare-parts", handler.logSpareParts)
		protected.GET("/spare-parts", handler.listSpareParts)
		protected.GET("/spare-parts/export", handler.exportSpareParts)

		protected.GET("/attendance", handler.listAttendance)
		protected.GET("/attendance/today", handler.attendanceToday)
		protected.POST("/attendance/clock-in", handler.clockIn)
		protected.POST("/attendance/clock-out", handler.clockOut)

		protected.GET("/penalties", handler.listPenalties)
		protected.POST("/penalties", handler.createPenalty)
		protected.GET("/penalties/summary/:user_id", handler.penaltySummary)

		protected.GET("/complaints", handler.listComplaints)
		protected.POST("/complaints", handler.createComplaint)
		protected.GET("/suggestions", handler.listSuggestions)
		protected.POST("/suggestions", handler.createSuggestion)
		protected.GET("/notifications", handler.listNotifications)
		protected.PUT("/notifications/:id/read", handler.markNotificationRead)

		protected.GET("/ritasi", handler.listRitasi)
		protected.POST("/ritasi", handler.createRitasi)
		protected.POST("/ritasi/:id/legs", handler.stampRitasiLeg)

		protected.GET("/users", handler.listUsers)
		protected.POST("/users", handler.createUser)
		protected.PUT("/users/:id", handler.updateUser)
		protected.DELETE("/users/:id", handler.deleteUser)

		protected.GET("/locations", handler.listLocations)
		protected.POST("/locations", handler.createLocation)
		protected.DELETE("/locations/:id", handler.deleteLocation)

		protected.GET("/job-mixes", handler.listJobMixes)
		protected.POST("/job-mixes", handler.createJobMix)
		protected.PUT("/job-mixes/:id", handler.updateJobMix)
		protected.DELETE("/job-mixes/:id", handler.deleteJobMix)
	}

	return router
}
