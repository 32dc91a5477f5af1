package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/registra-edu/registra-backend/internal/config"
	"github.com/registra-edu/registra-backend/internal/handler"
	"github.com/registra-edu/registra-backend/internal/middleware"
	"github.com/registra-edu/registra-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Attendance *handler.AttendanceHandler
	Grade      *handler.GradeHandler
	Course     *handler.CourseHandler
	Student    *handler.StudentHandler
	Semester   *handler.SemesterHandler
	Offering   *handler.OfferingHandler
	Lecture    *handler.LectureHandler
	Enrollment *handler.EnrollmentHandler
	Lookup     *handler.LookupHandler
	WS         *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Batch writes sit behind a per-IP limiter so a retry loop in the
	// frontend cannot flood the stored procedures.
	writeLimiter := middleware.NewRateLimiter(60, time.Minute)

	// ─── Attendance ────────────────────────────────────────────────────
	attendance := router.Group("/attendance")
	{
		attendance.GET("/lectures", handlers.Attendance.GetLectures)
		attendance.GET("/roster", handlers.Attendance.GetRoster)
		attendance.POST("/mark", writeLimiter.Middleware(), handlers.Attendance.Mark)
	}

	// ─── Grades ────────────────────────────────────────────────────────
	grades := router.Group("/grades")
	{
		grades.GET("/lectures", handlers.Grade.GetLectures)
		grades.GET("/roster", handlers.Grade.GetRoster)
		grades.GET("/history", handlers.Grade.GetHistory)
		grades.POST("/save", writeLimiter.Middleware(), handlers.Grade.Save)
	}

	// ─── Administrative CRUD ───────────────────────────────────────────
	courses := router.Group("/courses")
	{
		courses.GET("", handlers.Course.GetAll)
		courses.GET("/:id", handlers.Course.GetByID)
		courses.POST("", handlers.Course.Create)
		courses.PUT("/:id", handlers.Course.Update)
		courses.DELETE("/:id", handlers.Course.Delete)
	}

	students := router.Group("/students")
	{
		students.GET("", handlers.Student.GetAll)
		students.GET("/:id", handlers.Student.GetByID)
		students.POST("", handlers.Student.Create)
		students.PUT("/:id", handlers.Student.Update)
		students.DELETE("/:id", handlers.Student.Delete)
	}

	router.GET("/semesters", handlers.Semester.GetAll)

	offerings := router.Group("/offerings")
	{
		offerings.GET("", handlers.Offering.GetAll)
		offerings.POST("", handlers.Offering.Create)
		offerings.PUT("/:id", handlers.Offering.Update)
		offerings.DELETE("/:id", handlers.Offering.Delete)
	}

	lectures := router.Group("/lectures")
	{
		lectures.GET("", handlers.Lecture.GetByOffering)
		lectures.GET("/picklists", handlers.Lecture.GetPicklists)
		lectures.POST("", handlers.Lecture.Create)
		lectures.DELETE("/:id", handlers.Lecture.Delete)
	}

	enrollments := router.Group("/enrollments")
	{
		enrollments.GET("", handlers.Enrollment.GetAll)
		enrollments.POST("", handlers.Enrollment.Create)
	}

	// Lookup rows change rarely, so let browsers cache the picklists.
	lookup := router.Group("/lookup")
	lookup.Use(middleware.CacheControl(300))
	{
		lookup.GET("", handlers.Lookup.GetByDomain)
	}

	// ─── WebSocket ─────────────────────────────────────────────────────
	ws := router.Group("/ws")
	{
		ws.GET("/attendance/stream", handlers.WS.AttendanceStream)
	}

	return router
}
