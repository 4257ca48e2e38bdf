package http

import (
	"strconv"

	"loan-origination-backend/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// multipartOverhead covers the boundaries and text fields around an upload.
const multipartOverhead = 64 << 10

// UploadBodyLimit is the request size allowed for a file of maxUpload bytes.
func UploadBodyLimit(maxUpload int64) int64 { return maxUpload + multipartOverhead }

type Routes struct {
	Health     *Handler
	Loans      *LoanHandler
	Categories *CategoryHandler
	Dashboard  *DashboardHandler

	// Auth verifies the bearer token; Idempotent guards create and upload.
	Auth       echo.MiddlewareFunc
	Idempotent echo.MiddlewareFunc

	// MaxBodyBytes caps create and upload bodies before they are buffered.
	// Zero means no limit.
	MaxBodyBytes int64
}

// Register mounts every route. A nil Auth or Idempotent is a passthrough.
func (r Routes) Register(e *echo.Echo) {
	e.GET("/health", r.Health.Health)
	e.GET("/metrics", r.Health.Metrics())

	auth, idem := r.Auth, r.Idempotent
	if auth == nil {
		auth = passthrough
	}
	if idem == nil {
		idem = passthrough
	}
	var limit echo.MiddlewareFunc = passthrough
	if r.MaxBodyBytes > 0 {
		limit = echomw.BodyLimit(strconv.FormatInt(r.MaxBodyBytes, 10))
	}
	admin := middleware.RequireRole(middleware.RoleAdmin)

	v1 := e.Group("/v1", auth)

	loans := v1.Group("/loans")
	loans.GET("", r.Loans.ListMine)
	loans.POST("", r.Loans.Create, limit, idem)
	loans.POST("/calculator", r.Loans.Calculate)
	loans.GET("/get/list", r.Loans.ListSubmitted)
	loans.POST("/dashboard", r.Dashboard.Aggregate, admin)
	loans.GET("/customer/:id", r.Loans.ListForCustomer, admin)
	loans.PUT("/admin/:id", r.Loans.UpdateByAdmin, admin)
	loans.POST("/upload/:id", r.Loans.Upload, limit, idem)
	loans.GET("/:id", r.Loans.Get)
	loans.PUT("/:id", r.Loans.Update)
	loans.DELETE("/:id", r.Loans.Remove)

	cats := v1.Group("/loan/category")
	cats.GET("", r.Categories.List)
	cats.POST("", r.Categories.Create, admin)
	cats.GET("/:id", r.Categories.Get)
	cats.PUT("/:id", r.Categories.Update, admin)
	cats.DELETE("/:id", r.Categories.Remove, admin)
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc { return next }
