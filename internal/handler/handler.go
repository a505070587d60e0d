// Package handler exposes the services over HTTP. The owner resolved from
// the token travels as an explicit argument into every service call.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/avdeev-m/finance-tracker/internal/service"
)

type Handler struct {
	auth         service.Authorization
	transactions service.Transactions
	dashboard    *service.Dashboard
	uploadsDir   string
}

func New(auth service.Authorization, transactions service.Transactions, dashboard *service.Dashboard, uploadsDir string) *Handler {
	return &Handler{
		auth:         auth,
		transactions: transactions,
		dashboard:    dashboard,
		uploadsDir:   uploadsDir,
	}
}

func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Static("/uploads", h.uploadsDir)

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", h.register)
	auth.POST("/login", h.login)
	auth.GET("/me", h.authMiddleware, h.me)
	auth.POST("/upload-image", h.authMiddleware, h.uploadImage)

	income := v1.Group("/income", h.authMiddleware)
	income.POST("/add", h.addIncome)
	income.GET("/all", h.listIncome)
	income.DELETE("/:id", h.deleteIncome)
	income.GET("/download/excel", h.downloadIncome)

	expense := v1.Group("/expense", h.authMiddleware)
	expense.POST("/add", h.addExpense)
	expense.GET("/all", h.listExpenses)
	expense.DELETE("/:id", h.deleteExpense)
	expense.GET("/download/excel", h.downloadExpenses)

	v1.GET("/dashboard", h.authMiddleware, h.getDashboard)

	return r
}

// fail terminates the request with the status a service error maps to.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.InvalidOwnerErr),
		errors.Is(err, service.InvalidAmountErr),
		errors.Is(err, service.MissingSourceErr),
		errors.Is(err, service.UnknownCategoryErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, service.NotFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		logrus.Errorf("request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
	}
}

// parseDate accepts both full RFC3339 timestamps and bare dates.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if date, err := time.Parse(time.RFC3339, value); err == nil {
		return date.UTC(), nil
	}
	return time.Parse("2006-01-02", value)
}
