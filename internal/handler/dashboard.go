package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) getDashboard(c *gin.Context) {
	summary, err := h.dashboard.Summary(c.Request.Context(), ownerID(c), time.Now().UTC())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
