package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const ownerIDKey = "owner_id"

func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authorization token not provided"})
		return
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization header format"})
		return
	}

	ownerID, err := h.auth.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
		return
	}

	c.Set(ownerIDKey, ownerID)
	c.Next()
}

func ownerID(c *gin.Context) int64 {
	id, _ := c.MustGet(ownerIDKey).(int64)
	return id
}
