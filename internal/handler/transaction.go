package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avdeev-m/finance-tracker/internal/export"
	"github.com/avdeev-m/finance-tracker/internal/model"
)

func (h *Handler) listTransactions(c *gin.Context, kind model.Kind) {
	transactions, err := h.transactions.List(c.Request.Context(), ownerID(c), kind)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func (h *Handler) deleteTransaction(c *gin.Context, kind model.Kind) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid transaction id"})
		return
	}

	if err = h.transactions.Delete(c.Request.Context(), ownerID(c), kind, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s deleted successfully", kind)})
}

func (h *Handler) downloadTransactions(c *gin.Context, kind model.Kind) {
	transactions, err := h.transactions.List(c.Request.Context(), ownerID(c), kind)
	if err != nil {
		fail(c, err)
		return
	}

	f, err := export.Workbook(kind, transactions)
	if err != nil {
		fail(c, err)
		return
	}

	fileName := fmt.Sprintf("%s_details_%s.xlsx", kind, time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err = f.Write(c.Writer); err != nil {
		fail(c, err)
	}
}
