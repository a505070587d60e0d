package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avdeev-m/finance-tracker/internal/model"
)

type addExpenseRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Date     string  `json:"date"`
	Icon     string  `json:"icon"`
}

func (h *Handler) addExpense(c *gin.Context) {
	var req addExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date"})
		return
	}

	expense := &model.Transaction{
		OwnerID:  ownerID(c),
		Amount:   req.Amount,
		Category: req.Category,
		Icon:     req.Icon,
		Date:     date,
	}
	if err = h.transactions.Add(c.Request.Context(), expense, model.KindExpense); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *Handler) listExpenses(c *gin.Context) {
	h.listTransactions(c, model.KindExpense)
}

func (h *Handler) deleteExpense(c *gin.Context) {
	h.deleteTransaction(c, model.KindExpense)
}

func (h *Handler) downloadExpenses(c *gin.Context) {
	h.downloadTransactions(c, model.KindExpense)
}
