package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avdeev-m/finance-tracker/internal/model"
)

type addIncomeRequest struct {
	Source string  `json:"source" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Date   string  `json:"date"`
	Icon   string  `json:"icon"`
}

func (h *Handler) addIncome(c *gin.Context) {
	var req addIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date"})
		return
	}

	income := &model.Transaction{
		OwnerID: ownerID(c),
		Amount:  req.Amount,
		Source:  req.Source,
		Icon:    req.Icon,
		Date:    date,
	}
	if err = h.transactions.Add(c.Request.Context(), income, model.KindIncome); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, income)
}

func (h *Handler) listIncome(c *gin.Context) {
	h.listTransactions(c, model.KindIncome)
}

func (h *Handler) deleteIncome(c *gin.Context) {
	h.deleteTransaction(c, model.KindIncome)
}

func (h *Handler) downloadIncome(c *gin.Context) {
	h.downloadTransactions(c, model.KindIncome)
}
