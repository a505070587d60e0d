package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind tells income and expense records apart. It also selects the mongo
// collection a record lives in.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

const (
	DefaultIncomeIcon  = "💰"
	DefaultExpenseIcon = "💸"
)

// ExpenseCategories is the closed set of labels an expense may carry.
// Income sources are free text.
var ExpenseCategories = []string{
	"Food", "Transport", "Shopping", "Bills", "Entertainment", "Health", "Education", "Other",
}

func ValidExpenseCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Transaction is one income or expense record
type Transaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID   int64              `bson:"owner_id" json:"-"`
	Kind      Kind               `bson:"-" json:"type,omitempty"` // set on merged views only
	Amount    float64            `bson:"amount" json:"amount"`
	Source    string             `bson:"source,omitempty" json:"source,omitempty"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Icon      string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
