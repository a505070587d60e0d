package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avdeev-m/finance-tracker/internal/model"
	"github.com/avdeev-m/finance-tracker/internal/repository"
)

var (
	NotFoundErr        = errors.New("transaction not found")
	InvalidAmountErr   = errors.New("amount must be positive")
	MissingSourceErr   = errors.New("source is required for income")
	UnknownCategoryErr = fmt.Errorf("category must be one of %v", model.ExpenseCategories)
)

type Transactions interface {
	Add(ctx context.Context, transaction *model.Transaction, kind model.Kind) error
	List(ctx context.Context, ownerID int64, kind model.Kind) ([]model.Transaction, error)
	Delete(ctx context.Context, ownerID int64, kind model.Kind, id primitive.ObjectID) error
}

type transactions struct {
	repo repository.Transactions
}

func NewTransactions(repo repository.Transactions) *transactions {
	return &transactions{
		repo: repo,
	}
}

// Add validates and stores one record. Validation failures never reach the
// store. Date defaults to the current instant, icon to the kind's glyph.
func (t *transactions) Add(ctx context.Context, transaction *model.Transaction, kind model.Kind) error {
	if transaction.OwnerID <= 0 {
		return InvalidOwnerErr
	}
	if transaction.Amount <= 0 {
		return InvalidAmountErr
	}

	switch kind {
	case model.KindIncome:
		if transaction.Source == "" {
			return MissingSourceErr
		}
		transaction.Category = ""
		if transaction.Icon == "" {
			transaction.Icon = model.DefaultIncomeIcon
		}
	case model.KindExpense:
		if !model.ValidExpenseCategory(transaction.Category) {
			return UnknownCategoryErr
		}
		transaction.Source = ""
		if transaction.Icon == "" {
			transaction.Icon = model.DefaultExpenseIcon
		}
	default:
		return fmt.Errorf("unknown transaction kind %q", kind)
	}

	if transaction.Date.IsZero() {
		transaction.Date = time.Now().UTC()
	}
	return t.repo.Insert(ctx, transaction, kind)
}

func (t *transactions) List(ctx context.Context, ownerID int64, kind model.Kind) ([]model.Transaction, error) {
	if ownerID <= 0 {
		return nil, InvalidOwnerErr
	}
	return t.repo.ListByOwner(ctx, ownerID, kind)
}

func (t *transactions) Delete(ctx context.Context, ownerID int64, kind model.Kind, id primitive.ObjectID) error {
	if ownerID <= 0 {
		return InvalidOwnerErr
	}
	deleted, err := t.repo.DeleteByID(ctx, ownerID, kind, id)
	if err != nil {
		return err
	}
	if !deleted {
		return NotFoundErr
	}
	return nil
}
