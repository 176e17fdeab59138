package ports

import (
	"context"
	"time"

	"github.com/fintrack/finance-tracker/internal/core/domain"
)

// CreateTransactionInput carries the fields of a new transaction.
type CreateTransactionInput struct {
	Type          domain.TransactionType
	Amount        float64
	Category      string
	Date          time.Time // zero value means "now"
	Note          string
	PaymentMethod domain.PaymentMethod // empty means cash
}

// CategorySummary is the aggregated expense view of a single category.
type CategorySummary struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SummaryResult aggregates one calendar month of a user's transactions.
type SummaryResult struct {
	Year         int               `json:"year"`
	Month        int               `json:"month"`
	TotalIncome  float64           `json:"total_income"`
	TotalExpense float64           `json:"total_expense"`
	Balance      float64           `json:"balance"`
	Categories   []CategorySummary `json:"categories"`
}

// SummaryCache caches computed month summaries per user. Get returns
// (nil, nil) on a miss; cache failures must never fail the operation.
type SummaryCache interface {
	Get(ctx context.Context, userID string, year, month int) (*SummaryResult, error)
	Set(ctx context.Context, userID string, summary *SummaryResult) error
	Invalidate(ctx context.Context, userID string) error
}

type TransactionService interface {
	List(ctx context.Context, userID string) ([]domain.Transaction, error)
	Create(ctx context.Context, userID string, in CreateTransactionInput) (*domain.Transaction, error)
	Update(ctx context.Context, userID, id string, upd TransactionUpdate) (*domain.Transaction, error)
	Delete(ctx context.Context, userID, id string) error
	Summary(ctx context.Context, userID string, year, month int) (*SummaryResult, error)
}
