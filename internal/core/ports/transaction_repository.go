package ports

import (
	"context"
	"time"

	"github.com/fintrack/finance-tracker/internal/core/domain"
)

// TransactionUpdate carries a partial transaction update. Nil pointers mean
// "leave unchanged".
type TransactionUpdate struct {
	Type          *domain.TransactionType
	Amount        *float64
	Category      *string
	Date          *time.Time
	Note          *string
	PaymentMethod *domain.PaymentMethod
}

// MonthBucket is one (type, category) aggregation bucket for a month.
type MonthBucket struct {
	Type     domain.TransactionType
	Category string
	Total    float64
	Count    int
}

// TransactionRepository defines ownership-scoped transaction persistence.
// Every method filters by userID; an id owned by another user behaves exactly
// like a missing id.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
	Update(ctx context.Context, userID, id string, upd TransactionUpdate) (*domain.Transaction, error)
	Delete(ctx context.Context, userID, id string) error
	AggregateMonth(ctx context.Context, userID string, from, to time.Time) ([]MonthBucket, error)
}
