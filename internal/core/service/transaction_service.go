package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-tracker/internal/core/domain"
	"github.com/fintrack/finance-tracker/internal/core/ports"
)

type transactionService struct {
	repo  ports.TransactionRepository
	cache ports.SummaryCache
	log   zerolog.Logger
}

// NewTransactionService returns a TransactionService implementation. cache may
// be nil, in which case every summary is computed from the repository.
func NewTransactionService(repo ports.TransactionRepository, cache ports.SummaryCache, log zerolog.Logger) ports.TransactionService {
	return &transactionService{repo: repo, cache: cache, log: log}
}

// List returns all of the user's transactions, newest date first.
func (s *transactionService) List(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create records a new transaction owned by userID. The owner always comes
// from the verified token, never from the request body.
func (s *transactionService) Create(ctx context.Context, userID string, in ports.CreateTransactionInput) (*domain.Transaction, error) {
	if !domain.ValidType(in.Type) || in.Category == "" {
		return nil, domain.ErrInvalidTransaction
	}

	method := in.PaymentMethod
	if method == "" {
		method = domain.PaymentCash
	}
	if !domain.ValidPaymentMethod(method) {
		return nil, domain.ErrInvalidTransaction
	}

	now := time.Now().UTC()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	tx := &domain.Transaction{
		UserID:        userID,
		Type:          in.Type,
		Amount:        in.Amount,
		Category:      in.Category,
		Date:          date,
		Note:          in.Note,
		PaymentMethod: method,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, tx)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to create transaction")
		return nil, err
	}

	s.invalidateSummary(ctx, userID)
	return created, nil
}

// Update applies a partial update to a transaction the user owns.
func (s *transactionService) Update(ctx context.Context, userID, id string, upd ports.TransactionUpdate) (*domain.Transaction, error) {
	if upd.Type != nil && !domain.ValidType(*upd.Type) {
		return nil, domain.ErrInvalidTransaction
	}
	if upd.PaymentMethod != nil && !domain.ValidPaymentMethod(*upd.PaymentMethod) {
		return nil, domain.ErrInvalidTransaction
	}

	updated, err := s.repo.Update(ctx, userID, id, upd)
	if err != nil {
		return nil, err
	}

	s.invalidateSummary(ctx, userID)
	return updated, nil
}

// Delete removes a transaction the user owns.
func (s *transactionService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateSummary(ctx, userID)
	return nil
}

// Summary aggregates one calendar month of the user's transactions: income and
// expense totals plus per-category expense breakdown with percentages. Served
// from cache when a fresh entry exists.
func (s *transactionService) Summary(ctx context.Context, userID string, year, month int) (*ports.SummaryResult, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID, year, month)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("summary cache read failed, computing anyway")
		} else if cached != nil {
			return cached, nil
		}
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	buckets, err := s.repo.AggregateMonth(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	summary := buildSummary(year, month, buckets)

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, summary); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("summary cache write failed")
		}
	}
	return summary, nil
}

func buildSummary(year, month int, buckets []ports.MonthBucket) *ports.SummaryResult {
	summary := &ports.SummaryResult{
		Year:       year,
		Month:      month,
		Categories: []ports.CategorySummary{},
	}

	for _, b := range buckets {
		switch b.Type {
		case domain.TypeIncome:
			summary.TotalIncome += b.Total
		case domain.TypeExpense:
			summary.TotalExpense += b.Total
			summary.Categories = append(summary.Categories, ports.CategorySummary{
				Category: b.Category,
				Total:    b.Total,
				Count:    b.Count,
			})
		}
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense

	for i := range summary.Categories {
		if summary.TotalExpense > 0 {
			summary.Categories[i].Percentage = summary.Categories[i].Total / summary.TotalExpense * 100
		}
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Total > summary.Categories[j].Total
	})

	return summary
}

// invalidateSummary drops cached summaries after a write. Failures are logged,
// never surfaced: a stale summary expires on its own TTL.
func (s *transactionService) invalidateSummary(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("summary cache invalidation failed")
	}
}
