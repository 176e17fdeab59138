package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-tracker/internal/api/metrics"
	"github.com/fintrack/finance-tracker/internal/core/domain"
	"github.com/fintrack/finance-tracker/internal/core/ports"
)

// TransactionHandler handles HTTP requests for transaction operations. The
// owning user always comes from the verified token in context.
type TransactionHandler struct {
	service ports.TransactionService
}

func NewTransactionHandler(service ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// List returns all of the authenticated user's transactions, newest first.
//
// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Transaction
// @Failure      401  {object}  map[string]string
// @Router       /transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	txs, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, txs)
}

// Create records a new transaction for the authenticated user.
//
// @Summary      Create a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTransactionRequest  true  "Transaction details"
// @Success      201   {object}  domain.Transaction
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tx, err := h.service.Create(c.Request().Context(), userID, ports.CreateTransactionInput{
		Type:          domain.TransactionType(req.Type),
		Amount:        req.Amount,
		Category:      req.Category,
		Date:          req.Date,
		Note:          req.Note,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		return err
	}

	metrics.TransactionsTotal.WithLabelValues("create", string(tx.Type)).Inc()
	return c.JSON(http.StatusCreated, tx)
}

// Update applies a partial update to one of the user's transactions.
//
// @Summary      Update a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Transaction id"
// @Param        body  body      updateTransactionRequest  true  "Fields to update"
// @Success      200   {object}  domain.Transaction
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /transactions/{id} [put]
func (h *TransactionHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upd := ports.TransactionUpdate{
		Amount: req.Amount,
		Date:   req.Date,
		Note:   req.Note,
	}
	if req.Type != nil {
		t := domain.TransactionType(*req.Type)
		upd.Type = &t
	}
	if req.Category != nil {
		upd.Category = req.Category
	}
	if req.PaymentMethod != nil {
		m := domain.PaymentMethod(*req.PaymentMethod)
		upd.PaymentMethod = &m
	}

	tx, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), upd)
	if err != nil {
		return err
	}

	metrics.TransactionsTotal.WithLabelValues("update", string(tx.Type)).Inc()
	return c.JSON(http.StatusOK, tx)
}

// Delete removes one of the user's transactions.
//
// @Summary      Delete a transaction
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Transaction id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	metrics.TransactionsTotal.WithLabelValues("delete", "").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Transaction deleted"})
}

// Summary aggregates one calendar month of the user's transactions. Year and
// month default to the current month.
//
// @Summary      Month summary
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        year   query     int  false  "Year (defaults to current)"
// @Param        month  query     int  false  "Month 1-12 (defaults to current)"
// @Success      200    {object}  ports.SummaryResult
// @Failure      401    {object}  map[string]string
// @Router       /transactions/summary [get]
func (h *TransactionHandler) Summary(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	year := now.Year()
	month := int(now.Month())

	if s := c.QueryParam("year"); s != "" {
		if y, err := strconv.Atoi(s); err == nil && y > 0 {
			year = y
		}
	}
	if s := c.QueryParam("month"); s != "" {
		if m, err := strconv.Atoi(s); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}

	summary, err := h.service.Summary(c.Request().Context(), userID, year, month)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
