package http

import (
	"net/http"
	"time"

	domain "main/internal/domain/entity/portfolio"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionPayload struct {
	UserID       string    `json:"user_id" binding:"required"`
	InstrumentID string    `json:"instrument_id" binding:"required"`
	Type         string    `json:"type" binding:"required"`
	Quantity     int64     `json:"quantity"`
	UnitPrice    string    `json:"unit_price" binding:"required"`
	ExecutedAt   time.Time `json:"executed_at"`
}

func (p transactionPayload) toDomain() (*domain.Transaction, error) {
	userID, err := uuid.Parse(p.UserID)
	if err != nil {
		return nil, err
	}
	instrumentID, err := uuid.Parse(p.InstrumentID)
	if err != nil {
		return nil, err
	}
	txType, err := domain.NewTransactionType(p.Type)
	if err != nil {
		return nil, err
	}
	unitPrice, err := decimal.NewFromString(p.UnitPrice)
	if err != nil {
		return nil, err
	}
	return &domain.Transaction{
		UserID:       userID,
		InstrumentID: instrumentID,
		Type:         txType,
		Quantity:     p.Quantity,
		UnitPrice:    unitPrice,
		ExecutedAt:   p.ExecutedAt,
	}, nil
}

// listTransactions returns the transaction log, optionally filtered by user
// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Param        user_id  query     string  false  "Filter by user ID"
// @Success      200      {array}   portfoliodomain.Transaction
// @Failure      400      {object}  map[string]string
// @Router       /transactions [get]
func (h *Handler) listTransactions(c *gin.Context) {
	if raw := c.Query("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			writeError(c, http.StatusBadRequest, err)
			return
		}
		txs, err := h.transactions.ListByUser(c.Request.Context(), userID)
		if err != nil {
			writeDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, txs)
		return
	}
	txs, err := h.transactions.List(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

// getTransaction returns a transaction by ID
// @Summary      Get transaction
// @Tags         transactions
// @Produce      json
// @Param        id   path      string  true  "Transaction ID"
// @Success      200  {object}  portfoliodomain.Transaction
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /transactions/{id} [get]
func (h *Handler) getTransaction(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	tx, err := h.transactions.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// createTransaction records an executed trade
// @Summary      Create transaction
// @Description  Record an executed trade and publish it to the event stream
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transaction  body      transactionPayload  true  "Transaction data"
// @Success      201          {object}  portfoliodomain.Transaction
// @Failure      400          {object}  map[string]string
// @Router       /transactions [post]
func (h *Handler) createTransaction(c *gin.Context) {
	var payload transactionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	tx, err := payload.toDomain()
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.transactions.Create(c.Request.Context(), tx); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// updateTransaction updates a transaction record
// @Summary      Update transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id           path      string              true  "Transaction ID"
// @Param        transaction  body      transactionPayload  true  "Transaction data"
// @Success      200          {object}  portfoliodomain.Transaction
// @Failure      400          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Router       /transactions/{id} [put]
func (h *Handler) updateTransaction(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	var payload transactionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	tx, err := payload.toDomain()
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	tx.ID = id
	if err := h.transactions.Update(c.Request.Context(), tx); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// deleteTransaction deletes a transaction record
// @Summary      Delete transaction
// @Tags         transactions
// @Param        id   path  string  true  "Transaction ID"
// @Success      204  "No Content"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /transactions/{id} [delete]
func (h *Handler) deleteTransaction(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.transactions.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
