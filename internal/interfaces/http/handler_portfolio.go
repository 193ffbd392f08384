package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type holdingPayload struct {
	UserID       string `json:"user_id" binding:"required"`
	InstrumentID string `json:"instrument_id" binding:"required"`
	Quantity     int64  `json:"quantity"`
}

func (p holdingPayload) ids() (userID, instrumentID uuid.UUID, err error) {
	userID, err = uuid.Parse(p.UserID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	instrumentID, err = uuid.Parse(p.InstrumentID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, instrumentID, nil
}

// associateHolding links a user with an instrument
// @Summary      Associate holding
// @Description  Create a holding after the country trading policy allows it
// @Tags         holdings
// @Accept       json
// @Produce      json
// @Param        holding  body      holdingPayload  true  "Holding data"
// @Success      201      {object}  portfoliodomain.Holding
// @Failure      400      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /users/holdings [post]
func (h *Handler) associateHolding(c *gin.Context) {
	var payload holdingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	userID, instrumentID, err := payload.ids()
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	holding, err := h.portfolio.Associate(c.Request.Context(), userID, instrumentID, payload.Quantity)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, holding)
}

// disassociateHolding unlinks a user from an instrument
// @Summary      Disassociate holding
// @Description  Remove the holding for the exact (user, instrument) pair
// @Tags         holdings
// @Accept       json
// @Produce      json
// @Param        holding  body  holdingPayload  true  "Holding pair"
// @Success      204      "No Content"
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /users/holdings [delete]
func (h *Handler) disassociateHolding(c *gin.Context) {
	var payload holdingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	userID, instrumentID, err := payload.ids()
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.portfolio.Disassociate(c.Request.Context(), userID, instrumentID); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listHoldings returns a user's current positions
// @Summary      List holdings
// @Tags         holdings
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {array}   portfoliodomain.Holding
// @Failure      400  {object}  map[string]string
// @Router       /users/{id}/holdings [get]
func (h *Handler) listHoldings(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	holdings, err := h.portfolio.Holdings(c.Request.Context(), userID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, holdings)
}

// getBalance returns the mark-to-market value of a user's holdings
// @Summary      Portfolio balance
// @Description  Sum of quantity times current price over the user's holdings
// @Tags         holdings
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /users/{id}/balance [get]
func (h *Handler) getBalance(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	balance, err := h.portfolio.Balance(c.Request.Context(), userID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// getEarnings returns unrealized earnings over a user's transactions
// @Summary      Portfolio earnings
// @Description  Sum of (current price - execution price) times quantity over the user's transactions
// @Tags         holdings
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/earnings [get]
func (h *Handler) getEarnings(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	earnings, err := h.portfolio.Earnings(c.Request.Context(), userID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"earnings": earnings})
}
