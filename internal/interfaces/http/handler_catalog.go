package http

import (
	"net/http"

	domain "main/internal/domain/entity/catalog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type instrumentPayload struct {
	Name     string `json:"name" binding:"required"`
	PriceUSD string `json:"price_usd" binding:"required"`
}

func (p instrumentPayload) toDomain() (*domain.Instrument, error) {
	price, err := decimal.NewFromString(p.PriceUSD)
	if err != nil {
		return nil, err
	}
	return &domain.Instrument{Name: p.Name, PriceUSD: price}, nil
}

type countryPayload struct {
	Name                 string   `json:"name" binding:"required"`
	PermittedInstruments []string `json:"permitted_instruments"`
}

func (p countryPayload) toDomain() (*domain.Country, error) {
	permitted, err := domain.NormalizeIDs(p.PermittedInstruments)
	if err != nil {
		return nil, err
	}
	return &domain.Country{Name: p.Name, PermittedInstruments: permitted}, nil
}

type currencyPayload struct {
	Name      string `json:"name" binding:"required"`
	CountryID string `json:"country_id" binding:"required"`
}

func (p currencyPayload) toDomain() (*domain.Currency, error) {
	countryID, err := uuid.Parse(p.CountryID)
	if err != nil {
		return nil, err
	}
	return &domain.Currency{Name: p.Name, CountryID: countryID}, nil
}

type managerPayload struct {
	Name      string `json:"name" binding:"required"`
	CountryID string `json:"country_id" binding:"required"`
}

func (p managerPayload) toDomain() (*domain.Manager, error) {
	countryID, err := uuid.Parse(p.CountryID)
	if err != nil {
		return nil, err
	}
	return &domain.Manager{Name: p.Name, CountryID: countryID}, nil
}

// Instruments

// listInstruments returns all instruments
// @Summary      List instruments
// @Tags         instruments
// @Produce      json
// @Success      200  {array}   catalogdomain.Instrument
// @Failure      500  {object}  map[string]string
// @Router       /instruments [get]
func (h *Handler) listInstruments(c *gin.Context) {
	instruments, err := h.catalog.ListInstruments(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, instruments)
}

// getInstrument returns an instrument by ID
// @Summary      Get instrument
// @Tags         instruments
// @Produce      json
// @Param        id   path      string  true  "Instrument ID"
// @Success      200  {object}  catalogdomain.Instrument
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /instruments/{id} [get]
func (h *Handler) getInstrument(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	instrument, err := h.catalog.GetInstrument(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, instrument)
}

// createInstrument creates an instrument
// @Summary      Create instrument
// @Tags         instruments
// @Accept       json
// @Produce      json
// @Param        instrument  body      instrumentPayload  true  "Instrument data"
// @Success      201         {object}  catalogdomain.Instrument
// @Failure      400         {object}  map[string]string
// @Router       /instruments [post]
func (h *Handler) createInstrument(c *gin.Context) {
	var payload instrumentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	instrument, err := payload.toDomain()
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.catalog.CreateInstrument(c.Request.Context(), instrument); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, instrument)
}

// updateInstrument updates an instrument
// @Summary      Update instrument
// @Tags         instruments
// @Accept       json
// @Produce      json
// @Param        id          path      string             true  "Instrument ID"
// @Param        instrument  body      instrumentPayload  true  "Instrument data"
// @Success      200         {object}  catalogdomain.Instrument
// @Failure      400         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /instruments/{id} [put]
func (h *Handler) updateInstrument(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	var payload instrumentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	instrument, err := payload.toDomain()
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	instrument.ID = id
	if err := h.catalog.UpdateInstrument(c.Request.Context(), instrument); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, instrument)
}

// deleteInstrument deletes an instrument
// @Summary      Delete instrument
// @Tags         instruments
// @Param        id   path  string  true  "Instrument ID"
// @Success      204  "No Content"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /instruments/{id} [delete]
func (h *Handler) deleteInstrument(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.catalog.DeleteInstrument(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Countries

// listCountries returns all countries
// @Summary      List countries
// @Tags         countries
// @Produce      json
// @Success      200  {array}   catalogdomain.Country
// @Failure      500  {object}  map[string]string
// @Router       /countries [get]
func (h *Handler) listCountries(c *gin.Context) {
	countries, err := h.catalog.ListCountries(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

// getCountry returns a country by ID
// @Summary      Get country
// @Tags         countries
// @Produce      json
// @Param        id   path      string  true  "Country ID"
// @Success      200  {object}  catalogdomain.Country
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /countries/{id} [get]
func (h *Handler) getCountry(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	country, err := h.catalog.GetCountry(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}

// createCountry creates a country with its trading policy
// @Summary      Create country
// @Tags         countries
// @Accept       json
// @Produce      json
// @Param        country  body      countryPayload  true  "Country data"
// @Success      201      {object}  catalogdomain.Country
// @Failure      400      {object}  map[string]string
// @Router       /countries [post]
func (h *Handler) createCountry(c *gin.Context) {
	var payload countryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	country, err := payload.toDomain()
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.catalog.CreateCountry(c.Request.Context(), country); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, country)
}

// updateCountry updates a country and its trading policy
// @Summary      Update country
// @Tags         countries
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Country ID"
// @Param        country  body      countryPayload  true  "Country data"
// @Success      200      {object}  catalogdomain.Country
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /countries/{id} [put]
func (h *Handler) updateCountry(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	var payload countryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	country, err := payload.toDomain()
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	country.ID = id
	if err := h.catalog.UpdateCountry(c.Request.Context(), country); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}

// deleteCountry deletes a country
// @Summary      Delete country
// @Tags         countries
// @Param        id   path  string  true  "Country ID"
// @Success      204  "No Content"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /countries/{id} [delete]
func (h *Handler) deleteCountry(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.catalog.DeleteCountry(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Currencies

// listCurrencies returns all currencies
// @Summary      List currencies
// @Tags         currencies
// @Produce      json
// @Success      200  {array}   catalogdomain.Currency
// @Failure      500  {object}  map[string]string
// @Router       /currencies [get]
func (h *Handler) listCurrencies(c *gin.Context) {
	currencies, err := h.catalog.ListCurrencies(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, currencies)
}

// getCurrency returns a currency by ID
// @Summary      Get currency
// @Tags         currencies
// @Produce      json
// @Param        id   path      string  true  "Currency ID"
// @Success      200  {object}  catalogdomain.Currency
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /currencies/{id} [get]
func (h *Handler) getCurrency(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	currency, err := h.catalog.GetCurrency(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, currency)
}

// createCurrency creates a currency tied to a country
// @Summary      Create currency
// @Tags         currencies
// @Accept       json
// @Produce      json
// @Param        currency  body      currencyPayload  true  "Currency data"
// @Success      201       {object}  catalogdomain.Currency
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /currencies [post]
func (h *Handler) createCurrency(c *gin.Context) {
	var payload currencyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	currency, err := payload.toDomain()
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.catalog.CreateCurrency(c.Request.Context(), currency); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, currency)
}

// updateCurrency updates a currency
// @Summary      Update currency
// @Tags         currencies
// @Accept       json
// @Produce      json
// @Param        id        path      string           true  "Currency ID"
// @Param        currency  body      currencyPayload  true  "Currency data"
// @Success      200       {object}  catalogdomain.Currency
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /currencies/{id} [put]
func (h *Handler) updateCurrency(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	var payload currencyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	currency, err := payload.toDomain()
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	currency.ID = id
	if err := h.catalog.UpdateCurrency(c.Request.Context(), currency); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, currency)
}

// deleteCurrency deletes a currency
// @Summary      Delete currency
// @Tags         currencies
// @Param        id   path  string  true  "Currency ID"
// @Success      204  "No Content"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /currencies/{id} [delete]
func (h *Handler) deleteCurrency(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.catalog.DeleteCurrency(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Managers

// listManagers returns all fund managers
// @Summary      List managers
// @Tags         managers
// @Produce      json
// @Success      200  {array}   catalogdomain.Manager
// @Failure      500  {object}  map[string]string
// @Router       /managers [get]
func (h *Handler) listManagers(c *gin.Context) {
	managers, err := h.catalog.ListManagers(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, managers)
}

// listManagersByCountry returns the fund managers registered in a country
// @Summary      List managers by country
// @Tags         managers
// @Produce      json
// @Param        id   path      string  true  "Country ID"
// @Success      200  {array}   catalogdomain.Manager
// @Failure      400  {object}  map[string]string
// @Router       /managers/country/{id} [get]
func (h *Handler) listManagersByCountry(c *gin.Context) {
	countryID, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	managers, err := h.catalog.ListManagersByCountry(c.Request.Context(), countryID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, managers)
}

// getManager returns a manager by ID
// @Summary      Get manager
// @Tags         managers
// @Produce      json
// @Param        id   path      string  true  "Manager ID"
// @Success      200  {object}  catalogdomain.Manager
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /managers/{id} [get]
func (h *Handler) getManager(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	manager, err := h.catalog.GetManager(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, manager)
}

// createManager creates a fund manager tied to a country
// @Summary      Create manager
// @Tags         managers
// @Accept       json
// @Produce      json
// @Param        manager  body      managerPayload  true  "Manager data"
// @Success      201      {object}  catalogdomain.Manager
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /managers [post]
func (h *Handler) createManager(c *gin.Context) {
	var payload managerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	manager, err := payload.toDomain()
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.catalog.CreateManager(c.Request.Context(), manager); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, manager)
}

// updateManager updates a fund manager
// @Summary      Update manager
// @Tags         managers
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Manager ID"
// @Param        manager  body      managerPayload  true  "Manager data"
// @Success      200      {object}  catalogdomain.Manager
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /managers/{id} [put]
func (h *Handler) updateManager(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	var payload managerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	manager, err := payload.toDomain()
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	manager.ID = id
	if err := h.catalog.UpdateManager(c.Request.Context(), manager); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, manager)
}

// deleteManager deletes a fund manager
// @Summary      Delete manager
// @Tags         managers
// @Param        id   path  string  true  "Manager ID"
// @Success      204  "No Content"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /managers/{id} [delete]
func (h *Handler) deleteManager(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.catalog.DeleteManager(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
