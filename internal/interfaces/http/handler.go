// @title           Brokerage Back Office API
// @version         1.0
// @description     API for users, instruments, country trading policies, holdings and transactions

// @host      localhost:8080
// @BasePath  /api/v1

package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	appinterfaces "main/internal/application/interfaces"
	appauth "main/internal/application/service/auth"
	appcatalog "main/internal/application/service/catalog"
	appportfolio "main/internal/application/service/portfolio"
	apptransactions "main/internal/application/service/transactions"
	appusers "main/internal/application/service/users"
	accountsdomain "main/internal/domain/entity/accounts"
	catalogdomain "main/internal/domain/entity/catalog"
	portfoliodomain "main/internal/domain/entity/portfolio"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const basePath = "/api/v1"

type Handler struct {
	router       *gin.Engine
	auth         *appauth.Service
	users        *appusers.Service
	catalog      *appcatalog.Service
	portfolio    *appportfolio.Service
	transactions *apptransactions.Service
	cache        *redis.Client
	cacheTTL     time.Duration
}

var _ appinterfaces.HTTPHandler = (*Handler)(nil)

func NewHandler(
	auth *appauth.Service,
	users *appusers.Service,
	catalog *appcatalog.Service,
	portfolio *appportfolio.Service,
	transactions *apptransactions.Service,
	cache *redis.Client,
	cacheTTL time.Duration,
) *Handler {
	router := gin.New()
	router.Use(gin.Recovery())

	h := &Handler{
		router:       router,
		auth:         auth,
		users:        users,
		catalog:      catalog,
		portfolio:    portfolio,
		transactions: transactions,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
	h.registerRoutes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := h.router.Group(basePath)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
	}

	users := api.Group("/users")
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)

		users.POST("/holdings", h.associateHolding)
		users.DELETE("/holdings", h.disassociateHolding)
		users.GET("/:id/holdings", h.listHoldings)

		valuation := users.Group("")
		if h.cache != nil {
			valuation.Use(h.cacheMiddleware())
		}
		valuation.GET("/:id/balance", h.getBalance)
		valuation.GET("/:id/earnings", h.getEarnings)
	}

	catalog := api.Group("")
	if h.cache != nil {
		catalog.Use(h.cacheMiddleware())
	}
	{
		instruments := catalog.Group("/instruments")
		{
			instruments.GET("", h.listInstruments)
			instruments.POST("", h.createInstrument)
			instruments.GET("/:id", h.getInstrument)
			instruments.PUT("/:id", h.updateInstrument)
			instruments.DELETE("/:id", h.deleteInstrument)
		}

		countries := catalog.Group("/countries")
		{
			countries.GET("", h.listCountries)
			countries.POST("", h.createCountry)
			countries.GET("/:id", h.getCountry)
			countries.PUT("/:id", h.updateCountry)
			countries.DELETE("/:id", h.deleteCountry)
		}

		currencies := catalog.Group("/currencies")
		{
			currencies.GET("", h.listCurrencies)
			currencies.POST("", h.createCurrency)
			currencies.GET("/:id", h.getCurrency)
			currencies.PUT("/:id", h.updateCurrency)
			currencies.DELETE("/:id", h.deleteCurrency)
		}

		managers := catalog.Group("/managers")
		{
			managers.GET("", h.listManagers)
			managers.POST("", h.createManager)
			managers.GET("/:id", h.getManager)
			managers.PUT("/:id", h.updateManager)
			managers.DELETE("/:id", h.deleteManager)
			managers.GET("/country/:id", h.listManagersByCountry)
		}
	}

	transactions := api.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// statusFor translates a domain error kind into an HTTP status. The core
// only promises a distinguishable kind; the transport mapping lives here.
func statusFor(err error) int {
	switch {
	case errors.Is(err, accountsdomain.ErrUserNotFound),
		errors.Is(err, catalogdomain.ErrInstrumentNotFound),
		errors.Is(err, catalogdomain.ErrCountryNotFound),
		errors.Is(err, catalogdomain.ErrCurrencyNotFound),
		errors.Is(err, catalogdomain.ErrManagerNotFound),
		errors.Is(err, portfoliodomain.ErrHoldingNotFound),
		errors.Is(err, portfoliodomain.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, portfoliodomain.ErrNotPermitted):
		return http.StatusForbidden
	case errors.Is(err, portfoliodomain.ErrAlreadyHeld):
		return http.StatusConflict
	case errors.Is(err, accountsdomain.ErrEmailTaken),
		errors.Is(err, accountsdomain.ErrInvalidCredentials),
		errors.Is(err, portfoliodomain.ErrInvalidQuantity),
		errors.Is(err, catalogdomain.ErrNegativePrice):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, status int, err error) {
	if err == nil {
		status = http.StatusInternalServerError
		err = errors.New("unknown error")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func writeDomainError(c *gin.Context, err error) {
	writeError(c, statusFor(err), err)
}

func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id: %w", err)
	}
	return id, nil
}

// cacheMiddleware caches GET responses in Redis.
func (h *Handler) cacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := h.cacheKey(c)
		ctx := c.Request.Context()

		if cached, err := h.cache.Get(ctx, key).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			c.Abort()
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: c.Writer,
			status:         http.StatusOK,
			body:           &bytes.Buffer{},
		}
		c.Writer = recorder

		c.Next()

		if recorder.status >= 200 && recorder.status < 300 && recorder.body.Len() > 0 {
			_ = h.cache.Set(ctx, key, recorder.body.Bytes(), h.cacheTTL).Err()
		}
	}
}

type responseRecorder struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(data []byte) (int, error) {
	if len(data) > 0 {
		r.body.Write(data)
	}
	return r.ResponseWriter.Write(data)
}

func (h *Handler) cacheKey(c *gin.Context) string {
	return fmt.Sprintf("cache:%s:%s?%s", c.Request.Method, c.Request.URL.Path, c.Request.URL.RawQuery)
}
