package http

import (
	"net/http"

	appauth "main/internal/application/service/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type registerPayload struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	NationalID string `json:"national_id"`
	CountryID  string `json:"country_id" binding:"required"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// register creates a user account and returns a session token
// @Summary      Register
// @Description  Create a user account and issue a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user  body      registerPayload  true  "Registration data"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	countryID, err := uuid.Parse(payload.CountryID)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	token, err := h.auth.Register(c.Request.Context(), appauth.RegisterInput{
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Email:      payload.Email,
		Password:   payload.Password,
		NationalID: payload.NationalID,
		CountryID:  countryID,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// login verifies credentials and returns a session token
// @Summary      Login
// @Description  Verify credentials and issue a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      loginPayload  true  "Credentials"
// @Success      200          {object}  tokenResponse
// @Failure      400          {object}  map[string]string
// @Failure      500          {object}  map[string]string
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	token, err := h.auth.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: token})
}
