package http

import (
	"net/http"

	domain "main/internal/domain/entity/accounts"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type userPayload struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password"`
	NationalID string `json:"national_id"`
	CountryID  string `json:"country_id" binding:"required"`
}

func (p userPayload) toDomain() (*domain.User, error) {
	countryID, err := uuid.Parse(p.CountryID)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Email:      p.Email,
		NationalID: p.NationalID,
		CountryID:  countryID,
	}, nil
}

// listUsers returns all users with their holdings
// @Summary      List users
// @Description  List all users, each with the instruments they hold
// @Tags         users
// @Produce      json
// @Success      200  {array}   appusers.UserDetail
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// getUser returns a user by ID
// @Summary      Get user
// @Description  Get a user with the instruments they hold
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  appusers.UserDetail
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// createUser creates a new user
// @Summary      Create user
// @Description  Create a user; the email must be free and the country must exist
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      userPayload  true  "User data"
// @Success      201   {object}  accountsdomain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users [post]
func (h *Handler) createUser(c *gin.Context) {
	var payload userPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	user, err := payload.toDomain()
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.users.Create(c.Request.Context(), user, payload.Password); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// updateUser updates an existing user
// @Summary      Update user
// @Description  Update a user's profile; an empty password keeps the current one
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "User ID"
// @Param        user  body      userPayload  true  "User data"
// @Success      200   {object}  accountsdomain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	var payload userPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	user, err := payload.toDomain()
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	user.ID = id
	if err := h.users.Update(c.Request.Context(), user, payload.Password); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// deleteUser deletes a user
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Param        id   path  string  true  "User ID"
// @Success      204  "No Content"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
