package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"careerpath/api/http/presenter"
	"careerpath/pkg/auth"
	"careerpath/pkg/users"
)

type ProfileHandler struct {
	uc users.UseCase
}

func NewProfileHandler(uc users.UseCase) *ProfileHandler { return &ProfileHandler{uc: uc} }

// @Summary Current user profile
// @Tags    profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	user, err := h.uc.Get(c.Context(), uid)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "user not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":          user.ID.String(),
		"name":        user.Name,
		"email":       user.Email,
		"age":         user.Age,
		"designation": user.Designation,
		"createdAt":   user.CreatedAt,
	})
}

type updateProfileRequest struct {
	Name        *string `json:"name"`
	Age         *int    `json:"age"`
	Designation *string `json:"designation"`
}

// @Summary Update profile
// @Description Partially updates name, age or designation. Email is immutable.
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body updateProfileRequest true "fields to update"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	user, err := h.uc.Update(c.Context(), uid, users.UpdateInput{
		Name:        req.Name,
		Age:         req.Age,
		Designation: req.Designation,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "user not found")
		case errors.Is(err, auth.ErrInvalidInput):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to update profile")
		}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":          user.ID.String(),
		"name":        user.Name,
		"email":       user.Email,
		"age":         user.Age,
		"designation": user.Designation,
	})
}
