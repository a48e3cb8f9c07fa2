package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"careerpath/api/http/presenter"
	"careerpath/pkg/career"
	"careerpath/pkg/prediction"
)

type PredictionHandler struct {
	uc prediction.UseCase
}

func NewPredictionHandler(uc prediction.UseCase) *PredictionHandler {
	return &PredictionHandler{uc: uc}
}

// @Summary Run career analysis
// @Description Predicts the best-fit role from the stored skill vector and evaluates the gap.
// @Tags    predictions
// @Produce json
// @Security BearerAuth
// @Success 201 {object} prediction.Analysis
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /predictions [post]
func (h *PredictionHandler) Analyze(c *fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	analysis, err := h.uc.Analyze(c.Context(), uid)
	if err != nil {
		switch {
		case errors.Is(err, prediction.ErrNoSkills):
			return presenter.Error(c, http.StatusBadRequest, "rate your skills before running an analysis")
		case errors.Is(err, career.ErrUnknownRole):
			// The classifier returned a role absent from the dataset.
			return presenter.Error(c, http.StatusBadGateway, "model returned an unknown role")
		default:
			return presenter.Error(c, http.StatusBadGateway, "career analysis failed")
		}
	}
	return presenter.JSON(c, http.StatusCreated, analysis)
}

// @Summary Analysis history
// @Tags    predictions
// @Produce json
// @Param   limit  query int false "page size (default 20, max 200)"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} prediction.Analysis
// @Router  /predictions [get]
func (h *PredictionHandler) History(c *fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	limit, offset := parseLimitOffset(c, 20)
	history, err := h.uc.History(c.Context(), uid, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load history")
	}
	if history == nil {
		history = []prediction.Analysis{}
	}
	return presenter.JSON(c, http.StatusOK, history)
}

// @Summary Latest analysis
// @Tags    predictions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} prediction.Analysis
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /predictions/latest [get]
func (h *PredictionHandler) Latest(c *fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	analysis, err := h.uc.Latest(c.Context(), uid)
	if err != nil {
		if errors.Is(err, prediction.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "no analyses yet")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load analysis")
	}
	return presenter.JSON(c, http.StatusOK, analysis)
}
