package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"careerpath/api/http/presenter"
	"careerpath/pkg/career"
	"careerpath/pkg/catalog"
	"careerpath/pkg/skills"
)

type SkillsHandler struct {
	uc  skills.UseCase
	cat *catalog.Catalog
}

func NewSkillsHandler(uc skills.UseCase, cat *catalog.Catalog) *SkillsHandler {
	return &SkillsHandler{uc: uc, cat: cat}
}

// @Summary Skill catalog
// @Description Lists every ratable skill with its category, plus the proficiency scale.
// @Tags    skills
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /skills/catalog [get]
func (h *SkillsHandler) Catalog(c *fiber.Ctx) error {
	type skillDTO struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	out := make([]skillDTO, 0, h.cat.Len())
	for _, s := range h.cat.Skills() {
		out = append(out, skillDTO{Name: s.Name, Category: string(s.Category)})
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"skills": out,
		"levels": catalog.Levels,
	})
}

type saveSkillsRequest struct {
	Ratings map[string]string `json:"ratings"`
}

// @Summary Submit skill ratings
// @Description Replaces the user's whole skill vector with the submitted ratings.
// @Tags    skills
// @Accept  json
// @Produce json
// @Param   input body saveSkillsRequest true "skill -> proficiency label"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /skills [put]
func (h *SkillsHandler) Save(c *fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	var req saveSkillsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	vector, err := h.uc.Save(c.Context(), uid, req.Ratings)
	if err != nil {
		if errors.Is(err, career.ErrMalformedInput) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to save skills")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"skills": vector})
}

// @Summary Current skill vector
// @Tags    skills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /skills [get]
func (h *SkillsHandler) Get(c *fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	vector, err := h.uc.Vector(c.Context(), uid)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load skills")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"skills": vector})
}
