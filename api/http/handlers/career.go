package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"careerpath/api/http/presenter"
	"careerpath/pkg/career"
	"careerpath/pkg/skills"
)

type CareerHandler struct {
	careers career.UseCase
	skills  skills.UseCase
}

func NewCareerHandler(careers career.UseCase, sk skills.UseCase) *CareerHandler {
	return &CareerHandler{careers: careers, skills: sk}
}

// @Summary List career roles
// @Description Every role from the dataset with its top required skills.
// @Tags    careers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} career.RoleOverview
// @Router  /careers [get]
func (h *CareerHandler) List(c *fiber.Ctx) error {
	roles, err := h.careers.Roles(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to build career profiles")
	}
	return presenter.JSON(c, http.StatusOK, roles)
}

// @Summary Career profile
// @Description Aggregated skill requirements for one role.
// @Tags    careers
// @Produce json
// @Param   role path string true "role name"
// @Security BearerAuth
// @Success 200 {object} career.Profile
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /careers/{role} [get]
func (h *CareerHandler) Profile(c *fiber.Ctx) error {
	role, err := roleParam(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid role")
	}
	profile, err := h.careers.ProfileFor(c.Context(), role)
	if err != nil {
		if errors.Is(err, career.ErrUnknownRole) {
			return presenter.Error(c, http.StatusNotFound, "unknown role")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to build career profiles")
	}
	return presenter.JSON(c, http.StatusOK, profile)
}

// @Summary Skill gap against a role
// @Description Compares the user's stored skill vector with the role's requirements.
// @Tags    careers
// @Produce json
// @Param   role path string true "role name"
// @Param   sort query string false "set to 'gap' to order by gap size"
// @Security BearerAuth
// @Success 200 {object} career.Report
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /careers/{role}/gap [get]
func (h *CareerHandler) Gap(c *fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	role, err := roleParam(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid role")
	}
	vector, err := h.skills.Vector(c.Context(), uid)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load skills")
	}
	report, err := h.careers.GapFor(c.Context(), vector, role)
	if err != nil {
		if errors.Is(err, career.ErrUnknownRole) {
			return presenter.Error(c, http.StatusNotFound, "unknown role")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to evaluate gap")
	}
	if strings.EqualFold(c.Query("sort"), "gap") {
		report.Skills = career.SortByGap(report.Skills)
	}
	return presenter.JSON(c, http.StatusOK, report)
}

// roleParam decodes the :role path segment; role names contain spaces.
func roleParam(c *fiber.Ctx) (string, error) {
	role, err := url.PathUnescape(c.Params("role"))
	if err != nil {
		return "", err
	}
	role = strings.TrimSpace(role)
	if role == "" {
		return "", errors.New("empty role")
	}
	return role, nil
}
