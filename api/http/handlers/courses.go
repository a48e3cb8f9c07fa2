package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careerpath/api/http/presenter"
	"careerpath/pkg/courses"
	"careerpath/pkg/prediction"
)

type CoursesHandler struct {
	uc       courses.UseCase
	analyses prediction.UseCase
}

func NewCoursesHandler(uc courses.UseCase, analyses prediction.UseCase) *CoursesHandler {
	return &CoursesHandler{uc: uc, analyses: analyses}
}

// @Summary Recommended courses for a role
// @Description Courses targeting the role. Use "latest" as the role to resolve it from the newest analysis.
// @Tags    courses
// @Produce json
// @Param   role path string true "target role, or 'latest'"
// @Security BearerAuth
// @Success 200 {array} courses.Course
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /careers/{role}/courses [get]
func (h *CoursesHandler) Recommended(c *fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	role, err := roleParam(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid role")
	}
	if strings.EqualFold(role, "latest") {
		latest, err := h.analyses.Latest(c.Context(), uid)
		if err != nil {
			if errors.Is(err, prediction.ErrNotFound) {
				return presenter.Error(c, http.StatusNotFound, "run an analysis first")
			}
			return presenter.Error(c, http.StatusInternalServerError, "failed to load analysis")
		}
		role = latest.Role
	}
	list, err := h.uc.RecommendedFor(c.Context(), role)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load courses")
	}
	if list == nil {
		list = []courses.Course{}
	}
	return presenter.JSON(c, http.StatusOK, list)
}

// @Summary Enroll in a course
// @Tags    courses
// @Produce json
// @Param   id path string true "course ID (UUID)"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /courses/{id}/enroll [post]
func (h *CoursesHandler) Enroll(c *fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid course ID")
	}
	if err := h.uc.Enroll(c.Context(), uid, courseID); err != nil {
		switch {
		case errors.Is(err, courses.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "course not found")
		case errors.Is(err, courses.ErrAlreadyEnrolled):
			return presenter.Error(c, http.StatusConflict, "already enrolled")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to enroll")
		}
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{"courseId": courseID.String()})
}

// @Summary My courses
// @Tags    courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} courses.Enrollment
// @Router  /my/courses [get]
func (h *CoursesHandler) My(c *fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	list, err := h.uc.MyCourses(c.Context(), uid)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load enrollments")
	}
	if list == nil {
		list = []courses.Enrollment{}
	}
	return presenter.JSON(c, http.StatusOK, list)
}

// @Summary Mark a course completed
// @Tags    courses
// @Produce json
// @Param   id path string true "course ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /my/courses/{id}/complete [post]
func (h *CoursesHandler) Complete(c *fiber.Ctx) error {
	uid, ok := currentUserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid course ID")
	}
	if err := h.uc.Complete(c.Context(), uid, courseID); err != nil {
		if errors.Is(err, courses.ErrNotEnrolled) {
			return presenter.Error(c, http.StatusNotFound, "not enrolled in this course")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to complete course")
	}
	return c.SendStatus(http.StatusNoContent)
}
