package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-class-api/internal/dto"
	"github.com/noah-isme/sma-class-api/internal/models"
	"github.com/noah-isme/sma-class-api/internal/service"
	appErrors "github.com/noah-isme/sma-class-api/pkg/errors"
	"github.com/noah-isme/sma-class-api/pkg/response"
)

type classService interface {
	Create(ctx context.Context, req service.CreateClassRequest) (*dto.CreateClassResponse, error)
	List(ctx context.Context) ([]models.Class, error)
	Get(ctx context.Context, id string) (*models.Class, error)
	Update(ctx context.Context, id string, req service.UpdateClassRequest) (*models.Class, error)
	Delete(ctx context.Context, id string) (*dto.DeleteClassResponse, error)
	CanDelete(ctx context.Context, id string) (*dto.DeleteCheck, error)
	GroupedByGrade(ctx context.Context) ([]dto.GradeGroup, error)
	Schedule(ctx context.Context, classID string) ([]dto.DaySchedule, error)
	Students(ctx context.Context, classID string) ([]dto.ClassStudent, error)
	SubjectsWithTeachers(ctx context.Context, classID string) ([]dto.SubjectWithTeachers, error)
}

// ClassHandler exposes the class lifecycle and its aggregation views.
type ClassHandler struct {
	service classService
}

// NewClassHandler constructs ClassHandler.
func NewClassHandler(service classService) *ClassHandler {
	return &ClassHandler{service: service}
}

// Create godoc
// @Summary Create a class with its schedule grid
// @Description Creates the class and generates one empty slot per day and period in a single transaction.
// @Tags classes
// @Accept json
// @Produce json
// @Param payload body service.CreateClassRequest true "Class payload"
// @Success 201 {object} dto.CreateClassResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Security BearerAuth
// @Router /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req service.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrMissingFields.Code, appErrors.ErrMissingFields.Status, "invalid request body"))
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// List godoc
// @Summary List classes
// @Tags classes
// @Produce json
// @Success 200 {array} models.Class
// @Security BearerAuth
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classes)
}

// Get godoc
// @Summary Get a class by ID
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} models.Class
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /classes/{id} [get]
func (h *ClassHandler) Get(c *gin.Context) {
	class, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, class)
}

// Update godoc
// @Summary Update a class
// @Tags classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param payload body service.UpdateClassRequest true "Class payload"
// @Success 200 {object} models.Class
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /classes/{id} [put]
func (h *ClassHandler) Update(c *gin.Context) {
	var req service.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrMissingFields.Code, appErrors.ErrMissingFields.Status, "invalid request body"))
		return
	}

	class, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, class)
}

// Delete godoc
// @Summary Delete a class
// @Description Removes the class and its schedule slots. Fails with 409 while students remain assigned.
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} dto.DeleteClassResponse
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Security BearerAuth
// @Router /classes/{id} [delete]
func (h *ClassHandler) Delete(c *gin.Context) {
	result, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// CanDelete godoc
// @Summary Preview whether a class can be deleted
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} dto.DeleteCheck
// @Security BearerAuth
// @Router /classes/{id}/can-delete [get]
func (h *ClassHandler) CanDelete(c *gin.Context) {
	result, err := h.service.CanDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// GradeGroups godoc
// @Summary List classes grouped by grade with student capacity
// @Tags classes
// @Produce json
// @Success 200 {array} dto.GradeGroup
// @Security BearerAuth
// @Router /classes/grade_group [get]
func (h *ClassHandler) GradeGroups(c *gin.Context) {
	groups, err := h.service.GroupedByGrade(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, groups)
}

// Schedule godoc
// @Summary Weekly schedule for a class
// @Description Registered both as /classes/{id}/schedule and /classes/schedule?class_id=.
// @Tags classes
// @Produce json
// @Param id path string false "Class ID"
// @Param class_id query string false "Class ID (query form)"
// @Success 200 {array} dto.DaySchedule
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /classes/{id}/schedule [get]
func (h *ClassHandler) Schedule(c *gin.Context) {
	classID := c.Param("id")
	if classID == "" {
		classID = c.Query("class_id")
	}
	days, err := h.service.Schedule(c.Request.Context(), classID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, days)
}

// Students godoc
// @Summary Roster with attendance percentage
// @Description Lists students with their attendance percentage. Filter by class with the class_id query parameter.
// @Tags classes
// @Produce json
// @Param class_id query string false "Class ID filter"
// @Success 200 {array} dto.ClassStudent
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /classes/students [get]
func (h *ClassHandler) Students(c *gin.Context) {
	students, err := h.service.Students(c.Request.Context(), c.Query("class_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// SubjectsWithTeachers godoc
// @Summary Curriculum subjects of a class with assigned teachers
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {array} dto.SubjectWithTeachers
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /classes/subjects-with-teachers/{id} [get]
func (h *ClassHandler) SubjectsWithTeachers(c *gin.Context) {
	subjects, err := h.service.SubjectsWithTeachers(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subjects)
}
