package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/campushub/teacher-service/internal/constants"
	"github.com/campushub/teacher-service/internal/dto"
	apperrors "github.com/campushub/teacher-service/internal/errors"
	"github.com/campushub/teacher-service/internal/service"
	ctxutil "github.com/campushub/teacher-service/pkg/context"
	"github.com/campushub/teacher-service/pkg/logger"
	"github.com/campushub/teacher-service/pkg/validation"
	"github.com/gin-gonic/gin"
)

type TeacherHandler struct {
	teacherService *service.TeacherService
}

func NewTeacherHandler(teacherService *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{
		teacherService: teacherService,
	}
}

// List returns every teacher in the directory, newest first.
func (h *TeacherHandler) List(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "List")

	teachers, err := h.teacherService.List(ctx)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list teachers").
			Err(err).
			Log()
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(teachers, len(teachers)))
}

// Get returns a single teacher by ID.
func (h *TeacherHandler) Get(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "Get")

	id, ok := teacherIDParam(c)
	if !ok {
		return
	}

	teacher, err := h.teacherService.Get(ctx, id)
	if err != nil {
		logger.WarnWithContext(ctx, "Failed to get teacher").
			Uint("teacher_id", id).
			Err(err).
			Log()
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("", teacher))
}

// Search matches a substring against name, email, university, and
// department. The term is required.
func (h *TeacherHandler) Search(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "Search")

	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		c.JSON(http.StatusBadRequest,
			constants.BuildErrorResponse("Search term is required", nil))
		return
	}

	teachers, err := h.teacherService.Search(ctx, term)
	if err != nil {
		logger.ErrorWithContext(ctx, "Teacher search failed").
			String("search_term", term).
			Err(err).
			Log()
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSearchResponse(teachers, len(teachers), term))
}

// Update overwrites a teacher's profile fields.
func (h *TeacherHandler) Update(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "Update")

	id, ok := teacherIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid update request").
			Uint("teacher_id", id).
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest,
			constants.BuildErrorResponse(constants.MsgValidationError, validation.FormatErrors(err)))
		return
	}

	teacher, err := h.teacherService.Update(ctx, id, &req)
	if err != nil {
		logger.WarnWithContext(ctx, "Failed to update teacher").
			Uint("teacher_id", id).
			Err(err).
			Log()
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	logger.InfoWithContext(ctx, "Teacher updated").
		Uint("teacher_id", id).
		Log()

	c.JSON(http.StatusOK,
		constants.BuildSuccessResponse(constants.MsgTeacherUpdated, teacher))
}

// Deactivate disables the teacher's owning user account. The records
// stay in the directory tables.
func (h *TeacherHandler) Deactivate(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "Deactivate")

	id, ok := teacherIDParam(c)
	if !ok {
		return
	}

	if err := h.teacherService.Deactivate(ctx, id); err != nil {
		logger.WarnWithContext(ctx, "Failed to deactivate teacher").
			Uint("teacher_id", id).
			Err(err).
			Log()
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	logger.InfoWithContext(ctx, "Teacher deactivated").
		Uint("teacher_id", id).
		Log()

	c.JSON(http.StatusOK,
		constants.BuildSuccessResponse(constants.MsgTeacherDeactivated, nil))
}

// teacherIDParam parses the :id path parameter, answering 400 itself on
// a non-numeric value.
func teacherIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest,
			constants.BuildErrorResponse("Invalid teacher ID", nil))
		return 0, false
	}
	return uint(id), true
}
