package handler

import (
	"errors"
	"net/http"

	"github.com/campushub/teacher-service/internal/constants"
	"github.com/campushub/teacher-service/internal/dto"
	apperrors "github.com/campushub/teacher-service/internal/errors"
	"github.com/campushub/teacher-service/internal/service"
	ctxutil "github.com/campushub/teacher-service/pkg/context"
	"github.com/campushub/teacher-service/pkg/logger"
	"github.com/campushub/teacher-service/pkg/validation"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a user with its teacher profile and returns a fresh
// token so the caller is logged in immediately.
func (h *AuthHandler) Register(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "Register")

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid registration request").
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest,
			constants.BuildErrorResponse(constants.MsgValidationError, validation.FormatErrors(err)))
		return
	}

	logger.InfoWithContext(ctx, "Registration attempt").
		String("email", req.Email).
		Log()

	response, err := h.authService.Register(ctx, &req)
	if err != nil {
		logger.WarnWithContext(ctx, "Registration failed").
			String("email", req.Email).
			Err(err).
			Log()
		// A taken email is reported as a field error, like the
		// binding-level validation failures.
		var fieldErrors map[string]string
		if errors.Is(err, apperrors.ErrEmailExists) {
			fieldErrors = map[string]string{"email": apperrors.GetErrorMessage(err)}
		}
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse(apperrors.GetErrorMessage(err), fieldErrors))
		return
	}

	logger.InfoWithContext(ctx, "User registered").
		String("email", req.Email).
		Uint("user_id", response.UserID).
		Uint("teacher_id", response.TeacherID).
		Log()

	c.JSON(http.StatusCreated,
		constants.BuildSuccessResponse(constants.MsgRegistrationSuccess, response))
}

// Login authenticates an active user by email and password.
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "Login")

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid login request").
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest,
			constants.BuildErrorResponse(constants.MsgValidationError, validation.FormatErrors(err)))
		return
	}

	logger.InfoWithContext(ctx, "Login attempt").
		String("email", req.Email).
		Log()

	response, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		logger.WarnWithContext(ctx, "Login failed").
			String("email", req.Email).
			Err(err).
			Log()
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	logger.InfoWithContext(ctx, "User logged in").
		String("email", req.Email).
		Uint("user_id", response.User.ID).
		Log()

	c.JSON(http.StatusOK,
		constants.BuildSuccessResponse(constants.MsgLoginSuccess, response))
}

// Logout acknowledges the logout. Tokens are stateless, so the client
// simply discards its copy and it expires on its own.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "Logout")

	if userID, ok := userIDFromGin(c); ok {
		logger.InfoWithContext(ctx, "User logged out").
			Uint("user_id", userID).
			Log()
	}

	c.JSON(http.StatusOK,
		constants.BuildSuccessResponse(constants.MsgLogoutSuccess, nil))
}

// Profile returns the authenticated user with its teacher profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "Profile")

	userID, ok := userIDFromGin(c)
	if !ok {
		logger.ErrorWithContext(ctx, "User ID missing from authenticated request").
			Log()
		err := apperrors.ErrMissingSubject
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	response, err := h.authService.Profile(ctx, userID)
	if err != nil {
		logger.WarnWithContext(ctx, "Profile lookup failed").
			Uint("user_id", userID).
			Err(err).
			Log()
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("", response))
}

// userIDFromGin reads the identity the JWT middleware stored.
func userIDFromGin(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.GinKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
