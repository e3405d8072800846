package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thakur-sujal/ERP-Portal/internal/middleware"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
	"github.com/thakur-sujal/ERP-Portal/internal/repository"
	"github.com/thakur-sujal/ERP-Portal/internal/response"
	"github.com/thakur-sujal/ERP-Portal/internal/service"
	"github.com/thakur-sujal/ERP-Portal/internal/validator"
)

// AuthHandler handles registration, login and the current user's profile.
type AuthHandler struct {
	userService    *service.UserService
	studentService *service.StudentService
	facultyService *service.FacultyService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	userService *service.UserService,
	studentService *service.StudentService,
	facultyService *service.FacultyService,
) *AuthHandler {
	return &AuthHandler{
		userService:    userService,
		studentService: studentService,
		facultyService: facultyService,
	}
}

// Register godoc
// POST /api/v1/auth/register
// Creates an account with its role profile and returns a JWT.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, token, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			response.Fail(c, http.StatusConflict, response.ErrDuplicateEmail)
		case errors.Is(err, repository.ErrDuplicateRollNumber):
			response.Fail(c, http.StatusConflict, response.ErrDuplicateRollNo)
		case errors.Is(err, repository.ErrDuplicateEmployeeID):
			response.Fail(c, http.StatusConflict, response.ErrDuplicateEmployee)
		case errors.Is(err, service.ErrProfileIncomplete):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

// Login godoc
// POST /api/v1/auth/login
// Validates email + password and returns a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountDisabled):
			response.Fail(c, http.StatusForbidden, response.ErrAccountDisabled)
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me godoc
// GET /api/v1/auth/me
// Returns the authenticated user with their role profile.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	user, err := h.userService.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	payload := gin.H{"user": user}
	switch user.Role {
	case model.RoleStudent:
		if student, err := h.studentService.GetByUserID(c.Request.Context(), user.ID); err == nil {
			payload["profile"] = student
		}
	case model.RoleFaculty:
		if faculty, err := h.facultyService.GetByUserID(c.Request.Context(), user.ID); err == nil {
			payload["profile"] = faculty
		}
	}

	response.Success(c, http.StatusOK, payload)
}

// UpdateProfile godoc
// PUT /api/v1/auth/me
// Updates the authenticated user's name and phone.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.UpdateProfileRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// UpdatePassword godoc
// PUT /api/v1/auth/me/password
// Changes the authenticated user's password.
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.UpdatePasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.userService.UpdatePassword(c.Request.Context(), claims.UserID, &req); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
