package api

import (
	"errors"
	"net/http"

	reqdto "kelurahan-booking/internal/handler/dto/request"
	resdto "kelurahan-booking/internal/handler/dto/response"
	"kelurahan-booking/internal/handler/middleware"
	"kelurahan-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{authCommands: authCommands}
}

// @Summary Register administrator
// @Description Create the administrator account; only the first registration succeeds
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.authCommands.Register(c.Request.Context(), commands.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAdminExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "An administrator is already registered",
			})
		case errors.Is(err, commands.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Password must be at least 8 characters with upper, lower, digit and symbol",
			})
		case errors.Is(err, commands.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "All fields are required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Administrator registered",
	})
}

// @Summary Login
// @Description Authenticate by username or email and receive a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), commands.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid credentials",
			})
		case errors.Is(err, commands.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Identifier and password are required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Logout
// @Description Close the open login audit row
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.authCommands.Logout(c.Request.Context(), adminID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

// @Summary Admin exists
// @Description Whether an administrator account has been registered
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /auth/exists [get]
func (h *AuthHandler) Exists(c *gin.Context) {
	exists, err := h.authCommands.AdminExists(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exists": exists,
	})
}
