package api

import (
	"errors"
	"net/http"

	reqdto "kelurahan-booking/internal/handler/dto/request"
	"kelurahan-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PasswordResetHandler struct {
	resetCommands commands.PasswordResetCommands
}

func NewPasswordResetHandler(resetCommands commands.PasswordResetCommands) *PasswordResetHandler {
	return &PasswordResetHandler{resetCommands: resetCommands}
}

// @Summary Send reset code
// @Description Mail a 6-digit reset code to the administrator's email
// @Tags password
// @Accept json
// @Produce json
// @Param request body reqdto.SendOTPRequest true "Email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/password/send-otp [post]
func (h *PasswordResetHandler) SendOTP(c *gin.Context) {
	var req reqdto.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "A valid email is required",
		})
		return
	}

	if err := h.resetCommands.SendOTP(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, commands.ErrEmailNotRegistered) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Email is not registered",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reset code sent",
	})
}

// @Summary Verify reset code
// @Description Check a reset code before allowing the new password
// @Tags password
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyOTPRequest true "Email and code"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/password/verify-otp [post]
func (h *PasswordResetHandler) VerifyOTP(c *gin.Context) {
	var req reqdto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email and a 6-digit code are required",
		})
		return
	}

	if err := h.resetCommands.VerifyOTP(c.Request.Context(), req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, commands.ErrOTPInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Code is incorrect",
			})
		case errors.Is(err, commands.ErrOTPExpired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Code has expired",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Code verified",
	})
}

// @Summary Reset password
// @Description Set a new password after code verification
// @Tags password
// @Accept json
// @Produce json
// @Param request body reqdto.ResetPasswordRequest true "Email and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/password/reset-password [post]
func (h *PasswordResetHandler) ResetPassword(c *gin.Context) {
	var req reqdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email and new password are required",
		})
		return
	}

	if err := h.resetCommands.ResetPassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, commands.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Password must be at least 8 characters with upper, lower, digit and symbol",
			})
		case errors.Is(err, commands.ErrEmailNotRegistered):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Email is not registered",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated",
	})
}
