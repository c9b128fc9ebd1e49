// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/technsat/storefront/internal/auth"
	"github.com/technsat/storefront/internal/i18n"
	"github.com/technsat/storefront/internal/utils"
)

type AuthHandler struct {
	authenticator auth.Authenticator
	tokenTTLHours int
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func NewAuthHandler(authenticator auth.Authenticator, tokenTTLHours int) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		tokenTTLHours: tokenTTLHours,
	}
}

// POST /admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if !h.authenticator.Authenticate(req.Username, req.Password) {
		logrus.WithFields(logrus.Fields{
			"username": req.Username,
			"ip":       c.ClientIP(),
		}).Warn("Failed admin login attempt")
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
		return
	}

	token, err := utils.GenerateAdminToken(req.Username, h.tokenTTLHours)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"token":    token,
		"username": req.Username,
		"message":  i18n.T(lang, i18n.KeyAuthLoginSuccess),
	})
}

// POST /admin/logout
//
// Tokens are stateless, so logout only confirms; the client drops the token.
func (h *AuthHandler) Logout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthLogoutSuccess),
	})
}
