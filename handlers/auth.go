package handlers

import (
	"net/http"

	"mycare/middleware"
	"mycare/models"
	"mycare/services/user"
	"mycare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	UserService user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{UserService: svc}
}

// RegisterHandler handles POST /register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.RegistrarUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.UserService.RegisterUser(req)
	if err != nil {
		logger.Error("Registration failed", zap.String("username", req.Username), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Header("Authorization", "Bearer "+resp.Token)
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateHandler handles POST /authenticate. The issued token also
// travels in the Authorization response header.
func (h *AuthHandler) AuthenticateHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var cred models.CredencialesRequest
	if err := c.ShouldBindJSON(&cred); err != nil {
		logger.Error("Invalid credentials payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.UserService.AuthenticateUser(cred)
	if err != nil {
		logger.Warn("Authentication failed", zap.String("username", cred.Username), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.Header("Authorization", "Bearer "+resp.Token)
	c.JSON(http.StatusOK, resp)
}

// SignOutHandler handles POST /signout.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	token := c.GetString(middleware.CtxToken)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	if err := h.UserService.SignOut(token); err != nil {
		utils.GetLogger().Error("Sign out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
