package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	model "gig-market/internal/models"
	"gig-market/services/market/helpers"
	"gig-market/utils"
)

// sessionMaxAge is the cookie lifetime in seconds, matching the token TTL.
const sessionMaxAge = 24 * 60 * 60

type AuthServiceInterface interface {
	Register(ctx context.Context, name, email, password string) (model.Profile, error)
	Login(ctx context.Context, email, password string) (model.Profile, string, error)
	CurrentUser(ctx context.Context, userID string) (model.Profile, error)
}

type AuthHandler struct {
	service AuthServiceInterface
}

func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterHandler handles POST /auth/register
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	profile, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "RegisterHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, profile, "account created successfully")
	helpers.LogSuccess("RegisterHandler", "account created successfully", map[string]any{
		"user_id": profile.UserID,
	})
}

// LoginHandler handles POST /auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	profile, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "LoginHandler", err, map[string]any{"email": req.Email})
		return
	}

	c.SetCookie(helpers.SessionCookie, token, sessionMaxAge, "/", "", false, true)
	utils.JSONResponse(c, http.StatusOK, profile, "logged in successfully")
	helpers.LogSuccess("LoginHandler", "logged in successfully", map[string]any{
		"user_id": profile.UserID,
	})
}

// LogoutHandler handles GET /auth/logout
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	c.SetCookie(helpers.SessionCookie, "", -1, "/", "", false, true)
	utils.JSONResponse(c, http.StatusOK, nil, "logged out successfully")
}

// MeHandler handles GET /auth/me
func (h *AuthHandler) MeHandler(c *gin.Context) {
	userID := helpers.CurrentUserID(c)
	profile, err := h.service.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		helpers.HandleServiceError(c, "MeHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, profile, "profile retrieved successfully")
}
