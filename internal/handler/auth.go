package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridelite/internal/domain"
	"ridelite/internal/service"
)

// AuthHandler handles HTTP requests for the session.
type AuthHandler struct {
	sessions *service.SessionService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// LoginRequest is the HTTP request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the HTTP request body for registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the HTTP request body for profile updates.
type UpdateProfileRequest struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// SessionResponse is the HTTP response for session operations.
type SessionResponse struct {
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"is_authenticated"`
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and password are required"})
		return
	}

	user, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, SessionResponse{User: user, IsAuthenticated: true})
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name, email and password are required"})
		return
	}

	user, err := h.sessions.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, SessionResponse{User: user, IsAuthenticated: true})
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, SessionResponse{User: nil, IsAuthenticated: false})
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := h.sessions.CurrentUser()
	respondJSON(c, http.StatusOK, SessionResponse{
		User:            user,
		IsAuthenticated: user != nil,
	})
}

// UpdateProfile handles PUT /v1/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.sessions.UpdateProfile(c.Request.Context(), req.Name, req.Phone, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, SessionResponse{User: user, IsAuthenticated: true})
}
