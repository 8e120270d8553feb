package v1

import (
	"net/http"

	"edu-finder-backend/internal/delivery/http/response"
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase, loginLimit gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	auth := r.Group("/auth")
	{
		auth.POST("/login", loginLimit, handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", handler.Me)
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary      Mock login
// @Description  Accepts the single configured credential pair and marks this client as signed in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response{data=domain.AuthMarker}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Router       /auth/login [post]
// @Security     ClientToken
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please fill in all fields"))
		return
	}

	marker, err := h.authUC.Login(c.Request.Context(), clientID(c), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful!", marker)
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
// @Security     ClientToken
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUC.Logout(c.Request.Context(), clientID(c)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Me godoc
// @Summary      Current user
// @Description  The stored login marker, or null for a guest
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.AuthMarker}
// @Router       /auth/me [get]
// @Security     ClientToken
func (h *AuthHandler) Me(c *gin.Context) {
	marker, err := h.authUC.CurrentUser(c.Request.Context(), clientID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if marker == nil {
		response.Success(c, http.StatusOK, "Guest", nil)
		return
	}
	response.Success(c, http.StatusOK, "Authenticated", marker)
}
