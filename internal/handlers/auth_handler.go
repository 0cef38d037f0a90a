package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/healthguide/healthguide-api/internal/dto"
	"github.com/healthguide/healthguide-api/internal/httperr"
	"github.com/healthguide/healthguide-api/internal/httpresp"
	"github.com/healthguide/healthguide-api/internal/token"
	ucAuth "github.com/healthguide/healthguide-api/internal/usecase/auth"
)

// RefreshCookie is the http-only cookie carrying the refresh token.
const RefreshCookie = "refreshToken"

type AuthHandler struct {
	signup  *ucAuth.Signup
	login   *ucAuth.Login
	refresh *ucAuth.Refresh

	secureCookies bool
	log           logrus.FieldLogger
}

func NewAuthHandler(
	signup *ucAuth.Signup,
	login *ucAuth.Login,
	refresh *ucAuth.Refresh,
	secureCookies bool,
	log logrus.FieldLogger,
) *AuthHandler {
	return &AuthHandler{
		signup:        signup,
		login:         login,
		refresh:       refresh,
		secureCookies: secureCookies,
		log:           log,
	}
}

// --------- Requests ---------

type SignupRequest struct {
	Name     string `json:"name" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.signup.Execute(c.Request.Context(), ucAuth.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	h.setRefreshCookie(c, res.Tokens.RefreshToken)
	httpresp.Created(c, gin.H{
		"user":        dto.NewUserDTO(res.User),
		"accessToken": res.Tokens.AccessToken,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.login.Execute(c.Request.Context(), ucAuth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	h.setRefreshCookie(c, res.Tokens.RefreshToken)
	httpresp.OK(c, gin.H{
		"user":        dto.NewUserDTO(res.User),
		"accessToken": res.Tokens.AccessToken,
	})
}

// Refresh reads the token from the cookie first and falls back to the
// request body.
func (h *AuthHandler) Refresh(c *gin.Context) {
	raw, err := c.Cookie(RefreshCookie)
	if err != nil || raw == "" {
		var req RefreshRequest
		// The body is optional; a missing or malformed one just means no token.
		_ = c.ShouldBindJSON(&req)
		raw = req.RefreshToken
	}

	if raw == "" {
		httperr.Unauthorized(c, "No refresh token provided")
		return
	}

	pair, err := h.refresh.Execute(c.Request.Context(), raw)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	httpresp.OK(c, gin.H{"accessToken": pair.AccessToken})
}

// Logout only clears the cookie. The token itself stays valid until it
// expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.writeRefreshCookie(c, "", -1)
	httpresp.OK(c, gin.H{"message": "Logged out"})
}

// --------- Cookie ---------

func (h *AuthHandler) setRefreshCookie(c *gin.Context, value string) {
	h.writeRefreshCookie(c, value, int(token.RefreshTokenTTL.Seconds()))
}

func (h *AuthHandler) writeRefreshCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(RefreshCookie, value, maxAge, "/", "", h.secureCookies, true)
}
