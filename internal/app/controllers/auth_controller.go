package controllers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/app/services"
	"github.com/ufvjm/estagiopro/internal/middleware"
)

// UserCookieName holds the serialized profile of the logged-in account so
// the client can render without an extra round trip.
const UserCookieName = "estagiopro_user"

const sessionCookieMaxAge = 7 * 24 * 60 * 60

// AuthController handles authentication endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates an account and sets the session cookies
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email e senha são obrigatórios"))
		return
	}

	resp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookies(ctx, resp)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Login realizado com sucesso"))
}

// Refresh rotates the refresh token and reissues the session cookies
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Refresh token é obrigatório"))
		return
	}

	resp, err := c.authService.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookies(ctx, resp)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Sessão renovada"))
}

// Logout revokes the refresh token and clears the session cookies. The
// cookies are cleared even if the revoke fails; the client session ends
// either way.
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	_ = ctx.ShouldBindJSON(&req)

	// Cookies go first: once a response body is written the headers are
	// flushed and any later Set-Cookie is lost. The client session ends
	// even when the revoke fails.
	c.clearSessionCookies(ctx)

	if err := c.authService.Logout(ctx, req.RefreshToken); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Logout realizado com sucesso"))
}

// Me returns the profile of the authenticated account
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Autenticação necessária"))
		return
	}

	user, err := c.authService.GetCurrentUser(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user, ""))
}

func (c *AuthController) setSessionCookies(ctx *gin.Context, resp *dto.LoginResponse) {
	ctx.SetCookie(middleware.TokenCookieName, resp.Token, sessionCookieMaxAge, "/", "", false, true)

	if profile, err := json.Marshal(resp.User); err == nil {
		ctx.SetCookie(UserCookieName, url.QueryEscape(string(profile)), sessionCookieMaxAge, "/", "", false, false)
	}
}

func (c *AuthController) clearSessionCookies(ctx *gin.Context) {
	ctx.SetCookie(middleware.TokenCookieName, "", -1, "/", "", false, true)
	ctx.SetCookie(UserCookieName, "", -1, "/", "", false, false)
}
