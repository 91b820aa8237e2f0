package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/pkg/auth"
)

// TokenCookieName is the session cookie the browser client stores the
// access token in. The Authorization header always takes precedence.
const TokenCookieName = "estagiopro_token"

// Context keys set by JWTAuth.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextTipo   = "tipo"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the access token from the Authorization header or the
// session cookie and loads the claims into the request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			extracted, err := auth.ExtractBearerToken(authHeader)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Token inválido"))
				return
			}
			tokenString = extracted
		} else if cookie, err := c.Cookie(TokenCookieName); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Autenticação necessária"))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			message := "Token inválido"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Sessão expirada"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextTipo, claims.Tipo)

		c.Next()
	}
}

// RoleRequired restricts a route group to accounts of the given tipo.
// Must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(tipo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextTipo) != tipo {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Acesso negado"))
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated account ID from the context.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
