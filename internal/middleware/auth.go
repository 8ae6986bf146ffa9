package middleware

import (
	"net/http"
	"strings"

	"warehouse/internal/apierror"
	"warehouse/internal/token"

	"github.com/gin-gonic/gin"
)

const (
	ClaimsKey = "claims"
)

// JWTAuth validates the Bearer access token on every protected route.
func JWTAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New(apierror.MsgNotAuthenticated))
			return
		}

		scheme, raw, found := strings.Cut(header, " ")
		if !found || scheme != "Bearer" || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New(apierror.MsgNotAuthenticated))
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(raw), token.Access)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.WithCode("Given token not valid for any token type", apierror.CodeTokenNotValid))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
// It returns nil on unauthenticated routes.
func GetClaims(c *gin.Context) *token.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*token.Claims)
	return claims
}
