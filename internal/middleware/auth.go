package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextSubject is the gin context key holding the token subject
const ContextSubject = "jwt_subject"

// JWTAuth requires a valid HS256 bearer token signed with secret
func JWTAuth(secret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			abortUnauthorized(c, errors.New("missing bearer token"))
			return
		}

		var claims jwt.RegisteredClaims
		_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(ContextSubject, claims.Subject)
		c.Next()
	}
}

// IssueToken signs a token for subject; used by operators and tests
func IssueToken(secret []byte, claims jwt.RegisteredClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func abortUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": "Unauthorized",
		"error":   err.Error(),
	})
}
