package middleware

import (
	"net/http"
	"strings"

	autherrors "github.com/Hemajnamburu/Job-Tracker-BE/internal/auth/errors"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/shared/response"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware extracts the bearer credential, verifies it against the
// token service and stores the verified identity on the request. Everything
// behind it can rely on user_id being a real, authenticated owner scope.
func AuthMiddleware(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			errObj := autherrors.ErrMissingToken
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			errObj := autherrors.ErrInvalidToken
			if err == autherrors.ErrTokenExpired {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		if claims.UserID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}
