package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mart/internal/config"
	activityPort "mart/internal/ports/activity"
)

// JWTAuthMiddleware authenticates the request from a Bearer token and
// puts the caller's user id into the gin context. Each authenticated
// request also touches the activity queue so the user's last-seen time
// gets flushed by the background worker; a failed touch never fails the
// request.
func JWTAuthMiddleware(secret []byte, queue activityPort.ActivityQueue) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == "" || raw == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims := &jwt.StandardClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("userID", claims.Subject)

		if queue != nil {
			if err := queue.Touch(c.Request.Context(), claims.Subject, time.Now()); err != nil {
				config.Logger.Warn("Could not record user activity", zap.Error(err))
			}
		}

		c.Next()
	}
}
