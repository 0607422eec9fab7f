package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"construct-erp/internal/shared/apperror"
	"construct-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
	ContextSiteID = "site_id"
	ContextName   = "name"
)

var (
	errTokenMissing = apperror.New(apperror.CodeUnauthorized, "Access token required", http.StatusUnauthorized)
	errTokenInvalid = apperror.New(apperror.CodeUnauthorized, "Invalid or expired token", http.StatusUnauthorized)
	errTokenExpired = apperror.New(apperror.CodeUnauthorized, "Token has expired", http.StatusUnauthorized)
)

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, err.HTTPStatus, err.Code, err.Message)
}

// AuthMiddleware verifies an HS256 token from the Authorization header or the
// access_token cookie and copies its claims into the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, errTokenMissing)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, errTokenExpired)
				return
			}
			abortWith(c, errTokenInvalid)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, errTokenInvalid)
			return
		}

		userID, _ := claims["user_id"].(string)
		role, _ := claims["role"].(string)
		if userID == "" || role == "" {
			abortWith(c, errTokenInvalid)
			return
		}
		siteID, _ := claims["site_id"].(string)
		name, _ := claims["name"].(string)
		if name == "" {
			name, _ = claims["username"].(string)
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)
		c.Set(ContextSiteID, siteID)
		c.Set(ContextName, name)

		c.Next()
	}
}
