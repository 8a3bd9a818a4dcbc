package middleware

import (
	"errors"
	"strings"

	"go-schoolfee/internal/shared/apperror"
	"go-schoolfee/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the HS256 access token issued by the identity
// service and exposes its claims on the gin context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	key := []byte(jwtSecret)

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			fail(c, ErrTokenMissing)
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				fail(c, ErrTokenExpired)
				return
			}
			fail(c, ErrInvalidToken)
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			fail(c, ErrInvalidToken)
			return
		}
		schoolID, _ := claims["school_id"].(string)
		if schoolID == "" {
			fail(c, apperror.ErrMissingTenant)
			return
		}
		campusID, _ := claims["campus_id"].(string)
		role, _ := claims["role"].(string)

		c.Set("user_id", userID)
		c.Set("token_school_id", schoolID)
		c.Set("campus_id", campusID)
		c.Set("role", role)

		c.Next()
	}
}

// TenantContext resolves the school a request acts on and stores it under
// "school_id". Handlers never look at campus_id themselves.
func TenantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		schoolID := tenant.EffectiveSchoolID(tenant.Identity{
			UserID:   c.GetString("user_id"),
			SchoolID: c.GetString("token_school_id"),
			CampusID: c.GetString("campus_id"),
			Role:     c.GetString("role"),
		})
		if schoolID == "" {
			fail(c, apperror.ErrMissingTenant)
			return
		}

		c.Set("school_id", schoolID)
		c.Next()
	}
}
