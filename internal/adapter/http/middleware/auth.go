package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ceccimesquita/papillon/internal/usecase/interfaces"
	"github.com/ceccimesquita/papillon/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

const userCacheTTL = 10 * time.Minute

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

// JWTAuth validates the Bearer token and confirms the subject still exists.
// A nil Redis client disables the lookup cache and every request hits the
// user repository instead.
func JWTAuth(secret []byte, cache *redis.Client, users interfaces.IUserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			abortUnauthorized(c)
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c)
			return
		}
		username, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if username == "" {
			abortUnauthorized(c)
			return
		}

		if !subjectExists(c, cache, users, username) {
			abortUnauthorized(c)
			return
		}

		c.Set("username", username)
		c.Set("role", role)
		c.Next()
	}
}

func subjectExists(c *gin.Context, cache *redis.Client, users interfaces.IUserRepository, username string) bool {
	ctx := c.Request.Context()
	cacheKey := "user:" + username + ":data"

	if cache != nil {
		if v, err := cache.Get(ctx, cacheKey).Result(); err == nil && v != "" {
			return true
		}
	}

	u, err := users.GetByUsername(ctx, username)
	if err != nil {
		slog.Error("auth user lookup failed", "username", username, "error", err)
		return false
	}
	if u.ID == 0 {
		return false
	}

	if cache != nil {
		if err := cache.Set(ctx, cacheKey, u.Role, userCacheTTL).Err(); err != nil {
			slog.Warn("auth cache write failed", "username", username, "error", err)
		}
	}
	return true
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
}
