package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "campusportal/database/repository/user"
	"campusportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Context keys set by JWTAuthMiddleware.
const (
	CtxUserID = "userID"
	CtxEmail  = "email"
	CtxRole   = "role"
)

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization", "message": msg})
}

// JWTAuthMiddleware accepts a bearer token only while its hash is the one recorded
// at login. The Redis auth cache is consulted first; a miss falls back to the user
// document and refills the cache.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "missing bearer token")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			unauthorized(c, "missing bearer token")
			return
		}

		claims, err := utils.ParseClaims(tokenString)
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}
		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + claims.UserID
		ctx := c.Request.Context()
		logger := utils.GetLogger()

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			switch {
			case err == nil && cachedHash == computedHash:
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				setIdentity(c, claims)
				c.Next()
				return
			case err == nil:
				unauthorized(c, "token mismatch")
				return
			case err != redis.Nil:
				logger.Warn("Auth cache lookup failed, falling back to database", zap.Error(err))
			}
		}

		proj := bson.M{"id": 1, "token_hash": 1, "role": 1, "email": 1}
		usr, err := users.GetByIDWithProjection(ctx, claims.UserID, proj)
		if err != nil || usr == nil {
			unauthorized(c, "authentication error")
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			unauthorized(c, "token mismatch")
			return
		}
		// The stored role wins over the one in the token.
		claims.Role = usr.Role

		if authCache != nil {
			cacheCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			_ = authCache.Set(cacheCtx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
			cancel()
		}

		setIdentity(c, claims)
		c.Next()
	}
}

func setIdentity(c *gin.Context, claims *utils.Claims) {
	c.Set(CtxUserID, claims.UserID)
	c.Set(CtxEmail, claims.Email)
	c.Set(CtxRole, claims.Role)
}
