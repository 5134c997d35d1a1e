package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amaldev1010/Archin-Eventmng/internal/app/models/dto"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/auth"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/logger"
)

// Context keys set by the auth middleware
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextRole     = "role"
)

// JWTAuth validates the bearer token and stores the caller's identity in the
// request context
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(ctx, dto.ErrorCodeUnauthorized, "Authorization header is required")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(ctx, dto.ErrorCodeInvalidToken, "Invalid authorization header format")
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			logger.Debug().Err(err).Msg("Token validation failed")
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(ctx, dto.ErrorCodeExpiredToken, "Token has expired")
				return
			}
			abortUnauthorized(ctx, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		ctx.Set(ContextUserID, claims.UserID)
		ctx.Set(ContextUsername, claims.Username)
		ctx.Set(ContextRole, claims.Role)

		ctx.Next()
	}
}

// GetUserID reads the authenticated user's ID from the request context
func GetUserID(ctx *gin.Context) (int64, bool) {
	value, exists := ctx.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(int64)
	return userID, ok
}

// GetUsername reads the authenticated user's username from the request context
func GetUsername(ctx *gin.Context) (string, bool) {
	value, exists := ctx.Get(ContextUsername)
	if !exists {
		return "", false
	}
	username, ok := value.(string)
	return username, ok
}

func abortUnauthorized(ctx *gin.Context, code dto.ErrorCode, message string) {
	errorDetail := dto.NewErrorDetail(code, message)
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
