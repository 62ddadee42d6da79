// Package middleware contain utilities middleware code
package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"jobportal-backend/internal/auth"
	"jobportal-backend/internal/database"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/utilities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// authFailure is a rejected token together with the status to answer with
type authFailure struct {
	status int
	msg    string
}

// authenticate validates tokenString and loads the user it belongs to
func authenticate(ctx *gin.Context, db *database.DBinstanceStruct, tokenString string) (*jwt.RegisteredClaims, model.User, *authFailure) {
	token, err := auth.ValidatedToken(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, model.User{}, &authFailure{http.StatusUnauthorized, "Access token expired"}
		}
		if errors.Is(err, jwt.ErrTokenInvalidIssuer) {
			return nil, model.User{}, &authFailure{http.StatusUnauthorized, "Invalid token issuer"}
		}
		return nil, model.User{}, &authFailure{http.StatusUnauthorized, fmt.Sprintf("Failed to validate token: %s", err.Error())}
	}

	if !token.Valid {
		return nil, model.User{}, &authFailure{http.StatusUnauthorized, "Invalid access token"}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, model.User{}, &authFailure{http.StatusUnauthorized, "Invalid access token"}
	}
	if claims.Issuer != auth.JwtIssuer {
		return nil, model.User{}, &authFailure{http.StatusUnauthorized, "Invalid token issuer"}
	}

	var foundUser model.User
	if err := db.WithContext(ctx.Request.Context()).Where("id = ?", claims.Subject).First(&foundUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.User{}, &authFailure{http.StatusUnauthorized, "User not exist"}
		}
		return nil, model.User{}, &authFailure{http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve user data: %s", err.Error())}
	}

	return claims, foundUser, nil
}

// RequireAuth function is a middleware in Go that validates a Bearer token in the Authorization
// header and checks if the user associated with the token exists and is not expired before allowing
// access to the endpoint.
func RequireAuth(db *database.DBinstanceStruct) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := utilities.ExtractBearerToken(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: err.Error(),
			})
			return
		}

		claims, user, fail := authenticate(ctx, db, tokenString)
		if fail != nil {
			ctx.AbortWithStatusJSON(fail.status, utilities.ErrorResponse{Error: fail.msg})
			return
		}

		ctx.Set("claims", claims)
		ctx.Set("user", user)
		ctx.Next()
	}
}

// OptionalAuth lets requests without an Authorization header through as anonymous.
// A token that is present must be valid and not revoked.
func OptionalAuth(db *database.DBinstanceStruct, bl auth.JwtBlacklistStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetHeader("Authorization") == "" {
			ctx.Next()
			return
		}

		tokenString, err := utilities.ExtractBearerToken(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: err.Error(),
			})
			return
		}

		if bl != nil {
			revoked, err := bl.IsBlacklisted(ctx.Request.Context(), tokenString)
			if err != nil {
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, utilities.ErrorResponse{
					Error: fmt.Sprintf("Failed to validate token: %s", err.Error()),
				})
				return
			}
			if revoked {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: "Token has been revoked",
				})
				return
			}
		}

		claims, user, fail := authenticate(ctx, db, tokenString)
		if fail != nil {
			ctx.AbortWithStatusJSON(fail.status, utilities.ErrorResponse{Error: fail.msg})
			return
		}

		ctx.Set("claims", claims)
		ctx.Set("user", user)
		ctx.Next()
	}
}
