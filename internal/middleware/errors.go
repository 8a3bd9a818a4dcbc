package middleware

import (
	"net/http"

	"go-schoolfee/internal/shared/apperror"
	"go-schoolfee/internal/shared/response"

	"github.com/gin-gonic/gin"
)

var (
	ErrTokenMissing = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired = apperror.New(apperror.CodeUnauthorized, "Token has expired", http.StatusUnauthorized)
	ErrCronSecret   = apperror.New(apperror.CodeUnauthorized, "Unauthorized", http.StatusUnauthorized)
	ErrTooMany      = apperror.New("TOO_MANY_REQUESTS", "Too many requests", http.StatusTooManyRequests)
	ErrInProgress   = apperror.New(apperror.CodeConflict, "This request is already being processed", http.StatusConflict)
)

func fail(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, err.HTTPStatus, err.Code, err.Message)
}
