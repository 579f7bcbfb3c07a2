package utils

import (
	"net/http"

	"gonotes/apperr"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int         `json:"-"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success responses

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &Response{
		Status: http.StatusOK,
		Data:   data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, &Response{
		Status: http.StatusCreated,
		Data:   data,
	})
}

func CreatedMessage(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, &Response{
		Status:  http.StatusCreated,
		Message: message,
	})
}

func SuccessMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, &Response{
		Status:  http.StatusOK,
		Message: message,
	})
}

// Error responses

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, &Response{
		Status: http.StatusBadRequest,
		Error:  message,
	})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, &Response{
		Status: http.StatusUnauthorized,
		Error:  message,
	})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, &Response{
		Status: http.StatusForbidden,
		Error:  message,
	})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, &Response{
		Status: http.StatusNotFound,
		Error:  message,
	})
}

func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, &Response{
		Status: http.StatusTooManyRequests,
		Error:  message,
	})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, &Response{
		Status: http.StatusInternalServerError,
		Error:  message,
	})
}

// Error is the single translation point from domain error kinds to HTTP
// status codes. Handlers pass every domain error through here.
//
// Conflict maps to 400 rather than 409 to keep the original API
// contract (duplicate signup responds 400). A missing token is the one
// auth failure that responds 401; invalid or expired tokens and failed
// logins respond 400 with a deliberately generic message.
func Error(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindConflict:
		BadRequest(c, apperr.MessageOf(err))
	case apperr.KindAuth:
		if apperr.CodeOf(err) == apperr.CodeTokenMissing {
			Unauthorized(c, apperr.MessageOf(err))
			return
		}
		BadRequest(c, apperr.MessageOf(err))
	case apperr.KindForbidden:
		Forbidden(c, apperr.MessageOf(err))
	case apperr.KindNotFound:
		NotFound(c, apperr.MessageOf(err))
	default:
		TrackError("http", "internal_error")
		InternalError(c, "internal server error")
	}
}
