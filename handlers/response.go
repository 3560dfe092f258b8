package handlers

import (
	"errors"
	"net/http"

	"trivia/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Fixed client-facing messages per status code. Raw error text never leaves
// the server; the cause goes to the log instead.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal error",
}

func ErrorJSON(c *gin.Context, status int) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   status,
		"message": statusMessages[status],
	})
}

func respondError(c *gin.Context, logger *zap.Logger, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrUnprocessable):
		status = http.StatusUnprocessableEntity
	}

	logger.Warn("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.Error(err),
	)
	ErrorJSON(c, status)
}
