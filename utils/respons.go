package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/resto-pos/apperrors"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondAppError memetakan taxonomy error aplikasi ke status code HTTP.
// Error di luar taxonomy (mis. koneksi database putus) tidak dikategorikan;
// dilaporkan sebagai operation failed.
func RespondAppError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		ErrorLogger.Printf("Unhandled error: %v", err)
		RespondError(c, http.StatusInternalServerError, errors.New("operation failed"))
		return
	}

	switch appErr.Kind {
	case apperrors.KindInvalidData:
		RespondError(c, http.StatusBadRequest, appErr)
	case apperrors.KindNotFound:
		RespondError(c, http.StatusNotFound, appErr)
	case apperrors.KindAlreadyExists, apperrors.KindConflict:
		RespondError(c, http.StatusConflict, appErr)
	default:
		RespondError(c, http.StatusInternalServerError, appErr)
	}
}
