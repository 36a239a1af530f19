package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hqtran/examportal/internal/apperr"
	"github.com/hqtran/examportal/internal/dto"
)

// RespondError maps a service error to its HTTP status. Unknown kinds are
// reported as a generic server error so storage details never reach the
// client.
func RespondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindInvalidInput:
		status = http.StatusBadRequest
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindUnauthorized:
		status = http.StatusUnauthorized
	}
	ctx.JSON(status, dto.ErrorResponse{Message: apperr.MessageOf(err)})
}

// UintParam parses a numeric path parameter, reporting ok=false after
// writing the 400 response itself.
func UintParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
