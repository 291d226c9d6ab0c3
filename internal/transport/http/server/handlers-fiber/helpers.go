package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ubclaunchpad/rocket2.0/internal/entities"
)

// ErrorCode labels the error taxonomy on the wire.
type ErrorCode string

const (
	CodeInvalidArgument  ErrorCode = "INVALID_ARGUMENT"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAmbiguousTeam    ErrorCode = "AMBIGUOUS_TEAM"
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"
	CodeRemoteAPI        ErrorCode = "REMOTE_API_ERROR"
	CodeInternal         ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound), errors.Is(err, entities.ErrTeamNotFound):
		status = http.StatusNotFound
		code = CodeNotFound
		msg = "resource not found"
	case errors.Is(err, entities.ErrTeamAmbiguous):
		status = http.StatusConflict
		code = CodeAmbiguousTeam
		msg = "team name is not unique"
	case errors.Is(err, entities.ErrPermissionDenied):
		status = http.StatusForbidden
		code = CodePermissionDenied
		msg = "insufficient permissions"
	case errors.Is(err, entities.ErrRemoteAPI):
		status = http.StatusBadGateway
		code = CodeRemoteAPI
		msg = "upstream directory call failed"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code ErrorCode, msg string) ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}
