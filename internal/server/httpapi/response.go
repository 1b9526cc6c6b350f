package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enzomv1999/GloboClima/internal/common"
)

// errorBody is the structured error envelope returned on every failure.
type errorBody struct {
	Status int                 `json:"status"`
	Title  string              `json:"title"`
	Detail string              `json:"detail"`
	Errors map[string][]string `json:"errors,omitempty"`
}

// writeError maps every error kind the flows can produce to exactly one
// HTTP status. Unanticipated errors become a generic 500 without leaking
// internals.
func writeError(c *gin.Context, err error) {
	var verr *common.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, errorBody{
			Status: http.StatusBadRequest,
			Title:  "Validation Error",
			Detail: "One or more validation errors occurred.",
			Errors: verr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, common.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, errorBody{
			Status: http.StatusBadRequest,
			Title:  "Registration Error",
			Detail: "Username is already taken.",
		})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorBody{
			Status: http.StatusUnauthorized,
			Title:  "Authentication Error",
			Detail: "Invalid username or password.",
		})
	case errors.Is(err, common.ErrUnauthenticated),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, errorBody{
			Status: http.StatusUnauthorized,
			Title:  "Unauthorized",
			Detail: "A valid bearer token is required.",
		})
	case errors.Is(err, common.ErrForbidden):
		c.JSON(http.StatusForbidden, errorBody{
			Status: http.StatusForbidden,
			Title:  "Forbidden",
			Detail: "You do not own this resource.",
		})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody{
			Status: http.StatusNotFound,
			Title:  "Not Found",
			Detail: "The requested resource does not exist.",
		})
	case errors.Is(err, common.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, errorBody{
			Status: http.StatusServiceUnavailable,
			Title:  "Store Unavailable",
			Detail: "The data store is temporarily unavailable, try again.",
		})
	default:
		c.JSON(http.StatusInternalServerError, errorBody{
			Status: http.StatusInternalServerError,
			Title:  "Server Error",
			Detail: "An error occurred while processing your request.",
		})
	}
}

// writeUpstreamError reports a failed call to an external weather/country API.
func writeUpstreamError(c *gin.Context) {
	c.JSON(http.StatusBadGateway, errorBody{
		Status: http.StatusBadGateway,
		Title:  "Upstream Error",
		Detail: "The external service did not return a valid response.",
	})
}

func writeBadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, errorBody{
		Status: http.StatusBadRequest,
		Title:  "Bad Request",
		Detail: detail,
	})
}
