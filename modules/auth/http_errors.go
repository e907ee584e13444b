package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/coursekit/pkg/binder"
	"github.com/dmitrymomot/coursekit/pkg/googleauth"
	"github.com/dmitrymomot/coursekit/pkg/jwt"
	"github.com/dmitrymomot/coursekit/pkg/logger"
	"github.com/dmitrymomot/coursekit/pkg/response"
	"github.com/dmitrymomot/coursekit/pkg/validator"
)

// writeError maps a domain error to a structured 4xx response with a stable
// message. Anything unrecognized is treated as unexpected: logged internally
// and surfaced as a generic 500 without leaking detail.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	if validator.IsValidationError(err) {
		response.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	switch {
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrUnsupportedMediaType):
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
	case errors.Is(err, ErrMissingCredentials):
		response.Fail(w, http.StatusBadRequest, "Please provide email and password")
	case errors.Is(err, ErrEmailAlreadyExists):
		response.Fail(w, http.StatusBadRequest, "User already exists with this email")
	case errors.Is(err, ErrGoogleIDLinked):
		response.Fail(w, http.StatusBadRequest, "Google account already linked to another user")
	case errors.Is(err, googleauth.ErrMissingToken):
		response.Fail(w, http.StatusBadRequest, "Google token is required")
	case errors.Is(err, ErrInvalidCredentials):
		response.Fail(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, googleauth.ErrInvalidToken):
		response.Fail(w, http.StatusUnauthorized, "Invalid Google token")
	case errors.Is(err, ErrUnauthenticated):
		response.Fail(w, http.StatusUnauthorized, "Not authorized to access this route. Please login.")
	case errors.Is(err, jwt.ErrExpiredToken):
		response.Fail(w, http.StatusUnauthorized, "Session expired. Please login again.")
	case errors.Is(err, jwt.ErrInvalidToken):
		response.Fail(w, http.StatusUnauthorized, "Not authorized to access this route. Invalid token.")
	case errors.Is(err, ErrAccountNotFound):
		response.Fail(w, http.StatusUnauthorized, "User not found")
	case errors.Is(err, ErrForbidden):
		response.Fail(w, http.StatusForbidden, "You are not authorized to access this route")
	default:
		log.ErrorContext(r.Context(), "unexpected error",
			logger.Error(err),
			logger.Component(componentAuthName),
		)
		response.Fail(w, http.StatusInternalServerError, "Something went wrong")
	}
}
