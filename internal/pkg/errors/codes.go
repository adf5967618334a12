package errors

import "net/http"

var (
	ErrBackendUnavailable = New(
		"BACKEND_UNAVAILABLE",
		"Travel API is unavailable",
		http.StatusBadGateway,
	)

	ErrBackendTimeout = New(
		"BACKEND_TIMEOUT",
		"Travel API did not respond in time",
		http.StatusGatewayTimeout,
	)

	ErrBackend = New(
		"BACKEND_ERROR",
		"Travel API rejected the request",
		http.StatusBadGateway,
	)

	ErrUnexpectedResponse = New(
		"UNEXPECTED_RESPONSE",
		"Travel API returned an unexpected response",
		http.StatusBadGateway,
	)

	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidLocationType = New(
		"INVALID_LOCATION_TYPE",
		"Location type must be one of City, NaturalSite, Region",
		http.StatusBadRequest,
	)

	ErrInvalidTransportKind = New(
		"INVALID_TRANSPORT_KIND",
		"Transport kind must be one of bike, electric-vehicle, public-transport",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrValidationFailed = New(
		"VALIDATION_FAILED",
		"Request validation failed",
		http.StatusBadRequest,
	)

	ErrOperationSuperseded = New(
		"OPERATION_SUPERSEDED",
		"Operation was superseded by a newer one",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
