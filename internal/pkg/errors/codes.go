package errors

import "net/http"

var (
	ErrInvalidMode = New(
		"INVALID_MODE",
		"Unsupported travel mode",
		http.StatusBadRequest,
	)

	ErrInvalidPlace = New(
		"INVALID_PLACE",
		"Place identifier cannot be projected",
		http.StatusUnprocessableEntity,
	)

	ErrProjectionGap = New(
		"PROJECTION_GAP",
		"Place has no projected location",
		http.StatusUnprocessableEntity,
	)

	ErrResultCountMismatch = New(
		"RESULT_COUNT_MISMATCH",
		"Matrix solver returned an unexpected number of results",
		http.StatusInternalServerError,
	)

	ErrGraphUnavailable = New(
		"GRAPH_UNAVAILABLE",
		"Routing graph is not available",
		http.StatusServiceUnavailable,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
