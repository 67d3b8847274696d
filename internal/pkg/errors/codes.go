package errors

import "net/http"

var (
	// ErrLoad is returned when a source file is missing, malformed or lacks a column.
	ErrLoad = New(
		"LOAD_ERROR",
		"Failed to load dataset",
		http.StatusInternalServerError,
	)

	// ErrParse is returned for a malformed "lat,lng" coordinate string.
	ErrParse = New(
		"PARSE_ERROR",
		"Malformed coordinate string",
		http.StatusInternalServerError,
	)

	// ErrBuild is returned when a figure is built from a table missing a mapped column.
	ErrBuild = New(
		"BUILD_ERROR",
		"Failed to build figure",
		http.StatusInternalServerError,
	)

	ErrUnknownInput = New(
		"UNKNOWN_INPUT",
		"Unknown dashboard input",
		http.StatusBadRequest,
	)

	ErrUnknownChart = New(
		"UNKNOWN_CHART",
		"Unknown chart",
		http.StatusNotFound,
	)

	ErrEmptyFigure = New(
		"EMPTY_FIGURE",
		"Figure has no data to render",
		http.StatusUnprocessableEntity,
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
