package errors

import "net/http"

const (
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeUnknownCategory     = "UNKNOWN_CATEGORY"
	CodeNotFound            = "NOT_FOUND"
	CodeStorageWriteFailed  = "STORAGE_WRITE_FAILED"
	CodePersistenceFailed   = "PERSISTENCE_FAILED"
	CodeConfigurationError  = "CONFIGURATION_ERROR"
	CodeDatabaseError       = "DATABASE_ERROR"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
	CodeHTTPError           = "HTTP_ERROR"
)

var (
	ErrValidationFailed = New(
		CodeValidationFailed,
		"Request validation failed",
		http.StatusBadRequest,
	)

	ErrUnknownCategory = New(
		CodeUnknownCategory,
		"One or more categories do not exist",
		http.StatusBadRequest,
	)

	ErrPointNotFound = New(
		CodeNotFound,
		"Point not found",
		http.StatusNotFound,
	)

	ErrStorageWriteFailed = New(
		CodeStorageWriteFailed,
		"Failed to store uploaded image",
		http.StatusInternalServerError,
	)

	// ErrPersistenceFailed - временная ошибка записи, создание можно повторить целиком
	ErrPersistenceFailed = New(
		CodePersistenceFailed,
		"Failed to persist point",
		http.StatusServiceUnavailable,
	)

	ErrDatabaseError = New(
		CodeDatabaseError,
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrConfiguration = New(
		CodeConfigurationError,
		"Service is misconfigured",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		CodeInternalServerError,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
