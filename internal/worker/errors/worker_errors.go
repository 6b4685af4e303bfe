package workererrors

import (
	"net/http"

	"colfdesk/internal/shared/apperror"
)

var (
	ErrWorkerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Worker not found",
		http.StatusNotFound,
	)
	ErrTaxCodeTaken = apperror.New(
		apperror.CodeConflict,
		"A worker with the same tax code already exists",
		http.StatusConflict,
	)
	ErrInvalidWorkerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid worker ID",
		http.StatusBadRequest,
	)
	ErrInvalidBirthDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid birth_date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
