package employererrors

import (
	"net/http"

	"colfdesk/internal/shared/apperror"
)

var (
	ErrEmployerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employer not found",
		http.StatusNotFound,
	)
	ErrTaxCodeTaken = apperror.New(
		apperror.CodeConflict,
		"An employer with the same tax code already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employer ID",
		http.StatusBadRequest,
	)
)
