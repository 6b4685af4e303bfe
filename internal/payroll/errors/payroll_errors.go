package payrollerrors

import (
	"net/http"

	"colfdesk/internal/shared/apperror"
)

var (
	ErrContractNotFound = apperror.New(
		apperror.CodeNotFound,
		"Contract not found",
		http.StatusNotFound,
	)
	ErrInvalidContractID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid contract ID",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be in YYYY-MM format",
		http.StatusBadRequest,
	)
)
