package contracterrors

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
	ErrEmployerNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced employer does not exist",
		http.StatusBadRequest,
	)
	ErrWorkerNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced worker does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date cannot be before start_date",
		http.StatusBadRequest,
	)
	ErrNotDraft = apperror.New(
		apperror.CodeInvalidState,
		"Only DRAFT contracts can be finalized",
		http.StatusConflict,
	)
	ErrNotActive = apperror.New(
		apperror.CodeInvalidState,
		"Only ACTIVE contracts can be closed",
		http.StatusConflict,
	)
	ErrNotClosed = apperror.New(
		apperror.CodeInvalidState,
		"Only CLOSED contracts can be reopened",
		http.StatusConflict,
	)
)
