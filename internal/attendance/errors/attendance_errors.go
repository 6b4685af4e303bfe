package attendanceerrors

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
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrAttendanceConflict = apperror.New(
		apperror.CodeConflict,
		"Attendance for this day was written concurrently",
		http.StatusConflict,
	)
	ErrUnknownJustificationType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown justification type",
		http.StatusBadRequest,
	)
)
