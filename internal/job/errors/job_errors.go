package joberrors

import (
	"net/http"

	"github.com/Hemajnamburu/Job-Tracker-BE/internal/shared/apperror"
)

var (
	ErrInvalidJobID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid job id",
		http.StatusBadRequest,
	)
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"job not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
