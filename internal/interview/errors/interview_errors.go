package interviewerrors

import (
	"net/http"

	"github.com/Hemajnamburu/Job-Tracker-BE/internal/shared/apperror"
)

var (
	ErrInvalidInterviewID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid interview id",
		http.StatusBadRequest,
	)
	ErrInvalidApplicationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid application id",
		http.StatusBadRequest,
	)
	ErrInterviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"interview not found",
		http.StatusNotFound,
	)
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"job application not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
