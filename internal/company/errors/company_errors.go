package companyerrors

import (
	"net/http"

	"github.com/Hemajnamburu/Job-Tracker-BE/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"company not found",
		http.StatusNotFound,
	)
	ErrCompanyNameTaken = apperror.New(
		apperror.CodeConflict,
		"company with this name already exists",
		http.StatusConflict,
	)
)
