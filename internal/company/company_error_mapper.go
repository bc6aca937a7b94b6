package company

import (
	"errors"
	"strings"

	companyerrors "github.com/Hemajnamburu/Job-Tracker-BE/internal/company/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_company_owner_name" {
			return companyerrors.ErrCompanyNameTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_company_owner_name") {
		return companyerrors.ErrCompanyNameTaken
	}

	return err
}
