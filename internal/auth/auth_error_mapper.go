package auth

import (
	"errors"
	"strings"

	autherrors "github.com/Hemajnamburu/Job-Tracker-BE/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_user_email" {
			return autherrors.ErrEmailAlreadyRegistered
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_user_email") {
		return autherrors.ErrEmailAlreadyRegistered
	}

	return err
}
