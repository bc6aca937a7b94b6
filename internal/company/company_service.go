package company

import (
	"context"
	"strings"

	companyerrors "github.com/Hemajnamburu/Job-Tracker-BE/internal/company/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, userID, search string) ([]CompanyResponse, error)
	Summary(ctx context.Context, userID, search string) ([]CompanySummaryResponse, error)
	GetByID(ctx context.Context, userID, id string) (*CompanyResponse, error)
	Create(ctx context.Context, userID string, req CreateCompanyRequest) (*CompanyResponse, error)
	Update(ctx context.Context, userID, id string, req UpdateCompanyRequest) (*CompanyResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, userID, search string) ([]CompanyResponse, error) {
	companies, err := s.repo.FindAllByOwner(ctx, userID, search)
	if err != nil {
		s.logger.Error("list companies failed", zap.Error(err))
		return nil, err
	}

	resp := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		resp[i] = *mapToResponse(&c)
	}
	return resp, nil
}

func (s *service) Summary(ctx context.Context, userID, search string) ([]CompanySummaryResponse, error) {
	rows, err := s.repo.Summarize(ctx, userID, search)
	if err != nil {
		s.logger.Error("company summary failed", zap.Error(err))
		return nil, err
	}

	resp := make([]CompanySummaryResponse, len(rows))
	for i, row := range rows {
		resp[i] = CompanySummaryResponse{
			ID:           row.CompanyID.String(),
			Name:         row.Name,
			AvatarColor:  row.AvatarColor,
			Initial:      firstRune(row.Name),
			Applications: row.Applications,
			Interviews:   row.Interviews,
			LastApplied:  row.LastApplied,
		}
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (*CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	c, err := s.repo.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToResponse(c), nil
}

func (s *service) Create(ctx context.Context, userID string, req CreateCompanyRequest) (*CompanyResponse, error) {
	ownerUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	c := &Company{
		ID:          uuid.New(),
		UserID:      ownerUUID,
		Name:        req.Name,
		AvatarColor: req.AvatarColor,
		Initial:     strings.ToUpper(firstRune(req.Name)),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == companyerrors.ErrCompanyNameTaken {
			s.logger.Warn("create company duplicate name",
				zap.String("user_id", userID),
				zap.String("name", req.Name),
			)
		} else {
			s.logger.Error("create company persist failed", zap.Error(err))
		}
		return nil, mapped
	}

	s.logger.Info("create company success",
		zap.String("company_id", c.ID.String()),
		zap.String("user_id", userID),
	)

	return mapToResponse(c), nil
}

func (s *service) Update(ctx context.Context, userID, id string, req UpdateCompanyRequest) (*CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	c, err := s.repo.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	// Partial merge. Initial keeps its creation-time value even on rename.
	if req.Name != "" {
		c.Name = req.Name
	}
	if req.AvatarColor != "" {
		c.AvatarColor = req.AvatarColor
	}

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("update company persist failed",
			zap.String("company_id", id),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}

	return mapToResponse(c), nil
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return companyerrors.ErrInvalidCompanyID
	}

	// No cascade: the owner's jobs and interviews keep their references and
	// resolve them lazily at read time.
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("delete company success",
		zap.String("company_id", id),
		zap.String("user_id", userID),
	)
	return nil
}

func mapToResponse(c *Company) *CompanyResponse {
	return &CompanyResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		AvatarColor: c.AvatarColor,
		Initial:     c.Initial,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
