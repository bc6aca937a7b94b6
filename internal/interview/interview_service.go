package interview

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Hemajnamburu/Job-Tracker-BE/internal/company"
	companyerrors "github.com/Hemajnamburu/Job-Tracker-BE/internal/company/errors"
	interviewerrors "github.com/Hemajnamburu/Job-Tracker-BE/internal/interview/errors"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/job"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=interview_service.go -destination=mock/interview_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, userID string) ([]InterviewListItem, error)
	GetByID(ctx context.Context, userID, id string) (*InterviewDetailResponse, error)
	Create(ctx context.Context, userID string, req CreateInterviewRequest) (*InterviewResponse, error)
	Update(ctx context.Context, userID, id string, req UpdateInterviewRequest) (*InterviewResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type service struct {
	repo        Repository
	jobRepo     job.Repository
	companyRepo company.Repository
	logger      *zap.Logger
}

func NewService(repo Repository, jobRepo job.Repository, companyRepo company.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("interview.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("interview.service")
	}
	return &service{repo: repo, jobRepo: jobRepo, companyRepo: companyRepo, logger: l}
}

func (s *service) List(ctx context.Context, userID string) ([]InterviewListItem, error) {
	rows, err := s.repo.FindAllEnriched(ctx, userID)
	if err != nil {
		s.logger.Error("list interviews failed", zap.Error(err))
		return nil, err
	}

	resp := make([]InterviewListItem, len(rows))
	for i, row := range rows {
		item := InterviewListItem{
			ID:               row.ID.String(),
			InterviewType:    row.InterviewType,
			InterviewDate:    row.InterviewDate.Format(dateLayout),
			Time:             row.Time,
			Duration:         row.Duration,
			Format:           row.Format,
			MeetingLink:      row.MeetingLink,
			InterviewerName:  row.InterviewerName,
			InterviewerEmail: row.InterviewerEmail,
			Notes:            row.Notes,
			CreatedAt:        row.CreatedAt.Format(time.RFC3339),
			UpdatedAt:        row.UpdatedAt.Format(time.RFC3339),
		}
		// Dangling references come through as nils and map to empty fields.
		if row.ApplicationID != nil {
			item.ApplicationID = row.ApplicationID.String()
		}
		if row.JobCompanyName != nil {
			item.CompanyName = *row.JobCompanyName
		}
		if row.JobPositionTitle != nil {
			item.PositionTitle = *row.JobPositionTitle
		}
		if row.LiveCompanyName != nil {
			item.CompanyInitial = strings.ToUpper(firstRune(*row.LiveCompanyName))
		}
		if row.LiveCompanyColor != nil {
			item.CompanyColor = *row.LiveCompanyColor
		}
		resp[i] = item
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (*InterviewDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, interviewerrors.ErrInvalidInterviewID
	}

	iv, err := s.repo.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, interviewerrors.ErrInterviewNotFound
		}
		return nil, err
	}

	detail := &InterviewDetailResponse{InterviewResponse: *mapToResponse(iv)}

	// Resolve the job reference lazily; a deleted job is not an error.
	if j, err := s.jobRepo.FindByIDAndOwner(ctx, userID, iv.ApplicationID.String()); err == nil {
		detail.Application = &ApplicationSnapshot{
			ID:            j.ID.String(),
			CompanyName:   j.CompanyName,
			PositionTitle: j.PositionTitle,
		}
	}

	return detail, nil
}

func (s *service) Create(ctx context.Context, userID string, req CreateInterviewRequest) (*InterviewResponse, error) {
	ownerUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, interviewerrors.ErrInvalidInterviewID
	}
	applicationUUID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return nil, interviewerrors.ErrInvalidApplicationID
	}

	j, err := s.jobRepo.FindByIDAndOwner(ctx, userID, req.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, interviewerrors.ErrApplicationNotFound
		}
		s.logger.Error("create interview job lookup failed", zap.Error(err))
		return nil, err
	}

	comp, err := s.companyRepo.FindByIDAndOwner(ctx, userID, j.CompanyID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		s.logger.Error("create interview company lookup failed", zap.Error(err))
		return nil, err
	}

	interviewDate, err := parseDate(req.InterviewDate)
	if err != nil {
		return nil, err
	}

	iv := &Interview{
		ID:               uuid.New(),
		UserID:           ownerUUID,
		ApplicationID:    applicationUUID,
		InterviewType:    req.InterviewType,
		InterviewDate:    interviewDate,
		Time:             req.Time,
		Duration:         req.Duration,
		Format:           req.Format,
		MeetingLink:      req.MeetingLink,
		InterviewerName:  req.InterviewerName,
		InterviewerEmail: req.InterviewerEmail,
		Notes:            req.Notes,
		// Snapshots captured once, never refreshed.
		CompanyName:    j.CompanyName,
		PositionTitle:  j.PositionTitle,
		CompanyInitial: firstRune(comp.Name),
		CompanyColor:   comp.AvatarColor,
	}

	if err := s.repo.Create(ctx, iv); err != nil {
		s.logger.Error("create interview persist failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("create interview success",
		zap.String("interview_id", iv.ID.String()),
		zap.String("application_id", req.ApplicationID),
		zap.String("user_id", userID),
	)

	return mapToResponse(iv), nil
}

func (s *service) Update(ctx context.Context, userID, id string, req UpdateInterviewRequest) (*InterviewResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, interviewerrors.ErrInvalidInterviewID
	}

	iv, err := s.repo.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, interviewerrors.ErrInterviewNotFound
		}
		return nil, err
	}

	if req.InterviewType != nil {
		iv.InterviewType = *req.InterviewType
	}
	if req.InterviewDate != nil {
		interviewDate, err := parseDate(*req.InterviewDate)
		if err != nil {
			return nil, err
		}
		iv.InterviewDate = interviewDate
	}
	if req.Time != nil {
		iv.Time = *req.Time
	}
	if req.Duration != nil {
		iv.Duration = *req.Duration
	}
	if req.Format != nil {
		iv.Format = *req.Format
	}
	if req.MeetingLink != nil {
		iv.MeetingLink = *req.MeetingLink
	}
	if req.InterviewerName != nil {
		iv.InterviewerName = *req.InterviewerName
	}
	if req.InterviewerEmail != nil {
		iv.InterviewerEmail = *req.InterviewerEmail
	}
	if req.Notes != nil {
		iv.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, iv); err != nil {
		s.logger.Error("update interview persist failed",
			zap.String("interview_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return mapToResponse(iv), nil
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return interviewerrors.ErrInvalidInterviewID
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return interviewerrors.ErrInterviewNotFound
		}
		return err
	}

	s.logger.Info("delete interview success",
		zap.String("interview_id", id),
		zap.String("user_id", userID),
	)
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, interviewerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

func mapToResponse(iv *Interview) *InterviewResponse {
	return &InterviewResponse{
		ID:               iv.ID.String(),
		ApplicationID:    iv.ApplicationID.String(),
		InterviewType:    iv.InterviewType,
		InterviewDate:    iv.InterviewDate.Format(dateLayout),
		Time:             iv.Time,
		Duration:         iv.Duration,
		Format:           iv.Format,
		MeetingLink:      iv.MeetingLink,
		InterviewerName:  iv.InterviewerName,
		InterviewerEmail: iv.InterviewerEmail,
		Notes:            iv.Notes,
		CompanyName:      iv.CompanyName,
		PositionTitle:    iv.PositionTitle,
		CompanyInitial:   iv.CompanyInitial,
		CompanyColor:     iv.CompanyColor,
		CreatedAt:        iv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        iv.UpdatedAt.Format(time.RFC3339),
	}
}
