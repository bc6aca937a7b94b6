package job

import (
	"context"
	"errors"
	"time"

	"github.com/Hemajnamburu/Job-Tracker-BE/internal/company"
	companyerrors "github.com/Hemajnamburu/Job-Tracker-BE/internal/company/errors"
	joberrors "github.com/Hemajnamburu/Job-Tracker-BE/internal/job/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// currentStatus values. A flat enumeration: any status may move to any other.
const (
	StatusApplied            = "Applied"
	StatusInterviewScheduled = "Interview Scheduled"
	StatusRejected           = "Rejected"
	StatusOfferReceived      = "Offer Received"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, userID, search, status string) ([]JobResponse, error)
	ListByCompany(ctx context.Context, userID, companyID string) ([]JobResponse, error)
	Create(ctx context.Context, userID string, req CreateJobRequest) (*JobResponse, error)
	GetByID(ctx context.Context, userID, id string) (*JobResponse, error)
	Update(ctx context.Context, userID, id string, req UpdateJobRequest) (*JobResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type service struct {
	repo        Repository
	companyRepo company.Repository
	logger      *zap.Logger
}

func NewService(repo Repository, companyRepo company.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{repo: repo, companyRepo: companyRepo, logger: l}
}

func (s *service) List(ctx context.Context, userID, search, status string) ([]JobResponse, error) {
	jobs, err := s.repo.FindAllByOwner(ctx, userID, search, status)
	if err != nil {
		s.logger.Error("list jobs failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(jobs), nil
}

func (s *service) ListByCompany(ctx context.Context, userID, companyID string) ([]JobResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	// The company must exist and be owned before its jobs are listed.
	if _, err := s.companyRepo.FindByIDAndOwner(ctx, userID, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		return nil, err
	}

	jobs, err := s.repo.FindAllByCompanyAndOwner(ctx, userID, companyID)
	if err != nil {
		s.logger.Error("list jobs by company failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(jobs), nil
}

func (s *service) Create(ctx context.Context, userID string, req CreateJobRequest) (*JobResponse, error) {
	ownerUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, joberrors.ErrInvalidJobID
	}
	companyUUID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.companyRepo.FindByIDAndOwner(ctx, userID, req.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		s.logger.Error("create job company lookup failed", zap.Error(err))
		return nil, err
	}

	applicationDate, err := parseDate(req.ApplicationDate)
	if err != nil {
		return nil, err
	}
	followUpDate, err := parseOptionalDate(req.FollowUpDate)
	if err != nil {
		return nil, err
	}

	j := &Job{
		ID:                   uuid.New(),
		UserID:               ownerUUID,
		CompanyID:            companyUUID,
		CompanyName:          comp.Name, // snapshot of the company name at creation time
		PositionTitle:        req.PositionTitle,
		Department:           req.Department,
		Location:             req.Location,
		CurrentStatus:        defaultString(req.CurrentStatus, StatusApplied),
		ApplicationDate:      applicationDate,
		PriorityLevel:        defaultString(req.PriorityLevel, "Medium"),
		JobType:              defaultString(req.JobType, "Full-time"),
		WorkMode:             defaultString(req.WorkMode, "Remote"),
		SalaryMin:            req.SalaryMin,
		SalaryMax:            req.SalaryMax,
		JobPostingURL:        req.JobPostingURL,
		RecruiterName:        req.RecruiterName,
		RecruiterEmail:       req.RecruiterEmail,
		HRContact:            req.HRContact,
		ApplicationSource:    defaultString(req.ApplicationSource, "Company Website"),
		CoverLetterSubmitted: defaultString(req.CoverLetterSubmitted, "No"),
		ResumeVersion:        req.ResumeVersion,
		Notes:                req.Notes,
		FollowUpDate:         followUpDate,
	}

	if err := s.repo.Create(ctx, j); err != nil {
		s.logger.Error("create job persist failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("create job success",
		zap.String("job_id", j.ID.String()),
		zap.String("company_id", req.CompanyID),
		zap.String("user_id", userID),
	)

	return mapToResponse(j), nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (*JobResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, joberrors.ErrInvalidJobID
	}

	j, err := s.repo.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joberrors.ErrJobNotFound
		}
		return nil, err
	}
	return mapToResponse(j), nil
}

func (s *service) Update(ctx context.Context, userID, id string, req UpdateJobRequest) (*JobResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, joberrors.ErrInvalidJobID
	}

	j, err := s.repo.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joberrors.ErrJobNotFound
		}
		return nil, err
	}

	// Re-pointing the job at another company refreshes the name snapshot;
	// everything else leaves it frozen.
	if req.CompanyID != nil {
		companyUUID, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return nil, companyerrors.ErrInvalidCompanyID
		}
		comp, err := s.companyRepo.FindByIDAndOwner(ctx, userID, *req.CompanyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, companyerrors.ErrCompanyNotFound
			}
			return nil, err
		}
		j.CompanyID = companyUUID
		j.CompanyName = comp.Name
	}

	if req.PositionTitle != nil {
		j.PositionTitle = *req.PositionTitle
	}
	if req.ApplicationDate != nil {
		applicationDate, err := parseDate(*req.ApplicationDate)
		if err != nil {
			return nil, err
		}
		j.ApplicationDate = applicationDate
	}
	if req.Department != nil {
		j.Department = *req.Department
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.CurrentStatus != nil {
		j.CurrentStatus = *req.CurrentStatus
	}
	if req.PriorityLevel != nil {
		j.PriorityLevel = *req.PriorityLevel
	}
	if req.JobType != nil {
		j.JobType = *req.JobType
	}
	if req.WorkMode != nil {
		j.WorkMode = *req.WorkMode
	}
	if req.SalaryMin != nil {
		j.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		j.SalaryMax = *req.SalaryMax
	}
	if req.JobPostingURL != nil {
		j.JobPostingURL = *req.JobPostingURL
	}
	if req.RecruiterName != nil {
		j.RecruiterName = *req.RecruiterName
	}
	if req.RecruiterEmail != nil {
		j.RecruiterEmail = *req.RecruiterEmail
	}
	if req.HRContact != nil {
		j.HRContact = *req.HRContact
	}
	if req.ApplicationSource != nil {
		j.ApplicationSource = *req.ApplicationSource
	}
	if req.CoverLetterSubmitted != nil {
		j.CoverLetterSubmitted = *req.CoverLetterSubmitted
	}
	if req.ResumeVersion != nil {
		j.ResumeVersion = *req.ResumeVersion
	}
	if req.Notes != nil {
		j.Notes = *req.Notes
	}
	if req.FollowUpDate != nil {
		followUpDate, err := parseOptionalDate(req.FollowUpDate)
		if err != nil {
			return nil, err
		}
		j.FollowUpDate = followUpDate
	}

	if err := s.repo.Update(ctx, j); err != nil {
		s.logger.Error("update job persist failed",
			zap.String("job_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return mapToResponse(j), nil
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return joberrors.ErrInvalidJobID
	}

	// No cascade: interviews referencing this job keep their frozen
	// snapshots and resolve the reference lazily.
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return joberrors.ErrJobNotFound
		}
		return err
	}

	s.logger.Info("delete job success",
		zap.String("job_id", id),
		zap.String("user_id", userID),
	)
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, joberrors.ErrInvalidDateFormat
	}
	return t, nil
}

func parseOptionalDate(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := parseDate(*v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func mapToResponse(j *Job) *JobResponse {
	resp := &JobResponse{
		ID:                   j.ID.String(),
		CompanyID:            j.CompanyID.String(),
		CompanyName:          j.CompanyName,
		PositionTitle:        j.PositionTitle,
		Department:           j.Department,
		Location:             j.Location,
		CurrentStatus:        j.CurrentStatus,
		ApplicationDate:      j.ApplicationDate.Format(dateLayout),
		PriorityLevel:        j.PriorityLevel,
		JobType:              j.JobType,
		WorkMode:             j.WorkMode,
		SalaryMin:            j.SalaryMin,
		SalaryMax:            j.SalaryMax,
		JobPostingURL:        j.JobPostingURL,
		RecruiterName:        j.RecruiterName,
		RecruiterEmail:       j.RecruiterEmail,
		HRContact:            j.HRContact,
		ApplicationSource:    j.ApplicationSource,
		CoverLetterSubmitted: j.CoverLetterSubmitted,
		ResumeVersion:        j.ResumeVersion,
		Notes:                j.Notes,
		CreatedAt:            j.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            j.UpdatedAt.Format(time.RFC3339),
	}
	if j.FollowUpDate != nil {
		v := j.FollowUpDate.Format(dateLayout)
		resp.FollowUpDate = &v
	}
	return resp
}

func mapToListResponse(jobs []Job) []JobResponse {
	resp := make([]JobResponse, len(jobs))
	for i := range jobs {
		resp[i] = *mapToResponse(&jobs[i])
	}
	return resp
}
