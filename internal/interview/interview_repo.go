package interview

import (
	"context"
	"time"

	"github.com/Hemajnamburu/Job-Tracker-BE/internal/owner"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRow is one interview joined to its job and the job's company. Both
// joins are left joins: a deleted job or company leaves the pointer columns
// nil instead of dropping the row.
type ListRow struct {
	ID               uuid.UUID  `gorm:"column:id"`
	InterviewType    string     `gorm:"column:interview_type"`
	InterviewDate    time.Time  `gorm:"column:interview_date"`
	Time             string     `gorm:"column:time"`
	Duration         string     `gorm:"column:duration"`
	Format           string     `gorm:"column:format"`
	MeetingLink      string     `gorm:"column:meeting_link"`
	InterviewerName  string     `gorm:"column:interviewer_name"`
	InterviewerEmail string     `gorm:"column:interviewer_email"`
	Notes            string     `gorm:"column:notes"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
	ApplicationID    *uuid.UUID `gorm:"column:application_id"`
	JobCompanyName   *string    `gorm:"column:job_company_name"`
	JobPositionTitle *string    `gorm:"column:job_position_title"`
	LiveCompanyName  *string    `gorm:"column:live_company_name"`
	LiveCompanyColor *string    `gorm:"column:live_company_color"`
}

//go:generate mockgen -source=interview_repo.go -destination=mock/interview_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, iv *Interview) error
	FindAllEnriched(ctx context.Context, userID string) ([]ListRow, error)
	FindByIDAndOwner(ctx context.Context, userID, id string) (*Interview, error)
	Update(ctx context.Context, iv *Interview) error
	Delete(ctx context.Context, userID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, iv *Interview) error {
	return r.db.WithContext(ctx).Create(iv).Error
}

func (r *repository) FindAllEnriched(ctx context.Context, userID string) ([]ListRow, error) {
	var rows []ListRow
	err := r.db.WithContext(ctx).
		Table("interviews").
		Select(`interviews.id,
			interviews.interview_type,
			interviews.interview_date,
			interviews.time,
			interviews.duration,
			interviews.format,
			interviews.meeting_link,
			interviews.interviewer_name,
			interviews.interviewer_email,
			interviews.notes,
			interviews.created_at,
			interviews.updated_at,
			jobs.id AS application_id,
			jobs.company_name AS job_company_name,
			jobs.position_title AS job_position_title,
			companies.name AS live_company_name,
			companies.avatar_color AS live_company_color`).
		Joins("LEFT JOIN jobs ON jobs.id = interviews.application_id").
		Joins("LEFT JOIN companies ON companies.id = jobs.company_id").
		Where("interviews.user_id = ?", userID).
		Order("interviews.interview_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByIDAndOwner(ctx context.Context, userID, id string) (*Interview, error) {
	var iv Interview
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		First(&iv, "id = ?", id).Error
	return &iv, err
}

func (r *repository) Update(ctx context.Context, iv *Interview) error {
	return r.db.WithContext(ctx).Save(iv).Error
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Delete(&Interview{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
