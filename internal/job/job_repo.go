package job

import (
	"context"

	"github.com/Hemajnamburu/Job-Tracker-BE/internal/owner"

	"gorm.io/gorm"
)

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, j *Job) error
	FindAllByOwner(ctx context.Context, userID, search, status string) ([]Job, error)
	FindAllByCompanyAndOwner(ctx context.Context, userID, companyID string) ([]Job, error)
	FindByIDAndOwner(ctx context.Context, userID, id string) (*Job, error)
	Update(ctx context.Context, j *Job) error
	Delete(ctx context.Context, userID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *repository) FindAllByOwner(ctx context.Context, userID, search, status string) ([]Job, error) {
	q := r.db.WithContext(ctx).Scopes(owner.Scope(userID))
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("company_name ILIKE ? OR position_title ILIKE ?", pattern, pattern)
	}
	if status != "" {
		q = q.Where("current_status = ?", status)
	}

	var jobs []Job
	err := q.Order("application_date DESC").Find(&jobs).Error
	return jobs, err
}

func (r *repository) FindAllByCompanyAndOwner(ctx context.Context, userID, companyID string) ([]Job, error) {
	var jobs []Job
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Where("company_id = ?", companyID).
		Order("application_date DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *repository) FindByIDAndOwner(ctx context.Context, userID, id string) (*Job, error) {
	var j Job
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		First(&j, "id = ?", id).Error
	return &j, err
}

func (r *repository) Update(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Delete(&Job{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
