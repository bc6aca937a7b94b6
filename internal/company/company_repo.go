package company

import (
	"context"
	"time"

	"github.com/Hemajnamburu/Job-Tracker-BE/internal/owner"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SummaryRow is one aggregated group of the company summary view: all jobs
// grouped by company id, inner-joined to the companies table. Groups whose
// company was deleted drop out of the join.
type SummaryRow struct {
	CompanyID    uuid.UUID  `gorm:"column:company_id"`
	Name         string     `gorm:"column:name"`
	AvatarColor  string     `gorm:"column:avatar_color"`
	Applications int64      `gorm:"column:applications"`
	Interviews   int64      `gorm:"column:interviews"`
	LastApplied  *time.Time `gorm:"column:last_applied"`
}

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, c *Company) error
	FindAllByOwner(ctx context.Context, userID, search string) ([]Company, error)
	FindByIDAndOwner(ctx context.Context, userID, id string) (*Company, error)
	Update(ctx context.Context, c *Company) error
	Delete(ctx context.Context, userID, id string) error
	Summarize(ctx context.Context, userID, search string) ([]SummaryRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAllByOwner(ctx context.Context, userID, search string) ([]Company, error) {
	q := r.db.WithContext(ctx).Scopes(owner.Scope(userID))
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}

	var companies []Company
	err := q.Find(&companies).Error
	return companies, err
}

func (r *repository) FindByIDAndOwner(ctx context.Context, userID, id string) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) Update(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Delete(&Company{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Summarize(ctx context.Context, userID, search string) ([]SummaryRow, error) {
	q := r.db.WithContext(ctx).
		Table("jobs").
		Select(`jobs.company_id AS company_id,
			companies.name AS name,
			companies.avatar_color AS avatar_color,
			COUNT(*) AS applications,
			SUM(CASE WHEN jobs.current_status = ? THEN 1 ELSE 0 END) AS interviews,
			MAX(jobs.application_date) AS last_applied`, "Interview Scheduled").
		Joins("JOIN companies ON companies.id = jobs.company_id").
		Where("jobs.user_id = ?", userID)

	// The name filter applies to the resolved company name, after the join.
	if search != "" {
		q = q.Where("companies.name ILIKE ?", "%"+search+"%")
	}

	var rows []SummaryRow
	err := q.Group("jobs.company_id, companies.name, companies.avatar_color").
		Order("companies.name ASC").
		Scan(&rows).Error
	return rows, err
}
