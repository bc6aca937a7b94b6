package job

import (
	"time"

	"github.com/google/uuid"
)

// Job is one tracked application. CompanyName is a denormalized snapshot of
// the referenced company taken when the record is written; a later company
// rename does not touch it.
type Job struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID            uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyName          string    `gorm:"type:varchar(150);not null"`
	PositionTitle        string    `gorm:"type:varchar(150);not null"`
	Department           string    `gorm:"type:varchar(100);not null;default:''"`
	Location             string    `gorm:"type:varchar(150);not null;default:''"`
	CurrentStatus        string    `gorm:"type:varchar(30);not null;default:'Applied'"`
	ApplicationDate      time.Time `gorm:"not null;index"`
	PriorityLevel        string    `gorm:"type:varchar(20);not null;default:'Medium'"`
	JobType              string    `gorm:"type:varchar(20);not null;default:'Full-time'"`
	WorkMode             string    `gorm:"type:varchar(20);not null;default:'Remote'"`
	SalaryMin            string    `gorm:"type:varchar(50);not null;default:''"`
	SalaryMax            string    `gorm:"type:varchar(50);not null;default:''"`
	JobPostingURL        string    `gorm:"type:text;not null;default:''"`
	RecruiterName        string    `gorm:"type:varchar(150);not null;default:''"`
	RecruiterEmail       string    `gorm:"type:varchar(255);not null;default:''"`
	HRContact            string    `gorm:"type:varchar(150);not null;default:''"`
	ApplicationSource    string    `gorm:"type:varchar(100);not null;default:'Company Website'"`
	CoverLetterSubmitted string    `gorm:"type:varchar(5);not null;default:'No'"`
	ResumeVersion        string    `gorm:"type:varchar(100);not null;default:''"`
	Notes                string    `gorm:"type:text;not null;default:''"`
	FollowUpDate         *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (Job) TableName() string {
	return "jobs"
}
