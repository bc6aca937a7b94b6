package interview

import (
	"time"

	"github.com/google/uuid"
)

// Interview carries four denormalized snapshot fields copied from the
// referenced job and its company when the interview is created. They are
// frozen: a later rename of the company or retitle of the job never touches
// them. The list view recomputes initial/color live instead; only raw record
// reads surface these stored values.
type Interview struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	ApplicationID    uuid.UUID `gorm:"type:uuid;not null;index"`
	InterviewType    string    `gorm:"type:varchar(30);not null"`
	InterviewDate    time.Time `gorm:"not null;index"`
	Time             string    `gorm:"type:varchar(20);not null"`
	Duration         string    `gorm:"type:varchar(30);not null"`
	Format           string    `gorm:"type:varchar(20);not null"`
	MeetingLink      string    `gorm:"type:text;not null;default:''"`
	InterviewerName  string    `gorm:"type:varchar(150);not null;default:''"`
	InterviewerEmail string    `gorm:"type:varchar(255);not null;default:''"`
	Notes            string    `gorm:"type:text;not null;default:''"`
	CompanyName      string    `gorm:"type:varchar(150);not null"`
	PositionTitle    string    `gorm:"type:varchar(150);not null"`
	CompanyInitial   string    `gorm:"type:varchar(8);not null"`
	CompanyColor     string    `gorm:"type:varchar(30);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Interview) TableName() string {
	return "interviews"
}
