package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_company_owner_name"`
	// Name is unique per owner, not globally.
	Name        string `gorm:"type:varchar(150);not null;uniqueIndex:uq_company_owner_name"`
	AvatarColor string `gorm:"type:varchar(30);not null"`
	// Initial is the uppercased first character of Name, captured once at
	// creation and not recomputed on rename.
	Initial   string `gorm:"type:varchar(8);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Company) TableName() string {
	return "companies"
}
