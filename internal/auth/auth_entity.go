package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username  string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_user_email"`
	Password  string    `gorm:"type:varchar(255);not null"` // bcrypt hash, never the plaintext
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
