package company

import "time"

type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	AvatarColor string `json:"avatarColor" binding:"required"`
}

type UpdateCompanyRequest struct {
	Name        string `json:"name"`
	AvatarColor string `json:"avatarColor"`
}

type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AvatarColor string    `json:"avatarColor"`
	Initial     string    `json:"initial"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CompanySummaryResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	AvatarColor  string     `json:"avatarColor"`
	Initial      string     `json:"initial"`
	Applications int64      `json:"applications"`
	Interviews   int64      `json:"interviews"`
	LastApplied  *time.Time `json:"lastApplied"`
}
