package job

type CreateJobRequest struct {
	CompanyID            string `json:"companyId" binding:"required"`
	PositionTitle        string `json:"positionTitle" binding:"required"`
	ApplicationDate      string `json:"applicationDate" binding:"required"`
	Department           string `json:"department"`
	Location             string `json:"location"`
	CurrentStatus        string `json:"currentStatus" binding:"omitempty,oneof='Applied' 'Interview Scheduled' 'Rejected' 'Offer Received'"`
	PriorityLevel        string `json:"priorityLevel" binding:"omitempty,oneof=Low Medium High"`
	JobType              string `json:"jobType" binding:"omitempty,oneof=Full-time Part-time Contract Internship"`
	WorkMode             string `json:"workMode" binding:"omitempty,oneof=Remote On-site Hybrid"`
	SalaryMin            string `json:"salaryMin"`
	SalaryMax            string `json:"salaryMax"`
	JobPostingURL        string `json:"jobPostingUrl"`
	RecruiterName        string `json:"recruiterName"`
	RecruiterEmail       string `json:"recruiterEmail" binding:"omitempty,email"`
	HRContact            string `json:"hrContact"`
	ApplicationSource    string `json:"applicationSource"`
	CoverLetterSubmitted string `json:"coverLetterSubmitted" binding:"omitempty,oneof=Yes No"`
	ResumeVersion        string `json:"resumeVersion"`
	Notes                string `json:"notes"`
	FollowUpDate         *string `json:"followUpDate"`
}

// UpdateJobRequest carries partial-merge semantics: nil means "leave alone".
type UpdateJobRequest struct {
	CompanyID            *string `json:"companyId"`
	PositionTitle        *string `json:"positionTitle"`
	ApplicationDate      *string `json:"applicationDate"`
	Department           *string `json:"department"`
	Location             *string `json:"location"`
	CurrentStatus        *string `json:"currentStatus" binding:"omitempty,oneof='Applied' 'Interview Scheduled' 'Rejected' 'Offer Received'"`
	PriorityLevel        *string `json:"priorityLevel" binding:"omitempty,oneof=Low Medium High"`
	JobType              *string `json:"jobType" binding:"omitempty,oneof=Full-time Part-time Contract Internship"`
	WorkMode             *string `json:"workMode" binding:"omitempty,oneof=Remote On-site Hybrid"`
	SalaryMin            *string `json:"salaryMin"`
	SalaryMax            *string `json:"salaryMax"`
	JobPostingURL        *string `json:"jobPostingUrl"`
	RecruiterName        *string `json:"recruiterName"`
	RecruiterEmail       *string `json:"recruiterEmail" binding:"omitempty,email"`
	HRContact            *string `json:"hrContact"`
	ApplicationSource    *string `json:"applicationSource"`
	CoverLetterSubmitted *string `json:"coverLetterSubmitted" binding:"omitempty,oneof=Yes No"`
	ResumeVersion        *string `json:"resumeVersion"`
	Notes                *string `json:"notes"`
	FollowUpDate         *string `json:"followUpDate"`
}

type JobResponse struct {
	ID                   string  `json:"id"`
	CompanyID            string  `json:"companyId"`
	CompanyName          string  `json:"companyName"`
	PositionTitle        string  `json:"positionTitle"`
	Department           string  `json:"department"`
	Location             string  `json:"location"`
	CurrentStatus        string  `json:"currentStatus"`
	ApplicationDate      string  `json:"applicationDate"`
	PriorityLevel        string  `json:"priorityLevel"`
	JobType              string  `json:"jobType"`
	WorkMode             string  `json:"workMode"`
	SalaryMin            string  `json:"salaryMin"`
	SalaryMax            string  `json:"salaryMax"`
	JobPostingURL        string  `json:"jobPostingUrl"`
	RecruiterName        string  `json:"recruiterName"`
	RecruiterEmail       string  `json:"recruiterEmail"`
	HRContact            string  `json:"hrContact"`
	ApplicationSource    string  `json:"applicationSource"`
	CoverLetterSubmitted string  `json:"coverLetterSubmitted"`
	ResumeVersion        string  `json:"resumeVersion"`
	Notes                string  `json:"notes"`
	FollowUpDate         *string `json:"followUpDate"`
	CreatedAt            string  `json:"createdAt"`
	UpdatedAt            string  `json:"updatedAt"`
}
