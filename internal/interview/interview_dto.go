package interview

type CreateInterviewRequest struct {
	ApplicationID    string `json:"applicationId" binding:"required"`
	InterviewType    string `json:"interviewType" binding:"required,oneof='HR Round' 'Technical' 'System Design' 'Final Round'"`
	InterviewDate    string `json:"interviewDate" binding:"required"`
	Time             string `json:"time" binding:"required"`
	Duration         string `json:"duration" binding:"required"`
	Format           string `json:"format" binding:"required,oneof='Video Call' 'Phone Call' 'On-site'"`
	MeetingLink      string `json:"meetingLink"`
	InterviewerName  string `json:"interviewerName"`
	InterviewerEmail string `json:"interviewerEmail" binding:"omitempty,email"`
	Notes            string `json:"notes"`
}

// UpdateInterviewRequest covers the interview's own mutable fields. The
// applicationId reference and the frozen snapshot fields cannot be changed.
type UpdateInterviewRequest struct {
	InterviewType    *string `json:"interviewType" binding:"omitempty,oneof='HR Round' 'Technical' 'System Design' 'Final Round'"`
	InterviewDate    *string `json:"interviewDate"`
	Time             *string `json:"time"`
	Duration         *string `json:"duration"`
	Format           *string `json:"format" binding:"omitempty,oneof='Video Call' 'Phone Call' 'On-site'"`
	MeetingLink      *string `json:"meetingLink"`
	InterviewerName  *string `json:"interviewerName"`
	InterviewerEmail *string `json:"interviewerEmail" binding:"omitempty,email"`
	Notes            *string `json:"notes"`
}

// InterviewResponse is the raw stored record, snapshot fields included.
type InterviewResponse struct {
	ID               string `json:"id"`
	ApplicationID    string `json:"applicationId"`
	InterviewType    string `json:"interviewType"`
	InterviewDate    string `json:"interviewDate"`
	Time             string `json:"time"`
	Duration         string `json:"duration"`
	Format           string `json:"format"`
	MeetingLink      string `json:"meetingLink"`
	InterviewerName  string `json:"interviewerName"`
	InterviewerEmail string `json:"interviewerEmail"`
	Notes            string `json:"notes"`
	CompanyName      string `json:"companyName"`
	PositionTitle    string `json:"positionTitle"`
	CompanyInitial   string `json:"companyInitial"`
	CompanyColor     string `json:"companyColor"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// ApplicationSnapshot is the live job reference attached to a single
// interview read; nil when the job has been deleted.
type ApplicationSnapshot struct {
	ID            string `json:"id"`
	CompanyName   string `json:"companyName"`
	PositionTitle string `json:"positionTitle"`
}

type InterviewDetailResponse struct {
	InterviewResponse
	Application *ApplicationSnapshot `json:"application,omitempty"`
}

// InterviewListItem is one row of the enriched list view. companyName and
// positionTitle come from the joined job (empty if it no longer exists);
// companyInitial and companyColor are recomputed live from the joined
// company, not from the stored snapshots.
type InterviewListItem struct {
	ID               string `json:"id"`
	ApplicationID    string `json:"applicationId,omitempty"`
	InterviewType    string `json:"interviewType"`
	InterviewDate    string `json:"interviewDate"`
	Time             string `json:"time"`
	Duration         string `json:"duration"`
	Format           string `json:"format"`
	MeetingLink      string `json:"meetingLink"`
	InterviewerName  string `json:"interviewerName"`
	InterviewerEmail string `json:"interviewerEmail"`
	Notes            string `json:"notes"`
	CompanyName      string `json:"companyName"`
	PositionTitle    string `json:"positionTitle"`
	CompanyInitial   string `json:"companyInitial"`
	CompanyColor     string `json:"companyColor,omitempty"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}
