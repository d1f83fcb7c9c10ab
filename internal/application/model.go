package application

import (
	"time"

	"career-portal-api/internal/job"
	"career-portal-api/internal/user"
)

const (
	StatusPending     = "pending"
	StatusReviewed    = "reviewed"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
	StatusHired       = "hired"
)

type Document struct {
	Id        string    `json:"id" bson:"_id"`
	Job       string    `json:"jobId" bson:"job"`
	Applicant string    `json:"applicantId" bson:"applicant"`
	Status    string    `json:"status" bson:"status"`
	ResumeUrl string    `json:"resumeUrl,omitempty" bson:"resumeUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type ApplyPayload struct {
	JobId string `json:"jobId" form:"jobId" validate:"required"`
}

type UpdateStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed shortlisted rejected hired"`
}

type JobSummary struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	Type     string `json:"type,omitempty"`
	Status   string `json:"status,omitempty"`
}

type View struct {
	*Document
	JobDetail    *JobSummary         `json:"job,omitempty"`
	CompanyBrief *job.CompanySummary `json:"company,omitempty"`
	ApplicantRef *user.Summary       `json:"applicant,omitempty"`
}
