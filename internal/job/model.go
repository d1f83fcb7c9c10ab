package job

import (
	"time"

	"career-portal-api/internal/user"
)

const (
	StatusActive = "active"
	StatusClosed = "closed"
)

type Document struct {
	Id          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	CompanyId   string    `bson:"company" json:"companyId"`
	Location    string    `bson:"location" json:"location"`
	Type        string    `bson:"type" json:"type"`
	Salary      string    `bson:"salary" json:"salary"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Skills      []string  `bson:"skills,omitempty" json:"skills,omitempty"`
	Status      string    `bson:"status" json:"status"`
	PostedBy    string    `bson:"postedBy" json:"postedById"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

type CreateJobPayload struct {
	Title       string   `json:"title" validate:"required"`
	CompanyId   string   `json:"companyId" validate:"required"`
	Location    string   `json:"location"`
	Type        string   `json:"type" validate:"omitempty,oneof=Full-time Part-time Internship Contract Remote"`
	Salary      string   `json:"salary"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type UpdateJobPayload struct {
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Type        string   `json:"type" validate:"omitempty,oneof=Full-time Part-time Internship Contract Remote"`
	Salary      string   `json:"salary"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Status      string   `json:"status" validate:"omitempty,oneof=active closed"`
	IsActive    *bool    `json:"isActive"`
}

type ListFilter struct {
	Search   string
	Type     string
	Location string
	Page     int64
	Limit    int64
}

type CompanySummary struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
	Location string `json:"location,omitempty"`
	Logo     string `json:"logo,omitempty"`
}

// View is the job document with its company and poster references resolved.
type View struct {
	*Document
	Company *CompanySummary `json:"company,omitempty"`
	Poster  *user.Summary   `json:"postedBy,omitempty"`
}
