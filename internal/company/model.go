package company

import (
	"time"

	"career-portal-api/internal/user"
)

type Document struct {
	Id          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Industry    string    `json:"industry,omitempty" bson:"industry,omitempty"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Website     string    `json:"website,omitempty" bson:"website,omitempty"`
	Size        string    `json:"size,omitempty" bson:"size,omitempty"`
	Logo        string    `json:"logo,omitempty" bson:"logo,omitempty"`
	Owner       string    `json:"ownerId" bson:"owner"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

type CreateCompanyPayload struct {
	Name        string `json:"name" validate:"required"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Size        string `json:"size"`
}

type UpdateCompanyPayload struct {
	Name        string `json:"name,omitempty" bson:"name,omitempty"`
	Industry    string `json:"industry,omitempty" bson:"industry,omitempty"`
	Location    string `json:"location,omitempty" bson:"location,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Website     string `json:"website,omitempty" bson:"website,omitempty"`
	Size        string `json:"size,omitempty" bson:"size,omitempty"`
}

type ListFilter struct {
	Search   string
	Industry string
	Page     int64
	Limit    int64
}

type View struct {
	*Document
	OwnerUser     *user.Summary `json:"owner,omitempty"`
	OpenPositions int64         `json:"openPositions"`
}
