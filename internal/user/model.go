package user

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
	RoleCompany = "company"
)

type Document struct {
	Id                   string    `bson:"_id" json:"id"`
	Name                 string    `bson:"name" json:"name"`
	Email                string    `bson:"email" json:"email"`
	Password             string    `bson:"password" json:"-"`
	Role                 string    `bson:"role" json:"role"`
	Phone                string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Status               string    `bson:"status,omitempty" json:"status,omitempty"`
	Gender               string    `bson:"gender,omitempty" json:"gender,omitempty"`
	Dob                  string    `bson:"dob,omitempty" json:"dob,omitempty"`
	Education            string    `bson:"education,omitempty" json:"education,omitempty"`
	WorkExp              string    `bson:"workExp,omitempty" json:"workExp,omitempty"`
	Skills               []string  `bson:"skills,omitempty" json:"skills,omitempty"`
	Resume               string    `bson:"resume,omitempty" json:"resume,omitempty"`
	ProfilePhoto         string    `bson:"profilePhoto,omitempty" json:"profilePhoto,omitempty"`
	CompanyDescription   string    `bson:"companyDescription,omitempty" json:"companyDescription,omitempty"`
	ResetPasswordToken   string    `bson:"resetPasswordToken,omitempty" json:"-"`
	ResetPasswordExpires time.Time `bson:"resetPasswordExpires,omitempty" json:"-"`
	CreatedAt            time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Summary is the projection embedded in other collections' responses.
type Summary struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (document *Document) Summary() *Summary {
	return &Summary{
		Id:    document.Id,
		Name:  document.Name,
		Email: document.Email,
	}
}

// UpdateUserPayload deliberately has no password or role field: neither can
// be changed through the profile update route.
type UpdateUserPayload struct {
	Name               string   `json:"name"`
	Phone              string   `json:"phone"`
	Status             string   `json:"status" validate:"omitempty,oneof=fresher experienced"`
	Gender             string   `json:"gender" validate:"omitempty,oneof=male female other"`
	Dob                string   `json:"dob"`
	Education          string   `json:"education"`
	WorkExp            string   `json:"workExp"`
	Skills             []string `json:"skills"`
	Resume             string   `json:"resume"`
	CompanyDescription string   `json:"companyDescription"`
}

type ListFilter struct {
	Role   string
	Search string
	Page   int64
	Limit  int64
}
