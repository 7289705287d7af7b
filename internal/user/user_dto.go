package user

type UpdateProfileRequest struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	DateOfBirth   *string `json:"date_of_birth"`
	CinNumber     *string `json:"cin_number"`
	CnssNumber    *string `json:"cnss_number"`
	MaritalStatus *string `json:"marital_status"`
	JobTitle      *string `json:"job_title"`
	Service       *string `json:"service"`
}

type ListUsersQuery struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=10"`
	Search   string `form:"search"`
}

type UserResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	Phone         string  `json:"phone,omitempty"`
	DateOfBirth   *string `json:"date_of_birth,omitempty"`
	CinNumber     string  `json:"cin_number,omitempty"`
	CnssNumber    string  `json:"cnss_number,omitempty"`
	MaritalStatus string  `json:"marital_status,omitempty"`
	JobTitle      string  `json:"job_title,omitempty"`
	Service       string  `json:"service,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
