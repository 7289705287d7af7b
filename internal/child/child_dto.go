package child

type CreateChildRequest struct {
	Name          string `json:"name" binding:"required"`
	DateOfBirth   string `json:"date_of_birth" binding:"required"`
	Gender        string `json:"gender" binding:"omitempty,oneof=MALE FEMALE"`
	HasDisability *bool  `json:"has_disability"`
}

type UpdateChildRequest struct {
	Name          *string `json:"name"`
	DateOfBirth   *string `json:"date_of_birth"`
	Gender        *string `json:"gender" binding:"omitempty,oneof=MALE FEMALE"`
	HasDisability *bool   `json:"has_disability"`
}

type ChildResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender,omitempty"`
	HasDisability bool   `json:"has_disability"`
}
