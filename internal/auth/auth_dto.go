package auth

type RegisterRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	Phone         string `json:"phone"`
	Role          string `json:"role" binding:"omitempty,oneof=ADMIN CHEF_SERVICE EMPLOYEE"`
	DateOfBirth   string `json:"date_of_birth"`
	CinNumber     string `json:"cin_number"`
	CnssNumber    string `json:"cnss_number"`
	MaritalStatus string `json:"marital_status"`
	JobTitle      string `json:"job_title"`
	Service       string `json:"service"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyResetCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

type ResetPasswordRequest struct {
	ResetToken  string `json:"reset_token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
