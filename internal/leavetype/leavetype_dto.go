package leavetype

type CreateLeaveTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=ANNUAL SICK MATERNITY PATERNITY UNPAID OTHER"`
	Description string `json:"description"`
}

type UpdateLeaveTypeRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category" binding:"omitempty,oneof=ANNUAL SICK MATERNITY PATERNITY UNPAID OTHER"`
	Description *string `json:"description"`
}

type LeaveTypeResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}
