package leaverequest

type CreateLeaveRequestRequest struct {
	LeaveTypeID   uint   `json:"leave_type_id" binding:"required"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	Reason        string `json:"reason"`
	AttachmentURL string `json:"attachment_url"`
}

type UpdateLeaveRequestRequest struct {
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	Reason        *string `json:"reason"`
	Comment       *string `json:"comment"`
	AttachmentURL *string `json:"attachment_url"`
	Status        *string `json:"status" binding:"omitempty,oneof=APPROVED REJECTED"`
}

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LeaveTypeSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type LeaveRequestResponse struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	LeaveTypeID   uint              `json:"leave_type_id"`
	StartDate     string            `json:"start_date"`
	EndDate       string            `json:"end_date"`
	Days          int               `json:"days"`
	Status        string            `json:"status"`
	Reason        string            `json:"reason,omitempty"`
	Comment       string            `json:"comment,omitempty"`
	AttachmentURL string            `json:"attachment_url,omitempty"`
	User          *UserSummary      `json:"user,omitempty"`
	LeaveType     *LeaveTypeSummary `json:"leave_type,omitempty"`
}
