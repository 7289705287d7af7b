package leavebalance

type CreateLeaveBalanceRequest struct {
	UserID         string `json:"user_id" binding:"required,uuid"`
	LeaveTypeID    uint   `json:"leave_type_id" binding:"required"`
	Year           int    `json:"year" binding:"required,min=2000,max=2100"`
	InitialBalance int    `json:"initial_balance" binding:"required,min=0"`
}

// UpdateLeaveBalanceRequest menerima subset field; field yang tidak
// dikirim tidak disentuh dan tidak diturunkan ulang dari field lain.
type UpdateLeaveBalanceRequest struct {
	Year             *int `json:"year" binding:"omitempty,min=2000,max=2100"`
	InitialBalance   *int `json:"initial_balance" binding:"omitempty,min=0"`
	UsedBalance      *int `json:"used_balance" binding:"omitempty,min=0"`
	RemainingBalance *int `json:"remaining_balance" binding:"omitempty,min=0"`
}

type LeaveBalanceResponse struct {
	ID               string `json:"id"`
	UserID           string `json:"user_id"`
	LeaveTypeID      uint   `json:"leave_type_id"`
	Year             int    `json:"year"`
	InitialBalance   int    `json:"initial_balance"`
	UsedBalance      int    `json:"used_balance"`
	RemainingBalance int    `json:"remaining_balance"`
}
