package handler

// --- Request types ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createReportRequest struct {
	ProblemType string `json:"problem_type" validate:"required"`
	Location    string `json:"location"     validate:"required"`
	Issue       string `json:"issue"        validate:"required"`
	Priority    string `json:"priority"     validate:"omitempty,oneof=Low Medium High Emergency"`
	PhotoData   string `json:"photo_data"`
}

// Status and role values are validated by the domain layer; "In Progress"
// carries a space, which oneof tags handle poorly.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// --- Response types ---

// messageResponse is the envelope for mutations that return no entity.
type messageResponse struct {
	Message string `json:"message"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type createReportResponse struct {
	Message  string `json:"message"`
	ReportID string `json:"reportId"`
}

type unreadCountResponse struct {
	Count int64 `json:"count"`
}
