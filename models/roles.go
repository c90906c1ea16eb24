package models

// Application roles.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleManager = "manager"
	RoleParent  = "parent"
)

// UserRole binds an authenticated user to an application role.
type UserRole struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// PendingUserRole is a role pre-assigned by email before the user signs up.
type PendingUserRole struct {
	ID          string `json:"id,omitempty"`
	Email       string `json:"email"`
	FullName    string `json:"full_name,omitempty"`
	Role        string `json:"role"`
	CreatedBy   string `json:"created_by,omitempty"`
	MadrasaName string `json:"madrasa_name,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// RoleChangeRequest is a user's request to be granted a different role,
// reviewed by an admin.
type RoleChangeRequest struct {
	ID             string `json:"id,omitempty"`
	UserID         string `json:"user_id"`
	RequestedRole  string `json:"requested_role"`
	Status         string `json:"status"` // pending, approved, rejected
	RequestMessage string `json:"request_message,omitempty"`
	AdminResponse  string `json:"admin_response,omitempty"`
	ReviewedBy     string `json:"reviewed_by,omitempty"`
	ReviewedAt     string `json:"reviewed_at,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}
