package models

// Profile is the per-user profile row, carrying the tenant name shown in
// the application header.
type Profile struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	MadrasaName string `json:"madrasa_name,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Session is the authenticated client session against the remote store.
type Session struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email,omitempty"`
	MadrasaName string `json:"madrasa_name,omitempty"`
	AccessToken string `json:"access_token"`
}
