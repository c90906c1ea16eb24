package models

// Student is one enrolled pupil of the madrasa.
type Student struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	FatherName    string `json:"father_name"`
	ClassID       string `json:"class_id,omitempty"`
	AdmissionDate string `json:"admission_date,omitempty"`
	Contact       string `json:"contact,omitempty"`
	PhotoURL      string `json:"photo_url,omitempty"`
	Age           int    `json:"age,omitempty"`
	Grade         string `json:"grade,omitempty"`
	Status        string `json:"status,omitempty"`
	MadrasaName   string `json:"madrasa_name,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}
