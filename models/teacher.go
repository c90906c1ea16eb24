package models

// Teacher is one member of the teaching staff.
type Teacher struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Contact        string `json:"contact"`
	Subject        string `json:"subject"`
	Qualification  string `json:"qualification"`
	Specialization string `json:"specialization,omitempty"`
	ClassesCount   int    `json:"classes_count,omitempty"`
	StudentsCount  int    `json:"students_count,omitempty"`
	MadrasaName    string `json:"madrasa_name,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}
