package models

// Class is one taught group (a section of students with a schedule).
type Class struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Section       string `json:"section,omitempty"`
	Level         string `json:"level,omitempty"`
	Room          string `json:"room,omitempty"`
	Schedule      string `json:"schedule,omitempty"`
	Duration      string `json:"duration,omitempty"`
	Year          string `json:"year,omitempty"`
	TeacherID     string `json:"teacher_id,omitempty"`
	StudentsCount int    `json:"students_count,omitempty"`
	MadrasaName   string `json:"madrasa_name,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

// Course is one unit of the curriculum.
type Course struct {
	ID            string `json:"id,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Level         string `json:"level,omitempty"`
	Duration      string `json:"duration,omitempty"`
	Modules       int    `json:"modules,omitempty"`
	Progress      int    `json:"progress,omitempty"`
	StudentsCount int    `json:"students_count,omitempty"`
	MadrasaName   string `json:"madrasa_name,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}
