package models

// SabakProgress is the new lesson portion of a daily Quran report.
type SabakProgress struct {
	ParaNo int    `json:"para_no,omitempty"`
	Amount string `json:"amount,omitempty"`
}

// SabqiProgress is the recent-revision portion of a daily Quran report.
type SabqiProgress struct {
	Recited bool   `json:"recited,omitempty"`
	Amount  string `json:"amount,omitempty"`
	HeardBy string `json:"heard_by,omitempty"`
}

// ManzilProgress is the long-revision portion of a daily Quran report.
type ManzilProgress struct {
	Number  string `json:"number,omitempty"`
	HeardBy string `json:"heard_by,omitempty"`
}

// EducationReport is one student's daily Quran learning report.
type EducationReport struct {
	ID          string         `json:"id,omitempty"`
	StudentID   string         `json:"student_id"`
	FatherName  string         `json:"father_name"`
	ClassID     string         `json:"class_id,omitempty"`
	Date        string         `json:"date"`
	Sabak       SabakProgress  `json:"sabak"`
	Sabqi       SabqiProgress  `json:"sabqi"`
	Manzil      ManzilProgress `json:"manzil"`
	Remarks     string         `json:"remarks,omitempty"`
	CreatedBy   string         `json:"created_by,omitempty"`
	MadrasaName string         `json:"madrasa_name,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty"`
	UpdatedAt   string         `json:"updated_at,omitempty"`
}
