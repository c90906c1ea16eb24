package models

// Fee payment status values.
const (
	FeePaid    = "paid"
	FeePending = "pending"
	FeeOverdue = "overdue"
)

// Fee is one fee entry charged to a student for an academic year.
type Fee struct {
	ID                   string  `json:"id,omitempty"`
	StudentID            string  `json:"student_id"`
	FeeType              string  `json:"fee_type"`
	Amount               float64 `json:"amount"`
	AcademicYear         string  `json:"academic_year"`
	DueDate              string  `json:"due_date"`
	Status               string  `json:"status"`
	PaymentScreenshotURL string  `json:"payment_screenshot_url,omitempty"`
	CreatedBy            string  `json:"created_by,omitempty"`
	MadrasaName          string  `json:"madrasa_name,omitempty"`
	CreatedAt            string  `json:"created_at,omitempty"`
	UpdatedAt            string  `json:"updated_at,omitempty"`
}
