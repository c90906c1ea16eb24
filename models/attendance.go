package models

// Attendance status values.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceLeave   = "leave"
)

// AttendanceEntry records one student's presence on one date.
type AttendanceEntry struct {
	ID          string `json:"id,omitempty"`
	StudentID   string `json:"student_id"`
	ClassID     string `json:"class_id,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Status      string `json:"status"`
	NotedBy     string `json:"noted_by,omitempty"`
	MadrasaName string `json:"madrasa_name,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}
