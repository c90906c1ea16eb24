package models

// DecodeRecords converts raw rows of table into a slice of the matching typed
// entity. Tables without a typed model are returned unchanged, so callers can
// always marshal the result.
func DecodeRecords(table string, rows []Row) (any, error) {
	switch table {
	case TableStudents:
		return decodeRecords[Student](rows)
	case TableTeachers:
		return decodeRecords[Teacher](rows)
	case TableClasses:
		return decodeRecords[Class](rows)
	case TableAttendance:
		return decodeRecords[AttendanceEntry](rows)
	case TableCourses:
		return decodeRecords[Course](rows)
	case TableFees:
		return decodeRecords[Fee](rows)
	case TableExpenses:
		return decodeRecords[Expense](rows)
	case TableBudgets:
		return decodeRecords[Budget](rows)
	case TableEducationReports:
		return decodeRecords[EducationReport](rows)
	case TableUserRoles:
		return decodeRecords[UserRole](rows)
	case TablePendingUserRoles:
		return decodeRecords[PendingUserRole](rows)
	case TableRoleChangeRequests:
		return decodeRecords[RoleChangeRequest](rows)
	case TableProfiles:
		return decodeRecords[Profile](rows)
	default:
		return rows, nil
	}
}

func decodeRecords[T any](rows []Row) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		var record T
		if err := row.Decode(&record); err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}
