package models

// Collection names as they exist on the remote store.
const (
	TableStudents           = "students"
	TableTeachers           = "teachers"
	TableClasses            = "classes"
	TableAttendance         = "attendance"
	TableCourses            = "courses"
	TableFees               = "fees"
	TableExpenses           = "expenses"
	TableBudgets            = "budgets"
	TableEducationReports   = "education_reports"
	TableUserRoles          = "user_roles"
	TablePendingUserRoles   = "pending_user_roles"
	TableRoleChangeRequests = "role_change_requests"
	TableProfiles           = "profiles"
)

// TrackedCollections is the fixed list the refresh coordinator mirrors into
// the local cache after a replay pass.
func TrackedCollections() []string {
	return []string{
		TableStudents,
		TableTeachers,
		TableClasses,
		TableAttendance,
		TableCourses,
		TableFees,
		TableEducationReports,
	}
}

// KnownTables lists every collection the write path accepts.
func KnownTables() []string {
	return []string{
		TableStudents,
		TableTeachers,
		TableClasses,
		TableAttendance,
		TableCourses,
		TableFees,
		TableExpenses,
		TableBudgets,
		TableEducationReports,
		TableUserRoles,
		TablePendingUserRoles,
		TableRoleChangeRequests,
		TableProfiles,
	}
}
