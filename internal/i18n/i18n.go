// Package i18n provides the bilingual (English / Urdu) message catalog for
// user-facing output. Keys missing from the selected language fall back to
// English; unknown keys are returned verbatim so a typo surfaces in the UI
// instead of vanishing.
package i18n

const (
	// LangEN selects English messages.
	LangEN = "en"
	// LangUR selects Urdu messages.
	LangUR = "ur"
)

// Message keys.
const (
	KeyAppTitle    = "app_title"
	KeyAppSubtitle = "app_subtitle"

	KeyStatusOnline  = "status_online"
	KeyStatusOffline = "status_offline"

	KeyWentOnline    = "went_online"
	KeyWentOffline   = "went_offline"
	KeySyncDone      = "sync_done"
	KeySyncFailed    = "sync_failed"
	KeySyncOffline   = "sync_offline"
	KeySavedOffline  = "saved_offline"
	KeyPendingCount  = "pending_count"
	KeySyncInFlight  = "sync_in_flight"
	KeyNothingToSync = "nothing_to_sync"

	KeyStudents         = "students"
	KeyTeachers         = "teachers"
	KeyClasses          = "classes"
	KeyAttendance       = "attendance"
	KeyCourses          = "courses"
	KeyFees             = "fees"
	KeyEducationReports = "education_reports"
)

var catalog = map[string]map[string]string{
	LangEN: {
		KeyAppTitle:    "Madrasa",
		KeyAppSubtitle: "Management Kit",

		KeyStatusOnline:  "online",
		KeyStatusOffline: "offline",

		KeyWentOnline:    "Back online! Syncing data...",
		KeyWentOffline:   "Gone offline! Changes are being saved locally",
		KeySyncDone:      "All changes synced",
		KeySyncFailed:    "Sync problem",
		KeySyncOffline:   "Offline! Cannot sync",
		KeySavedOffline:  "Saved locally, will sync when online",
		KeyPendingCount:  "pending changes",
		KeySyncInFlight:  "Sync already in progress",
		KeyNothingToSync: "Nothing to sync",

		KeyStudents:         "Students",
		KeyTeachers:         "Teachers",
		KeyClasses:          "Classes",
		KeyAttendance:       "Attendance",
		KeyCourses:          "Courses",
		KeyFees:             "Fees",
		KeyEducationReports: "Learning Report",
	},
	LangUR: {
		KeyAppTitle:    "مدرسہ",
		KeyAppSubtitle: "مینجمنٹ کٹ",

		KeyStatusOnline:  "آن لائن",
		KeyStatusOffline: "آف لائن",

		KeyWentOnline:    "آن لائن ہو گئے! ڈیٹا sync ہو رہا ہے...",
		KeyWentOffline:   "آف لائن ہو گئے! تبدیلیاں محفوظ ہو رہی ہیں",
		KeySyncDone:      "تمام تبدیلیاں sync ہو گئیں",
		KeySyncFailed:    "Sync میں مسئلہ",
		KeySyncOffline:   "آف لائن ہیں! sync نہیں ہو سکتا",
		KeySavedOffline:  "مقامی طور پر محفوظ، آن لائن ہونے پر sync ہو گا",
		KeyPendingCount:  "زیر التواء تبدیلیاں",
		KeySyncInFlight:  "Sync پہلے سے جاری ہے",
		KeyNothingToSync: "Sync کے لیے کچھ نہیں",

		KeyStudents:         "طلباء",
		KeyTeachers:         "اساتذہ",
		KeyClasses:          "کلاسز",
		KeyAttendance:       "حاضری",
		KeyCourses:          "کورسز",
		KeyFees:             "فیسیں",
		KeyEducationReports: "تعلیمی رپورٹ",
	},
}

// T returns the message for key in lang. Unknown languages fall back to
// English; unknown keys are returned as-is.
func T(lang, key string) string {
	if messages, ok := catalog[lang]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if msg, ok := catalog[LangEN][key]; ok {
		return msg
	}
	return key
}

// Languages returns the supported language codes.
func Languages() []string {
	return []string{LangEN, LangUR}
}
