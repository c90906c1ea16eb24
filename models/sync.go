package models

// SyncStatus is a point-in-time snapshot of the offline sync subsystem,
// surfaced to the status command and the terminal indicator.
type SyncStatus struct {
	Online  bool `json:"online"`
	Syncing bool `json:"syncing"`
	Pending int  `json:"pending"`
}
