package tui

import "github.com/Tanzeel8246/madrasa/models"

type statusMsg models.SyncStatus

type statusClosedMsg struct{}
