package service

import (
	"github.com/Tanzeel8246/madrasa/internal/i18n"
	"github.com/Tanzeel8246/madrasa/internal/logger"
	"github.com/Tanzeel8246/madrasa/models"
)

type logNotifier struct {
	lang   string
	logger *logger.Logger
}

// NewLogNotifier returns a [Notifier] that writes every sync lifecycle event
// as a structured log line in the configured language.
func NewLogNotifier(lang string, log *logger.Logger) Notifier {
	return &logNotifier{lang: lang, logger: log}
}

func (n *logNotifier) WentOnline() {
	n.logger.Info().Msg(i18n.T(n.lang, i18n.KeyWentOnline))
}

func (n *logNotifier) WentOffline() {
	n.logger.Warn().Msg(i18n.T(n.lang, i18n.KeyWentOffline))
}

func (n *logNotifier) SyncDone() {
	n.logger.Info().Msg(i18n.T(n.lang, i18n.KeySyncDone))
}

func (n *logNotifier) SyncFailed() {
	n.logger.Error().Msg(i18n.T(n.lang, i18n.KeySyncFailed))
}

func (n *logNotifier) SavedOffline(table string) {
	n.logger.Info().
		Str("collection", table).
		Msg(i18n.T(n.lang, i18n.KeySavedOffline))
}

func (n *logNotifier) StatusChanged(status models.SyncStatus) {
	n.logger.Debug().
		Bool("online", status.Online).
		Bool("syncing", status.Syncing).
		Int("pending", status.Pending).
		Msg("sync status changed")
}

type nopNotifier struct{}

// NewNopNotifier returns a [Notifier] that discards every event. Used in
// tests and non-interactive commands.
func NewNopNotifier() Notifier { return nopNotifier{} }

func (nopNotifier) WentOnline()                     {}
func (nopNotifier) WentOffline()                    {}
func (nopNotifier) SyncDone()                       {}
func (nopNotifier) SyncFailed()                     {}
func (nopNotifier) SavedOffline(string)             {}
func (nopNotifier) StatusChanged(models.SyncStatus) {}
