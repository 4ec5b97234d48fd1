package rig

import "log/slog"

// Announcer speaks short status messages to the user.
type Announcer interface {
	Say(text string)
}

// AnnouncerFunc adapts a function to Announcer.
type AnnouncerFunc func(text string)

func (f AnnouncerFunc) Say(text string) { f(text) }

// LogAnnouncer writes announcements to the log when no speech engine is attached.
type LogAnnouncer struct {
	Logger *slog.Logger
}

func (a LogAnnouncer) Say(text string) {
	a.Logger.Info("say", "text", text)
}
