package calendar

import (
	"context"
	"os"

	"tailortalk/config"
	"tailortalk/internal/appointment"
	"tailortalk/pkg/gcalendar"
	pkgLog "tailortalk/pkg/log"
)

// New selects the calendar gateway once at process startup: live when a
// readable credentials file is configured, mock otherwise. Call sites never
// sniff the environment again.
func New(ctx context.Context, l pkgLog.Logger, cfg config.GoogleCalendarConfig) (appointment.Gateway, error) {
	if cfg.CredentialsPath == "" {
		l.Infof(ctx, "calendar: no credentials configured, using mock gateway")
		return NewMock(), nil
	}

	if _, err := os.Stat(cfg.CredentialsPath); err != nil {
		l.Warnf(ctx, "calendar: credentials file %q not readable (%v), using mock gateway", cfg.CredentialsPath, err)
		return NewMock(), nil
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath, cfg.TokenPath)
	if err != nil {
		return nil, err
	}

	l.Infof(ctx, "calendar: live gateway initialized (calendar %q)", cfg.CalendarID)
	return NewLive(client, cfg.CalendarID), nil
}
