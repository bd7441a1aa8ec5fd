package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/leasewatch/leasewatch/internal/agreements"
	"github.com/leasewatch/leasewatch/internal/config"
	"github.com/leasewatch/leasewatch/internal/recipients"
)

type service struct {
	agreements agreements.System
	recipients recipients.System
	mailer     Mailer
	cfg        config.SMTPConfig
	logger     *slog.Logger
}

// New creates a notification service implementing the System interface.
func New(
	agr agreements.System,
	rec recipients.System,
	mailer Mailer,
	cfg config.SMTPConfig,
	logger *slog.Logger,
) System {
	return &service{
		agreements: agr,
		recipients: rec,
		mailer:     mailer,
		cfg:        cfg,
		logger:     logger.With("system", "notify"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Dispatch scans every agreement, and for each one carrying an active
// alert tier sends a notification to the recipient registered for its
// tenant. Send failures and unmatched tenants are counted rather than
// aborting the run, so one bad address never blocks the rest.
func (s *service) Dispatch(ctx context.Context) (*Report, error) {
	if !s.cfg.Configured() {
		return nil, ErrNotConfigured
	}

	recs, err := s.recipients.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load recipients: %w", err)
	}
	if len(recs) == 0 {
		return nil, ErrNoRecipients
	}

	items, err := s.agreements.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load agreements: %w", err)
	}

	var report Report
	now := time.Now()

	for _, a := range items {
		if !a.AlertStatus.Active() {
			continue
		}

		email := matchRecipient(a.TenantName, recs)
		if email == "" {
			report.Unmatched++
			s.logger.WarnContext(ctx, "no recipient for alerted tenant",
				"agreement_id", a.ID,
				"tenant", a.TenantName,
				"tier", a.AlertStatus,
			)
			continue
		}

		subject, body, err := BuildEmail(a, a.AlertStatus, now)
		if err != nil {
			report.Failed++
			s.logger.ErrorContext(ctx, "render alert email",
				"agreement_id", a.ID,
				"error", err,
			)
			continue
		}

		if err := s.mailer.Send(email, subject, body); err != nil {
			report.Failed++
			s.logger.ErrorContext(ctx, "send alert email",
				"agreement_id", a.ID,
				"tenant", a.TenantName,
				"error", err,
			)
			continue
		}

		report.Sent++
		s.logger.InfoContext(ctx, "alert email sent",
			"agreement_id", a.ID,
			"tenant", a.TenantName,
			"tier", a.AlertStatus,
		)
	}

	return &report, nil
}

// SendTest delivers a minimal message to verify the SMTP configuration.
func (s *service) SendTest(to string) error {
	if !s.cfg.Configured() {
		return ErrNotConfigured
	}

	const body = `<!DOCTYPE html>
<html>
<body>
<p>This is a test email from LeaseWatch. Your SMTP configuration is working.</p>
</body>
</html>
`
	if err := s.mailer.Send(to, "Test Email from LeaseWatch", body); err != nil {
		return err
	}

	s.logger.Info("test email sent", "to", to)
	return nil
}

// matchRecipient finds the email registered for a tenant. The first
// matching pair wins.
func matchRecipient(tenantName string, recs []recipients.Recipient) string {
	if tenantName == "" {
		return ""
	}
	for _, r := range recs {
		if r.MatchesTenant(tenantName) {
			return r.Email
		}
	}
	return ""
}
