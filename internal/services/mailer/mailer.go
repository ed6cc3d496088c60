// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

// Package mailer delivers magic link emails over SMTP.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/shulsign/onboarding/internal/config"
	"github.com/wneessen/go-mail"
)

const subject = "Your dashboard magic links"

// Service sends magic link emails using go-mail.
type Service struct {
	cfg *config.SMTPConfig
}

// NewService creates a new mailer service. The service is usable even with
// an empty SMTP config; Configured reports whether sending will be
// attempted.
func NewService(cfg *config.SMTPConfig) *Service {
	return &Service{cfg: cfg}
}

// Configured reports whether the SMTP block is fully present.
func (s *Service) Configured() bool {
	return s.cfg.Configured()
}

// SendMagicLinks sends the dashboard links to one recipient as a
// text + HTML message.
func (s *Service) SendMagicLinks(ctx context.Context, to string, links []string) error {
	msg := mail.NewMsg()

	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}

	text, html := BuildBody(links)
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, text)
	msg.AddAlternativeString(mail.TypeTextHTML, html)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
	}
	// Implicit TLS (SSL) for port 465, STARTTLS otherwise
	if s.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	return nil
}

// BuildBody renders the magic link email. At most two links are included.
func BuildBody(links []string) (text, html string) {
	if len(links) > 2 {
		links = links[:2]
	}

	textLines := []string{
		"Hi there,",
		"",
		"Your dashboard is ready. Use the magic links below (they expire in 3 days):",
	}
	for i, link := range links {
		textLines = append(textLines, fmt.Sprintf("%d. %s", i+1, link))
	}
	textLines = append(textLines,
		"",
		"If you didn't request this, you can ignore this email.",
	)

	var buttons strings.Builder
	for i, link := range links {
		fmt.Fprintf(&buttons,
			`<tr><td align="center" style="padding:10px 0;"><a href="%s" style="display:inline-block;background:#10b981;color:#0b172a;text-decoration:none;font-weight:600;padding:12px 18px;border-radius:999px;font-size:15px;">Open Dashboard (Link %d)</a></td></tr>`,
			link, i+1)
	}

	html = fmt.Sprintf(`<table role="presentation" cellpadding="0" cellspacing="0" width="100%%" style="background:#0b172a;padding:32px 0;">
<tr><td align="center">
<table role="presentation" cellpadding="0" cellspacing="0" width="520" style="background:#0f2136;border-radius:20px;padding:28px;">
<tr><td style="text-align:center;color:#e5e7eb;font-size:22px;font-weight:700;padding-bottom:12px;">Access your dashboard</td></tr>
<tr><td style="color:#cbd5e1;font-size:15px;line-height:1.6;padding-bottom:14px;">Hi there,<br/><br/>Your dashboard is ready. Use the magic links below (they expire in 3 days):</td></tr>
%s
<tr><td style="padding-top:12px;color:#94a3b8;font-size:13px;line-height:1.6;">If you didn&#8217;t request this, you can safely ignore this email.</td></tr>
</table>
</td></tr>
</table>`, buttons.String())

	return strings.Join(textLines, "\n"), html
}
