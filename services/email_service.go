// File: /services/email_service.go
package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/ou8123/findshuttles-sub001/config"
	"github.com/ou8123/findshuttles-sub001/models"
)

// EmailService mails catalog-change notifications to the site operator.
// Sending is best-effort: failures are logged and never surfaced to the
// API caller. With no SMTP host configured every send is a no-op.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
	}
}

func (es *EmailService) NotifyRouteCreated(route *models.Route) {
	subject := fmt.Sprintf("New route published: %s", route.DisplayName)
	body := fmt.Sprintf(
		"Route %s is now live.\n\nSlug: %s\nURL: %s/routes/%s\n",
		route.DisplayName, route.RouteSlug, es.config.SiteURL, route.RouteSlug,
	)
	es.send(subject, body)
}

func (es *EmailService) NotifyRouteDuplicated(sourceSlug, newSlug string) {
	subject := fmt.Sprintf("Route duplicated: %s", newSlug)
	body := fmt.Sprintf(
		"Route %s was duplicated as %s.\n\nThe copy keeps the source widget code; update it before publishing.\n",
		sourceSlug, newSlug,
	)
	es.send(subject, body)
}

func (es *EmailService) send(subject, body string) {
	if es.config.SMTPHost == "" || es.config.NotifyEmail == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", es.config.FromEmail)
	m.SetHeader("To", es.config.NotifyEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		fmt.Printf("Failed to send notification email: %v\n", err)
	}
}
