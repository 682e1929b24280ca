// Package notifier delivers notifications over email or the application log.
package notifier

import (
	"context"
	"fmt"
	htmltemplate "html/template"

	appnotification "github.com/mif-gmao/gmao/internal/application/notification"
	"github.com/mif-gmao/gmao/internal/domain/notification"
	"github.com/mif-gmao/gmao/internal/infrastructure/template"
)

// MailSender sends one multipart message.
type MailSender interface {
	Send(to, subject, htmlBody, plainBody string) error
}

// EmailDispatcher renders the notification into its type template and mails it.
type EmailDispatcher struct {
	sender    MailSender
	templates *template.NotificationTemplateLoader
	markdown  *MarkdownRenderer
}

func NewEmailDispatcher(sender MailSender, templates *template.NotificationTemplateLoader, markdown *MarkdownRenderer) *EmailDispatcher {
	return &EmailDispatcher{sender: sender, templates: templates, markdown: markdown}
}

func (d *EmailDispatcher) Notify(ctx context.Context, recipient appnotification.Recipient, n *notification.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if recipient.Email == "" {
		return fmt.Errorf("recipient %d has no email address", recipient.UserID)
	}

	body, err := d.markdown.Render(n.Content())
	if err != nil {
		return err
	}
	subject := n.Subject()
	if subject == "" {
		subject = "Notification GMAO"
	}

	html, err := d.templates.Render(n.Type(), template.EmailData{
		Subject:       subject,
		RecipientName: recipient.Name,
		Body:          htmltemplate.HTML(body), // #nosec G203 -- sanitized by bluemonday
	})
	if err != nil {
		return err
	}

	return d.sender.Send(recipient.Email, subject, html, n.Content())
}
