// Package template loads the HTML layouts used for notification emails.
package template

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"os"
	"path/filepath"

	vo "github.com/mif-gmao/gmao/internal/domain/notification/valueobjects"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

//go:embed defaults/*.html
var defaults embed.FS

var notificationTypes = []vo.NotificationType{
	vo.TypeInformation,
	vo.TypeAlerte,
	vo.TypeAffectation,
	vo.TypeCreation,
	vo.TypeCloture,
}

// ErrTemplateNotFound is returned when no template exists for a notification type.
var ErrTemplateNotFound = errors.New("notification template not found")

// EmailData is what every template receives. Body is already sanitized HTML.
type EmailData struct {
	Subject       string
	RecipientName string
	Body          htmltemplate.HTML
}

// NotificationTemplateLoader holds one parsed template per notification type.
// Embedded defaults are loaded first; files named custom.<type>.html in path
// replace them.
type NotificationTemplateLoader struct {
	templates map[vo.NotificationType]*htmltemplate.Template
	path      string
	logger    logger.Interface
}

func NewNotificationTemplateLoader(path string, logger logger.Interface) *NotificationTemplateLoader {
	return &NotificationTemplateLoader{
		templates: make(map[vo.NotificationType]*htmltemplate.Template),
		path:      path,
		logger:    logger,
	}
}

func (l *NotificationTemplateLoader) Load() error {
	layout, err := defaults.ReadFile("defaults/layout.html")
	if err != nil {
		return fmt.Errorf("failed to read layout template: %w", err)
	}

	for _, kind := range notificationTypes {
		content, err := defaults.ReadFile(fmt.Sprintf("defaults/%s.html", kind))
		if err != nil {
			return fmt.Errorf("failed to read default template %s: %w", kind, err)
		}

		if custom, ok := l.readCustom(kind); ok {
			content = custom
		}

		tmpl, err := htmltemplate.New(string(kind)).Parse(string(layout))
		if err != nil {
			return fmt.Errorf("failed to parse layout template: %w", err)
		}
		if _, err := tmpl.Parse(string(content)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", kind, err)
		}
		l.templates[kind] = tmpl
	}

	l.logger.Infow("notification templates loaded", "count", len(l.templates), "path", l.path)
	return nil
}

func (l *NotificationTemplateLoader) readCustom(kind vo.NotificationType) ([]byte, bool) {
	if l.path == "" {
		return nil, false
	}
	filePath := filepath.Join(l.path, fmt.Sprintf("custom.%s.html", kind))
	content, err := os.ReadFile(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			l.logger.Warnw("failed to read template file", "file", filePath, "error", err)
		}
		return nil, false
	}
	l.logger.Infow("loaded custom notification template", "type", kind, "file", filePath)
	return content, true
}

// Render executes the template registered for kind.
func (l *NotificationTemplateLoader) Render(kind vo.NotificationType, data EmailData) (string, error) {
	tmpl, ok := l.templates[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, kind)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", kind, err)
	}
	return buf.String(), nil
}
