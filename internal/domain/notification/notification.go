// Package notification records alerts attempted for workflow events. A record
// exists whether or not delivery succeeded.
package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	vo "github.com/mif-gmao/gmao/internal/domain/notification/valueobjects"
	"github.com/mif-gmao/gmao/internal/domain/shared"
)

const maxContentLength = 5000

// ErrAlreadyFinal is returned when a delivered, failed or skipped record is marked again.
var ErrAlreadyFinal = errors.New("notification delivery already recorded")

type Notification struct {
	id             uint
	userID         uint
	interventionID *uint
	kind           vo.NotificationType
	channel        vo.Channel
	subject        string
	content        string
	status         vo.DeliveryStatus
	failureReason  string
	metadata       map[string]any
	createdAt      time.Time
	sentAt         *time.Time
}

func NewNotification(
	userID uint,
	interventionID *uint,
	kind vo.NotificationType,
	channel vo.Channel,
	subject string,
	content string,
	metadata map[string]any,
	now time.Time,
) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %q", kind)
	}
	if !channel.IsValid() {
		return nil, fmt.Errorf("invalid notification channel: %q", channel)
	}
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > maxContentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &Notification{
		userID:         userID,
		interventionID: interventionID,
		kind:           kind,
		channel:        channel,
		subject:        subject,
		content:        content,
		status:         vo.DeliveryPending,
		metadata:       metadata,
		createdAt:      shared.StorageTime(now),
	}, nil
}

func ReconstructNotification(
	id, userID uint,
	interventionID *uint,
	kind vo.NotificationType,
	channel vo.Channel,
	subject, content string,
	status vo.DeliveryStatus,
	failureReason string,
	metadata map[string]any,
	createdAt time.Time,
	sentAt *time.Time,
) *Notification {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &Notification{
		id:             id,
		userID:         userID,
		interventionID: interventionID,
		kind:           kind,
		channel:        channel,
		subject:        subject,
		content:        content,
		status:         status,
		failureReason:  failureReason,
		metadata:       metadata,
		createdAt:      createdAt,
		sentAt:         sentAt,
	}
}

func (n *Notification) ID() uint                  { return n.id }
func (n *Notification) UserID() uint              { return n.userID }
func (n *Notification) InterventionID() *uint     { return n.interventionID }
func (n *Notification) Type() vo.NotificationType { return n.kind }
func (n *Notification) Channel() vo.Channel       { return n.channel }
func (n *Notification) Subject() string           { return n.subject }
func (n *Notification) Content() string           { return n.content }
func (n *Notification) Status() vo.DeliveryStatus { return n.status }
func (n *Notification) FailureReason() string     { return n.failureReason }
func (n *Notification) CreatedAt() time.Time      { return n.createdAt }
func (n *Notification) SentAt() *time.Time        { return n.sentAt }

func (n *Notification) Metadata() map[string]any {
	out := make(map[string]any, len(n.metadata))
	for k, v := range n.metadata {
		out[k] = v
	}
	return out
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	n.id = id
	return nil
}

func (n *Notification) MarkSent(now time.Time) error {
	if n.status.IsFinal() {
		return ErrAlreadyFinal
	}
	at := shared.StorageTime(now)
	n.status = vo.DeliverySent
	n.sentAt = &at
	return nil
}

func (n *Notification) MarkFailed(reason string) error {
	if n.status.IsFinal() {
		return ErrAlreadyFinal
	}
	n.status = vo.DeliveryFailed
	n.failureReason = reason
	return nil
}

// MarkSkipped records that delivery was deliberately not attempted.
func (n *Notification) MarkSkipped(reason string) error {
	if n.status.IsFinal() {
		return ErrAlreadyFinal
	}
	n.status = vo.DeliverySkipped
	n.failureReason = reason
	return nil
}

type Filter struct {
	UserID         *uint
	InterventionID *uint
	Limit          int
	Offset         int
}

// Repository persists notifications.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	UpdateDelivery(ctx context.Context, n *Notification) error
	List(ctx context.Context, filter Filter) ([]*Notification, error)
}
