// Package notification turns committed intervention events into notification
// records and hands them to a delivery channel.
package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/mif-gmao/gmao/internal/domain/intervention"
	"github.com/mif-gmao/gmao/internal/domain/notification"
	vo "github.com/mif-gmao/gmao/internal/domain/notification/valueobjects"
	"github.com/mif-gmao/gmao/internal/domain/technician"
	"github.com/mif-gmao/gmao/internal/domain/user"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

// Recipient is the resolved addressee of a notification.
type Recipient struct {
	UserID uint
	Email  string
	Name   string
}

// Dispatcher delivers one notification over its channel.
type Dispatcher interface {
	Notify(ctx context.Context, recipient Recipient, n *notification.Notification) error
}

// DeliveryObserver counts delivery outcomes.
type DeliveryObserver interface {
	ObserveDelivery(kind vo.NotificationType, status vo.DeliveryStatus)
}

type TriggerConfig struct {
	Channel vo.Channel
	// DryRun records notifications as skipped without calling the dispatcher.
	DryRun bool
}

// Trigger decides which events deserve a notification and to whom. Failures
// are logged and counted; they never propagate to the operation that fired
// the event.
type Trigger struct {
	repo        notification.Repository
	users       user.Repository
	technicians technician.Repository
	history     intervention.HistoryRepository
	dispatcher  Dispatcher
	observer    DeliveryObserver
	cfg         TriggerConfig
	logger      logger.Interface
}

func NewTrigger(
	repo notification.Repository,
	users user.Repository,
	technicians technician.Repository,
	history intervention.HistoryRepository,
	dispatcher Dispatcher,
	observer DeliveryObserver,
	cfg TriggerConfig,
	logger logger.Interface,
) *Trigger {
	if !cfg.Channel.IsValid() {
		cfg.Channel = vo.ChannelLog
	}
	return &Trigger{
		repo:        repo,
		users:       users,
		technicians: technicians,
		history:     history,
		dispatcher:  dispatcher,
		observer:    observer,
		cfg:         cfg,
		logger:      logger,
	}
}

// Channel is the delivery channel new notifications are recorded with.
func (t *Trigger) Channel() vo.Channel {
	return t.cfg.Channel
}

// Notify handles events already committed by the caller.
func (t *Trigger) Notify(ctx context.Context, events []intervention.Event) {
	for _, e := range events {
		kind, ok := policy(e)
		if !ok {
			continue
		}
		if err := t.fire(ctx, kind, e); err != nil {
			t.logger.Errorw("failed to notify intervention event",
				"event", e.Kind,
				"intervention_id", e.InterventionID,
				"error", err,
			)
		}
	}
}

// policy maps an event to the notification it fires. Only creation,
// assignment and closure notify.
func policy(e intervention.Event) (vo.NotificationType, bool) {
	switch {
	case e.Kind == intervention.EventCreated:
		return vo.TypeCreation, true
	case e.Kind == intervention.EventAssigned:
		return vo.TypeAffectation, true
	case e.IsClosure():
		return vo.TypeCloture, true
	}
	return "", false
}

func (t *Trigger) fire(ctx context.Context, kind vo.NotificationType, e intervention.Event) error {
	recipientID, err := t.recipientFor(ctx, kind, e)
	if err != nil {
		return err
	}
	if recipientID == 0 {
		t.logger.Debugw("no recipient for intervention event",
			"event", e.Kind,
			"intervention_id", e.InterventionID,
		)
		return nil
	}

	subject, content := compose(kind, e)
	interventionID := e.InterventionID
	metadata := map[string]any{
		"event":           string(e.Kind),
		"intervention_id": e.InterventionID,
		"actor_id":        e.ActorID,
		"status":          e.To.String(),
	}
	if e.Kind == intervention.EventStatusChanged {
		metadata["from"] = e.From.String()
	}

	n, err := notification.NewNotification(recipientID, &interventionID, kind, t.cfg.Channel, subject, content, metadata, biztime.NowUTC())
	if err != nil {
		return fmt.Errorf("failed to build notification: %w", err)
	}
	return t.Deliver(ctx, n)
}

// recipientFor returns the user to notify: the assigned technician's user, or
// the author of the intervention for creation and closure. Zero means nobody.
func (t *Trigger) recipientFor(ctx context.Context, kind vo.NotificationType, e intervention.Event) (uint, error) {
	if e.TechnicianID != nil {
		tech, err := t.technicians.GetByID(ctx, *e.TechnicianID)
		if err != nil {
			return 0, fmt.Errorf("failed to load technician: %w", err)
		}
		if tech != nil {
			return tech.UserID(), nil
		}
	}
	switch kind {
	case vo.TypeCreation:
		return e.ActorID, nil
	case vo.TypeCloture:
		return t.authorOf(ctx, e.InterventionID)
	}
	return 0, nil
}

// authorOf reads the principal of the first history entry, written at creation.
func (t *Trigger) authorOf(ctx context.Context, interventionID uint) (uint, error) {
	entries, err := t.history.ListByIntervention(ctx, interventionID)
	if err != nil {
		return 0, fmt.Errorf("failed to load history: %w", err)
	}
	if len(entries) == 0 {
		return 0, nil
	}
	return entries[0].PrincipalID(), nil
}

// Deliver persists n as pending, dispatches it and records the outcome.
// Only a failure to create the record is returned.
func (t *Trigger) Deliver(ctx context.Context, n *notification.Notification) error {
	if err := t.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	switch {
	case t.cfg.DryRun:
		_ = n.MarkSkipped("dry run")
	default:
		t.dispatch(ctx, n)
	}

	if err := t.repo.UpdateDelivery(ctx, n); err != nil {
		t.logger.Errorw("failed to record notification delivery",
			"notification_id", n.ID(),
			"status", n.Status(),
			"error", err,
		)
	}
	if t.observer != nil {
		t.observer.ObserveDelivery(n.Type(), n.Status())
	}
	t.logger.Infow("notification processed",
		"notification_id", n.ID(),
		"user_id", n.UserID(),
		"type", n.Type(),
		"channel", n.Channel(),
		"status", n.Status(),
	)
	return nil
}

func (t *Trigger) dispatch(ctx context.Context, n *notification.Notification) {
	u, err := t.users.GetByID(ctx, n.UserID())
	if err != nil {
		_ = n.MarkFailed(fmt.Sprintf("recipient lookup failed: %v", err))
		return
	}
	if u == nil || !u.Active() {
		_ = n.MarkFailed("recipient not found or inactive")
		return
	}
	if t.dispatcher == nil {
		_ = n.MarkSkipped("no dispatcher configured")
		return
	}

	recipient := Recipient{UserID: u.ID(), Email: u.Email(), Name: u.DisplayName()}
	if err := t.dispatcher.Notify(ctx, recipient, n); err != nil {
		t.logger.Warnw("notification delivery failed",
			"user_id", u.ID(),
			"type", n.Type(),
			"error", err,
		)
		_ = n.MarkFailed(err.Error())
		return
	}
	_ = n.MarkSent(biztime.NowUTC())
}

// compose builds the subject and the Markdown body.
func compose(kind vo.NotificationType, e intervention.Event) (string, string) {
	var b strings.Builder
	var subject string

	switch kind {
	case vo.TypeCreation:
		subject = fmt.Sprintf("Nouvelle intervention #%d", e.InterventionID)
		fmt.Fprintf(&b, "L'intervention **#%d** « %s » a été créée.\n\n", e.InterventionID, e.Title)
	case vo.TypeAffectation:
		subject = fmt.Sprintf("Intervention #%d affectée", e.InterventionID)
		fmt.Fprintf(&b, "L'intervention **#%d** « %s » vous a été affectée.\n\n", e.InterventionID, e.Title)
	case vo.TypeCloture:
		subject = fmt.Sprintf("Intervention #%d clôturée", e.InterventionID)
		fmt.Fprintf(&b, "L'intervention **#%d** « %s » a été clôturée.\n\n", e.InterventionID, e.Title)
	default:
		subject = fmt.Sprintf("Intervention #%d", e.InterventionID)
		fmt.Fprintf(&b, "Mise à jour de l'intervention **#%d** « %s ».\n\n", e.InterventionID, e.Title)
	}

	fmt.Fprintf(&b, "- Type : %s\n", e.Type)
	fmt.Fprintf(&b, "- Priorité : %s\n", e.Priority)
	fmt.Fprintf(&b, "- Statut : %s\n", e.To)
	if e.Urgent {
		b.WriteString("- **Urgent**\n")
	}
	return subject, b.String()
}
