package valueobjects

import (
	"fmt"

	"github.com/mif-gmao/gmao/internal/domain/shared"
)

type NotificationType string

const (
	TypeInformation NotificationType = "information"
	TypeAlerte      NotificationType = "alerte"
	TypeAffectation NotificationType = "affectation"
	TypeCreation    NotificationType = "creation"
	TypeCloture     NotificationType = "cloture"
)

func ParseNotificationType(s string) (NotificationType, error) {
	t := NotificationType(shared.NormalizeLiteral(s))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %q", s)
	}
	return t, nil
}

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case TypeInformation, TypeAlerte, TypeAffectation, TypeCreation, TypeCloture:
		return true
	}
	return false
}

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelLog   Channel = "log"
)

func ParseChannel(s string) (Channel, error) {
	c := Channel(shared.NormalizeLiteral(s))
	if c != ChannelEmail && c != ChannelLog {
		return "", fmt.Errorf("invalid notification channel: %q", s)
	}
	return c, nil
}

func (c Channel) String() string { return string(c) }

func (c Channel) IsValid() bool { return c == ChannelEmail || c == ChannelLog }

type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "pending"
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
	DeliverySkipped DeliveryStatus = "skipped"
)

func (s DeliveryStatus) String() string { return string(s) }

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryPending, DeliverySent, DeliveryFailed, DeliverySkipped:
		return true
	}
	return false
}

func (s DeliveryStatus) IsFinal() bool {
	return s == DeliverySent || s == DeliveryFailed || s == DeliverySkipped
}
