package notifier

import (
	"context"
	"fmt"

	appnotification "github.com/mif-gmao/gmao/internal/application/notification"
	"github.com/mif-gmao/gmao/internal/domain/notification"
	vo "github.com/mif-gmao/gmao/internal/domain/notification/valueobjects"
)

// ChannelRouter picks the dispatcher registered for the notification's channel.
type ChannelRouter struct {
	dispatchers map[vo.Channel]appnotification.Dispatcher
}

func NewChannelRouter() *ChannelRouter {
	return &ChannelRouter{dispatchers: make(map[vo.Channel]appnotification.Dispatcher)}
}

func (r *ChannelRouter) Register(channel vo.Channel, d appnotification.Dispatcher) *ChannelRouter {
	r.dispatchers[channel] = d
	return r
}

func (r *ChannelRouter) Notify(ctx context.Context, recipient appnotification.Recipient, n *notification.Notification) error {
	d, ok := r.dispatchers[n.Channel()]
	if !ok {
		return fmt.Errorf("no dispatcher for channel %q", n.Channel())
	}
	return d.Notify(ctx, recipient, n)
}
