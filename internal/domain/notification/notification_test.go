package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/mif-gmao/gmao/internal/domain/notification/valueobjects"
)

func newPending(t *testing.T) *Notification {
	t.Helper()
	iid := uint(4)
	n, err := NewNotification(2, &iid, vo.TypeCloture, vo.ChannelEmail, "Clôture", "Intervention 4 clôturée", nil, time.Now())
	require.NoError(t, err)
	return n
}

func TestNewNotification_Validation(t *testing.T) {
	_, err := NewNotification(0, nil, vo.TypeAlerte, vo.ChannelLog, "", "x", nil, time.Now())
	assert.Error(t, err)
	_, err = NewNotification(1, nil, "sms", vo.ChannelLog, "", "x", nil, time.Now())
	assert.Error(t, err)
	_, err = NewNotification(1, nil, vo.TypeAlerte, "pigeon", "", "x", nil, time.Now())
	assert.Error(t, err)
	_, err = NewNotification(1, nil, vo.TypeAlerte, vo.ChannelLog, "", "", nil, time.Now())
	assert.Error(t, err)
}

func TestDeliveryOutcomes(t *testing.T) {
	n := newPending(t)
	assert.Equal(t, vo.DeliveryPending, n.Status())

	require.NoError(t, n.MarkSent(time.Now()))
	assert.Equal(t, vo.DeliverySent, n.Status())
	assert.NotNil(t, n.SentAt())
	assert.ErrorIs(t, n.MarkFailed("late"), ErrAlreadyFinal)

	n = newPending(t)
	require.NoError(t, n.MarkFailed("smtp down"))
	assert.Equal(t, "smtp down", n.FailureReason())
	assert.Nil(t, n.SentAt())

	n = newPending(t)
	require.NoError(t, n.MarkSkipped("dry run"))
	assert.Equal(t, vo.DeliverySkipped, n.Status())
}

func TestParseLiterals(t *testing.T) {
	ty, err := vo.ParseNotificationType("Clôture")
	require.NoError(t, err)
	assert.Equal(t, vo.TypeCloture, ty)

	_, err = vo.ParseChannel("sms")
	assert.Error(t, err)
}
