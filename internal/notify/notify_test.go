package notify

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestNotifier silences the mirrored log output
func newTestNotifier() *Notifier {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log)
}

func TestShowReplacesCurrentNotification(t *testing.T) {
	n := newTestNotifier()

	assert.Nil(t, n.Current())

	n.Success("Saved")
	current := n.Current()
	require.NotNil(t, current)
	assert.Equal(t, LevelSuccess, current.Level)
	assert.Equal(t, "Saved", current.Message)
	assert.Equal(t, DefaultDuration, current.Duration)

	// A newer notification takes the single slot
	n.Error("Something broke")
	current = n.Current()
	require.NotNil(t, current)
	assert.Equal(t, LevelError, current.Level)
	assert.Equal(t, "Something broke", current.Message)
}

func TestDismiss(t *testing.T) {
	n := newTestNotifier()

	n.Info("Heads up")
	require.NotNil(t, n.Current())

	n.Dismiss()
	assert.Nil(t, n.Current())

	// Dismissing with nothing visible is a no-op
	n.Dismiss()
	assert.Nil(t, n.Current())
}

func TestNotificationAutoDismisses(t *testing.T) {
	n := newTestNotifier()

	n.Show(LevelWarning, "Short lived", 10*time.Millisecond)
	require.NotNil(t, n.Current())

	assert.Eventually(t, func() bool {
		return n.Current() == nil
	}, time.Second, 5*time.Millisecond)
}
