package notify

import (
	"sync" // Guards the current notification
	"time" // Auto-dismiss timer

	"github.com/sirupsen/logrus" // Logging library
)

// Notification levels
const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelWarning = "warning"
	LevelInfo    = "info"
)

// DefaultDuration is how long a notification stays visible
const DefaultDuration = 3 * time.Second

// Notification is one piece of ephemeral user feedback
type Notification struct {
	Level     string        `json:"level"`     // success, error, warning or info
	Message   string        `json:"message"`   // Feedback text
	Duration  time.Duration `json:"duration"`  // How long it stays visible
	CreatedAt time.Time     `json:"createdAt"` // When it was shown
}

// Notifier holds at most one current notification. Showing a new one
// replaces whatever is visible; nothing is ever persisted.
type Notifier struct {
	mu      sync.Mutex     // Guards current and timer
	current *Notification  // The visible notification, if any
	timer   *time.Timer    // Auto-dismiss timer for current
	log     *logrus.Logger // Mirror of every notification
}

// New creates a notifier that mirrors notifications to the given logger
func New(log *logrus.Logger) *Notifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Notifier{log: log}
}

// Show displays a notification, replacing any current one. A non-positive
// duration falls back to the default.
func (n *Notifier) Show(level, message string, duration time.Duration) {
	if duration <= 0 {
		duration = DefaultDuration
	}
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop() // Drop the previous notification's dismiss timer
	}
	n.current = &Notification{
		Level:     level,
		Message:   message,
		Duration:  duration,
		CreatedAt: time.Now(),
	}
	n.timer = time.AfterFunc(duration, n.Dismiss)
	n.mu.Unlock()

	entry := n.log.WithField("toast", level)
	switch level {
	case LevelError:
		entry.Error(message)
	case LevelWarning:
		entry.Warn(message)
	default:
		entry.Info(message)
	}
}

// Success shows a success notification
func (n *Notifier) Success(message string) { n.Show(LevelSuccess, message, 0) }

// Error shows an error notification
func (n *Notifier) Error(message string) { n.Show(LevelError, message, 0) }

// Warning shows a warning notification
func (n *Notifier) Warning(message string) { n.Show(LevelWarning, message, 0) }

// Info shows an info notification
func (n *Notifier) Info(message string) { n.Show(LevelInfo, message, 0) }

// Current returns the visible notification, or nil when none is showing
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Dismiss removes the current notification
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}
