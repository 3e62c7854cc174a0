// Package notify raises desktop notifications over D-Bus when the player
// lands on a new track.
package notify

import (
	"strings"

	"github.com/llehouerou/moo/internal/tags"
)

// Urgency is the freedesktop notification urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

const trackTimeout = 5000

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // summary, required
	Body       string  // basic markup allowed
	Icon       string  // image path or icon name
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are unavailable.
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

// nop is used where there is no notification daemon to talk to.
type nop struct{}

func (nop) Notify(Notification) (uint32, error) { return 0, nil }

func (nop) Close(uint32) error { return nil }

// ForTrack builds the notification for a track. The page title stands in
// when the file has no usable tags.
func ForTrack(info *tags.Tag, pageTitle string) Notification {
	n := Notification{
		Title:   pageTitle,
		Timeout: trackTimeout,
		Urgency: UrgencyLow,
	}
	if info == nil {
		return n
	}
	if info.Title != "" {
		n.Title = info.Title
	}

	var body []string
	if info.Artist != "" {
		body = append(body, info.Artist)
	}
	if info.Album != "" {
		body = append(body, info.Album)
	}
	n.Body = strings.Join(body, " - ")
	n.Icon = tags.FolderArtPath(info.Path)
	return n
}

// Tracker sends one notification per track and replaces the previous one
// instead of stacking them.
type Tracker struct {
	notifier Notifier
	lastID   uint32
	lastKey  string
}

// NewTracker wraps a notifier. A nil notifier disables notifications.
func NewTracker(n Notifier) *Tracker {
	return &Tracker{notifier: n}
}

// TrackChanged notifies about the track identified by key unless it is the
// one already shown.
func (t *Tracker) TrackChanged(key string, n Notification) error {
	if t == nil || t.notifier == nil || key == t.lastKey {
		return nil
	}
	n.ReplacesID = t.lastID
	id, err := t.notifier.Notify(n)
	if err != nil {
		return err
	}
	t.lastID = id
	t.lastKey = key
	return nil
}
