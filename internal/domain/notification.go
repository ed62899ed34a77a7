package domain

import (
	"context"
	"time"
)

// Notification templates.
const (
	TemplateInterviewRequested  = "interview_requested"
	TemplateInterviewApproved   = "interview_approved"
	TemplateInterviewCancelled  = "interview_cancelled"
	TemplateRescheduleRequested = "reschedule_requested"
	TemplateRescheduleApproved  = "reschedule_approved"
	TemplateRescheduleRejected  = "reschedule_rejected"
	TemplateFeedbackReceived    = "feedback_received"
	TemplateProfileIncomplete   = "profile_incomplete"
)

// Notice is one message to one recipient, delivered by email and, when the
// recipient is connected, over the realtime channel.
type Notice struct {
	UserID   string
	Email    string
	Subject  string
	Template string
	Data     any
}

// NotificationSender delivers a rendered email.
type NotificationSender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// TemplateRenderer turns template data into a plain text and an HTML body.
type TemplateRenderer interface {
	Render(name string, data any) (text string, html string, err error)
}

// RealtimePublisher pushes an event to a connected user. Delivery is best effort.
type RealtimePublisher interface {
	Publish(userID, event string, payload any)
}

// Notifier dispatches notices. It never fails the caller.
type Notifier interface {
	Notify(ctx context.Context, notices ...Notice)
}

// RecordLocker serialises writers of the same record across processes.
type RecordLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

// ActionTokenStore remembers consumed single-use link tokens.
type ActionTokenStore interface {
	// Consume marks id as used for ttl. It returns false when id was already used.
	Consume(ctx context.Context, id string, ttl time.Duration) (bool, error)
}

// IDGenerator produces a new unique identifier.
type IDGenerator func() string

// InterviewNotice is the template data for interview lifecycle emails.
type InterviewNotice struct {
	RecipientName   string
	CounterpartName string
	Position        string
	Date            string
	Time            string
	Status          InterviewStatus
	MeetingLink     string
	RequestedBy     string
	ApproveURL      string
	RejectURL       string
}

// FeedbackDigestEntry is one feedback entry as shown in the feedback email.
// Obscured entries show only the overall rating.
type FeedbackDigestEntry struct {
	Rating   float64
	Sections []FeedbackDigestSection
	Obscured bool
}

type FeedbackDigestSection struct {
	Name     string
	Rating   float64
	Comments string
}

// FeedbackNotice is the template data for the feedback-received email.
type FeedbackNotice struct {
	RecipientName string
	AverageRating float64
	TotalFeedback int
	Entries       []FeedbackDigestEntry
	ProfileURL    string
}

// ProfileNotice is the template data for the completion nudge.
type ProfileNotice struct {
	RecipientName   string
	TotalPercentage int
	Missing         []MissingSection
	ProfileURL      string
}
