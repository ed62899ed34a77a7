package usecase

import (
	"context"

	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/pkg/logger"
)

type notifier struct {
	sender   domain.NotificationSender
	renderer domain.TemplateRenderer
	realtime domain.RealtimePublisher
}

// NewNotifier pushes each notice over the realtime channel and by email.
// Any of the three collaborators may be nil. Failures are logged, never returned.
func NewNotifier(sender domain.NotificationSender, renderer domain.TemplateRenderer, realtime domain.RealtimePublisher) domain.Notifier {
	return &notifier{sender: sender, renderer: renderer, realtime: realtime}
}

func (n *notifier) Notify(ctx context.Context, notices ...domain.Notice) {
	for _, notice := range notices {
		if n.realtime != nil && notice.UserID != "" {
			n.realtime.Publish(notice.UserID, notice.Template, notice.Data)
		}

		if n.sender == nil || n.renderer == nil || notice.Email == "" {
			continue
		}
		text, html, err := n.renderer.Render(notice.Template, notice.Data)
		if err != nil {
			logger.Log.Error("failed to render notification", "template", notice.Template, "error", err)
			continue
		}
		if err := n.sender.Send(ctx, notice.Email, notice.Subject, text, html); err != nil {
			logger.Log.Warn("failed to send notification email",
				"template", notice.Template,
				"user_id", notice.UserID,
				"error", err,
			)
		}
	}
}
