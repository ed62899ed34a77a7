// Package audit emits structured events for every interview state change.
package audit

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the kind of interview event
type EventType string

const (
	EventInterviewScheduled  EventType = "interview_scheduled"
	EventInterviewApproved   EventType = "interview_approved"
	EventInterviewCancelled  EventType = "interview_cancelled"
	EventInterviewCompleted  EventType = "interview_completed"
	EventRescheduleRequested EventType = "reschedule_requested"
	EventRescheduleApproved  EventType = "reschedule_approved"
	EventRescheduleRejected  EventType = "reschedule_rejected"
	EventFeedbackRecorded    EventType = "feedback_recorded"
	EventTransitionRejected  EventType = "transition_rejected"
	EventPartialUpdate       EventType = "partial_update"
)

// Event is one audited change to an interview.
type Event struct {
	Timestamp          time.Time              `json:"timestamp"`
	Service            string                 `json:"service"`
	Environment        string                 `json:"env"`
	Level              string                 `json:"level"`
	Event              EventType              `json:"event"`
	InterviewRequestID string                 `json:"interview_request_id,omitempty"`
	Actor              string                 `json:"actor,omitempty"`
	FromStatus         string                 `json:"from_status,omitempty"`
	ToStatus           string                 `json:"to_status,omitempty"`
	Details            map[string]interface{} `json:"details,omitempty"`
}

// Logger writes interview events through zap.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// New builds a production zap logger writing JSON to stdout.
func New(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	return &Logger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// NewWithZap wraps an existing zap logger. Tests pass zap.NewNop() or an observer core.
func NewWithZap(z *zap.Logger, serviceName string) *Logger {
	return &Logger{zapLogger: z, serviceName: serviceName, environment: Environment()}
}

// Nop discards everything.
func Nop() *Logger {
	return NewWithZap(zap.NewNop(), "nop")
}

// Log records an event.
func (l *Logger) Log(ctx context.Context, event Event) {
	if l == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = l.serviceName
	event.Environment = l.environment

	level := zapcore.InfoLevel
	switch event.Event {
	case EventTransitionRejected:
		level = zapcore.WarnLevel
	case EventPartialUpdate:
		level = zapcore.ErrorLevel
	}
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
	}
	if event.InterviewRequestID != "" {
		fields = append(fields, zap.String("interview_request_id", event.InterviewRequestID))
	}
	if event.Actor != "" {
		fields = append(fields, zap.String("actor", event.Actor))
	}
	if event.FromStatus != "" {
		fields = append(fields, zap.String("from_status", event.FromStatus))
	}
	if event.ToStatus != "" {
		fields = append(fields, zap.String("to_status", event.ToStatus))
	}
	if rid, ok := ctx.Value(RequestIDKey).(string); ok && rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	l.zapLogger.Log(level, string(event.Event), fields...)
}

// Transition logs a successful status change.
func (l *Logger) Transition(ctx context.Context, event EventType, requestID, actor, from, to string) {
	l.Log(ctx, Event{
		Event:              event,
		InterviewRequestID: requestID,
		Actor:              actor,
		FromStatus:         from,
		ToStatus:           to,
	})
}

// Rejected logs a transition refused because of the record's current state.
func (l *Logger) Rejected(ctx context.Context, requestID, actor, from, to, reason string) {
	l.Log(ctx, Event{
		Event:              EventTransitionRejected,
		InterviewRequestID: requestID,
		Actor:              actor,
		FromStatus:         from,
		ToStatus:           to,
		Details:            map[string]interface{}{"reason": reason},
	})
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zapLogger.Sync()
}

type ctxKey string

// RequestIDKey is the context key under which the HTTP layer stores the request id.
const RequestIDKey ctxKey = "audit_request_id"

// Environment derives the deployment environment from GIN_MODE.
func Environment() string {
	if os.Getenv("GIN_MODE") == "release" {
		return "production"
	}
	return "development"
}
