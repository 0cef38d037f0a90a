package audit

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Actions recorded by the use cases.
const (
	ActionUserSignedUp       = "user_signed_up"
	ActionLoginSucceeded     = "login_succeeded"
	ActionLoginFailed        = "login_failed"
	ActionTokenRefreshed     = "token_refreshed"
	ActionRefreshRejected    = "refresh_rejected"
	ActionProfileUpdated     = "profile_updated"
	ActionDoctorCreated      = "doctor_created"
	ActionAppointmentCreated = "appointment_created"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata map[string]any
}

// Logger writes security events to the structured log. Credentials and
// tokens must never be placed in Metadata.
type Logger struct {
	log logrus.FieldLogger
}

func New(log logrus.FieldLogger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Log(ctx context.Context, ev Event) {
	fields := logrus.Fields{
		"audit":  true,
		"action": ev.Action,
	}
	if id := RequestID(ctx); id != "" {
		fields["request_id"] = id
	}
	if ev.UserID != nil {
		fields["user_id"] = *ev.UserID
	}
	if ev.Entity != "" {
		fields["entity"] = ev.Entity
	}
	if ev.EntityID != nil {
		fields["entity_id"] = *ev.EntityID
	}
	for k, v := range ev.Metadata {
		if _, taken := fields[k]; !taken {
			fields[k] = v
		}
	}

	l.log.WithFields(fields).Info(ev.Action)
}

type requestIDKey struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
