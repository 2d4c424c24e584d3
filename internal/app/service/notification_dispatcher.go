package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"boardhub/internal/core/domain"
	"boardhub/internal/core/ports"
)

const emailSendTimeout = 10 * time.Second

// Dispatcher persists one notification per domain event and hands the
// matching email to a single background worker. The notification write
// is synchronous; email delivery is best-effort and can never fail or
// block the command that triggered it.
type Dispatcher struct {
	notifications ports.NotificationRepository
	email         ports.EmailSender

	queue     chan emailJob
	done      chan struct{}
	closeOnce sync.Once

	now   func() time.Time
	newID func() string
}

type emailJob func(ctx context.Context) error

var _ ports.NotificationDispatcher = (*Dispatcher)(nil)

func NewDispatcher(notifications ports.NotificationRepository, email ports.EmailSender, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		notifications: notifications,
		email:         email,
		queue:         make(chan emailJob, queueSize),
		done:          make(chan struct{}),
		now:           time.Now,
		newID:         uuid.NewString,
	}
	go d.worker()
	return d
}

// Dispatch writes the notification row for the event and enqueues its
// email, if any. It fails only when the row cannot be written.
func (d *Dispatcher) Dispatch(ctx context.Context, event domain.Event) error {
	notification, job := d.build(event)

	if err := d.notifications.Create(ctx, notification); err != nil {
		return fmt.Errorf("persist notification: %w", err)
	}

	if job == nil {
		return nil
	}

	// The queue is bounded: when the worker falls behind we drop the
	// email rather than block the command.
	select {
	case d.queue <- job:
	default:
		zap.L().Warn("email queue full, dropping email",
			zap.String("notification_id", notification.ID),
			zap.String("type", string(event.EventType())))
	}
	return nil
}

// Close stops the worker after draining queued emails.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
		<-d.done
	})
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for job := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), emailSendTimeout)
		if err := job(ctx); err != nil {
			zap.L().Warn("email delivery failed", zap.Error(err))
		}
		cancel()
	}
}

func (d *Dispatcher) build(event domain.Event) (domain.Notification, emailJob) {
	notification := domain.Notification{
		ID:        d.newID(),
		Type:      event.EventType(),
		CreatedAt: d.now().UTC(),
	}

	var job emailJob
	switch e := event.(type) {
	case domain.TaskAssignedEvent:
		actorName := e.Actor.Name()
		notification.RecipientID = e.Assignee.ID
		notification.Title = "Task assigned"
		notification.Message = fmt.Sprintf("%s assigned you the task %q", actorName, e.Task.Title)
		notification.Data = domain.TaskAssignedData{
			TaskID:         e.Task.ID,
			TaskTitle:      e.Task.Title,
			BoardID:        e.Task.BoardID,
			AssignedByID:   e.Actor.ID,
			AssignedByName: actorName,
		}
	case domain.InvitationAcceptedEvent:
		responderName := e.Responder.Name()
		notification.RecipientID = e.Inviter.ID
		notification.Title = "Invitation accepted"
		notification.Message = fmt.Sprintf("%s accepted your invitation to %q", responderName, e.Board.Title)
		notification.Data = domain.InvitationAcceptedData{
			InvitationID:  e.Invitation.ID,
			BoardID:       e.Board.ID,
			BoardTitle:    e.Board.Title,
			ResponderID:   e.Responder.ID,
			ResponderName: responderName,
		}
		toEmail, boardTitle := e.Inviter.Email, e.Board.Title
		job = func(ctx context.Context) error {
			return d.email.SendInvitationAccepted(ctx, toEmail, responderName, boardTitle)
		}
	case domain.InvitationRejectedEvent:
		responderName := e.Responder.Name()
		notification.RecipientID = e.Inviter.ID
		notification.Title = "Invitation declined"
		notification.Message = fmt.Sprintf("%s declined your invitation to %q", responderName, e.Board.Title)
		notification.Data = domain.InvitationRejectedData{
			InvitationID:  e.Invitation.ID,
			BoardID:       e.Board.ID,
			BoardTitle:    e.Board.Title,
			ResponderID:   e.Responder.ID,
			ResponderName: responderName,
		}
		toEmail, boardTitle := e.Inviter.Email, e.Board.Title
		job = func(ctx context.Context) error {
			return d.email.SendInvitationRejected(ctx, toEmail, responderName, boardTitle)
		}
	}

	return notification, job
}
