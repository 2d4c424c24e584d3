package domain

import "time"

type NotificationType string

const (
	NotificationTaskAssigned       NotificationType = "task_assigned"
	NotificationInvitationAccepted NotificationType = "invitation_accepted"
	NotificationInvitationRejected NotificationType = "invitation_rejected"
)

// Notification is a durable per-recipient record of a domain event.
// Exactly one row is written per qualifying transition; the only
// mutation after creation is marking it read.
type Notification struct {
	ID          string
	RecipientID string
	Type        NotificationType
	Title       string
	Message     string
	Data        NotificationData
	IsRead      bool
	CreatedAt   time.Time
	ReadAt      *time.Time
}

// NotificationData is the typed payload attached to a notification.
// One variant exists per NotificationType, so producer and consumer
// share a compile-time-checked schema.
type NotificationData interface {
	notificationData()
}

type TaskAssignedData struct {
	TaskID         string `json:"task_id"`
	TaskTitle      string `json:"task_title"`
	BoardID        string `json:"board_id"`
	AssignedByID   string `json:"assigned_by_id"`
	AssignedByName string `json:"assigned_by_name"`
}

type InvitationAcceptedData struct {
	InvitationID  string `json:"invitation_id"`
	BoardID       string `json:"board_id"`
	BoardTitle    string `json:"board_title"`
	ResponderID   string `json:"responder_id"`
	ResponderName string `json:"responder_name"`
}

type InvitationRejectedData struct {
	InvitationID  string `json:"invitation_id"`
	BoardID       string `json:"board_id"`
	BoardTitle    string `json:"board_title"`
	ResponderID   string `json:"responder_id"`
	ResponderName string `json:"responder_name"`
}

func (TaskAssignedData) notificationData()       {}
func (InvitationAcceptedData) notificationData() {}
func (InvitationRejectedData) notificationData() {}
