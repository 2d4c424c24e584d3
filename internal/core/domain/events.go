package domain

// Event is the closed set of transitions that produce a notification.
type Event interface {
	EventType() NotificationType
}

type TaskAssignedEvent struct {
	Task     TaskItem
	Assignee User
	Actor    User
}

type InvitationAcceptedEvent struct {
	Invitation BoardInvitation
	Board      Board
	Responder  User
	Inviter    User
}

type InvitationRejectedEvent struct {
	Invitation BoardInvitation
	Board      Board
	Responder  User
	Inviter    User
}

func (TaskAssignedEvent) EventType() NotificationType       { return NotificationTaskAssigned }
func (InvitationAcceptedEvent) EventType() NotificationType { return NotificationInvitationAccepted }
func (InvitationRejectedEvent) EventType() NotificationType { return NotificationInvitationRejected }
