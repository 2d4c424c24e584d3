package apierrors

const (
	MsgInvalidID                = "invalidID"
	MsgInvalidBoardPayload      = "invalidBoardPayload"
	MsgInvalidTaskPayload       = "invalidTaskPayload"
	MsgInvalidListPayload       = "invalidListPayload"
	MsgInvalidInvitationPayload = "invalidInvitationPayload"
	MsgMissingPrincipal         = "missingPrincipal"

	MsgBoardNotFound        = "boardNotFound"
	MsgTaskNotFound         = "taskNotFound"
	MsgListNotFound         = "listNotFound"
	MsgInvitationNotFound   = "invitationNotFound"
	MsgUserNotFound         = "userNotFound"
	MsgNotificationNotFound = "notificationNotFound"

	MsgForbidden = "forbidden"

	MsgSelfInvite           = "selfInvite"
	MsgAlreadyMember        = "alreadyMember"
	MsgDuplicateInvitation  = "duplicateInvitation"
	MsgInvitationNotPending = "invitationNotPending"
	MsgInvitationExpired    = "invitationExpired"
	MsgAssigneeNotMember    = "assigneeNotMember"
	MsgTaskCompleted        = "taskCompleted"
	MsgOwnerNotRemovable    = "ownerNotRemovable"

	MsgInternalError = "internalError"
)
