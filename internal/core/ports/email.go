package ports

import "context"

// EmailSender delivers invitation-response emails. Callers treat it as
// fire-and-forget; returned errors are logged, never propagated.
type EmailSender interface {
	SendInvitationAccepted(ctx context.Context, toEmail, accepterName, boardTitle string) error
	SendInvitationRejected(ctx context.Context, toEmail, rejecterName, boardTitle string) error
}
