package console

import "context"

// Gateway reads snapshots from the admin console API.
type Gateway interface {
	// GetServerTotal returns nil with no error when the console responds without data.
	GetServerTotal(ctx context.Context) (*ServerTotal, error)
	// GetTicketWaitReply returns nil with no error when the console responds without data.
	GetTicketWaitReply(ctx context.Context) (*TicketTotal, error)
}
