package port

import "context"

// Notifier alerts an operator about failures that need attention.
type Notifier interface {
	Notify(ctx context.Context, err error, tags map[string]string)
}
