package alerts

import "context"

type Notifier interface {
	// Notify sends an error report to the admin chat. Delivery failures
	// are logged, never returned: alerting must not fail a request.
	Notify(ctx context.Context, err error, details string)
}
