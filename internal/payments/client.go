package payments

import "context"

// StatusSucceeded is the only provider status the engine distinguishes;
// anything else counts as a failed collection attempt.
const StatusSucceeded = "succeeded"

// Intent is the provider handle for one payment collection attempt.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

// IntentClient is the narrow surface the booking engine consumes. Amounts
// are minor units (cents).
type IntentClient interface {
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*Intent, error)
	RetrieveIntent(ctx context.Context, id string) (*Intent, error)
}
