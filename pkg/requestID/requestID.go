package requestID

import (
	"context"

	"github.com/google/uuid"
	"github.com/samborkent/uuidv7"
)

// Header is the header outbound and inbound requests carry the id in.
const Header = "X-Request-ID"

type ctxKey struct{}

// New returns a fresh time ordered request id.
func New() string {
	return uuidv7.New().String()
}

// Valid reports whether id is a well formed UUID. Inbound ids that are not
// get replaced.
func Valid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// WithID stores id in the context so outbound calls reuse the inbound id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the id stored by WithID, or a new one.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return id
	}
	return New()
}
