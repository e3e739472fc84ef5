package consoleapi

import "context"

type authorizationKey struct{}

// WithAuthorization attaches the Authorization header value to forward to the console.
func WithAuthorization(ctx context.Context, value string) context.Context {
	if value == "" {
		return ctx
	}
	return context.WithValue(ctx, authorizationKey{}, value)
}

// AuthorizationFromContext returns the forwarded Authorization value, if any.
func AuthorizationFromContext(ctx context.Context) string {
	v, _ := ctx.Value(authorizationKey{}).(string)
	return v
}
