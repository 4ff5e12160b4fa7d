package client

import "context"

// RouteNotFound is the view callers are sent to when a document cannot be
// loaded.
const RouteNotFound = "/not-found"

// Intent asks the UI layer to move to another view.
type Intent struct {
	Route      string
	DocumentID string
	Err        error
}

// Navigator receives navigation intents. It is an effect sink only: the
// operation that emits an intent still returns its own result to the caller.
type Navigator interface {
	Navigate(ctx context.Context, intent Intent)
}

// NavigatorFunc adapts a function to a Navigator.
type NavigatorFunc func(ctx context.Context, intent Intent)

func (f NavigatorFunc) Navigate(ctx context.Context, intent Intent) {
	f(ctx, intent)
}

// NopNavigator discards intents.
type NopNavigator struct{}

func (NopNavigator) Navigate(context.Context, Intent) {}
