package middleware

import (
	"net/http"
	"slices"
)

// Middleware decorates an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws into one Middleware. The first entry is outermost and
// sees the request first.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		return Wrap(h, mws...)
	}
}

// Wrap applies mws to h with the first entry outermost. Nil entries are
// skipped so optional middleware can be passed unconditionally.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range slices.Backward(mws) {
		if mw != nil {
			h = mw(h)
		}
	}
	return h
}
