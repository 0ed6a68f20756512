package testutil

import (
	"net/http"
	"time"

	"github.com/deltacloudassociates/optmark-crm-hub/pkg/requestcontext"
)

// WithRequestTime pins the request's reference time, simulating what the
// request ID middleware does for live traffic. Classification tests use
// this to hold "today" still.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	ctx := requestcontext.WithTime(req.Context(), t)
	return req.WithContext(ctx)
}

// WithRequestID injects a request ID, so log and audit assertions can
// match on a known value.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	ctx := requestcontext.WithRequestID(req.Context(), requestID)
	return req.WithContext(ctx)
}
