package testutil

import (
	"net/http"

	id "retention/pkg/domain"
	"retention/pkg/requestcontext"
)

// WithUser adds a user ID to the request context, as the auth middleware
// does for authenticated requests.
func WithUser(req *http.Request, userID id.UserID) *http.Request {
	return req.WithContext(requestcontext.WithUserID(req.Context(), userID))
}
