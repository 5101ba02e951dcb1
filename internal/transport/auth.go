package transport

import "net/http"

// Authenticator applies authentication to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request, token string)
}

// NoAuth implements no authentication.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request, _ string) {
	// No authentication applied
}

// BearerAuth implements Bearer token authentication.
type BearerAuth struct{}

// Apply implements the Authenticator interface for BearerAuth.
func (a *BearerAuth) Apply(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
}

// HeaderAuth implements custom header authentication. The REST API
// expects the session token in the X-Tableau-Auth header.
type HeaderAuth struct {
	Header string
}

// Apply implements the Authenticator interface for HeaderAuth.
func (a *HeaderAuth) Apply(req *http.Request, token string) {
	req.Header.Set(a.Header, token)
}

// SessionAuth implements portal session authentication. The portal API
// accepts the REST session token as a workgroup session cookie and
// requires the XSRF token header to be present, even if empty.
type SessionAuth struct{}

// Apply implements the Authenticator interface for SessionAuth.
func (a *SessionAuth) Apply(req *http.Request, token string) {
	req.Header.Set("Cookie", "workgroup_session_id="+token+"; XSRF-TOKEN=")
	req.Header.Set("X-XSRF-Token", "")
}
