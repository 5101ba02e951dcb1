// Package client implements the session gateway against a Tableau
// Server: personal access token sign-in over the documented REST API,
// and the two project collection reads that feed reconciliation (REST
// projects with access-control metadata, portal projects with hierarchy
// and ownership metadata).
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/chartops/projmap/internal/transport"
	"github.com/chartops/projmap/pkg/errors"
	"github.com/chartops/projmap/pkg/logging"
)

// DefaultAPIVersion is the REST API version used when none is configured.
const DefaultAPIVersion = "3.22"

// Session holds an authenticated connection to a Tableau Server. The
// REST session token doubles as the portal workgroup session ID, so one
// sign-in covers both APIs.
type Session struct {
	serverURL  string
	site       string
	apiVersion string
	tokenName  string
	tokenValue string

	rest   *transport.Client
	portal *transport.Client

	token  string
	siteID string
	logger *zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithAPIVersion overrides the REST API version.
func WithAPIVersion(version string) Option {
	return func(s *Session) {
		s.apiVersion = version
	}
}

// WithLogger sets the logger used by the session.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates an unauthenticated session for the given server.
// Call SignIn before fetching.
func NewSession(serverURL, site, tokenName, tokenValue string, opts ...Option) (*Session, error) {
	if serverURL == "" {
		return nil, &errors.ValidationError{Field: "server", Message: "server URL is required"}
	}
	if tokenName == "" || tokenValue == "" {
		return nil, &errors.AuthenticationError{
			Server:  serverURL,
			Method:  "pat",
			Message: "personal access token name and value are required",
			Err:     errors.ErrTokenRequired,
		}
	}

	s := &Session{
		serverURL:  strings.TrimRight(serverURL, "/"),
		site:       site,
		apiVersion: DefaultAPIVersion,
		tokenName:  tokenName,
		tokenValue: tokenValue,
		rest:       transport.New(&transport.HeaderAuth{Header: "X-Tableau-Auth"}),
		portal:     transport.New(&transport.SessionAuth{}),
		logger:     logging.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Token returns the REST session token, or "" before sign-in.
func (s *Session) Token() string {
	return s.token
}

// SiteID returns the signed-in site LUID, or "" before sign-in.
func (s *Session) SiteID() string {
	return s.siteID
}

// restURL builds a REST API URL for the given path below the API version.
func (s *Session) restURL(path string) string {
	return fmt.Sprintf("%s/api/%s/%s", s.serverURL, s.apiVersion, strings.TrimLeft(path, "/"))
}

// siteURL builds a REST API URL for a path scoped to the signed-in site.
func (s *Session) siteURL(path string) string {
	return s.restURL(fmt.Sprintf("sites/%s/%s", s.siteID, strings.TrimLeft(path, "/")))
}

// portalURL builds an internal portal API URL for the given method.
func (s *Session) portalURL(method string) string {
	return fmt.Sprintf("%s/vizportal/api/web/v1/%s", s.serverURL, method)
}

type signInRequest struct {
	Credentials signInCredentials `json:"credentials"`
}

type signInCredentials struct {
	TokenName   string     `json:"personalAccessTokenName"`
	TokenSecret string     `json:"personalAccessTokenSecret"`
	Site        signInSite `json:"site"`
}

type signInSite struct {
	ContentURL string `json:"contentUrl"`
}

type signInResponse struct {
	Credentials struct {
		Token string `json:"token"`
		Site  struct {
			ID         string `json:"id"`
			ContentURL string `json:"contentUrl"`
		} `json:"site"`
	} `json:"credentials"`
}

// SignIn authenticates with the server using the personal access token.
func (s *Session) SignIn(ctx context.Context) error {
	body := signInRequest{
		Credentials: signInCredentials{
			TokenName:   s.tokenName,
			TokenSecret: s.tokenValue,
			Site:        signInSite{ContentURL: s.site},
		},
	}

	resp, err := s.rest.Post(ctx, s.restURL("auth/signin"), "", body)
	if err != nil {
		return &errors.AuthenticationError{
			Server:  s.serverURL,
			Method:  "pat",
			Message: "sign-in request failed",
			Err:     err,
		}
	}

	var result signInResponse
	if err := transport.DecodeResponse(resp, "auth/signin", &result); err != nil {
		return &errors.AuthenticationError{
			Server:  s.serverURL,
			Method:  "pat",
			Message: "sign-in rejected",
			Err:     err,
		}
	}

	s.token = result.Credentials.Token
	s.siteID = result.Credentials.Site.ID

	s.logger.Debug().
		Str("server", s.serverURL).
		Str("site_id", s.siteID).
		Msg("Signed in")

	return nil
}

// SignOut invalidates the session token. Errors are returned but safe
// to ignore at the end of a run.
func (s *Session) SignOut(ctx context.Context) error {
	if s.token == "" {
		return nil
	}

	resp, err := s.rest.Post(ctx, s.restURL("auth/signout"), s.token, struct{}{})
	if err != nil {
		return errors.WrapAPI("auth/signout", 0, err)
	}
	_ = resp.Body.Close()

	s.token = ""
	s.siteID = ""
	return nil
}
