package client

import (
	"context"

	"github.com/chartops/projmap/internal/transport"
	"github.com/chartops/projmap/pkg/errors"
	"github.com/chartops/projmap/pkg/tableau"
)

// portalPageSize is the batch size for portal getProjects calls.
const portalPageSize = 600

// portalRequest is the portal API call envelope. The portal routes on
// the method field rather than the URL path alone.
type portalRequest struct {
	Method string       `json:"method"`
	Params portalParams `json:"params"`
}

type portalParams struct {
	Order []portalOrder `json:"order"`
	Page  portalPage    `json:"page"`
}

type portalOrder struct {
	Field     string `json:"field"`
	Ascending bool   `json:"ascending"`
}

type portalPage struct {
	StartIndex int `json:"startIndex"`
	MaxItems   int `json:"maxItems"`
}

type portalProjectsResponse struct {
	Result struct {
		Projects   []*tableau.Project `json:"projects"`
		Users      []tableau.User     `json:"users"`
		TotalCount int                `json:"totalCount"`
	} `json:"result"`
}

// FetchPortalProjects retrieves the complete portal project collection
// together with the user records referenced by project owners. The
// portal pages by start index; paging is handled here so callers always
// see a full snapshot. Duplicate user records across pages keep their
// first occurrence.
func (s *Session) FetchPortalProjects(ctx context.Context) ([]*tableau.Project, []tableau.User, error) {
	if s.token == "" {
		return nil, nil, &errors.AuthenticationError{
			Server:  s.serverURL,
			Method:  "session",
			Message: "not signed in",
			Err:     errors.ErrTokenRequired,
		}
	}

	var projects []*tableau.Project
	var users []tableau.User
	seenUsers := make(map[string]bool)

	for start := 0; ; start += portalPageSize {
		payload := portalRequest{
			Method: "getProjects",
			Params: portalParams{
				Order: []portalOrder{{Field: "name", Ascending: true}},
				Page:  portalPage{StartIndex: start, MaxItems: portalPageSize},
			},
		}

		resp, err := s.portal.Post(ctx, s.portalURL("getProjects"), s.token, payload)
		if err != nil {
			return nil, nil, errors.WrapAPI("getProjects", 0, err)
		}

		var result portalProjectsResponse
		if err := transport.DecodeResponse(resp, "getProjects", &result); err != nil {
			return nil, nil, err
		}

		projects = append(projects, result.Result.Projects...)
		for _, user := range result.Result.Users {
			if !seenUsers[user.ID] {
				seenUsers[user.ID] = true
				users = append(users, user)
			}
		}

		if len(result.Result.Projects) < portalPageSize {
			break
		}
	}

	s.logger.Debug().
		Int("projects", len(projects)).
		Int("users", len(users)).
		Msg("Fetched portal projects")

	return projects, users, nil
}
