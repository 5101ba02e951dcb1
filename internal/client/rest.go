package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/chartops/projmap/internal/transport"
	"github.com/chartops/projmap/pkg/errors"
	"github.com/chartops/projmap/pkg/tableau"
)

// restPageSize is the page size used when listing projects.
const restPageSize = 100

// restProjectsResponse is the REST API projects list envelope. The REST
// API reports pagination counters as JSON strings.
type restProjectsResponse struct {
	Pagination struct {
		PageNumber     string `json:"pageNumber"`
		PageSize       string `json:"pageSize"`
		TotalAvailable string `json:"totalAvailable"`
	} `json:"pagination"`
	Projects struct {
		Project []tableau.RestProject `json:"project"`
	} `json:"projects"`
}

// FetchRestProjects retrieves the complete authoritative project
// collection from the REST API. Pagination is handled here so callers
// always see a full snapshot. The list resource carries each project's
// content permissions mode.
func (s *Session) FetchRestProjects(ctx context.Context) ([]tableau.RestProject, error) {
	if s.token == "" {
		return nil, &errors.AuthenticationError{
			Server:  s.serverURL,
			Method:  "pat",
			Message: "not signed in",
			Err:     errors.ErrTokenRequired,
		}
	}

	var projects []tableau.RestProject

	for page := 1; ; page++ {
		url := s.siteURL(fmt.Sprintf("projects?pageSize=%d&pageNumber=%d", restPageSize, page))

		resp, err := s.rest.Get(ctx, url, s.token)
		if err != nil {
			return nil, errors.WrapAPI("projects", 0, err)
		}

		var result restProjectsResponse
		if err := transport.DecodeResponse(resp, "projects", &result); err != nil {
			return nil, err
		}

		projects = append(projects, result.Projects.Project...)

		total, err := strconv.Atoi(result.Pagination.TotalAvailable)
		if err != nil {
			return nil, errors.WrapParse("json", "projects pagination", err)
		}
		if len(projects) >= total || len(result.Projects.Project) == 0 {
			break
		}
	}

	s.logger.Debug().
		Int("count", len(projects)).
		Msg("Fetched REST projects")

	return projects, nil
}
