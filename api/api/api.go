/* api.go
 * This file contains the public methods for interacting with this package. For
 * consistent results, functions should only be called from this file, not the
 * sub packages for external and logic
 */

package api

import (
	"fixtures-bot/api/external"
	"fixtures-bot/api/logic"
	"fixtures-bot/api/shared"
	"fmt"
	"strings"
)

// API provides the team lookup and fixture retrieval pipeline
type API struct {
	Client external.Interface
}

// NewAPI creates a new API instance backed by the TheSportsDB client
func NewAPI(apiKey string) (*API, error) {
	client, err := external.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sports client: %w", err)
	}
	return &API{Client: client}, nil
}

// ResolveFixtures runs the two stage lookup pipeline for one command and
// returns the rendered chat message. Stage A resolves the free text query to a
// team id, stage B fetches that team's fixtures for the mode. The stages are
// strictly sequential: stage B only runs with an id obtained from a successful
// stage A call in the same request, and nothing is cached between requests.
func (a *API) ResolveFixtures(teamQuery string, mode shared.FixtureMode) (string, error) {
	query := strings.TrimSpace(teamQuery)
	if query == "" {
		return "", shared.ErrEmptyQuery
	}

	// Stage A: resolve the team name
	team, err := a.Client.SearchTeam(query)
	if err != nil {
		return "", err
	}

	// Stage B: fetch fixtures keyed on the resolved id
	fixtures, err := a.Client.FetchFixtures(team, mode)
	if err != nil {
		return "", err
	}

	// An empty list is a valid terminal state, distinct from a lookup failure
	if len(fixtures) == 0 {
		return logic.NoFixturesMessage(team.DisplayName), nil
	}
	return logic.RenderFixtures(team, mode, fixtures), nil
}
