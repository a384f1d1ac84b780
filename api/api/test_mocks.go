/* test_mocks.go
 * Contains mock structures for testing the API package and its consumers
 */

package api

import (
	"fixtures-bot/api/external"
	"fixtures-bot/api/shared"
)

// MockClient implements the external client Interface for testing
type MockClient struct {
	// Canned responses
	Team     shared.Team
	Fixtures []shared.Fixture

	// Error injection for testing error paths
	SearchTeamError    error
	FetchFixturesError error

	// Call recording so tests can assert ordering and arguments
	SearchTeamCalls    []string
	FetchFixturesCalls []FetchFixturesCall
}

// FetchFixturesCall records the arguments of one FetchFixtures invocation
type FetchFixturesCall struct {
	Team shared.Team
	Mode shared.FixtureMode
}

// Ensure MockClient implements the client Interface
var _ external.Interface = (*MockClient)(nil)

// SearchTeam implements Interface.SearchTeam
func (m *MockClient) SearchTeam(query string) (shared.Team, error) {
	m.SearchTeamCalls = append(m.SearchTeamCalls, query)
	if m.SearchTeamError != nil {
		return shared.Team{}, m.SearchTeamError
	}
	return m.Team, nil
}

// FetchFixtures implements Interface.FetchFixtures
func (m *MockClient) FetchFixtures(team shared.Team, mode shared.FixtureMode) ([]shared.Fixture, error) {
	m.FetchFixturesCalls = append(m.FetchFixturesCalls, FetchFixturesCall{Team: team, Mode: mode})
	if m.FetchFixturesError != nil {
		return nil, m.FetchFixturesError
	}
	return m.Fixtures, nil
}
