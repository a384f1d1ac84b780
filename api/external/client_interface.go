/* client_interface.go
 * Contains the Interface for the TheSportsDB client for dependency injection and testing
 */

package external

import "fixtures-bot/api/shared"

// Interface defines the methods that Client implements.
// This allows for mocking in tests.
type Interface interface {
	SearchTeam(query string) (shared.Team, error)
	FetchFixtures(team shared.Team, mode shared.FixtureMode) ([]shared.Fixture, error)
}

// Ensure Client implements Interface
var _ Interface = (*Client)(nil)
