/* models.go
 * This file contains the models that are shared between sub packages
 */

package shared

// FixtureMode selects which fixtures are fetched and how they are rendered
type FixtureMode int

const (
	Upcoming FixtureMode = iota
	Recent
)

func (m FixtureMode) String() string {
	switch m {
	case Upcoming:
		return "upcoming"
	case Recent:
		return "recent"
	default:
		return "unknown"
	}
}

// Team is the result of resolving a free text team name against the search
// endpoint. It is scoped to a single request and never cached.
type Team struct {
	ID          string
	DisplayName string
}

// Fixture is one scheduled or completed match. The score pointers are nil for
// upcoming fixtures and for recent fixtures whose score has not been recorded
// upstream yet.
type Fixture struct {
	HomeTeam  string
	AwayTeam  string
	Date      string
	HomeScore *int
	AwayScore *int
}
