/* parser.go
 * Contains the parsers for TheSportsDB response bodies. The upstream json is
 * loosely typed (null arrays, numeric strings, missing keys), so decoding goes
 * through map[string]interface{} with explicit fallbacks instead of rigid
 * struct tags. A field of an unexpected type is treated as missing, not a crash
 */

package external

import (
	"encoding/json"
	"fixtures-bot/api/shared"
	"strconv"
	"strings"
)

// missingField is what the presenter shows when upstream omits a team name
const missingField = "N/A"

// ParseTeamSearch decodes a searchteams.php response and returns the first
// matching team. The upstream contract is a mapping whose "teams" field is
// either absent/null or an ordered sequence of team records.
func ParseTeamSearch(body []byte, query string) (shared.Team, error) {
	var root map[string]interface{}
	if err := json.Unmarshal(body, &root); err != nil {
		return shared.Team{}, &shared.MalformedResponseError{Detail: "invalid team search json", Cause: err}
	}

	rawTeams, ok := root["teams"].([]interface{})
	if !ok || len(rawTeams) == 0 {
		return shared.Team{}, &shared.TeamNotFoundError{Query: query}
	}

	first, ok := rawTeams[0].(map[string]interface{})
	if !ok {
		return shared.Team{}, &shared.MalformedResponseError{Detail: "team record is not an object"}
	}

	id := getString(first, "idTeam", "")
	if id == "" {
		return shared.Team{}, &shared.MalformedResponseError{Detail: "team record is missing idTeam"}
	}

	// Fall back to the user's query if upstream omits the display name
	name := getString(first, "strTeam", query)

	return shared.Team{ID: id, DisplayName: name}, nil
}

// ParseFixtures decodes an eventsnext.php / eventslast.php response into a
// fixture list, order preserved. Upstream has been observed to use either the
// "events" or the "results" key regardless of endpoint: "events" is preferred
// whenever it holds an array, otherwise "results" is used. If neither key
// holds an array the team has no fixture data and a NoFixturesError is
// returned; an empty array is a successful zero fixture result.
func ParseFixtures(body []byte, teamName string) ([]shared.Fixture, error) {
	var root map[string]interface{}
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, &shared.MalformedResponseError{Detail: "invalid fixtures json", Cause: err}
	}

	raw, ok := root["events"].([]interface{})
	if !ok {
		raw, ok = root["results"].([]interface{})
	}
	if !ok {
		return nil, &shared.NoFixturesError{TeamName: teamName}
	}

	fixtures := make([]shared.Fixture, 0, len(raw))
	for _, entry := range raw {
		record, ok := entry.(map[string]interface{})
		if !ok {
			// Not an object, nothing usable in this entry
			continue
		}
		fixtures = append(fixtures, shared.Fixture{
			HomeTeam:  getString(record, "strHomeTeam", missingField),
			AwayTeam:  getString(record, "strAwayTeam", missingField),
			Date:      getString(record, "dateEvent", ""),
			HomeScore: getScore(record, "intHomeScore"),
			AwayScore: getScore(record, "intAwayScore"),
		})
	}
	return fixtures, nil
}

// Helper function to read a string field with a fallback for absent, null or
// empty values
func getString(record map[string]interface{}, key string, fallback string) string {
	value, ok := record[key].(string)
	if !ok || value == "" {
		return fallback
	}
	return value
}

// Helper function to read a score field. Upstream sends scores as numeric
// strings ("2"), occasionally as raw numbers, or as null for fixtures without
// a recorded score. Anything unparseable is treated as missing.
func getScore(record map[string]interface{}, key string) *int {
	switch value := record[key].(type) {
	case string:
		score, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil
		}
		return &score
	case float64:
		score := int(value)
		return &score
	default:
		return nil
	}
}
