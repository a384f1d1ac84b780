/* presenter.go
 * Contains the logic for rendering a fixture list as a chat message
 */

package logic

import (
	"fixtures-bot/api/shared"
	"fmt"
	"strings"
)

// RenderFixtures generates the chat message for a non-empty fixture list: a
// header line for the mode followed by one line per fixture, in the order the
// fixtures were received. Callers handle the zero fixture case themselves with
// NoFixturesMessage.
func RenderFixtures(team shared.Team, mode shared.FixtureMode, fixtures []shared.Fixture) string {
	var res strings.Builder
	if mode == shared.Recent {
		res.WriteString(fmt.Sprintf("✅ Recent results for **%s**:\n", team.DisplayName))
	} else {
		res.WriteString(fmt.Sprintf("📅 Upcoming fixtures for **%s**:\n", team.DisplayName))
	}
	for _, fixture := range fixtures {
		res.WriteString(renderFixtureLine(mode, fixture))
	}
	return res.String()
}

// renderFixtureLine formats a single fixture. The score form is keyed on score
// presence, not on the mode alone: a recent fixture whose score is still null
// upstream renders as a plain "vs" line.
func renderFixtureLine(mode shared.FixtureMode, fixture shared.Fixture) string {
	if mode == shared.Recent && fixture.HomeScore != nil && fixture.AwayScore != nil {
		return fmt.Sprintf("⚽ %s **%d x %d** %s (%s)\n",
			fixture.HomeTeam, *fixture.HomeScore, *fixture.AwayScore, fixture.AwayTeam, fixture.Date)
	}
	return fmt.Sprintf("⚽ %s vs %s (%s)\n", fixture.HomeTeam, fixture.AwayTeam, fixture.Date)
}

// NoFixturesMessage is the fixed message used when a resolved team has no
// fixtures, whether upstream sent an empty list or no list at all
func NoFixturesMessage(teamName string) string {
	return fmt.Sprintf("No fixtures found for '%s'.", teamName)
}
