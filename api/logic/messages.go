/* messages.go
 * Contains the mapping from pipeline errors to the fixed user facing chat
 * messages. Every error is recovered here, nothing propagates past a single
 * command invocation
 */

package logic

import (
	"errors"
	"fixtures-bot/api/shared"
	"fmt"
)

// UsageMessage reminds the user how to invoke a fixtures command
func UsageMessage(command string) string {
	return fmt.Sprintf("Please provide a team name. E.g. `%s Real Madrid`", command)
}

// UserMessage maps a pipeline error to the chat message shown to the user.
// Transport and decode failures share one generic retry-later message, the
// user cannot act on the detail either way.
func UserMessage(err error) string {
	var notFound *shared.TeamNotFoundError
	var noFixtures *shared.NoFixturesError

	switch {
	case errors.Is(err, shared.ErrEmptyQuery):
		return UsageMessage("$upcoming_fixtures")
	case errors.As(err, &notFound):
		return fmt.Sprintf("Could not find team '%s'. Try checking the name.", notFound.Query)
	case errors.As(err, &noFixtures):
		return NoFixturesMessage(noFixtures.TeamName)
	default:
		return "A network error occurred. Please try again later."
	}
}
