/* handlers.go
 * Contains the command router and handler methods. Handlers accept the
 * DiscordSession interface so they can be exercised against a mock session
 */

package bot

import (
	"fixtures-bot/api/logic"
	"fixtures-bot/api/shared"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// knownCommands is used for the "did you mean" suggestion on unrecognised input
var knownCommands = []string{"$start", "$help", "$upcoming_fixtures", "$recent_fixtures"}

// newMessageHandler routes messages to the appropriate handler.
// botUserID is the bot's user ID to prevent self-responses.
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}

	switch {
	case startsWith(message.Content, "$start"):
		b.startHandler(session, message)

	case startsWith(message.Content, "$help"):
		b.helpHandler(session, message)

	case startsWith(message.Content, "$upcoming_fixtures"):
		b.fixturesHandler(session, message, shared.Upcoming)

	case startsWith(message.Content, "$recent_fixtures"):
		b.fixturesHandler(session, message, shared.Recent)

	case startsWith(message.Content, "$"):
		b.unknownCommandHandler(session, message)
	}
}

// startHandler handles the $start command: a greeting naming the caller plus
// the command summary
func (b *Bot) startHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString(fmt.Sprintf("Hello, %s!\n\n", message.Author.Username))
	res.WriteString("I am your sports fixtures bot. Use the commands below to get started:\n\n")
	res.WriteString("⚽ `$upcoming_fixtures <team name>`\n")
	res.WriteString("   Example: `$upcoming_fixtures Real Madrid`\n\n")
	res.WriteString("📅 `$recent_fixtures <team name>`\n")
	res.WriteString("   Example: `$recent_fixtures Porto`\n\n")
	res.WriteString("Use `$help` to see this message again.\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// helpHandler handles the $help command
func (b *Bot) helpHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Available commands:\n\n")
	res.WriteString("⚽ `$upcoming_fixtures <team name>`: shows the team's upcoming fixtures\n")
	res.WriteString("📅 `$recent_fixtures <team name>`: shows the team's recent results\n")
	res.WriteString("`$start`: shows the welcome message\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// fixturesHandler handles $upcoming_fixtures and $recent_fixtures. It extracts
// the team query from the message, runs the lookup pipeline and relays the
// result or the mapped error message to the channel.
func (b *Bot) fixturesHandler(session DiscordSession, message *discordgo.MessageCreate, mode shared.FixtureMode) {
	query := teamQueryFromMessage(message.Content)
	if query == "" {
		session.ChannelMessageSend(message.ChannelID, logic.UsageMessage(commandFor(mode)))
		return
	}

	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("🔍 Searching for '%s'...", query))

	res, err := b.APIPtr.ResolveFixtures(query, mode)
	if err != nil {
		log.Println(err)
		res = logic.UserMessage(err)
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// unknownCommandHandler suggests the closest known command for input that
// starts with the command prefix but matches nothing. Stays silent when no
// suggestion is close enough.
func (b *Bot) unknownCommandHandler(session DiscordSession, message *discordgo.MessageCreate) {
	fields := strings.Fields(message.Content)
	if len(fields) == 0 {
		return
	}
	command := strings.ToLower(fields[0])

	matches := fuzzy.RankFind(command, knownCommands)
	if len(matches) == 0 {
		return
	}
	sort.Sort(matches)
	res := fmt.Sprintf("Unknown command '%s'. Did you mean `%s`? Use `$help` to see all commands.", command, matches[0].Target)
	session.ChannelMessageSend(message.ChannelID, res)
}

// teamQueryFromMessage drops the leading command token and joins the remaining
// tokens back into a single team query. We use splitter here instead of go's
// built in splitter so quoted team names e.g. "Real Madrid" survive as one
// token before the quotes are stripped.
func teamQueryFromMessage(content string) string {
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	tokens, _ := spaceSplitter.Split(content)
	if len(tokens) < 2 {
		return ""
	}

	var args []string
	for _, token := range tokens[1:] {
		token = strings.ReplaceAll(token, "\"", "")
		token = strings.ReplaceAll(token, "“", "")
		token = strings.ReplaceAll(token, "”", "")
		token = strings.TrimSpace(token)
		if token != "" {
			args = append(args, token)
		}
	}
	return strings.Join(args, " ")
}

// commandFor returns the command string that triggers the given mode, used in
// usage reminders
func commandFor(mode shared.FixtureMode) string {
	if mode == shared.Recent {
		return "$recent_fixtures"
	}
	return "$upcoming_fixtures"
}

// Helper function to check if a string starts with a given substring
// Preconditions: Receives an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	// Check if the substring is present in the input string
	if !strings.Contains(inputString, substring) {
		return false
	}
	strLength := len(substring)
	for i := 0; i < strLength; i++ {
		if inputString[i] != substring[i] {
			return false
		}
	}
	return true
}
