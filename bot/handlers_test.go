/* handlers_test.go
 * Contains unit tests for the command router and handlers using the mock
 * session and the mock sports client
 */

package bot

import (
	"errors"
	"testing"

	api "fixtures-bot/api/api"
	"fixtures-bot/api/shared"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const botUserID = "bot-user-id"

func intPtr(v int) *int {
	return &v
}

// newTestBot returns a bot wired to the given mock client
func newTestBot(t *testing.T, mock *api.MockClient) *Bot {
	t.Helper()
	b, err := NewBot("test-token", &api.API{Client: mock})
	require.NoError(t, err)
	return b
}

// newTestMessage builds an incoming message from a regular user
func newTestMessage(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			Content:   content,
			ChannelID: "test-channel",
			Author:    &discordgo.User{ID: "user-1", Username: "tester"},
		},
	}
}

// TestNewMessageHandler_IgnoresOwnMessages tests that the bot never responds
// to itself
func TestNewMessageHandler_IgnoresOwnMessages(t *testing.T) {
	b := newTestBot(t, &api.MockClient{})
	session := NewMockDiscordSession()

	message := newTestMessage("$help")
	message.Author.ID = botUserID
	b.newMessageHandler(session, message, botUserID)

	assert.Empty(t, session.SentMessages)
}

// TestNewMessageHandler_IgnoresNonCommands tests that plain chatter gets no
// response
func TestNewMessageHandler_IgnoresNonCommands(t *testing.T) {
	b := newTestBot(t, &api.MockClient{})
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("hello everyone"), botUserID)

	assert.Empty(t, session.SentMessages)
}

// TestStartHandler tests the $start greeting
func TestStartHandler(t *testing.T) {
	b := newTestBot(t, &api.MockClient{})
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$start"), botUserID)

	require.Len(t, session.SentMessages, 1)
	assert.Contains(t, session.GetLastMessage().Content, "Hello, tester!")
	assert.Contains(t, session.GetLastMessage().Content, "$upcoming_fixtures")
}

// TestHelpHandler tests the $help summary
func TestHelpHandler(t *testing.T) {
	b := newTestBot(t, &api.MockClient{})
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$help"), botUserID)

	require.Len(t, session.SentMessages, 1)
	assert.Contains(t, session.GetLastMessage().Content, "$recent_fixtures")
}

// TestFixturesHandler_Upcoming tests the happy path: a searching
// acknowledgement followed by the rendered fixtures
func TestFixturesHandler_Upcoming(t *testing.T) {
	mock := &api.MockClient{
		Team: shared.Team{ID: "133738", DisplayName: "Real Madrid"},
		Fixtures: []shared.Fixture{
			{HomeTeam: "Real Madrid", AwayTeam: "Getafe", Date: "2026-09-01"},
		},
	}
	b := newTestBot(t, mock)
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$upcoming_fixtures Real Madrid"), botUserID)

	require.Len(t, session.SentMessages, 2)
	assert.Contains(t, session.SentMessages[0].Content, "Searching for 'Real Madrid'")
	assert.Contains(t, session.SentMessages[1].Content, "Upcoming fixtures for **Real Madrid**")

	require.Len(t, mock.SearchTeamCalls, 1)
	assert.Equal(t, "Real Madrid", mock.SearchTeamCalls[0])
	require.Len(t, mock.FetchFixturesCalls, 1)
	assert.Equal(t, shared.Upcoming, mock.FetchFixturesCalls[0].Mode)
}

// TestFixturesHandler_RecentMode tests that $recent_fixtures selects Recent
func TestFixturesHandler_RecentMode(t *testing.T) {
	mock := &api.MockClient{
		Team: shared.Team{ID: "133747", DisplayName: "Porto"},
		Fixtures: []shared.Fixture{
			{HomeTeam: "Porto", AwayTeam: "Benfica", Date: "2026-08-15", HomeScore: intPtr(2), AwayScore: intPtr(1)},
		},
	}
	b := newTestBot(t, mock)
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$recent_fixtures Porto"), botUserID)

	require.Len(t, mock.FetchFixturesCalls, 1)
	assert.Equal(t, shared.Recent, mock.FetchFixturesCalls[0].Mode)
	assert.Contains(t, session.GetLastMessage().Content, "**2 x 1**")
}

// TestFixturesHandler_QuotedTeamName tests that a quoted multi word team name
// reaches the pipeline as one query
func TestFixturesHandler_QuotedTeamName(t *testing.T) {
	mock := &api.MockClient{Team: shared.Team{ID: "1", DisplayName: "Real Madrid"}}
	b := newTestBot(t, mock)
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage(`$recent_fixtures "Real Madrid"`), botUserID)

	require.Len(t, mock.SearchTeamCalls, 1)
	assert.Equal(t, "Real Madrid", mock.SearchTeamCalls[0])
}

// TestFixturesHandler_NoArguments tests the usage reminder without invoking
// the pipeline
func TestFixturesHandler_NoArguments(t *testing.T) {
	mock := &api.MockClient{}
	b := newTestBot(t, mock)
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$upcoming_fixtures"), botUserID)

	require.Len(t, session.SentMessages, 1)
	assert.Contains(t, session.GetLastMessage().Content, "Please provide a team name")
	assert.Contains(t, session.GetLastMessage().Content, "$upcoming_fixtures")
	assert.Empty(t, mock.SearchTeamCalls)
	assert.Empty(t, mock.FetchFixturesCalls)
}

// TestFixturesHandler_TeamNotFound tests the mapped not found message
func TestFixturesHandler_TeamNotFound(t *testing.T) {
	mock := &api.MockClient{SearchTeamError: &shared.TeamNotFoundError{Query: "Reel Madrid"}}
	b := newTestBot(t, mock)
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$upcoming_fixtures Reel Madrid"), botUserID)

	require.Len(t, session.SentMessages, 2)
	assert.Contains(t, session.GetLastMessage().Content, "Could not find team 'Reel Madrid'")
	assert.Empty(t, mock.FetchFixturesCalls)
}

// TestFixturesHandler_NetworkError tests the generic retry later message on
// transport failure
func TestFixturesHandler_NetworkError(t *testing.T) {
	mock := &api.MockClient{SearchTeamError: &shared.NetworkError{Cause: errors.New("timeout")}}
	b := newTestBot(t, mock)
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$upcoming_fixtures Porto"), botUserID)

	assert.Contains(t, session.GetLastMessage().Content, "A network error occurred")
}

// TestFixturesHandler_ZeroFixtures tests the fixed no fixtures message on an
// empty result list
func TestFixturesHandler_ZeroFixtures(t *testing.T) {
	mock := &api.MockClient{
		Team:     shared.Team{ID: "133747", DisplayName: "Porto"},
		Fixtures: []shared.Fixture{},
	}
	b := newTestBot(t, mock)
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$recent_fixtures Porto"), botUserID)

	assert.Equal(t, "No fixtures found for 'Porto'.", session.GetLastMessage().Content)
}

// TestUnknownCommandHandler_Suggestion tests the did-you-mean suggestion for a
// near miss command
func TestUnknownCommandHandler_Suggestion(t *testing.T) {
	b := newTestBot(t, &api.MockClient{})
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$upcoming_fixture Real Madrid"), botUserID)

	require.Len(t, session.SentMessages, 1)
	assert.Contains(t, session.GetLastMessage().Content, "Did you mean `$upcoming_fixtures`?")
}

// TestTeamQueryFromMessage tests tokenization and rejoining of the team query
func TestTeamQueryFromMessage(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"no arguments", "$upcoming_fixtures", ""},
		{"single token", "$upcoming_fixtures Porto", "Porto"},
		{"multiple tokens joined", "$upcoming_fixtures Real Madrid", "Real Madrid"},
		{"quoted name", `$recent_fixtures "Real Madrid"`, "Real Madrid"},
		{"smart quotes", "$recent_fixtures “Real Madrid”", "Real Madrid"},
		{"extra spaces", "$upcoming_fixtures   Porto  ", "Porto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, teamQueryFromMessage(tt.content))
		})
	}
}
