/* client.go
 * Contains the logic used to fetch data from the TheSportsDB api. Responses are
 * handed to the parsers in parser.go, higher level functions should not need to
 * touch the wire format
 */

package external

import (
	"fixtures-bot/api/shared"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production TheSportsDB host. Tests point BaseURL at an
// httptest server instead.
const DefaultBaseURL = "https://www.thesportsdb.com"

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a TheSportsDB client with the provided api key
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey is required but none was provided")
	}
	return &Client{
		BaseURL:    DefaultBaseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// SearchTeam resolves a free text team name to a team id and display name.
// When the search returns multiple teams the first entry in response order is
// selected, there is no scoring or disambiguation.
func (c *Client) SearchTeam(query string) (shared.Team, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return shared.Team{}, shared.ErrEmptyQuery
	}

	params := url.Values{}
	params.Set("t", query)
	requestURL := fmt.Sprintf("%s/api/v1/json/%s/searchteams.php?%s", c.BaseURL, c.APIKey, params.Encode())

	body, err := c.get(requestURL)
	if err != nil {
		return shared.Team{}, err
	}
	return ParseTeamSearch(body, query)
}

// FetchFixtures fetches the fixture list for a team resolved by SearchTeam.
// The mode selects the endpoint: next events for upcoming, last events for
// recent. An empty result is a valid zero fixture response, not an error.
func (c *Client) FetchFixtures(team shared.Team, mode shared.FixtureMode) ([]shared.Fixture, error) {
	var endpoint string
	switch mode {
	case shared.Upcoming:
		endpoint = "eventsnext.php"
	case shared.Recent:
		endpoint = "eventslast.php"
	default:
		return nil, fmt.Errorf("unknown fixture mode: %d", mode)
	}

	params := url.Values{}
	params.Set("id", team.ID)
	requestURL := fmt.Sprintf("%s/api/v1/json/%s/%s?%s", c.BaseURL, c.APIKey, endpoint, params.Encode())

	body, err := c.get(requestURL)
	if err != nil {
		return nil, err
	}
	return ParseFixtures(body, team.DisplayName)
}

// get issues a GET request and returns the response body. Any transport level
// failure, including a non-200 status, is reported as a NetworkError.
func (c *Client) get(requestURL string) ([]byte, error) {
	request, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		return nil, &shared.NetworkError{Cause: err}
	}

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return nil, &shared.NetworkError{Cause: err}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, &shared.NetworkError{Cause: fmt.Errorf("unexpected status code %d", response.StatusCode)}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &shared.NetworkError{Cause: err}
	}
	return body, nil
}
