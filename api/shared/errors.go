/* errors.go
 * Contains the error taxonomy for the lookup pipeline. Every error a command can
 * produce is one of these, so the transport layer can map them to chat messages
 * with errors.Is / errors.As
 */

package shared

import (
	"errors"
	"fmt"
)

// ErrEmptyQuery is returned when the team query is empty after trimming. It is
// raised before any outbound call is made.
var ErrEmptyQuery = errors.New("team query is empty")

// TeamNotFoundError is returned when the search endpoint has no match for the
// user's query
type TeamNotFoundError struct {
	Query string
}

func (e *TeamNotFoundError) Error() string {
	return fmt.Sprintf("no team found matching '%s'", e.Query)
}

// NoFixturesError is returned when the fixtures response carries neither an
// events nor a results array. An empty array is not an error, see the parser.
type NoFixturesError struct {
	TeamName string
}

func (e *NoFixturesError) Error() string {
	return fmt.Sprintf("no fixtures found for '%s'", e.TeamName)
}

// NetworkError wraps any transport level failure: request construction, DNS,
// timeouts and non-2xx status codes
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError is returned when a response body cannot be decoded
// into the shape the upstream contract promises
type MalformedResponseError struct {
	Detail string
	Cause  error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Detail, e.Cause)
	}
	return fmt.Sprintf("malformed response: %s", e.Detail)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
