package espn

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mww/espn_client/espn/mocktransport"
	"github.com/stretchr/testify/mock"
)

// A 200 response whose envelope decodes but lacks the section the view should
// have populated must be a MissingError, not an empty result.
func TestMissingSectionErrors(t *testing.T) {
	emptyEnvelope := []byte(`{"gameId": 1, "id": 111368805, "segmentId": 0, "scoringPeriodId": 5}`)

	tests := []struct {
		name  string
		call  func(c Client) error
		field string
	}{
		{
			name: "settings",
			call: func(c Client) error {
				_, err := c.LeagueSettings(context.Background(), 2023)
				return err
			},
			field: "settings",
		},
		{
			name: "status",
			call: func(c Client) error {
				_, err := c.LeagueStatus(context.Background(), 2023)
				return err
			},
			field: "status",
		},
		{
			name: "members",
			call: func(c Client) error {
				_, err := c.LeagueMembers(context.Background(), 2023)
				return err
			},
			field: "members",
		},
		{
			name: "teams",
			call: func(c Client) error {
				_, err := c.TeamData(context.Background(), 2023)
				return err
			},
			field: "teams",
		},
		{
			name: "schedule",
			call: func(c Client) error {
				_, err := c.Matchups(context.Background(), 2023)
				return err
			},
			field: "schedule",
		},
		{
			name: "players",
			call: func(c Client) error {
				_, err := c.FreeAgentsForWeek(context.Background(), 2023, 2, 50)
				return err
			},
			field: "players",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			transport := &mocktransport.Transport{}
			transport.On("Do", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(200, emptyEnvelope, nil)

			c, err := NewWithTransport(111368805, transport)
			if err != nil {
				t.Fatalf("error creating client: %v", err)
			}

			err = tc.call(c)
			var missingErr *MissingError
			if !errors.As(err, &missingErr) {
				t.Fatalf("expected a MissingError, got: %v", err)
			}
			if missingErr.Field != tc.field {
				t.Errorf("expected missing field '%s', got '%s'", tc.field, missingErr.Field)
			}
			transport.AssertExpectations(t)
		})
	}
}

func TestMalformedBodyIsDecodeError(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "truncated", body: []byte(`{"gameId": 1, "id": 1113`)},
		{name: "not json", body: []byte(`<html>varsity jackets 50% off</html>`)},
		{name: "wrong type", body: []byte(`{"gameId": 1, "id": 111368805, "scoringPeriodId": "sometime"}`)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			transport := &mocktransport.Transport{}
			transport.On("Do", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(200, tc.body, nil)

			c, err := NewWithTransport(111368805, transport)
			if err != nil {
				t.Fatalf("error creating client: %v", err)
			}

			_, err = c.TeamData(context.Background(), 2023)
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected a DecodeError, got: %v", err)
			}
			if decodeErr.Path == "" {
				t.Error("decode errors must always name a path")
			}
		})
	}
}

// Type mismatches should name the failing field, not just the document.
func TestDecodeErrorNamesField(t *testing.T) {
	transport := &mocktransport.Transport{}
	transport.On("Do", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(200, []byte(`{"gameId": 1, "id": 111368805, "scoringPeriodId": "sometime"}`), nil)

	c, err := NewWithTransport(111368805, transport)
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	_, err = c.TeamData(context.Background(), 2023)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected a DecodeError, got: %v", err)
	}
	if decodeErr.Path != "league.scoringPeriodId" {
		t.Errorf("expected path 'league.scoringPeriodId', got '%s'", decodeErr.Path)
	}
}

func TestTransportErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("connection reset")

	transport := &mocktransport.Transport{}
	transport.On("Do", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, nil, cause)

	c, err := NewWithTransport(111368805, transport)
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	_, err = c.TeamData(context.Background(), 2023)
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected a TransportError, got: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("the transport error should wrap its cause")
	}
	if transportErr.Path != "/seasons/2023/segments/0/leagues/111368805" {
		t.Errorf("unexpected path: %s", transportErr.Path)
	}
}

func TestUnexpectedStatusCode(t *testing.T) {
	transport := &mocktransport.Transport{}
	transport.On("Do", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(503, []byte(`{}`), nil)

	c, err := NewWithTransport(111368805, transport)
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	_, err = c.TeamData(context.Background(), 2023)
	if err == nil {
		t.Fatal("error should not have been nil")
	}
	if errors.Is(err, ErrAuth) || errors.Is(err, ErrNotFound) {
		t.Errorf("a 503 should not map to a sentinel error, got: %v", err)
	}
}

// The free-agent fetch sends its constraints in a request header, not the
// query string, so verify the header actually goes out.
func TestFreeAgentFilterHeaderSent(t *testing.T) {
	transport := &mocktransport.Transport{}
	transport.On("Do", mock.Anything, mock.Anything, mock.Anything, mock.MatchedBy(func(h http.Header) bool {
		return h.Get(filterHeaderName) != ""
	})).Return(200, []byte(`{"gameId": 1, "id": 111368805, "players": []}`), nil)

	c, err := NewWithTransport(111368805, transport)
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	agents, err := c.FreeAgentsForWeek(context.Background(), 2023, 2, 50)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(agents) != 0 {
		t.Errorf("expected no agents, got %d", len(agents))
	}
	transport.AssertExpectations(t)
}
