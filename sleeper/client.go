package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DCal661/league-of-misfits/model"
)

const SleeperURL = "https://api.sleeper.app"

// Client fetches league state from the Sleeper API. All calls are
// read-only, Sleeper exposes no write operations we care about.
type Client interface {
	GetSportState(ctx context.Context) (*model.SportState, error)
	GetLeagueUsers(ctx context.Context, leagueID string) ([]model.User, error)
	GetLeagueRosters(ctx context.Context, leagueID string) ([]model.Roster, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]model.ScoreRow, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: SleeperURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *client) GetSportState(ctx context.Context) (*model.SportState, error) {
	var parsed sleeperState
	if err := c.get(ctx, "/v1/state/nfl", &parsed); err != nil {
		return nil, err
	}
	return parsed.toSportState(), nil
}

func (c *client) GetLeagueUsers(ctx context.Context, leagueID string) ([]model.User, error) {
	var parsed []sleeperUser
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/users", leagueID), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.User, 0, len(parsed))
	for _, u := range parsed {
		result = append(result, *u.toUser())
	}
	return result, nil
}

func (c *client) GetLeagueRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	var parsed []sleeperRoster
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/rosters", leagueID), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Roster, 0, len(parsed))
	for _, r := range parsed {
		result = append(result, *r.toRoster())
	}
	return result, nil
}

func (c *client) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.ScoreRow, error) {
	var parsed []sleeperMatchup
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/matchups/%d", leagueID, week), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.ScoreRow, 0, len(parsed))
	for _, m := range parsed {
		result = append(result, *m.toScoreRow())
	}
	return result, nil
}

func (c *client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s", c.url, path), nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from sleeper: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}
