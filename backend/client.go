package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DCal661/league-of-misfits/model"
)

// Client talks to the companion backend, which mirrors the fantasy
// platform but serves pre-aggregated data: ranked standings, paired
// matchups and computed awards.
type Client struct {
	url        string
	httpClient *http.Client
}

func New(url string) (*Client, error) {
	if url == "" {
		return nil, fmt.Errorf("backend url must be provided")
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}, nil
}

func NewForTest(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) GetState(ctx context.Context) (*model.SportState, error) {
	var parsed struct {
		Week   int    `json:"week"`
		Season string `json:"season"`
	}
	if err := c.get(ctx, "/api/state", &parsed); err != nil {
		return nil, err
	}
	week := parsed.Week
	if week < 1 {
		week = 1
	}
	return &model.SportState{Week: week, Season: parsed.Season}, nil
}

type backendStanding struct {
	Rank      int     `json:"rank"`
	Name      string  `json:"name"`
	Avatar    string  `json:"avatar"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	PointsFor float64 `json:"points_for"`
	Streak    string  `json:"streak"`
}

// GetStandings returns the backend's standings in feed order. The feed
// is already ranked but the ranks are not trusted; the controller runs
// them through the same ranker as the raw platform data.
func (c *Client) GetStandings(ctx context.Context) ([]model.Team, error) {
	var parsed []backendStanding
	if err := c.get(ctx, "/api/standings", &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Team, 0, len(parsed))
	for _, s := range parsed {
		avatar := s.Avatar
		if avatar == "" {
			avatar = "none"
		}
		result = append(result, model.Team{
			Name:      s.Name,
			Avatar:    avatar,
			Wins:      s.Wins,
			Losses:    s.Losses,
			PointsFor: s.PointsFor,
			Streak:    s.Streak,
			Rank:      s.Rank,
		})
	}
	return result, nil
}

type backendMatchupSide struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
}

type backendMatchup struct {
	Team1 *backendMatchupSide `json:"team1"`
	Team2 *backendMatchupSide `json:"team2"`
}

func (c *Client) GetMatchups(ctx context.Context, week int) ([]model.Matchup, error) {
	var parsed []backendMatchup
	if err := c.get(ctx, fmt.Sprintf("/api/matchups/%d", week), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Matchup, 0, len(parsed))
	for _, m := range parsed {
		// A matchup missing a side is malformed feed data, skip it the
		// same way the pairer drops incomplete groups.
		if m.Team1 == nil || m.Team2 == nil {
			continue
		}
		result = append(result, model.Matchup{
			Team1:  m.Team1.Name,
			Score1: m.Team1.Points,
			Team2:  m.Team2.Name,
			Score2: m.Team2.Points,
		})
	}
	return result, nil
}

type backendAward struct {
	Title  string  `json:"title"`
	Winner string  `json:"winner"`
	Points float64 `json:"points"`
	Detail string  `json:"detail"`
}

// GetAwards returns the backend's computed awards for one week, mapped
// into tagged kinds. The feed identifies awards only by free-text title,
// so the substring matching lives here at the client boundary and
// nowhere else.
func (c *Client) GetAwards(ctx context.Context, week int) (*model.WeeklyAwards, error) {
	var parsed []backendAward
	if err := c.get(ctx, fmt.Sprintf("/api/awards/%d", week), &parsed); err != nil {
		return nil, err
	}
	if len(parsed) == 0 {
		return nil, nil
	}

	awards := &model.WeeklyAwards{Week: week}
	for _, a := range parsed {
		winner := model.AwardWinner{
			Team:   a.Winner,
			Points: a.Points,
			Detail: a.Detail,
		}
		switch classifyAward(a.Title) {
		case model.AwardTopScorer:
			awards.TopScorer = winner
		case model.AwardLowScorer:
			awards.LowScorer = winner
		case model.AwardBust:
			awards.Bust = winner
		}
	}
	return awards, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s", c.url, path), nil)
	if err != nil {
		return fmt.Errorf("error creating backend http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending backend http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from backend: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("error parsing response from backend: %w", err)
	}
	return nil
}
