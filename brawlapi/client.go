package brawlapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

const BaseURL = "https://api.brawlstars.com/v1"

const maxAttempts = 5

// APIError is returned when the API answers with a non-2xx status after
// retries are exhausted.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("brawl stars api: HTTP %d: %s", e.Status, e.Body)
}

type cacheEntry struct {
	expires time.Time
	body    []byte
}

// Client is a Brawl Stars API client with bearer auth, retries with
// exponential backoff on 429/5xx (honoring Retry-After), and a small
// in-memory TTL cache for successful GETs keyed by URL.
type Client struct {
	baseURL string
	token   string
	http    *http.Client

	mu    sync.Mutex
	cache map[string]cacheEntry

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

func New(token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: BaseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
		cache:   make(map[string]cacheEntry),
		sleep:   time.Sleep,
	}
}

func (c *Client) cacheGet(key string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	hit, ok := c.cache[key]
	if !ok {
		return nil
	}
	if time.Now().After(hit.expires) {
		delete(c.cache, key)
		return nil
	}
	return hit.body
}

func (c *Client) cacheSet(key string, body []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{expires: time.Now().Add(ttl), body: body}
}

// SweepCache drops expired entries and reports how many remain.
func (c *Client) SweepCache() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.cache {
		if now.After(e.expires) {
			delete(c.cache, k)
		}
	}
	return len(c.cache)
}

// get performs a GET against /v1{path}?{params}, retrying 429/500/502/503/504
// with exponential backoff and honoring Retry-After (seconds form).
func (c *Client) get(path string, params url.Values, ttl time.Duration) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	if ttl > 0 {
		if body := c.cacheGet(u); body != nil {
			return body, nil
		}
	}

	backoff := time.Second
	var lastStatus int
	var lastBody string
	for attempt := 0; attempt < maxAttempts; attempt++ {
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, readErr
		}

		if resp.StatusCode == http.StatusOK {
			if ttl > 0 {
				c.cacheSet(u, body, ttl)
			}
			return body, nil
		}

		lastStatus = resp.StatusCode
		lastBody = string(body)

		switch resp.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			delay := backoff
			if ra := resp.Header.Get("Retry-After"); ra != "" {
				if secs, err := strconv.ParseFloat(ra, 64); err == nil && secs > 0 {
					delay = time.Duration(secs * float64(time.Second))
				}
			}
			c.sleep(delay)
			backoff *= 2
			if backoff > 16*time.Second {
				backoff = 16 * time.Second
			}
			continue
		}
		return nil, &APIError{Status: resp.StatusCode, Body: lastBody}
	}
	return nil, &APIError{Status: lastStatus, Body: lastBody}
}

func getJSON[T any](c *Client, path string, params url.Values, ttl time.Duration) (T, error) {
	var out T
	body, err := c.get(path, params, ttl)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decoding %s: %w", path, err)
	}
	return out, nil
}

func limitParams(limit int) url.Values {
	if limit < 1 {
		limit = 1
	}
	if limit > 200 {
		limit = 200
	}
	return url.Values{"limit": {strconv.Itoa(limit)}}
}

// Player fetches a player profile. GET /players/%23{TAG}
func (c *Client) Player(tag string) (*Player, error) {
	p, err := getJSON[*Player](c, "/players/%23"+NormalizeTag(tag), nil, 10*time.Second)
	return p, err
}

// Battlelog fetches a player's recent battles. GET /players/%23{TAG}/battlelog
func (c *Client) Battlelog(tag string) ([]Battle, error) {
	l, err := getJSON[itemList[Battle]](c, "/players/%23"+NormalizeTag(tag)+"/battlelog", nil, 5*time.Second)
	return l.Items, err
}

// Club fetches club details including the member list. GET /clubs/%23{TAG}
func (c *Client) Club(tag string) (*Club, error) {
	cl, err := getJSON[*Club](c, "/clubs/%23"+NormalizeTag(tag), nil, 30*time.Second)
	return cl, err
}

// ClubMembers fetches the club roster. GET /clubs/%23{TAG}/members
func (c *Client) ClubMembers(tag string) ([]ClubMember, error) {
	l, err := getJSON[itemList[ClubMember]](c, "/clubs/%23"+NormalizeTag(tag)+"/members", nil, 30*time.Second)
	return l.Items, err
}

// Brawlers fetches the global brawler catalog. GET /brawlers
func (c *Client) Brawlers() ([]Brawler, error) {
	l, err := getJSON[itemList[Brawler]](c, "/brawlers", nil, time.Hour)
	return l.Items, err
}

// RankingsPlayers fetches the top players for a country code or "global".
func (c *Client) RankingsPlayers(country string, limit int) ([]PlayerRanking, error) {
	l, err := getJSON[itemList[PlayerRanking]](c, "/rankings/"+url.PathEscape(country)+"/players", limitParams(limit), 30*time.Second)
	return l.Items, err
}

// RankingsClubs fetches the top clubs for a country code or "global".
func (c *Client) RankingsClubs(country string, limit int) ([]ClubRanking, error) {
	l, err := getJSON[itemList[ClubRanking]](c, "/rankings/"+url.PathEscape(country)+"/clubs", limitParams(limit), 30*time.Second)
	return l.Items, err
}

// RankingsBrawler fetches the top players on a single brawler.
func (c *Client) RankingsBrawler(country string, brawlerID, limit int) ([]BrawlerRanking, error) {
	path := fmt.Sprintf("/rankings/%s/brawlers/%d", url.PathEscape(country), brawlerID)
	l, err := getJSON[itemList[BrawlerRanking]](c, path, limitParams(limit), 30*time.Second)
	return l.Items, err
}

// Events fetches the current event rotation. GET /events/rotation
func (c *Client) Events() ([]ScheduledEvent, error) {
	body, err := c.get("/events/rotation", nil, 30*time.Second)
	if err != nil {
		return nil, err
	}
	// The rotation endpoint returns a bare array, not an items wrapper.
	var events []ScheduledEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("decoding /events/rotation: %w", err)
	}
	return events, nil
}
