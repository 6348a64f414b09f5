package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/employee"
	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/holiday"
	"golang.org/x/sync/errgroup"
)

// Feed names double as snapshot cache keys.
const (
	FeedSourceA  = "attendance_type_a"
	FeedSourceB  = "attendance_type_b"
	FeedRoster   = "employees"
	FeedHolidays = "holidays"
)

// Endpoint paths on the remote HR API.
const (
	pathSourceA  = "/api/v1/attendance/type-a"
	pathSourceB  = "/api/v1/attendance/type-b"
	pathRoster   = "/api/v1/admin/employees"
	pathHolidays = "/api/v1/leave/holidays"
)

// Payload carries one consistent fetch of all four feeds.
type Payload struct {
	SourceA  []attendance.RawRecord
	SourceB  []attendance.RawRecord
	Roster   []employee.Employee
	Holidays []holiday.Holiday

	// Stale marks that at least one feed was served from the snapshot
	// cache because the live fetch failed.
	Stale bool
}

// Client fetches the attendance feeds, roster and holiday calendar from
// the HR API. A nil cache disables offline fallback.
type Client struct {
	baseURL string
	httpc   *http.Client
	cache   *Cache
}

func NewClient(baseURL string, timeout time.Duration, cache *Cache) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		cache:   cache,
	}
}

// FetchAll fetches the four feeds in parallel. It fails only when a feed
// is unreachable and has no cached fallback.
func (c *Client) FetchAll(ctx context.Context) (*Payload, error) {
	payload := &Payload{}
	var staleA, staleB, staleRoster, staleHolidays bool

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		staleA, err = c.fetchFeed(gCtx, FeedSourceA, pathSourceA, &payload.SourceA)
		return err
	})
	g.Go(func() (err error) {
		staleB, err = c.fetchFeed(gCtx, FeedSourceB, pathSourceB, &payload.SourceB)
		return err
	})
	g.Go(func() (err error) {
		staleRoster, err = c.fetchFeed(gCtx, FeedRoster, pathRoster, &payload.Roster)
		return err
	})
	g.Go(func() (err error) {
		staleHolidays, err = c.fetchFeed(gCtx, FeedHolidays, pathHolidays, &payload.Holidays)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	payload.Stale = staleA || staleB || staleRoster || staleHolidays
	return payload, nil
}

// fetchFeed fetches one feed into v, writing through to the snapshot
// cache on success and falling back to it on failure.
func (c *Client) fetchFeed(ctx context.Context, feed, path string, v interface{}) (fromCache bool, err error) {
	body, err := c.get(ctx, path)
	if err == nil {
		if err = json.Unmarshal(body, v); err == nil {
			if c.cache != nil {
				if cacheErr := c.cache.Put(feed, body); cacheErr != nil {
					slog.Warn("Failed to cache feed payload", "feed", feed, "error", cacheErr)
				}
			}
			return false, nil
		}
		err = fmt.Errorf("decoding %s payload: %w", feed, err)
	}

	if c.cache != nil {
		cached, cacheErr := c.cache.Get(feed)
		if cacheErr == nil && cached != nil && json.Unmarshal(cached, v) == nil {
			slog.Warn("Serving feed from snapshot cache", "feed", feed, "error", err)
			return true, nil
		}
	}

	return false, fmt.Errorf("feed %s unavailable: %w", feed, err)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	return io.ReadAll(io.LimitReader(resp.Body, 32<<20))
}
