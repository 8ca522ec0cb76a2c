package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"ev-newsroom/internal/model"
)

func itoa(n int) string { return strconv.Itoa(n) }

// News lists news items.
// API: GET /news?skip={skip}&limit={limit}
func (c *Client) News(ctx context.Context, skip, limit int) ([]model.NewsItem, error) {
	var items []model.NewsItem
	if err := c.getJSON(ctx, "list news", "/news", pageQuery(skip, limit), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SearchNews runs a server-side title search. The server answers 404 when
// nothing matches; callers can check IsNotFound.
// API: GET /news/search/?query={q}&skip={skip}&limit={limit}
func (c *Client) SearchNews(ctx context.Context, query string, skip, limit int) ([]model.NewsItem, error) {
	q := pageQuery(skip, limit)
	q.Set("query", query)
	var items []model.NewsItem
	if err := c.getJSON(ctx, "search news", "/news/search/", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// NewsItem fetches a single item.
// API: GET /news/{id}
func (c *Client) NewsItem(ctx context.Context, id int) (model.NewsItem, error) {
	var it model.NewsItem
	err := c.getJSON(ctx, "get news", fmt.Sprintf("/news/%d", id), nil, &it)
	return it, err
}

// Vote submits a vote and returns the item with its server-side tally.
// API: POST /news/{id}/vote {"vote_value": v}
func (c *Client) Vote(ctx context.Context, id, value int) (model.NewsItem, error) {
	var it model.NewsItem
	err := c.postJSON(ctx, "vote", fmt.Sprintf("/news/%d/vote", id), model.Vote{Value: value}, &it)
	return it, err
}

// Announcements lists announcements for a region/agency category.
// API: GET /announcements/{category}/
func (c *Client) Announcements(ctx context.Context, category string) ([]model.Announcement, error) {
	var out []model.Announcement
	path := "/announcements/" + url.PathEscape(category) + "/"
	if err := c.getJSON(ctx, "announcements "+category, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// VehicleSpecs fetches the full vehicle specification reference list.
func (c *Client) VehicleSpecs(ctx context.Context) ([]model.VehicleSpec, error) {
	var out []model.VehicleSpec
	if err := c.getJSON(ctx, "vehicle specs", c.vehicleSpecsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
