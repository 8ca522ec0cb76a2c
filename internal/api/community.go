package api

import (
	"context"
	"fmt"

	"ev-newsroom/internal/model"
)

// CommunityPosts lists community posts.
// API: GET /community/?skip={skip}&limit={limit}
func (c *Client) CommunityPosts(ctx context.Context, skip, limit int) ([]model.CommunityPost, error) {
	var out []model.CommunityPost
	if err := c.getJSON(ctx, "list community", "/community/", pageQuery(skip, limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CommunityPost fetches a single post.
// API: GET /community/{id}
func (c *Client) CommunityPost(ctx context.Context, id int) (model.CommunityPost, error) {
	var p model.CommunityPost
	err := c.getJSON(ctx, "get community", fmt.Sprintf("/community/%d", id), nil, &p)
	return p, err
}

// CreateCommunityPost creates a post. The response body is discarded.
// API: POST /community/
func (c *Client) CreateCommunityPost(ctx context.Context, post model.NewCommunityPost) error {
	return c.postJSON(ctx, "create community", "/community/", post, nil)
}
