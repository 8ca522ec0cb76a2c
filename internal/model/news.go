package model

import "regexp"

// NewsItem represents a single news entry served by the news API.
// IsBookmarked and Views are client-side overlays and are never sent back.
type NewsItem struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Source       string    `json:"source"`
	Link         string    `json:"link"`
	PublishedAt  Timestamp `json:"published_at"`
	VoteCount    int       `json:"voteCount"`
	IsBookmarked bool      `json:"isBookmarked,omitempty"`
	Views        int64     `json:"-"`
}

var publisherSuffixRe = regexp.MustCompile(` - .*$`)

// DisplayTitle returns the title without the trailing " - Publisher" suffix
// that aggregated headlines usually carry.
func (n NewsItem) DisplayTitle() string {
	return publisherSuffixRe.ReplaceAllString(n.Title, "")
}

// SearchFields exposes the fields matched by client-side filtering.
func (n NewsItem) SearchFields() []string {
	return []string{n.Title, n.Source}
}

// Vote is the request body for POST /news/{id}/vote.
type Vote struct {
	Value int `json:"vote_value"`
}
