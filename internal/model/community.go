package model

// CommunityPost is a user post on the community board.
type CommunityPost struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
	LikeCount int       `json:"likeCount"`
	UserID    *int      `json:"user_id,omitempty"`
}

// NewCommunityPost is the write body for POST /community/.
type NewCommunityPost struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
