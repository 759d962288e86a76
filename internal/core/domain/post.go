package domain

// Post is a top-level forum entry. IDs are allocated from a monotonic
// per-store sequence and never reused; UserName is the author and is fixed
// at creation.
type Post struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	UserName string `json:"userName"`
	Content  string `json:"content"`
	// Timestamp is the creation time in epoch milliseconds.
	Timestamp int64 `json:"timestamp"`
	Edited    bool  `json:"isEdited"`
}

// Comment belongs to a post by postId value only; there is no structural
// foreign-key constraint, so orphans are possible unless the cascade on
// post removal runs.
type Comment struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"postId"`
	UserName  string `json:"userName"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
	Edited    bool   `json:"isEdited"`
}
