package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Post represents a content item owned by an account. AuthorNickname is
// denormalized at creation and not kept in sync with later profile edits.
type Post struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorNickname string    `json:"authorNickname,omitempty"`
	Photo          string    `json:"photo,omitempty"`
	QuantityLikes  int       `json:"quantityLikes"`
	Category       string    `json:"category,omitempty"`
	Tags           []string  `json:"tags"`
	IsPublished    bool      `json:"isPublished"`
	IsDeleted      bool      `json:"isDeleted"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PostView is a feed item annotated with denormalized author display info
type PostView struct {
	PostID        string    `json:"postId"`
	UserID        string    `json:"userId"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Photo         string    `json:"photo,omitempty"`
	QuantityLikes int       `json:"quantityLikes"`
	Category      string    `json:"category,omitempty"`
	Tags          []string  `json:"tags"`
	AuthorName    string    `json:"authorName,omitempty"`
	AuthorPhoto   string    `json:"authorPhoto,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreatePostInput represents input for creating a post
type CreatePostInput struct {
	Title    string      `json:"title" binding:"required,max=250"`
	Content  string      `json:"content" binding:"required"`
	Photo    null.String `json:"photo"`
	Category string      `json:"category" binding:"omitempty,max=100"`
	Tags     []string    `json:"tags"`
}

// UpdatePostInput represents a partial update. Every field is
// presence-aware: an invalid (absent) value leaves the stored field
// untouched, a valid value — including an empty string — is applied.
// Tags nil means untouched, an empty non-nil slice clears the list.
type UpdatePostInput struct {
	Title       null.String `json:"title"`
	Content     null.String `json:"content"`
	Photo       null.String `json:"photo"`
	IsPublished null.Bool   `json:"is_published"`
	Tags        []string    `json:"tags"`
}

// CreatePostResult is returned on successful creation
type CreatePostResult struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// UpdatePostResult reports the fields that actually changed
type UpdatePostResult struct {
	PostID        string                 `json:"postId"`
	UpdatedFields map[string]interface{} `json:"updatedFields"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}
