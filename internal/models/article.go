package models

import (
	"time"

	"github.com/google/uuid"
)

// ArticleDB represents an article record in the database
type ArticleDB struct {
	ArticleID   uuid.UUID `json:"id" db:"article_id"`             // Primary key
	Title       string    `json:"title" db:"title"`               // Article title
	Content     string    `json:"content" db:"content"`           // Article body
	Author      string    `json:"author" db:"author"`             // Author name
	IsPublished bool      `json:"is_published" db:"is_published"` // Publication flag
	Category    string    `json:"category" db:"category"`         // Category name
	CreatedAt   time.Time `json:"-" db:"created_at"`              // Creation timestamp, not exposed
	UpdatedAt   time.Time `json:"-" db:"updated_at"`              // Last update timestamp, not exposed
}

// ArticleCreate lists exactly the fields a client may set when creating
// an article. Anything else in the request body is rejected.
type ArticleCreate struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Author      string `json:"author"`
	IsPublished bool   `json:"is_published"`
	Category    string `json:"category"`
}

// ArticleUpdate lists the fields a client may change on an existing
// article. Nil fields are left untouched (partial update).
type ArticleUpdate struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Author      *string `json:"author"`
	IsPublished *bool   `json:"is_published"`
	Category    *string `json:"category"`
}
