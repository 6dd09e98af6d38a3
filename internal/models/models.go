package models

import (
	"time"

	"github.com/lib/pq"
)

type Role string

const (
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Article is a row of the articles table. A nil PublishedAt marks a draft.
type Article struct {
	ID            string         `json:"id" db:"id"`
	Title         string         `json:"title" db:"title"`
	Slug          string         `json:"slug" db:"slug"`
	Summary       *string        `json:"summary,omitempty" db:"summary"`
	Content       string         `json:"content" db:"content"`
	Tags          pq.StringArray `json:"tags" db:"tags"`
	Language      string         `json:"language" db:"language"`
	Satire        bool           `json:"satire" db:"satire"`
	PublishedAt   *time.Time     `json:"published_at" db:"published_at"`
	Source        *string        `json:"source,omitempty" db:"source"`
	PromptUsed    *string        `json:"prompt_used,omitempty" db:"prompt_used"`
	FeaturedImage *string        `json:"featured_image,omitempty" db:"featured_image"`
	AuthorID      *string        `json:"author_id,omitempty" db:"author_id"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

func (a *Article) IsPublished() bool {
	return a.PublishedAt != nil
}

type ArticleList struct {
	Articles []Article `json:"articles"`
	Total    int       `json:"total"`
}
