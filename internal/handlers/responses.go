package handlers

import "github.com/sbilibin2017/gw-articles-api/internal/models"

// ErrorResponse is the generic error body returned by all endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Message string `json:"message"`
}

// ValidationErrorResponse reports per-field input violations
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Error message
	// default: The given data was invalid.
	Message string `json:"message"`

	// Per-field violation messages
	Errors map[string]string `json:"errors"`
}

// UserPayload is the public representation of a user. The password hash
// is never included.
// swagger:model UserPayload
type UserPayload struct {
	// User id
	ID string `json:"id"`

	// Display name
	// default: John Doe
	Name string `json:"name"`

	// Email address
	// default: john@example.com
	Email string `json:"email"`
}

func newUserPayload(user *models.UserDB) UserPayload {
	return UserPayload{
		ID:    user.UserID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}

// ArticlePayload is the public representation of an article. Timestamps
// are store internals and are not included.
// swagger:model ArticlePayload
type ArticlePayload struct {
	// Article id
	ID string `json:"id"`

	// Title
	// default: My first article
	Title string `json:"title"`

	// Body content
	Content string `json:"content"`

	// Author name
	// default: John Doe
	Author string `json:"author"`

	// Publication flag
	IsPublished bool `json:"is_published"`

	// Category name
	// default: tech
	Category string `json:"category"`
}

func newArticlePayload(article *models.ArticleDB) ArticlePayload {
	return ArticlePayload{
		ID:          article.ArticleID.String(),
		Title:       article.Title,
		Content:     article.Content,
		Author:      article.Author,
		IsPublished: article.IsPublished,
		Category:    article.Category,
	}
}
