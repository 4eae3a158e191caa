package services

import (
	"net/mail"

	"github.com/sbilibin2017/gw-articles-api/internal/models"
)

const (
	maxNameLength     = 255
	maxEmailLength    = 255
	minPasswordLength = 8
)

// validateRegister checks the registration input. Returns nil when valid.
func validateRegister(name, email, password, passwordConfirmation string) *models.ValidationError {
	v := models.NewValidationError()

	if name == "" {
		v.Add("name", "The name field is required.")
	} else if len(name) > maxNameLength {
		v.Add("name", "The name may not be greater than 255 characters.")
	}

	if email == "" {
		v.Add("email", "The email field is required.")
	} else if len(email) > maxEmailLength {
		v.Add("email", "The email may not be greater than 255 characters.")
	} else if _, err := mail.ParseAddress(email); err != nil {
		v.Add("email", "The email must be a valid email address.")
	}

	if password == "" {
		v.Add("password", "The password field is required.")
	} else if len(password) < minPasswordLength {
		v.Add("password", "The password must be at least 8 characters.")
	} else if password != passwordConfirmation {
		v.Add("password", "The password confirmation does not match.")
	}

	if v.HasErrors() {
		return v
	}
	return nil
}

// validateLogin checks that both login fields are present. Returns nil when valid.
func validateLogin(email, password string) *models.ValidationError {
	v := models.NewValidationError()

	if email == "" {
		v.Add("email", "The email field is required.")
	}
	if password == "" {
		v.Add("password", "The password field is required.")
	}

	if v.HasErrors() {
		return v
	}
	return nil
}

// validateArticleCreate checks that all required article fields are present.
// Returns nil when valid.
func validateArticleCreate(article models.ArticleCreate) *models.ValidationError {
	v := models.NewValidationError()

	if article.Title == "" {
		v.Add("title", "The title field is required.")
	}
	if article.Content == "" {
		v.Add("content", "The content field is required.")
	}
	if article.Author == "" {
		v.Add("author", "The author field is required.")
	}

	if v.HasErrors() {
		return v
	}
	return nil
}

// validateArticleUpdate rejects explicit empty values for required fields.
// Nil fields are allowed: they mean "leave unchanged".
func validateArticleUpdate(update models.ArticleUpdate) *models.ValidationError {
	v := models.NewValidationError()

	if update.Title != nil && *update.Title == "" {
		v.Add("title", "The title field is required.")
	}
	if update.Content != nil && *update.Content == "" {
		v.Add("content", "The content field is required.")
	}
	if update.Author != nil && *update.Author == "" {
		v.Add("author", "The author field is required.")
	}

	if v.HasErrors() {
		return v
	}
	return nil
}
