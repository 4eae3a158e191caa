package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-articles-api/internal/logger"
	"github.com/sbilibin2017/gw-articles-api/internal/models"
)

// ArticleReadRepository handles article read operations
type ArticleReadRepository struct {
	db *sqlx.DB
}

func NewArticleReadRepository(db *sqlx.DB) *ArticleReadRepository {
	return &ArticleReadRepository{db: db}
}

// List returns all articles in insertion order.
func (r *ArticleReadRepository) List(ctx context.Context) ([]models.ArticleDB, error) {
	const query = `
		SELECT article_id, title, content, author, is_published, category, created_at, updated_at
		FROM articles
		ORDER BY created_at, article_id
	`

	var articles []models.ArticleDB
	err := r.db.SelectContext(ctx, &articles, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(articles),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return articles, nil
}

// GetByID returns the article with the given id, or nil if no such article exists.
func (r *ArticleReadRepository) GetByID(ctx context.Context, articleID uuid.UUID) (*models.ArticleDB, error) {
	const query = `
		SELECT article_id, title, content, author, is_published, category, created_at, updated_at
		FROM articles
		WHERE article_id = $1
	`

	var article models.ArticleDB
	err := r.db.GetContext(ctx, &article, query, articleID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{articleID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &article, nil
}

// ArticleWriteRepository handles article write operations
type ArticleWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewArticleWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ArticleWriteRepository {
	return &ArticleWriteRepository{db: db, txGetter: txGetter}
}

func (r *ArticleWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// Save inserts a new article and returns the created row.
func (r *ArticleWriteRepository) Save(ctx context.Context, article models.ArticleCreate) (*models.ArticleDB, error) {
	query := `
		INSERT INTO articles (article_id, title, content, author, is_published, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING article_id, title, content, author, is_published, category, created_at, updated_at
	`
	args := []any{uuid.New(), article.Title, article.Content, article.Author, article.IsPublished, article.Category}

	var created models.ArticleDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &created, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Update merges the non-nil fields into the existing article and refreshes
// updated_at. Returns nil if no article has the given id.
func (r *ArticleWriteRepository) Update(ctx context.Context, articleID uuid.UUID, update models.ArticleUpdate) (*models.ArticleDB, error) {
	query := `
		UPDATE articles
		SET title = COALESCE($2, title),
		    content = COALESCE($3, content),
		    author = COALESCE($4, author),
		    is_published = COALESCE($5, is_published),
		    category = COALESCE($6, category),
		    updated_at = NOW()
		WHERE article_id = $1
		RETURNING article_id, title, content, author, is_published, category, created_at, updated_at
	`
	args := []any{articleID, update.Title, update.Content, update.Author, update.IsPublished, update.Category}

	var updated models.ArticleDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &updated, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &updated, nil
}

// Delete removes an article permanently. Returns false if the id was absent.
func (r *ArticleWriteRepository) Delete(ctx context.Context, articleID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM articles
		WHERE article_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, articleID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{articleID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
