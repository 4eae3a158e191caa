package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-articles-api/internal/models"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupArticlePostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS articles (
		article_id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		content TEXT NOT NULL,
		author VARCHAR(255) NOT NULL,
		is_published BOOLEAN NOT NULL DEFAULT FALSE,
		category VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestArticleWriteRepository_Save(t *testing.T) {
	db, teardown := setupArticlePostgresContainer(t)
	defer teardown()

	repo := NewArticleWriteRepository(db, nil)
	ctx := context.Background()

	created, err := repo.Save(ctx, models.ArticleCreate{
		Title:       "First",
		Content:     "Body one",
		Author:      "Alice",
		IsPublished: true,
		Category:    "news",
	})
	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ArticleID)
	assert.Equal(t, "First", created.Title)
	assert.Equal(t, "Body one", created.Content)
	assert.Equal(t, "Alice", created.Author)
	assert.True(t, created.IsPublished)
	assert.Equal(t, "news", created.Category)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestArticleReadRepository_List(t *testing.T) {
	db, teardown := setupArticlePostgresContainer(t)
	defer teardown()

	writeRepo := NewArticleWriteRepository(db, nil)
	readRepo := NewArticleReadRepository(db)
	ctx := context.Background()

	articles, err := readRepo.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, articles)

	first, err := writeRepo.Save(ctx, models.ArticleCreate{Title: "First", Content: "One", Author: "Alice"})
	assert.NoError(t, err)
	second, err := writeRepo.Save(ctx, models.ArticleCreate{Title: "Second", Content: "Two", Author: "Bob"})
	assert.NoError(t, err)

	articles, err = readRepo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, articles, 2)
	assert.Equal(t, first.ArticleID, articles[0].ArticleID)
	assert.Equal(t, second.ArticleID, articles[1].ArticleID)
}

func TestArticleReadRepository_GetByID(t *testing.T) {
	db, teardown := setupArticlePostgresContainer(t)
	defer teardown()

	writeRepo := NewArticleWriteRepository(db, nil)
	readRepo := NewArticleReadRepository(db)
	ctx := context.Background()

	created, err := writeRepo.Save(ctx, models.ArticleCreate{Title: "First", Content: "One", Author: "Alice"})
	assert.NoError(t, err)

	found, err := readRepo.GetByID(ctx, created.ArticleID)
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, "First", found.Title)

	missing, err := readRepo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestArticleWriteRepository_Update(t *testing.T) {
	db, teardown := setupArticlePostgresContainer(t)
	defer teardown()

	repo := NewArticleWriteRepository(db, nil)
	ctx := context.Background()

	created, err := repo.Save(ctx, models.ArticleCreate{
		Title:    "First",
		Content:  "Body one",
		Author:   "Alice",
		Category: "news",
	})
	assert.NoError(t, err)

	newTitle := "Renamed"
	published := true
	updated, err := repo.Update(ctx, created.ArticleID, models.ArticleUpdate{
		Title:       &newTitle,
		IsPublished: &published,
	})
	assert.NoError(t, err)
	assert.NotNil(t, updated)

	// Omitted fields keep their previous values
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Body one", updated.Content)
	assert.Equal(t, "Alice", updated.Author)
	assert.Equal(t, "news", updated.Category)
	assert.True(t, updated.IsPublished)

	// Unknown id yields nil
	missing, err := repo.Update(ctx, uuid.New(), models.ArticleUpdate{Title: &newTitle})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestArticleWriteRepository_Delete(t *testing.T) {
	db, teardown := setupArticlePostgresContainer(t)
	defer teardown()

	writeRepo := NewArticleWriteRepository(db, nil)
	readRepo := NewArticleReadRepository(db)
	ctx := context.Background()

	created, err := writeRepo.Save(ctx, models.ArticleCreate{Title: "First", Content: "One", Author: "Alice"})
	assert.NoError(t, err)

	deleted, err := writeRepo.Delete(ctx, created.ArticleID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	found, err := readRepo.GetByID(ctx, created.ArticleID)
	assert.NoError(t, err)
	assert.Nil(t, found)

	deleted, err = writeRepo.Delete(ctx, created.ArticleID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
