package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles-api/internal/logger"
	"github.com/sbilibin2017/gw-articles-api/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrArticleNotFound is returned when no article has the requested id.
	ErrArticleNotFound = errors.New("article not found")
)

// ArticleReader defines read operations for articles.
type ArticleReader interface {
	List(ctx context.Context) ([]models.ArticleDB, error)
	GetByID(ctx context.Context, articleID uuid.UUID) (*models.ArticleDB, error)
}

// ArticleWriter defines write operations for articles.
type ArticleWriter interface {
	Save(ctx context.Context, article models.ArticleCreate) (*models.ArticleDB, error)
	Update(ctx context.Context, articleID uuid.UUID, update models.ArticleUpdate) (*models.ArticleDB, error)
	Delete(ctx context.Context, articleID uuid.UUID) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ArticleService handles article CRUD and Kafka event publishing.
type ArticleService struct {
	readRepo    ArticleReader
	writeRepo   ArticleWriter
	kafkaWriter KafkaWriter
}

// NewArticleService creates a new ArticleService.
func NewArticleService(readRepo ArticleReader, writeRepo ArticleWriter, kafkaWriter KafkaWriter) *ArticleService {
	return &ArticleService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes an article change event to Kafka.
func (s *ArticleService) publishEvent(ctx context.Context, articleID uuid.UUID, action string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "article_id", articleID)
		return
	}

	event := models.ArticleEvent{
		EventID:   uuid.NewString(),
		ArticleID: articleID.String(),
		Action:    action,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal article event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish article event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Article event published to Kafka", "event_id", event.EventID, "action", action)
	}
}

// List returns all articles.
func (s *ArticleService) List(ctx context.Context) ([]models.ArticleDB, error) {
	articles, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list articles", "error", err)
		return nil, err
	}
	return articles, nil
}

// Get returns the article with the given id.
func (s *ArticleService) Get(ctx context.Context, articleID uuid.UUID) (*models.ArticleDB, error) {
	article, err := s.readRepo.GetByID(ctx, articleID)
	if err != nil {
		logger.Log.Errorw("failed to get article", "article_id", articleID, "error", err)
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Create validates the input, stores a new article and publishes the event.
func (s *ArticleService) Create(ctx context.Context, article models.ArticleCreate) (*models.ArticleDB, error) {
	if v := validateArticleCreate(article); v != nil {
		logger.Log.Infow("article validation failed", "fields", v.Fields)
		return nil, v
	}

	created, err := s.writeRepo.Save(ctx, article)
	if err != nil {
		logger.Log.Errorw("failed to save article", "error", err)
		return nil, err
	}

	s.publishEvent(ctx, created.ArticleID, "created")

	return created, nil
}

// Update merges the provided fields into the existing article and publishes
// the event.
func (s *ArticleService) Update(ctx context.Context, articleID uuid.UUID, update models.ArticleUpdate) (*models.ArticleDB, error) {
	if v := validateArticleUpdate(update); v != nil {
		logger.Log.Infow("article validation failed", "fields", v.Fields)
		return nil, v
	}

	updated, err := s.writeRepo.Update(ctx, articleID, update)
	if err != nil {
		logger.Log.Errorw("failed to update article", "article_id", articleID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrArticleNotFound
	}

	s.publishEvent(ctx, articleID, "updated")

	return updated, nil
}

// Delete removes the article permanently and publishes the event.
func (s *ArticleService) Delete(ctx context.Context, articleID uuid.UUID) error {
	deleted, err := s.writeRepo.Delete(ctx, articleID)
	if err != nil {
		logger.Log.Errorw("failed to delete article", "article_id", articleID, "error", err)
		return err
	}
	if !deleted {
		return ErrArticleNotFound
	}

	s.publishEvent(ctx, articleID, "deleted")

	return nil
}
