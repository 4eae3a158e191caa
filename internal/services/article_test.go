package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles-api/internal/models"
	"github.com/sbilibin2017/gw-articles-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func newArticleService(ctrl *gomock.Controller) (
	*services.ArticleService,
	*services.MockArticleReader,
	*services.MockArticleWriter,
	*services.MockKafkaWriter,
) {
	readRepo := services.NewMockArticleReader(ctrl)
	writeRepo := services.NewMockArticleWriter(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)

	svc := services.NewArticleService(readRepo, writeRepo, kafkaWriter)
	return svc, readRepo, writeRepo, kafkaWriter
}

func TestArticleService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, readRepo, _, _ := newArticleService(ctrl)

		articles := []models.ArticleDB{
			{ArticleID: uuid.New(), Title: "First"},
			{ArticleID: uuid.New(), Title: "Second"},
		}
		readRepo.EXPECT().List(gomock.Any()).Return(articles, nil)

		got, err := svc.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, articles, got)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, readRepo, _, _ := newArticleService(ctrl)

		readRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		got, err := svc.List(ctx)
		assert.Nil(t, got)
		assert.EqualError(t, err, "db error")
	})
}

func TestArticleService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	articleID := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, readRepo, _, _ := newArticleService(ctrl)

		article := &models.ArticleDB{ArticleID: articleID, Title: "T"}
		readRepo.EXPECT().GetByID(gomock.Any(), articleID).Return(article, nil)

		got, err := svc.Get(ctx, articleID)
		assert.NoError(t, err)
		assert.Equal(t, article, got)
	})

	t.Run("not found", func(t *testing.T) {
		svc, readRepo, _, _ := newArticleService(ctrl)

		readRepo.EXPECT().GetByID(gomock.Any(), articleID).Return(nil, nil)

		got, err := svc.Get(ctx, articleID)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, services.ErrArticleNotFound)
	})
}

func TestArticleService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	input := models.ArticleCreate{
		Title:       "T",
		Content:     "C",
		Author:      "A",
		IsPublished: true,
		Category:    "cat",
	}

	t.Run("success publishes event", func(t *testing.T) {
		svc, _, writeRepo, kafkaWriter := newArticleService(ctrl)

		created := &models.ArticleDB{ArticleID: uuid.New(), Title: "T", Content: "C", Author: "A", IsPublished: true, Category: "cat"}
		writeRepo.EXPECT().Save(gomock.Any(), input).Return(created, nil)
		kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.Create(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("missing required fields", func(t *testing.T) {
		svc, _, _, _ := newArticleService(ctrl)

		got, err := svc.Create(ctx, models.ArticleCreate{Category: "cat"})
		assert.Nil(t, got)

		var v *models.ValidationError
		assert.ErrorAs(t, err, &v)
		assert.Contains(t, v.Fields, "title")
		assert.Contains(t, v.Fields, "content")
		assert.Contains(t, v.Fields, "author")
	})

	t.Run("repository error", func(t *testing.T) {
		svc, _, writeRepo, _ := newArticleService(ctrl)

		writeRepo.EXPECT().Save(gomock.Any(), input).Return(nil, errors.New("db error"))

		got, err := svc.Create(ctx, input)
		assert.Nil(t, got)
		assert.EqualError(t, err, "db error")
	})

	t.Run("kafka error does not fail the create", func(t *testing.T) {
		svc, _, writeRepo, kafkaWriter := newArticleService(ctrl)

		created := &models.ArticleDB{ArticleID: uuid.New(), Title: "T", Content: "C", Author: "A"}
		writeRepo.EXPECT().Save(gomock.Any(), input).Return(created, nil)
		kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

		got, err := svc.Create(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("nil kafka writer skips publishing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		readRepo := services.NewMockArticleReader(ctrl)
		writeRepo := services.NewMockArticleWriter(ctrl)
		svc := services.NewArticleService(readRepo, writeRepo, nil)

		created := &models.ArticleDB{ArticleID: uuid.New(), Title: "T", Content: "C", Author: "A"}
		writeRepo.EXPECT().Save(gomock.Any(), input).Return(created, nil)

		got, err := svc.Create(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, created, got)
	})
}

func TestArticleService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	articleID := uuid.New()

	newTitle := "New"
	update := models.ArticleUpdate{Title: &newTitle}

	t.Run("success publishes event", func(t *testing.T) {
		svc, _, writeRepo, kafkaWriter := newArticleService(ctrl)

		updated := &models.ArticleDB{ArticleID: articleID, Title: "New", Content: "C", Author: "A"}
		writeRepo.EXPECT().Update(gomock.Any(), articleID, update).Return(updated, nil)
		kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.Update(ctx, articleID, update)
		assert.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, writeRepo, _ := newArticleService(ctrl)

		writeRepo.EXPECT().Update(gomock.Any(), articleID, update).Return(nil, nil)

		got, err := svc.Update(ctx, articleID, update)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, services.ErrArticleNotFound)
	})

	t.Run("explicit empty title rejected", func(t *testing.T) {
		svc, _, _, _ := newArticleService(ctrl)

		empty := ""
		got, err := svc.Update(ctx, articleID, models.ArticleUpdate{Title: &empty})
		assert.Nil(t, got)

		var v *models.ValidationError
		assert.ErrorAs(t, err, &v)
		assert.Contains(t, v.Fields, "title")
	})
}

func TestArticleService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	articleID := uuid.New()

	t.Run("success publishes event", func(t *testing.T) {
		svc, _, writeRepo, kafkaWriter := newArticleService(ctrl)

		writeRepo.EXPECT().Delete(gomock.Any(), articleID).Return(true, nil)
		kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(ctx, articleID))
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, writeRepo, _ := newArticleService(ctrl)

		writeRepo.EXPECT().Delete(gomock.Any(), articleID).Return(false, nil)

		assert.ErrorIs(t, svc.Delete(ctx, articleID), services.ErrArticleNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, _, writeRepo, _ := newArticleService(ctrl)

		writeRepo.EXPECT().Delete(gomock.Any(), articleID).Return(false, errors.New("db error"))

		assert.EqualError(t, svc.Delete(ctx, articleID), "db error")
	})
}
