package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ai-procurement-be/internal/entity"
	"ai-procurement-be/internal/repository/unitofwork"
	"ai-procurement-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ConversationRepository())
	assert.NotNil(t, uow.ChatMessageRepository())
	assert.NotNil(t, uow.DocumentRepository())
	assert.NotNil(t, uow.SupplierRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Transactional Conversation Write", func(t *testing.T) {
		userId := uuid.New()
		user := &entity.User{
			Id:       userId,
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
			Role:     "user",
		}

		err := uow.UserRepository().Create(context.Background(), user)
		assert.NoError(t, err)

		ctx := context.Background()
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		convId := uuid.New()
		conv := &entity.ChatConversation{
			Id:        convId,
			UserId:    userId,
			Title:     "Integration conversation",
			CreatedAt: time.Now(),
		}
		err = uow.ConversationRepository().Create(ctx, conv)
		assert.NoError(t, err)

		msgs := []*entity.ChatMessage{
			{
				Id:             uuid.New(),
				ConversationId: convId,
				Role:           entity.MessageRoleUser,
				Content:        "What did we spend on steel components?",
				CreatedAt:      time.Now(),
			},
			{
				Id:             uuid.New(),
				ConversationId: convId,
				Role:           entity.MessageRoleAssistant,
				Content:        "You spent 12,400 USD across two purchase orders.",
				CreatedAt:      time.Now(),
			},
		}
		err = uow.ChatMessageRepository().CreateBatch(ctx, msgs)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created Conversation with Messages in Transaction")
	})
}
