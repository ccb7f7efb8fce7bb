package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"concierge/infras/otel"
	"concierge/infras/postgres"
	"concierge/internal/domains/chat/model"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/logger"
	gRepo "concierge/shared/repository"
	"context"
	"fmt"
)

// ThreadRow is the latest message of a thread with the count of unread guest messages.
type ThreadRow struct {
	model.ChatMessage
	Unread int `db:"unread"`
}

type Chat interface {
	Insert(ctx context.Context, model model.ChatMessage) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ChatMessage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ChatMessage, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Threads(ctx context.Context, limit int) ([]ThreadRow, error)
}

type repository struct {
	gRepo.Repository[model.ChatMessage]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Chat {
	return &repository{
		Repository: gRepo.NewRepository[model.ChatMessage](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const threadsQuery = `
SELECT t.* FROM (
	SELECT DISTINCT ON (m.user_id)
		m.id, m.user_id, m.room_number, m.guest_name, m.text, m.sender, m.status, m.staff_id,
		m.created_at, m.modified_at, m.created_by, m.modified_by,
		(SELECT COUNT(*) FROM chat_messages u
			WHERE u.user_id = m.user_id AND u.sender = 'user' AND u.status = 'sent') AS unread
	FROM chat_messages m
	ORDER BY m.user_id, m.created_at DESC
) t
ORDER BY t.created_at DESC
LIMIT $1`

func (r *repository) Threads(ctx context.Context, limit int) ([]ThreadRow, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Threads", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, threadsQuery)

	var rows []ThreadRow

	if err := r.db.Read.SelectContext(ctx, &rows, threadsQuery, limit); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rows, fmt.Errorf("failed to get chat threads: %w", err)
	}

	return rows, nil
}
