package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"concierge/config"
	"concierge/infras/otel"
	"concierge/internal/domains/chat/hub"
	"concierge/internal/domains/chat/model"
	"concierge/internal/domains/chat/model/dto"
	"concierge/internal/domains/chat/repository"
	guestService "concierge/internal/domains/guest/service"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultThreadLimit = 50

type Chat interface {
	Post(ctx context.Context, req dto.PostRequest) (dto.MessageResponse, error)
	Send(ctx context.Context, userID string, req dto.SendMessageRequest) (dto.MessageResponse, error)
	GetThread(ctx context.Context, userID string, req gDto.QueryParams) (dto.GetMessagesResponse, error)
	GetThreads(ctx context.Context, limit int) (dto.GetThreadsResponse, error)
	Reply(ctx context.Context, userID string, req dto.ReplyRequest) (dto.MessageResponse, error)
	MarkRead(ctx context.Context, userID string) error
}

type serviceImpl struct {
	repo  repository.Chat
	guest guestService.Guest
	hub   hub.Broadcaster
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Chat, guest guestService.Guest, hub hub.Broadcaster, cfg *config.Config, otel otel.Otel) Chat {
	return &serviceImpl{
		repo:  repo,
		guest: guest,
		hub:   hub,
		cfg:   cfg,
		otel:  otel,
	}
}

// Post writes a guest message into the thread of req.UserID and pushes it to the guest and staff.
func (s *serviceImpl) Post(ctx context.Context, req dto.PostRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Post")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if strings.TrimSpace(req.UserID) == constant.Empty {
		return res, guestService.ErrUserIDMissing
	}

	msg := req.ToModel(req.UserID)

	if err = s.repo.Insert(ctx, msg); err != nil {
		log.Error().Err(err).Str("user_id", req.UserID).Msg("failed to create chat message")

		return res, fmt.Errorf("failed to create chat message: %w", err)
	}

	res.FromModel(msg)
	s.broadcast(ctx, dto.Event{Type: dto.EventMessage, UserID: msg.UserID, Message: res})

	return res, nil
}

// Send resolves the guest identity and posts the message to the guest's own thread.
func (s *serviceImpl) Send(ctx context.Context, userID string, req dto.SendMessageRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(&err)

	identity, err := s.guest.Resolve(ctx, userID, req.IdentityHint)
	if err != nil {
		return res, err
	}

	return s.Post(ctx, dto.PostRequest{
		UserID:     identity.UserID,
		RoomNumber: identity.RoomNumber,
		GuestName:  identity.Name,
		Text:       strings.TrimSpace(req.Text),
	})
}

// GetThread lists one guest conversation, oldest first unless asked otherwise. Never cached.
func (s *serviceImpl) GetThread(ctx context.Context, userID string, req gDto.QueryParams) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetThread")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if userID == constant.Empty {
		return res, guestService.ErrUserIDMissing
	}

	if req.SortBy == constant.Empty {
		req.SortBy = constant.FieldCreatedAt
		req.SortDir = gDto.SortDirAsc
	}

	filter := shared.FilterByID(userID, model.FieldUserID, model.TableName)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count chat messages: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get chat thread")

		return res, fmt.Errorf("failed to get chat messages: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// GetThreads lists guest conversations by their latest message, newest first.
func (s *serviceImpl) GetThreads(ctx context.Context, limit int) (res dto.GetThreadsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetThreads")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if limit <= 0 {
		limit = defaultThreadLimit
	}

	rows, err := s.repo.Threads(ctx, limit)
	if err != nil {
		return res, fmt.Errorf("failed to get chat threads: %w", err)
	}

	res.Threads = make([]dto.Thread, len(rows))
	for i, row := range rows {
		res.Threads[i] = dto.Thread{
			UserID:     row.UserID,
			GuestName:  row.GuestName,
			RoomNumber: row.RoomNumber,
			Unread:     row.Unread,
		}
		res.Threads[i].LastMessage.FromModel(row.ChatMessage)
	}

	return res, nil
}

// Reply adds a staff message to an existing guest thread. The staff member is taken from the session.
func (s *serviceImpl) Reply(ctx context.Context, userID string, req dto.ReplyRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reply")
	defer scope.End()
	defer scope.TraceIfError(&err)

	staffID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if staffID == constant.Empty {
		return res, failure.Unauthorized("unauthorized")
	}

	latest, err := s.repo.GetAll(ctx, gDto.QueryParams{
		Limit:   1,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get chat thread: %w", err)
	}

	if len(latest) == 0 {
		return res, failure.NotFound("chat thread not found")
	}

	msg := model.ChatMessage{
		ID:         uuid.NewString(),
		UserID:     userID,
		RoomNumber: latest[0].RoomNumber,
		GuestName:  latest[0].GuestName,
		Text:       strings.TrimSpace(req.Text),
		Sender:     model.SenderStaff,
		Status:     model.StatusSent,
		StaffID:    &staffID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  staffID,
			ModifiedBy: staffID,
		},
	}

	if err = s.repo.Insert(ctx, msg); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to create staff reply")

		return res, fmt.Errorf("failed to create chat message: %w", err)
	}

	res.FromModel(msg)
	s.broadcast(ctx, dto.Event{Type: dto.EventMessage, UserID: userID, Message: res})

	return res, nil
}

// MarkRead flags every unread guest message of the thread as read.
func (s *serviceImpl) MarkRead(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(&err)

	staffID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.AddFilter(model.FieldUserID, gDto.FilterOperatorEq, userID, model.TableName)
	filter.AddFilter(model.FieldSender, gDto.FilterOperatorEq, model.SenderUser, model.TableName)
	filter.AddFilter(model.FieldStatus, gDto.FilterOperatorEq, model.StatusSent, model.TableName)

	fields := map[string]any{
		model.FieldStatus:        model.StatusRead,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: staffID,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to mark chat thread read")

		return fmt.Errorf("failed to mark chat thread read: %w", err)
	}

	s.broadcast(ctx, dto.Event{Type: dto.EventRead, UserID: userID})

	return nil
}

// broadcast is best effort; the stored message is the source of truth.
func (s *serviceImpl) broadcast(ctx context.Context, event dto.Event) {
	if err := s.hub.PublishUser(ctx, event.UserID, event); err != nil {
		log.Warn().Err(err).Str("user_id", event.UserID).Msg("failed to push chat event to guest")
	}

	if err := s.hub.PublishStaff(ctx, event); err != nil {
		log.Warn().Err(err).Msg("failed to push chat event to staff")
	}
}
