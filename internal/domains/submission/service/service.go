package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"concierge/config"
	"concierge/infras/kafka"
	"concierge/infras/otel"
	chatDto "concierge/internal/domains/chat/model/dto"
	chatService "concierge/internal/domains/chat/service"
	guestService "concierge/internal/domains/guest/service"
	requestDto "concierge/internal/domains/request/model/dto"
	requestService "concierge/internal/domains/request/service"
	roomService "concierge/internal/domains/room/service"
	"concierge/internal/domains/submission/model/dto"
	"concierge/shared/constant"
	"concierge/shared/timezone"
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	messageSubmitted = "Request submitted"
	messagePartial   = "Message sent to the front desk, but the request could not be tracked"
)

type Submission interface {
	Submit(ctx context.Context, req dto.SubmitRequest) (dto.SubmitResult, error)
}

type serviceImpl struct {
	guest   guestService.Guest
	chat    chatService.Chat
	room    roomService.Room
	request requestService.Request
	kafka   kafka.Client
	cfg     *config.Config
	otel    otel.Otel
}

func New(
	guest guestService.Guest,
	chat chatService.Chat,
	room roomService.Room,
	request requestService.Request,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Submission {
	return &serviceImpl{
		guest:   guest,
		chat:    chat,
		room:    room,
		request: request,
		kafka:   kafka,
		cfg:     cfg,
		otel:    otel,
	}
}

// Submit writes a guest request as a chat message and then as a tracked service request.
// Nothing is written without a user id. The chat message is required; the room lookup and
// the service request are best effort and never undo the message. There is no retry.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitRequest) (res dto.SubmitResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	userID := strings.TrimSpace(req.UserID)
	if userID == constant.Empty {
		return res, guestService.ErrUserIDMissing
	}

	identity, err := s.guest.Resolve(ctx, userID, req.IdentityHint)
	if err != nil {
		return res, err
	}

	msg, err := s.chat.Post(ctx, chatDto.PostRequest{
		UserID:     identity.UserID,
		RoomNumber: identity.RoomNumber,
		GuestName:  identity.Name,
		Text:       req.ChatText(),
	})
	if err != nil {
		return res, fmt.Errorf("failed to send request message: %w", err)
	}

	// only once the message is stored, so a failed submit leaves no profile behind
	if !identity.HasProfile() {
		created, profileErr := s.guest.EnsureProfile(ctx, identity)
		if profileErr != nil {
			log.Warn().Err(profileErr).Str("user_id", userID).Msg("failed to create guest profile, continuing without one")
		} else {
			identity = created
		}
	}

	res.ChatMessageID = msg.ID
	res.RoomNumber = identity.RoomNumber
	res.GuestName = identity.Name
	res.RoomID = s.lookupRoom(ctx, identity.RoomNumber)

	record, recordErr := s.request.Record(ctx, requestDto.RecordRequest{
		UserID:        identity.UserID,
		GuestID:       identity.GuestID,
		RoomID:        res.RoomID,
		RoomNumber:    identity.RoomNumber,
		GuestName:     identity.Name,
		Type:          strings.TrimSpace(req.Type),
		Description:   strings.TrimSpace(req.Description),
		CategoryID:    req.CategoryID,
		ItemID:        req.ItemID,
		ChatMessageID: msg.ID,
	})

	res.Success = true

	if recordErr != nil {
		log.Error().Err(recordErr).Str("chat_message_id", msg.ID).Msg("service request not stored, chat message kept")
		scope.AddEvent("service request not stored")

		res.Partial = true
		res.Message = messagePartial
	} else {
		res.ServiceRequestID = record.ID
		res.Message = messageSubmitted
	}

	s.publish(ctx, req, res, identity.UserID)

	return res, nil
}

// lookupRoom resolves a room number to its id. Unknown numbers and lookup errors give "".
func (s *serviceImpl) lookupRoom(ctx context.Context, roomNumber string) string {
	room, err := s.room.GetByNumber(ctx, roomNumber)
	if err != nil {
		log.Info().Err(err).Str("room_number", roomNumber).Msg("room not resolved, keeping room number only")

		return constant.Empty
	}

	return room.ID
}

func (s *serviceImpl) publish(ctx context.Context, req dto.SubmitRequest, res dto.SubmitResult, userID string) {
	if s.kafka == nil || len(s.cfg.Kafka.Brokers) == 0 {
		return
	}

	event := dto.SubmittedEvent{
		Event:            dto.EventSubmitted,
		UserID:           userID,
		GuestName:        res.GuestName,
		RoomNumber:       res.RoomNumber,
		RoomID:           res.RoomID,
		Type:             strings.TrimSpace(req.Type),
		Description:      strings.TrimSpace(req.Description),
		ChatMessageID:    res.ChatMessageID,
		ServiceRequestID: res.ServiceRequestID,
		Partial:          res.Partial,
		SubmittedAt:      timezone.Now(),
	}

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.ServiceRequest, kafka.Message{Key: res.ChatMessageID, Value: event})
	if err != nil {
		log.Error().Err(err).Str("chat_message_id", res.ChatMessageID).Msg("failed to publish submitted event")
	}
}
