package notifier

import (
	"concierge/infras/kafka"
	"concierge/infras/otel"
	"concierge/internal/domains/chat/hub"
	"concierge/internal/domains/submission/model/dto"
	"concierge/shared/constant"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const EventRequest = "request"

// StaffNotice is the realtime frame staff consoles receive for a new guest request.
type StaffNotice struct {
	Type    string             `json:"type"`
	UserID  string             `json:"user_id"`
	Request dto.SubmittedEvent `json:"request"`
}

type Notifier struct {
	broadcaster hub.Broadcaster
	otel        otel.Otel
}

func New(broadcaster hub.Broadcaster, otel otel.Otel) *Notifier {
	return &Notifier{
		broadcaster: broadcaster,
		otel:        otel,
	}
}

// Handle relays one submission event to the staff channel. Unknown event names and
// payloads that do not decode are logged and acknowledged, since retrying them cannot help.
// A failed publish is returned so the message is retried.
func (n *Notifier) Handle(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Notify")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key, event, decodeErr := kafka.Decode[dto.SubmittedEvent](msg)
	if decodeErr != nil {
		log.Error().Err(decodeErr).Str("key", key).Int64("offset", msg.Offset).Msg("dropping undecodable submission event")

		return nil
	}

	if event.Event != dto.EventSubmitted {
		log.Warn().Str("key", key).Str("event", event.Event).Msg("skipping unexpected event")

		return nil
	}

	notice := StaffNotice{
		Type:    EventRequest,
		UserID:  event.UserID,
		Request: event,
	}

	if err = n.broadcaster.PublishStaff(ctx, notice); err != nil {
		return fmt.Errorf("failed to notify staff: %w", err)
	}

	log.Info().Str("user_id", event.UserID).Str("room_number", event.RoomNumber).Msg("staff notified of guest request")

	return nil
}
