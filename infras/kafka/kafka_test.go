package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomEvent struct {
	RoomNumber string    `json:"room_number"`
	At         time.Time `json:"at"`
}

func TestMessage_RoundTrip(t *testing.T) {
	at := time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)
	msg := Message{Key: "msg-1", Value: roomEvent{RoomNumber: "204", At: at}}

	encoded, err := msg.toKafka("service-requests")
	require.NoError(t, err)

	assert.Equal(t, "service-requests", encoded.Topic)
	assert.Equal(t, []byte("msg-1"), encoded.Key)
	assert.JSONEq(t, `{"room_number":"204","at":"2025-07-01T09:30:00Z"}`, string(encoded.Value))

	key, event, err := Decode[roomEvent](encoded)
	require.NoError(t, err)

	assert.Equal(t, "msg-1", key)
	assert.Equal(t, "204", event.RoomNumber)
	assert.True(t, event.At.Equal(at))
}

func TestMessage_Unencodable(t *testing.T) {
	msg := Message{Key: "k", Value: make(chan int)}

	_, err := msg.toKafka("service-requests")
	assert.Error(t, err)
}

func TestDecode_Malformed(t *testing.T) {
	key, _, err := Decode[roomEvent](kafkaGo.Message{Topic: "service-requests", Key: []byte("k"), Value: []byte("{")})

	assert.Equal(t, "k", key)
	assert.ErrorContains(t, err, "service-requests")
}

type queueReader struct {
	mu        sync.Mutex
	pending   []kafkaGo.Message
	fetched   int
	committed []int64
}

func (q *queueReader) FetchMessage(ctx context.Context) (kafkaGo.Message, error) {
	q.mu.Lock()

	if len(q.pending) > 0 {
		msg := q.pending[0]
		q.pending = q.pending[1:]
		q.fetched++
		q.mu.Unlock()

		return msg, nil
	}

	q.mu.Unlock()

	<-ctx.Done()

	return kafkaGo.Message{}, ctx.Err()
}

func (q *queueReader) CommitMessages(_ context.Context, msgs ...kafkaGo.Message) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, msg := range msgs {
		q.committed = append(q.committed, msg.Offset)
	}

	return nil
}

func TestConsume_RetriesBeforeCommitting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &queueReader{pending: []kafkaGo.Message{{Offset: 1}, {Offset: 2}}}

	var attempts []int64

	consume(ctx, reader, "service-requests", func(_ context.Context, msg kafkaGo.Message) error {
		attempts = append(attempts, msg.Offset)

		if msg.Offset == 1 && len(attempts) < 3 {
			return errors.New("redis: connection refused")
		}

		if msg.Offset == 2 {
			cancel()
		}

		return nil
	}, time.Millisecond)

	assert.Equal(t, []int64{1, 1, 1, 2}, attempts)
	assert.Equal(t, []int64{1, 2}, reader.committed)
}

func TestConsume_StopsWithoutSkippingAFailedMessage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &queueReader{pending: []kafkaGo.Message{{Offset: 7}, {Offset: 8}}}
	calls := 0

	done := make(chan struct{})

	go func() {
		defer close(done)

		consume(ctx, reader, "service-requests", func(context.Context, kafkaGo.Message) error {
			calls++
			if calls == 3 {
				cancel()
			}

			return errors.New("redis: connection refused")
		}, time.Millisecond)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not stop")
	}

	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, reader.fetched)
	assert.Empty(t, reader.committed)
}

func TestWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	assert.True(t, wait(ctx, time.Millisecond))

	cancel()

	assert.False(t, wait(ctx, time.Hour))
}
