//go:build unit

package changefeed

import (
	"context"
	"sync"
	"testing"
	"time"

	"coworking-booking/internal/domain/event"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/shared"
	sharedmock "coworking-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var at = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func bookingEvent(t *testing.T, typ event.Type) event.Event {
	t.Helper()
	e, err := event.New(typ, uuid.New(), uuid.New(), event.BookingPayload{
		OwnerID: uuid.New(),
		Room:    "Sala de Reunião 1",
		Title:   "Planning",
		Start:   at.Add(24 * time.Hour),
		End:     at.Add(26 * time.Hour),
	}, at)
	require.NoError(t, err)
	return e
}

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func (w *fakeWriter) written() []kafka.Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]kafka.Message(nil), w.msgs...)
}

// fakeReader hands out queued messages, then blocks until ctx is done.
type fakeReader struct {
	queue     chan kafka.Message
	mu        sync.Mutex
	committed []kafka.Message
}

func newFakeReader(msgs ...kafka.Message) *fakeReader {
	r := &fakeReader{queue: make(chan kafka.Message, len(msgs))}
	for i, m := range msgs {
		m.Offset = int64(i)
		r.queue <- m
	}
	return r
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case m := <-r.queue:
		return m, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

func (r *fakeReader) commits() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.committed)
}

func TestMessageCodec(t *testing.T) {
	e := bookingEvent(t, event.TypeBookingDeleted)

	msg, err := encode(e)
	require.NoError(t, err)
	assert.Equal(t, []byte(e.EntityID.String()), msg.Key)
	assert.Equal(t, e.Type.String(), header(msg, HeaderEventType))
	assert.Equal(t, e.ID.String(), header(msg, HeaderEventID))

	got, err := decode(msg)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.True(t, e.OccurredAt.Equal(got.OccurredAt))

	var p event.BookingPayload
	require.NoError(t, got.Decode(&p))
	assert.Equal(t, "Planning", p.Title)

	t.Run("type falls back to the header", func(t *testing.T) {
		m := kafka.Message{
			Value:   []byte(`{"id":"` + e.ID.String() + `"}`),
			Headers: []kafka.Header{{Key: HeaderEventType, Value: []byte("profile.approved")}},
		}
		got, err := decode(m)
		require.NoError(t, err)
		assert.Equal(t, event.TypeProfileApproved, got.Type)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := decode(kafka.Message{Value: []byte("{not json")})
		assert.True(t, errs.Is(err, ErrMalformedMessage))

		_, err = decode(kafka.Message{Value: []byte(`{}`)})
		assert.True(t, errs.Is(err, ErrMalformedMessage))
	})
}

func TestDeadLetter(t *testing.T) {
	msg, err := encode(bookingEvent(t, event.TypeBookingCreated))
	require.NoError(t, err)
	msg.Headers = append(msg.Headers, kafka.Header{Key: HeaderRetryCount, Value: []byte("1")})

	dl := deadLetter(msg, "coworking.changes", errs.New("constraint violated"), 4, at)

	assert.Equal(t, msg.Value, dl.Value)
	assert.Equal(t, "coworking.changes", header(dl, HeaderOriginalTopic))
	assert.Equal(t, "constraint violated", header(dl, HeaderDLQError))
	assert.Equal(t, "4", header(dl, HeaderRetryCount))
	assert.Equal(t, "2024-03-01T12:00:00Z", header(dl, HeaderDLQTimestamp))

	retries := 0
	for _, h := range dl.Headers {
		if h.Key == HeaderRetryCount {
			retries++
		}
	}
	assert.Equal(t, 1, retries)
}

func TestKafkaPublisher(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w)
	e := bookingEvent(t, event.TypeBookingCreated)

	require.NoError(t, p.Publish(context.Background(), e))
	require.Len(t, w.written(), 1)
	assert.Equal(t, e.ID.String(), header(w.written()[0], HeaderEventID))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
	assert.ErrorIs(t, p.Publish(context.Background(), e), ErrPublisherClosed)
	require.NoError(t, p.Close())
}

type relayFixture struct {
	uow    *sharedmock.MockUnitOfWork
	outbox *sharedmock.MockOutboxRepository
}

func newRelayFixture(t *testing.T) relayFixture {
	ctrl := gomock.NewController(t)
	f := relayFixture{
		uow:    sharedmock.NewMockUnitOfWork(ctrl),
		outbox: sharedmock.NewMockOutboxRepository(ctrl),
	}
	tx := sharedmock.NewMockTx(ctrl)
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	tx.EXPECT().Outbox().Return(f.outbox).AnyTimes()
	tx.EXPECT().DB().Return(sqlc.DBTX(nil)).AnyTimes()
	return f
}

type fakePublisher struct {
	failOn uuid.UUID
	sent   []uuid.UUID
}

func (p *fakePublisher) Publish(_ context.Context, e event.Event) error {
	if e.ID == p.failOn {
		return errs.New("broker unavailable")
	}
	p.sent = append(p.sent, e.ID)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func TestRelayRunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks the whole batch", func(t *testing.T) {
		f := newRelayFixture(t)
		batch := []event.Event{bookingEvent(t, event.TypeBookingCreated), bookingEvent(t, event.TypeBookingDeleted)}
		pub := &fakePublisher{}

		f.outbox.EXPECT().ClaimBatch(gomock.Any(), gomock.Any(), int32(10)).Return(batch, nil)
		for _, e := range batch {
			f.outbox.EXPECT().MarkPublished(gomock.Any(), gomock.Any(), e.ID, at).Return(nil)
		}

		n, err := NewRelay(f.uow, pub, clock.NewManualClock(at), 10, 3, time.Second).RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []uuid.UUID{batch[0].ID, batch[1].ID}, pub.sent)
	})

	t.Run("stops at the first failed publish", func(t *testing.T) {
		f := newRelayFixture(t)
		batch := []event.Event{
			bookingEvent(t, event.TypeBookingCreated),
			bookingEvent(t, event.TypeBookingCreated),
			bookingEvent(t, event.TypeBookingCreated),
		}
		pub := &fakePublisher{failOn: batch[1].ID}

		f.outbox.EXPECT().ClaimBatch(gomock.Any(), gomock.Any(), int32(100)).Return(batch, nil)
		f.outbox.EXPECT().MarkPublished(gomock.Any(), gomock.Any(), batch[0].ID, at).Return(nil)
		f.outbox.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), batch[1].ID, "broker unavailable", int32(3), at).Return(false, nil)

		n, err := NewRelay(f.uow, pub, clock.NewManualClock(at), 0, 0, 0).RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, []uuid.UUID{batch[0].ID}, pub.sent)
	})

	t.Run("moves past an event that ran out of attempts", func(t *testing.T) {
		f := newRelayFixture(t)
		batch := []event.Event{
			bookingEvent(t, event.TypeBookingCreated),
			bookingEvent(t, event.TypeBookingDeleted),
		}
		pub := &fakePublisher{failOn: batch[0].ID}

		gomock.InOrder(
			f.outbox.EXPECT().ClaimBatch(gomock.Any(), gomock.Any(), int32(10)).Return(batch, nil),
			f.outbox.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), batch[0].ID, "broker unavailable", int32(5), at).Return(true, nil),
			f.outbox.EXPECT().MarkPublished(gomock.Any(), gomock.Any(), batch[1].ID, at).Return(nil),
		)

		n, err := NewRelay(f.uow, pub, clock.NewManualClock(at), 10, 5, time.Second).RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, []uuid.UUID{batch[1].ID}, pub.sent)
	})

	t.Run("failure bookkeeping error aborts the batch", func(t *testing.T) {
		f := newRelayFixture(t)
		batch := []event.Event{bookingEvent(t, event.TypeBookingCreated)}
		pub := &fakePublisher{failOn: batch[0].ID}

		f.outbox.EXPECT().ClaimBatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(batch, nil)
		f.outbox.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), batch[0].ID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, errs.New("db down"))

		n, err := NewRelay(f.uow, pub, clock.NewManualClock(at), 10, 3, time.Second).RunOnce(ctx)
		require.Error(t, err)
		assert.Zero(t, n)
	})

	t.Run("claim failure", func(t *testing.T) {
		f := newRelayFixture(t)
		f.outbox.EXPECT().ClaimBatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.New("db down"))

		n, err := NewRelay(f.uow, &fakePublisher{}, clock.NewManualClock(at), 10, 3, time.Second).RunOnce(ctx)
		require.Error(t, err)
		assert.Zero(t, n)
	})
}

type fakeApplier struct {
	mu       sync.Mutex
	failures map[uuid.UUID][]error
	applied  []uuid.UUID
}

func (a *fakeApplier) ApplyEvent(_ context.Context, e event.Event) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if queue := a.failures[e.ID]; len(queue) > 0 {
		a.failures[e.ID] = queue[1:]
		return 0, queue[0]
	}
	a.applied = append(a.applied, e.ID)
	return 1, nil
}

func (a *fakeApplier) appliedIDs() []uuid.UUID {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]uuid.UUID(nil), a.applied...)
}

func TestNotifier(t *testing.T) {
	created := bookingEvent(t, event.TypeBookingCreated)
	deleted := bookingEvent(t, event.TypeBookingDeleted)
	flaky := bookingEvent(t, event.TypeBookingDeleted)
	poisoned := bookingEvent(t, event.TypeBookingDeleted)

	var msgs []kafka.Message
	for _, e := range []event.Event{created, deleted, flaky, poisoned} {
		m, err := encode(e)
		require.NoError(t, err)
		msgs = append(msgs, m)
	}
	msgs = append(msgs, kafka.Message{Value: []byte("garbage")})

	reader := newFakeReader(msgs...)
	dlq := &fakeWriter{}
	sub := newKafkaSubscriber(reader, dlq, "coworking.changes")

	applier := &fakeApplier{failures: map[uuid.UUID][]error{
		flaky.ID:    {errs.Mark(errs.New("conn reset"), errs.ErrStorageUnavailable)},
		poisoned.ID: {errs.New("payload missing owner")},
	}}
	n := NewNotifier(sub, applier, []event.Type{event.TypeBookingDeleted}, 2)
	n.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- n.Run(ctx) }()

	// every message, delivered or skipped, ends up committed
	require.Eventually(t, func() bool { return reader.commits() == len(msgs) }, 2*time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	require.NoError(t, sub.Close())

	assert.ElementsMatch(t, []uuid.UUID{deleted.ID, flaky.ID}, applier.appliedIDs())

	// the consumer rejects garbage concurrently with the notifier, so order is free
	dead := map[string]kafka.Message{}
	for _, m := range dlq.written() {
		dead[string(m.Value)] = m
	}
	require.Len(t, dead, 2)

	poisonMsg, ok := dead[string(msgs[3].Value)]
	require.True(t, ok)
	assert.Equal(t, poisoned.ID.String(), header(poisonMsg, HeaderEventID))
	assert.Equal(t, "1", header(poisonMsg, HeaderRetryCount))
	assert.Equal(t, "payload missing owner", header(poisonMsg, HeaderDLQError))

	garbage, ok := dead["garbage"]
	require.True(t, ok)
	assert.Equal(t, "0", header(garbage, HeaderRetryCount))
}

func TestSubscribeTwice(t *testing.T) {
	sub := newKafkaSubscriber(newFakeReader(), nil, "coworking.changes")
	ctx, cancel := context.WithCancel(context.Background())

	_, err := sub.Subscribe(ctx)
	require.NoError(t, err)
	_, err = sub.Subscribe(ctx)
	assert.ErrorIs(t, err, ErrAlreadySubscribed)

	cancel()
	require.NoError(t, sub.Close())
}
