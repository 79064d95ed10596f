package changefeed

import (
	"encoding/json"
	"strconv"
	"time"

	"coworking-booking/internal/domain/event"
	"coworking-booking/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

const (
	HeaderEventID       = "event-id"
	HeaderEventType     = "event-type"
	HeaderSource        = "source"
	HeaderRetryCount    = "retry-count"
	HeaderOriginalTopic = "original-topic"
	HeaderDLQError      = "dlq-error"
	HeaderDLQTimestamp  = "dlq-timestamp"

	source = "coworking-booking"
)

var ErrMalformedMessage = errs.New("malformed change event message")

// encode keys the message by entity id so events of one entity share a partition.
func encode(e event.Event) (kafka.Message, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, errs.Wrap(err, "failed to encode change event")
	}
	return kafka.Message{
		Key:   []byte(e.EntityID.String()),
		Value: value,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(e.ID.String())},
			{Key: HeaderEventType, Value: []byte(e.Type.String())},
			{Key: HeaderSource, Value: []byte(source)},
		},
	}, nil
}

func decode(msg kafka.Message) (event.Event, error) {
	var e event.Event
	if err := json.Unmarshal(msg.Value, &e); err != nil {
		return event.Event{}, errs.Mark(errs.Wrap(err, "failed to decode change event"), ErrMalformedMessage)
	}
	if e.Type == "" {
		if t := header(msg, HeaderEventType); t != "" {
			e.Type = event.Type(t)
		} else {
			return event.Event{}, ErrMalformedMessage
		}
	}
	return e, nil
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// deadLetter copies msg for the DLQ topic with the failure recorded in headers.
func deadLetter(msg kafka.Message, topic string, cause error, attempts int, now time.Time) kafka.Message {
	headers := make([]kafka.Header, 0, len(msg.Headers)+4)
	for _, h := range msg.Headers {
		switch h.Key {
		case HeaderOriginalTopic, HeaderDLQError, HeaderDLQTimestamp, HeaderRetryCount:
			continue
		}
		headers = append(headers, h)
	}
	headers = append(headers,
		kafka.Header{Key: HeaderOriginalTopic, Value: []byte(topic)},
		kafka.Header{Key: HeaderDLQError, Value: []byte(cause.Error())},
		kafka.Header{Key: HeaderDLQTimestamp, Value: []byte(now.UTC().Format(time.RFC3339))},
		kafka.Header{Key: HeaderRetryCount, Value: []byte(strconv.Itoa(attempts))},
	)
	return kafka.Message{
		Key:     msg.Key,
		Value:   msg.Value,
		Time:    now,
		Headers: headers,
	}
}
