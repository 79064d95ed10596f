package converter

import (
	"coworking-booking/internal/domain/event"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/pgconv"
)

func EventToInsertParams(e event.Event) sqlc.InsertChangeEventParams {
	payload := []byte(e.Payload)
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	return sqlc.InsertChangeEventParams{
		ID:         e.ID,
		EventType:  e.Type.String(),
		EntityID:   e.EntityID,
		ActorID:    e.ActorID,
		Payload:    payload,
		OccurredAt: pgconv.TimeToPgtype(e.OccurredAt),
	}
}

func EventFromRow(row sqlc.ChangeEvents) event.Event {
	return event.Event{
		ID:         row.ID,
		Type:       event.Type(row.EventType),
		EntityID:   row.EntityID,
		ActorID:    row.ActorID,
		OccurredAt: pgconv.TimeFromPgtype(row.OccurredAt),
		Payload:    row.Payload,
	}
}
