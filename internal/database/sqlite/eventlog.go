package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ykatyhoney/sunflower-land/internal/eventlog"
)

type eventRow struct {
	ID        int64          `db:"id"`
	EventType string         `db:"event_type"`
	FarmID    sql.NullString `db:"farm_id"`
	Payload   string         `db:"payload"`
	Metadata  sql.NullString `db:"metadata"`
	CreatedAt int64          `db:"created_at"`
}

type eventLogRepository struct {
	db  *DB
	now func() time.Time
}

// NewEventLogRepository creates a SQLite event log repository
func NewEventLogRepository(db *DB) eventlog.Repository {
	return &eventLogRepository{db: db, now: time.Now}
}

func (r *eventLogRepository) LogEvent(ctx context.Context, eventType string, farmID *string, payload, metadata map[string]interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var metadataJSON sql.NullString
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		metadataJSON = sql.NullString{String: string(raw), Valid: true}
	}

	_, err = r.db.conn.ExecContext(ctx, `
		INSERT INTO events (event_type, farm_id, payload, metadata, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		eventType, farmID, string(payloadJSON), metadataJSON, r.now().UnixMilli())
	return err
}

func (r *eventLogRepository) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	var (
		query strings.Builder
		args  []interface{}
	)
	query.WriteString(`SELECT id, event_type, farm_id, payload, metadata, created_at FROM events WHERE 1=1`)

	if filter.FarmID != nil {
		query.WriteString(" AND farm_id = ?")
		args = append(args, *filter.FarmID)
	}
	if filter.EventType != nil {
		query.WriteString(" AND event_type = ?")
		args = append(args, *filter.EventType)
	}
	if filter.Since != nil {
		query.WriteString(" AND created_at >= ?")
		args = append(args, filter.Since.UnixMilli())
	}
	if filter.Until != nil {
		query.WriteString(" AND created_at <= ?")
		args = append(args, filter.Until.UnixMilli())
	}

	query.WriteString(" ORDER BY created_at DESC, id DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	var rows []eventRow
	if err := r.db.conn.SelectContext(ctx, &rows, query.String(), args...); err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}

	events := make([]eventlog.Event, 0, len(rows))
	for _, row := range rows {
		evt := eventlog.Event{
			ID:        row.ID,
			EventType: row.EventType,
			CreatedAt: time.UnixMilli(row.CreatedAt).UTC(),
		}
		if row.FarmID.Valid {
			id := row.FarmID.String
			evt.FarmID = &id
		}
		if err := json.Unmarshal([]byte(row.Payload), &evt.Payload); err != nil {
			return nil, fmt.Errorf("decode payload: %w", err)
		}
		if row.Metadata.Valid {
			if err := json.Unmarshal([]byte(row.Metadata.String), &evt.Metadata); err != nil {
				return nil, fmt.Errorf("decode metadata: %w", err)
			}
		}
		events = append(events, evt)
	}
	return events, nil
}

func (r *eventLogRepository) GetEventsByFarm(ctx context.Context, farmID string, limit int) ([]eventlog.Event, error) {
	return r.GetEvents(ctx, eventlog.EventFilter{FarmID: &farmID, Limit: limit})
}

func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.conn.ExecContext(ctx, `DELETE FROM events WHERE created_at < ?`, cutoff.UnixMilli())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
