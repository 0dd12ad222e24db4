package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ykatyhoney/sunflower-land/internal/eventlog"
)

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL event log repository
func NewEventLogRepository(db *pgxpool.Pool) eventlog.Repository {
	return &eventLogRepository{db: db}
}

// LogEvent stores an event in the database
func (r *eventLogRepository) LogEvent(ctx context.Context, eventType string, farmID *string, payload, metadata map[string]interface{}) error {
	query := `
		INSERT INTO events (event_type, farm_id, payload, metadata)
		VALUES ($1, $2, $3, $4)
	`

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var metadataJSON []byte
	if metadata != nil {
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return err
		}
	}

	_, err = r.db.Exec(ctx, query, eventType, farmID, payloadJSON, metadataJSON)
	return err
}

// GetEvents retrieves events based on filter criteria
func (r *eventLogRepository) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, event_type, farm_id, payload, metadata, created_at
		FROM events
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.FarmID != nil {
		fmt.Fprintf(&queryBuilder, " AND farm_id = $%d", argNum)
		args = append(args, *filter.FarmID)
		argNum++
	}

	if filter.EventType != nil {
		fmt.Fprintf(&queryBuilder, " AND event_type = $%d", argNum)
		args = append(args, *filter.EventType)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	if filter.Until != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at <= $%d", argNum)
		args = append(args, *filter.Until)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// GetEventsByFarm retrieves the most recent events of one farm
func (r *eventLogRepository) GetEventsByFarm(ctx context.Context, farmID string, limit int) ([]eventlog.Event, error) {
	return r.GetEvents(ctx, eventlog.EventFilter{FarmID: &farmID, Limit: limit})
}

// CleanupOldEvents removes events created before cutoff
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

// scanEvents scans rows into Event structs
func scanEvents(rows pgx.Rows) ([]eventlog.Event, error) {
	var events []eventlog.Event

	for rows.Next() {
		var evt eventlog.Event
		var payloadJSON, metadataJSON []byte

		err := rows.Scan(
			&evt.ID,
			&evt.EventType,
			&evt.FarmID,
			&payloadJSON,
			&metadataJSON,
			&evt.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, err
		}

		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &evt.Metadata); err != nil {
				return nil, err
			}
		}

		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
