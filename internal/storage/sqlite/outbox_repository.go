package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

// OutboxRepository хранит события в том же файле, что и сущности:
// backlog переживает перезапуск процесса вместе с данными.
type OutboxRepository struct {
	store *Store
}

func NewOutboxRepository(store *Store) *OutboxRepository {
	return &OutboxRepository{store: store}
}

func (r *OutboxRepository) Enqueue(msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	now := time.Now().UTC().UnixNano()

	if _, err := r.store.db.Exec(`
		INSERT INTO outbox_messages (
			id, aggregate_type, aggregate_id, event_type, payload,
			status, attempt_count, created_at, updated_at
		) VALUES (?,?,?,?,?,'pending',0,?,?)
	`,
		msg.ID, msg.AggregateType, msg.AggregateID, msg.EventType, msg.Payload, now, now,
	); err != nil {
		return domain.OutboxMessage{}, fmt.Errorf("enqueue outbox message: %w", err)
	}

	return msg, nil
}

func (r *OutboxRepository) PullPending(limit int) ([]domain.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.store.db.Query(`
		SELECT id, aggregate_type, aggregate_id, event_type, payload
		FROM outbox_messages
		WHERE status = 'pending'
		ORDER BY created_at, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("pull pending outbox messages: %w", err)
	}
	defer rows.Close()

	result := make([]domain.OutboxMessage, 0, limit)
	for rows.Next() {
		var msg domain.OutboxMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.AggregateType,
			&msg.AggregateID,
			&msg.EventType,
			&msg.Payload,
		); err != nil {
			return nil, fmt.Errorf("scan outbox message: %w", err)
		}
		result = append(result, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outbox rows: %w", err)
	}

	return result, nil
}

func (r *OutboxRepository) Stats() (domain.OutboxStats, error) {
	var (
		stats  domain.OutboxStats
		oldest int64
	)

	if err := r.store.db.QueryRow(`
		SELECT COUNT(*), COALESCE(MIN(created_at), 0)
		FROM outbox_messages
		WHERE status = 'pending'
	`).Scan(&stats.PendingCount, &oldest); err != nil {
		return domain.OutboxStats{}, fmt.Errorf("outbox stats query failed: %w", err)
	}

	if stats.PendingCount > 0 && oldest > 0 {
		stats.OldestPendingAt = time.Unix(0, oldest).UTC()
	}

	return stats, nil
}

func (r *OutboxRepository) MarkSent(id string) error {
	return r.markStatus(id, "sent")
}

func (r *OutboxRepository) MarkFailed(id string) error {
	return r.markStatus(id, "failed")
}

func (r *OutboxRepository) markStatus(id, status string) error {
	res, err := r.store.db.Exec(`
		UPDATE outbox_messages
		SET status = ?,
		    attempt_count = attempt_count + 1,
		    updated_at = ?
		WHERE id = ?
	`, status, time.Now().UTC().UnixNano(), id)
	if err != nil {
		return fmt.Errorf("mark outbox message as %s: %w", status, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for outbox %s: %w", status, err)
	}
	if affected == 0 {
		return domain.Storagef("outbox message %s is missing", id)
	}

	return nil
}

var _ domain.OutboxRepository = (*OutboxRepository)(nil)
