package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

type sqliteHistoryRepository struct {
	db      *sql.DB
	maxSize int
}

// NewSQLiteHistoryRepository SQLite asosidagi history repository
func NewSQLiteHistoryRepository(db *sql.DB, maxSize int) repository.HistoryRepository {
	return &sqliteHistoryRepository{db: db, maxSize: maxSize}
}

// Append yozuvni saqlash
func (s *sqliteHistoryRepository) Append(ctx context.Context, exchange entity.Exchange) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	// Vaqt tamg'alari kamaymasligi uchun oxirgi yozuv bilan solishtiramiz
	var lastNs int64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(ts_ns), 0) FROM exchanges WHERE user_id = ?`, exchange.UserID).Scan(&lastNs)
	if err != nil {
		tx.Rollback()
		return err
	}
	ts := exchange.Timestamp.UnixNano()
	if ts < lastNs {
		ts = lastNs
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO exchanges (id, user_id, question, answer, ts_ns) VALUES (?, ?, ?, ?, ?)`,
		exchange.ID, exchange.UserID, exchange.Question, exchange.Answer, ts)
	if err != nil {
		tx.Rollback()
		return err
	}

	// Eski yozuvlarni kesish
	if s.maxSize > 0 {
		_, err = tx.ExecContext(ctx, `
DELETE FROM exchanges
WHERE seq IN (
  SELECT seq FROM exchanges
  WHERE user_id = ?
  ORDER BY seq DESC
  LIMIT -1 OFFSET ?
)`, exchange.UserID, s.maxSize)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// List foydalanuvchi tarixini olish
func (s *sqliteHistoryRepository) List(ctx context.Context, userID string) ([]entity.Exchange, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, question, answer, ts_ns FROM exchanges WHERE user_id = ? ORDER BY seq ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entity.Exchange
	for rows.Next() {
		var ex entity.Exchange
		var ts int64
		if err := rows.Scan(&ex.ID, &ex.UserID, &ex.Question, &ex.Answer, &ts); err != nil {
			return nil, err
		}
		ex.Timestamp = time.Unix(0, ts)
		list = append(list, ex)
	}
	return list, rows.Err()
}

// Clear foydalanuvchi tarixini tozalash
func (s *sqliteHistoryRepository) Clear(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM exchanges WHERE user_id = ?`, userID)
	return err
}
