package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

type sqliteProfileRepository struct {
	db *sql.DB
}

// NewSQLiteProfileRepository SQLite asosidagi profile repository
func NewSQLiteProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &sqliteProfileRepository{db: db}
}

// Save profilni saqlash
func (s *sqliteProfileRepository) Save(ctx context.Context, profile entity.AssistantProfile) error {
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO profiles (user_id, assistant_name, owner_name, updated_ns) VALUES (?, ?, ?, ?)`,
		profile.UserID, profile.AssistantName, profile.OwnerName, profile.UpdatedAt.UnixNano())
	return err
}

// Get profilni olish
func (s *sqliteProfileRepository) Get(ctx context.Context, userID string) (*entity.AssistantProfile, error) {
	var p entity.AssistantProfile
	var updated int64
	err := s.db.QueryRowContext(ctx,
		`SELECT user_id, assistant_name, owner_name, updated_ns FROM profiles WHERE user_id = ?`, userID).
		Scan(&p.UserID, &p.AssistantName, &p.OwnerName, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Unix(0, updated)
	return &p, nil
}
