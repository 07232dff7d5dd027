package services

import (
	"context"
	"errors"
	"time"

	"github.com/MehulKanani556/Dance-Fitme/models"

	"gorm.io/gorm"
)

// StatsStore is the persistence surface the aggregation engine needs. The
// gorm implementation below is used in production; tests substitute an
// in-memory store.
type StatsStore interface {
	// SessionByDate returns the session row for (userID, day at local
	// midnight), or ErrNotFound.
	SessionByDate(ctx context.Context, userID uint, day time.Time) (*models.DanceSession, error)

	// SessionsInRange returns all sessions in [from, to] ordered by date
	// ascending.
	SessionsInRange(ctx context.Context, userID uint, from, to time.Time) ([]models.DanceSession, error)

	// AllSessions returns the user's full history ordered by date ascending.
	AllSessions(ctx context.Context, userID uint) ([]models.DanceSession, error)

	SaveSession(ctx context.Context, sess *models.DanceSession) error

	// Rollup returns the user's lifetime summary, or ErrNotFound.
	Rollup(ctx context.Context, userID uint) (*models.UserTotalStats, error)

	SaveRollup(ctx context.Context, rollup *models.UserTotalStats) error

	// Transaction runs fn against a store bound to a single transaction so
	// the upsert-then-rollup sequence commits or rolls back as one unit.
	Transaction(ctx context.Context, fn func(StatsStore) error) error
}

type gormStatsStore struct{ db *gorm.DB }

func NewGormStatsStore(db *gorm.DB) StatsStore { return &gormStatsStore{db: db} }

func (s *gormStatsStore) SessionByDate(ctx context.Context, userID uint, day time.Time) (*models.DanceSession, error) {
	var sess models.DanceSession
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		First(&sess).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sess, nil
}

func (s *gormStatsStore) SessionsInRange(ctx context.Context, userID uint, from, to time.Time) ([]models.DanceSession, error) {
	var sessions []models.DanceSession
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&sessions).Error
	return sessions, err
}

func (s *gormStatsStore) AllSessions(ctx context.Context, userID uint) ([]models.DanceSession, error) {
	var sessions []models.DanceSession
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&sessions).Error
	return sessions, err
}

func (s *gormStatsStore) SaveSession(ctx context.Context, sess *models.DanceSession) error {
	return s.db.WithContext(ctx).Save(sess).Error
}

func (s *gormStatsStore) Rollup(ctx context.Context, userID uint) (*models.UserTotalStats, error) {
	var rollup models.UserTotalStats
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&rollup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rollup, nil
}

func (s *gormStatsStore) SaveRollup(ctx context.Context, rollup *models.UserTotalStats) error {
	return s.db.WithContext(ctx).Save(rollup).Error
}

func (s *gormStatsStore) Transaction(ctx context.Context, fn func(StatsStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStatsStore{db: tx})
	})
}
