package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/MehulKanani556/Dance-Fitme/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func (c *fixedClock) advance(days int) { c.now = c.now.AddDate(0, 0, days) }

// memStatsStore is an in-memory StatsStore for exercising the engine without
// a database.
type memStatsStore struct {
	sessions []models.DanceSession
	rollups  map[uint]models.UserTotalStats
	nextID   uint
}

func newMemStatsStore() *memStatsStore {
	return &memStatsStore{rollups: make(map[uint]models.UserTotalStats)}
}

func (m *memStatsStore) SessionByDate(_ context.Context, userID uint, day time.Time) (*models.DanceSession, error) {
	for i := range m.sessions {
		if m.sessions[i].UserID == userID && m.sessions[i].Date.Equal(day) {
			cp := m.sessions[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStatsStore) SessionsInRange(_ context.Context, userID uint, from, to time.Time) ([]models.DanceSession, error) {
	var out []models.DanceSession
	for _, s := range m.sessions {
		if s.UserID == userID && !s.Date.Before(from) && !s.Date.After(to) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *memStatsStore) AllSessions(_ context.Context, userID uint) ([]models.DanceSession, error) {
	var out []models.DanceSession
	for _, s := range m.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *memStatsStore) SaveSession(_ context.Context, sess *models.DanceSession) error {
	if sess.ID == 0 {
		m.nextID++
		sess.ID = m.nextID
		m.sessions = append(m.sessions, *sess)
		return nil
	}
	for i := range m.sessions {
		if m.sessions[i].ID == sess.ID {
			m.sessions[i] = *sess
			return nil
		}
	}
	m.sessions = append(m.sessions, *sess)
	return nil
}

func (m *memStatsStore) Rollup(_ context.Context, userID uint) (*models.UserTotalStats, error) {
	rollup, ok := m.rollups[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := rollup
	return &cp, nil
}

func (m *memStatsStore) SaveRollup(_ context.Context, rollup *models.UserTotalStats) error {
	if rollup.ID == 0 {
		m.nextID++
		rollup.ID = m.nextID
	}
	m.rollups[rollup.UserID] = *rollup
	return nil
}

func (m *memStatsStore) Transaction(_ context.Context, fn func(StatsStore) error) error {
	return fn(m)
}

// March 10 2025 is a Monday, which keeps the weekly windows predictable.
func newTestEngine() (*DanceStatsService, *memStatsStore, *fixedClock) {
	store := newMemStatsStore()
	clock := &fixedClock{now: time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)}
	return NewDanceStatsService(store, clock), store, clock
}

const testUser uint = 7

func TestRecordSessionMergesSameDay(t *testing.T) {
	svc, store, _ := newTestEngine()
	ctx := context.Background()

	_, _, err := svc.RecordSession(ctx, testUser, 30, 100)
	require.NoError(t, err)
	sess, rollup, err := svc.RecordSession(ctx, testUser, 15, 50)
	require.NoError(t, err)

	assert.Equal(t, 45, sess.DanceTimeInMin)
	assert.Equal(t, 150, sess.CaloriesBurned)
	assert.True(t, sess.IsDanceDay)
	assert.Len(t, store.sessions, 1, "same-day submissions must merge into one row")

	assert.Equal(t, 45, rollup.TotalDanceTimeInMin)
	assert.Equal(t, 150, rollup.TotalCaloriesBurned)
	assert.Equal(t, 1, rollup.TotalDanceDays)
}

func TestRecordSessionRejectsNegativeInput(t *testing.T) {
	svc, store, _ := newTestEngine()
	ctx := context.Background()

	var ve *ValidationError

	_, _, err := svc.RecordSession(ctx, testUser, -5, 100)
	require.Error(t, err)
	assert.True(t, errors.As(err, &ve))

	_, _, err = svc.RecordSession(ctx, testUser, 5, -100)
	require.Error(t, err)
	assert.True(t, errors.As(err, &ve))

	assert.Empty(t, store.sessions)
	assert.Empty(t, store.rollups)
}

func TestThreeDayStreak(t *testing.T) {
	svc, _, clock := newTestEngine()
	ctx := context.Background()

	_, _, err := svc.RecordSession(ctx, testUser, 30, 100)
	require.NoError(t, err)
	clock.advance(1)
	_, _, err = svc.RecordSession(ctx, testUser, 20, 80)
	require.NoError(t, err)
	clock.advance(1)
	_, rollup, err := svc.RecordSession(ctx, testUser, 25, 90)
	require.NoError(t, err)

	assert.Equal(t, 75, rollup.TotalDanceTimeInMin)
	assert.Equal(t, 270, rollup.TotalCaloriesBurned)
	assert.Equal(t, 3, rollup.TotalDanceDays)
	assert.Equal(t, 3, rollup.CurrentStreak)
	assert.Equal(t, 3, rollup.LongestStreak)
}

func TestBrokenStreak(t *testing.T) {
	svc, _, clock := newTestEngine()
	ctx := context.Background()

	_, _, err := svc.RecordSession(ctx, testUser, 30, 100)
	require.NoError(t, err)
	clock.advance(2) // skip a day
	_, rollup, err := svc.RecordSession(ctx, testUser, 25, 90)
	require.NoError(t, err)

	assert.Equal(t, 1, rollup.CurrentStreak)
	assert.Equal(t, 1, rollup.LongestStreak)
	assert.Equal(t, 2, rollup.TotalDanceDays)
}

func TestSameDayResubmissionKeepsStreaks(t *testing.T) {
	svc, _, clock := newTestEngine()
	ctx := context.Background()

	_, _, err := svc.RecordSession(ctx, testUser, 30, 100)
	require.NoError(t, err)
	clock.advance(1)
	_, before, err := svc.RecordSession(ctx, testUser, 20, 80)
	require.NoError(t, err)

	_, after, err := svc.RecordSession(ctx, testUser, 10, 40)
	require.NoError(t, err)

	assert.Equal(t, before.CurrentStreak, after.CurrentStreak)
	assert.Equal(t, before.LongestStreak, after.LongestStreak)
	assert.Equal(t, before.TotalDanceDays, after.TotalDanceDays)
	assert.Equal(t, before.TotalDanceTimeInMin+10, after.TotalDanceTimeInMin)
	assert.Equal(t, before.TotalCaloriesBurned+40, after.TotalCaloriesBurned)
}

func TestCurrentStreakNeverExceedsLongest(t *testing.T) {
	svc, _, clock := newTestEngine()
	ctx := context.Background()

	// Mix of consecutive days, same-day repeats and gaps.
	steps := []int{0, 1, 1, 0, 2, 1, 1, 3, 0, 1}
	for _, gap := range steps {
		clock.advance(gap)
		_, rollup, err := svc.RecordSession(ctx, testUser, 10, 30)
		require.NoError(t, err)
		assert.LessOrEqual(t, rollup.CurrentStreak, rollup.LongestStreak)
	}
}

func TestIncrementalMatchesRecompute(t *testing.T) {
	svc, store, clock := newTestEngine()
	ctx := context.Background()

	steps := []int{0, 1, 0, 1, 1, 0, 0, 1}
	for _, gap := range steps {
		clock.advance(gap)
		_, _, err := svc.RecordSession(ctx, testUser, 12, 35)
		require.NoError(t, err)
	}

	computed, err := svc.ComputeStreaks(ctx, testUser)
	require.NoError(t, err)
	rollup, err := store.Rollup(ctx, testUser)
	require.NoError(t, err)

	assert.Equal(t, computed.CurrentStreak, rollup.CurrentStreak)
	assert.Equal(t, computed.LongestStreak, rollup.LongestStreak)
	assert.Equal(t, computed.TotalDanceDays, rollup.TotalDanceDays)
	assert.Equal(t, computed.TotalDanceTimeInMin, rollup.TotalDanceTimeInMin)
	assert.Equal(t, computed.TotalCaloriesBurned, rollup.TotalCaloriesBurned)
}

func TestZeroHistory(t *testing.T) {
	svc, _, _ := newTestEngine()
	ctx := context.Background()

	computed, err := svc.ComputeStreaks(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 0, computed.CurrentStreak)
	assert.Equal(t, 0, computed.LongestStreak)
	assert.Equal(t, 0, computed.TotalDanceDays)

	total, err := svc.TotalStats(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, &StreakSummary{}, total)
}

func TestDailyStatsNotFound(t *testing.T) {
	svc, _, _ := newTestEngine()

	_, err := svc.DailyStats(context.Background(), testUser)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestWeeklyAggregate(t *testing.T) {
	svc, _, clock := newTestEngine()
	ctx := context.Background()

	// Monday.
	_, _, err := svc.RecordSession(ctx, testUser, 10, 40)
	require.NoError(t, err)
	clock.advance(2) // Wednesday, same ISO week
	_, _, err = svc.RecordSession(ctx, testUser, 20, 60)
	require.NoError(t, err)

	summary, err := svc.WeeklyStats(ctx, testUser)
	require.NoError(t, err)

	assert.Equal(t, 30, summary.TotalDanceTime)
	assert.Equal(t, 100, summary.TotalCaloriesBurned)
	require.Len(t, summary.Records, 2)
	assert.Equal(t, "2025-03-10", summary.Records[0].Date)
	assert.Equal(t, "2025-03-12", summary.Records[1].Date)
}

func TestMonthlyStatsWindow(t *testing.T) {
	svc, _, clock := newTestEngine()
	ctx := context.Background()

	_, _, err := svc.RecordSession(ctx, testUser, 10, 40) // March 10
	require.NoError(t, err)
	clock.advance(25) // April 4
	_, _, err = svc.RecordSession(ctx, testUser, 20, 60)
	require.NoError(t, err)

	march, err := svc.MonthlyStats(ctx, testUser, 3, 2025)
	require.NoError(t, err)
	require.Len(t, march.Records, 1)
	assert.Equal(t, 10, march.TotalDanceTime)

	// Defaults resolve to the clock's current month (April).
	current, err := svc.MonthlyStats(ctx, testUser, 0, 0)
	require.NoError(t, err)
	require.Len(t, current.Records, 1)
	assert.Equal(t, 20, current.TotalDanceTime)

	var ve *ValidationError
	_, err = svc.MonthlyStats(ctx, testUser, 13, 2025)
	require.Error(t, err)
	assert.True(t, errors.As(err, &ve))
}

func TestAggregateRejectsInvertedRange(t *testing.T) {
	svc, _, clock := newTestEngine()

	var ve *ValidationError
	_, err := svc.Aggregate(context.Background(), testUser, clock.Now(), clock.Now().AddDate(0, 0, -1))
	require.Error(t, err)
	assert.True(t, errors.As(err, &ve))
}

func TestTotalStatsHealsDivergentRollup(t *testing.T) {
	svc, store, clock := newTestEngine()
	ctx := context.Background()

	_, _, err := svc.RecordSession(ctx, testUser, 30, 100)
	require.NoError(t, err)
	clock.advance(1)
	_, _, err = svc.RecordSession(ctx, testUser, 20, 80)
	require.NoError(t, err)

	// Corrupt the stored rollup.
	bad := store.rollups[testUser]
	bad.CurrentStreak = 99
	bad.TotalDanceTimeInMin = 1
	store.rollups[testUser] = bad

	total, err := svc.TotalStats(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 2, total.CurrentStreak)
	assert.Equal(t, 2, total.LongestStreak)
	assert.Equal(t, 50, total.TotalDanceTimeInMin)

	healed, err := store.Rollup(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 2, healed.CurrentStreak)
	assert.Equal(t, 50, healed.TotalDanceTimeInMin)
	assert.Equal(t, 180, healed.TotalCaloriesBurned)
}

func TestCurrentStreakRecomputeStopsAtGap(t *testing.T) {
	svc, _, clock := newTestEngine()
	ctx := context.Background()

	_, _, err := svc.RecordSession(ctx, testUser, 30, 100) // day 1
	require.NoError(t, err)
	clock.advance(1)
	_, _, err = svc.RecordSession(ctx, testUser, 20, 80) // day 2
	require.NoError(t, err)
	clock.advance(2) // a day with no activity passes

	computed, err := svc.ComputeStreaks(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 0, computed.CurrentStreak, "streak ended before today")
	assert.Equal(t, 2, computed.LongestStreak)
}
