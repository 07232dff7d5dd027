package services

import (
	"context"
	"errors"
	"time"

	"github.com/MehulKanani556/Dance-Fitme/models"

	"github.com/rs/zerolog/log"
)

// DanceStatsService is the dance-activity aggregation engine: it ingests one
// session per user per calendar day and maintains the lifetime rollup
// (totals, dance days, current/longest streak) alongside the raw records.
type DanceStatsService struct {
	store StatsStore
	clock Clock
}

func NewDanceStatsService(store StatsStore, clock Clock) *DanceStatsService {
	return &DanceStatsService{store: store, clock: clock}
}

// DayStat is one day's activity in a period report.
type DayStat struct {
	Date           string `json:"date"` // YYYY-MM-DD
	DanceTimeInMin int    `json:"danceTimeInMin"`
	CaloriesBurned int    `json:"caloriesBurned"`
}

// PeriodSummary is the result of an inclusive date-range aggregation.
type PeriodSummary struct {
	From                string    `json:"from"`
	To                  string    `json:"to"`
	Records             []DayStat `json:"result"`
	TotalDanceTime      int       `json:"totalDanceTime"`
	TotalCaloriesBurned int       `json:"totalCaloriesBurned"`
}

// StreakSummary is a full-history recomputation of the rollup fields.
type StreakSummary struct {
	TotalDanceDays      int `json:"totalDanceDays"`
	TotalDanceTimeInMin int `json:"totalDanceTimeInMin"`
	TotalCaloriesBurned int `json:"totalCaloriesBurned"`
	CurrentStreak       int `json:"currentStreak"`
	LongestStreak       int `json:"longestStreak"`
}

// RecordSession upserts today's session for the user and updates the lifetime
// rollup in the same transaction.
//
// A repeat submission on the same day adds to the day's minutes/calories and
// to the lifetime totals, but leaves the dance-day count and both streak
// fields unchanged.
func (s *DanceStatsService) RecordSession(ctx context.Context, userID uint, minutes, calories int) (*models.DanceSession, *models.UserTotalStats, error) {
	if minutes < 0 {
		return nil, nil, newValidationError("danceTimeInMin must not be negative")
	}
	if calories < 0 {
		return nil, nil, newValidationError("caloriesBurned must not be negative")
	}

	today := dayStart(s.clock.Now())

	var (
		sess   *models.DanceSession
		rollup *models.UserTotalStats
	)
	err := s.store.Transaction(ctx, func(st StatsStore) error {
		existing, err := st.SessionByDate(ctx, userID, today)
		isNewDay := errors.Is(err, ErrNotFound)
		if err != nil && !isNewDay {
			return err
		}

		if isNewDay {
			sess = &models.DanceSession{
				UserID:         userID,
				Date:           today,
				DanceTimeInMin: minutes,
				CaloriesBurned: calories,
				IsDanceDay:     true,
			}
		} else {
			sess = existing
			sess.DanceTimeInMin += minutes
			sess.CaloriesBurned += calories
			sess.IsDanceDay = true
		}
		if err := st.SaveSession(ctx, sess); err != nil {
			return err
		}

		rollup, err = st.Rollup(ctx, userID)
		if errors.Is(err, ErrNotFound) {
			rollup = &models.UserTotalStats{UserID: userID}
		} else if err != nil {
			return err
		}

		rollup.TotalDanceTimeInMin += minutes
		rollup.TotalCaloriesBurned += calories

		// Dance-day count and streaks move only on the first submission of
		// the day; later ones restate the same calendar day.
		if isNewDay {
			rollup.TotalDanceDays++

			yesterday, err := st.SessionByDate(ctx, userID, today.AddDate(0, 0, -1))
			switch {
			case err == nil && yesterday.IsDanceDay:
				rollup.CurrentStreak++
			case err == nil || errors.Is(err, ErrNotFound):
				rollup.CurrentStreak = 1
			default:
				return err
			}
			if rollup.CurrentStreak > rollup.LongestStreak {
				rollup.LongestStreak = rollup.CurrentStreak
			}
		}

		return st.SaveRollup(ctx, rollup)
	})
	if err != nil {
		return nil, nil, err
	}
	return sess, rollup, nil
}

// DailyStats returns today's session, or ErrNotFound when the user has not
// danced yet today.
func (s *DanceStatsService) DailyStats(ctx context.Context, userID uint) (*models.DanceSession, error) {
	return s.store.SessionByDate(ctx, userID, dayStart(s.clock.Now()))
}

// Aggregate sums all sessions in the inclusive range [from, to].
func (s *DanceStatsService) Aggregate(ctx context.Context, userID uint, from, to time.Time) (*PeriodSummary, error) {
	if to.Before(from) {
		return nil, newValidationError("end date must not precede start date")
	}

	sessions, err := s.store.SessionsInRange(ctx, userID, dayStart(from), dayEnd(to))
	if err != nil {
		return nil, err
	}

	out := &PeriodSummary{
		From:    dayKey(from),
		To:      dayKey(to),
		Records: make([]DayStat, 0, len(sessions)),
	}
	for _, sess := range sessions {
		out.Records = append(out.Records, DayStat{
			Date:           dayKey(sess.Date),
			DanceTimeInMin: sess.DanceTimeInMin,
			CaloriesBurned: sess.CaloriesBurned,
		})
		out.TotalDanceTime += sess.DanceTimeInMin
		out.TotalCaloriesBurned += sess.CaloriesBurned
	}
	return out, nil
}

// WeeklyStats aggregates the current ISO week, Monday through Sunday.
func (s *DanceStatsService) WeeklyStats(ctx context.Context, userID uint) (*PeriodSummary, error) {
	start, end := weekBounds(s.clock.Now())
	return s.Aggregate(ctx, userID, start, end)
}

// MonthlyStats aggregates one calendar month. Zero month/year default to the
// current month.
func (s *DanceStatsService) MonthlyStats(ctx context.Context, userID uint, month, year int) (*PeriodSummary, error) {
	now := s.clock.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return nil, newValidationError("month must be between 1 and 12")
	}
	start, end := monthBounds(year, time.Month(month), now.Location())
	return s.Aggregate(ctx, userID, start, end)
}

// ComputeStreaks rederives the rollup fields from the full session history.
// It is a pure function of stored records and is used both to answer total
// queries and to reconcile a drifted rollup.
func (s *DanceStatsService) ComputeStreaks(ctx context.Context, userID uint) (*StreakSummary, error) {
	sessions, err := s.store.AllSessions(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &StreakSummary{}
	danceDays := make(map[string]struct{})

	var prev time.Time
	havePrev := false
	running := 0
	for _, sess := range sessions {
		day := dayStart(sess.Date)
		out.TotalDanceTimeInMin += sess.DanceTimeInMin
		out.TotalCaloriesBurned += sess.CaloriesBurned

		if sess.DanceTimeInMin <= 0 {
			running = 0
			havePrev = false
			continue
		}
		danceDays[dayKey(day)] = struct{}{}

		switch {
		case !havePrev:
			running = 1
		case prev.AddDate(0, 0, 1).Equal(day):
			running++
		case prev.Equal(day):
			// second entry for the same day, streak holds
		default:
			running = 1
		}
		if running > out.LongestStreak {
			out.LongestStreak = running
		}
		prev = day
		havePrev = true
	}
	out.TotalDanceDays = len(danceDays)

	// Current streak: walk backward from today until the first gap.
	for day := dayStart(s.clock.Now()); ; day = day.AddDate(0, 0, -1) {
		if _, ok := danceDays[dayKey(day)]; !ok {
			break
		}
		out.CurrentStreak++
	}

	return out, nil
}

// TotalStats answers the lifetime view from a full recomputation. When the
// stored rollup disagrees with the recomputed values it is overwritten in
// place; the divergence is logged but never surfaced to the caller.
func (s *DanceStatsService) TotalStats(ctx context.Context, userID uint) (*StreakSummary, error) {
	summary, err := s.ComputeStreaks(ctx, userID)
	if err != nil {
		return nil, err
	}

	rollup, err := s.store.Rollup(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return summary, nil
	}
	if err != nil {
		return nil, err
	}

	if rollupDiverges(rollup, summary) {
		log.Warn().
			Uint("user_id", userID).
			Int("stored_current", rollup.CurrentStreak).
			Int("computed_current", summary.CurrentStreak).
			Int("stored_days", rollup.TotalDanceDays).
			Int("computed_days", summary.TotalDanceDays).
			Msg("total stats rollup diverged from history, overwriting")

		rollup.TotalDanceTimeInMin = summary.TotalDanceTimeInMin
		rollup.TotalCaloriesBurned = summary.TotalCaloriesBurned
		rollup.TotalDanceDays = summary.TotalDanceDays
		rollup.CurrentStreak = summary.CurrentStreak
		rollup.LongestStreak = summary.LongestStreak
		if err := s.store.SaveRollup(ctx, rollup); err != nil {
			return nil, err
		}
	}

	return summary, nil
}

func rollupDiverges(rollup *models.UserTotalStats, sum *StreakSummary) bool {
	return rollup.TotalDanceTimeInMin != sum.TotalDanceTimeInMin ||
		rollup.TotalCaloriesBurned != sum.TotalCaloriesBurned ||
		rollup.TotalDanceDays != sum.TotalDanceDays ||
		rollup.CurrentStreak != sum.CurrentStreak ||
		rollup.LongestStreak != sum.LongestStreak
}
