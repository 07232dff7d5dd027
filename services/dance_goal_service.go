package services

import (
	"context"
	"errors"

	"github.com/MehulKanani556/Dance-Fitme/models"

	"gorm.io/gorm"
)

type DanceGoalService struct {
	db    *gorm.DB
	clock Clock
}

func NewDanceGoalService(db *gorm.DB, clock Clock) *DanceGoalService {
	return &DanceGoalService{db: db, clock: clock}
}

// Create sets up the user's daily goal. Each user has at most one goal; a
// second create is rejected and the caller should update instead.
func (s *DanceGoalService) Create(ctx context.Context, userID uint, energy, workout float64) (*models.DanceGoal, error) {
	if energy <= 0 || workout <= 0 {
		return nil, newValidationError("energy and workout are required")
	}

	var existing models.DanceGoal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return nil, newValidationError("dance goal already exists, you can only update it")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	goal := models.DanceGoal{UserID: userID, Energy: energy, Workout: workout}
	if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *DanceGoalService) GetByUser(ctx context.Context, userID uint) (*models.DanceGoal, error) {
	var goal models.DanceGoal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// Update changes the goal's targets. Nil fields are left untouched.
func (s *DanceGoalService) Update(ctx context.Context, goalID, userID uint, energy, workout *float64) (*models.DanceGoal, error) {
	var goal models.DanceGoal
	err := s.db.WithContext(ctx).First(&goal, goalID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrForbidden
	}

	if energy != nil {
		goal.Energy = *energy
	}
	if workout != nil {
		goal.Workout = *workout
	}
	if err := s.db.WithContext(ctx).Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *DanceGoalService) Delete(ctx context.Context, goalID, userID uint) error {
	var goal models.DanceGoal
	err := s.db.WithContext(ctx).First(&goal, goalID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if goal.UserID != userID {
		return ErrForbidden
	}
	return s.db.WithContext(ctx).Delete(&goal).Error
}

// Progress reports today's dance activity against the goal targets as
// consumed/goal/percent triples, percent capped at 100.
func (s *DanceGoalService) Progress(ctx context.Context, userID uint) (*models.DanceGoal, map[string]interface{}, error) {
	goal, err := s.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			goal = &models.DanceGoal{UserID: userID}
		} else {
			return nil, nil, err
		}
	}

	today := dayStart(s.clock.Now())
	var sess models.DanceSession
	minutes, calories := 0.0, 0.0
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, today).
		First(&sess).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}
	if err == nil {
		minutes = float64(sess.DanceTimeInMin)
		calories = float64(sess.CaloriesBurned)
	}

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	progress := map[string]interface{}{
		"energy":  map[string]float64{"consumed": calories, "goal": goal.Energy, "percent": pct(calories, goal.Energy)},
		"workout": map[string]float64{"consumed": minutes, "goal": goal.Workout, "percent": pct(minutes, goal.Workout)},
	}
	return goal, progress, nil
}
