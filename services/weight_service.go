package services

import (
	"context"
	"errors"

	"github.com/MehulKanani556/Dance-Fitme/models"

	"gorm.io/gorm"
)

type WeightService struct {
	db    *gorm.DB
	clock Clock
}

func NewWeightService(db *gorm.DB, clock Clock) *WeightService {
	return &WeightService{db: db, clock: clock}
}

func (s *WeightService) Create(ctx context.Context, userID uint, starting, target float64, unit string) (*models.Weight, error) {
	if starting <= 0 || target <= 0 || unit == "" {
		return nil, newValidationError("starting, target and unit are required")
	}

	var existing models.Weight
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return nil, newValidationError("weight already exists, you can only update it")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	weight := models.Weight{UserID: userID, Starting: starting, Target: target, Unit: unit}
	if err := s.db.WithContext(ctx).Create(&weight).Error; err != nil {
		return nil, err
	}
	return &weight, nil
}

func (s *WeightService) GetByUser(ctx context.Context, userID uint) (*models.Weight, error) {
	var weight models.Weight
	err := s.db.WithContext(ctx).
		Preload("History").
		Where("user_id = ?", userID).
		First(&weight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &weight, nil
}

func (s *WeightService) Update(ctx context.Context, weightID, userID uint, starting, target *float64, unit *string) (*models.Weight, error) {
	weight, err := s.ownedWeight(ctx, weightID, userID)
	if err != nil {
		return nil, err
	}

	if starting != nil {
		weight.Starting = *starting
	}
	if target != nil {
		weight.Target = *target
	}
	if unit != nil {
		weight.Unit = *unit
	}
	if err := s.db.WithContext(ctx).Save(weight).Error; err != nil {
		return nil, err
	}
	return weight, nil
}

func (s *WeightService) Delete(ctx context.Context, weightID, userID uint) error {
	weight, err := s.ownedWeight(ctx, weightID, userID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Select("History").Delete(weight).Error
}

// AddRecord logs a dated measurement. A same-day record with the same unit is
// replaced instead of appended.
func (s *WeightService) AddRecord(ctx context.Context, weightID, userID uint, value float64, unit string) (*models.Weight, error) {
	if value <= 0 || unit == "" {
		return nil, newValidationError("value and unit are required")
	}

	weight, err := s.ownedWeight(ctx, weightID, userID)
	if err != nil {
		return nil, err
	}

	today := dayStart(s.clock.Now())

	var rec models.WeightRecord
	err = s.db.WithContext(ctx).
		Where("weight_id = ? AND unit = ? AND date = ?", weight.ID, unit, today).
		First(&rec).Error
	switch {
	case err == nil:
		rec.Value = value
		err = s.db.WithContext(ctx).Save(&rec).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec = models.WeightRecord{WeightID: weight.ID, Value: value, Unit: unit, Date: today}
		err = s.db.WithContext(ctx).Create(&rec).Error
	}
	if err != nil {
		return nil, err
	}

	return s.GetByUser(ctx, userID)
}

func (s *WeightService) ownedWeight(ctx context.Context, weightID, userID uint) (*models.Weight, error) {
	var weight models.Weight
	err := s.db.WithContext(ctx).First(&weight, weightID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if weight.UserID != userID {
		return nil, ErrForbidden
	}
	return &weight, nil
}
