package database

import (
	"context"
	"errors"
	"time"

	"WeatherHubBot/internal/database/models"
	pmodel "WeatherHubBot/pkg/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound = errors.New("user not found")

// UserStore хранит настройки пользователей в таблице users
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Exists(ctx context.Context, userID int64) (bool, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (s *UserStore) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	result := s.db.WithContext(ctx).Where("id = ?", userID).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserStore) GetCity(ctx context.Context, userID int64) (string, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.City, nil
}

// UpsertCity создаёт пользователя с настройками по умолчанию или меняет только город
func (s *UserStore) UpsertCity(ctx context.Context, userID int64, city string) error {
	user := models.NewUser(userID, city)

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"city", "updated_at"}),
	}).Create(user).Error
}

func (s *UserStore) SetLanguage(ctx context.Context, userID int64, lang pmodel.Language) error {
	return s.update(ctx, userID, "language", lang)
}

func (s *UserStore) SetTemperatureUnit(ctx context.Context, userID int64, unit pmodel.TemperatureUnit) error {
	return s.update(ctx, userID, "temperature_unit", unit)
}

func (s *UserStore) SetSpeedUnit(ctx context.Context, userID int64, unit pmodel.SpeedUnit) error {
	return s.update(ctx, userID, "speed_unit", unit)
}

// Count нужен для метрик
func (s *UserStore) Count(ctx context.Context) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&models.User{}).Count(&count)
	return count, result.Error
}

func (s *UserStore) update(ctx context.Context, userID int64, column string, value interface{}) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			column:       value,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
