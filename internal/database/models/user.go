package models

import (
	"time"

	pmodel "WeatherHubBot/pkg/models"
)

// User существует только после того, как пользователь хотя бы раз прислал город
type User struct {
	ID              int64                  `gorm:"primaryKey;autoIncrement:false"`
	City            string                 `gorm:"size:255;not null"`
	Language        pmodel.Language        `gorm:"size:8;not null;default:uk"`
	TemperatureUnit pmodel.TemperatureUnit `gorm:"size:4;not null;default:C"`
	SpeedUnit       pmodel.SpeedUnit       `gorm:"size:8;not null;default:km/h"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser заполняет настройки значениями по умолчанию
func NewUser(id int64, city string) *User {
	return &User{
		ID:              id,
		City:            city,
		Language:        pmodel.DefaultLanguage,
		TemperatureUnit: pmodel.DefaultTemperatureUnit,
		SpeedUnit:       pmodel.DefaultSpeedUnit,
	}
}

// Lang нормализует сохранённый код языка
func (u *User) Lang() pmodel.Language {
	return pmodel.ParseLanguage(string(u.Language))
}

func (u *User) TempUnit() pmodel.TemperatureUnit {
	return pmodel.ParseTemperatureUnit(string(u.TemperatureUnit))
}

func (u *User) WindUnit() pmodel.SpeedUnit {
	return pmodel.ParseSpeedUnit(string(u.SpeedUnit))
}
