package weather

import (
	pmodel "WeatherHubBot/pkg/models"
)

// ConvertTemperature переводит градусы Цельсия в единицу пользователя
func ConvertTemperature(celsius float64, unit pmodel.TemperatureUnit) float64 {
	switch unit {
	case pmodel.Fahrenheit:
		return celsius*9/5 + 32
	case pmodel.Kelvin:
		return celsius + 273.15
	default:
		return celsius
	}
}

// ConvertSpeed переводит м/с провайдера в единицу пользователя
func ConvertSpeed(mps float64, unit pmodel.SpeedUnit) float64 {
	switch unit {
	case pmodel.KilometersPerHour:
		return mps * 3.6
	case pmodel.MilesPerHour:
		return mps * 2.2369362920544
	case pmodel.Knots:
		return mps * 1.9438444924406
	default:
		return mps
	}
}
