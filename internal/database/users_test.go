package database

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"WeatherHubBot/internal/database/models"
	pmodel "WeatherHubBot/pkg/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Интеграционные тесты запускаются только при заданном TEST_MYSQL_DSN
func setupTestStore(t *testing.T) *UserStore {
	t.Helper()

	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN not set; skipping MySQL integration test")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM users")
		_ = Close(db)
	})
	db.Exec("DELETE FROM users")

	return NewUserStore(db)
}

func TestUserStore_UpsertCity_CreatesWithDefaults(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	exists, err := store.Exists(ctx, 42)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Fatal("expected no user before upsert")
	}

	if err := store.UpsertCity(ctx, 42, "Kyiv"); err != nil {
		t.Fatalf("UpsertCity: %v", err)
	}

	user, err := store.GetUser(ctx, 42)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.City != "Kyiv" {
		t.Errorf("City = %q, want %q", user.City, "Kyiv")
	}
	if user.Language != pmodel.DefaultLanguage {
		t.Errorf("Language = %q, want %q", user.Language, pmodel.DefaultLanguage)
	}
	if user.TemperatureUnit != pmodel.Celsius {
		t.Errorf("TemperatureUnit = %q, want %q", user.TemperatureUnit, pmodel.Celsius)
	}
	if user.SpeedUnit != pmodel.KilometersPerHour {
		t.Errorf("SpeedUnit = %q, want %q", user.SpeedUnit, pmodel.KilometersPerHour)
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set on first write")
	}
}

func TestUserStore_UpsertCity_UpdatesExistingKeepsPreferences(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if err := store.UpsertCity(ctx, 7, "Lviv"); err != nil {
		t.Fatalf("UpsertCity: %v", err)
	}
	if err := store.SetLanguage(ctx, 7, pmodel.LanguageGerman); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	time.Sleep(1100 * time.Millisecond)
	if err := store.UpsertCity(ctx, 7, "Berlin"); err != nil {
		t.Fatalf("UpsertCity: %v", err)
	}

	user, err := store.GetUser(ctx, 7)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.City != "Berlin" {
		t.Errorf("City = %q, want %q", user.City, "Berlin")
	}
	if user.Language != pmodel.LanguageGerman {
		t.Errorf("Language = %q, want %q", user.Language, pmodel.LanguageGerman)
	}
	if !user.UpdatedAt.After(user.CreatedAt) {
		t.Errorf("UpdatedAt %v should be after CreatedAt %v", user.UpdatedAt, user.CreatedAt)
	}
}

func TestUserStore_SetPreferences(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if err := store.UpsertCity(ctx, 9, "Odesa"); err != nil {
		t.Fatalf("UpsertCity: %v", err)
	}
	if err := store.SetTemperatureUnit(ctx, 9, pmodel.Kelvin); err != nil {
		t.Fatalf("SetTemperatureUnit: %v", err)
	}
	if err := store.SetSpeedUnit(ctx, 9, pmodel.Knots); err != nil {
		t.Fatalf("SetSpeedUnit: %v", err)
	}

	user, err := store.GetUser(ctx, 9)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.TemperatureUnit != pmodel.Kelvin || user.SpeedUnit != pmodel.Knots {
		t.Errorf("units = %q/%q, want K/kt", user.TemperatureUnit, user.SpeedUnit)
	}

	city, err := store.GetCity(ctx, 9)
	if err != nil || city != "Odesa" {
		t.Errorf("GetCity = %q, %v; want Odesa", city, err)
	}
}

func TestUserStore_MissingUser(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if _, err := store.GetUser(ctx, 1000); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUser err = %v, want ErrUserNotFound", err)
	}
	if err := store.SetLanguage(ctx, 1000, pmodel.LanguageEnglish); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("SetLanguage err = %v, want ErrUserNotFound", err)
	}
}

func TestNewUser_Defaults(t *testing.T) {
	u := models.NewUser(1, "Kharkiv")

	if u.Language != pmodel.LanguageUkrainian || u.TemperatureUnit != pmodel.Celsius || u.SpeedUnit != pmodel.KilometersPerHour {
		t.Errorf("unexpected defaults: %+v", u)
	}
	u.Language = "xx"
	if u.Lang() != pmodel.DefaultLanguage {
		t.Errorf("Lang() = %q, want default for unknown code", u.Lang())
	}
}
