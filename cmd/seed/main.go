package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"main/internal/infrastructure/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultSeedFile = "seed.json"

type seedConfig struct {
	DatabaseDSN string
	SeedFile    string
}

// fixture is the reference-data file layout. IDs are fixed in the file so
// reruns upsert instead of duplicating rows.
type fixture struct {
	Instruments []struct {
		ID       uuid.UUID `json:"id"`
		Name     string    `json:"name"`
		PriceUSD string    `json:"price_usd"`
	} `json:"instruments"`
	Countries []struct {
		ID                   uuid.UUID `json:"id"`
		Name                 string    `json:"name"`
		PermittedInstruments []string  `json:"permitted_instruments"`
	} `json:"countries"`
	Currencies []struct {
		ID        uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		CountryID uuid.UUID `json:"country_id"`
	} `json:"currencies"`
	Managers []struct {
		ID        uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		CountryID uuid.UUID `json:"country_id"`
	} `json:"managers"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Fatalf("connect postgres: %v", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		logger.Fatalf("migrate schema: %v", err)
	}
	logger.Info("schema migrated")

	data, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		if os.IsNotExist(err) {
			logger.WithField("file", cfg.SeedFile).Info("no seed file, schema only")
			return
		}
		logger.Fatalf("read seed file: %v", err)
	}

	var fix fixture
	if err := json.Unmarshal(data, &fix); err != nil {
		logger.Fatalf("parse seed file: %v", err)
	}

	if err := seed(ctx, db, &fix, logger); err != nil {
		logger.Fatalf("seed reference data: %v", err)
	}
	logger.Info("reference data seeded")
}

func loadConfig() (*seedConfig, error) {
	dsn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if dsn == "" {
		return nil, errors.New("DATABASE_DSN is required")
	}
	file := strings.TrimSpace(os.Getenv("SEED_FILE"))
	if file == "" {
		file = defaultSeedFile
	}
	return &seedConfig{DatabaseDSN: dsn, SeedFile: file}, nil
}

// seed upserts instruments and countries first, then the entities that
// reference countries in parallel.
func seed(ctx context.Context, db *gorm.DB, fix *fixture, logger *logrus.Logger) error {
	upsert := db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true})

	instruments := make([]models.InstrumentModel, 0, len(fix.Instruments))
	for _, item := range fix.Instruments {
		instruments = append(instruments, models.InstrumentModel{
			ID:       item.ID,
			Name:     item.Name,
			PriceUSD: item.PriceUSD,
		})
	}
	if len(instruments) > 0 {
		if err := upsert.Create(&instruments).Error; err != nil {
			return fmt.Errorf("upsert instruments: %w", err)
		}
		logger.WithField("instruments", len(instruments)).Info("instruments seeded")
	}

	countries := make([]models.CountryModel, 0, len(fix.Countries))
	for _, item := range fix.Countries {
		countries = append(countries, models.CountryModel{
			ID:                   item.ID,
			Name:                 item.Name,
			PermittedInstruments: pq.StringArray(item.PermittedInstruments),
		})
	}
	if len(countries) > 0 {
		if err := upsert.Create(&countries).Error; err != nil {
			return fmt.Errorf("upsert countries: %w", err)
		}
		logger.WithField("countries", len(countries)).Info("countries seeded")
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		currencies := make([]models.CurrencyModel, 0, len(fix.Currencies))
		for _, item := range fix.Currencies {
			currencies = append(currencies, models.CurrencyModel{
				ID:        item.ID,
				Name:      item.Name,
				CountryID: item.CountryID,
			})
		}
		if len(currencies) == 0 {
			return nil
		}
		if err := db.WithContext(groupCtx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&currencies).Error; err != nil {
			return fmt.Errorf("upsert currencies: %w", err)
		}
		logger.WithField("currencies", len(currencies)).Info("currencies seeded")
		return nil
	})

	group.Go(func() error {
		managers := make([]models.ManagerModel, 0, len(fix.Managers))
		for _, item := range fix.Managers {
			managers = append(managers, models.ManagerModel{
				ID:        item.ID,
				Name:      item.Name,
				CountryID: item.CountryID,
			})
		}
		if len(managers) == 0 {
			return nil
		}
		if err := db.WithContext(groupCtx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&managers).Error; err != nil {
			return fmt.Errorf("upsert managers: %w", err)
		}
		logger.WithField("managers", len(managers)).Info("managers seeded")
		return nil
	})

	return group.Wait()
}
