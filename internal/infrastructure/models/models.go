// Package models defines the gorm-tagged persistence schema. The runtime
// repositories speak raw SQL through pgx; these structs exist so cmd/seed can
// create and migrate the tables the repositories expect.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type UserModel struct {
	ID           uuid.UUID `gorm:"primaryKey;column:id;type:uuid"`
	FirstName    string    `gorm:"column:first_name;type:varchar(100);not null"`
	LastName     string    `gorm:"column:last_name;type:varchar(100);not null"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	NationalID   string    `gorm:"column:national_id;type:varchar(50)"`
	CountryID    uuid.UUID `gorm:"column:country_id;type:uuid;not null;index"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `gorm:"column:updated_at;type:timestamptz;default:CURRENT_TIMESTAMP"`
}

func (UserModel) TableName() string {
	return "users"
}

type InstrumentModel struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id;type:uuid"`
	Name      string    `gorm:"column:name;type:varchar(255);not null;index"`
	PriceUSD  string    `gorm:"column:price_usd;type:numeric(20,8);not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;default:CURRENT_TIMESTAMP"`
}

func (InstrumentModel) TableName() string {
	return "instruments"
}

type CountryModel struct {
	ID                   uuid.UUID      `gorm:"primaryKey;column:id;type:uuid"`
	Name                 string         `gorm:"column:name;type:varchar(100);not null"`
	PermittedInstruments pq.StringArray `gorm:"column:permitted_instruments;type:text[]"`
}

func (CountryModel) TableName() string {
	return "countries"
}

type CurrencyModel struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id;type:uuid"`
	Name      string    `gorm:"column:name;type:varchar(100);not null"`
	CountryID uuid.UUID `gorm:"column:country_id;type:uuid;not null;index"`
}

func (CurrencyModel) TableName() string {
	return "currencies"
}

type ManagerModel struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id;type:uuid"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	CountryID uuid.UUID `gorm:"column:country_id;type:uuid;not null;index"`
}

func (ManagerModel) TableName() string {
	return "managers"
}

type HoldingModel struct {
	UserID       uuid.UUID `gorm:"primaryKey;column:user_id;type:uuid"`
	InstrumentID uuid.UUID `gorm:"primaryKey;column:instrument_id;type:uuid"`
	Quantity     int64     `gorm:"column:quantity;type:bigint;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;default:CURRENT_TIMESTAMP"`
}

func (HoldingModel) TableName() string {
	return "holdings"
}

type TransactionModel struct {
	ID           uuid.UUID `gorm:"primaryKey;column:id;type:uuid"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	InstrumentID uuid.UUID `gorm:"column:instrument_id;type:uuid;not null;index"`
	Type         string    `gorm:"column:type;type:varchar(10);not null"`
	Quantity     int64     `gorm:"column:quantity;type:bigint;not null"`
	UnitPrice    string    `gorm:"column:unit_price;type:numeric(20,8);not null"`
	ExecutedAt   time.Time `gorm:"column:executed_at;type:timestamptz;default:CURRENT_TIMESTAMP"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

// All lists every model in migration order (referenced tables first).
func All() []interface{} {
	return []interface{}{
		&CountryModel{},
		&CurrencyModel{},
		&ManagerModel{},
		&InstrumentModel{},
		&UserModel{},
		&HoldingModel{},
		&TransactionModel{},
	}
}
