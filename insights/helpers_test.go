package insights

import (
	"time"

	"fintrack/models"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func testOptions() []Option {
	return []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithLogger(zerolog.Nop()),
	}
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func txn(date, amount, category string) models.Transaction {
	return models.Transaction{
		Date:        day(date),
		Amount:      decimal.RequireFromString(amount),
		Description: category,
		Category:    category,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
