package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	HoursMaxDigits     = 4
	HoursDecimalPlaces = 2
)

var (
	ErrHoursDecimalPlaces = errors.New("ensure that there are no more than 2 decimal places")
	ErrHoursDigits        = errors.New("ensure that there are no more than 4 digits in total")
)

var hoursLimit = decimal.New(1, HoursMaxDigits-HoursDecimalPlaces)

// ValidateHours enforces the decimal(4,2) column shape of the card hour fields.
func ValidateHours(d decimal.Decimal) error {
	if !d.Equal(d.Round(HoursDecimalPlaces)) {
		return ErrHoursDecimalPlaces
	}
	if d.Abs().GreaterThanOrEqual(hoursLimit) {
		return ErrHoursDigits
	}
	return nil
}
