package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const CurrencySuffix = "€"

var ErrInvalidPrice = errors.New("invalid price")

// FormatPrice renders cents with exactly two decimals, e.g. 3100 -> "31.00".
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

const maxPriceUnits = (math.MaxInt64 - 99) / 100

// ParsePrice converts a decimal amount with at most two fractional digits into cents.
func ParsePrice(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "-") {
		return 0, errors.Wrap(ErrNegativePrice, value)
	}

	whole, fraction, hasFraction := strings.Cut(value, ".")
	if !isDigits(whole) || (hasFraction && (!isDigits(fraction) || len(fraction) > 2)) {
		return 0, errors.Wrapf(ErrInvalidPrice, "%q", value)
	}
	if len(fraction) == 1 {
		fraction += "0"
	}
	if fraction == "" {
		fraction = "00"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > maxPriceUnits {
		return 0, errors.Wrapf(ErrInvalidPrice, "%q", value)
	}
	cents, err := strconv.ParseInt(fraction, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidPrice, "%q", value)
	}
	return units*100 + cents, nil
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
