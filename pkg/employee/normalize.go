package employee

import (
	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
)

var (
	// DefaultRateAliases lists the rate columns in priority order.
	DefaultRateAliases = []string{"hourly_rate", "rate", "salary"}

	// DefaultHoursAliases lists the hours columns in priority order.
	DefaultHoursAliases = []string{"hours_worked", "hours"}
)

// Aliases maps canonical numeric fields to the source columns that may
// carry them. The first alias present on a record wins.
type Aliases struct {
	Rate  []string
	Hours []string
}

func DefaultAliases() Aliases {
	return Aliases{
		Rate:  append([]string(nil), DefaultRateAliases...),
		Hours: append([]string(nil), DefaultHoursAliases...),
	}
}

func (a Aliases) Validate() error {
	switch {
	case len(a.Rate) == 0:
		return errs.New("at least one rate alias is required")
	case len(a.Hours) == 0:
		return errs.New("at least one hours alias is required")
	}
	return nil
}

// Normalize sets the canonical rate and hours of the record from the first
// alias column present. Neither is set when no alias column exists; the
// record then fails when the value is accessed.
func Normalize(r *Record, aliases Aliases) error {
	rate, err := lookupNumber(r, aliases.Rate)
	if err != nil {
		return err
	}
	hours, err := lookupNumber(r, aliases.Hours)
	if err != nil {
		return err
	}
	r.rate = rate
	r.hours = hours
	return nil
}

func lookupNumber(r *Record, keys []string) (decimal.NullDecimal, error) {
	for _, key := range keys {
		value, ok := r.Fields[key]
		if !ok {
			continue
		}
		d, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.NullDecimal{}, ParseError.New("%s: invalid %s %q: %v", r.location(), key, value, err)
		}
		if d.IsNegative() {
			return decimal.NullDecimal{}, ParseError.New("%s: invalid %s %q: must not be negative", r.location(), key, value)
		}
		return decimal.NullDecimal{Decimal: d, Valid: true}, nil
	}
	return decimal.NullDecimal{}, nil
}
