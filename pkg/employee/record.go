// Package employee provides the timesheet record type and the normalization
// of its rate and hours columns.
package employee

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
)

const (
	FieldName       = "name"
	FieldDepartment = "department"
	FieldRate       = "rate"
	FieldHours      = "hours"
)

var (
	// ParseError is returned when a rate or hours column does not hold a
	// non-negative number.
	ParseError = errs.Class("parse")

	// MissingFieldError is returned when a record is accessed for a field
	// it does not have.
	MissingFieldError = errs.Class("missing field")
)

type Record struct {
	// Path is the file the record was read from
	Path string

	// Line number in the file
	Line int

	// Fields holds the trimmed column values keyed by trimmed header name.
	// Source columns are kept as-is after normalization.
	Fields map[string]string

	// rate and hours are the canonical values set by Normalize. They are
	// left invalid when no alias column was present.
	rate  decimal.NullDecimal
	hours decimal.NullDecimal
}

func (r *Record) Name() (string, error) {
	return r.field(FieldName)
}

func (r *Record) Department() (string, error) {
	return r.field(FieldDepartment)
}

func (r *Record) Rate() (decimal.Decimal, error) {
	if !r.rate.Valid {
		return decimal.Decimal{}, r.missing(FieldRate)
	}
	return r.rate.Decimal, nil
}

func (r *Record) Hours() (decimal.Decimal, error) {
	if !r.hours.Valid {
		return decimal.Decimal{}, r.missing(FieldHours)
	}
	return r.hours.Decimal, nil
}

// Payout returns hours multiplied by rate.
func (r *Record) Payout() (decimal.Decimal, error) {
	hours, err := r.Hours()
	if err != nil {
		return decimal.Decimal{}, err
	}
	rate, err := r.Rate()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return hours.Mul(rate), nil
}

func (r *Record) field(key string) (string, error) {
	value, ok := r.Fields[key]
	if !ok {
		return "", r.missing(key)
	}
	return value, nil
}

func (r *Record) missing(key string) error {
	return MissingFieldError.New("%s: %q not set", r.location(), key)
}

func (r *Record) location() string {
	if r.Path == "" {
		return fmt.Sprintf("record on line %d", r.Line)
	}
	return fmt.Sprintf("%s: record on line %d", r.Path, r.Line)
}
