package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"

	"storj.io/payout-report/pkg/employee"
)

const (
	PayoutName = "payout"

	// Label for the grand total line.
	totalLabel = "total"
)

type payoutLine struct {
	name   string
	hours  decimal.Decimal
	rate   decimal.Decimal
	payout decimal.Decimal
}

// Payout renders the payout of every employee grouped by department.
// Departments and the employees within them are sorted by name. Each
// department ends with its hour and payout subtotals and the report ends with
// the grand totals.
func Payout(records []*employee.Record) (string, error) {
	// Resolve every record up front so a missing field fails the report
	// before anything is rendered.
	departments := make(map[string][]payoutLine)
	for _, record := range records {
		department, err := record.Department()
		if err != nil {
			return "", err
		}
		line, err := newPayoutLine(record)
		if err != nil {
			return "", err
		}
		departments[department] = append(departments[department], line)
	}

	names := maps.Keys(departments)
	slices.Sort(names)

	var b strings.Builder
	writeRow(&b, "", "name", "hours", "rate", "payout")

	var totalHours, totalPayout decimal.Decimal
	for _, department := range names {
		lines := departments[department]
		slices.SortStableFunc(lines, func(x, y payoutLine) int {
			return strings.Compare(x.name, y.name)
		})

		b.WriteString(department)
		b.WriteByte('\n')

		var departmentHours, departmentPayout decimal.Decimal
		for _, line := range lines {
			writeRow(&b, "----", line.name, formatNumber(line.hours), formatNumber(line.rate), formatDollars(line.payout))
			departmentHours = departmentHours.Add(line.hours)
			departmentPayout = departmentPayout.Add(line.payout)
		}
		writeRow(&b, "", "", formatNumber(departmentHours), "", formatDollars(departmentPayout))

		totalHours = totalHours.Add(departmentHours)
		totalPayout = totalPayout.Add(departmentPayout)
	}
	writeRow(&b, "", totalLabel, formatNumber(totalHours), "", formatDollars(totalPayout))

	return b.String(), nil
}

func newPayoutLine(record *employee.Record) (payoutLine, error) {
	name, err := record.Name()
	if err != nil {
		return payoutLine{}, err
	}
	hours, err := record.Hours()
	if err != nil {
		return payoutLine{}, err
	}
	rate, err := record.Rate()
	if err != nil {
		return payoutLine{}, err
	}
	return payoutLine{
		name:   name,
		hours:  hours,
		rate:   rate,
		payout: hours.Mul(rate),
	}, nil
}

func writeRow(b *strings.Builder, marker, name, hours, rate, payout string) {
	row := fmt.Sprintf("%-6s%-15s  %-6s  %-6s  %s", marker, name, hours, rate, payout)
	b.WriteString(strings.TrimRight(row, " "))
	b.WriteByte('\n')
}

func formatNumber(d decimal.Decimal) string {
	return d.StringFixed(0)
}

func formatDollars(d decimal.Decimal) string {
	return "$" + d.StringFixed(0)
}
