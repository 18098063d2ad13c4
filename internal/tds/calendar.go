// Package tds computes withholding deductions and aggregates them into
// certificates and quarterly statements with late-deposit charges.
package tds

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"niyam/internal/domain"
)

var fyPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// FinancialYear returns the Indian financial-year label for a date,
// e.g. 2025-06-15 falls in "2025-26".
func FinancialYear(t time.Time) string {
	y := t.Year()
	if t.Month() < time.April {
		y--
	}
	return fmt.Sprintf("%d-%02d", y, (y+1)%100)
}

// Quarter returns the financial-year quarter of a date: Q1 Apr-Jun,
// Q2 Jul-Sep, Q3 Oct-Dec, Q4 Jan-Mar.
func Quarter(t time.Time) int {
	m := int(t.Month())
	if m >= 4 {
		return (m-4)/3 + 1
	}
	return 4
}

// ParseFinancialYear validates a "2025-26" style label and returns its
// starting calendar year.
func ParseFinancialYear(label string) (int, error) {
	m := fyPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, &domain.ValidationError{Field: "financial_year", Message: fmt.Sprintf("%q is not of the form 2025-26", label)}
	}
	start, _ := strconv.Atoi(m[1])
	suffix, _ := strconv.Atoi(m[2])
	if (start+1)%100 != suffix {
		return 0, &domain.ValidationError{Field: "financial_year", Message: fmt.Sprintf("%q year suffix does not follow the start year", label)}
	}
	return start, nil
}

// QuarterWindow returns the half-open [start, end) window of a quarter
// in the financial year beginning startYear.
func QuarterWindow(startYear, quarter int) (time.Time, time.Time, error) {
	if quarter < 1 || quarter > 4 {
		return time.Time{}, time.Time{}, &domain.ValidationError{Field: "quarter", Message: fmt.Sprintf("quarter %d outside 1-4", quarter)}
	}
	start := time.Date(startYear, time.April+time.Month(3*(quarter-1)), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)
	return start, end, nil
}

// DepositDueDate returns the statutory deposit due date for tax
// deducted on paymentDate: the 7th of the following month, except
// March deductions which are due April 30.
func DepositDueDate(paymentDate time.Time) time.Time {
	if paymentDate.Month() == time.March {
		return time.Date(paymentDate.Year(), time.April, 30, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(paymentDate.Year(), paymentDate.Month()+1, 7, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from a to b, negative when b
// precedes a.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
