// Package timesheet holds the pure schedule/attendance arithmetic shared by
// the attendance, payroll and dashboard features. Everything here is
// side-effect free; malformed or negative inputs are coerced to zero instead
// of erroring, matching how the rest of the system treats missing days.
package timesheet

import "time"

// AverageWeeksPerMonth converts weekly contract hours into a monthly
// threshold (CCNL convention).
const AverageWeeksPerMonth = 4.33

// DefaultOvertimeMultiplier applies when a contract carries none.
const DefaultOvertimeMultiplier = 1.25

const (
	PayTypeHourly  = "HOURLY"
	PayTypeMonthly = "MONTHLY"
)

// WeekSchedule is the planned minutes for each weekday of a contract.
type WeekSchedule struct {
	Mon int
	Tue int
	Wed int
	Thu int
	Fri int
	Sat int
	Sun int
}

// MinutesOn selects the planned minutes for a weekday.
func (s WeekSchedule) MinutesOn(day time.Weekday) int {
	switch day {
	case time.Monday:
		return clampMin(s.Mon)
	case time.Tuesday:
		return clampMin(s.Tue)
	case time.Wednesday:
		return clampMin(s.Wed)
	case time.Thursday:
		return clampMin(s.Thu)
	case time.Friday:
		return clampMin(s.Fri)
	case time.Saturday:
		return clampMin(s.Sat)
	default:
		return clampMin(s.Sun)
	}
}

// DayCoverage is the missing/covered/uncovered breakdown of one calendar day.
type DayCoverage struct {
	PlannedMinutes   int
	WorkedMinutes    int
	MissingMinutes   int
	CoveredMinutes   int
	UncoveredMinutes int
}

// Coverage derives the day breakdown from planned and worked minutes plus the
// day's justification minute amounts. Uncovered never exceeds missing and
// none of the outputs go negative.
func Coverage(planned, worked int, justified []int) DayCoverage {
	planned = clampMin(planned)
	worked = clampMin(worked)

	covered := 0
	for _, m := range justified {
		if m > 0 {
			covered += m
		}
	}

	missing := planned - worked
	if missing < 0 {
		missing = 0
	}
	uncovered := missing - covered
	if uncovered < 0 {
		uncovered = 0
	}

	return DayCoverage{
		PlannedMinutes:   planned,
		WorkedMinutes:    worked,
		MissingMinutes:   missing,
		CoveredMinutes:   covered,
		UncoveredMinutes: uncovered,
	}
}

// Day is one calendar day's input to the monthly aggregation. Days without an
// attendance record contribute zero worked minutes.
type Day struct {
	PlannedMinutes int
	WorkedMinutes  int
	CoveredMinutes int
}

// MonthTotals is the fold of a calendar month of Days.
type MonthTotals struct {
	OrdinaryMinutes int
	OvertimeMinutes int
	WorkedMinutes   int
	PlannedMinutes  int
	CoveredMinutes  int

	// PlannedHours is weeklyHours x 4.33; BeyondThreshold is set when the
	// worked hours exceed it and the contract has weekly hours at all.
	PlannedHours    float64
	BeyondThreshold bool
}

// AggregateMonth folds the days of one month: ordinary minutes are capped at
// the day's plan, everything above it is overtime.
func AggregateMonth(days []Day, weeklyHours float64) MonthTotals {
	var t MonthTotals

	for _, d := range days {
		planned := clampMin(d.PlannedMinutes)
		worked := clampMin(d.WorkedMinutes)

		ordinary := worked
		if ordinary > planned {
			ordinary = planned
		}

		t.OrdinaryMinutes += ordinary
		t.OvertimeMinutes += worked - ordinary
		t.WorkedMinutes += worked
		t.PlannedMinutes += planned
		t.CoveredMinutes += clampMin(d.CoveredMinutes)
	}

	if weeklyHours > 0 {
		t.PlannedHours = weeklyHours * AverageWeeksPerMonth
		t.BeyondThreshold = float64(t.WorkedMinutes)/60 > t.PlannedHours
	}

	return t
}

// PayTerms is the pay configuration slice of a contract the estimator needs.
type PayTerms struct {
	PayType            string
	HourlyRate         float64
	MonthlySalary      float64
	OvertimeMultiplier float64
	WeeklyHours        float64
}

// Estimate is a gross pay estimate, not statutory payroll.
type Estimate struct {
	OrdinaryHours    float64
	OvertimeHours    float64
	HourlyEquivalent float64
	EstimatedGross   float64

	// OvertimeUnpriced marks a MONTHLY contract without weekly hours:
	// overtime cannot be priced, so the gross is the plain monthly salary.
	OvertimeUnpriced bool
}

// EstimateGross prices the aggregated ordinary/overtime minutes against the
// contract's pay terms. Rates are clamped at 0, the multiplier at 1.
func EstimateGross(terms PayTerms, ordinaryMinutes, overtimeMinutes int) Estimate {
	ordinaryHours := float64(clampMin(ordinaryMinutes)) / 60
	overtimeHours := float64(clampMin(overtimeMinutes)) / 60

	rate := terms.HourlyRate
	if rate < 0 {
		rate = 0
	}
	salary := terms.MonthlySalary
	if salary < 0 {
		salary = 0
	}
	multiplier := terms.OvertimeMultiplier
	if multiplier == 0 {
		multiplier = DefaultOvertimeMultiplier
	}
	if multiplier < 1 {
		multiplier = 1
	}
	weeklyHours := terms.WeeklyHours
	if weeklyHours < 0 {
		weeklyHours = 0
	}

	est := Estimate{
		OrdinaryHours: ordinaryHours,
		OvertimeHours: overtimeHours,
	}

	if terms.PayType == PayTypeMonthly {
		if weeklyHours > 0 {
			est.HourlyEquivalent = salary / (weeklyHours * AverageWeeksPerMonth)
			est.EstimatedGross = salary + overtimeHours*est.HourlyEquivalent*multiplier
		} else {
			est.EstimatedGross = salary
			est.OvertimeUnpriced = true
		}
		return est
	}

	est.EstimatedGross = ordinaryHours*rate + overtimeHours*rate*multiplier
	return est
}

func clampMin(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
