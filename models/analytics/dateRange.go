package analytics

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Filter names accepted by the dashboard endpoints.
const (
	FilterToday   = "today"
	FilterWeekly  = "weekly"
	FilterMonthly = "monthly"
	FilterYearly  = "yearly"
	FilterCustom  = "custom"
)

// DateRange is a concrete [Start, End] window, inclusive of both ends and
// normalized so Start <= End.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// ResolveDateRange turns a named filter plus optional custom bounds into a
// concrete range. beforeDate and afterDate are only read for the custom
// filter, where both are required.
func ResolveDateRange(filter, beforeDate, afterDate string) (DateRange, error) {
	return resolveDateRangeAt(filter, beforeDate, afterDate, time.Now())
}

func resolveDateRangeAt(filter, beforeDate, afterDate string, now time.Time) (DateRange, error) {
	switch filter {
	case FilterToday:
		// Rolling 7-day window ending today, same bucket width as weekly,
		// so the chart always draws seven daily points. The summary cards
		// for this filter use TodayRange instead.
		return DateRange{
			Start: startOfDay(now.AddDate(0, 0, -6)),
			End:   endOfDay(now),
		}, nil
	case FilterWeekly:
		// Monday of the current ISO week through the following Sunday.
		monday := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
		return DateRange{
			Start: startOfDay(monday),
			End:   endOfDay(monday.AddDate(0, 0, 6)),
		}, nil
	case FilterMonthly:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return DateRange{
			Start: start,
			End:   endOfDay(start.AddDate(0, 1, -1)),
		}, nil
	case FilterYearly:
		// 24-month rolling window: the same calendar month two years ago,
		// day 1, through end of today.
		return DateRange{
			Start: time.Date(now.Year()-2, now.Month(), 1, 0, 0, 0, 0, now.Location()),
			End:   endOfDay(now),
		}, nil
	case FilterCustom:
		return resolveCustomRange(beforeDate, afterDate)
	}
	return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
}

func resolveCustomRange(beforeDate, afterDate string) (DateRange, error) {
	if beforeDate == "" || afterDate == "" {
		return DateRange{}, fmt.Errorf("%w: custom filter requires beforeDate and afterDate", ErrInvalidRange)
	}
	from, err := time.ParseInLocation(dateLayout, beforeDate, time.Local)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: beforeDate %q", ErrInvalidRange, beforeDate)
	}
	to, err := time.ParseInLocation(dateLayout, afterDate, time.Local)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: afterDate %q", ErrInvalidRange, afterDate)
	}
	if from.After(to) {
		from, to = to, from
	}
	return DateRange{Start: startOfDay(from), End: endOfDay(to)}, nil
}

// TodayRange is midnight through end of the current day. Used for the
// summary-card metrics when the filter is "today", regardless of the wider
// chart window.
func TodayRange() DateRange {
	return todayRangeAt(time.Now())
}

func todayRangeAt(now time.Time) DateRange {
	return DateRange{Start: startOfDay(now), End: endOfDay(now)}
}

// AllTimeRange spans 2000-01-01 through end of today. Outstanding-balance
// computation always runs over this range so it reflects every client, not
// just the filtered period.
func AllTimeRange() DateRange {
	return allTimeRangeAt(time.Now())
}

func allTimeRangeAt(now time.Time) DateRange {
	return DateRange{
		Start: time.Date(2000, time.January, 1, 0, 0, 0, 0, now.Location()),
		End:   endOfDay(now),
	}
}

// PreviousRange shifts a resolved range to the comparison period used by the
// performance delta: one day back for today, one week for weekly, the
// previous calendar month for monthly, the previous calendar year for yearly,
// and one day back as the default for custom.
func PreviousRange(filter string, r DateRange) DateRange {
	switch filter {
	case FilterWeekly:
		return DateRange{Start: r.Start.AddDate(0, 0, -7), End: r.End.AddDate(0, 0, -7)}
	case FilterMonthly:
		start := r.Start.AddDate(0, -1, 0)
		return DateRange{Start: start, End: endOfDay(start.AddDate(0, 1, -1))}
	case FilterYearly:
		return DateRange{Start: r.Start.AddDate(-1, 0, 0), End: r.End.AddDate(-1, 0, 0)}
	}
	return DateRange{Start: r.Start.AddDate(0, 0, -1), End: r.End.AddDate(0, 0, -1)}
}
