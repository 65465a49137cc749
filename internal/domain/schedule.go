package domain

import (
	"fmt"
	"time"
)

type ScheduleType string

const (
	ScheduleOneTime   ScheduleType = "one-time"
	ScheduleRecurring ScheduleType = "recurring"
)

// RecurrenceRule is empty for one-time schedules.
type RecurrenceRule string

const (
	RecurrenceNone     RecurrenceRule = ""
	RecurrenceDaily    RecurrenceRule = "daily"
	RecurrenceWeekdays RecurrenceRule = "weekdays"
	RecurrenceWeekly   RecurrenceRule = "weekly"
)

const DefaultUpdateCutoffHours = 2

// ParseRecurrence accepts the client vocabulary, where "one-time" and the empty
// string both mean no recurrence.
func ParseRecurrence(raw string) (RecurrenceRule, error) {
	switch raw {
	case "", string(ScheduleOneTime):
		return RecurrenceNone, nil
	case string(RecurrenceDaily), string(RecurrenceWeekdays), string(RecurrenceWeekly):
		return RecurrenceRule(raw), nil
	}
	return RecurrenceNone, fmt.Errorf("unknown recurrence rule %q", raw)
}

func (r RecurrenceRule) ScheduleType() ScheduleType {
	if r == RecurrenceNone {
		return ScheduleOneTime
	}
	return ScheduleRecurring
}

// Next returns the first occurrence strictly after now, stepping from t.
// A one-time rule has no next occurrence. Steps are taken in UTC, so the
// weekdays rule sees the UTC weekday whatever location t carries.
func (r RecurrenceRule) Next(t, now time.Time) (time.Time, bool) {
	t = t.UTC()
	var step func(time.Time) time.Time
	switch r {
	case RecurrenceDaily:
		step = func(x time.Time) time.Time { return x.AddDate(0, 0, 1) }
	case RecurrenceWeekly:
		step = func(x time.Time) time.Time { return x.AddDate(0, 0, 7) }
	case RecurrenceWeekdays:
		step = func(x time.Time) time.Time {
			x = x.AddDate(0, 0, 1)
			for x.Weekday() == time.Saturday || x.Weekday() == time.Sunday {
				x = x.AddDate(0, 0, 1)
			}
			return x
		}
	default:
		return time.Time{}, false
	}

	next := step(t)
	for !next.After(now) {
		next = step(next)
	}
	return next, true
}

// MarshalJSON keeps the stored shape, where a missing rule is null.
func (r RecurrenceRule) MarshalJSON() ([]byte, error) {
	if r == RecurrenceNone {
		return []byte("null"), nil
	}
	return []byte(`"` + string(r) + `"`), nil
}
