package models

import (
	"fmt"
	"slices"
	"time"
)

// ReminderCategory enumerates what a reminder is about.
type ReminderCategory string

const (
	ReminderService   ReminderCategory = "service"
	ReminderInsurance ReminderCategory = "insurance"
	ReminderTax       ReminderCategory = "tax"
	ReminderOther     ReminderCategory = "other"
)

// ValidReminderCategory reports whether c is one of the known categories.
func ValidReminderCategory(c ReminderCategory) bool {
	switch c {
	case ReminderService, ReminderInsurance, ReminderTax, ReminderOther:
		return true
	}
	return false
}

// ReminderStatus is derived from the due date and completed flag at read
// time; it is never stored.
type ReminderStatus string

const (
	StatusUpcoming  ReminderStatus = "upcoming"
	StatusDueToday  ReminderStatus = "due_today"
	StatusOverdue   ReminderStatus = "overdue"
	StatusCompleted ReminderStatus = "completed"
)

// ValidReminderStatus reports whether s is a known derived status.
func ValidReminderStatus(s ReminderStatus) bool {
	switch s {
	case StatusUpcoming, StatusDueToday, StatusOverdue, StatusCompleted:
		return true
	}
	return false
}

type Reminder struct {
	ID        string
	UserID    string
	VehicleID string
	Category  ReminderCategory
	Title     string
	DueDate   time.Time
	// NotifyBefore is a lead time in days; nil when the user did not set one.
	// Stored only, no delivery mechanism exists.
	NotifyBefore *int
	Completed    bool
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// truncateToDay drops the time-of-day component in UTC. Due dates are
// calendar dates; comparing anything finer drifts near midnight.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntilDue returns the signed number of calendar days between now and
// the due date: 0 means due today, negative means overdue by that many days.
func (r *Reminder) DaysUntilDue(now time.Time) int {
	diff := truncateToDay(r.DueDate).Sub(truncateToDay(now))
	return int(diff / (24 * time.Hour))
}

// Status derives the presentation state from the completed flag and the due
// date. Completed is terminal and wins regardless of the due date.
func (r *Reminder) Status(now time.Time) ReminderStatus {
	if r.Completed {
		return StatusCompleted
	}
	switch days := r.DaysUntilDue(now); {
	case days < 0:
		return StatusOverdue
	case days == 0:
		return StatusDueToday
	default:
		return StatusUpcoming
	}
}

// StatusLabel returns the human-readable form of the derived status.
func (r *Reminder) StatusLabel(now time.Time) string {
	switch days := r.DaysUntilDue(now); r.Status(now) {
	case StatusCompleted:
		return "Completed"
	case StatusOverdue:
		return fmt.Sprintf("Overdue by %d days", -days)
	case StatusDueToday:
		return "Due today"
	default:
		if days == 1 {
			return "Tomorrow"
		}
		return fmt.Sprintf("In %d days", days)
	}
}

// SortReminders orders reminders for list display: incomplete before
// completed, then ascending due date. The sort is stable so equal due
// dates keep their input order.
func SortReminders(reminders []*Reminder) {
	slices.SortStableFunc(reminders, func(a, b *Reminder) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}
			return -1
		}
		return a.DueDate.Compare(b.DueDate)
	})
}
