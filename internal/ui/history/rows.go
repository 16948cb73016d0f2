package history

import (
	"fmt"
	"time"

	"studyfocus/internal/core/format"
	"studyfocus/internal/core/model"
)

// Row is the rendered text of one completed session.
type Row struct {
	Title     string
	Task      string
	TimeSpent string
	When      string
}

// RowFor renders record relative to now.
func RowFor(record model.CompletedRecord, now time.Time) Row {
	return Row{
		Title:     fmt.Sprintf("%s · %s", record.Subject, record.Technique),
		Task:      record.Task,
		TimeSpent: "Time Spent: " + format.TimeSpent(record.TimeSpent),
		When:      format.RelativeTime(record.CompletedAt, now),
	}
}

// Summary renders the totals line shown above the list.
func Summary(count int, total time.Duration) string {
	if count == 0 {
		return "No completed sessions yet"
	}
	sessions := "sessions"
	if count == 1 {
		sessions = "session"
	}
	return fmt.Sprintf("%d %s, %s in total", count, sessions, format.TimeSpent(total))
}
