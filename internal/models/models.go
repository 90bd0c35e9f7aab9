package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date exchanged with the activity API as YYYY-MM-DD.
// Full RFC 3339 timestamps are accepted on input, and a decoded Date is
// encoded back exactly as the server sent it.
type Date struct {
	time.Time

	raw string
}

// NewDate truncates t to the start of its day.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()

	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.raw != "" {
		return json.Marshal(d.raw)
	}

	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}

	var s string

	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}

	*d = NewDate(t)
	d.raw = s

	return nil
}

// ActivityType identifies the kind of activity tracked by the remote API.
type ActivityType string

const (
	ActivitySteps ActivityType = "STEPS"
	ActivityWater ActivityType = "WATER"
)

// Activity is the remote record of a user's progress for a single day.
type Activity struct {
	Date          Date         `json:"date"`
	Type          ActivityType `json:"type"`
	Difficulty    string       `json:"difficulty,omitempty"`
	ID            int64        `json:"id"`
	UserID        int64        `json:"userId"`
	Quantity      int          `json:"quantity"`
	Goal          int          `json:"goal"`
	IsGoalReached bool         `json:"isGoalReached"`
}

// ActivityUpdate carries the fields sent when syncing the day's quantity.
type ActivityUpdate struct {
	Date     Date  `json:"date"`
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

// LeaderboardPeriod is the window a leaderboard ranks users over.
type LeaderboardPeriod string

const (
	LeaderboardDaily   LeaderboardPeriod = "DAILY"
	LeaderboardWeekly  LeaderboardPeriod = "WEEKLY"
	LeaderboardMonthly LeaderboardPeriod = "MONTHLY"
)

// LeaderboardEntry is one ranked user on the leaderboard.
type LeaderboardEntry struct {
	Age        *int   `json:"age,omitempty"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email,omitempty"`
	Gender     string `json:"gender,omitempty"`
	ID         int64  `json:"id"`
	TotalSteps int    `json:"totalSteps"`
	Position   int    `json:"position"`
}

// Name joins the first and last name.
func (e *LeaderboardEntry) Name() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Day is a locally recorded history row for a single calendar day.
type Day struct {
	// Date is the start of the day in local time
	Date      time.Time `json:"date"`
	UpdatedAt time.Time `json:"updated_at"`
	Steps     int       `json:"steps"`
	Goal      int       `json:"goal"`
}

// GoalReached reports whether the day's steps meet its goal.
func (d *Day) GoalReached() bool {
	return d.Goal > 0 && d.Steps >= d.Goal
}
