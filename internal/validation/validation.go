package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/utils"
)

const (
	MinRating = 1
	MaxRating = 10
)

// ProblemType represents the kind of integrity problem found in stored data
type ProblemType string

const (
	ProblemDuplicateDay ProblemType = "duplicate_day"
	ProblemUnknownHabit ProblemType = "unknown_habit"
	ProblemUnknownUser  ProblemType = "unknown_user"
	ProblemOutOfRange   ProblemType = "out_of_range"
	ProblemDuplicateID  ProblemType = "duplicate_id"
)

// Problem is a single integrity issue.
type Problem struct {
	Type        ProblemType
	Description string
	Collection  string
	IDs         []string
}

// Result collects every problem found by a check.
type Result struct {
	Problems []Problem
}

// HasProblems returns true if there are any problems
func (r *Result) HasProblems() bool {
	return len(r.Problems) > 0
}

func (r *Result) add(p Problem) {
	r.Problems = append(r.Problems, p)
}

// FormatReport returns a human-readable report of all problems
func (r *Result) FormatReport() string {
	if !r.HasProblems() {
		return "No problems detected."
	}

	var b strings.Builder
	b.WriteString("Problems detected:\n")
	for _, p := range r.Problems {
		fmt.Fprintf(&b, "- [%s] %s\n", p.Collection, p.Description)
	}
	return b.String()
}

// Rating checks a 1-10 scale value. Zero is accepted when optional is set
// and means "not recorded".
func Rating(name string, v int, optional bool) error {
	if optional && v == 0 {
		return nil
	}
	if v < MinRating || v > MaxRating {
		return fmt.Errorf("%s must be between %d and %d, got %d", name, MinRating, MaxRating, v)
	}
	return nil
}

// Date checks a YYYY-MM-DD string.
func Date(name, v string) error {
	if !utils.ValidateDateFormat(v) {
		return fmt.Errorf("%s must be a YYYY-MM-DD date, got %q", name, v)
	}
	return nil
}

// DateRange checks optional start and end dates and their order.
func DateRange(start, end string) error {
	if start != "" {
		if err := Date("start", start); err != nil {
			return err
		}
	}
	if end != "" {
		if err := Date("end", end); err != nil {
			return err
		}
	}
	if start != "" && end != "" && start > end {
		return fmt.Errorf("start %s is after end %s", start, end)
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a non-negative number, got %v", name, v)
	}
	return nil
}

// ReminderFrequency accepts daily, hourly, weekly or a standard 5-field
// cron expression, and returns the cron schedule it stands for.
func ReminderFrequency(freq string) (string, error) {
	expr := freq
	switch strings.ToLower(strings.TrimSpace(freq)) {
	case "daily":
		expr = "0 20 * * *"
	case "hourly":
		expr = "0 * * * *"
	case "weekly":
		expr = "0 20 * * 0"
	}
	if _, err := cron.ParseStandard(expr); err != nil {
		return "", fmt.Errorf("invalid reminder frequency %q: %w", freq, err)
	}
	return expr, nil
}

func User(u models.User) error {
	switch u.Gender {
	case models.GenderFemale, models.GenderMale, models.GenderOther:
	default:
		return fmt.Errorf("invalid gender %q", u.Gender)
	}
	switch u.DrinkingType {
	case models.DrinkingStress, models.DrinkingSocial, models.DrinkingHabit, models.DrinkingEmotional, models.DrinkingBoredom:
	default:
		return fmt.Errorf("invalid drinking type %q", u.DrinkingType)
	}
	switch u.GoalType {
	case models.GoalHarmReduction, models.GoalModeration, models.GoalAbstinence:
	default:
		return fmt.Errorf("invalid goal type %q", u.GoalType)
	}
	if u.Age < 0 || u.Age > 130 {
		return fmt.Errorf("age must be between 0 and 130, got %d", u.Age)
	}
	if err := nonNegative("current drinks per day", u.CurrentDrinksPerDay); err != nil {
		return err
	}
	return nonNegative("target drinks per day", u.TargetDrinksPerDay)
}

func Consumption(l models.ConsumptionLog) error {
	if err := Date("date", l.Date); err != nil {
		return err
	}
	if err := nonNegative("drinks consumed", l.DrinksConsumed); err != nil {
		return err
	}
	if err := Rating("mood before", l.MoodBefore, true); err != nil {
		return err
	}
	return Rating("mood after", l.MoodAfter, true)
}

func Activity(a models.HabitActivity) error {
	if strings.TrimSpace(a.HabitReplacementID) == "" {
		return fmt.Errorf("habit replacement id is required")
	}
	if err := Date("date", a.Date); err != nil {
		return err
	}
	if a.DurationMinutes < 0 {
		return fmt.Errorf("duration must not be negative, got %d", a.DurationMinutes)
	}
	return Rating("effectiveness rating", a.EffectivenessRating, false)
}

func Entry(e models.JournalEntry) error {
	if err := Date("date", e.Date); err != nil {
		return err
	}
	switch e.EntryType {
	case models.EntryDailyReflection, models.EntryGratitude, models.EntryTriggerAnalysis, models.EntryGoalSetting, models.EntryProgressReview:
	default:
		return fmt.Errorf("invalid entry type %q", e.EntryType)
	}
	if err := Rating("mood rating", e.MoodRating, false); err != nil {
		return err
	}
	if err := Rating("stress level", e.StressLevel, false); err != nil {
		return err
	}
	return Rating("confidence level", e.ConfidenceLevel, false)
}

func Crisis(c models.CrisisEvent) error {
	switch c.CrisisType {
	case models.CrisisUrge, models.CrisisStress, models.CrisisEmotional, models.CrisisSocial, models.CrisisRelapse, models.CrisisAnxiety:
	default:
		return fmt.Errorf("invalid crisis type %q", c.CrisisType)
	}
	if c.Timestamp.IsZero() {
		return fmt.Errorf("timestamp is required")
	}
	return Rating("severity level", c.SeverityLevel, false)
}

func Settings(s models.Settings) error {
	if s.Theme != "light" && s.Theme != "dark" {
		return fmt.Errorf("theme must be light or dark, got %q", s.Theme)
	}
	if _, err := ReminderFrequency(s.ReminderFrequency); err != nil {
		return err
	}
	if !utils.ValidateTimezone(s.Timezone) {
		return fmt.Errorf("invalid timezone %q", s.Timezone)
	}
	if s.DataExportFormat != "json" {
		return fmt.Errorf("unsupported export format %q", s.DataExportFormat)
	}
	return nil
}
