package assist

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/taskmind/taskmind/internal/domain/todo"
)

// Period selects the analysis window.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
)

// IsValid returns true if the period is one of the defined constants.
func (p Period) IsValid() bool {
	switch p {
	case PeriodToday, PeriodWeek:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Period) String() string {
	return string(p)
}

// Korean returns the period label used in prompts.
func (p Period) Korean() string {
	if p == PeriodToday {
		return "오늘"
	}
	return "이번 주"
}

// Snapshot is the todo-shaped record the analysis pipeline consumes. Callers
// supply these directly; they need not be full Todo entities.
type Snapshot struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Completed  bool          `json:"completed"`
	Priority   todo.Priority `json:"priority"`
	DueDate    *time.Time    `json:"due_date"`
	Categories []string      `json:"category"`
}

// overdue reports whether the snapshot is incomplete with a past due date.
func (s *Snapshot) overdue(now time.Time) bool {
	return !s.Completed && s.DueDate != nil && s.DueDate.Before(now)
}

// Analysis is the structured result of the analysis pipeline. It is
// ephemeral: produced per request, never persisted, returned verbatim from
// the model (no repair pass).
type Analysis struct {
	Summary         string   `json:"summary"`
	UrgentTasks     []string `json:"urgentTasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// EmptyAnalysis is the canned result for an empty todo list. The model is
// never called in that case.
func EmptyAnalysis() Analysis {
	return Analysis{
		Summary:         "아직 할 일이 없습니다.",
		UrgentTasks:     []string{},
		Insights:        []string{"할 일을 추가하여 생산성을 관리해보세요!"},
		Recommendations: []string{"새로운 할 일을 추가해보세요."},
	}
}

// PriorityStat holds the count and completion figures for one priority level.
type PriorityStat struct {
	Total     int
	Completed int
	Rate      int
}

// CategoryCount pairs a category label with its frequency.
type CategoryCount struct {
	Name  string
	Count int
}

// WeekdayCount pairs a Korean weekday label with the number of due dates
// falling on it.
type WeekdayCount struct {
	Day   string
	Count int
}

// Stats are the derived figures embedded into the analysis prompt.
type Stats struct {
	Total          int
	Completed      int
	CompletionRate int
	High           PriorityStat
	Medium         PriorityStat
	Low            PriorityStat
	Overdue        int
	TopCategories  []CategoryCount
	Weekdays       []WeekdayCount
}

// ComputeStats derives the statistics block for the given snapshots.
// Completion rates are rounded percentages and are exactly 0 when the
// denominator is 0. Weekday distribution is only computed for the week
// period. TopCategories holds at most the three most frequent labels.
func ComputeStats(todos []Snapshot, period Period, now time.Time) Stats {
	var st Stats
	st.Total = len(todos)

	categoryCounts := make(map[string]int)
	weekdayCounts := make(map[string]int)

	for i := range todos {
		t := &todos[i]
		if t.Completed {
			st.Completed++
		}
		if t.overdue(now) {
			st.Overdue++
		}

		switch t.Priority {
		case todo.PriorityHigh:
			tally(&st.High, t.Completed)
		case todo.PriorityLow:
			tally(&st.Low, t.Completed)
		default:
			tally(&st.Medium, t.Completed)
		}

		for _, c := range t.Categories {
			if c != "" {
				categoryCounts[c]++
			}
		}

		if period == PeriodWeek && t.DueDate != nil {
			weekdayCounts[koreanWeekday(t.DueDate.Weekday())]++
		}
	}

	st.CompletionRate = roundedRate(st.Completed, st.Total)
	st.High.Rate = roundedRate(st.High.Completed, st.High.Total)
	st.Medium.Rate = roundedRate(st.Medium.Completed, st.Medium.Total)
	st.Low.Rate = roundedRate(st.Low.Completed, st.Low.Total)

	st.TopCategories = topCategories(categoryCounts, 3)
	st.Weekdays = sortedWeekdays(weekdayCounts)

	return st
}

// Digest renders the deterministic per-todo listing embedded in the
// analysis prompt: index, completion marker, title, priority glyph,
// formatted due date, and an overdue flag.
func Digest(todos []Snapshot, now time.Time) string {
	lines := make([]string, len(todos))
	for i := range todos {
		t := &todos[i]

		status := "[미완료]"
		if t.Completed {
			status = "[완료]"
		}

		due := "기한 없음"
		if t.DueDate != nil {
			due = KoreanDate(*t.DueDate)
		}

		line := fmt.Sprintf("%d. %s %s - 우선순위: %s, 마감일: %s",
			i+1, status, t.Title, t.Priority.Glyph(), due)
		if t.overdue(now) {
			line += " ⚠️지연"
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// KoreanDate formats a date as "2026년 1월 10일".
func KoreanDate(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}

// KoreanDateTime formats the "current information" header values for
// prompts: the localized date with weekday, and a 24h clock time.
func KoreanDateTime(t time.Time) (date, clock string) {
	date = fmt.Sprintf("%s %s", KoreanDate(t), koreanWeekday(t.Weekday()))
	clock = t.Format("15:04")
	return date, clock
}

func tally(ps *PriorityStat, completed bool) {
	ps.Total++
	if completed {
		ps.Completed++
	}
}

func roundedRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func topCategories(counts map[string]int, limit int) []CategoryCount {
	out := make([]CategoryCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, CategoryCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sortedWeekdays(counts map[string]int) []WeekdayCount {
	out := make([]WeekdayCount, 0, len(counts))
	for day, count := range counts {
		out = append(out, WeekdayCount{Day: day, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Day < out[j].Day
	})
	return out
}

var koreanWeekdays = [...]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

func koreanWeekday(d time.Weekday) string {
	return koreanWeekdays[int(d)]
}
