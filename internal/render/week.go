package render

import (
	"fmt"
	"strings"

	"github.com/danilapolakov92-cpu/danilapolakov92-cpu.github.io/internal/mirea"
	"golang.org/x/exp/slices"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

type LessonView struct {
	Slot    int
	Start   string
	End     string
	Class   string
	Badge   string
	Subject string
	Details string
}

type DayView struct {
	Day     int
	Name    string
	Lessons []LessonView
}

// Week holds the lessons of one tracked week, grouped by day. Days without
// lessons that week are left out.
type Week struct {
	Index  int
	Parity Parity
	Days   []DayView
}

func (w Week) LessonCount() int {
	count := 0
	for _, day := range w.Days {
		count += len(day.Lessons)
	}
	return count
}

func clean(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

func lessonDetails(lesson mirea.Lesson) string {
	details := clean(lesson.Teacher)
	if details == "" {
		details = FallbackTeacher
	}

	if classroom, ok := lesson.Classroom(); ok {
		if classroom = clean(classroom); classroom != "" {
			details += ClassroomSep + classroom
		}
	}

	return details
}

func newLessonView(slot int, lesson mirea.Lesson) LessonView {
	class, badge := LessonType(lesson.Type)
	start, end := SlotTime(slot)

	return LessonView{
		Slot:    slot,
		Start:   start,
		End:     end,
		Class:   class,
		Badge:   clean(badge),
		Subject: clean(lesson.Name),
		Details: lessonDetails(lesson),
	}
}

func sortedSlots(slots map[int][]mirea.Lesson) []int {
	keys := make([]int, 0, len(slots))
	for slot := range slots {
		keys = append(keys, slot)
	}
	slices.Sort(keys)
	return keys
}

// BuildWeek selects the lessons of the group held in the given week.
func BuildWeek(group mirea.Group, week int) Week {
	w := Week{
		Index:  week,
		Parity: WeekParity(week),
	}

	for day := FirstDay; day <= LastDay; day++ {
		slots, ok := group.Schedule.Day(day)
		if !ok {
			continue
		}

		lessons := []LessonView{}
		for _, slot := range sortedSlots(slots) {
			for _, lesson := range slots[slot] {
				if !lesson.Weeks.Has(week) {
					continue
				}
				lessons = append(lessons, newLessonView(slot, lesson))
			}
		}

		if len(lessons) == 0 {
			continue
		}

		w.Days = append(w.Days, DayView{
			Day:     day,
			Name:    DayName(day),
			Lessons: lessons,
		})
	}

	return w
}

// RenderWeek renders the HTML fragment of one tracked week.
func RenderWeek(group mirea.Group, week int) string {
	return BuildWeek(group, week).HTML()
}

func (w Week) HTML() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n<!-- week %d -->\n", w.Index))
	sb.WriteString(fmt.Sprintf("<div id=\"week-%d\" class=\"week-content\" data-parity=\"%s\">\n", w.Index, w.Parity))
	sb.WriteString("    <div class=\"week-visual-header\">\n")
	sb.WriteString("        <div class=\"big-label\">Учебная неделя</div>\n")
	sb.WriteString(fmt.Sprintf("        <div class=\"big-num\">%02d</div>\n", w.Index))
	sb.WriteString("    </div>\n")
	sb.WriteString("    <div class=\"days-wrapper\">\n")

	for _, day := range w.Days {
		writeDay(&sb, day)
	}

	if len(w.Days) == 0 {
		sb.WriteString(fmt.Sprintf("        <div class=\"empty-week\" style=\"text-align:center; padding: 2rem; color: #999;\">%s</div>\n", EmptyWeekText))
	}

	sb.WriteString("    </div>\n")
	sb.WriteString("</div>\n")

	return sb.String()
}

func writeDay(sb *strings.Builder, day DayView) {
	sb.WriteString("        <div class=\"day-card\">\n")
	sb.WriteString(fmt.Sprintf("            <div class=\"day-header\">%s</div>\n", day.Name))

	for _, lesson := range day.Lessons {
		sb.WriteString(fmt.Sprintf("            <div class=\"pair-item %s\">\n", lesson.Class))
		sb.WriteString(fmt.Sprintf(
			"                <div class=\"pair-time\"><div class=\"num\">%d</div><div class=\"interval\"><span>%s</span><span>%s</span></div></div>\n",
			lesson.Slot, lesson.Start, lesson.End,
		))
		sb.WriteString("                <div class=\"pair-content\">\n")
		sb.WriteString(fmt.Sprintf("                    <div class=\"subject\">%s</div>\n", html.EscapeString(lesson.Subject)))
		sb.WriteString(fmt.Sprintf("                    <div class=\"teacher\">%s</div>\n", html.EscapeString(lesson.Details)))
		sb.WriteString(fmt.Sprintf("                    <span class=\"badge\">%s</span>\n", html.EscapeString(lesson.Badge)))
		sb.WriteString("                </div>\n")
		sb.WriteString("            </div>\n")
	}

	sb.WriteString("        </div>\n")
}
