package render

const (
	FallbackTeacher   = "Кафедра"
	ClassroomSep      = " • "
	FallbackTime      = "00:00"
	FallbackTypeClass = "type-pr"
	EmptyWeekText     = "Занятий нет"
)

const (
	FirstDay = 1
	LastDay  = 6
	Weeks    = 4
)

type lessonType struct {
	Class string
	Badge string
}

type slotTime struct {
	Start string
	End   string
}

var lessonTypes = map[string]lessonType{
	"Лек":  {Class: "type-lk", Badge: "Лекция"},
	"Прак": {Class: "type-pr", Badge: "Практика"},
	"Лаб":  {Class: "type-lab", Badge: "Лаб"},
}

var dayNames = map[int]string{
	1: "Понедельник",
	2: "Вторник",
	3: "Среда",
	4: "Четверг",
	5: "Пятница",
	6: "Суббота",
}

var slotTimes = map[int]slotTime{
	1: {"09:00", "10:30"},
	2: {"10:40", "12:10"},
	3: {"12:40", "14:10"},
	4: {"14:20", "15:50"},
	5: {"16:20", "17:50"},
	6: {"18:00", "19:30"},
	7: {"19:40", "21:10"}, // not expected in practice
}

// LessonType returns the CSS class and badge text for a lesson type code.
// Unknown codes use the practice class with the raw code as the badge.
func LessonType(code string) (class, badge string) {
	t, ok := lessonTypes[code]
	if !ok {
		return FallbackTypeClass, code
	}
	return t.Class, t.Badge
}

func DayName(day int) string {
	return dayNames[day]
}

// SlotTime returns the start and end time of a numbered slot.
func SlotTime(slot int) (start, end string) {
	t, ok := slotTimes[slot]
	if !ok {
		return FallbackTime, FallbackTime
	}
	return t.Start, t.End
}

type Parity string

const (
	Odd  = Parity("odd")
	Even = Parity("even")
)

// WeekParity classifies a tracked week: weeks 1 and 3 are odd, 2 and 4 even.
func WeekParity(week int) Parity {
	if week%2 != 0 {
		return Odd
	}
	return Even
}
