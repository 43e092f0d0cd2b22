package mirea

import (
	"encoding/json"
	"fmt"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
)

// Group is one entry of the search response's data array.
type Group struct {
	Schedule Schedule `json:"schedule"`
}

// Schedule maps a day of the week (1 = Monday) to the lessons held in each
// numbered slot of that day. The API encodes both keys as strings.
type Schedule map[int]map[int][]Lesson

func (s *Schedule) UnmarshalJSON(data []byte) error {
	raw := map[string]map[string][]Lesson{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	schedule := make(Schedule, len(raw))
	for dayKey, slots := range raw {
		day, err := strconv.Atoi(dayKey)
		if err != nil {
			return fmt.Errorf("schedule: invalid day key %q", dayKey)
		}

		parsed := make(map[int][]Lesson, len(slots))
		for slotKey, lessons := range slots {
			slot, err := strconv.Atoi(slotKey)
			if err != nil {
				return fmt.Errorf("schedule: invalid slot key %q on day %d", slotKey, day)
			}
			parsed[slot] = lessons
		}
		schedule[day] = parsed
	}

	*s = schedule
	return nil
}

// Day returns the slots of the given day, if the group has any lessons that day.
func (s Schedule) Day(day int) (map[int][]Lesson, bool) {
	slots, ok := s[day]
	return slots, ok
}

type Lesson struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Teacher    string   `json:"teacher"`
	Classrooms []string `json:"classrooms"`
	Weeks      Weeks    `json:"weeks"`
}

// Classroom returns the first listed classroom.
func (l Lesson) Classroom() (string, bool) {
	if len(l.Classrooms) == 0 {
		return "", false
	}
	return l.Classrooms[0], true
}

// Weeks is the set of tracked week indices a lesson is held in.
type Weeks struct {
	set mapset.Set[int]
}

func NewWeeks(weeks ...int) Weeks {
	return Weeks{set: mapset.NewThreadUnsafeSet(weeks...)}
}

func (w Weeks) Has(week int) bool {
	if w.set == nil {
		return false
	}
	return w.set.Contains(week)
}

func (w Weeks) Len() int {
	if w.set == nil {
		return 0
	}
	return w.set.Cardinality()
}

func (w *Weeks) UnmarshalJSON(data []byte) error {
	weeks := []int{}
	if err := json.Unmarshal(data, &weeks); err != nil {
		return fmt.Errorf("weeks: %w", err)
	}
	*w = NewWeeks(weeks...)
	return nil
}
