package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
)

const Placeholder = "{{SCHEDULE_CONTENT}}"

var ErrPlaceholderMissing = errors.New("template has no " + Placeholder + " placeholder")

var weekSelector = cascadia.MustCompile("div.week-content")

// Content concatenates the rendered weeks.
func Content(weeks []Week) string {
	var sb strings.Builder
	for _, week := range weeks {
		sb.WriteString(week.HTML())
	}
	return sb.String()
}

// CheckTemplate reports whether the template can be substituted into.
func CheckTemplate(template string) error {
	if !strings.Contains(template, Placeholder) {
		return ErrPlaceholderMissing
	}
	return nil
}

// Substitute replaces the first placeholder in the template with content.
func Substitute(template, content string) (string, error) {
	if err := CheckTemplate(template); err != nil {
		return "", err
	}
	return strings.Replace(template, Placeholder, content, 1), nil
}

// Verify parses the assembled page and checks that each of the first n week
// containers is present exactly once.
func Verify(page string, n int) error {
	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return fmt.Errorf("parse page: %w", err)
	}

	found := map[string]int{}
	goquery.NewDocumentFromNode(root).FindMatcher(weekSelector).Each(func(i int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		found[id]++
	})

	for week := 1; week <= n; week++ {
		id := fmt.Sprintf("week-%d", week)
		if found[id] != 1 {
			err = multierr.Append(err, fmt.Errorf("%s: found %d times", id, found[id]))
		}
	}

	return err
}
