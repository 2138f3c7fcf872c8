package quickcapture

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"timeblock/pkg/datemath"
)

// Pattern tables. Rule order is part of the contract: the first match
// in each category wins, and the urgency check runs before the
// low-priority check.
var (
	urgentRe   = regexp.MustCompile(`(?i)urgent|important|asap|critical|!!!`)
	lowPrioRe  = regexp.MustCompile(`(?i)low priority|someday|maybe|when possible`)
	clockRe    = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm)?`)
	bareHourRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)\b`)
	durationRe = regexp.MustCompile(`(?i)(\d+)\s*(hour|hr|minute|min)`)
	tagRe      = regexp.MustCompile(`#\w+`)

	// relativeDateRe feeds datemath.Parser.Parse, which owns the
	// arithmetic for these phrases.
	relativeDateRe = regexp.MustCompile(`\bin \d+ (?:days?|weeks?|months?)\b`)
)

var partOfDay = []struct {
	word string
	hour int
}{
	{"morning", 9},
	{"afternoon", 14},
	{"evening", 18},
	{"noon", 12},
	{"night", 20},
}

var urgentWords = []string{"urgent", "important", "asap", "critical", "!!!"}

var lowPriorityWords = []string{"low priority", "someday", "maybe", "when possible"}

var eventKeywords = []string{
	"meeting", "call", "appointment", "lunch", "dinner", "breakfast",
	"conference", "interview", "presentation", "workshop", "class",
	"meet", "catch up", "hangout", "party", "event",
}

// Parse extracts a structured task or event candidate from one line of
// free text. It returns nil for empty or whitespace-only input. The
// result is deterministic given (input, now): relative date keywords
// resolve against now in the parser's timezone.
func Parse(input string, now time.Time, dm *datemath.Parser) *Parsed {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	lower := strings.ToLower(input)

	p := &Parsed{
		Kind:            KindTask,
		Priority:        inferPriority(lower),
		Time:            inferTime(lower),
		Date:            inferDate(lower, now, dm),
		DurationMinutes: inferDuration(lower),
		Tags:            extractTags(input),
		Title:           cleanTitle(input),
	}

	keyword := hasEventKeyword(lower)
	if p.Time != nil || keyword || p.Date != nil {
		p.Kind = KindEvent
	}

	// Confidence: base by kind, then the two combination rules in
	// last-assignment-wins order. Time plus date outranks time plus
	// keyword because it is assigned last.
	if p.Kind == KindEvent {
		p.Confidence = 0.7
	} else {
		p.Confidence = 0.5
	}
	if p.Time != nil && keyword {
		p.Confidence = 0.9
	}
	if p.Time != nil && p.Date != nil {
		p.Confidence = 0.95
	}

	return p
}

func inferPriority(lower string) string {
	if urgentRe.MatchString(lower) {
		return "P1"
	}
	if lowPrioRe.MatchString(lower) {
		return "P3"
	}
	return "P2"
}

// inferTime tries an explicit HH:MM pattern, then a bare hour with
// am/pm, then a part-of-day keyword.
func inferTime(lower string) *TimeOfDay {
	if m := clockRe.FindStringSubmatch(lower); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return normalizeClock(hours, minutes, m[3])
	}

	if m := bareHourRe.FindStringSubmatch(lower); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return normalizeClock(hours, 0, m[2])
	}

	for _, pd := range partOfDay {
		if strings.Contains(lower, pd.word) {
			return &TimeOfDay{Hours: pd.hour}
		}
	}

	return nil
}

// normalizeClock applies 12-hour-clock rules: pm adds 12 below noon,
// 12am maps to 0.
func normalizeClock(hours, minutes int, meridiem string) *TimeOfDay {
	switch strings.ToLower(meridiem) {
	case "pm":
		if hours < 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	}
	return &TimeOfDay{Hours: hours, Minutes: minutes}
}

// inferDate checks literal keywords in a fixed priority order: today,
// tomorrow, "next week", named weekdays resolved to the next
// occurrence strictly after today, then relative "in N days/weeks/
// months" phrases delegated to the date parser.
func inferDate(lower string, now time.Time, dm *datemath.Parser) *time.Time {
	if strings.Contains(lower, "today") {
		d := dm.StartOfDay(now)
		return &d
	}
	if strings.Contains(lower, "tomorrow") {
		d := dm.StartOfDay(now.AddDate(0, 0, 1))
		return &d
	}
	if strings.Contains(lower, "next week") {
		d := dm.StartOfDay(now.AddDate(0, 0, 7))
		return &d
	}

	for _, name := range weekdayScanOrder {
		if strings.Contains(lower, name) {
			wd, _ := datemath.Weekday(name)
			d := dm.NextWeekday(now, wd)
			return &d
		}
	}

	if phrase := relativeDateRe.FindString(lower); phrase != "" {
		if d, err := dm.Parse(phrase, now); err == nil {
			return &d
		}
	}

	return nil
}

// weekdayScanOrder fixes the date inference scan order Monday..Sunday.
var weekdayScanOrder = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

func inferDuration(lower string) int {
	m := durationRe.FindStringSubmatch(lower)
	if m == nil {
		return 60
	}
	n, _ := strconv.Atoi(m[1])
	unit := strings.ToLower(m[2])
	if unit == "hour" || unit == "hr" {
		return n * 60
	}
	return n
}

// extractTags collects #word tokens in order of appearance, duplicates
// included.
func extractTags(input string) []string {
	matches := tagRe.FindAllString(input, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, strings.TrimPrefix(m, "#"))
	}
	return tags
}

func hasEventKeyword(lower string) bool {
	for _, kw := range eventKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// cleanTitle strips #tag tokens and priority keyword substrings from
// the raw input. This is plain substring surgery on the original text,
// case-insensitive for the keyword strip.
func cleanTitle(input string) string {
	title := tagRe.ReplaceAllString(input, "")

	for _, word := range append(append([]string{}, urgentWords...), lowPriorityWords...) {
		title = stripFold(title, word)
	}

	return strings.TrimSpace(title)
}

// stripFold removes every case-insensitive occurrence of word.
func stripFold(s, word string) string {
	lower := strings.ToLower(s)
	word = strings.ToLower(word)
	for {
		i := strings.Index(lower, word)
		if i < 0 {
			return s
		}
		s = s[:i] + s[i+len(word):]
		lower = lower[:i] + lower[i+len(word):]
	}
}
