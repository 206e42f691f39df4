package task

import (
	"regexp"
	"strings"
)

// lowPriorityPhrases override every other priority signal. A task described
// as "urgent but not important" is still low priority.
var lowPriorityPhrases = []string{
	"not urgent",
	"no urgency",
	"low priority",
	"not important",
}

var highPriorityWords = []string{
	"urgent",
	"important",
	"asap",
	"immediately",
	"critical",
	"today",
}

var mediumPriorityWords = []string{
	"soon",
	"this week",
	"next few days",
}

// deadlinePatterns are tried in order; the first one that matches anywhere in
// the text wins, regardless of where later patterns would match.
var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`today`),
	regexp.MustCompile(`tomorrow`),
	regexp.MustCompile(`within \d+ (?:days?|weeks?|months?)`),
	regexp.MustCompile(`by (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
	regexp.MustCompile(`this (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
	regexp.MustCompile(`next (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
	regexp.MustCompile(`next (?:week|month)`),
}

// ExtractDeadline returns the first deadline phrase found in text, matched
// case-insensitively and returned verbatim as it appears in the lowercased
// text. Returns DeadlineUnspecified when no pattern matches.
func ExtractDeadline(text string) string {
	text = strings.ToLower(text)
	for _, re := range deadlinePatterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return DeadlineUnspecified
}

// ExtractPriority infers a priority level from text. Low-priority phrases take
// precedence over everything else, then high keywords, then medium keywords.
// Matching is plain substring containment, not word-boundary aware.
func ExtractPriority(text string) string {
	text = strings.ToLower(text)

	for _, phrase := range lowPriorityPhrases {
		if strings.Contains(text, phrase) {
			return PriorityLow
		}
	}
	for _, word := range highPriorityWords {
		if strings.Contains(text, word) {
			return PriorityHigh
		}
	}
	for _, word := range mediumPriorityWords {
		if strings.Contains(text, word) {
			return PriorityMedium
		}
	}
	return PriorityMedium
}

// Parse builds a Task from raw user input. The stored text is trimmed;
// extraction runs on the input as given.
func Parse(input string) Task {
	return Task{
		RawText:  strings.TrimSpace(input),
		Deadline: ExtractDeadline(input),
		Priority: ExtractPriority(input),
	}
}
