package notes

import "strings"

// DefaultTriggerPhrases flag a sentence as an action item when present.
func DefaultTriggerPhrases() []string {
	return []string{"will", "must", "need to", "should", "action", "todo", "follow up"}
}

func deadlinesFrom(spans []Span) []string {
	var out []string
	for _, span := range spans {
		if span.Label == "DATE" || span.Label == "TIME" {
			out = append(out, span.Text)
		}
	}
	return out
}

func peopleFrom(spans []Span) []string {
	var out []string
	for _, span := range spans {
		if span.Label == "PERSON" {
			out = append(out, span.Text)
		}
	}
	return out
}

func actionItemsFrom(sentences []string, triggers []string) []string {
	var out []string
	for _, sentence := range sentences {
		lowered := strings.ToLower(sentence)
		for _, trigger := range triggers {
			if strings.Contains(lowered, trigger) {
				out = append(out, strings.TrimSpace(sentence))
				break
			}
		}
	}
	return out
}
