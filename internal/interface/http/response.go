package http

import "github.com/syedmuhib/meeting-assistant/internal/domain/notes"

// presentAnalysis applies the presentation rules to a finished analysis:
// every list is de-duplicated preserving first-seen order. The domain keeps
// duplicates so extraction output stays faithful to the document.
func presentAnalysis(analysis notes.Analysis) notes.Analysis {
	analysis.Deadlines = dedupe(analysis.Deadlines)
	analysis.People = dedupe(analysis.People)
	analysis.ActionItems = dedupe(analysis.ActionItems)
	return analysis
}

func dedupe(values []string) []string {
	if values == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
