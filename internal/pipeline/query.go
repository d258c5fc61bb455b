package pipeline

import "strings"

// queryHistoryDepth is how many recent questions are folded into the
// retrieval query so elliptical follow-ups still find the right chunks.
const queryHistoryDepth = 2

// recentQuestions returns the user's last questions that carry retrieval
// signal: control keywords and blank strings are dropped, order is oldest
// first.
func (p *Pipeline) recentQuestions(userID string) []string {
	var out []string
	for _, q := range p.store.RecentQuestions(userID, queryHistoryDepth) {
		if strings.TrimSpace(q) == "" || p.isControlKeyword(q) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// buildQuery joins the surviving recent questions and the current text with
// single spaces, oldest to newest, current last.
func buildQuery(recent []string, current string) string {
	return strings.Join(append(append([]string{}, recent...), current), " ")
}

func (p *Pipeline) isControlKeyword(text string) bool {
	for _, kw := range p.controlKeywords {
		if strings.EqualFold(text, kw) {
			return true
		}
	}
	return false
}
