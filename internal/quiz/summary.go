package quiz

import "time"

// Verdict is the result tier shown on the results screen.
type Verdict int

const (
	VerdictKeepPracticing Verdict = iota
	VerdictGood                   // >= 70%
	VerdictExcellent              // >= 80%
	VerdictPerfect                // 100%
)

// Summary holds the data displayed on the results screen.
type Summary struct {
	SessionID string
	Score     int
	Total     int
	Percent   float64 // 0-100
	Verdict   Verdict
	Duration  time.Duration
	Finished  bool
}

// VerdictFor maps a score to its tier. An empty quiz keeps practicing.
func VerdictFor(score, total int) Verdict {
	if total <= 0 {
		return VerdictKeepPracticing
	}
	switch pct := float64(score) / float64(total) * 100; {
	case score == total:
		return VerdictPerfect
	case pct >= 80:
		return VerdictExcellent
	case pct >= 70:
		return VerdictGood
	default:
		return VerdictKeepPracticing
	}
}

// BuildSummary creates a Summary from a session.
func BuildSummary(s *Session, now time.Time) Summary {
	if s == nil {
		return Summary{}
	}
	total := s.Len()
	var pct float64
	if total > 0 {
		pct = float64(s.score) / float64(total) * 100
	}
	return Summary{
		SessionID: s.id,
		Score:     s.score,
		Total:     total,
		Percent:   pct,
		Verdict:   VerdictFor(s.score, total),
		Duration:  s.Duration(now),
		Finished:  s.Finished(),
	}
}
