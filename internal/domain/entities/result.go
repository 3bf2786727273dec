package entities

// Remark is the encouragement line shown on the result screen.
type Remark string

const (
	RemarkPerfect   Remark = "perfect"
	RemarkGreat     Remark = "great"
	RemarkKeepGoing Remark = "keep_going"
)

// Result summarises a finished round.
type Result struct {
	Score      int
	Total      int
	Percentage int
	TimedOut   bool // round ended because the countdown reached zero
	Remark     Remark
}

// NewResult computes the result for score correct answers out of total.
func NewResult(score, total int, timedOut bool) Result {
	pct := Percentage(score, total)
	return Result{
		Score:      score,
		Total:      total,
		Percentage: pct,
		TimedOut:   timedOut,
		Remark:     remarkFor(pct),
	}
}

// Percentage returns 100*score/total rounded half-up. A zero total yields 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*score + total) / (2 * total)
}

func remarkFor(pct int) Remark {
	switch {
	case pct == 100:
		return RemarkPerfect
	case pct > 70:
		return RemarkGreat
	default:
		return RemarkKeepGoing
	}
}

// Progress describes how far the current round has advanced.
type Progress struct {
	Completed int
	Remaining int
	Total     int
	BarPct    int // completed share in percent, never below 5
}

// NewProgress computes round progress from the remaining queue length.
func NewProgress(remaining, total int) Progress {
	completed := total - remaining
	pct := 0
	if total > 0 {
		pct = completed * 100 / total
	}
	if pct < 5 {
		pct = 5
	}
	return Progress{
		Completed: completed,
		Remaining: remaining,
		Total:     total,
		BarPct:    pct,
	}
}
