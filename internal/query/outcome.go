package query

// Outcome is a match result seen from one side.
type Outcome string

const (
	Win  Outcome = "Win"
	Draw Outcome = "Draw"
	Loss Outcome = "Loss"
)

// Classify compares goals for and against. It returns nil when either side
// is unknown, so the match carries no label.
func Classify(goalsFor, goalsAgainst *int) *Outcome {
	if goalsFor == nil || goalsAgainst == nil {
		return nil
	}
	var o Outcome
	switch {
	case *goalsFor > *goalsAgainst:
		o = Win
	case *goalsFor == *goalsAgainst:
		o = Draw
	default:
		o = Loss
	}
	return &o
}

// Reverse returns the same result from the opponent's side.
func (o Outcome) Reverse() Outcome {
	switch o {
	case Win:
		return Loss
	case Loss:
		return Win
	}
	return o
}
