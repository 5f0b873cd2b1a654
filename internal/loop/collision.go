package loop

// Field is what an outcome is decided on.
type Field interface {
	AllKilled() bool
	ReachedBottom() bool
}

// Evaluate decides the outcome after collisions are resolved.
// A cleared field wins even when the last move also reached the bottom.
func Evaluate(f Field) Outcome {
	if f.AllKilled() {
		return OutcomeWin
	}
	if f.ReachedBottom() {
		return OutcomeLose
	}
	return OutcomeContinue
}
