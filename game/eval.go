package game

// EvaluateMaterial counts the pieces of the side to move minus those of its
// opponent. Finished games score 0 whoever won: terminal positions are scored
// by the searcher.
func EvaluateMaterial(s State) int {
	if s.GameOver() {
		return 0
	}
	current := s.Player()
	return s.NumPiecesOf(current) - s.NumPiecesOf(current.Opponent())
}

// EvaluateKingWeighted is EvaluateMaterial with kings counting double.
func EvaluateKingWeighted(s State) int {
	if s.GameOver() {
		return 0
	}
	current := s.Player()
	opponent := current.Opponent()
	return weightedMaterial(s, current) - weightedMaterial(s, opponent)
}

// weightedMaterial scores a man as 1 and a king as 2
func weightedMaterial(s State, c Color) int {
	return s.NumPiecesOf(c) + s.NumKingsOf(c)
}

// Evaluators maps evaluator names used in experiment configs to functions.
var Evaluators = map[string]Evaluate{
	"material":      EvaluateMaterial,
	"king-weighted": EvaluateKingWeighted,
}
