package searcher

import "math"

// Episode rewards, credited to the side that made the move into a node.
const (
	Win  = 1.0
	Loss = -Win
)

// CSquared is the squared UCT exploration constant.
const CSquared = 2.0

// uct ranks the children of a node that was visited N times.
type uct struct {
	exploration float64 // c^2 * ln(N)
}

func newUCT(parentVisits int) uct {
	if parentVisits <= 0 {
		panic("cannot rank the children of an unvisited node")
	}
	return uct{exploration: CSquared * math.Log(float64(parentVisits))}
}

// value is q/n + sqrt(c^2*ln(N)/n).
func (u uct) value(rewards float64, visits int) float64 {
	if visits <= 0 {
		panic("cannot rank an unvisited child")
	}
	n := float64(visits)
	return rewards/n + math.Sqrt(u.exploration/n)
}
