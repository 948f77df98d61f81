// meta/meta.go
package meta

// DefaultDepth is the search depth in plies when none is configured.
const DefaultDepth = 4

// DefaultEpisodes is the number of MCTS episodes per move when none is
// configured.
const DefaultEpisodes = 1000

// MAX_TURNS caps the number of plies of a local game.
const MAX_TURNS = 300

// GO_ROUTINES defines the number of games an experiment plays at once.
const GO_ROUTINES = 8

// GAMES defines the number of games per match-up.
const GAMES = 10
