// meta/meta.go
package meta

// GO_ROUTINES defines the number of games played at the same time in experiments.
const GO_ROUTINES = 8

// GAMES defines the number of games per matchup.
const GAMES = 10

// DEFAULT_DEPTH defines the search budget used when none is given.
const DEFAULT_DEPTH = 4

// MAX_TURNS caps unlimited searches and bounds recursion.
const MAX_TURNS = 300
