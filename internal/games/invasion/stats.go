package invasion

import "sync"

// Phase is the session state. There is no separate paused state: the freeze
// after a lost ship happens inside PhaseActive.
type Phase int

const (
	PhaseInactive Phase = iota
	PhaseActive
)

func (p Phase) String() string {
	if p == PhaseActive {
		return "active"
	}
	return "inactive"
}

// Stats tracks lives, score and level for the current game.
type Stats struct {
	ShipsLeft int
	Score     int
	Level     int
	HighScore int
	Phase     Phase
}

// Active reports whether a game is in progress.
func (s Stats) Active() bool {
	return s.Phase == PhaseActive
}

// Reset starts the counters of a new game. HighScore is kept.
func (s *Stats) Reset(shipLimit int) {
	s.ShipsLeft = shipLimit
	s.Score = 0
	s.Level = 1
}

// HighScoreBoard is the best score seen by the process. One board may be
// shared by several concurrent games.
type HighScoreBoard struct {
	mu   sync.Mutex
	best int
}

// NewHighScoreBoard creates an empty board.
func NewHighScoreBoard() *HighScoreBoard {
	return &HighScoreBoard{}
}

// Best returns the highest score submitted so far.
func (b *HighScoreBoard) Best() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.best
}

// Submit records score and returns the best score, which never decreases.
func (b *HighScoreBoard) Submit(score int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if score > b.best {
		b.best = score
	}
	return b.best
}
