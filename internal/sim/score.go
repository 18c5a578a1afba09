package sim

import "time"

// PublishInterval is the cadence at which the displayed score is refreshed.
const PublishInterval = 100 * time.Millisecond

// ScoreKeeper tracks score and lives. The distance accumulator is exact; the
// displayed integer is a rate-limited snapshot of it.
type ScoreKeeper struct {
	distance     float64
	bonus        int
	display      int
	high         int
	sincePublish time.Duration

	lives      int
	startLives int
	maxLives   int
}

// NewScoreKeeper creates a keeper with the given starting and maximum lives.
func NewScoreKeeper(startLives, maxLives int) *ScoreKeeper {
	if maxLives < startLives {
		maxLives = startLives
	}
	return &ScoreKeeper{
		lives:      startLives,
		startLives: startLives,
		maxLives:   maxLives,
	}
}

// Accumulate adds distance points. Negative amounts are ignored.
func (s *ScoreKeeper) Accumulate(points float64) {
	if points > 0 {
		s.distance += points
	}
}

// Add adds event points. Negative amounts are ignored.
func (s *ScoreKeeper) Add(points int) {
	if points > 0 {
		s.bonus += points
	}
}

// Value is the authoritative integer score.
func (s *ScoreKeeper) Value() int {
	return int(s.distance) + s.bonus
}

// Distance is the raw accumulator.
func (s *ScoreKeeper) Distance() float64 {
	return s.distance
}

// Publish refreshes the displayed score once PublishInterval has passed and
// reports whether it did.
func (s *ScoreKeeper) Publish(dt time.Duration) bool {
	s.sincePublish += dt
	if s.sincePublish < PublishInterval {
		return false
	}
	s.sincePublish = 0
	s.Flush()
	return true
}

// Flush publishes immediately.
func (s *ScoreKeeper) Flush() {
	s.display = s.Value()
	s.high = max(s.high, s.display)
}

// Display is the throttled score shown to the player.
func (s *ScoreKeeper) Display() int {
	return s.display
}

// High is the best displayed score seen this session.
func (s *ScoreKeeper) High() int {
	return s.high
}

// SeedHigh raises the session high score, e.g. from the scoreboard.
func (s *ScoreKeeper) SeedHigh(h int) {
	s.high = max(s.high, h)
}

// Lives returns the remaining lives.
func (s *ScoreKeeper) Lives() int {
	return s.lives
}

// MaxLives returns the lives cap.
func (s *ScoreKeeper) MaxLives() int {
	return s.maxLives
}

// LoseLife removes a life, never going below zero, and returns what is left.
func (s *ScoreKeeper) LoseLife() int {
	if s.lives > 0 {
		s.lives--
	}
	return s.lives
}

// GainLife adds a life up to the cap and reports whether it did.
func (s *ScoreKeeper) GainLife() bool {
	if s.lives >= s.maxLives {
		return false
	}
	s.lives++
	return true
}

// Reset clears score and restores lives. The session high score survives.
func (s *ScoreKeeper) Reset() {
	s.distance = 0
	s.bonus = 0
	s.display = 0
	s.sincePublish = 0
	s.lives = s.startLives
}
