// Package leaderboard persists and ranks the top Block Breaker scores.
//
// The board lives in a single JSON file holding an array of
// {"score": int, "lives": int} objects, sorted by score descending and
// capped at MaxEntries. Every AddScore rewrites the whole file.
package leaderboard

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockbreaker/internal/logging"
	"github.com/vovakirdan/blockbreaker/internal/paths"
)

// MaxEntries is the number of scores kept on the board.
const MaxEntries = 10

// ErrMalformed is returned when the persisted board is not a JSON array.
var ErrMalformed = errors.New("leaderboard: malformed data")

// ScoreEntry is one finished game on the board.
type ScoreEntry struct {
	Score int `json:"score"`
	Lives int `json:"lives"` // Lives left when the game ended
}

// History receives every finished game, not just the top ones.
// storage.Store implements it.
type History interface {
	SaveScore(score, lives int) (int64, error)
}

// Board is the in-memory ranked list backed by a JSON file.
// It is not safe for concurrent use.
type Board struct {
	path    string
	entries []ScoreEntry
	history History
	logger  *log.Logger
}

// Option configures a Board.
type Option func(*Board)

// WithHistory archives every added score into h.
func WithHistory(h History) Option {
	return func(b *Board) {
		b.history = h
	}
}

// WithLogger sets the logger used to report recovered persistence errors.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		b.logger = l
	}
}

// Open loads the board at path (a leading ~ is expanded).
// A missing file yields an empty board. An unreadable or malformed file is
// logged and also yields an empty board: the game never stops over its
// leaderboard. The next AddScore overwrites the bad file.
func Open(path string, opts ...Option) (*Board, error) {
	resolved, err := paths.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}

	b := &Board{path: resolved}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = logging.Discard()
	}

	entries, err := Load(resolved)
	if err != nil {
		b.logger.Warn("leaderboard unreadable, starting empty", "path", resolved, "error", err)
		entries = nil
	}
	b.entries = entries
	return b, nil
}

// Load reads and ranks the board stored at path.
// A missing file is an empty board. Data that is not a JSON array returns
// an error wrapping ErrMalformed. Array elements that are not well-formed
// entries are dropped.
func Load(path string) ([]ScoreEntry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return []ScoreEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses a persisted board.
func Decode(data []byte) ([]ScoreEntry, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	entries := make([]ScoreEntry, 0, len(raw))
	for _, r := range raw {
		if e, ok := decodeEntry(r); ok {
			entries = append(entries, e)
		}
	}
	return rank(entries), nil
}

// decodeEntry accepts only objects carrying integer score and lives keys.
func decodeEntry(r json.RawMessage) (ScoreEntry, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r, &fields); err != nil || fields == nil {
		return ScoreEntry{}, false
	}

	scoreRaw, okScore := fields["score"]
	livesRaw, okLives := fields["lives"]
	if !okScore || !okLives {
		return ScoreEntry{}, false
	}

	var e ScoreEntry
	if json.Unmarshal(scoreRaw, &e.Score) != nil || json.Unmarshal(livesRaw, &e.Lives) != nil {
		return ScoreEntry{}, false
	}
	return e, wellFormed(e)
}

func wellFormed(e ScoreEntry) bool {
	return e.Score >= 0 && e.Lives >= 0
}

// rank drops invalid entries, sorts by score descending keeping the
// relative order of ties, and truncates to MaxEntries.
func rank(entries []ScoreEntry) []ScoreEntry {
	entries = slices.DeleteFunc(entries, func(e ScoreEntry) bool {
		return !wellFormed(e)
	})
	slices.SortStableFunc(entries, func(a, b ScoreEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}

// AddScore records a finished game, re-ranks the board and rewrites the file.
// The in-memory board is updated even when the write fails; the returned
// error only reports that this run's board was not persisted.
func (b *Board) AddScore(score, lives int) error {
	next := make([]ScoreEntry, 0, len(b.entries)+1)
	next = append(next, b.entries...)
	next = append(next, ScoreEntry{Score: score, Lives: lives})
	b.entries = rank(next)

	if b.history != nil {
		if _, err := b.history.SaveScore(score, lives); err != nil {
			b.logger.Warn("score history not saved", "score", score, "error", err)
		}
	}

	return b.save()
}

// TopScores returns a copy of the ranked board, highest score first.
func (b *Board) TopScores() []ScoreEntry {
	return slices.Clone(b.entries)
}

// Path returns the resolved file location.
func (b *Board) Path() string {
	return b.path
}

// save writes the board to a temp file and renames it over the old one.
func (b *Board) save() error {
	data, err := json.MarshalIndent(b.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("leaderboard: cannot encode: %w", err)
	}

	if err := paths.EnsureDir(b.path); err != nil {
		return fmt.Errorf("leaderboard: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(b.path), ".leaderboard-*.json")
	if err != nil {
		return fmt.Errorf("leaderboard: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("leaderboard: cannot write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("leaderboard: cannot write %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("leaderboard: cannot replace %s: %w", b.path, err)
	}
	return nil
}
