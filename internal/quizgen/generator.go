// Package quizgen turns a curriculum level and a session key into playable
// questions: it asks the diatonic filter for the candidate pool, samples
// one candidate, and has the player render it.
package quizgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/abiram/tonedrill/internal/audio"
	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/diatonic"
	"github.com/abiram/tonedrill/internal/theory"
)

// ErrNoCandidates signals a configuration inconsistency: the level's item
// set and degree restriction exclude every diatonic candidate. Fatal to
// the level — the caller must refuse to start it, never degrade silently.
var ErrNoCandidates = errors.New("level yields no diatonic candidates")

// Generator produces questions for a level. The random source is injected
// so tests can supply deterministic sequences.
type Generator struct {
	player audio.Player
	rng    *rand.Rand
}

// New creates a Generator. rng must not be nil.
func New(player audio.Player, rng *rand.Rand) *Generator {
	return &Generator{player: player, rng: rng}
}

// Next generates and renders one question for the level in the given key.
func (g *Generator) Next(ctx context.Context, level curriculum.Level, key theory.PitchClass) (*Question, error) {
	if level.Category == theory.CategoryScaleDegree {
		return g.nextScaleDegree(ctx, level, key)
	}

	pool := diatonic.Candidates(level.Category, level.Items, key, level.ScaleDegrees)
	if len(pool) == 0 {
		return nil, fmt.Errorf("level %q: %w", level.ID, ErrNoCandidates)
	}
	c := pool[g.rng.Intn(len(pool))]

	q := &Question{
		ID:            newQuestionID(),
		Category:      level.Category,
		CorrectAnswer: c.Quality,
		Root:          c.Root,
		SessionKey:    key,
		Degree:        c.Degree,
		Choices:       append([]theory.Quality(nil), level.Items...),
		CreatedAt:     time.Now(),
		Direction:     level.Direction,
		Presentation:  level.Presentation,
	}

	rendered, err := g.render(ctx, level, c)
	if err != nil {
		return nil, fmt.Errorf("render question: %w", err)
	}
	q.PlayedNotes = rendered.Notes
	q.PlayDuration = rendered.Duration
	return q, nil
}

func (g *Generator) render(ctx context.Context, level curriculum.Level, c diatonic.Candidate) (audio.Rendered, error) {
	switch level.Category {
	case theory.CategoryInterval:
		return g.player.PlayInterval(ctx, c.Root, c.Quality, level.Direction, level.Presentation)

	case theory.CategoryTriad, theory.CategorySeventhChord:
		offsets, ok := theory.ChordSemitones(level.Category, c.Quality)
		if !ok {
			return audio.Rendered{}, fmt.Errorf("no chord table entry for %s %s", level.Category, c.Quality)
		}
		return g.player.PlayChord(ctx, c.Root, offsets)

	case theory.CategoryMode:
		steps, ok := theory.ModeSteps(c.Quality)
		if !ok {
			return audio.Rendered{}, fmt.Errorf("unknown mode %q", c.Quality)
		}
		return g.player.PlayScale(ctx, c.Root, steps)
	}
	return audio.Rendered{}, fmt.Errorf("unsupported category %q", level.Category)
}

// nextScaleDegree bypasses the diatonic filter: degree selection is direct.
// The question's root is always the session key.
func (g *Generator) nextScaleDegree(ctx context.Context, level curriculum.Level, key theory.PitchClass) (*Question, error) {
	if len(level.Items) == 0 {
		return nil, fmt.Errorf("level %q: %w", level.ID, ErrNoCandidates)
	}
	label := level.Items[g.rng.Intn(len(level.Items))]
	degree, err := strconv.Atoi(string(label))
	if err != nil || degree < 1 || degree > 7 {
		return nil, fmt.Errorf("level %q: bad degree label %q", level.ID, label)
	}

	rendered, err := g.player.PlayScaleDegree(ctx, key, degree-1, level.Context)
	if err != nil {
		return nil, fmt.Errorf("render degree: %w", err)
	}

	return &Question{
		ID:            newQuestionID(),
		Category:      theory.CategoryScaleDegree,
		CorrectAnswer: label,
		Root:          key,
		SessionKey:    key,
		Degree:        -1,
		Choices:       append([]theory.Quality(nil), level.Items...),
		PlayedNotes:   rendered.Notes,
		PlayDuration:  rendered.Duration,
		CreatedAt:     time.Now(),
		Context:       level.Context,
	}, nil
}

// PickKey samples a session key uniformly from all 12 pitch classes,
// avoiding the previous key so rotation always lands somewhere new.
func PickKey(rng *rand.Rand, previous theory.PitchClass) theory.PitchClass {
	next := theory.PitchClass(rng.Intn(12))
	for next == previous {
		next = theory.PitchClass(rng.Intn(12))
	}
	return next
}

func newQuestionID() string {
	return fmt.Sprintf("q-%d-%s", time.Now().UnixNano(), uuid.NewString()[:8])
}
