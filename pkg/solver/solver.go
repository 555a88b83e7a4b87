package solver

import (
	"fmt"

	"blindpoker/pkg/deck"
	"blindpoker/pkg/handanalyzer"

	"github.com/sirupsen/logrus"
)

// HandResult describes one evaluated hand
type HandResult struct {
	Cards       []int                 `json:"cards"`
	Category    handanalyzer.Category `json:"category"`
	Description string                `json:"description"`
}

// Result is the outcome of a comparison along with both evaluated hands
type Result struct {
	Outcome Outcome     `json:"-"`
	Code    int         `json:"code"`
	HandA   *HandResult `json:"handA"`
	HandB   *HandResult `json:"handB"`
}

// Solver compares two five-card hands
// A Solver holds no per-comparison state and is safe for concurrent use
type Solver struct {
	logger logrus.FieldLogger
}

// New returns a new Solver
// If logger is nil, the standard logrus logger is used
func New(logger logrus.FieldLogger) *Solver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Solver{
		logger: logger,
	}
}

var defaultSolver = New(nil)

// Compare compares two hands with the default solver
func Compare(playerA, playerB []int) int {
	return defaultSolver.Compare(playerA, playerB)
}

// Compare returns 1 if player A wins, 2 if player B wins, 0 on a tie and
// -1 if either hand is invalid
func (s *Solver) Compare(playerA, playerB []int) int {
	res, err := s.Evaluate(playerA, playerB)
	if err != nil {
		return Invalid
	}

	return res.Code
}

// Evaluate validates, classifies and compares both hands
// If either hand is invalid, nothing is evaluated and the error names the player
func (s *Solver) Evaluate(playerA, playerB []int) (*Result, error) {
	handA, errA := deck.Validate(playerA)
	if errA != nil {
		errA = fmt.Errorf("player A: %w", errA)
		s.logger.WithError(errA).WithField("hand", playerA).Debug("invalid hand")
	}

	handB, errB := deck.Validate(playerB)
	if errB != nil {
		errB = fmt.Errorf("player B: %w", errB)
		s.logger.WithError(errB).WithField("hand", playerB).Debug("invalid hand")
	}

	if errA != nil {
		return nil, errA
	}

	if errB != nil {
		return nil, errB
	}

	a := handanalyzer.New(handA)
	b := handanalyzer.New(handB)

	var outcome Outcome
	if a.GetHand() != b.GetHand() {
		outcome = compareValues(int(a.GetHand()), int(b.GetHand()))
	} else {
		outcome = BreakTie(a.GetHand(), a, b)
	}

	s.logger.WithFields(logrus.Fields{
		"handA":     handA.String(),
		"handB":     handB.String(),
		"categoryA": a.GetHand().String(),
		"categoryB": b.GetHand().String(),
		"outcome":   outcome.Code(),
	}).Debug("compared hands")

	return &Result{
		Outcome: outcome,
		Code:    outcome.Code(),
		HandA:   newHandResult(a),
		HandB:   newHandResult(b),
	}, nil
}

func newHandResult(h *handanalyzer.HandAnalyzer) *HandResult {
	return &HandResult{
		Cards:       h.GetCards().Values(),
		Category:    h.GetHand(),
		Description: h.Describe(),
	}
}
