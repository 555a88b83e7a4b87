package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"blindpoker/pkg/deck"
	"blindpoker/pkg/solver"

	"github.com/sirupsen/logrus"
)

// ErrInvalidLine is an error when a batch line does not hold exactly two hands
var ErrInvalidLine = errors.New("expected two hands per line")

// Runner drives the solver for the command line
type Runner struct {
	logger  logrus.FieldLogger
	solver  *solver.Solver
	printer Printer
}

// NewRunner returns a new Runner
func NewRunner(logger logrus.FieldLogger, printer Printer) *Runner {
	return &Runner{
		logger:  logger,
		solver:  solver.New(logger),
		printer: printer,
	}
}

// Compare compares two hands written as comma-separated values and prints the result
func (r *Runner) Compare(handA, handB string) (int, error) {
	c := r.compare(0, handA, handB)
	if err := r.printer.Print(c); err != nil {
		return solver.Invalid, err
	}

	return c.Code, r.printer.Flush()
}

func (r *Runner) compare(line int, handA, handB string) Comparison {
	c := Comparison{
		Line:  line,
		HandA: strings.TrimSpace(handA),
		HandB: strings.TrimSpace(handB),
		Code:  solver.Invalid,
	}

	a, err := deck.ValuesFromString(handA)
	if err != nil {
		c.Err = fmt.Errorf("player A: %w", err)
		r.logger.WithError(c.Err).WithField("line", line).Warn("could not parse hand")
		return c
	}

	b, err := deck.ValuesFromString(handB)
	if err != nil {
		c.Err = fmt.Errorf("player B: %w", err)
		r.logger.WithError(c.Err).WithField("line", line).Warn("could not parse hand")
		return c
	}

	res, err := r.solver.Evaluate(a, b)
	if err != nil {
		c.Err = err
		return c
	}

	c.Result = res
	c.Code = res.Code
	return c
}

// Batch reads one comparison per line and prints a result for each
// Blank lines and lines starting with # are skipped. A bad line prints -1 and the
// run continues. The number of comparisons is returned.
func (r *Runner) Batch(in io.Reader) (int, error) {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	n := 0

	for scanner.Scan() {
		lineNo++

		handA, handB, ok, err := ParseLine(scanner.Text())
		if !ok {
			continue
		}

		var c Comparison
		if err != nil {
			c = Comparison{Line: lineNo, Code: solver.Invalid, Err: err}
			r.logger.WithError(err).WithField("line", lineNo).Warn("could not parse line")
		} else {
			c = r.compare(lineNo, handA, handB)
		}

		n++
		if err := r.printer.Print(c); err != nil {
			return n, err
		}
	}

	if err := scanner.Err(); err != nil {
		return n, err
	}

	r.logger.WithField("comparisons", n).Info("batch complete")
	return n, r.printer.Flush()
}

// ParseLine splits a batch line into two hands.
// The hands are separated by | or by whitespace. ok is false for blank and comment lines.
func ParseLine(line string) (handA, handB string, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false, nil
	}

	var parts []string
	if strings.Contains(line, "|") {
		parts = strings.Split(line, "|")
	} else {
		parts = strings.Fields(line)
	}

	if len(parts) != 2 {
		return "", "", true, fmt.Errorf("%w: %q", ErrInvalidLine, line)
	}

	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true, nil
}

// Deal deals n pairs of hands from a fresh shoe shuffled with seed and compares them.
// The shoe is reshuffled with the next seed whenever it runs low.
// The seed after math.MaxInt64 is 1.
func (r *Runner) Deal(seed int64, n int) error {
	d := deck.New()
	d.Shuffle(seed)
	r.logger.WithField("seed", d.GetSeed()).Info("shuffled shoe")

	for i := 1; i <= n; i++ {
		if !d.CanDraw(2 * deck.HandSize) {
			d.Shuffle(nextSeed(d.GetSeed()))
			r.logger.WithField("seed", d.GetSeed()).Info("reshuffled shoe")
		}

		a, err := d.DrawHand(deck.HandSize)
		if err != nil {
			return err
		}

		b, err := d.DrawHand(deck.HandSize)
		if err != nil {
			return err
		}

		if err := r.printer.Print(r.compare(i, a.String(), b.String())); err != nil {
			return err
		}
	}

	return r.printer.Flush()
}

// nextSeed returns the seed after seed, wrapping back to 1 past math.MaxInt64
func nextSeed(seed int64) int64 {
	if seed >= math.MaxInt64 {
		return 1
	}

	return seed + 1
}

// Prompt asks for both hands on out and reads them from in
func (r *Runner) Prompt(in io.Reader, out io.Writer) (int, error) {
	reader := bufio.NewReader(in)

	handA, err := getInput(reader, out, "Player A")
	if err != nil {
		return solver.Invalid, err
	}

	handB, err := getInput(reader, out, "Player B")
	if err != nil {
		return solver.Invalid, err
	}

	return r.Compare(handA, handB)
}

func getInput(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	if _, err := fmt.Fprintf(out, "%s: ", label); err != nil {
		return "", err
	}

	answer, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && answer != "") {
		return "", err
	}

	return strings.TrimSpace(answer), nil
}
