package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"blindpoker/internal/config"
	"blindpoker/pkg/solver"

	"github.com/pterm/pterm"
)

// Comparison is a single comparison as seen by the command line
type Comparison struct {
	Line   int
	HandA  string
	HandB  string
	Code   int
	Result *solver.Result
	Err    error
}

// Printer writes comparisons in a particular output format
type Printer interface {
	Print(c Comparison) error
	// Flush writes anything that was buffered
	Flush() error
}

// NewPrinter returns the printer for format
func NewPrinter(format string, verbose bool, w io.Writer) (Printer, error) {
	switch format {
	case config.OutputText, "":
		return &textPrinter{w: w, verbose: verbose}, nil
	case config.OutputJSON:
		return &jsonPrinter{enc: json.NewEncoder(w)}, nil
	case config.OutputPretty:
		return &prettyPrinter{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

type textPrinter struct {
	w       io.Writer
	verbose bool
}

func (t *textPrinter) Print(c Comparison) error {
	if !t.verbose {
		_, err := fmt.Fprintln(t.w, c.Code)
		return err
	}

	if c.Err != nil {
		_, err := fmt.Fprintf(t.w, "%d\t%v\n", c.Code, c.Err)
		return err
	}

	_, err := fmt.Fprintf(t.w, "%d\t%s\t[%s] %s\t[%s] %s\n",
		c.Code,
		c.Result.Outcome,
		c.HandA, c.Result.HandA.Description,
		c.HandB, c.Result.HandB.Description,
	)
	return err
}

func (t *textPrinter) Flush() error {
	return nil
}

type jsonRecord struct {
	Line   int            `json:"line,omitempty"`
	HandA  string         `json:"handA"`
	HandB  string         `json:"handB"`
	Code   int            `json:"code"`
	Error  string         `json:"error,omitempty"`
	Result *solver.Result `json:"result,omitempty"`
}

type jsonPrinter struct {
	enc *json.Encoder
}

func (j *jsonPrinter) Print(c Comparison) error {
	rec := jsonRecord{
		Line:   c.Line,
		HandA:  c.HandA,
		HandB:  c.HandB,
		Code:   c.Code,
		Result: c.Result,
	}

	if c.Err != nil {
		rec.Error = c.Err.Error()
	}

	return j.enc.Encode(rec)
}

func (j *jsonPrinter) Flush() error {
	return nil
}

// prettyPrinter collects rows and renders a single table on Flush()
type prettyPrinter struct {
	w    io.Writer
	rows pterm.TableData
}

func (p *prettyPrinter) Print(c Comparison) error {
	descA, descB, result := "-", "-", ""
	if c.Err != nil {
		result = c.Err.Error()
	} else {
		descA = c.Result.HandA.Description
		descB = c.Result.HandB.Description
		result = c.Result.Outcome.String()
	}

	p.rows = append(p.rows, []string{
		c.HandA,
		descA,
		c.HandB,
		descB,
		strconv.Itoa(c.Code),
		result,
	})

	return nil
}

func (p *prettyPrinter) Flush() error {
	if len(p.rows) == 0 {
		return nil
	}

	data := append(pterm.TableData{{"Player A", "", "Player B", "", "Code", "Result"}}, p.rows...)
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	p.rows = nil
	_, err = fmt.Fprintln(p.w, table)
	return err
}
