package solver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/calcpath/calc"
	"github.com/katalvlaran/calcpath/display"
)

// PortalSpec is the "down up" pair of a portal.
type PortalSpec struct {
	Down int `yaml:"down" json:"down" validate:"gtfield=Up"`
	Up   int `yaml:"up" json:"up" validate:"min=0"`
}

// Puzzle is one level: reach Target from Start using only Keys.
type Puzzle struct {
	Name   string      `yaml:"name" json:"name"`
	Start  string      `yaml:"start" json:"start" validate:"required,display"`
	Target string      `yaml:"target" json:"target" validate:"required,display"`
	Keys   []string    `yaml:"keys" json:"keys" validate:"min=1,dive,required"`
	Portal *PortalSpec `yaml:"portal,omitempty" json:"portal,omitempty" validate:"omitempty"`

	// MaxStates overrides the Solver's state cap for this puzzle when > 0.
	MaxStates int `yaml:"max_states,omitempty" json:"max_states,omitempty" validate:"min=0"`
}

// puzzleFile is the on-disk layout read by LoadPuzzles.
type puzzleFile struct {
	Puzzles []Puzzle `yaml:"puzzles"`
}

var puzzleValidate *validator.Validate

func init() {
	puzzleValidate = validator.New(validator.WithRequiredStructEnabled())
	_ = puzzleValidate.RegisterValidation("display", validateDisplay)
}

// validateDisplay accepts strings that normalize to a legal display.
func validateDisplay(fl validator.FieldLevel) bool {
	_, ok := display.Normalize(strings.TrimSpace(fl.Field().String()))
	return ok
}

// Validate checks field constraints, key tokens and the portal.
// Every failure wraps ErrInvalidPuzzle.
func (p Puzzle) Validate() error {
	if err := puzzleValidate.Struct(p); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidPuzzle, p.label(), err)
	}
	if _, err := p.Operations(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidPuzzle, p.label(), err)
	}
	return nil
}

// Operations parses Keys in order and wraps each in the portal, if any.
func (p Puzzle) Operations() ([]calc.Operation, error) {
	ops, err := calc.ParseAll(p.Keys)
	if err != nil {
		return nil, err
	}
	if p.Portal == nil {
		return ops, nil
	}
	portal, err := calc.NewPortal(p.Portal.Down, p.Portal.Up)
	if err != nil {
		return nil, err
	}
	for i, op := range ops {
		ops[i] = portal.Wrap(op)
	}

	return ops, nil
}

// label names the puzzle in errors and logs.
func (p Puzzle) label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Start + "->" + p.Target
}

// LoadPuzzles reads a YAML puzzle set. Environment variables in the file are
// expanded before decoding, unknown fields are rejected, unnamed puzzles are
// named by position and every puzzle is validated.
//
// File layout:
//
//	puzzles:
//	  - name: level-1
//	    start: "0"
//	    target: "6"
//	    keys: ["+5", "[+]1"]
//	    portal: {down: 4, up: 1}
func LoadPuzzles(path string) ([]Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("solver: read %s: %w", path, err)
	}

	return DecodePuzzles(strings.NewReader(os.ExpandEnv(string(data))))
}

// DecodePuzzles decodes and validates a YAML puzzle set from r.
func DecodePuzzles(r io.Reader) ([]Puzzle, error) {
	var f puzzleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty puzzle file", ErrInvalidPuzzle)
		}
		return nil, fmt.Errorf("solver: decode puzzles: %w", err)
	}
	if len(f.Puzzles) == 0 {
		return nil, fmt.Errorf("%w: no puzzles listed", ErrInvalidPuzzle)
	}

	for i := range f.Puzzles {
		if f.Puzzles[i].Name == "" {
			f.Puzzles[i].Name = "puzzle-" + strconv.Itoa(i+1)
		}
		if err := f.Puzzles[i].Validate(); err != nil {
			return nil, err
		}
	}

	return f.Puzzles, nil
}

// ReadPuzzle reads the classic line input: the start display, the target
// display, the space-separated key tokens and an optional "down up" portal
// line. Blank lines are skipped.
func ReadPuzzle(r io.Reader) (Puzzle, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return Puzzle{}, fmt.Errorf("solver: read puzzle: %w", err)
	}
	if len(lines) < 3 || len(lines) > 4 {
		return Puzzle{}, fmt.Errorf("%w: want 3 or 4 lines, got %d", ErrInvalidPuzzle, len(lines))
	}

	p := Puzzle{Start: lines[0], Target: lines[1], Keys: strings.Fields(lines[2])}
	if len(lines) == 4 {
		portal, err := ParsePortal(lines[3])
		if err != nil {
			return Puzzle{}, err
		}
		p.Portal = portal
	}
	if err := p.Validate(); err != nil {
		return Puzzle{}, err
	}

	return p, nil
}

// ParsePortal parses a "down up" portal line.
func ParsePortal(s string) (*PortalSpec, error) {
	f := strings.Fields(s)
	if len(f) != 2 {
		return nil, fmt.Errorf("%w: portal %q: want \"down up\"", ErrInvalidPuzzle, s)
	}
	down, err := strconv.Atoi(f[0])
	if err != nil {
		return nil, fmt.Errorf("%w: portal %q: %w", ErrInvalidPuzzle, s, err)
	}
	up, err := strconv.Atoi(f[1])
	if err != nil {
		return nil, fmt.Errorf("%w: portal %q: %w", ErrInvalidPuzzle, s, err)
	}

	return &PortalSpec{Down: down, Up: up}, nil
}
