package calc

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/spacetime/algebra"
	"github.com/katalvlaran/spacetime/mvec"
	"github.com/katalvlaran/spacetime/quantities"
)

// File is the raw TOML shape of a calculation document.
type File struct {
	Title        string            `toml:"title"`
	MultiVectors map[string]string `toml:"multivectors"`
	Steps        []Step            `toml:"steps"`
}

// Step is one operation in a calculation pipeline.
type Step struct {
	Op       string `toml:"op"`
	Left     string `toml:"left"`
	Right    string `toml:"right"`
	Grade    int    `toml:"grade"`
	Save     string `toml:"save"`
	Simplify bool   `toml:"simplify"`
}

// Result is the outcome of one executed step.
type Result struct {
	// Index is the step's position in the file, from 0.
	Index int
	// Name is the step's save name, if any.
	Name string
	// Value is the computed multivector.
	Value mvec.MultiVector
}

// Calculation is a parsed, runnable calculation document.
type Calculation struct {
	title string
	env   map[string]mvec.MultiVector
	steps []Step
}

// Load reads and parses a calculation file from disk.
func Load(path string) (*Calculation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("calc: reading %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses a TOML calculation document and resolves its multivector
// declarations. Step operands are resolved lazily at Run time so that
// steps may reference each other's saved results.
func Parse(data []byte) (*Calculation, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("calc: parsing document: %w", err)
	}

	env := make(map[string]mvec.MultiVector, len(f.MultiVectors))
	for name, indices := range f.MultiVectors {
		m := mvec.New()
		for _, s := range strings.Fields(indices) {
			a, err := algebra.ParseAlpha(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %s = %q: %v", ErrInvalidQuantity, name, indices, err)
			}
			m.Push(mvec.NewTerm(a))
		}
		env[name] = m
	}

	return &Calculation{title: f.Title, env: env, steps: f.Steps}, nil
}

// Title returns the document title, possibly empty.
func (c *Calculation) Title() string {
	return c.title
}

// Run executes every step in order, returning one Result per step.
// Execution stops at the first failing step.
// Complexity: bounded by the products involved; see mvec.Full.
func (c *Calculation) Run() ([]Result, error) {
	// Copy the environment so a Calculation can be re-run from scratch.
	env := make(map[string]mvec.MultiVector, len(c.env))
	for k, v := range c.env {
		env[k] = v
	}

	results := make([]Result, 0, len(c.steps))
	for i, step := range c.steps {
		value, err := runStep(step, env)
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}

		if step.Simplify {
			value = value.Simplify()
		}
		if step.Save != "" {
			env[step.Save] = value
		}
		results = append(results, Result{Index: i, Name: step.Save, Value: value})
	}

	return results, nil
}

func runStep(step Step, env map[string]mvec.MultiVector) (mvec.MultiVector, error) {
	left, err := resolve(step.Left, env)
	if err != nil {
		return mvec.MultiVector{}, err
	}

	switch step.Op {
	case "full", "div":
		if step.Right == "" {
			return mvec.MultiVector{}, fmt.Errorf("%w: %q needs a right operand", ErrMissingOperand, step.Op)
		}
		right, err := resolve(step.Right, env)
		if err != nil {
			return mvec.MultiVector{}, err
		}
		if step.Op == "div" {
			return mvec.Divide(left, right), nil
		}
		return mvec.Full(left, right), nil

	case "dagger", "hermitian":
		return mvec.Hermitian(left), nil
	case "reverse":
		return mvec.Reverse(left), nil
	case "diamond":
		return mvec.Diamond(left), nil
	case "double_dagger":
		return mvec.DoubleDagger(left), nil
	case "dual":
		return mvec.Dual(left), nil
	case "simplify":
		return left.Simplify(), nil
	case "project":
		if step.Grade < 0 || step.Grade > 4 {
			return mvec.MultiVector{}, fmt.Errorf("%w: got %d", ErrBadGrade, step.Grade)
		}
		return left.Project(step.Grade), nil
	case "dmu_left":
		return quantities.Dmu().ApplyLeft(left), nil
	case "dmu_right":
		return quantities.Dmu().ApplyRight(left), nil

	default:
		return mvec.MultiVector{}, fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
}

// standard is the set of quantity names resolvable without declaration.
var standard = map[string]func() mvec.MultiVector{
	"G":      quantities.G,
	"Fields": quantities.Fields,
	"Even":   quantities.EvenSubAlgebra,
	"Odd":    quantities.OddSubAlgebra,
	"B":      quantities.B,
	"E":      quantities.E,
	"T":      quantities.T,
	"A":      quantities.A,
	"ZetB":   quantities.ZetB,
	"ZetT":   quantities.ZetT,
	"ZetA":   quantities.ZetA,
	"ZetE":   quantities.ZetE,
}

func resolve(name string, env map[string]mvec.MultiVector) (mvec.MultiVector, error) {
	if name == "" {
		return mvec.MultiVector{}, fmt.Errorf("%w: empty operand name", ErrMissingOperand)
	}
	if m, ok := env[name]; ok {
		return m, nil
	}
	if builtin, ok := standard[name]; ok {
		return builtin(), nil
	}

	return mvec.MultiVector{}, fmt.Errorf("%w: %q", ErrUnknownQuantity, name)
}
