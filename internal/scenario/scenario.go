// Package scenario replays scripted command lines against a command
// handler and checks the outputs against expectations.
package scenario

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var ErrNoSteps = errors.New("scenario has no steps")

// Step is one command line. Expect, when set, is the output the command must
// produce; ExpectError asks for the command to fail.
type Step struct {
	Command     string  `yaml:"command"`
	Expect      *string `yaml:"expect,omitempty"`
	ExpectError bool    `yaml:"expect_error,omitempty"`
}

type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Load decodes a YAML scenario. Unknown fields are rejected.
func Load(r io.Reader) (Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	if len(s.Steps) == 0 {
		return Scenario{}, ErrNoSteps
	}
	return s, nil
}

// Handler runs a single command line.
type Handler interface {
	Handle(line string) (string, error)
}

type Result struct {
	Step   int    `yaml:"step"`
	Output string `yaml:"output"`
	Error  string `yaml:"error,omitempty"`
	Passed bool   `yaml:"passed"`
}

type Report struct {
	Name    string   `yaml:"name"`
	Results []Result `yaml:"results"`
}

func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}

// Run executes every step in order. A failing command does not stop the run;
// it only fails the step unless the step expects an error.
func Run(s Scenario, h Handler) Report {
	report := Report{Name: s.Name, Results: make([]Result, 0, len(s.Steps))}

	for i, step := range s.Steps {
		out, err := h.Handle(step.Command)
		res := Result{Step: i + 1, Output: out}

		switch {
		case err != nil:
			res.Error = err.Error()
			res.Passed = step.ExpectError
		case step.ExpectError:
			res.Passed = false
		default:
			res.Passed = step.Expect == nil || *step.Expect == out
		}

		report.Results = append(report.Results, res)
	}

	return report
}

// WriteReport encodes the report as YAML.
func WriteReport(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
