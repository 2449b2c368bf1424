// Package wizard drives multi-step forms as an explicit state machine.
//
// States are the step indices 1..N plus a terminal submitted state. Next and
// Back move by one; only a successful submit from step N reaches submitted.
package wizard

import (
	"errors"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages shown when a step cannot be left.
const (
	MsgRequired = "Please fill in all required fields"
	MsgInvalid  = "Please check: "
)

var (
	ErrIncomplete   = errors.New(MsgRequired)
	ErrInvalid      = errors.New("wizard: field format rejected")
	ErrNotFinalStep = errors.New("wizard: submit is only available on the review step")
	ErrInFlight     = errors.New("wizard: submission already in progress")
	ErrSubmitted    = errors.New("wizard: already submitted")
)

// Field is one input collected by a step. Rule is an optional validator
// tag (e.g. "email", "numeric") checked at submit time, and only when the
// field is filled.
type Field struct {
	Name     string
	Label    string
	Required bool
	Rule     string
}

// Step is one screen of a flow. AnyOf lists groups of field names of which
// at least one must be filled.
type Step struct {
	Title  string
	Fields []Field
	AnyOf  [][]string
}

// Flow is an ordered sequence of steps. The last step is the review step.
type Flow struct {
	Name  string
	Steps []Step

	validate *validator.Validate
}

// NewFlow builds a flow. It panics on an empty step list.
func NewFlow(name string, steps ...Step) *Flow {
	if len(steps) == 0 {
		panic("wizard: flow " + name + " has no steps")
	}
	return &Flow{Name: name, Steps: steps, validate: validator.New()}
}

// State is the mutable progress through a flow.
type State struct {
	Step       int               `json:"step"`
	Values     map[string]string `json:"values"`
	Submitting bool              `json:"submitting,omitempty"`
	Error      string            `json:"error,omitempty"`
	Submitted  bool              `json:"submitted,omitempty"`
	ResultID   string            `json:"result_id,omitempty"`
}

// Start returns a fresh state on step 1.
func (f *Flow) Start() *State {
	return &State{Step: 1, Values: map[string]string{}}
}

// Len is the number of steps, N.
func (f *Flow) Len() int { return len(f.Steps) }

// Current returns the step the state is on.
func (f *Flow) Current(s *State) Step {
	return f.Steps[f.clamp(s.Step)-1]
}

// IsFinal reports whether s is on the review step.
func (f *Flow) IsFinal(s *State) bool { return s.Step == f.Len() }

// Get returns a collected value.
func (f *Flow) Get(s *State, name string) string { return s.Values[name] }

// Actions posted by wizard forms.
const (
	ActionNext   = "next"
	ActionBack   = "back"
	ActionSubmit = "submit"
)

// Dispatch absorbs form into s and applies action; unknown actions mean
// Next. It reports whether a submission was started, in which case the
// caller sends the collected values and then calls Fail or Succeed.
func (f *Flow) Dispatch(s *State, action string, form url.Values) bool {
	f.Absorb(s, form)
	switch action {
	case ActionBack:
		f.Back(s)
	case ActionSubmit:
		return f.BeginSubmit(s) == nil
	default:
		f.Next(s)
	}
	return false
}

// Absorb copies the current step's fields present in form into s.
// Fields absent from the form keep their previous values.
func (f *Flow) Absorb(s *State, form url.Values) {
	if s.Values == nil {
		s.Values = map[string]string{}
	}
	for _, fld := range f.Current(s).Fields {
		if vs, ok := form[fld.Name]; ok && len(vs) > 0 {
			s.Values[fld.Name] = strings.TrimSpace(vs[0])
		}
	}
	s.Error = ""
}

// Missing lists the labels of unmet requirements on step n (1-based).
func (f *Flow) Missing(s *State, n int) []string {
	if n < 1 || n > f.Len() {
		return nil
	}
	step := f.Steps[n-1]
	var out []string
	for _, fld := range step.Fields {
		if fld.Required && !f.filled(s, fld.Name) {
			out = append(out, fld.Label)
		}
	}
	for _, group := range step.AnyOf {
		ok := false
		for _, name := range group {
			if f.filled(s, name) {
				ok = true
				break
			}
		}
		if !ok {
			out = append(out, strings.Join(f.labels(step, group), " or "))
		}
	}
	return out
}

// Invalid lists the labels of filled fields on step n that break their Rule.
func (f *Flow) Invalid(s *State, n int) []string {
	if n < 1 || n > f.Len() {
		return nil
	}
	var out []string
	for _, fld := range f.Steps[n-1].Fields {
		if fld.Rule == "" || !f.filled(s, fld.Name) {
			continue
		}
		if f.validate.Var(strings.TrimSpace(s.Values[fld.Name]), fld.Rule) != nil {
			out = append(out, fld.Label)
		}
	}
	return out
}

// Next advances one step when every required field of the current step is
// filled. Otherwise the step is unchanged and Error is set. Field formats
// are not checked here. It reports whether it advanced.
func (f *Flow) Next(s *State) bool {
	if s.Submitted || s.Submitting {
		return false
	}
	s.Step = f.clamp(s.Step)
	if len(f.Missing(s, s.Step)) > 0 {
		s.Error = MsgRequired
		return false
	}
	s.Error = ""
	if s.Step < f.Len() {
		s.Step++
	}
	return true
}

// Back moves one step back (never below 1) and clears Error.
func (f *Flow) Back(s *State) {
	if s.Submitted || s.Submitting {
		return
	}
	s.Error = ""
	s.Step = f.clamp(s.Step - 1)
}

// BeginSubmit marks s in flight. It is refused off the final step, while a
// submission is already in flight, when any step is incomplete, or when a
// filled field breaks its Rule. In the last case the message names every
// such field.
func (f *Flow) BeginSubmit(s *State) error {
	switch {
	case s.Submitted:
		return ErrSubmitted
	case s.Submitting:
		return ErrInFlight
	case !f.IsFinal(s):
		return ErrNotFinalStep
	}
	var bad []string
	for n := 1; n <= f.Len(); n++ {
		if len(f.Missing(s, n)) > 0 {
			s.Error = MsgRequired
			return ErrIncomplete
		}
		bad = append(bad, f.Invalid(s, n)...)
	}
	if len(bad) > 0 {
		s.Error = MsgInvalid + strings.Join(bad, ", ")
		return ErrInvalid
	}
	s.Error = ""
	s.Submitting = true
	return nil
}

// Fail ends an in-flight submission with err. The step is unchanged.
func (f *Flow) Fail(s *State, err error) {
	s.Submitting = false
	if err == nil {
		s.Error = "Submission failed"
		return
	}
	s.Error = err.Error()
}

// Succeed moves s to the terminal submitted state.
func (f *Flow) Succeed(s *State, resultID string) {
	s.Submitting = false
	s.Error = ""
	s.Submitted = true
	s.ResultID = resultID
}

func (f *Flow) filled(s *State, name string) bool {
	return f.validate.Var(strings.TrimSpace(s.Values[name]), "required") == nil
}

func (f *Flow) labels(step Step, names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		label := n
		for _, fld := range step.Fields {
			if fld.Name == n && fld.Label != "" {
				label = fld.Label
			}
		}
		out = append(out, label)
	}
	return out
}

func (f *Flow) clamp(n int) int {
	if n < 1 {
		return 1
	}
	if n > f.Len() {
		return f.Len()
	}
	return n
}
