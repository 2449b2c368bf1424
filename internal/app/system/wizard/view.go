// internal/app/system/wizard/view.go
package wizard

// Tab is one entry of the step indicator.
type Tab struct {
	Number  int
	Title   string
	Current bool
	Done    bool
}

// Progress returns the step indicator for s.
func (f *Flow) Progress(s *State) []Tab {
	cur := f.clamp(s.Step)
	out := make([]Tab, 0, f.Len())
	for i, st := range f.Steps {
		n := i + 1
		out = append(out, Tab{Number: n, Title: st.Title, Current: n == cur, Done: n < cur})
	}
	return out
}

// ReviewItem is one collected answer shown on the review step.
type ReviewItem struct {
	Step  string
	Label string
	Value string
}

// Review lists every field collected before the final step, in order.
func (f *Flow) Review(s *State) []ReviewItem {
	var out []ReviewItem
	for _, st := range f.Steps[:f.Len()-1] {
		for _, fld := range st.Fields {
			out = append(out, ReviewItem{Step: st.Title, Label: fld.Label, Value: s.Values[fld.Name]})
		}
	}
	return out
}
