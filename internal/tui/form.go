package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"trainlock/internal/models"
	"trainlock/internal/store"
	"trainlock/internal/util"
)

const (
	fieldMinutes = iota
	fieldKm
	fieldRPE
	fieldNotes
	fieldCount
)

// actualsForm edits the recorded outcome of one session.
type actualsForm struct {
	session  models.Session
	inputs   []textinput.Model
	focusIdx int
	errText  string
}

func newActualsForm(s models.Session) actualsForm {
	f := actualsForm{session: s, inputs: make([]textinput.Model, fieldCount)}
	for i := range f.inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 24
		f.inputs[i] = ti
	}
	f.inputs[fieldMinutes].Placeholder = "minutes"
	f.inputs[fieldKm].Placeholder = "km"
	f.inputs[fieldRPE].Placeholder = "1-10"
	f.inputs[fieldNotes].Placeholder = "notes"
	f.inputs[fieldNotes].CharLimit = 280
	f.inputs[fieldNotes].Width = 48

	if s.ActualMinutes != nil {
		f.inputs[fieldMinutes].SetValue(strconv.Itoa(*s.ActualMinutes))
	}
	if s.ActualKm != nil {
		f.inputs[fieldKm].SetValue(strconv.FormatFloat(*s.ActualKm, 'f', -1, 64))
	}
	if s.RPE != nil {
		f.inputs[fieldRPE].SetValue(strconv.Itoa(*s.RPE))
	}
	f.inputs[fieldNotes].SetValue(s.Notes)

	f.inputs[fieldMinutes].Focus()
	return f
}

// update advances the form. done is true when the form is finished; saved is
// non-nil when it finished with a value worth persisting.
func (f actualsForm) update(msg tea.Msg) (actualsForm, bool, *store.ActualsUpdate, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.passthrough(msg)
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		return f, true, nil, nil
	case tea.KeyTab, tea.KeyDown:
		f.setFocus((f.focusIdx + 1) % fieldCount)
		return f, false, nil, nil
	case tea.KeyShiftTab, tea.KeyUp:
		f.setFocus((f.focusIdx + fieldCount - 1) % fieldCount)
		return f, false, nil, nil
	case tea.KeyEnter:
		update, err := f.parse()
		if err != nil {
			f.errText = err.Error()
			return f, false, nil, nil
		}
		return f, true, update, nil
	}
	return f.passthrough(msg)
}

func (f actualsForm) passthrough(msg tea.Msg) (actualsForm, bool, *store.ActualsUpdate, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focusIdx], cmd = f.inputs[f.focusIdx].Update(msg)
	return f, false, nil, cmd
}

func (f *actualsForm) setFocus(idx int) {
	f.inputs[f.focusIdx].Blur()
	f.focusIdx = idx
	f.inputs[f.focusIdx].Focus()
}

func (f actualsForm) parse() (*store.ActualsUpdate, error) {
	update := &store.ActualsUpdate{Notes: strings.TrimSpace(f.inputs[fieldNotes].Value())}

	if raw := strings.TrimSpace(f.inputs[fieldMinutes].Value()); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("minutes must be a non-negative number")
		}
		update.Minutes = util.Ptr(v)
	}
	if raw := strings.TrimSpace(f.inputs[fieldKm].Value()); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("km must be a non-negative number")
		}
		update.Km = util.Ptr(v)
	}
	if raw := strings.TrimSpace(f.inputs[fieldRPE].Value()); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 10 {
			return nil, fmt.Errorf("rpe must be between 1 and 10")
		}
		update.RPE = util.Ptr(v)
	}
	return update, nil
}

func (f actualsForm) view() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Focused.Render(fmt.Sprintf("Log %s - %s", f.session.Date, f.session.PlannedType)))
	b.WriteString("\n\n")
	labels := [fieldCount]string{"Minutes", "Km", "RPE", "Notes"}
	for i, ti := range f.inputs {
		label := labels[i]
		if i == f.focusIdx {
			b.WriteString(CurrentTheme.Focused.Render("> "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(fmt.Sprintf("%-8s %s\n", label, ti.View()))
	}
	if f.errText != "" {
		b.WriteString("\n" + CurrentTheme.TypeInterval.Render(f.errText) + "\n")
	}
	b.WriteString("\n" + CurrentTheme.Dim.Render("enter save · esc cancel · tab next field"))
	return b.String()
}
