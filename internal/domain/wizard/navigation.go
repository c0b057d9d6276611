package wizard

import (
	"ChallengeWizard/internal/domain/schema"
	"time"
)

// NewState opens a wizard at the first question.
func NewState(mode schema.WizardMode, challengeID string, now time.Time) schema.WizardState {
	return schema.WizardState{
		Mode:        mode,
		ChallengeID: challengeID,
		SubSteps:    make([]int, StepCount()),
		UpdatedAt:   now,
	}
}

// Next moves the cursor forward once the current question validates. done
// is true when the cursor already sits on the final review question; the
// state is returned unchanged in that case and the caller submits.
func Next(st schema.WizardState, fd schema.FormData) (schema.WizardState, bool, error) {
	st = Clamp(st, fd)
	if err := CheckCursor(st.Cursor, fd); err != nil {
		return st, false, err
	}

	total := TotalSubSteps(st.Cursor.Step, fd)
	switch {
	case st.Cursor.SubStep < total-1:
		st.Cursor.SubStep++
	case st.Cursor.Step < LastStep():
		st.Cursor.Step++
		st.Cursor.SubStep = 0
	default:
		return st, true, nil
	}
	st.SubSteps[st.Cursor.Step] = st.Cursor.SubStep
	return st, false, nil
}

// Back is unguarded. At the very first question it is a no-op.
func Back(st schema.WizardState, fd schema.FormData) schema.WizardState {
	st = Clamp(st, fd)
	switch {
	case st.Cursor.SubStep > 0:
		st.Cursor.SubStep--
	case st.Cursor.Step > 0:
		st.Cursor.Step--
		st.Cursor.SubStep = TotalSubSteps(st.Cursor.Step, fd) - 1
	default:
		return st
	}
	st.SubSteps[st.Cursor.Step] = st.Cursor.SubStep
	return st
}

// Clamp brings every remembered sub-step back into range after the totals
// changed. A sub-step that no longer exists resets to 0. The returned state
// never shares its SubSteps slice with st.
func Clamp(st schema.WizardState, fd schema.FormData) schema.WizardState {
	subs := make([]int, StepCount())
	copy(subs, st.SubSteps)

	if st.Cursor.Step < 0 {
		st.Cursor.Step = 0
	}
	if st.Cursor.Step > LastStep() {
		st.Cursor.Step = LastStep()
	}
	subs[st.Cursor.Step] = st.Cursor.SubStep

	totals := Totals(fd)
	for i := range subs {
		if subs[i] < 0 || subs[i] >= totals[i] {
			subs[i] = 0
		}
	}
	st.Cursor.SubStep = subs[st.Cursor.Step]
	st.SubSteps = subs
	return st
}

// Restore rebuilds the per-section cursors from a (step, substep) pair, as
// read back from a link. Sections before step are left on their last
// question, sections after it on their first.
func Restore(st schema.WizardState, step, subStep int, fd schema.FormData) schema.WizardState {
	if step < 0 {
		step = 0
	}
	if step > LastStep() {
		step = LastStep()
	}

	totals := Totals(fd)
	subs := make([]int, StepCount())
	for i := 0; i < step; i++ {
		subs[i] = totals[i] - 1
	}
	if subStep < 0 || subStep >= totals[step] {
		subStep = 0
	}
	subs[step] = subStep

	st.Cursor = schema.Cursor{Step: step, SubStep: subStep}
	st.SubSteps = subs
	return st
}
