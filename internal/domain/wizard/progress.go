package wizard

import "ChallengeWizard/internal/domain/schema"

// Progress is the share of questions behind the cursor, 0..100. Totals are
// recomputed from fd on every call because they depend on earlier answers.
func Progress(c schema.Cursor, fd schema.FormData) int {
	totals := Totals(fd)
	step := c.Step
	if step < 0 {
		step = 0
	}
	if step > LastStep() {
		step = LastStep()
	}

	var done, all int
	for i, t := range totals {
		all += t
		if i < step {
			done += t
		}
	}
	sub := c.SubStep
	if sub < 0 {
		sub = 0
	}
	if sub > totals[step] {
		sub = totals[step]
	}
	done += sub
	if all == 0 {
		return 0
	}
	return done * 100 / all
}
