package schema

import "time"

type WizardMode string

const (
	WizardModeCreate WizardMode = "create"
	WizardModeEdit   WizardMode = "edit"
)

type Cursor struct {
	Step    int `json:"step"`
	SubStep int `json:"substep"`
}

// WizardState is one admin's open wizard session. SubSteps remembers the
// sub-step cursor of every section, indexed like the step catalog.
type WizardState struct {
	Mode        WizardMode `json:"mode"`
	ChallengeID string     `json:"challengeId"`
	Cursor      Cursor     `json:"cursor"`
	SubSteps    []int      `json:"subSteps"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
