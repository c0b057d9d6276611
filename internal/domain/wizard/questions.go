package wizard

import "ChallengeWizard/internal/domain/schema"

type Kind string

const (
	KindText        Kind = "text"
	KindNumber      Kind = "number"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multiselect"
	KindImage       Kind = "image"
	KindDateRange   Kind = "date_range"
	KindDistance    Kind = "distance"
	KindConfirm     Kind = "confirm"
)

// Question is one sub-step of a wizard section.
type Question struct {
	Name      string   `json:"name"`
	Label     string   `json:"label"`
	Subtitle  string   `json:"subtitle,omitempty"`
	Kind      Kind     `json:"kind"`
	Options   []Option `json:"options,omitempty"`
	MaxLength int      `json:"maxLength,omitempty"`

	// path locates the answer inside its section; date ranges list the
	// start and end keys instead.
	path     []string
	validate func(schema.FormData) error
	value    func(schema.FormData) any
}

// Value reads the question's current answer out of the form data.
func (q Question) Value(fd schema.FormData) any {
	if q.value == nil {
		return nil
	}
	return q.value(fd)
}

// Questions resolves the ordered questions of a step for the answers given
// so far. Out-of-range steps are clamped into the catalog.
func Questions(step int, fd schema.FormData) []Question {
	switch StepAt(step).ID {
	case StepBasicInformation:
		return BasicInformationQuestions(fd.Category())
	case StepObjective:
		return ObjectiveQuestions(fd.Theme())
	case StepDetails:
		return DetailsQuestions()
	case StepRewards:
		return RewardsQuestions(fd.RewardTypes())
	case StepFeatures:
		return FeaturesQuestions(fd.NextBestActions())
	default:
		return reviewQuestions()
	}
}

// TotalSubSteps is never below one.
func TotalSubSteps(step int, fd schema.FormData) int {
	return len(Questions(step, fd))
}

// Totals returns TotalSubSteps for every step of the catalog.
func Totals(fd schema.FormData) []int {
	out := make([]int, StepCount())
	for i := range out {
		out[i] = TotalSubSteps(i, fd)
	}
	return out
}

// QuestionAt returns the question under the cursor, if it is in range.
func QuestionAt(c schema.Cursor, fd schema.FormData) (Question, bool) {
	qs := Questions(c.Step, fd)
	if c.SubStep < 0 || c.SubStep >= len(qs) {
		return Question{}, false
	}
	return qs[c.SubStep], true
}

func BasicInformationQuestions(category string) []Question {
	return []Question{
		{
			Name:    "category",
			path:    []string{"category"},
			Label:   "Which category best fits your challenge?",
			Kind:    KindSelect,
			Options: Categories(),
			validate: func(fd schema.FormData) error {
				return requireOption("category", fd.Category(), categoryOptions)
			},
			value: func(fd schema.FormData) any { return fd.Category() },
		},
		{
			Name:     "theme",
			path:     []string{"theme"},
			Label:    "Select a theme for your challenge",
			Subtitle: "Choose a theme that best matches your challenge goals and objectives",
			Kind:     KindSelect,
			Options:  ThemesFor(category),
			validate: func(fd schema.FormData) error {
				return requireOption("theme", fd.Theme(), themeOptions[fd.Category()])
			},
			value: func(fd schema.FormData) any { return fd.Theme() },
		},
		{
			Name:    "importance",
			path:    []string{"importance"},
			Label:   "How important is this challenge?",
			Kind:    KindSelect,
			Options: cloneOptions(importanceOptions),
			validate: func(fd schema.FormData) error {
				return requireOption("importance", basicInfo(fd).Importance, importanceOptions)
			},
			value: func(fd schema.FormData) any { return basicInfo(fd).Importance },
		},
	}
}

func reviewQuestions() []Question {
	return []Question{{
		Name:     "confirm",
		Label:    "Review your challenge",
		Subtitle: "Check every section before submitting it for review",
		Kind:     KindConfirm,
	}}
}

func basicInfo(fd schema.FormData) schema.BasicInformation {
	if fd.BasicInformation == nil {
		return schema.BasicInformation{}
	}
	return *fd.BasicInformation
}
