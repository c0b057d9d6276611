package wizard

import (
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/schema"
)

// ObjectiveQuestions returns the objective sub-steps for a theme. Themes
// without dedicated questions, including an empty theme, fall back to a
// single free-text objective.
func ObjectiveQuestions(theme string) []Question {
	switch theme {
	case schema.ThemeDistance:
		return []Question{distanceQuestion()}
	case schema.ThemeSteps:
		return []Question{
			{
				Name:  "steps",
				path:  []string{"stepCount", "steps"},
				Label: "How many steps should participants take?",
				Kind:  KindNumber,
				validate: func(fd schema.FormData) error {
					return requirePositive("steps", stepsGoal(fd).Steps)
				},
				value: func(fd schema.FormData) any { return stepsGoal(fd).Steps },
			},
			{
				Name:    "trackingPeriod",
				path:    []string{"stepCount", "trackingPeriod"},
				Label:   "How are steps tracked?",
				Kind:    KindSelect,
				Options: cloneOptions(trackingPeriodOptions),
				validate: func(fd schema.FormData) error {
					return requireOption("trackingPeriod", stepsGoal(fd).TrackingPeriod, trackingPeriodOptions)
				},
				value: func(fd schema.FormData) any { return stepsGoal(fd).TrackingPeriod },
			},
		}
	case schema.ThemeTeamChallenge:
		return []Question{
			{
				Name:  "teamSize",
				path:  []string{"team", "teamSize"},
				Label: "How many participants per team?",
				Kind:  KindNumber,
				validate: func(fd schema.FormData) error {
					return requirePositive("teamSize", teamGoal(fd).TeamSize)
				},
				value: func(fd schema.FormData) any { return teamGoal(fd).TeamSize },
			},
			{
				Name:  "teamSteps",
				path:  []string{"team", "steps"},
				Label: "How many steps should each team reach together?",
				Kind:  KindNumber,
				validate: func(fd schema.FormData) error {
					return requirePositive("teamSteps", teamGoal(fd).Steps)
				},
				value: func(fd schema.FormData) any { return teamGoal(fd).Steps },
			},
		}
	case schema.ThemeBingo:
		return []Question{{
			Name:  "squaresRequired",
			path:  []string{"bingo", "squaresRequired"},
			Label: "How many squares must be completed to win?",
			Kind:  KindNumber,
			validate: func(fd schema.FormData) error {
				return requirePositive("squaresRequired", objective(fd).bingo().SquaresRequired)
			},
			value: func(fd schema.FormData) any { return objective(fd).bingo().SquaresRequired },
		}}
	case schema.ThemeMiniChallenge:
		return []Question{{
			Name:  "dailyChallenges",
			path:  []string{"miniChallenge", "dailyChallenges"},
			Label: "How many daily challenges must be completed?",
			Kind:  KindNumber,
			validate: func(fd schema.FormData) error {
				return requirePositive("dailyChallenges", objective(fd).mini().DailyChallenges)
			},
			value: func(fd schema.FormData) any { return objective(fd).mini().DailyChallenges },
		}}
	case schema.ThemeNutritionQuiz:
		return []Question{{
			Name:  "questionsRequired",
			path:  []string{"quiz", "questionsRequired"},
			Label: "How many quiz questions must be answered?",
			Kind:  KindNumber,
			validate: func(fd schema.FormData) error {
				return requirePositive("questionsRequired", objective(fd).quiz().QuestionsRequired)
			},
			value: func(fd schema.FormData) any { return objective(fd).quiz().QuestionsRequired },
		}}
	case schema.ThemeTheMost:
		return []Question{
			{
				Name:    "measurement",
				path:    []string{"theMost", "measurement"},
				Label:   "What do participants compete on?",
				Kind:    KindSelect,
				Options: cloneOptions(measurementOptions),
				validate: func(fd schema.FormData) error {
					return requireOption("measurement", objective(fd).most().Measurement, measurementOptions)
				},
				value: func(fd schema.FormData) any { return objective(fd).most().Measurement },
			},
			{
				Name:    "trackingPeriod",
				path:    []string{"theMost", "trackingPeriod"},
				Label:   "Over which period is the winner decided?",
				Kind:    KindSelect,
				Options: cloneOptions(trackingPeriodOptions),
				validate: func(fd schema.FormData) error {
					return requireOption("trackingPeriod", objective(fd).most().TrackingPeriod, trackingPeriodOptions)
				},
				value: func(fd schema.FormData) any { return objective(fd).most().TrackingPeriod },
			},
		}
	default:
		return []Question{{
			Name:  "objective",
			path:  []string{"text", "objective"},
			Label: "What is the main objective of this challenge?",
			Kind:  KindText,
			validate: func(fd schema.FormData) error {
				return requireText("objective", objective(fd).text().Objective, 0)
			},
			value: func(fd schema.FormData) any { return objective(fd).text().Objective },
		}}
	}
}

func ObjectiveQuestionCount(theme string) int {
	return len(ObjectiveQuestions(theme))
}

func distanceQuestion() Question {
	return Question{
		Name:    "distance",
		path:    []string{"distance"},
		Label:   "What distance should participants cover?",
		Kind:    KindDistance,
		Options: cloneOptions(distanceUnitOptions),
		validate: func(fd schema.FormData) error {
			d := objective(fd).distance()
			if d.Value <= 0 {
				return errorz.NewFieldError("distance.value", "must be greater than zero")
			}
			return requireOption("distance.unit", d.Unit, distanceUnitOptions)
		},
		value: func(fd schema.FormData) any { return objective(fd).distance() },
	}
}

type objectiveView struct {
	o *schema.Objective
}

func objective(fd schema.FormData) objectiveView {
	return objectiveView{o: fd.Objective}
}

func (v objectiveView) distance() schema.DistanceGoal {
	if v.o == nil || v.o.Distance == nil {
		return schema.DistanceGoal{}
	}
	return *v.o.Distance
}

func (v objectiveView) bingo() schema.BingoGoal {
	if v.o == nil || v.o.Bingo == nil {
		return schema.BingoGoal{}
	}
	return *v.o.Bingo
}

func (v objectiveView) mini() schema.MiniChallengeGoal {
	if v.o == nil || v.o.MiniChallenge == nil {
		return schema.MiniChallengeGoal{}
	}
	return *v.o.MiniChallenge
}

func (v objectiveView) quiz() schema.QuizGoal {
	if v.o == nil || v.o.Quiz == nil {
		return schema.QuizGoal{}
	}
	return *v.o.Quiz
}

func (v objectiveView) most() schema.MostGoal {
	if v.o == nil || v.o.TheMost == nil {
		return schema.MostGoal{}
	}
	return *v.o.TheMost
}

func (v objectiveView) text() schema.TextGoal {
	if v.o == nil || v.o.Text == nil {
		return schema.TextGoal{}
	}
	return *v.o.Text
}

func stepsGoal(fd schema.FormData) schema.StepsGoal {
	if fd.Objective == nil || fd.Objective.StepCount == nil {
		return schema.StepsGoal{}
	}
	return *fd.Objective.StepCount
}

func teamGoal(fd schema.FormData) schema.TeamGoal {
	if fd.Objective == nil || fd.Objective.Team == nil {
		return schema.TeamGoal{}
	}
	return *fd.Objective.Team
}
