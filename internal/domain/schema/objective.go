package schema

import (
	"fmt"
	"strconv"
)

const (
	CategoryActivity    = "Activity"
	CategoryNutrition   = "Nutrition"
	CategoryMindfulness = "Mindfulness"
	CategorySleep       = "Sleep"
)

const (
	ThemeDistance      = "Distance"
	ThemeSteps         = "Steps"
	ThemeTeamChallenge = "Team Challenge"
	ThemeTheMost       = "The Most"
	ThemeCompleteX     = "Complete X"
	ThemeBingo         = "Bingo"
	ThemeNutritionQuiz = "Nutrition Quiz"
	ThemeMiniChallenge = "Mini Challenge"
	ThemeHoursOfSleep  = "Hours of Sleep"
)

// Objective holds one variant per theme. The theme chosen in
// BasicInformation decides which variant is read; the others are kept
// untouched if the admin switches themes back and forth.
type Objective struct {
	Distance      *DistanceGoal      `json:"distance,omitempty"`
	StepCount     *StepsGoal         `json:"stepCount,omitempty"`
	Team          *TeamGoal          `json:"team,omitempty"`
	Bingo         *BingoGoal         `json:"bingo,omitempty"`
	MiniChallenge *MiniChallengeGoal `json:"miniChallenge,omitempty"`
	Quiz          *QuizGoal          `json:"quiz,omitempty"`
	TheMost       *MostGoal          `json:"theMost,omitempty"`
	Text          *TextGoal          `json:"text,omitempty"`
}

type DistanceGoal struct {
	Value float64 `json:"value,omitempty"`
	Unit  string  `json:"unit,omitempty"`
}

type StepsGoal struct {
	Steps          int    `json:"steps,omitempty"`
	TrackingPeriod string `json:"trackingPeriod,omitempty"`
}

type TeamGoal struct {
	TeamSize int `json:"teamSize,omitempty"`
	Steps    int `json:"steps,omitempty"`
}

type BingoGoal struct {
	SquaresRequired int `json:"squaresRequired,omitempty"`
}

type MiniChallengeGoal struct {
	DailyChallenges int `json:"dailyChallenges,omitempty"`
}

type QuizGoal struct {
	QuestionsRequired int `json:"questionsRequired,omitempty"`
}

type MostGoal struct {
	Measurement    string `json:"measurement,omitempty"`
	TrackingPeriod string `json:"trackingPeriod,omitempty"`
}

type TextGoal struct {
	Objective string `json:"objective,omitempty"`
}

// Summary renders the active variant as a short line, e.g. "10000 Steps".
func (o *Objective) Summary(theme string) string {
	if o == nil {
		return ""
	}
	switch theme {
	case ThemeDistance:
		if o.Distance != nil && o.Distance.Value > 0 {
			return strconv.FormatFloat(o.Distance.Value, 'f', -1, 64) + " " + o.Distance.Unit
		}
	case ThemeSteps:
		if o.StepCount != nil && o.StepCount.Steps > 0 {
			if o.StepCount.TrackingPeriod != "" {
				return fmt.Sprintf("%d Steps (%s)", o.StepCount.Steps, o.StepCount.TrackingPeriod)
			}
			return fmt.Sprintf("%d Steps", o.StepCount.Steps)
		}
	case ThemeTeamChallenge:
		if o.Team != nil && o.Team.Steps > 0 {
			return fmt.Sprintf("%d Steps per team of %d", o.Team.Steps, o.Team.TeamSize)
		}
	case ThemeBingo:
		if o.Bingo != nil && o.Bingo.SquaresRequired > 0 {
			return fmt.Sprintf("%d Squares", o.Bingo.SquaresRequired)
		}
	case ThemeMiniChallenge:
		if o.MiniChallenge != nil && o.MiniChallenge.DailyChallenges > 0 {
			return fmt.Sprintf("%d Challenges", o.MiniChallenge.DailyChallenges)
		}
	case ThemeNutritionQuiz:
		if o.Quiz != nil && o.Quiz.QuestionsRequired > 0 {
			return fmt.Sprintf("%d Questions", o.Quiz.QuestionsRequired)
		}
	case ThemeTheMost:
		if o.TheMost != nil && o.TheMost.Measurement != "" {
			if o.TheMost.TrackingPeriod != "" {
				return fmt.Sprintf("Most %s (%s)", o.TheMost.Measurement, o.TheMost.TrackingPeriod)
			}
			return "Most " + o.TheMost.Measurement
		}
	default:
		if o.Text != nil {
			return o.Text.Objective
		}
	}
	return ""
}
