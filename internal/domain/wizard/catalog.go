// Package wizard holds the challenge creation wizard: the ordered step
// catalog, the per-step question resolver, the validation gate, cursor
// navigation and progress. Everything here is a pure function of the wizard
// cursor and the accumulated form data.
package wizard

import "ChallengeWizard/internal/domain/schema"

type StepID string

const (
	StepBasicInformation StepID = "basic"
	StepObjective        StepID = "objective"
	StepDetails          StepID = "details"
	StepRewards          StepID = "rewards"
	StepFeatures         StepID = "features"
	StepReview           StepID = "review"
)

type Step struct {
	ID      StepID         `json:"id"`
	Label   string         `json:"label"`
	Section schema.Section `json:"section,omitempty"`
}

var steps = []Step{
	{ID: StepBasicInformation, Label: "Basic Information", Section: schema.SectionBasicInformation},
	{ID: StepObjective, Label: "Challenge Objective", Section: schema.SectionObjective},
	{ID: StepDetails, Label: "Challenge Details", Section: schema.SectionDetails},
	{ID: StepRewards, Label: "Rewards & Recognition", Section: schema.SectionRewards},
	{ID: StepFeatures, Label: "Additional Features", Section: schema.SectionFeatures},
	{ID: StepReview, Label: "Review & Publish"},
}

func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

func StepCount() int {
	return len(steps)
}

func LastStep() int {
	return len(steps) - 1
}

// StepAt returns the step at index i, clamped into the catalog.
func StepAt(i int) Step {
	if i < 0 {
		i = 0
	}
	if i > LastStep() {
		i = LastStep()
	}
	return steps[i]
}

func StepIndex(id StepID) (int, bool) {
	for i, s := range steps {
		if s.ID == id {
			return i, true
		}
	}
	return 0, false
}

// StepForSection returns the catalog index that edits the given section.
func StepForSection(section schema.Section) (int, bool) {
	for i, s := range steps {
		if s.Section != "" && s.Section == section {
			return i, true
		}
	}
	return 0, false
}

type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

var categoryOptions = []Option{
	{Value: schema.CategoryActivity, Label: "Activity"},
	{Value: schema.CategoryNutrition, Label: "Nutrition"},
	{Value: schema.CategoryMindfulness, Label: "Mindfulness"},
	{Value: schema.CategorySleep, Label: "Sleep"},
}

var themeOptions = map[string][]Option{
	schema.CategoryActivity: {
		{Value: schema.ThemeDistance, Label: "Distance", Description: "Participants cover a target distance by walking, running or cycling. Progress is tracked cumulatively over the challenge period."},
		{Value: schema.ThemeSteps, Label: "Steps", Description: "Participants reach a step goal, either daily or as a total."},
		{Value: schema.ThemeTeamChallenge, Label: "Team Challenge", Description: "Teams work together to achieve a shared activity goal."},
		{Value: schema.ThemeTheMost, Label: "The Most", Description: "Participants strive for the highest value within the challenge period."},
		{Value: schema.ThemeCompleteX, Label: "Complete X", Description: "Complete a specific activity or reach a defined milestone, such as \"Complete 10 runs\"."},
	},
	schema.CategoryNutrition: {
		{Value: schema.ThemeBingo, Label: "Bingo", Description: "A bingo card filled with nutrition tasks. Complete squares to win."},
		{Value: schema.ThemeNutritionQuiz, Label: "Nutrition Quiz", Description: "Answer quiz questions to earn points and learn healthy habits."},
	},
	schema.CategoryMindfulness: {
		{Value: schema.ThemeMiniChallenge, Label: "Mini Challenge", Description: "Daily mindfulness tasks such as meditation, journaling or gratitude exercises."},
	},
	schema.CategorySleep: {
		{Value: schema.ThemeHoursOfSleep, Label: "Hours of Sleep", Description: "Track nightly sleep duration against a goal."},
	},
}

var importanceOptions = []Option{
	{Value: "low", Label: "Low"},
	{Value: "medium", Label: "Medium"},
	{Value: "high", Label: "High"},
	{Value: "critical", Label: "Critical"},
}

const (
	RewardPoints = "points"
	RewardBadge  = "badge"
)

var rewardTypeOptions = []Option{
	{Value: RewardPoints, Label: "Points"},
	{Value: RewardBadge, Label: "Badge"},
}

var badgeOptions = []Option{
	{Value: "badge1", Label: "Challenge Master", Description: "Awarded for completing multiple challenges"},
	{Value: "badge2", Label: "Health Champion", Description: "Achieved for maintaining healthy habits"},
	{Value: "badge3", Label: "Wellness Warrior", Description: "Earned through consistent wellness activities"},
	{Value: "badge4", Label: "Fitness Pro", Description: "Given for exceptional fitness achievements"},
	{Value: "badge5", Label: "Wellness Leader", Description: "Awarded for leading wellness initiatives"},
	{Value: "badge6", Label: "Goal Achiever", Description: "Earned by reaching significant milestones"},
}

const (
	ActionNutritionWidget = "Nutrition Widget"
	ActionRecipes         = "Recipes"
	ActionCoupons         = "Coupons"
)

var nextBestActionOptions = []Option{
	{Value: ActionNutritionWidget, Label: "Nutrition Widget", Description: "Show a nutrition widget to users"},
	{Value: ActionRecipes, Label: "Recipes", Description: "Provide healthy recipes"},
	{Value: ActionCoupons, Label: "Coupons", Description: "Offer coupons for healthy products"},
}

var nutritionWidgetOptions = []Option{
	{Value: "calorie-tracker", Label: "Calorie Tracker"},
	{Value: "macro-breakdown", Label: "Macro Breakdown"},
	{Value: "water-intake", Label: "Water Intake"},
}

var recipeDietOptions = []Option{
	{Value: "balanced", Label: "Balanced"},
	{Value: "vegetarian", Label: "Vegetarian"},
	{Value: "vegan", Label: "Vegan"},
	{Value: "keto", Label: "Keto"},
	{Value: "mediterranean", Label: "Mediterranean"},
}

var distanceUnitOptions = []Option{
	{Value: "kilometers", Label: "Kilometers"},
	{Value: "miles", Label: "Miles"},
}

var trackingPeriodOptions = []Option{
	{Value: "daily", Label: "Daily"},
	{Value: "weekly", Label: "Weekly"},
	{Value: "total", Label: "Total"},
}

var measurementOptions = []Option{
	{Value: "steps", Label: "Steps"},
	{Value: "distance", Label: "Distance"},
	{Value: "active minutes", Label: "Active minutes"},
}

func Categories() []Option {
	return cloneOptions(categoryOptions)
}

// ThemesFor lists the themes of a category; unknown categories have none.
func ThemesFor(category string) []Option {
	return cloneOptions(themeOptions[category])
}

func Badges() []Option {
	return cloneOptions(badgeOptions)
}

func NextBestActions() []Option {
	return cloneOptions(nextBestActionOptions)
}

// BadgeLabel resolves a badge id to its display name.
func BadgeLabel(id string) string {
	for _, b := range badgeOptions {
		if b.Value == id {
			return b.Label
		}
	}
	return ""
}

func cloneOptions(in []Option) []Option {
	if in == nil {
		return nil
	}
	out := make([]Option, len(in))
	copy(out, in)
	return out
}

func hasOption(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
