package wizard

import "ChallengeWizard/internal/domain/schema"

func FeaturesQuestions(actions []string) []Question {
	qs := []Question{{
		Name:     "nextBestActions",
		path:     []string{"nextBestActions"},
		Label:    "Which next best actions should participants see?",
		Subtitle: "Select at least one",
		Kind:     KindMultiSelect,
		Options:  NextBestActions(),
		validate: func(fd schema.FormData) error {
			return requireOptions("nextBestActions", fd.NextBestActions(), nextBestActionOptions)
		},
		value: func(fd schema.FormData) any { return fd.NextBestActions() },
	}}
	if contains(actions, ActionNutritionWidget) {
		qs = append(qs, Question{
			Name:    "nutritionWidget",
			path:    []string{"nutritionWidget"},
			Label:   "Which nutrition widget should be shown?",
			Kind:    KindSelect,
			Options: cloneOptions(nutritionWidgetOptions),
			validate: func(fd schema.FormData) error {
				return requireOption("nutritionWidget", features(fd).NutritionWidget, nutritionWidgetOptions)
			},
			value: func(fd schema.FormData) any { return features(fd).NutritionWidget },
		})
	}
	if contains(actions, ActionRecipes) {
		qs = append(qs, Question{
			Name:    "recipeDiet",
			path:    []string{"recipeDiet"},
			Label:   "Which diet should recipes follow?",
			Kind:    KindSelect,
			Options: cloneOptions(recipeDietOptions),
			validate: func(fd schema.FormData) error {
				return requireOption("recipeDiet", features(fd).RecipeDiet, recipeDietOptions)
			},
			value: func(fd schema.FormData) any { return features(fd).RecipeDiet },
		})
	}
	return qs
}

func FeaturesSubStepCount(actions []string) int {
	return len(FeaturesQuestions(actions))
}

func features(fd schema.FormData) schema.Features {
	if fd.Features == nil {
		return schema.Features{}
	}
	return *fd.Features
}
