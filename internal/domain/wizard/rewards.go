package wizard

import "ChallengeWizard/internal/domain/schema"

// RewardsQuestions always starts with the reward-type select; the points and
// badge questions follow when their type is selected.
func RewardsQuestions(types []string) []Question {
	qs := []Question{{
		Name:    "types",
		path:    []string{"types"},
		Label:   "How will participants be rewarded?",
		Kind:    KindMultiSelect,
		Options: cloneOptions(rewardTypeOptions),
		validate: func(fd schema.FormData) error {
			return requireOptions("types", fd.RewardTypes(), rewardTypeOptions)
		},
		value: func(fd schema.FormData) any { return fd.RewardTypes() },
	}}
	if contains(types, RewardPoints) {
		qs = append(qs, Question{
			Name:  "points",
			path:  []string{"points"},
			Label: "How many points are awarded on completion?",
			Kind:  KindNumber,
			validate: func(fd schema.FormData) error {
				return requirePositive("points", rewards(fd).Points)
			},
			value: func(fd schema.FormData) any { return rewards(fd).Points },
		})
	}
	if contains(types, RewardBadge) {
		qs = append(qs, Question{
			Name:    "badgeId",
			path:    []string{"badgeId"},
			Label:   "Which badge do participants earn?",
			Kind:    KindSelect,
			Options: Badges(),
			validate: func(fd schema.FormData) error {
				return requireOption("badgeId", rewards(fd).BadgeID, badgeOptions)
			},
			value: func(fd schema.FormData) any { return rewards(fd).BadgeID },
		})
	}
	return qs
}

func RewardsSubStepCount(types []string) int {
	return len(RewardsQuestions(types))
}

func rewards(fd schema.FormData) schema.Rewards {
	if fd.Rewards == nil {
		return schema.Rewards{}
	}
	return *fd.Rewards
}
