package wizard

import (
	"ChallengeWizard/internal/domain/schema"
	"strconv"
	"strings"
)

type SummaryLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SummarySection struct {
	Step  StepID        `json:"step"`
	Label string        `json:"label"`
	Lines []SummaryLine `json:"lines"`
}

// Summarize renders the answered fields of every section for the review
// screen. Empty values are left out and so are sections with nothing in them.
func Summarize(fd schema.FormData) []SummarySection {
	var out []SummarySection
	add := func(id StepID, lines ...SummaryLine) {
		var kept []SummaryLine
		for _, l := range lines {
			if strings.TrimSpace(l.Value) != "" {
				kept = append(kept, l)
			}
		}
		if len(kept) == 0 {
			return
		}
		i, _ := StepIndex(id)
		out = append(out, SummarySection{Step: id, Label: StepAt(i).Label, Lines: kept})
	}

	b := basicInfo(fd)
	add(StepBasicInformation,
		SummaryLine{"Category", b.Category},
		SummaryLine{"Theme", b.Theme},
		SummaryLine{"Importance", optionLabel(importanceOptions, b.Importance)},
	)

	add(StepObjective, SummaryLine{"Objective", fd.Objective.Summary(fd.Theme())})

	d := details(fd)
	add(StepDetails,
		SummaryLine{"Name", d.Name},
		SummaryLine{"Headline", d.Headline},
		SummaryLine{"Summary", d.Summary},
		SummaryLine{"Enrollment", DateRangeText(d.EnrollmentStartDate, d.EnrollmentEndDate)},
		SummaryLine{"Challenge dates", DateRangeText(d.ChallengeStartDate, d.ChallengeEndDate)},
	)

	r := rewards(fd)
	var points string
	if r.Points > 0 {
		points = strconv.Itoa(r.Points)
	}
	add(StepRewards,
		SummaryLine{"Types", strings.Join(r.Types, ", ")},
		SummaryLine{"Points", points},
		SummaryLine{"Badge", BadgeLabel(r.BadgeID)},
	)

	f := features(fd)
	add(StepFeatures,
		SummaryLine{"Next best actions", strings.Join(f.NextBestActions, ", ")},
		SummaryLine{"Nutrition widget", optionLabel(nutritionWidgetOptions, f.NutritionWidget)},
		SummaryLine{"Recipe diet", optionLabel(recipeDietOptions, f.RecipeDiet)},
	)
	return out
}

// DateRangeText is "start - end", or "" unless both ends are set.
func DateRangeText(start, end string) string {
	if start == "" || end == "" {
		return ""
	}
	return start + " - " + end
}

func optionLabel(opts []Option, v string) string {
	for _, o := range opts {
		if o.Value == v {
			return o.Label
		}
	}
	return v
}
