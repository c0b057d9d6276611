package wizard

import (
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/schema"
)

const (
	HeadlineMaxLength = 55
	SummaryMaxLength  = 120
)

// DateRange is the value shape of a date_range question.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func DetailsQuestions() []Question {
	return []Question{
		{
			Name:  "name",
			path:  []string{"name"},
			Label: "What is the name of your challenge?",
			Kind:  KindText,
			validate: func(fd schema.FormData) error {
				return requireText("name", details(fd).Name, 0)
			},
			value: func(fd schema.FormData) any { return details(fd).Name },
		},
		{
			Name:      "headline",
			path:      []string{"headline"},
			Label:     "Write a short headline",
			Subtitle:  "Shown on the challenge card",
			Kind:      KindText,
			MaxLength: HeadlineMaxLength,
			validate: func(fd schema.FormData) error {
				return requireText("headline", details(fd).Headline, HeadlineMaxLength)
			},
			value: func(fd schema.FormData) any { return details(fd).Headline },
		},
		{
			Name:      "summary",
			path:      []string{"summary"},
			Label:     "Summarize the challenge",
			Kind:      KindText,
			MaxLength: SummaryMaxLength,
			validate: func(fd schema.FormData) error {
				return requireText("summary", details(fd).Summary, SummaryMaxLength)
			},
			value: func(fd schema.FormData) any { return details(fd).Summary },
		},
		{
			Name:  "image",
			path:  []string{"image"},
			Label: "Upload a challenge image",
			Kind:  KindImage,
			value: func(fd schema.FormData) any { return details(fd).Image },
		},
		{
			Name:  "heroImage",
			path:  []string{"heroImage"},
			Label: "Upload a hero image",
			Kind:  KindImage,
			value: func(fd schema.FormData) any { return details(fd).HeroImage },
		},
		{
			Name:     "enrollmentPeriod",
			path:     []string{"enrollmentStartDate", "enrollmentEndDate"},
			Label:    "When can participants enroll?",
			Kind:     KindDateRange,
			validate: validateEnrollment,
			value: func(fd schema.FormData) any {
				d := details(fd)
				return DateRange{Start: d.EnrollmentStartDate, End: d.EnrollmentEndDate}
			},
		},
		{
			Name:     "challengePeriod",
			path:     []string{"challengeStartDate", "challengeEndDate"},
			Label:    "When does the challenge run?",
			Kind:     KindDateRange,
			validate: validateChallengePeriod,
			value: func(fd schema.FormData) any {
				d := details(fd)
				return DateRange{Start: d.ChallengeStartDate, End: d.ChallengeEndDate}
			},
		},
	}
}

func validateEnrollment(fd schema.FormData) error {
	d := details(fd)
	start, err := parseDate("enrollmentStartDate", d.EnrollmentStartDate)
	if err != nil {
		return err
	}
	end, err := parseDate("enrollmentEndDate", d.EnrollmentEndDate)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return errorz.NewFieldError("enrollmentEndDate", "must be after the enrollment start date")
	}
	return nil
}

// validateChallengePeriod also needs a valid enrollment start, since the
// challenge can't begin before enrollment opens.
func validateChallengePeriod(fd schema.FormData) error {
	d := details(fd)
	start, err := parseDate("challengeStartDate", d.ChallengeStartDate)
	if err != nil {
		return err
	}
	end, err := parseDate("challengeEndDate", d.ChallengeEndDate)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return errorz.NewFieldError("challengeEndDate", "must be after the challenge start date")
	}
	if d.EnrollmentStartDate != "" {
		enroll, err := parseDate("enrollmentStartDate", d.EnrollmentStartDate)
		if err != nil {
			return err
		}
		if start.Before(enroll) {
			return errorz.NewFieldError("challengeStartDate", "must not be before the enrollment start date")
		}
	}
	return nil
}

func details(fd schema.FormData) schema.Details {
	if fd.Details == nil {
		return schema.Details{}
	}
	return *fd.Details
}
