package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

type Section string

const (
	SectionBasicInformation Section = "basicInformation"
	SectionObjective        Section = "objective"
	SectionDetails          Section = "details"
	SectionRewards          Section = "rewards"
	SectionFeatures         Section = "features"
)

var ErrUnknownSection = errors.New("unknown form section")

// FormData is filled progressively; a nil section has not been started.
type FormData struct {
	BasicInformation *BasicInformation `json:"basicInformation,omitempty"`
	Objective        *Objective        `json:"objective,omitempty"`
	Details          *Details          `json:"details,omitempty"`
	Rewards          *Rewards          `json:"rewards,omitempty"`
	Features         *Features         `json:"features,omitempty"`
}

type BasicInformation struct {
	Category   string `json:"category,omitempty"`
	Theme      string `json:"theme,omitempty"`
	Importance string `json:"importance,omitempty"`
}

type Details struct {
	Name                string `json:"name,omitempty"`
	Headline            string `json:"headline,omitempty"`
	Summary             string `json:"summary,omitempty"`
	Image               string `json:"image,omitempty"`
	HeroImage           string `json:"heroImage,omitempty"`
	EnrollmentStartDate string `json:"enrollmentStartDate,omitempty"`
	EnrollmentEndDate   string `json:"enrollmentEndDate,omitempty"`
	ChallengeStartDate  string `json:"challengeStartDate,omitempty"`
	ChallengeEndDate    string `json:"challengeEndDate,omitempty"`
}

type Rewards struct {
	Types   []string `json:"types"`
	Points  int      `json:"points,omitempty"`
	BadgeID string   `json:"badgeId,omitempty"`
}

type Features struct {
	NextBestActions []string `json:"nextBestActions"`
	NutritionWidget string   `json:"nutritionWidget,omitempty"`
	RecipeDiet      string   `json:"recipeDiet,omitempty"`
}

// Theme returns the selected theme or "" when basic information is missing.
func (f FormData) Theme() string {
	if f.BasicInformation == nil {
		return ""
	}
	return f.BasicInformation.Theme
}

func (f FormData) Category() string {
	if f.BasicInformation == nil {
		return ""
	}
	return f.BasicInformation.Category
}

func (f FormData) RewardTypes() []string {
	if f.Rewards == nil {
		return nil
	}
	return f.Rewards.Types
}

func (f FormData) NextBestActions() []string {
	if f.Features == nil {
		return nil
	}
	return f.Features.NextBestActions
}

// Merge decodes patch onto the named section. Keys absent from the patch keep
// their stored value, so merging the same patch twice is the same as once.
// On error the form data is left untouched.
func (f *FormData) Merge(section Section, patch json.RawMessage) error {
	trimmed := bytes.TrimSpace(patch)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("merge %s: patch must be a JSON object", section)
	}

	var err error
	switch section {
	case SectionBasicInformation:
		err = mergeSection(&f.BasicInformation, trimmed)
	case SectionObjective:
		err = mergeSection(&f.Objective, trimmed)
	case SectionDetails:
		err = mergeSection(&f.Details, trimmed)
	case SectionRewards:
		err = mergeSection(&f.Rewards, trimmed)
	case SectionFeatures:
		err = mergeSection(&f.Features, trimmed)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if err != nil {
		return fmt.Errorf("merge %s: %w", section, err)
	}
	return nil
}

// Clone returns a deep copy.
func (f FormData) Clone() FormData {
	b, err := json.Marshal(f)
	if err != nil {
		return f
	}
	var out FormData
	if err := json.Unmarshal(b, &out); err != nil {
		return f
	}
	return out
}

func mergeSection[T any](dst **T, patch []byte) error {
	next := new(T)
	if *dst != nil {
		// Work on a copy so a failed decode can't leave half-applied values
		// or share slice backing arrays with the stored section.
		b, err := json.Marshal(*dst)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(b, next); err != nil {
			return err
		}
	}

	dec := json.NewDecoder(bytes.NewReader(patch))
	dec.DisallowUnknownFields()
	if err := dec.Decode(next); err != nil {
		return err
	}
	*dst = next
	return nil
}
