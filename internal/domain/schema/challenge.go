package schema

import "time"

type ChallengeStatus string

const (
	ChallengeStatusDraft     ChallengeStatus = "draft"
	ChallengeStatusSubmitted ChallengeStatus = "submitted"
	ChallengeStatusListed    ChallengeStatus = "listed"
)

// StatusFilterAll matches every status in dashboard listings.
const StatusFilterAll = "all"

type Challenge struct {
	ID        string          `json:"id"`
	AuthorID  int64           `json:"authorId"`
	Status    ChallengeStatus `json:"status"`
	FormData  FormData        `json:"formData"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Title falls back from the configured name to the theme.
func (c Challenge) Title() string {
	if c.FormData.Details != nil && c.FormData.Details.Name != "" {
		return c.FormData.Details.Name
	}
	if c.FormData.BasicInformation != nil && c.FormData.BasicInformation.Theme != "" {
		return c.FormData.BasicInformation.Theme
	}
	return "Untitled Challenge"
}

func (s ChallengeStatus) Valid() bool {
	switch s {
	case ChallengeStatusDraft, ChallengeStatusSubmitted, ChallengeStatusListed:
		return true
	}
	return false
}

// CanTransition reports whether a challenge may move from s to next.
// Only draft->submitted and submitted->listed are allowed.
func (s ChallengeStatus) CanTransition(next ChallengeStatus) bool {
	switch s {
	case ChallengeStatusDraft:
		return next == ChallengeStatusSubmitted
	case ChallengeStatusSubmitted:
		return next == ChallengeStatusListed
	}
	return false
}
