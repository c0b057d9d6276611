package repository

import (
	"ChallengeWizard/internal/domain/schema"
	"context"
	"sort"
)

type ListChallengesFilter struct {
	// Status is a schema.ChallengeStatus or schema.StatusFilterAll.
	Status string
	// AuthorID 0 lists every author.
	AuthorID int64
	Page     int
	// PageSize <= 0 returns every match on a single page.
	PageSize int
}

// Matches reports whether c passes the status and author filters.
func (f ListChallengesFilter) Matches(c schema.Challenge) bool {
	if f.Status != "" && f.Status != schema.StatusFilterAll && string(c.Status) != f.Status {
		return false
	}
	if f.AuthorID != 0 && c.AuthorID != f.AuthorID {
		return false
	}
	return true
}

// Bounds returns the offset and limit of the requested page. limit is 0 when
// the whole result fits on one page.
func (f ListChallengesFilter) Bounds() (offset, limit int) {
	if f.PageSize <= 0 {
		return 0, 0
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.PageSize, f.PageSize
}

type ListChallengesResult struct {
	Items []schema.Challenge
	Total int
}

type ChallengeRepository interface {
	Create(ctx context.Context, c schema.Challenge) (schema.Challenge, error)
	GetByID(ctx context.Context, id string) (schema.Challenge, error)
	List(ctx context.Context, filter ListChallengesFilter) (ListChallengesResult, error)
	Update(ctx context.Context, c schema.Challenge) (schema.Challenge, error)
	Delete(ctx context.Context, id string) error
}

// Paginate filters, orders and pages an in-process challenge list, most
// recently updated first.
func Paginate(all []schema.Challenge, filter ListChallengesFilter) ListChallengesResult {
	items := make([]schema.Challenge, 0, len(all))
	for _, c := range all {
		if filter.Matches(c) {
			items = append(items, c)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].UpdatedAt.Equal(items[j].UpdatedAt) {
			return items[i].UpdatedAt.After(items[j].UpdatedAt)
		}
		return items[i].ID < items[j].ID
	})

	total := len(items)
	offset, limit := filter.Bounds()
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return ListChallengesResult{Items: items[offset:end], Total: total}
}
