// Package mockdata holds the static fixtures served when the live backend is
// not in use or fails. Every helper returns a copy; the fixtures are never
// mutated.
package mockdata

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/models"
)

// ErrNotFound is returned when a lookup has no matching fixture.
var ErrNotFound = errors.New("mockdata: not found")

const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 50
	dateLayout     = "2006-01-02"
)

// Articles filters, sorts (newest first) and paginates the article fixtures.
func Articles(q models.ArticleQuery) models.BlogArticlesPage {
	matched := make([]models.BlogArticle, 0, len(articles))
	for _, a := range articles {
		if q.Category != "" && !strings.EqualFold(a.Category, q.Category) {
			continue
		}
		if q.Tag != "" && !slices.ContainsFunc(a.Tags, func(t string) bool { return strings.EqualFold(t, q.Tag) }) {
			continue
		}
		if q.Featured != nil && a.Featured != *q.Featured {
			continue
		}
		if q.Search != "" && !containsFold(q.Search, a.Title, a.Excerpt, a.Content) {
			continue
		}
		matched = append(matched, cloneArticle(a))
	}

	slices.SortStableFunc(matched, func(a, b models.BlogArticle) int {
		return strings.Compare(b.PublishedAt, a.PublishedAt)
	})
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	page, perPage := normalizePage(q.Page, q.PerPage)
	window, totalPages := paginate(len(matched), page, perPage)

	return models.BlogArticlesPage{
		Articles:   matched[window.start:window.end],
		TotalCount: len(matched),
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// ArticleBySlug returns the article with the given slug.
func ArticleBySlug(slug string) (models.BlogArticle, error) {
	for _, a := range articles {
		if a.Slug == slug {
			return cloneArticle(a), nil
		}
	}
	return models.BlogArticle{}, ErrNotFound
}

func Categories() []models.BlogCategory {
	return slices.Clone(categories)
}

// Changelog applies every predicate set in f, sorts newest first and
// paginates. Versions always lists every known version.
func Changelog(f models.ChangelogFilter) models.ChangelogPage {
	from, hasFrom := parseDate(f.DateFrom)
	to, hasTo := parseDate(f.DateTo)

	matched := make([]models.ChangelogEntry, 0, len(changelog))
	for _, e := range changelog {
		if f.Version != "" && e.Version != f.Version {
			continue
		}
		if len(f.Types) > 0 && !containsEqualFold(f.Types, e.Type) {
			continue
		}
		if len(f.Categories) > 0 && !containsEqualFold(f.Categories, e.Category) {
			continue
		}
		if hasFrom || hasTo {
			date, ok := parseDate(e.Date)
			if !ok || (hasFrom && date.Before(from)) || (hasTo && date.After(to)) {
				continue
			}
		}
		if f.Search != "" && !containsFold(f.Search, append([]string{e.Title, e.Description}, e.Changes...)...) {
			continue
		}
		matched = append(matched, cloneEntry(e))
	}
	sortNewestFirst(matched)

	page, perPage := normalizePage(f.Page, f.PerPage)
	window, totalPages := paginate(len(matched), page, perPage)

	all := slices.Clone(changelog)
	sortNewestFirst(all)
	versions := make([]string, 0, len(all))
	for _, e := range all {
		versions = append(versions, e.Version)
	}

	return models.ChangelogPage{
		Entries:  matched[window.start:window.end],
		Total:    len(matched),
		Page:     page,
		PerPage:  perPage,
		HasNext:  page < totalPages,
		HasPrev:  page > 1,
		Versions: versions,
	}
}

func ChangelogByVersion(version string) (models.ChangelogEntry, error) {
	for _, e := range changelog {
		if e.Version == version {
			return cloneEntry(e), nil
		}
	}
	return models.ChangelogEntry{}, ErrNotFound
}

// Landing returns the landing page content.
func Landing() models.LandingContent {
	out := landing
	out.Features = slices.Clone(landing.Features)
	out.Stats = slices.Clone(landing.Stats)
	out.FAQ = slices.Clone(landing.FAQ)
	out.PopularSearches = slices.Clone(landing.PopularSearches)
	if landing.Presale != nil {
		p := *landing.Presale
		out.Presale = &p
	}
	return out
}

type span struct{ start, end int }

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

func paginate(total, page, perPage int) (span, int) {
	totalPages := (total + perPage - 1) / perPage
	start := total
	// (page-1)*perPage overflows for huge page numbers.
	if page-1 < totalPages {
		start = (page - 1) * perPage
	}
	end := min(start+perPage, total)
	return span{start: start, end: end}, totalPages
}

func sortNewestFirst(entries []models.ChangelogEntry) {
	slices.SortStableFunc(entries, func(a, b models.ChangelogEntry) int {
		if c := strings.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		return strings.Compare(b.Version, a.Version)
	})
}

// parseDate reports false for empty or malformed input, which disables the
// bound.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func containsFold(needle string, fields ...string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func containsEqualFold(set []string, v string) bool {
	return slices.ContainsFunc(set, func(s string) bool { return strings.EqualFold(s, v) })
}

func cloneArticle(a models.BlogArticle) models.BlogArticle {
	a.Tags = slices.Clone(a.Tags)
	return a
}

func cloneEntry(e models.ChangelogEntry) models.ChangelogEntry {
	e.Changes = slices.Clone(e.Changes)
	return e
}
