package datasource

import (
	"context"
	"net/url"
	"time"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/cache"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/config"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/gateway"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/mockdata"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/models"
)

const (
	ttlLanding         = 5 * time.Minute
	ttlLandingFallback = time.Minute
	ttlBlog            = 5 * time.Minute
	ttlCategories      = 10 * time.Minute
	ttlChangelog       = 5 * time.Minute
)

const (
	opLanding        = "landing-content"
	opBlogArticles   = "blog-articles"
	opBlogArticle    = "blog-article"
	opBlogCategories = "blog-categories"
	opChangelog      = "changelog"
	opChangelogEntry = "changelog-entry"
)

const fallbackMock = "mock"

// contentTarget picks the live backend or the same-origin mock routes. The
// same-origin routes live under /api.
func (s *Service) contentTarget(path string) (gateway.Doer, string) {
	if s.source == config.Live {
		return s.backend, path
	}
	return s.sameOrigin, "/api" + path
}

// LandingContent returns the landing page content. Outside live mode the
// fixture is served directly; a failed live fetch caches the fixture briefly.
func (s *Service) LandingContent(ctx context.Context) models.LandingContent {
	if s.source != config.Live {
		return mockdata.Landing()
	}

	start := time.Now()
	r := fetchCached(ctx, s, opLanding, ttlLanding, func(ctx context.Context) (models.LandingContent, error) {
		return fetchJSON[models.LandingContent](ctx, s.backend, "/content/landing", nil)
	})
	if r.ok() {
		return r.value
	}

	s.logFailure(opLanding, start, r.err, fallbackMock)
	fallback := mockdata.Landing()
	s.storeValue(ctx, opLanding, fallback, ttlLandingFallback)
	return fallback
}

// BlogArticles returns a page of articles matching q.
func (s *Service) BlogArticles(ctx context.Context, q models.ArticleQuery) models.BlogArticlesPage {
	start := time.Now()
	params := q.Values()
	doer, path := s.contentTarget("/blog/articles")
	r := fetchCached(ctx, s, cache.Key(opBlogArticles, params), ttlBlog, func(ctx context.Context) (models.BlogArticlesPage, error) {
		return fetchJSON[models.BlogArticlesPage](ctx, doer, path, &gateway.Request{Query: params})
	})
	if !r.ok() {
		s.logFailure(opBlogArticles, start, r.err, fallbackMock)
		return mockdata.Articles(q)
	}
	if r.value.Articles == nil {
		r.value.Articles = []models.BlogArticle{}
	}
	return r.value
}

// BlogArticle returns the article for slug, or nil when neither the source nor
// the fixtures know it.
func (s *Service) BlogArticle(ctx context.Context, slug string) *models.BlogArticle {
	if slug == "" {
		return nil
	}
	start := time.Now()
	doer, path := s.contentTarget("/blog/articles/" + url.PathEscape(slug))
	r := fetchCached(ctx, s, opBlogArticle+":"+slug, ttlBlog, func(ctx context.Context) (models.BlogArticle, error) {
		a, err := fetchJSON[models.BlogArticle](ctx, doer, path, nil)
		if err == nil && a.Slug == "" {
			err = errEmpty
		}
		return a, err
	})
	if r.ok() {
		return &r.value
	}

	s.logFailure(opBlogArticle, start, r.err, fallbackMock)
	a, err := mockdata.ArticleBySlug(slug)
	if err != nil {
		return nil
	}
	return &a
}

func (s *Service) BlogCategories(ctx context.Context) []models.BlogCategory {
	cats, _ := s.blogCategories(ctx)
	return cats
}

// blogCategories also reports whether the fixtures were substituted.
func (s *Service) blogCategories(ctx context.Context) ([]models.BlogCategory, bool) {
	start := time.Now()
	doer, path := s.contentTarget("/blog/categories")
	r := fetchCached(ctx, s, opBlogCategories, ttlCategories, func(ctx context.Context) ([]models.BlogCategory, error) {
		return fetchJSON[[]models.BlogCategory](ctx, doer, path, nil)
	})
	if !r.ok() {
		s.logFailure(opBlogCategories, start, r.err, fallbackMock)
		return mockdata.Categories(), true
	}
	if r.value == nil {
		return []models.BlogCategory{}, false
	}
	return r.value, false
}

// Changelog returns the entries matching f. The fixture fallback applies the
// same filter.
func (s *Service) Changelog(ctx context.Context, f models.ChangelogFilter) models.ChangelogPage {
	start := time.Now()
	params := f.Values()
	doer, path := s.contentTarget("/changelog")
	r := fetchCached(ctx, s, cache.Key(opChangelog, params), ttlChangelog, func(ctx context.Context) (models.ChangelogPage, error) {
		return fetchJSON[models.ChangelogPage](ctx, doer, path, &gateway.Request{Query: params})
	})
	if !r.ok() {
		s.logFailure(opChangelog, start, r.err, fallbackMock)
		return mockdata.Changelog(f)
	}
	if r.value.Entries == nil {
		r.value.Entries = []models.ChangelogEntry{}
	}
	return r.value
}

func (s *Service) ChangelogEntry(ctx context.Context, version string) *models.ChangelogEntry {
	if version == "" {
		return nil
	}
	start := time.Now()
	doer, path := s.contentTarget("/changelog/" + url.PathEscape(version))
	r := fetchCached(ctx, s, opChangelogEntry+":"+version, ttlChangelog, func(ctx context.Context) (models.ChangelogEntry, error) {
		detail, err := fetchJSON[models.ChangelogDetail](ctx, doer, path, nil)
		if err == nil && detail.Entry.Version == "" {
			err = errEmpty
		}
		return detail.Entry, err
	})
	if r.ok() {
		return &r.value
	}

	s.logFailure(opChangelogEntry, start, r.err, fallbackMock)
	e, err := mockdata.ChangelogByVersion(version)
	if err != nil {
		return nil
	}
	return &e
}
