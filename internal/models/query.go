package models

import (
	"net/url"
	"strconv"
)

// ArticleQuery filters and paginates blog articles.
type ArticleQuery struct {
	Page     int    `form:"page" json:"page,omitempty"`
	PerPage  int    `form:"per_page" json:"per_page,omitempty"`
	Category string `form:"category" json:"category,omitempty"`
	Tag      string `form:"tag" json:"tag,omitempty"`
	Search   string `form:"search" json:"search,omitempty"`
	Featured *bool  `form:"featured" json:"featured,omitempty"`
	Limit    int    `form:"limit" json:"limit,omitempty"`
}

// Values encodes the non-zero fields as query parameters.
func (q ArticleQuery) Values() url.Values {
	v := url.Values{}
	setInt(v, "page", q.Page)
	setInt(v, "per_page", q.PerPage)
	setString(v, "category", q.Category)
	setString(v, "tag", q.Tag)
	setString(v, "search", q.Search)
	if q.Featured != nil {
		v.Set("featured", strconv.FormatBool(*q.Featured))
	}
	setInt(v, "limit", q.Limit)
	return v
}

// ChangelogFilter filters and paginates changelog entries. All set predicates
// must hold for an entry to match.
type ChangelogFilter struct {
	Page       int      `form:"page" json:"page,omitempty"`
	PerPage    int      `form:"per_page" json:"per_page,omitempty"`
	Version    string   `form:"version" json:"version,omitempty"`
	Types      []string `form:"type" json:"type,omitempty"`
	Categories []string `form:"category" json:"category,omitempty"`
	DateFrom   string   `form:"dateFrom" json:"dateFrom,omitempty"`
	DateTo     string   `form:"dateTo" json:"dateTo,omitempty"`
	Search     string   `form:"search" json:"search,omitempty"`
}

func (f ChangelogFilter) Values() url.Values {
	v := url.Values{}
	setInt(v, "page", f.Page)
	setInt(v, "per_page", f.PerPage)
	setString(v, "version", f.Version)
	for _, t := range f.Types {
		if t != "" {
			v.Add("type", t)
		}
	}
	for _, c := range f.Categories {
		if c != "" {
			v.Add("category", c)
		}
	}
	setString(v, "dateFrom", f.DateFrom)
	setString(v, "dateTo", f.DateTo)
	setString(v, "search", f.Search)
	return v
}

func setInt(v url.Values, key string, n int) {
	if n != 0 {
		v.Set(key, strconv.Itoa(n))
	}
}

func setString(v url.Values, key, s string) {
	if s != "" {
		v.Set(key, s)
	}
}
