package models

type LandingHero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTAText  string `json:"cta_text"`
	CTALink  string `json:"cta_link"`
}

type LandingFeature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

type LandingStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type LandingContent struct {
	Hero            LandingHero      `json:"hero"`
	Features        []LandingFeature `json:"features,omitempty"`
	Stats           []LandingStat    `json:"stats,omitempty"`
	FAQ             []FAQItem        `json:"faq,omitempty"`
	PopularSearches []string         `json:"popularSearches,omitempty"`
	Presale         *PresaleStatus   `json:"presale,omitempty"`
	UpdatedAt       string           `json:"updated_at,omitempty"`
}

type BlogArticle struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	PublishedAt string   `json:"published_at"`
	ReadTime    int      `json:"read_time"`
	ImageURL    string   `json:"image_url,omitempty"`
}

type BlogCategory struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	ArticleCount int    `json:"article_count"`
}

type BlogArticlesPage struct {
	Articles   []BlogArticle `json:"articles"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
	TotalPages int           `json:"total_pages"`
	HasNext    bool          `json:"has_next"`
	HasPrev    bool          `json:"has_prev"`
}

type ChangelogEntry struct {
	ID          string   `json:"id"`
	Version     string   `json:"version"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"` // major|minor|patch|security
	Category    string   `json:"category"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Changes     []string `json:"changes"`
	Breaking    bool     `json:"breaking,omitempty"`
}

type ChangelogPage struct {
	Entries  []ChangelogEntry `json:"entries"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
	HasNext  bool             `json:"has_next"`
	HasPrev  bool             `json:"has_prev"`
	Versions []string         `json:"versions"`
}

// ChangelogDetail is the shape of a single-version lookup.
type ChangelogDetail struct {
	Entry ChangelogEntry `json:"entry"`
}
