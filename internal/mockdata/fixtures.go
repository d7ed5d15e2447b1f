package mockdata

import "github.com/xrplsale/xrplsale-launchpad-sub000/internal/models"

var categories = []models.BlogCategory{
	{ID: "cat-1", Name: "Announcements", Slug: "announcements", Description: "Platform news and launch updates", ArticleCount: 2},
	{ID: "cat-2", Name: "Tutorials", Slug: "tutorials", Description: "Step-by-step guides for investors and project teams", ArticleCount: 2},
	{ID: "cat-3", Name: "XRPL Ecosystem", Slug: "xrpl-ecosystem", Description: "Developments across the XRP Ledger", ArticleCount: 2},
	{ID: "cat-4", Name: "Security", Slug: "security", Description: "Wallet safety and platform security practices", ArticleCount: 1},
}

var articles = []models.BlogArticle{
	{
		ID:          "art-1",
		Slug:        "introducing-xrpl-sale",
		Title:       "Introducing XRPL.Sale: The Launchpad for XRP Ledger Projects",
		Excerpt:     "A tiered presale platform built natively on the XRP Ledger.",
		Content:     "XRPL.Sale lets project teams run transparent token presales on the XRP Ledger. Investors join tiers based on their token holdings and receive bonus multipliers and early access.",
		Author:      "XRPL.Sale Team",
		Category:    "announcements",
		Tags:        []string{"launch", "presale", "xrpl"},
		Featured:    true,
		PublishedAt: "2024-01-15T10:00:00Z",
		ReadTime:    4,
		ImageURL:    "/images/blog/introducing.jpg",
	},
	{
		ID:          "art-2",
		Slug:        "how-presale-tiers-work",
		Title:       "How Presale Tiers Work",
		Excerpt:     "Bronze to Diamond: what each tier unlocks and how to qualify.",
		Content:     "Tiers are resolved from your token balance. Silver starts at 1,000 tokens, Gold at 5,000, Platinum at 15,000 and Diamond at 50,000. Higher tiers earn larger multipliers and guaranteed allocation.",
		Author:      "Maya Chen",
		Category:    "tutorials",
		Tags:        []string{"tiers", "presale", "guide"},
		Featured:    true,
		PublishedAt: "2024-02-01T09:30:00Z",
		ReadTime:    6,
		ImageURL:    "/images/blog/tiers.jpg",
	},
	{
		ID:          "art-3",
		Slug:        "connecting-your-wallet",
		Title:       "Connecting Your Wallet Safely",
		Excerpt:     "Use Xumm, Crossmark or GemWallet to sign in without sharing keys.",
		Content:     "Wallet sign-in uses a signed message. Never share your secret key or family seed. Check the domain before signing any request.",
		Author:      "Daniel Ortiz",
		Category:    "tutorials",
		Tags:        []string{"wallet", "security", "guide"},
		PublishedAt: "2024-02-20T14:00:00Z",
		ReadTime:    5,
	},
	{
		ID:          "art-4",
		Slug:        "amm-on-the-xrp-ledger",
		Title:       "AMM on the XRP Ledger: What It Means for New Tokens",
		Excerpt:     "Automated market makers give new tokens liquidity from day one.",
		Content:     "The XLS-30 amendment brought native automated market makers to the ledger. Projects launching on XRPL.Sale can seed an AMM pool at the end of their presale.",
		Author:      "Priya Natarajan",
		Category:    "xrpl-ecosystem",
		Tags:        []string{"amm", "liquidity", "xrpl"},
		PublishedAt: "2024-03-05T08:00:00Z",
		ReadTime:    7,
	},
	{
		ID:          "art-5",
		Slug:        "q1-platform-update",
		Title:       "Q1 Platform Update",
		Excerpt:     "New analytics dashboards, faster account lookups and more.",
		Content:     "This quarter we shipped presale analytics, a redesigned project page and faster trustline lookups for account pages.",
		Author:      "XRPL.Sale Team",
		Category:    "announcements",
		Tags:        []string{"update", "analytics"},
		PublishedAt: "2024-04-02T12:00:00Z",
		ReadTime:    3,
	},
	{
		ID:          "art-6",
		Slug:        "trustlines-explained",
		Title:       "Trustlines Explained",
		Excerpt:     "Why you need a trustline before you can hold an issued token.",
		Content:     "On the XRP Ledger, issued tokens require a trustline from the holder to the issuer. Setting one reserves a small amount of XRP.",
		Author:      "Priya Natarajan",
		Category:    "xrpl-ecosystem",
		Tags:        []string{"trustlines", "xrpl", "guide"},
		PublishedAt: "2024-04-18T16:45:00Z",
		ReadTime:    4,
	},
	{
		ID:          "art-7",
		Slug:        "phishing-checklist",
		Title:       "A Phishing Checklist for Presale Investors",
		Excerpt:     "Five checks to run before you sign anything.",
		Content:     "Verify the domain, confirm the destination address, never sign blind, keep your seed offline and use the official announcement channels.",
		Author:      "Daniel Ortiz",
		Category:    "security",
		Tags:        []string{"security", "wallet"},
		PublishedAt: "2024-05-10T11:15:00Z",
		ReadTime:    3,
	},
}

var changelog = []models.ChangelogEntry{
	{
		ID:          "cl-1",
		Version:     "1.0.0",
		Title:       "Public launch",
		Description: "First public release of the launchpad with tiered presales.",
		Type:        "major",
		Category:    "platform",
		Date:        "2024-01-15",
		Changes:     []string{"Tiered presale engine", "Wallet sign-in", "Project listings"},
	},
	{
		ID:          "cl-2",
		Version:     "1.1.0",
		Title:       "Presale analytics",
		Description: "Analytics dashboards for contribution and tier distribution.",
		Type:        "minor",
		Category:    "analytics",
		Date:        "2024-02-12",
		Changes:     []string{"Contribution statistics", "Tier distribution chart", "Whale analytics"},
	},
	{
		ID:          "cl-3",
		Version:     "1.1.1",
		Title:       "Signature verification patch",
		Description: "Fixes a security issue in wallet message validation.",
		Type:        "security",
		Category:    "wallet",
		Date:        "2024-02-28",
		Changes:     []string{"Reject expired sign-in messages", "Tighten security checks on public keys"},
	},
	{
		ID:          "cl-4",
		Version:     "1.2.0",
		Title:       "Blog and changelog",
		Description: "Content pages for articles and release notes.",
		Type:        "minor",
		Category:    "content",
		Date:        "2024-03-20",
		Changes:     []string{"Blog with categories and tags", "Searchable changelog"},
	},
	{
		ID:          "cl-5",
		Version:     "1.2.1",
		Title:       "Account page fixes",
		Description: "Corrects trustline balances on the account page.",
		Type:        "patch",
		Category:    "platform",
		Date:        "2024-04-05",
		Changes:     []string{"Fix trustline balance rounding", "Faster recent transaction lookup"},
	},
	{
		ID:          "cl-6",
		Version:     "2.0.0",
		Title:       "Launchpad 2.0",
		Description: "Multi-project presales and a hardened security model.",
		Type:        "major",
		Category:    "platform",
		Date:        "2024-06-01",
		Changes:     []string{"Multiple concurrent presales", "Security audit findings resolved", "New tier benefits"},
		Breaking:    true,
	},
	{
		ID:          "cl-7",
		Version:     "2.0.1",
		Title:       "Landing page refresh",
		Description: "Updated hero, stats and FAQ content.",
		Type:        "patch",
		Category:    "content",
		Date:        "2024-06-18",
		Changes:     []string{"New landing hero", "Popular searches"},
	},
}

var landing = models.LandingContent{
	Hero: models.LandingHero{
		Title:    "Launch and invest in XRP Ledger projects",
		Subtitle: "Tiered presales with transparent allocation and on-ledger settlement.",
		CTAText:  "Join the presale",
		CTALink:  "/presale",
	},
	Features: []models.LandingFeature{
		{Title: "Tiered rewards", Description: "Hold more tokens to unlock bonus multipliers and early access.", Icon: "layers"},
		{Title: "Native settlement", Description: "Contributions settle directly on the XRP Ledger.", Icon: "zap"},
		{Title: "Vetted projects", Description: "Every listing is reviewed before its presale opens.", Icon: "shield"},
	},
	Stats: []models.LandingStat{
		{Label: "Projects launched", Value: "24"},
		{Label: "Total raised", Value: "12.4M XRP"},
		{Label: "Participants", Value: "18,900"},
	},
	FAQ: []models.FAQItem{
		{Question: "How do tiers work?", Answer: "Your tier is based on your token balance. Silver starts at 1,000 tokens and Diamond at 50,000."},
		{Question: "Which wallets are supported?", Answer: "Xumm, Crossmark and GemWallet can sign in by signing a one-time message."},
		{Question: "When do I receive my tokens?", Answer: "Tokens are distributed to your trustline after the presale ends."},
		{Question: "Is there a minimum contribution?", Answer: "Each project sets its own minimum, shown on the project page."},
	},
	PopularSearches: []string{"tiers", "wallet", "trustlines", "amm"},
	Presale: &models.PresaleStatus{
		IsActive:          true,
		CurrentTier:       1,
		CurrentPrice:      "0.0025",
		TokensSold:        "3500000",
		TotalSupply:       "10000000",
		NextTierThreshold: "5000000",
		TimeRemaining:     864000,
		ParticipantsCount: 1284,
	},
	UpdatedAt: "2024-06-18T00:00:00Z",
}
