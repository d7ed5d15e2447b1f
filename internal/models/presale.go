package models

import "encoding/json"

// PresaleStatus is a snapshot of the running token sale. Amounts are decimal
// strings as returned by the backend.
type PresaleStatus struct {
	IsActive          bool   `json:"is_active"`
	CurrentTier       int    `json:"current_tier"`
	CurrentPrice      string `json:"current_price"`
	TokensSold        string `json:"tokens_sold"`
	TotalSupply       string `json:"total_supply"`
	NextTierThreshold string `json:"next_tier_threshold"`
	TimeRemaining     int64  `json:"time_remaining"` // seconds, <= 0 means ended
	ParticipantsCount int    `json:"participants_count"`
}

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	TokenSymbol string `json:"token_symbol"`
	Status      string `json:"status"`
	TargetRaise string `json:"target_raise"`
	Raised      string `json:"raised"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	Website     string `json:"website,omitempty"`
}

// ProjectList is the backend shape of GET /projects.
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// ProjectDetail is the backend shape of GET /projects/{id}.
type ProjectDetail struct {
	Data *Project `json:"data"`
}

type Investment struct {
	ID            string `json:"id"`
	ProjectID     string `json:"project_id"`
	WalletAddress string `json:"wallet_address"`
	Amount        string `json:"amount"`
	Tier          int    `json:"tier"`
	TxHash        string `json:"tx_hash,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type User struct {
	ID            string       `json:"id"`
	WalletAddress string       `json:"wallet_address"`
	Tier          int          `json:"tier"`
	TokenBalance  string       `json:"token_balance,omitempty"`
	TotalInvested string       `json:"total_invested,omitempty"`
	Investments   []Investment `json:"investments,omitempty"`
	CreatedAt     string       `json:"created_at,omitempty"`
}

// XRPLStats mirrors the backend network statistics payload.
type XRPLStats struct {
	Network  map[string]any `json:"network"`
	Market   map[string]any `json:"market"`
	Platform map[string]any `json:"platform"`
}

type AccountInfo struct {
	AccountData        map[string]any   `json:"account_data"`
	Trustlines         []map[string]any `json:"trustlines"`
	RecentTransactions []map[string]any `json:"recent_transactions"`
}

type WalletAuthRequest struct {
	WalletAddress string `json:"wallet_address"`
	Signature     string `json:"signature"`
	Message       string `json:"message"`
	PublicKey     string `json:"public_key,omitempty"`
}

type WalletAuthResponse struct {
	Success      bool   `json:"success"`
	User         *User  `json:"user,omitempty"`
	SessionToken string `json:"session_token,omitempty"`
	Message      string `json:"message,omitempty"`
}

// PresaleAnalytics keeps each section loosely typed; the layer does not
// interpret them.
type PresaleAnalytics struct {
	PresaleOverview    json.RawMessage `json:"presale_overview"`
	ContributionStats  json.RawMessage `json:"contribution_stats"`
	TierDistribution   json.RawMessage `json:"tier_distribution"`
	TemporalAnalytics  json.RawMessage `json:"temporal_analytics"`
	WhaleAnalytics     json.RawMessage `json:"whale_analytics"`
	PerformanceMetrics json.RawMessage `json:"performance_metrics"`
}
