package datasource

import (
	"context"
	"sync"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/models"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/tiers"
)

// PresaleOverview is everything the presale page renders.
type PresaleOverview struct {
	Status     *models.PresaleStatus `json:"status"`
	Tier       tiers.Tier            `json:"tier"`
	Progress   tiers.Progress        `json:"progress"`
	Categories []models.BlogCategory `json:"categories"`
	// Demo is set when any part came from mock data.
	Demo bool `json:"demo"`
}

// LoadPresaleOverview fetches the presale status and the blog categories
// concurrently. A failure on one side never cancels or delays the other.
func (s *Service) LoadPresaleOverview(ctx context.Context) PresaleOverview {
	var (
		wg         sync.WaitGroup
		status     *models.PresaleStatus
		categories []models.BlogCategory
		substitute bool
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		status = s.PresaleStatus(ctx)
	}()
	go func() {
		defer wg.Done()
		categories, substitute = s.blogCategories(ctx)
	}()
	wg.Wait()

	overview := PresaleOverview{
		Status:     status,
		Tier:       tiers.ByOrdinal(tiers.Bronze),
		Categories: categories,
		Demo:       s.Demo() || substitute,
	}
	if status != nil {
		overview.Tier = tiers.ByOrdinal(status.CurrentTier)
		overview.Progress = tiers.ComputeProgress(*status)
	}
	return overview
}
