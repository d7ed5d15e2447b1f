package datasource

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/gateway"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/models"
)

const (
	ttlPresaleStatus    = 30 * time.Second
	ttlProjects         = 60 * time.Second
	ttlXRPLStats        = 60 * time.Second
	ttlAccountInfo      = 30 * time.Second
	ttlPresaleAnalytics = 2 * time.Minute
)

const (
	opPresaleStatus    = "presale-status"
	opProjects         = "projects"
	opProject          = "project"
	opXRPLStats        = "xrpl-stats"
	opAccountInfo      = "account-info"
	opAuthenticate     = "authenticate-wallet"
	opPresaleAnalytics = "presale-analytics"
)

const fallbackNone = "none"

// PresaleStatus returns the running sale snapshot, or nil when unavailable.
func (s *Service) PresaleStatus(ctx context.Context) *models.PresaleStatus {
	start := time.Now()
	r := s.presaleStatus(ctx)
	if !r.ok() {
		s.logFailure(opPresaleStatus, start, r.err, fallbackNone)
		return nil
	}
	return &r.value
}

func (s *Service) presaleStatus(ctx context.Context) result[models.PresaleStatus] {
	return fetchCached(ctx, s, opPresaleStatus, ttlPresaleStatus, func(ctx context.Context) (models.PresaleStatus, error) {
		return fetchJSON[models.PresaleStatus](ctx, s.backend, "/presale/status", nil)
	})
}

// Projects returns the project listing; failures yield an empty list.
func (s *Service) Projects(ctx context.Context) []models.Project {
	start := time.Now()
	r := fetchCached(ctx, s, opProjects, ttlProjects, func(ctx context.Context) ([]models.Project, error) {
		list, err := fetchJSON[models.ProjectList](ctx, s.backend, "/projects", nil)
		if err != nil {
			return nil, err
		}
		if list.Projects == nil {
			return []models.Project{}, nil
		}
		return list.Projects, nil
	})
	if !r.ok() {
		s.logFailure(opProjects, start, r.err, "empty")
		return []models.Project{}
	}
	if r.value == nil {
		return []models.Project{}
	}
	return r.value
}

func (s *Service) Project(ctx context.Context, id string) *models.Project {
	if id == "" {
		return nil
	}
	start := time.Now()
	key := opProject + ":" + id
	r := fetchCached(ctx, s, key, ttlProjects, func(ctx context.Context) (models.Project, error) {
		detail, err := fetchJSON[models.ProjectDetail](ctx, s.backend, "/projects/"+url.PathEscape(id), nil)
		if err != nil {
			return models.Project{}, err
		}
		if detail.Data == nil {
			return models.Project{}, errEmpty
		}
		return *detail.Data, nil
	})
	if !r.ok() {
		s.logFailure(opProject, start, r.err, fallbackNone)
		return nil
	}
	return &r.value
}

func (s *Service) XRPLStats(ctx context.Context) *models.XRPLStats {
	start := time.Now()
	r := fetchCached(ctx, s, opXRPLStats, ttlXRPLStats, func(ctx context.Context) (models.XRPLStats, error) {
		return fetchJSON[models.XRPLStats](ctx, s.backend, "/xrpl/stats", nil)
	})
	if !r.ok() {
		s.logFailure(opXRPLStats, start, r.err, fallbackNone)
		return nil
	}
	return &r.value
}

// AccountInfo looks up a ledger account by its classic address.
func (s *Service) AccountInfo(ctx context.Context, address string) *models.AccountInfo {
	if address == "" {
		return nil
	}
	start := time.Now()
	key := opAccountInfo + ":" + address
	r := fetchCached(ctx, s, key, ttlAccountInfo, func(ctx context.Context) (models.AccountInfo, error) {
		return fetchJSON[models.AccountInfo](ctx, s.backend, "/xrpl/account/"+url.PathEscape(address), nil)
	})
	if !r.ok() {
		s.logFailure(opAccountInfo, start, r.err, fallbackNone)
		return nil
	}
	return &r.value
}

// AuthenticateWallet forwards a signed message to the backend. It is never
// cached.
func (s *Service) AuthenticateWallet(ctx context.Context, req models.WalletAuthRequest) *models.WalletAuthResponse {
	start := time.Now()
	r := fetchOnce(ctx, func(ctx context.Context) (models.WalletAuthResponse, error) {
		return fetchJSON[models.WalletAuthResponse](ctx, s.backend, "/auth/wallet", &gateway.Request{
			Method: http.MethodPost,
			Body:   req,
		})
	})
	if !r.ok() {
		s.logFailure(opAuthenticate, start, r.err, fallbackNone)
		return nil
	}
	return &r.value
}

func (s *Service) PresaleAnalytics(ctx context.Context) *models.PresaleAnalytics {
	start := time.Now()
	r := fetchCached(ctx, s, opPresaleAnalytics, ttlPresaleAnalytics, func(ctx context.Context) (models.PresaleAnalytics, error) {
		return fetchJSON[models.PresaleAnalytics](ctx, s.backend, "/analytics/presale", nil)
	})
	if !r.ok() {
		s.logFailure(opPresaleAnalytics, start, r.err, fallbackNone)
		return nil
	}
	return &r.value
}
