package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/cache"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/config"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/gateway"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/mockdata"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/models"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/tiers"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// recorder is a stand-in remote service that counts hits per path.
type recorder struct {
	mu     sync.Mutex
	hits   map[string]int
	routes map[string]any
}

func newRecorder(routes map[string]any) *recorder {
	return &recorder{hits: map[string]int{}, routes: routes}
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	r.hits[req.URL.Path]++
	r.mu.Unlock()

	body, ok := r.routes[req.URL.Path]
	if !ok {
		http.Error(w, `{"error":"unavailable"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func (r *recorder) count(path string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hits[path]
}

func (r *recorder) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, v := range r.hits {
		n += v
	}
	return n
}

type fixture struct {
	svc     *Service
	backend *recorder
	clock   *fakeClock
}

func newFixture(t *testing.T, source config.DataSource, routes map[string]any) fixture {
	t.Helper()
	rec := newRecorder(routes)
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)

	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := New(Deps{
		Backend: gateway.New(srv.URL),
		Cache:   cache.NewMemoryStore(cache.WithClock(clock.Now)),
		Source:  source,
	})
	return fixture{svc: svc, backend: rec, clock: clock}
}

var sampleStatus = models.PresaleStatus{
	IsActive:          true,
	CurrentTier:       2,
	CurrentPrice:      "0.003",
	TokensSold:        "2500",
	TotalSupply:       "10000",
	NextTierThreshold: "5000",
	TimeRemaining:     3600,
	ParticipantsCount: 42,
}

func TestPresaleStatus_CacheHitSuppressesNetworkCall(t *testing.T) {
	f := newFixture(t, config.Live, map[string]any{"/presale/status": sampleStatus})
	ctx := context.Background()

	first := f.svc.PresaleStatus(ctx)
	require.NotNil(t, first)
	assert.Equal(t, sampleStatus, *first)

	f.clock.Advance(29 * time.Second)
	second := f.svc.PresaleStatus(ctx)
	require.NotNil(t, second)
	assert.Equal(t, 1, f.backend.count("/presale/status"))

	f.clock.Advance(2 * time.Second)
	require.NotNil(t, f.svc.PresaleStatus(ctx))
	assert.Equal(t, 2, f.backend.count("/presale/status"))
}

func TestLiveEndpoints_FailureYieldsNilOrEmpty(t *testing.T) {
	f := newFixture(t, config.Live, nil)
	ctx := context.Background()

	assert.Nil(t, f.svc.PresaleStatus(ctx))
	assert.Nil(t, f.svc.XRPLStats(ctx))
	assert.Nil(t, f.svc.AccountInfo(ctx, "rExampleAddress"))
	assert.Nil(t, f.svc.Project(ctx, "p-1"))
	assert.Nil(t, f.svc.PresaleAnalytics(ctx))
	assert.Nil(t, f.svc.AuthenticateWallet(ctx, models.WalletAuthRequest{WalletAddress: "rExampleAddress"}))

	projects := f.svc.Projects(ctx)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestLiveEndpoints_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	svc := New(Deps{Backend: gateway.New(url, gateway.WithTimeout(time.Second)), Source: config.Live})
	ctx := context.Background()

	assert.Nil(t, svc.PresaleStatus(ctx))
	assert.NotNil(t, svc.Projects(ctx))
}

func TestFailuresAreNotCached(t *testing.T) {
	f := newFixture(t, config.Live, nil)
	ctx := context.Background()

	f.svc.XRPLStats(ctx)
	f.svc.XRPLStats(ctx)
	assert.Equal(t, 2, f.backend.count("/xrpl/stats"))
}

func TestProjects_UnwrapsList(t *testing.T) {
	f := newFixture(t, config.Live, map[string]any{
		"/projects":     models.ProjectList{Projects: []models.Project{{ID: "p-1", Name: "Ledger Labs"}}},
		"/projects/p-1": models.ProjectDetail{Data: &models.Project{ID: "p-1", Name: "Ledger Labs"}},
		"/projects/p-2": map[string]any{"data": nil},
	})
	ctx := context.Background()

	projects := f.svc.Projects(ctx)
	require.Len(t, projects, 1)
	assert.Equal(t, "Ledger Labs", projects[0].Name)

	p := f.svc.Project(ctx, "p-1")
	require.NotNil(t, p)
	assert.Equal(t, "p-1", p.ID)

	assert.Nil(t, f.svc.Project(ctx, "p-2"))
	assert.Nil(t, f.svc.Project(ctx, ""))
}

func TestAccountInfo_KeyedByAddress(t *testing.T) {
	f := newFixture(t, config.Live, map[string]any{
		"/xrpl/account/rAlpha": models.AccountInfo{AccountData: map[string]any{"Balance": "1000"}},
		"/xrpl/account/rBeta":  models.AccountInfo{AccountData: map[string]any{"Balance": "2000"}},
	})
	ctx := context.Background()

	a := f.svc.AccountInfo(ctx, "rAlpha")
	b := f.svc.AccountInfo(ctx, "rBeta")
	f.svc.AccountInfo(ctx, "rAlpha")

	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, "1000", a.AccountData["Balance"])
	assert.Equal(t, "2000", b.AccountData["Balance"])
	assert.Equal(t, 1, f.backend.count("/xrpl/account/rAlpha"))
}

func TestAuthenticateWallet_PostsAndIsNotCached(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/wallet", r.URL.Path)

		var req models.WalletAuthRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "rAlpha", req.WalletAddress)

		_ = json.NewEncoder(w).Encode(models.WalletAuthResponse{Success: true, SessionToken: "tok"})
	}))
	defer srv.Close()

	svc := New(Deps{Backend: gateway.New(srv.URL), Source: config.Live})
	req := models.WalletAuthRequest{WalletAddress: "rAlpha", Signature: "sig", Message: "msg"}

	for i := 0; i < 2; i++ {
		resp := svc.AuthenticateWallet(context.Background(), req)
		require.NotNil(t, resp)
		assert.Equal(t, "tok", resp.SessionToken)
	}
	assert.EqualValues(t, 2, calls.Load())
}

func TestContentEndpoints_FallBackToFixtures(t *testing.T) {
	f := newFixture(t, config.Live, nil)
	ctx := context.Background()

	q := models.ArticleQuery{Category: "tutorials"}
	assert.Equal(t, mockdata.Articles(q), f.svc.BlogArticles(ctx, q))
	assert.Equal(t, mockdata.Categories(), f.svc.BlogCategories(ctx))

	filter := models.ChangelogFilter{Types: []string{"major"}, Search: "security"}
	assert.Equal(t, mockdata.Changelog(filter), f.svc.Changelog(ctx, filter))

	article := f.svc.BlogArticle(ctx, "trustlines-explained")
	require.NotNil(t, article)
	assert.Equal(t, "trustlines-explained", article.Slug)
	assert.Nil(t, f.svc.BlogArticle(ctx, "no-such-article"))

	entry := f.svc.ChangelogEntry(ctx, "2.0.0")
	require.NotNil(t, entry)
	assert.Equal(t, "major", entry.Type)
	assert.Nil(t, f.svc.ChangelogEntry(ctx, "0.0.1"))

	assert.Equal(t, mockdata.Landing(), f.svc.LandingContent(ctx))
}

func TestFallbackShapeMatchesSuccessShape(t *testing.T) {
	live := models.BlogArticlesPage{
		Articles:   []models.BlogArticle{{ID: "a", Slug: "a"}},
		TotalCount: 1, Page: 1, PerPage: 10, TotalPages: 1,
	}
	ok := newFixture(t, config.Live, map[string]any{"/blog/articles": live})
	failing := newFixture(t, config.Live, nil)
	ctx := context.Background()

	okJSON, err := json.Marshal(ok.svc.BlogArticles(ctx, models.ArticleQuery{}))
	require.NoError(t, err)
	fallbackJSON, err := json.Marshal(failing.svc.BlogArticles(ctx, models.ArticleQuery{}))
	require.NoError(t, err)

	var okKeys, fallbackKeys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(okJSON, &okKeys))
	require.NoError(t, json.Unmarshal(fallbackJSON, &fallbackKeys))
	assert.ElementsMatch(t, keys(okKeys), keys(fallbackKeys))
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestLandingContent_FallbackIsCachedBriefly(t *testing.T) {
	f := newFixture(t, config.Live, nil)
	ctx := context.Background()

	f.svc.LandingContent(ctx)
	f.svc.LandingContent(ctx)
	assert.Equal(t, 1, f.backend.count("/content/landing"))

	f.clock.Advance(61 * time.Second)
	f.svc.LandingContent(ctx)
	assert.Equal(t, 2, f.backend.count("/content/landing"))
}

func TestLandingContent_LiveIsCached(t *testing.T) {
	landing := models.LandingContent{Hero: models.LandingHero{Title: "Live hero"}}
	f := newFixture(t, config.Live, map[string]any{"/content/landing": landing})
	ctx := context.Background()

	assert.Equal(t, "Live hero", f.svc.LandingContent(ctx).Hero.Title)
	f.clock.Advance(4 * time.Minute)
	assert.Equal(t, "Live hero", f.svc.LandingContent(ctx).Hero.Title)
	assert.Equal(t, 1, f.backend.count("/content/landing"))
}

func TestLandingContent_MockModeSkipsNetwork(t *testing.T) {
	f := newFixture(t, config.Mock, nil)

	assert.Equal(t, mockdata.Landing(), f.svc.LandingContent(context.Background()))
	assert.Zero(t, f.backend.total())
}

func TestContentTargetSelection(t *testing.T) {
	cats := []models.BlogCategory{{ID: "c", Slug: "c"}}

	t.Run("live uses the backend", func(t *testing.T) {
		f := newFixture(t, config.Live, map[string]any{"/blog/categories": cats})

		assert.Equal(t, cats, f.svc.BlogCategories(context.Background()))
		assert.Equal(t, 1, f.backend.count("/blog/categories"))
		assert.False(t, f.svc.Demo())
	})

	t.Run("mock uses same-origin routes", func(t *testing.T) {
		site := newRecorder(map[string]any{
			"/api/blog/categories": models.Envelope{Success: true, Data: mustJSON(t, cats)},
		})
		siteSrv := httptest.NewServer(site)
		defer siteSrv.Close()
		backend := newRecorder(nil)
		backendSrv := httptest.NewServer(backend)
		defer backendSrv.Close()

		svc := New(Deps{
			Backend:    gateway.New(backendSrv.URL),
			SameOrigin: gateway.NewSameOrigin(siteSrv.URL),
			Source:     config.Mock,
		})

		assert.Equal(t, cats, svc.BlogCategories(context.Background()))
		assert.Equal(t, 1, site.count("/api/blog/categories"))
		assert.Zero(t, backend.total())
		assert.True(t, svc.Demo())
	})

	t.Run("mock without same-origin client uses fixtures", func(t *testing.T) {
		svc := New(Deps{Source: config.Mock})
		assert.Equal(t, mockdata.Categories(), svc.BlogCategories(context.Background()))
	})
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestChangelog_KeyedByFilter(t *testing.T) {
	page := models.ChangelogPage{Entries: []models.ChangelogEntry{{Version: "3.0.0"}}, Total: 1, Page: 1, PerPage: 10}
	f := newFixture(t, config.Live, map[string]any{"/changelog": page})
	ctx := context.Background()

	f.svc.Changelog(ctx, models.ChangelogFilter{Types: []string{"major"}})
	f.svc.Changelog(ctx, models.ChangelogFilter{Types: []string{"major"}})
	f.svc.Changelog(ctx, models.ChangelogFilter{Types: []string{"minor"}})

	assert.Equal(t, 2, f.backend.count("/changelog"))
}

func TestConcurrentMissesShareOneFetch(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		_ = json.NewEncoder(w).Encode(sampleStatus)
	}))
	defer srv.Close()

	svc := New(Deps{Backend: gateway.New(srv.URL), Source: config.Live})

	const callers = 8
	var wg sync.WaitGroup
	results := make([]*models.PresaleStatus, callers)
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = svc.PresaleStatus(context.Background())
		}()
	}

	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, sampleStatus, *r)
	}
	// callers get independent copies
	assert.NotSame(t, results[0], results[1])
}

func TestSharedFetchSurvivesFirstCallerCancel(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		_ = json.NewEncoder(w).Encode(sampleStatus)
	}))
	defer srv.Close()

	svc := New(Deps{Backend: gateway.New(srv.URL), Source: config.Live})

	firstCtx, cancel := context.WithCancel(context.Background())
	first := make(chan *models.PresaleStatus, 1)
	go func() { first <- svc.PresaleStatus(firstCtx) }()
	<-started

	second := make(chan *models.PresaleStatus, 1)
	go func() { second <- svc.PresaleStatus(context.Background()) }()
	time.Sleep(50 * time.Millisecond)

	cancel()
	assert.Nil(t, <-first)

	close(release)
	got := <-second
	require.NotNil(t, got)
	assert.Equal(t, sampleStatus, *got)
	assert.EqualValues(t, 1, calls.Load())

	// the detached fetch still populated the cache
	require.NotNil(t, svc.PresaleStatus(context.Background()))
	assert.EqualValues(t, 1, calls.Load())
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("store down")
}

func (brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("store down")
}

func TestCacheErrorsAreTreatedAsMiss(t *testing.T) {
	rec := newRecorder(map[string]any{"/presale/status": sampleStatus})
	srv := httptest.NewServer(rec)
	defer srv.Close()

	svc := New(Deps{Backend: gateway.New(srv.URL), Cache: brokenStore{}, Source: config.Live})

	require.NotNil(t, svc.PresaleStatus(context.Background()))
	require.NotNil(t, svc.PresaleStatus(context.Background()))
	assert.Equal(t, 2, rec.count("/presale/status"))
}

func TestLoadPresaleOverview(t *testing.T) {
	t.Run("status live, categories substituted", func(t *testing.T) {
		f := newFixture(t, config.Live, map[string]any{"/presale/status": sampleStatus})

		o := f.svc.LoadPresaleOverview(context.Background())

		require.NotNil(t, o.Status)
		assert.Equal(t, "Gold", o.Tier.Name)
		assert.Equal(t, 25.0, o.Progress.SoldPct)
		assert.Equal(t, 50.0, o.Progress.TierPct)
		assert.False(t, o.Progress.Ended)
		assert.Equal(t, mockdata.Categories(), o.Categories)
		assert.True(t, o.Demo)
	})

	t.Run("everything fails", func(t *testing.T) {
		f := newFixture(t, config.Live, nil)

		o := f.svc.LoadPresaleOverview(context.Background())

		assert.Nil(t, o.Status)
		assert.Equal(t, tiers.ByOrdinal(tiers.Bronze), o.Tier)
		assert.Equal(t, tiers.Progress{}, o.Progress)
		assert.NotEmpty(t, o.Categories)
	})

	t.Run("all live", func(t *testing.T) {
		cats := []models.BlogCategory{{ID: "c", Slug: "c"}}
		f := newFixture(t, config.Live, map[string]any{
			"/presale/status":  sampleStatus,
			"/blog/categories": cats,
		})

		o := f.svc.LoadPresaleOverview(context.Background())

		assert.Equal(t, cats, o.Categories)
		assert.False(t, o.Demo)
	})
}
