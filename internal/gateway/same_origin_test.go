package gateway

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/models"
)

func TestSameOrigin_UnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/blog/categories", r.URL.Path)
		_, _ = io.WriteString(w, `{"success":true,"data":[{"id":"1","name":"News","slug":"news"}]}`)
	}))
	defer srv.Close()

	cats, err := Fetch[[]models.BlogCategory](context.Background(), NewSameOrigin(srv.URL), "/api/blog/categories", nil)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "news", cats[0].Slug)
}

func TestSameOrigin_SuccessFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":false,"error":"content unavailable"}`)
	}))
	defer srv.Close()

	err := NewSameOrigin(srv.URL).Do(context.Background(), "/api/landing", nil, &models.LandingContent{})

	var envErr *EnvelopeError
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, "content unavailable", envErr.Message)
	assert.Equal(t, "/api/landing: content unavailable", err.Error())
}

func TestSameOrigin_NotFoundCarriesEnvelopeMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"success":false,"error":"Article not found"}`)
	}))
	defer srv.Close()

	err := NewSameOrigin(srv.URL).Do(context.Background(), "/api/blog/articles/missing", nil, &models.BlogArticle{})

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.True(t, httpErr.NotFound())
	assert.Equal(t, "Article not found", httpErr.Message)
}

func TestSameOrigin_EmptyDataLeavesOutUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true}`)
	}))
	defer srv.Close()

	out := []string{"keep"}
	require.NoError(t, NewSameOrigin(srv.URL).Do(context.Background(), "/api/x", nil, &out))
	assert.Equal(t, []string{"keep"}, out)
}
