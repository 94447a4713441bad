package catalog_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/orderflow/internal/catalog"
	"github.com/SergeyBogomolovv/orderflow/internal/config"
	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FindArticle(t *testing.T) {
	testCases := []struct {
		name      string
		handler   http.HandlerFunc
		want      entities.Article
		wantPrice string
		wantErr   error
	}{
		{
			name: "OK",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/articles/7", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				io.WriteString(w, `{"id":7,"name":"Keyboard","price":10.5,"stock":3}`)
			},
			want:      entities.Article{ID: 7, Name: "Keyboard", Stock: 3},
			wantPrice: "10.50",
		},
		{
			name: "Not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: entities.ErrArticleNotFound,
		},
		{
			name: "Server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: entities.ErrCatalogUnavailable,
		},
		{
			name: "Broken body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, `{"id":`)
			},
			wantErr: entities.ErrCatalogUnavailable,
		},
		{
			name: "Negative price",
			handler: func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, `{"id":7,"name":"Keyboard","price":-1,"stock":3}`)
			},
			wantErr: entities.ErrCatalogUnavailable,
		},
		{
			name: "Timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(time.Second):
				}
			},
			wantErr: entities.ErrCatalogUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			client := catalog.NewClient(logger, config.Catalog{BaseURL: srv.URL + "/", Timeout: 100 * time.Millisecond})

			article, err := client.FindArticle(t.Context(), 7)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want.ID, article.ID)
			assert.Equal(t, tc.want.Name, article.Name)
			assert.Equal(t, tc.want.Stock, article.Stock)
			assert.Equal(t, tc.wantPrice, article.Price.String())
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := catalog.NewClient(logger, config.Catalog{BaseURL: url, Timeout: time.Second})

	_, err := client.FindArticle(t.Context(), 1)
	assert.ErrorIs(t, err, entities.ErrCatalogUnavailable)
}
