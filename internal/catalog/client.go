package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/orderflow/internal/config"
	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "orderflow",
	Subsystem: "catalog",
	Name:      "lookups_total",
	Help:      "Total number of article lookups by outcome.",
}, []string{"outcome"})

type articleResponse struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
	Stock int         `json:"stock"`
}

// Client ходит в сервис каталога за снимком товара. Повторов нет.
type Client struct {
	logger  *slog.Logger
	baseURL string
	timeout time.Duration
	http    *http.Client
}

func NewClient(logger *slog.Logger, cfg config.Catalog) *Client {
	return &Client{
		logger:  logger.With(slog.String("client", "catalog")),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		http:    &http.Client{},
	}
}

func (c *Client) FindArticle(ctx context.Context, articleID int64) (entities.Article, error) {
	article, err := c.findArticle(ctx, articleID)
	switch {
	case err == nil:
		lookupsTotal.WithLabelValues("found").Inc()
	case errors.Is(err, entities.ErrArticleNotFound):
		lookupsTotal.WithLabelValues("not_found").Inc()
	default:
		lookupsTotal.WithLabelValues("unavailable").Inc()
		c.logger.WarnContext(ctx, "catalog lookup failed", slog.Int64("article_id", articleID), slog.Any("error", err))
	}
	return article, err
}

func (c *Client) findArticle(ctx context.Context, articleID int64) (entities.Article, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint, err := url.JoinPath(c.baseURL, "api", "articles", strconv.FormatInt(articleID, 10))
	if err != nil {
		return entities.Article{}, fmt.Errorf("%w: %v", entities.ErrCatalogUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.Article{}, fmt.Errorf("%w: %v", entities.ErrCatalogUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return entities.Article{}, fmt.Errorf("%w: %v", entities.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return entities.Article{}, entities.ErrArticleNotFound
	default:
		io.Copy(io.Discard, resp.Body)
		return entities.Article{}, fmt.Errorf("%w: unexpected status %d", entities.ErrCatalogUnavailable, resp.StatusCode)
	}

	var body articleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Article{}, fmt.Errorf("%w: invalid response body: %v", entities.ErrCatalogUnavailable, err)
	}

	price, err := entities.ParseMoney(body.Price.String())
	if err != nil {
		return entities.Article{}, fmt.Errorf("%w: invalid price: %v", entities.ErrCatalogUnavailable, err)
	}

	return entities.Article{
		ID:    body.ID,
		Name:  body.Name,
		Price: price,
		Stock: body.Stock,
	}, nil
}
