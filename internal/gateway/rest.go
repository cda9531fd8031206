package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/basket"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/catalog"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/comment"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/pkg/config"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/pkg/errs"
)

// RestGateway talks to the basket, comment and catalog services. One instance
// serves the whole process; it is safe for concurrent use.
type RestGateway struct {
	basketURL  string
	commentURL string
	catalogURL string
	token      string
	client     *http.Client
	log        *slog.Logger
}

func NewRestGateway(cfg config.ServicesConfig, log *slog.Logger) *RestGateway {
	return &RestGateway{
		basketURL:  cfg.BasketURL,
		commentURL: cfg.CommentURL,
		catalogURL: cfg.CatalogURL,
		token:      cfg.BearerToken,
		client:     &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

// The catalog service wraps single-resource responses in a data envelope.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

func (g *RestGateway) do(ctx context.Context, method, rawURL string, body any, out any) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "encode request body")
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, payload)
	if err != nil {
		return errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "call "+method+" "+rawURL), errs.ErrTransport)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.log.Warn("backend returned non-success status",
			"method", method, "url", rawURL, "status", resp.StatusCode)
		return errs.Mark(
			errs.New(fmt.Sprintf("%s %s: status %d", method, rawURL, resp.StatusCode)),
			errs.ErrTransport,
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(errs.Wrap(err, "decode response"), errs.ErrTransport)
	}
	return nil
}

func (g *RestGateway) FetchBasket(ctx context.Context) (basket.Basket, error) {
	var snap basket.Basket
	if err := g.do(ctx, http.MethodGet, g.basketURL+"/basket", nil, &snap); err != nil {
		return basket.Basket{}, err
	}
	if err := snap.Validate(); err != nil {
		return basket.Basket{}, errs.Mark(errs.Wrap(err, "invalid basket snapshot"), errs.ErrTransport)
	}
	return snap, nil
}

func (g *RestGateway) SubmitItem(ctx context.Context, item basket.Item) (basket.Basket, error) {
	var snap basket.Basket
	if err := g.do(ctx, http.MethodPost, g.basketURL+"/basket/items", item, &snap); err != nil {
		return basket.Basket{}, err
	}
	if err := snap.Validate(); err != nil {
		return basket.Basket{}, errs.Mark(errs.Wrap(err, "invalid basket snapshot"), errs.ErrTransport)
	}
	return snap, nil
}

func (g *RestGateway) DeleteItem(ctx context.Context, productID string) error {
	return g.do(ctx, http.MethodDelete, g.basketURL+"/basket/items/"+url.PathEscape(productID), nil, nil)
}

func (g *RestGateway) SubmitDiscount(ctx context.Context, code string) (bool, error) {
	req := struct {
		Code string `json:"code"`
	}{Code: code}
	var applied bool
	if err := g.do(ctx, http.MethodPost, g.basketURL+"/basket/discount", req, &applied); err != nil {
		return false, err
	}
	return applied, nil
}

func (g *RestGateway) FetchComments(ctx context.Context, productID string) ([]comment.UserComment, error) {
	var list []comment.UserComment
	u := g.commentURL + "/comments?productId=" + url.QueryEscape(productID)
	if err := g.do(ctx, http.MethodGet, u, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (g *RestGateway) FetchCommentCount(ctx context.Context, productID string) (int, error) {
	var count int
	u := g.commentURL + "/comments/count?productId=" + url.QueryEscape(productID)
	if err := g.do(ctx, http.MethodGet, u, nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}

func (g *RestGateway) SubmitComment(ctx context.Context, c comment.UserComment) error {
	return g.do(ctx, http.MethodPost, g.commentURL+"/comments", c, nil)
}

func (g *RestGateway) FetchProduct(ctx context.Context, productID string) (catalog.Product, error) {
	var env dataEnvelope[catalog.Product]
	u := g.catalogURL + "/products/" + url.PathEscape(productID)
	if err := g.do(ctx, http.MethodGet, u, nil, &env); err != nil {
		return catalog.Product{}, err
	}
	return env.Data, nil
}

func (g *RestGateway) FetchProductImages(ctx context.Context, productID string) ([]catalog.ProductImage, error) {
	var images []catalog.ProductImage
	u := g.catalogURL + "/products/" + url.PathEscape(productID) + "/images"
	if err := g.do(ctx, http.MethodGet, u, nil, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (g *RestGateway) FetchProductDetail(ctx context.Context, productID string) (catalog.ProductDetail, error) {
	var env dataEnvelope[catalog.ProductDetail]
	u := g.catalogURL + "/products/" + url.PathEscape(productID) + "/detail"
	if err := g.do(ctx, http.MethodGet, u, nil, &env); err != nil {
		return catalog.ProductDetail{}, err
	}
	return env.Data, nil
}
