// Package gateway maps local product forms onto the remote product API:
// list and detail fetches, multipart create/update submissions, and the
// sold/delete lifecycle calls.
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/evomarket/evomarket-go/api"
	"github.com/evomarket/evomarket-go/model"
)

// Error is a non-2xx answer from a product endpoint, carrying the server
// message when one was provided.
type Error struct {
	Op      string
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.Status)
}

// Client is the product gateway over the API transport.
type Client struct {
	api *api.Client
}

// NewClient creates a product gateway.
func NewClient(c *api.Client) *Client {
	return &Client{api: c}
}

// Products fetches listings matching the filters. A nil filters fetches
// everything the server returns by default.
func (c *Client) Products(ctx context.Context, filters *model.SearchFilters) ([]model.Product, error) {
	var query url.Values
	if filters != nil {
		query = filterQuery(*filters)
	}

	resp, err := c.api.JSON(ctx, http.MethodGet, api.PathProducts, query, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &Error{Op: "fetch products", Status: resp.Status, Message: resp.Message("failed to fetch products")}
	}
	return decodeProducts(resp)
}

// Product fetches a single listing.
func (c *Client) Product(ctx context.Context, id string) (*model.Product, error) {
	resp, err := c.api.JSON(ctx, http.MethodGet, api.PathProduct(id), nil, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &Error{Op: "fetch product", Status: resp.Status, Message: resp.Message("failed to fetch product")}
	}

	var product model.Product
	if err := resp.Decode(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// MyProducts fetches the authenticated user's listings.
func (c *Client) MyProducts(ctx context.Context) ([]model.Product, error) {
	return c.list(ctx, api.PathMyProducts, "fetch your products")
}

// FeaturedProducts fetches the promoted listings.
func (c *Client) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	return c.list(ctx, api.PathFeaturedProducts, "fetch featured products")
}

// TrendingProducts fetches the most viewed listings.
func (c *Client) TrendingProducts(ctx context.Context) ([]model.Product, error) {
	return c.list(ctx, api.PathTrendingProducts, "fetch trending products")
}

// Delete removes a listing.
func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.api.JSON(ctx, http.MethodDelete, api.PathProductDelete(id), nil, nil)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return &Error{Op: "delete product", Status: resp.Status, Message: resp.Message("failed to delete product")}
	}
	return nil
}

// MarkAsSold flags a listing as sold, optionally recording the buyer.
func (c *Client) MarkAsSold(ctx context.Context, id, buyerEmail string) error {
	body := struct {
		BuyerEmail string `json:"buyer_email,omitempty"`
	}{BuyerEmail: buyerEmail}

	resp, err := c.api.JSON(ctx, http.MethodPost, api.PathProductSold(id), nil, body)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return &Error{Op: "mark product as sold", Status: resp.Status, Message: resp.Message("failed to mark product as sold")}
	}
	return nil
}

// Categories fetches the flat category list.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	return listOf[model.Category](ctx, c, api.PathCategories, "fetch categories")
}

// CategoryTree fetches categories with their subcategories populated.
func (c *Client) CategoryTree(ctx context.Context) ([]model.Category, error) {
	return listOf[model.Category](ctx, c, api.PathCategoryTree, "fetch categories")
}

// list fetches and unwraps a product list endpoint.
func (c *Client) list(ctx context.Context, path, op string) ([]model.Product, error) {
	return listOf[model.Product](ctx, c, path, op)
}

func listOf[T any](ctx context.Context, c *Client, path, op string) ([]T, error) {
	resp, err := c.api.JSON(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &Error{Op: op, Status: resp.Status, Message: resp.Message("failed to " + op)}
	}
	return decodeList[T](resp)
}

// decodeList accepts both a bare JSON array and the paginated envelope
// that wraps the payload in a "results" field.
func decodeList[T any](resp *api.Response) ([]T, error) {
	trimmed := bytes.TrimSpace(resp.Body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []T
		if err := resp.Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var envelope struct {
		Results []T `json:"results"`
	}
	if err := resp.Decode(&envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

func decodeProducts(resp *api.Response) ([]model.Product, error) {
	return decodeList[model.Product](resp)
}

// filterQuery maps filters onto request parameters. String fields are
// sent only when set; the price bounds are always sent.
func filterQuery(f model.SearchFilters) url.Values {
	v := url.Values{}
	if f.Query != "" {
		v.Set("query", f.Query)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	v.Set("minPrice", formatPrice(f.MinPrice))
	v.Set("maxPrice", formatPrice(f.MaxPrice))
	if f.Condition != "" {
		v.Set("condition", f.Condition)
	}
	if f.SortBy != "" {
		v.Set("sortBy", f.SortBy)
	}
	if f.Location != "" {
		v.Set("location", f.Location)
	}
	return v
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
