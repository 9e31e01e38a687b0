package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

const (
	ImportSkip   = "skip"
	ImportUpdate = "update"
)

type ImportRowError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

type ImportResult struct {
	Imported int              `json:"imported"`
	Errors   []ImportRowError `json:"errors"`
}

// ImportProducts uploads a CSV catalog. Rows whose SKU already exists are
// skipped unless mode is ImportUpdate.
func (c *Client) ImportProducts(ctx context.Context, csv io.Reader, filename, mode string) (ImportResult, error) {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		part, err := form.CreateFormFile("file", filename)
		if err == nil {
			_, err = io.Copy(part, csv)
		}
		if err == nil {
			err = form.Close()
		}
		pw.CloseWithError(err)
	}()

	var q url.Values
	if mode != "" {
		q = url.Values{"mode": {mode}}
	}

	rc, err := c.send(ctx, http.MethodPost, "/api/products/import", q, form.FormDataContentType(), pr)
	if err != nil {
		pr.CloseWithError(err)
		return ImportResult{}, err
	}
	defer rc.Close()

	var out ImportResult
	if err := json.NewDecoder(rc).Decode(&out); err != nil {
		return ImportResult{}, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// ExportProducts writes the CSV of every product matching q to w. Paging in q is ignored.
func (c *Client) ExportProducts(ctx context.Context, q ProductsQuery, w io.Writer) (int64, error) {
	q.Page, q.PageSize = 0, 0

	rc, err := c.send(ctx, http.MethodGet, "/api/products/export", q.Values(), "", nil)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	n, err := io.Copy(w, rc)
	if err != nil {
		return n, &RequestError{Message: err.Error()}
	}
	return n, nil
}
