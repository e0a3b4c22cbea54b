// internal/commerce/products.go
package commerce

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
)

// ImageFile is one image part of a product create/update submission.
type ImageFile struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// ProductPayload is the multipart body shape the platform expects for
// product creation and update.
type ProductPayload struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	Images      []ImageFile
}

// ListProducts fetches the product collection. The payload is returned as
// parsed, without reshaping; the platform has answered with a bare array, a
// wrapped object and a keyed map at various times, so callers normalize.
func (c *Client) ListProducts(ctx context.Context) (any, error) {
	return c.getJSON(ctx, "/api/admin/products")
}

// CreateProduct submits a new product as multipart form data.
func (c *Client) CreateProduct(ctx context.Context, payload ProductPayload) (any, error) {
	return c.submitProduct(ctx, http.MethodPost, "/api/admin/products", payload)
}

// UpdateProduct replaces an existing product. Zero image parts means the
// platform keeps the current images.
func (c *Client) UpdateProduct(ctx context.Context, id string, payload ProductPayload) (any, error) {
	return c.submitProduct(ctx, http.MethodPut, "/api/admin/products/"+id, payload)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	req, err := c.buildRequest(ctx, http.MethodDelete, "/api/admin/products/"+id, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) submitProduct(ctx context.Context, method, path string, payload ProductPayload) (any, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":        payload.Name,
		"description": payload.Description,
		"price":       strconv.FormatFloat(payload.Price, 'f', -1, 64),
		"stock":       strconv.Itoa(payload.Stock),
		"category":    payload.Category,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("writing field %s: %w", name, err)
		}
	}

	for _, image := range payload.Images {
		part, err := createImagePart(writer, image)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, image.Reader); err != nil {
			return nil, fmt.Errorf("copying image %s: %w", image.Filename, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := c.buildRequest(ctx, method, path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result any
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// createImagePart writes a file part that keeps the image's content type,
// which CreateFormFile would flatten to application/octet-stream.
func createImagePart(writer *multipart.Writer, image ImageFile) (io.Writer, error) {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="images"; filename="%s"`, quoteEscaper.Replace(image.Filename)))
	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	return writer.CreatePart(header)
}
