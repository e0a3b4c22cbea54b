// internal/commerce/products_test.go
package commerce

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductMultipartShape(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotAuth   string
		gotForm   map[string]string
		gotFiles  []string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotForm = map[string]string{}
		for name, values := range r.MultipartForm.Value {
			gotForm[name] = values[0]
		}
		for _, file := range r.MultipartForm.File["images"] {
			gotFiles = append(gotFiles, file.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"p1"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithAPIKey("secret"))
	result, err := client.CreateProduct(context.Background(), ProductPayload{
		Name:        "Keyboard",
		Description: "Clicky",
		Price:       49.99,
		Stock:       12,
		Category:    "Electronics",
		Images: []ImageFile{
			{Filename: "kb.png", ContentType: "image/png", Reader: strings.NewReader("fake png")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "p1"}, result)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/admin/products", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "Keyboard", gotForm["name"])
	assert.Equal(t, "Clicky", gotForm["description"])
	assert.Equal(t, "49.99", gotForm["price"])
	assert.Equal(t, "12", gotForm["stock"])
	assert.Equal(t, "Electronics", gotForm["category"])
	assert.Equal(t, []string{"kb.png"}, gotFiles)
}

func TestUpdateProductTargetsID(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"p7"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.UpdateProduct(context.Background(), "p7", ProductPayload{Name: "Mouse"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/admin/products/p7", gotPath)
}

func TestDeleteProduct(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.DeleteProduct(context.Background(), "p3"))

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/admin/products/p3", gotPath)
}

func TestErrorsPropagateVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"duplicate name"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListProducts(context.Background())

	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, `{"error":"duplicate name"}`, apiErr.Body)
}

func TestUpdateOrderStatusBody(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.UpdateOrderStatus(context.Background(), "o42", "shipped")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/admin/orders/o42/status", gotPath)
	assert.JSONEq(t, `{"status":"shipped"}`, gotBody)
}
