// internal/handlers/product_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/webmart/admin-dashboard/internal/commerce"
	"github.com/webmart/admin-dashboard/internal/config"
	"github.com/webmart/admin-dashboard/internal/router"
	"github.com/webmart/admin-dashboard/internal/services"
)

type DashboardTestSuite struct {
	suite.Suite
	upstream   *httptest.Server
	router     *gin.Engine
	token      string
	previewDir string
}

func (suite *DashboardTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	suite.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/admin/products":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"products":[{"id":"p1","name":"","category":"Electronics","price":49.99,"stock":0,"images":[]}]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/admin/products":
			r.ParseMultipartForm(32 << 20)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"new"}`))
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	hash, err := bcrypt.GenerateFromPassword([]byte("dashboard-secret"), bcrypt.DefaultCost)
	require.NoError(suite.T(), err)

	dir, err := os.MkdirTemp("", "handler-previews-")
	require.NoError(suite.T(), err)
	suite.previewDir = dir

	cfg := &config.Config{
		Environment: "test",
		Platform: config.PlatformConfig{
			BaseURL: suite.upstream.URL,
			Timeout: 5,
		},
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 1,
		},
		Admin: config.AdminConfig{
			Username:     "admin",
			PasswordHash: string(hash),
		},
		Uploads: config.UploadConfig{
			PreviewDir:   dir,
			MaxImageSize: 1 << 20,
		},
		Drafts: config.DraftConfig{TTL: time.Hour},
		CORS: config.CORSConfig{
			AllowOrigins: []string{"http://localhost:5173"},
		},
	}

	client := commerce.NewClientFromConfig(cfg.Platform)
	previewStore, err := services.NewPreviewStore(cfg.Uploads)
	require.NoError(suite.T(), err)

	suite.router = router.Initialize(client, previewStore, cfg)
	suite.token = suite.login()
}

func (suite *DashboardTestSuite) TearDownSuite() {
	suite.upstream.Close()
	os.RemoveAll(suite.previewDir)
}

func (suite *DashboardTestSuite) login() string {
	body, _ := json.Marshal(map[string]string{
		"username": "admin",
		"password": "dashboard-secret",
	})
	req, _ := http.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(suite.T(), response.Data.Token)
	return response.Data.Token
}

func (suite *DashboardTestSuite) do(method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DashboardTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var response map[string]any
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (suite *DashboardTestSuite) TestListProductsDerivesViewFields() {
	w := suite.do(http.MethodGet, "/v1/products", nil, "")
	require.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].(map[string]any)
	products := data["products"].([]any)
	require.Len(suite.T(), products, 1)

	product := products[0].(map[string]any)
	assert.Equal(suite.T(), "p1", product["id"])
	assert.Equal(suite.T(), "Unnamed Product", product["display_name"])
	assert.Equal(suite.T(), "out_of_stock", product["stock_status"])
}

func (suite *DashboardTestSuite) TestListProductsRequiresAuth() {
	req, _ := http.NewRequest(http.MethodGet, "/v1/products", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *DashboardTestSuite) TestDeleteRequiresConfirmation() {
	w := suite.do(http.MethodDelete, "/v1/products/p1", nil, "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodDelete, "/v1/products/p1?confirm=true", nil, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *DashboardTestSuite) TestDraftLifecycle() {
	// Open a create draft
	w := suite.do(http.MethodPost, "/v1/products/drafts", nil, "")
	require.Equal(suite.T(), http.StatusCreated, w.Code)

	response := suite.decode(w)
	draft := response["data"].(map[string]any)["draft"].(map[string]any)
	draftID := draft["id"].(string)
	require.NotEmpty(suite.T(), draftID)

	// Attach one image
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("images", "photo.png")
	require.NoError(suite.T(), err)
	part.Write([]byte("fake image"))
	require.NoError(suite.T(), writer.Close())

	w = suite.do(http.MethodPost, "/v1/drafts/"+draftID+"/images", &buf, writer.FormDataContentType())
	require.Equal(suite.T(), http.StatusOK, w.Code)

	// Fill the form
	fields, _ := json.Marshal(map[string]string{
		"name":     "Keyboard",
		"category": "Electronics",
		"price":    "49.99",
		"stock":    "12",
	})
	w = suite.do(http.MethodPut, "/v1/drafts/"+draftID, bytes.NewBuffer(fields), "application/json")
	require.Equal(suite.T(), http.StatusOK, w.Code)

	// Submit
	w = suite.do(http.MethodPost, "/v1/drafts/"+draftID+"/submit", nil, "")
	require.Equal(suite.T(), http.StatusOK, w.Code)

	// The draft is discarded on success
	w = suite.do(http.MethodGet, "/v1/drafts/"+draftID, nil, "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *DashboardTestSuite) TestSubmitWithEmptyNameIsBlocked() {
	w := suite.do(http.MethodPost, "/v1/products/drafts", nil, "")
	require.Equal(suite.T(), http.StatusCreated, w.Code)

	response := suite.decode(w)
	draft := response["data"].(map[string]any)["draft"].(map[string]any)
	draftID := draft["id"].(string)

	w = suite.do(http.MethodPost, "/v1/drafts/"+draftID+"/submit", nil, "")
	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)

	errResponse := suite.decode(w)
	errObj := errResponse["error"].(map[string]any)
	assert.Equal(suite.T(), "NAME_REQUIRED", errObj["code"])
}

func TestDashboardTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardTestSuite))
}
