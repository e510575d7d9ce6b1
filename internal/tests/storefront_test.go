// internal/tests/storefront_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/Mythicool/vaporlax/internal/catalog"
	"github.com/Mythicool/vaporlax/internal/config"
	"github.com/Mythicool/vaporlax/internal/content"
	"github.com/Mythicool/vaporlax/internal/router"
	"github.com/Mythicool/vaporlax/internal/store"
)

type StorefrontTestSuite struct {
	suite.Suite
	router    *gin.Engine
	sessions  *store.Manager
	sessionID string
}

func (suite *StorefrontTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "test",
		Pricing: config.PricingConfig{
			TaxRate:               0.08,
			FlatShippingFee:       5.99,
			FreeShippingThreshold: 50.0,
		},
		Storage: config.StorageConfig{CartNamespace: "vaporlax-cart"},
		// Latency off so tests run instantly
		Simulate: config.SimulateConfig{Enabled: false},
	}

	cat, err := catalog.Load()
	suite.Require().NoError(err)

	lib, err := content.Load()
	suite.Require().NoError(err)

	suite.sessions = store.NewManager(store.DiscardStorage{}, cfg.Storage.CartNamespace, cat.Products())
	suite.router = router.Initialize(cat, lib, suite.sessions, cfg)
}

func (suite *StorefrontTestSuite) SetupTest() {
	suite.sessions.Reset()
	suite.sessionID = uuid.NewString()
}

func (suite *StorefrontTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", suite.sessionID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *StorefrontTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	suite.Require().NoError(err)
	return response
}

func (suite *StorefrontTestSuite) TestHealthCheck() {
	w := suite.request("GET", "/health", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *StorefrontTestSuite) TestListProducts() {
	w := suite.request("GET", "/v1/products", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.True(suite.T(), response["success"].(bool))
	assert.NotEmpty(suite.T(), response["data"].([]interface{}))
	assert.NotEmpty(suite.T(), w.Header().Get("X-Total-Count"))
}

func (suite *StorefrontTestSuite) TestGetProduct() {
	w := suite.request("GET", "/v1/products/elf-bar-bc5000", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	product := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), "Elf Bar BC5000", product["name"])
}

func (suite *StorefrontTestSuite) TestGetProductNotFound() {
	w := suite.request("GET", "/v1/products/does-not-exist", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	response := suite.decode(w)
	assert.False(suite.T(), response["success"].(bool))
}

func (suite *StorefrontTestSuite) TestFeaturedProducts() {
	w := suite.request("GET", "/v1/products/featured", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	featured := response["data"].([]interface{})
	assert.Len(suite.T(), featured, 4, "the first four catalog entries are featured")
}

func (suite *StorefrontTestSuite) TestFilterProducts() {
	w := suite.request("GET", "/v1/products?category=Disposable&in_stock=true", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	for _, item := range response["data"].([]interface{}) {
		product := item.(map[string]interface{})
		assert.Equal(suite.T(), "Disposable", product["category"])
		assert.True(suite.T(), product["in_stock"].(bool))
	}

	// Filters persist for the session until cleared.
	w = suite.request("DELETE", "/v1/products/filters", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *StorefrontTestSuite) TestCartFlow() {
	// Empty cart
	w := suite.request("GET", "/v1/cart", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), 0.0, data["item_count"])

	// Add twice, expect a single merged line
	w = suite.request("POST", "/v1/cart/items", map[string]interface{}{
		"product_id": "elf-bar-bc5000", "quantity": 2,
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.request("POST", "/v1/cart/items", map[string]interface{}{
		"product_id": "elf-bar-bc5000", "quantity": 3,
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	data = suite.decode(w)["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	assert.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), 5.0, data["item_count"])

	// Update quantity down to zero removes the line
	w = suite.request("PATCH", "/v1/cart/items/elf-bar-bc5000", map[string]interface{}{
		"quantity": 0,
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data = suite.decode(w)["data"].(map[string]interface{})
	assert.Empty(suite.T(), data["items"])
}

func (suite *StorefrontTestSuite) TestCartSummaryMath() {
	w := suite.request("POST", "/v1/cart/items", map[string]interface{}{
		"product_id": "smok-nord-4", "quantity": 1, // 34.99, below free shipping
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	data := suite.decode(w)["data"].(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	assert.InDelta(suite.T(), 34.99, summary["subtotal"].(float64), 1e-9)
	assert.InDelta(suite.T(), 34.99*0.08, summary["tax"].(float64), 1e-9)
	assert.InDelta(suite.T(), 5.99, summary["shipping"].(float64), 1e-9)
}

func (suite *StorefrontTestSuite) TestCartIsSessionScoped() {
	w := suite.request("POST", "/v1/cart/items", map[string]interface{}{
		"product_id": "elf-bar-bc5000", "quantity": 1,
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	// A different session sees an empty cart.
	suite.sessionID = uuid.NewString()
	w = suite.request("GET", "/v1/cart", nil)
	data := suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), 0.0, data["item_count"])
}

func (suite *StorefrontTestSuite) TestAddUnknownProduct() {
	w := suite.request("POST", "/v1/cart/items", map[string]interface{}{
		"product_id": "ghost", "quantity": 1,
	})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *StorefrontTestSuite) TestDemoCheckout() {
	w := suite.request("POST", "/v1/cart/items", map[string]interface{}{
		"product_id": "elf-bar-bc5000", "quantity": 1,
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.request("POST", "/v1/checkout/session", nil)
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	data := suite.decode(w)["data"].(map[string]interface{})
	assert.True(suite.T(), data["demo"].(bool))
	assert.Contains(suite.T(), data["id"].(string), "cs_test_")
	assert.NotEmpty(suite.T(), data["url"])
}

func (suite *StorefrontTestSuite) TestCheckoutEmptyCart() {
	w := suite.request("POST", "/v1/checkout/session", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *StorefrontTestSuite) TestNewsletterSubscribe() {
	w := suite.request("POST", "/v1/newsletter/subscribe", map[string]interface{}{
		"email": "neon@example.com",
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	// Duplicate subscription conflicts
	w = suite.request("POST", "/v1/newsletter/subscribe", map[string]interface{}{
		"email": "neon@example.com",
	})
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *StorefrontTestSuite) TestContactFormValidation() {
	w := suite.request("POST", "/v1/contact", map[string]interface{}{
		"name": "A", "email": "bad", "subject": "x", "message": "short",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.request("POST", "/v1/contact", map[string]interface{}{
		"name":    "Casey Vapor",
		"email":   "casey@example.com",
		"subject": "Store hours",
		"message": "Are you open on Sundays in December?",
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *StorefrontTestSuite) TestVerifyAge() {
	w := suite.request("POST", "/v1/verify-age", map[string]interface{}{
		"birth_date": "1990-01-01",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := suite.decode(w)["data"].(map[string]interface{})
	assert.True(suite.T(), data["verified"].(bool))

	w = suite.request("POST", "/v1/verify-age", map[string]interface{}{
		"birth_date": "2020-01-01",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data = suite.decode(w)["data"].(map[string]interface{})
	assert.False(suite.T(), data["verified"].(bool))
}

func (suite *StorefrontTestSuite) TestContentEndpoints() {
	for _, path := range []string{"/v1/blog", "/v1/events", "/v1/promotions", "/v1/testimonials", "/v1/faq"} {
		w := suite.request("GET", path, nil)
		assert.Equal(suite.T(), http.StatusOK, w.Code, path)

		response := suite.decode(w)
		assert.True(suite.T(), response["success"].(bool), path)
		assert.NotEmpty(suite.T(), response["data"], path)
	}
}

func (suite *StorefrontTestSuite) TestBlogPostBySlug() {
	w := suite.request("GET", "/v1/blog/geek-bar-pulse-review", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/v1/blog/missing-post", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *StorefrontTestSuite) TestUIState() {
	w := suite.request("PATCH", "/v1/ui", map[string]interface{}{
		"cart_drawer_open": true,
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/v1/ui", nil)
	data := suite.decode(w)["data"].(map[string]interface{})
	assert.True(suite.T(), data["cart_drawer_open"].(bool))
	assert.False(suite.T(), data["mobile_menu_open"].(bool))
}

func (suite *StorefrontTestSuite) TestSessionHeaderEchoed() {
	w := suite.request("GET", "/v1/products", nil)
	assert.Equal(suite.T(), suite.sessionID, w.Header().Get("X-Session-ID"))
}

func TestStorefrontSuite(t *testing.T) {
	suite.Run(t, new(StorefrontTestSuite))
}
