package handler

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmart/petmart_web/internal/models"
	"github.com/petmart/petmart_web/internal/service"
	"github.com/petmart/petmart_web/internal/store"
)

func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()
	st.Seed()

	catalogSvc := service.NewCatalogService(st)
	cartSvc := service.NewCartService(st)
	profileSvc := service.NewProfileService(st)
	authSvc := service.NewAuthService("test-secret", time.Hour)

	health := NewHealthHandler(catalogSvc, cartSvc)
	shop := NewShopHandler(catalogSvc, cartSvc)
	cart := NewCartHandler(cartSvc)
	profile := NewProfileHandler(profileSvc, cartSvc)
	auth := NewAuthHandler(authSvc)
	admin := NewAdminHandler(catalogSvc, cartSvc, profileSvc)

	router := gin.New()
	router.SetFuncMap(template.FuncMap{
		"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	})
	router.LoadHTMLGlob("../../web/templates/*.html")

	router.GET("/healthz", health.GetHealth)
	router.GET("/jsonproducts", shop.ListProductsJSON)
	router.GET("/", shop.Home)
	router.GET("/cart", cart.ViewCart)
	router.POST("/cart/add", cart.AddToCart)
	router.POST("/cart/update", cart.UpdateCart)
	router.POST("/cart/clear", cart.ClearCart)
	router.GET("/profile", profile.ShowProfile)
	router.POST("/profile/update", profile.UpdateProfile)
	router.GET("/auth", auth.ShowLogin)
	router.POST("/auth/login", auth.Login)
	router.GET("/admin/manage", admin.Manage)
	router.POST("/admin/add-product", admin.AddProduct)
	router.POST("/admin/update-product", admin.UpdateProduct)
	router.POST("/admin/delete-product", admin.DeleteProduct)
	router.POST("/admin/update-stock", admin.UpdateStock)
	router.GET("/admin/data", admin.DataView)

	return router, st
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEnvelope(t *testing.T) {
	router, _ := newTestServer(t)

	w := get(router, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Products int `json:"products"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 5, resp.Data.Products)
}

func TestHomeRendersCatalog(t *testing.T) {
	router, _ := newTestServer(t)

	w := get(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bird Cage Large")
	assert.Contains(t, w.Body.String(), "Cart (0)")
}

func TestHomeFiltersBySearch(t *testing.T) {
	router, _ := newTestServer(t)

	w := get(router, "/?search=kibble")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Premium Dog Kibble")
	assert.NotContains(t, w.Body.String(), "Bird Cage Large")
}

func TestJSONProductsReturnsBareArray(t *testing.T) {
	router, _ := newTestServer(t)

	w := get(router, "/jsonproducts")
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 5)
	assert.Equal(t, "P001", products[0].ID)
}

func TestAddToCartRedirectsHome(t *testing.T) {
	router, st := newTestServer(t)

	w := postForm(router, "/cart/add", url.Values{"productId": {"F001"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	lines := st.CartLines()
	require.Len(t, lines, 1)
	assert.Equal(t, "F001", lines[0].ProductID)
}

func TestCartUpdateRemoveDeletesLine(t *testing.T) {
	router, st := newTestServer(t)
	st.IncrementLine("P002")
	st.IncrementLine("P002")
	st.IncrementLine("P002")

	w := postForm(router, "/cart/update", url.Values{
		"productId": {"P002"},
		"action":    {"remove"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))
	assert.Empty(t, st.CartLines())
}

func TestCartUpdateRejectsUnknownAction(t *testing.T) {
	router, _ := newTestServer(t)

	w := postForm(router, "/cart/update", url.Values{
		"productId": {"P002"},
		"action":    {"explode"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ACTION")
}

func TestCartViewShowsTotals(t *testing.T) {
	router, st := newTestServer(t)
	st.IncrementLine("P003")
	st.AdjustLine("P003", 2)

	w := get(router, "/cart")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "59.97")
}

func TestAdminAddProductRejectsMalformedPrice(t *testing.T) {
	router, st := newTestServer(t)

	w := postForm(router, "/admin/add-product", url.Values{
		"name":             {"Dog Treats"},
		"category":         {"Food"},
		"price":            {"cheap"},
		"stock":            {"5"},
		"reorderThreshold": {"2"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_PRICE")
	assert.Len(t, st.Products(), 5, "rejected create must not change the catalog")
}

func TestAdminAddProductCreatesAndRedirects(t *testing.T) {
	router, st := newTestServer(t)

	w := postForm(router, "/admin/add-product", url.Values{
		"name":             {"Dog Treats"},
		"category":         {"Food"},
		"price":            {"9.99"},
		"stock":            {"5"},
		"reorderThreshold": {"2"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/manage", w.Header().Get("Location"))

	p, ok := st.FindProduct("F003")
	require.True(t, ok)
	assert.Equal(t, "Dog Treats", p.Name)
}

func TestAdminUpdateProductKeepsAbsentFields(t *testing.T) {
	router, st := newTestServer(t)

	w := postForm(router, "/admin/update-product", url.Values{
		"id":    {"F001"},
		"price": {"0"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	p, _ := st.FindProduct("F001")
	assert.True(t, p.Price.IsZero(), "explicit price 0 must persist")
	assert.Equal(t, 12, p.Stock, "absent field keeps its value")
}

func TestAdminUpdateStockRejectsNegative(t *testing.T) {
	router, st := newTestServer(t)

	w := postForm(router, "/admin/update-stock", url.Values{
		"foodId":      {"F002"},
		"newQuantity": {"-3"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STOCK")

	p, _ := st.FindProduct("F002")
	assert.Equal(t, 150, p.Stock)
}

func TestAdminDeleteUnknownProductIs404(t *testing.T) {
	router, _ := newTestServer(t)

	w := postForm(router, "/admin/delete-product", url.Values{"id": {"X999"}})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestAdminDataViewRendersStores(t *testing.T) {
	router, st := newTestServer(t)
	st.IncrementLine("P001")

	w := get(router, "/admin/data")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bird Cage Large")
	assert.Contains(t, w.Body.String(), "John Doe")
}

func TestProfileUpdateRequiresAllFields(t *testing.T) {
	router, st := newTestServer(t)

	w := postForm(router, "/profile/update", url.Values{
		"name":  {"Jane Roe"},
		"phone": {"1234"},
		// address, email, pincode missing
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_FIELD")
	assert.Equal(t, "John Doe", st.Profile().Name, "rejected update must not change the profile")
}

func TestProfileUpdateReplacesRecord(t *testing.T) {
	router, st := newTestServer(t)

	w := postForm(router, "/profile/update", url.Values{
		"name":    {"Jane Roe"},
		"phone":   {"1234567890"},
		"address": {"42 Birdsong Ave"},
		"email":   {"jane@example.com"},
		"pincode": {"560001"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/profile", w.Header().Get("Location"))
	assert.Equal(t, "Jane Roe", st.Profile().Name)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	router, _ := newTestServer(t)

	w := postForm(router, "/auth/login", url.Values{
		"email":    {"jane@example.com"},
		"password": {"ignored"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "petmart_session", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestLoginRequiresEmail(t *testing.T) {
	router, _ := newTestServer(t)

	w := postForm(router, "/auth/login", url.Values{"password": {"x"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_FIELD")
}
