package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/handlers"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/logger"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/middleware"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/models"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/services"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Property{},
		&models.ConditionReport{},
		&models.AssumptionSet{},
		&models.VoucherRent{},
		&models.AnalysisSnapshot{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	propertyService := services.NewPropertyService(db)
	assumptionService := services.NewAssumptionService(db)
	analysisService := services.NewAnalysisService(db, propertyService, assumptionService)
	rehabService := services.NewRehabService(db, propertyService)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	assumptionHandler := handlers.NewAssumptionHandler(assumptionService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	rehabHandler := handlers.NewRehabHandler(rehabService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	properties := protected.Group("/properties")
	properties.POST("", propertyHandler.CreateProperty)
	properties.GET("", propertyHandler.GetProperties)
	properties.GET("/:id", propertyHandler.GetProperty)
	properties.PUT("/:id", propertyHandler.UpdateProperty)
	properties.DELETE("/:id", propertyHandler.DeleteProperty)

	properties.POST("/:id/analyze", analysisHandler.AnalyzeProperty)
	properties.POST("/:id/max-offer", analysisHandler.MaxOffer)
	properties.GET("/:id/snapshots", analysisHandler.GetSnapshots)
	protected.GET("/snapshots/:ref", analysisHandler.GetSnapshot)
	protected.GET("/snapshots/:ref/export", analysisHandler.ExportSnapshot)

	properties.PUT("/:id/condition", rehabHandler.UpsertConditionReport)
	properties.GET("/:id/condition", rehabHandler.GetConditionReport)
	properties.GET("/:id/condition/score", rehabHandler.ScoreProperty)
	rehab := protected.Group("/rehab")
	rehab.POST("/estimate", rehabHandler.EstimateCost)
	rehab.POST("/capital", rehabHandler.CapitalNeeded)

	assumptions := protected.Group("/assumptions")
	assumptions.GET("", assumptionHandler.GetAssumptions)
	assumptions.PATCH("", assumptionHandler.UpdateAssumptions)
	assumptions.POST("/reset", assumptionHandler.ResetAssumptions)

	voucherRents := protected.Group("/voucher-rents")
	voucherRents.PUT("", assumptionHandler.UpsertVoucherRent)
	voucherRents.GET("", assumptionHandler.ListVoucherRents)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token string, userID float64) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(float64)
}

// createDuplex creates a standard financed duplex and returns its ID.
func (app *testApp) createDuplex(t *testing.T, token string) float64 {
	t.Helper()
	body := `{
		"address": "123 Main St",
		"zip": "21215",
		"year_built": 1950,
		"unit_count": 2,
		"units": [
			{"beds": 2, "baths": 1, "sqft": 840, "market_rent": 1400},
			{"beds": 2, "baths": 1, "sqft": 840, "market_rent": 1400}
		],
		"total_sqft": 1680,
		"purchase_price": 200000,
		"down_payment_pct": 25,
		"loan_rate_pct": 7,
		"loan_term_years": 30,
		"annual_property_tax": 2400,
		"annual_insurance": 1200
	}`
	rec := app.request("POST", "/api/v1/properties", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create property failed: %d %s", rec.Code, rec.Body.String())
	}
	property := parseJSON(t, rec)["property"].(map[string]interface{})
	return property["id"].(float64)
}
