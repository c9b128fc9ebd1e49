// internal/handlers/handlers_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/technsat/storefront/internal/auth"
	"github.com/technsat/storefront/internal/changefeed"
	"github.com/technsat/storefront/internal/config"
	"github.com/technsat/storefront/internal/i18n"
	"github.com/technsat/storefront/internal/middleware"
	"github.com/technsat/storefront/internal/models"
	"github.com/technsat/storefront/internal/services"
	"github.com/technsat/storefront/internal/showcase"
	"github.com/technsat/storefront/internal/utils"
)

const fallbackURL = "https://wa.me/21655338664"

type HandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	store  *showcase.Store
	boxSvc *services.BoxService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	require.NoError(suite.T(), i18n.Initialize("../i18n/locales", "en"))

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(suite.T(), err)
	sqlDB, err := db.DB()
	require.NoError(suite.T(), err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(suite.T(), db.AutoMigrate(
		&models.IPTVOffer{},
		&models.AndroidBox{},
		&models.SatelliteReceiver{},
		&models.Accessory{},
		&models.ServiceSettings{},
	))
	suite.db = db

	feed := changefeed.NewInert()
	offerSvc := services.NewOfferService(db, feed)
	boxSvc := services.NewBoxService(db, feed)
	receiverSvc := services.NewReceiverService(db, feed)
	accessorySvc := services.NewAccessoryService(db, feed)
	settingsSvc := services.NewSettingsService(db, feed)
	suite.boxSvc = boxSvc

	// Seed before the snapshot load.
	require.NotNil(suite.T(), boxSvc.Create(&services.CreateBoxRequest{
		Name:        "X96 Max Plus",
		Price:       "120 TND",
		PurchaseURL: "https://shop.example.com/x96",
	}))

	suite.store = showcase.NewStore(feed, offerSvc, boxSvc, receiverSvc, accessorySvc, settingsSvc)

	authenticator := auth.NewStaticAuthenticator(config.AdminConfig{
		Username: "wassim1",
		Password: "zed18666",
	})
	authHandler := NewAuthHandler(authenticator, 24)
	offerHandler := NewOfferHandler(suite.store, offerSvc)
	boxHandler := NewBoxHandler(suite.store, boxSvc)
	settingsHandler := NewSettingsHandler(suite.store, settingsSvc)
	redirectHandler := NewRedirectHandler(suite.store, fallbackURL)

	r := gin.New()
	r.Use(middleware.I18nMiddleware())

	v1 := r.Group("/v1")
	v1.GET("/android-boxes", boxHandler.GetBoxes)
	v1.GET("/android-boxes/:id", boxHandler.GetBox)
	v1.GET("/settings", settingsHandler.GetSettings)
	v1.GET("/go/:entity/:id", redirectHandler.Go)

	admin := r.Group("/admin")
	admin.POST("/login", authHandler.Login)
	protected := admin.Group("")
	protected.Use(middleware.AdminRequired())
	protected.POST("/offers", offerHandler.CreateOffer)

	suite.router = r
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.store.Close()
	sqlDB, err := suite.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (suite *HandlerTestSuite) postJSON(path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) TestLoginSuccess() {
	w := suite.postJSON("/admin/login", map[string]string{
		"username": "wassim1",
		"password": "zed18666",
	}, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.NotEmpty(suite.T(), data["token"])
	assert.Equal(suite.T(), "wassim1", data["username"])
}

func (suite *HandlerTestSuite) TestLoginInvalidCredentialsLocalized() {
	w := suite.postJSON("/admin/login", map[string]string{
		"username": "wassim1",
		"password": "nope",
	}, map[string]string{"Accept-Language": "fr"})

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(suite.T(), response["success"].(bool))

	errObj := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "Nom d'utilisateur ou mot de passe incorrect", errObj["message"])
}

func (suite *HandlerTestSuite) TestAdminRoutesRequireToken() {
	w := suite.postJSON("/admin/offers", map[string]string{"name": "x"}, nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = suite.postJSON("/admin/offers", map[string]string{"name": "x"},
		map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestCreateOfferWithToken() {
	token, err := utils.GenerateAdminToken("wassim1", 1)
	require.NoError(suite.T(), err)

	w := suite.postJSON("/admin/offers", map[string]string{
		"name":         "Gold 12 months",
		"download_url": "https://example.com/app.apk",
		"app_name":     "IBO Player",
	}, map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestBoxListing() {
	req, _ := http.NewRequest("GET", "/v1/android-boxes?search=x96", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	require.Len(suite.T(), data, 1)
}

func (suite *HandlerTestSuite) TestBoxDetailNotFound() {
	req, _ := http.NewRequest("GET", "/v1/android-boxes/b2f2c8df-3a51-4f10-a8f3-111111111111", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestSettingsCarriesRTLMeta() {
	req, _ := http.NewRequest("GET", "/v1/settings", nil)
	req.Header.Set("Accept-Language", "ar")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	meta := response["meta"].(map[string]interface{})
	assert.Equal(suite.T(), "ar", meta["lang"])
	assert.Equal(suite.T(), true, meta["rtl"])
}

func (suite *HandlerTestSuite) TestRedirectToPurchaseURL() {
	boxes := suite.store.Boxes()
	require.Len(suite.T(), boxes, 1)

	req, _ := http.NewRequest("GET", "/v1/go/android-boxes/"+boxes[0].ID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "https://shop.example.com/x96", w.Header().Get("Location"))
	assert.Equal(suite.T(), "no-referrer", w.Header().Get("Referrer-Policy"))
}

func (suite *HandlerTestSuite) TestRedirectFallsBackForUnknownID() {
	req, _ := http.NewRequest("GET", "/v1/go/android-boxes/b2f2c8df-3a51-4f10-a8f3-111111111111", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), fallbackURL, w.Header().Get("Location"))
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
