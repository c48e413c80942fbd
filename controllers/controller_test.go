package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mhd-mansour/promotions-favorites/configs"
	"github.com/mhd-mansour/promotions-favorites/entity"
	"github.com/mhd-mansour/promotions-favorites/pkg/resp"
	"github.com/mhd-mansour/promotions-favorites/routes"
	"github.com/mhd-mansour/promotions-favorites/utils"
)

const testSecret = "test-secret"

type testEnvelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	ErrorCode  resp.ErrorCode  `json:"errorCode"`
	TraceID    string          `json:"traceId"`
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.Promotion{}, &entity.Favorite{}, &entity.AuditEvent{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := &configs.Config{JWTSecret: testSecret, JWTTTL: time.Hour}
	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r, db
}

func authToken(t *testing.T, userID uint) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, "user@test.local", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env testEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope from %q: %v", w.Body.String(), err)
	}
	return w, env
}

func seedPromo(t *testing.T, db *gorm.DB, title string, expiresAt time.Time) entity.Promotion {
	t.Helper()
	p := entity.Promotion{
		Title:          title,
		Merchant:       "Shop",
		RewardAmount:   5,
		RewardCurrency: "USD",
		ExpiresAt:      expiresAt,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed promotion: %v", err)
	}
	return p
}

func TestPromotionsRequireAuth(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/promotions", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if env.ErrorCode != resp.CodeUnauthorized {
		t.Errorf("errorCode = %q, want UNAUTHORIZED", env.ErrorCode)
	}
	if env.TraceID == "" {
		t.Error("traceId missing from error envelope")
	}
}

func TestListPromotionsEnvelope(t *testing.T) {
	r, db := setupRouter(t)
	seedPromo(t, db, "A", time.Now().AddDate(0, 1, 0))
	seedPromo(t, db, "B", time.Now().AddDate(0, 2, 0))

	w, env := doRequest(t, r, http.MethodGet, "/promotions", authToken(t, 1))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if env.StatusCode != 200 || env.TraceID == "" {
		t.Errorf("envelope = %+v, want statusCode 200 with traceId", env)
	}

	var payload struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if payload.Pagination.Total != 2 || len(payload.Data) != 2 {
		t.Errorf("got %d rows / total %d, want 2 / 2", len(payload.Data), payload.Pagination.Total)
	}
}

func TestListPromotionsRejectsBadLimit(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/promotions?limit=100", authToken(t, 1))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env.ErrorCode != resp.CodeValidationError {
		t.Errorf("errorCode = %q, want VALIDATION_ERROR", env.ErrorCode)
	}
}

func TestListPromotionsRejectsBadDate(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/promotions?expiresBefore=not-a-date", authToken(t, 1))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env.ErrorCode != resp.CodeValidationError {
		t.Errorf("errorCode = %q, want VALIDATION_ERROR", env.ErrorCode)
	}
}

func TestFavoriteUnknownPromotion(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/promotions/999/favorite", authToken(t, 1))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if env.ErrorCode != resp.CodePromotionNotFound {
		t.Errorf("errorCode = %q, want PROMOTION_NOT_FOUND", env.ErrorCode)
	}
}

func TestFavoriteExpiredPromotion(t *testing.T) {
	r, db := setupRouter(t)
	p := seedPromo(t, db, "Expired", time.Now().AddDate(0, 0, -1))

	w, env := doRequest(t, r, http.MethodPost, fmt.Sprintf("/promotions/%d/favorite", p.ID), authToken(t, 1))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env.ErrorCode != resp.CodePromotionExpired {
		t.Errorf("errorCode = %q, want PROMOTION_EXPIRED", env.ErrorCode)
	}
}

func TestFavoriteRoundTrip(t *testing.T) {
	r, db := setupRouter(t)
	p := seedPromo(t, db, "Keeper", time.Now().AddDate(0, 1, 0))
	token := authToken(t, 42)
	path := fmt.Sprintf("/promotions/%d/favorite", p.ID)

	w, env := doRequest(t, r, http.MethodPost, path, token)
	if w.Code != http.StatusOK {
		t.Fatalf("add status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	var promo struct {
		IsFavorite bool `json:"isFavorite"`
	}
	if err := json.Unmarshal(env.Data, &promo); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !promo.IsFavorite {
		t.Error("add isFavorite = false, want true")
	}

	// list รายการที่เก็บไว้
	_, env = doRequest(t, r, http.MethodGet, "/promotions/favorites", token)
	var favs struct {
		Data     []json.RawMessage `json:"data"`
		Metadata struct {
			TotalFavorites int `json:"totalFavorites"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(env.Data, &favs); err != nil {
		t.Fatalf("decode favorites: %v", err)
	}
	if len(favs.Data) != 1 || favs.Metadata.TotalFavorites != 1 {
		t.Errorf("favorites = %d rows / total %d, want 1 / 1", len(favs.Data), favs.Metadata.TotalFavorites)
	}

	w, env = doRequest(t, r, http.MethodDelete, path, token)
	if w.Code != http.StatusOK {
		t.Fatalf("remove status = %d, want 200", w.Code)
	}
	if err := json.Unmarshal(env.Data, &promo); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if promo.IsFavorite {
		t.Error("remove isFavorite = true, want false")
	}
}

func TestPromotionDetail(t *testing.T) {
	r, db := setupRouter(t)
	p := seedPromo(t, db, "Detail", time.Now().AddDate(0, 1, 0))

	w, env := doRequest(t, r, http.MethodGet, fmt.Sprintf("/promotions/%d", p.ID), authToken(t, 1))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var promo struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(env.Data, &promo); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if promo.Title != "Detail" {
		t.Errorf("title = %q, want Detail", promo.Title)
	}

	w, env = doRequest(t, r, http.MethodGet, "/promotions/424242", authToken(t, 1))
	if w.Code != http.StatusNotFound || env.ErrorCode != resp.CodePromotionNotFound {
		t.Errorf("unknown id: status %d / code %q, want 404 / PROMOTION_NOT_FOUND", w.Code, env.ErrorCode)
	}
}
