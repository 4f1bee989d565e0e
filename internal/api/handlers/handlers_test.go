package handlers_test

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/internal/api/handlers"
	"Yoriview-Backend/internal/api/routes"
	"Yoriview-Backend/internal/middleware"
	"Yoriview-Backend/internal/testutil"
	"Yoriview-Backend/internal/utils"
	"Yoriview-Backend/pkg/favorite"
	"Yoriview-Backend/pkg/jwt"
	"Yoriview-Backend/pkg/ocr"
	"Yoriview-Backend/pkg/receipt"
	"Yoriview-Backend/pkg/restaurant"
	"Yoriview-Backend/pkg/review"
	"Yoriview-Backend/pkg/statistics"
	"Yoriview-Backend/pkg/user"
	"Yoriview-Backend/pkg/visit"
	"bytes"
	"context"
	"encoding/json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeExtractor struct {
	res domain.OcrProcessResponse
	err error
	got ocr.Image
}

func (f *fakeExtractor) Extract(ctx context.Context, image ocr.Image) (domain.OcrProcessResponse, error) {
	f.got = image
	return f.res, f.err
}

type testServer struct {
	app *fiber.App
	jwt jwt.JWTService
}

func newTestServer(t *testing.T, extractor ocr.Extractor) *testServer {
	t.Helper()
	db := testutil.NewTestDB(t)
	utils.InitValidator()
	validator := utils.Validate

	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	images := receipt.NewImageStore(nil)

	reviewRepository := review.NewReviewRepository(db)
	visitRepository := visit.NewVisitRepository(db)
	restaurantRepository := restaurant.NewRestaurantRepository(db)

	app := fiber.New()
	cfg := routes.Config{
		App:                app,
		UserHandler:        handlers.NewUserHandler(user.NewUserService(user.NewUserRepository(db), jwtService, nil), validator),
		RestaurantHandler:  handlers.NewRestaurantHandler(restaurant.NewRestaurantService(restaurantRepository), validator),
		ReviewHandler:      handlers.NewReviewHandler(review.NewReviewService(reviewRepository), review.NewCompleteReviewService(db, images, nil), validator),
		ReviewStyleHandler: handlers.NewReviewStyleHandler(review.NewReviewStyleService(review.NewReviewStyleRepository(db)), validator),
		FavoriteHandler:    handlers.NewFavoriteHandler(favorite.NewFavoriteService(favorite.NewFavoriteRepository(db))),
		VisitHandler:       handlers.NewVisitHandler(visit.NewVisitService(visitRepository)),
		StatisticsHandler:  handlers.NewStatisticsHandler(statistics.NewStatisticsService(reviewRepository, visitRepository, restaurantRepository)),
		ReceiptHandler:     handlers.NewReceiptHandler(receipt.NewReceiptService(receipt.NewReceiptRepository(db), images), validator),
		OcrHandler:         handlers.NewOcrHandler(extractor, 1024),
		Middleware:         middleware.NewMiddleware(),
		JWTService:         jwtService,
	}
	cfg.Setup()
	return &testServer{app: app, jwt: jwtService}
}

func (s *testServer) token(t *testing.T, userID string) string {
	t.Helper()
	token, err := s.jwt.GenerateTokenUser(userID, userID+"@example.com")
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, req *http.Request, token string) (int, map[string]any) {
	t.Helper()
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	}
	return resp.StatusCode, body
}

func (s *testServer) doJSON(t *testing.T, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return s.do(t, req, token)
}

func TestRootIsPublic(t *testing.T) {
	s := newTestServer(t, &fakeExtractor{})

	status, body := s.doJSON(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, routes.Version, body["version"])
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t, &fakeExtractor{})
	register := map[string]any{"email": "kim@example.com", "password": "secret123!", "nickname": "kim"}

	status, body := s.doJSON(t, http.MethodPost, "/api/users/register", "", register)
	require.Equal(t, fiber.StatusCreated, status, body)
	assert.Equal(t, true, body["status"])

	status, _ = s.doJSON(t, http.MethodPost, "/api/users/register", "", register)
	assert.Equal(t, fiber.StatusConflict, status)

	weak := map[string]any{"email": "lee@example.com", "password": "password", "nickname": "lee"}
	status, _ = s.doJSON(t, http.MethodPost, "/api/users/register", "", weak)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = s.doJSON(t, http.MethodPost, "/api/users/login", "", map[string]any{"email": "kim@example.com", "password": "wrong123!"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, false, body["status"])

	status, _ = s.doJSON(t, http.MethodPost, "/api/users/login", "", map[string]any{"email": "nobody@example.com", "password": "secret123!"})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body = s.doJSON(t, http.MethodPost, "/api/users/login", "", map[string]any{"email": "kim@example.com", "password": "secret123!"})
	require.Equal(t, fiber.StatusOK, status, body)
	data := body["data"].(map[string]any)
	assert.Equal(t, "kim", data["nickname"])
	token := data["token"].(string)

	status, body = s.doJSON(t, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, "kim@example.com", body["data"].(map[string]any)["email"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t, &fakeExtractor{})

	for _, path := range []string{"/api/users/me", "/api/reviews/me", "/api/statistics/me", "/api/favorites/me"} {
		status, _ := s.doJSON(t, http.MethodGet, path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, status, path)
	}

	status, _ := s.doJSON(t, http.MethodGet, "/api/reviews/me", "not-a-jwt", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestReviewOwnership(t *testing.T) {
	s := newTestServer(t, &fakeExtractor{})
	owner := s.token(t, "owner")
	intruder := s.token(t, "intruder")

	status, body := s.doJSON(t, http.MethodPost, "/api/reviews", owner, map[string]any{
		"receipt_id":    "receipt-1",
		"style_id":      "FRIENDLY",
		"restaurant_id": "restaurant-1",
		"location_id":   "GN",
		"content":       "Great noodles",
		"rating":        4.5,
	})
	require.Equal(t, fiber.StatusCreated, status, body)
	reviewID := body["data"].(map[string]any)["id"].(string)

	update := map[string]any{"content": "hacked", "rating": 1}
	status, _ = s.doJSON(t, http.MethodPut, "/api/reviews/"+reviewID, intruder, update)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = s.doJSON(t, http.MethodDelete, "/api/reviews/"+reviewID, intruder, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = s.doJSON(t, http.MethodPut, "/api/reviews/missing", owner, update)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = s.doJSON(t, http.MethodPut, "/api/reviews/"+reviewID, owner, map[string]any{"content": "ok", "rating": 7})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = s.doJSON(t, http.MethodGet, "/api/reviews/me?order=sideways", owner, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = s.doJSON(t, http.MethodDelete, "/api/reviews/"+reviewID, owner, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestCompleteReviewEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeExtractor{})
	token := s.token(t, "user-1")

	payload := map[string]any{
		"ocr_restaurant_name": "Noodle House",
		"receipt_date":        "2024-05-01",
		"ocr_menu_items":      []map[string]any{{"name": "Ramen", "price": 9000}},
		"restaurant_name":     "Noodle House",
		"restaurant_address":  "1 Main St",
		"review_content":      "Tasty",
		"rating":              4,
	}
	status, body := s.doJSON(t, http.MethodPost, "/api/reviews/complete", token, payload)
	require.Equal(t, fiber.StatusCreated, status, body)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["review_id"])
	assert.NotEmpty(t, body["receipt_id"])
	assert.NotEmpty(t, body["restaurant_id"])

	payload["rating"] = 0
	status, _ = s.doJSON(t, http.MethodPost, "/api/reviews/complete", token, payload)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = s.doJSON(t, http.MethodGet, "/api/restaurants/visited", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)
}

func TestFavoriteDuplicateIsConflict(t *testing.T) {
	s := newTestServer(t, &fakeExtractor{})
	token := s.token(t, "user-1")

	status, _ := s.doJSON(t, http.MethodPost, "/api/favorites/restaurant-1", token, nil)
	assert.Equal(t, fiber.StatusCreated, status)

	status, _ = s.doJSON(t, http.MethodPost, "/api/favorites/restaurant-1", token, nil)
	assert.Equal(t, fiber.StatusConflict, status)

	status, body := s.doJSON(t, http.MethodGet, "/api/favorites/me/restaurant-1", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["data"].(map[string]any)["favorited"])

	status, _ = s.doJSON(t, http.MethodDelete, "/api/favorites/restaurant-1", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = s.doJSON(t, http.MethodDelete, "/api/favorites/restaurant-1", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func multipartImage(t *testing.T, field, filename string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ocr/process", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func TestOcrProcess(t *testing.T) {
	extractor := &fakeExtractor{res: domain.OcrProcessResponse{
		ScanID:         "3b241101-e2bb-4255-8caf-4136c566a962",
		RestaurantName: "Noodle House",
		Items:          []domain.OcrMenuItem{{Name: "Ramen", Price: 9000}},
		Total:          9000,
	}}
	s := newTestServer(t, extractor)
	token := s.token(t, "user-1")

	status, body := s.do(t, multipartImage(t, "image", "receipt.png", []byte("fake image")), token)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, "3b241101-e2bb-4255-8caf-4136c566a962", body["scan_id"])
	assert.Equal(t, "Noodle House", body["restaurant_name"])
	assert.Equal(t, "receipt.png", extractor.got.Filename)
	assert.Equal(t, []byte("fake image"), extractor.got.Data)

	status, _ = s.do(t, multipartImage(t, "file", "receipt.png", []byte("fake image")), token)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = s.do(t, multipartImage(t, "image", "big.png", bytes.Repeat([]byte("x"), 2048)), token)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = s.do(t, multipartImage(t, "image", "receipt.png", []byte("fake image")), "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestOcrFailureCarriesDiagnostics(t *testing.T) {
	extractor := &fakeExtractor{err: &domain.OcrError{
		Kind:     domain.OcrNonZeroExit,
		ExitCode: 2,
		Output:   "Traceback: no module named easyocr",
	}}
	s := newTestServer(t, extractor)

	status, body := s.do(t, multipartImage(t, "image", "receipt.jpg", []byte("img")), s.token(t, "user-1"))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, domain.MessageFailedOcrProcess, body["error"])
	assert.Equal(t, "ocr process exited with code 2", body["details"])
	assert.EqualValues(t, 2, body["exit_code"])
	assert.Equal(t, "Traceback: no module named easyocr", body["output"])

	extractor.err = &domain.OcrError{Kind: domain.OcrTimeout}
	status, body = s.do(t, multipartImage(t, "image", "receipt.jpg", []byte("img")), s.token(t, "user-1"))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "ocr process timed out", body["details"])
	assert.NotContains(t, body, "exit_code")
}

func TestOcrHealthIsPublic(t *testing.T) {
	s := newTestServer(t, &fakeExtractor{})

	status, body := s.doJSON(t, http.MethodGet, "/api/ocr/health", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", body["status"])
}

func TestVisitsAndStatistics(t *testing.T) {
	s := newTestServer(t, &fakeExtractor{})
	token := s.token(t, "user-1")

	for i := 0; i < 2; i++ {
		status, _ := s.doJSON(t, http.MethodPost, "/api/visits/restaurant-1", token, nil)
		require.Equal(t, fiber.StatusCreated, status)
	}

	status, body := s.doJSON(t, http.MethodGet, "/api/visits/me/restaurant-1/count", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 2, body["data"].(map[string]any)["count"])

	status, body = s.doJSON(t, http.MethodGet, "/api/visits/me", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 2)

	status, body = s.doJSON(t, http.MethodGet, "/api/statistics/me", token, nil)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.EqualValues(t, 0, body["data"].(map[string]any)["total_review_count"])
}
