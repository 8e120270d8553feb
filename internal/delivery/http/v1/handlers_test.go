package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"edu-finder-backend/config"
	"edu-finder-backend/internal/catalog"
	"edu-finder-backend/internal/delivery/http/middleware"
	v1 "edu-finder-backend/internal/delivery/http/v1"
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/internal/repository/memory"
	"edu-finder-backend/internal/usecase"
	"edu-finder-backend/pkg/auth"
	"edu-finder-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		GinMode:                 gin.TestMode,
		StorageDriver:           config.StorageMemory,
		FrontendURL:             "http://localhost:5173",
		RateLimitWindowSeconds:  60,
		RateLimitLoginThreshold: 1000,
	}

	tokens, err := auth.NewClientTokens("handler-test-secret-1234")
	require.NoError(t, err)
	authenticator, err := auth.NewMockAuthenticator("g@gmail.com", "131204", "")
	require.NoError(t, err)

	validate := validator.New()
	validation.RegisterValidators(validate, domain.ProfileChoices())

	store := memory.NewSlotStore()
	reg := catalog.NewRegistry()
	profileUC := usecase.NewProfileUsecase(store, validate)
	savedUC := usecase.NewSavedUsecase(store, reg, profileUC)

	router := v1.NewRouter(v1.RouterDeps{
		CatalogUC:    usecase.NewCatalogUsecase(reg, profileUC, savedUC),
		ProfileUC:    profileUC,
		SavedUC:      savedUC,
		AuthUC:       usecase.NewAuthUsecase(store, authenticator),
		HealthUC:     usecase.NewHealthUsecase(store, cfg.StorageDriver),
		ClientTokens: tokens,
		NewClientID:  auth.NewClientID,
		Config:       cfg,
	})
	return &testServer{t: t, router: router}
}

// do sends a request as this server's client, adopting the token issued on
// the first call.
func (s *testServer) do(method, path, body string) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	if issued := w.Header().Get(middleware.HeaderClientToken); issued != "" {
		s.token = issued
	}

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w, env := s.do(http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.RequestID)
}

func TestCatalogEndpoints(t *testing.T) {
	s := newTestServer(t)

	t.Run("list", func(t *testing.T) {
		w, env := s.do(http.MethodGet, "/v1/catalogs", "")
		require.Equal(t, http.StatusOK, w.Code)
		infos := decode[[]domain.CatalogInfo](t, env.Data)
		require.Len(t, infos, 5)
		assert.Equal(t, "opportunities", infos[0].Name)
	})

	t.Run("search with text and field", func(t *testing.T) {
		w, env := s.do(http.MethodGet, "/v1/catalogs/counselling?category=Medical&q=neet", "")
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[domain.SearchResult](t, env.Data)
		assert.Equal(t, 1, res.Matched)
		assert.Equal(t, "cns-2", res.Items[0].ID)
	})

	t.Run("flags as comma list", func(t *testing.T) {
		w, env := s.do(http.MethodGet, "/v1/catalogs/opportunities?flag=girlsOnly,minority", "")
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[domain.SearchResult](t, env.Data)
		require.Equal(t, 1, res.Matched)
		assert.Equal(t, "opp-7", res.Items[0].ID)
	})

	t.Run("unknown catalog", func(t *testing.T) {
		w, env := s.do(http.MethodGet, "/v1/catalogs/jobs", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Success)
	})
}

func TestProfileAndRecommendations(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(http.MethodGet, "/v1/profile", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env := s.do(http.MethodPut, "/v1/profile", `{"classLevel":"Class 12","gender":"Male"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "is required")

	body := `{"fullName":"Arjun","classLevel":"Class 10","gender":"Male","familyIncome":"₹ < 1 Lakh","category":"OBC","state":"Bihar","institution":"Government","ruralArea":true,"needBasedSupport":true}`
	w, _ = s.do(http.MethodPut, "/v1/profile", body)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = s.do(http.MethodGet, "/v1/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OBC", decode[domain.UserProfile](t, env.Data).Category)

	w, env = s.do(http.MethodGet, "/v1/recommendations", "")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[domain.SearchResult](t, env.Data)
	assert.True(t, res.HasProfile)

	tags := map[string]domain.Eligibility{}
	for _, item := range res.Items {
		tags[item.ID] = item.Eligibility
	}
	assert.Equal(t, domain.Eligible, tags["opp-4"])
	assert.Equal(t, domain.MayQualify, tags["opp-2"])
	assert.Equal(t, domain.Eligible, tags["opp-11"])
}

func TestSavedToggle(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodPost, "/v1/saved/ent-1/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Saved to tracker", env.Message)

	w, env = s.do(http.MethodGet, "/v1/saved", "")
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[domain.SavedItems](t, env.Data)
	assert.Equal(t, domain.SavedSet{"ent-1"}, items.IDs)
	require.Len(t, items.Items, 1)
	assert.True(t, items.Items[0].Saved)

	w, env = s.do(http.MethodPost, "/v1/saved/ent-1/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Removed from tracker", env.Message)

	w, _ = s.do(http.MethodPost, "/v1/saved/nope/toggle", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSavedIsolatedPerClient(t *testing.T) {
	s := newTestServer(t)
	w, _ := s.do(http.MethodPost, "/v1/saved/gov-2/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)

	other := &testServer{t: t, router: s.router}
	w, env := other.do(http.MethodGet, "/v1/saved", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[domain.SavedItems](t, env.Data).IDs)
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodGet, "/v1/auth/me", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Guest", env.Message)

	w, env = s.do(http.MethodPost, "/v1/auth/login", `{"email":"g@gmail.com","password":"123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Password must be at least 6 characters", env.Message)

	w, env = s.do(http.MethodPost, "/v1/auth/login", `{"email":"g@gmail.com","password":"wrong-pass"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", env.Message)

	w, env = s.do(http.MethodPost, "/v1/auth/login", `{"email":"g@gmail.com","password":"131204"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.AuthMarker{Email: "g@gmail.com", IsAuthenticated: true}, decode[domain.AuthMarker](t, env.Data))

	w, env = s.do(http.MethodGet, "/v1/auth/me", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Authenticated", env.Message)

	w, _ = s.do(http.MethodPost, "/v1/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)

	_, env = s.do(http.MethodGet, "/v1/auth/me", "")
	assert.Equal(t, "Guest", env.Message)
}
