package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"edu-finder-backend/internal/catalog"
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/internal/filter"
	"edu-finder-backend/internal/repository/memory"
	"edu-finder-backend/internal/usecase"
	"edu-finder-backend/pkg/apperror"
	"edu-finder-backend/pkg/auth"
	"edu-finder-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockSlotStore struct {
	mock.Mock
}

func (m *MockSlotStore) Get(ctx context.Context, clientID, slot string) ([]byte, error) {
	args := m.Called(ctx, clientID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockSlotStore) Put(ctx context.Context, clientID, slot string, value []byte) error {
	return m.Called(ctx, clientID, slot, value).Error(0)
}

func (m *MockSlotStore) Delete(ctx context.Context, clientID, slot string) error {
	return m.Called(ctx, clientID, slot).Error(0)
}

func (m *MockSlotStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

const client = "5f0c8f1e-3f7a-4b8e-9a53-2b1f6f2f9d11"

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v, domain.ProfileChoices())
	return v
}

func validProfile() *domain.UserProfile {
	return &domain.UserProfile{
		FullName:     "Priya Sharma",
		ClassLevel:   "Class 12",
		Gender:       "Female",
		FamilyIncome: "₹ 1-2.5 Lakh",
		Category:     "SC",
		State:        "Karnataka",
		Institution:  "Government",
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

type fixture struct {
	store    domain.SlotStore
	profiles domain.ProfileUsecase
	saved    domain.SavedUsecase
	catalogs domain.CatalogUsecase
}

func newFixture() fixture {
	store := memory.NewSlotStore()
	reg := catalog.NewRegistry()
	profiles := usecase.NewProfileUsecase(store, newValidator())
	saved := usecase.NewSavedUsecase(store, reg, profiles)
	return fixture{
		store:    store,
		profiles: profiles,
		saved:    saved,
		catalogs: usecase.NewCatalogUsecase(reg, profiles, saved),
	}
}

func TestProfileUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return nil for a client without profile", func(t *testing.T) {
		f := newFixture()
		p, err := f.profiles.GetProfile(ctx, client)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("Should store profile as flat JSON", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.profiles.SaveProfile(ctx, client, validProfile()))

		raw, err := f.store.Get(ctx, client, domain.SlotProfile)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"fullName": "Priya Sharma",
			"classLevel": "Class 12",
			"gender": "Female",
			"familyIncome": "₹ 1-2.5 Lakh",
			"category": "SC",
			"state": "Karnataka",
			"institution": "Government",
			"ruralArea": false,
			"needBasedSupport": false
		}`, string(raw))

		got, err := f.profiles.GetProfile(ctx, client)
		require.NoError(t, err)
		assert.Equal(t, validProfile(), got)
	})

	t.Run("Should fail if required fields are missing", func(t *testing.T) {
		f := newFixture()
		p := validProfile()
		p.State = ""
		err := f.profiles.SaveProfile(ctx, client, p)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Contains(t, err.Error(), "State")
	})

	t.Run("Should reject values outside the form choices", func(t *testing.T) {
		f := newFixture()
		p := validProfile()
		p.Category = "Unknown"
		err := f.profiles.SaveProfile(ctx, client, p)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Should reset malformed profile slot", func(t *testing.T) {
		store := new(MockSlotStore)
		store.On("Get", mock.Anything, client, domain.SlotProfile).Return([]byte(`{not json`), nil)
		store.On("Delete", mock.Anything, client, domain.SlotProfile).Return(nil)

		uc := usecase.NewProfileUsecase(store, newValidator())
		p, err := uc.GetProfile(ctx, client)
		assert.NoError(t, err)
		assert.Nil(t, p)
		store.AssertExpectations(t)
	})

	t.Run("Should surface storage failures", func(t *testing.T) {
		store := new(MockSlotStore)
		store.On("Get", mock.Anything, client, domain.SlotProfile).Return(nil, errors.New("connection refused"))

		uc := usecase.NewProfileUsecase(store, newValidator())
		_, err := uc.GetProfile(ctx, client)
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
	})
}

func TestSavedUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Should toggle twice back to the original set", func(t *testing.T) {
		f := newFixture()

		res, err := f.saved.ToggleSaved(ctx, client, "ent-2")
		require.NoError(t, err)
		assert.True(t, res.Saved)
		assert.Equal(t, domain.SavedSet{"ent-2"}, res.IDs)

		res, err = f.saved.ToggleSaved(ctx, client, "opp-3")
		require.NoError(t, err)
		assert.Equal(t, domain.SavedSet{"ent-2", "opp-3"}, res.IDs)

		res, err = f.saved.ToggleSaved(ctx, client, "ent-2")
		require.NoError(t, err)
		assert.False(t, res.Saved)
		assert.Equal(t, domain.SavedSet{"opp-3"}, res.IDs)

		raw, err := f.store.Get(ctx, client, domain.SlotSaved)
		require.NoError(t, err)
		assert.JSONEq(t, `["opp-3"]`, string(raw))
	})

	t.Run("Should reject unknown record", func(t *testing.T) {
		f := newFixture()
		_, err := f.saved.ToggleSaved(ctx, client, "opp-999")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("Should list saved items across catalogs", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.store.Put(ctx, client, domain.SlotSaved, []byte(`["news-2","gone","cns-3"]`)))

		items, err := f.saved.ListSavedItems(ctx, client)
		require.NoError(t, err)
		assert.Equal(t, domain.SavedSet{"news-2", "gone", "cns-3"}, items.IDs)
		require.Len(t, items.Items, 2)
		assert.Equal(t, catalog.NameNews, items.Items[0].Catalog)
		assert.Equal(t, catalog.NameCounselling, items.Items[1].Catalog)
		assert.True(t, items.Items[0].Saved)
	})

	t.Run("Should treat malformed saved slot as empty", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.store.Put(ctx, client, domain.SlotSaved, []byte(`{"opp-1":true}`)))

		saved, err := f.saved.GetSaved(ctx, client)
		require.NoError(t, err)
		assert.Empty(t, saved)

		_, err = f.store.Get(ctx, client, domain.SlotSaved)
		assert.ErrorIs(t, err, domain.ErrSlotEmpty)
	})
}

func TestCatalogUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Should list every catalog", func(t *testing.T) {
		f := newFixture()
		infos := f.catalogs.ListCatalogs(ctx)
		require.Len(t, infos, 5)
		assert.Equal(t, catalog.NameOpportunities, infos[0].Name)
	})

	t.Run("Should return NotFound for unknown catalog", func(t *testing.T) {
		f := newFixture()
		_, err := f.catalogs.Search(ctx, client, "jobs", filter.Query{})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("Should annotate saved flags", func(t *testing.T) {
		f := newFixture()
		_, err := f.saved.ToggleSaved(ctx, client, "ent-3")
		require.NoError(t, err)

		res, err := f.catalogs.Search(ctx, client, catalog.NameEntranceExams, filter.Query{Text: "clat"})
		require.NoError(t, err)
		require.Equal(t, 1, res.Matched)
		assert.Equal(t, 8, res.Total)
		assert.True(t, res.Items[0].Saved)
		assert.False(t, res.HasProfile)
	})

	t.Run("Should tag recommendations for the stored profile", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.profiles.SaveProfile(ctx, client, validProfile()))

		res, err := f.catalogs.Recommendations(ctx, client)
		require.NoError(t, err)
		assert.True(t, res.HasProfile)

		tags := map[string]domain.Eligibility{}
		for _, item := range res.Items {
			tags[item.ID] = item.Eligibility
		}
		assert.Equal(t, domain.Eligible, tags["opp-2"])
		assert.Equal(t, domain.MayQualify, tags["opp-4"])
		assert.Equal(t, domain.Eligible, tags["opp-3"])
		assert.Equal(t, domain.Eligible, tags["opp-10"])
		assert.Equal(t, domain.Eligible, tags["opp-12"])
		assert.Equal(t, domain.MayQualify, tags["opp-11"])
	})

	t.Run("Should mark everything may-qualify without profile", func(t *testing.T) {
		f := newFixture()
		res, err := f.catalogs.Recommendations(ctx, client)
		require.NoError(t, err)
		for _, item := range res.Items {
			assert.Equal(t, domain.MayQualify, item.Eligibility, item.ID)
		}
	})
}

func TestAuthUsecase(t *testing.T) {
	ctx := context.Background()
	authenticator, err := auth.NewMockAuthenticator("g@gmail.com", "131204", "")
	require.NoError(t, err)

	tests := []struct {
		name       string
		identifier string
		secret     string
		wantCode   int
		wantMsg    string
	}{
		{"empty email", "", "131204", http.StatusBadRequest, "Please fill in all fields"},
		{"empty password", "g@gmail.com", "", http.StatusBadRequest, "Please fill in all fields"},
		{"short password", "g@gmail.com", "12345", http.StatusBadRequest, "Password must be at least 6 characters"},
		{"wrong password", "g@gmail.com", "654321", http.StatusUnauthorized, "Invalid credentials"},
		{"wrong email", "x@gmail.com", "131204", http.StatusUnauthorized, "Invalid credentials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewSlotStore()
			uc := usecase.NewAuthUsecase(store, authenticator)

			_, err := uc.Login(ctx, client, tt.identifier, tt.secret)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, statusOf(t, err))
			assert.Equal(t, tt.wantMsg, err.Error())

			_, err = store.Get(ctx, client, domain.SlotUser)
			assert.ErrorIs(t, err, domain.ErrSlotEmpty)
		})
	}

	t.Run("Should write marker on success and clear it on logout", func(t *testing.T) {
		store := memory.NewSlotStore()
		uc := usecase.NewAuthUsecase(store, authenticator)

		marker, err := uc.Login(ctx, client, "g@gmail.com", "131204")
		require.NoError(t, err)
		assert.Equal(t, &domain.AuthMarker{Email: "g@gmail.com", IsAuthenticated: true}, marker)

		raw, err := store.Get(ctx, client, domain.SlotUser)
		require.NoError(t, err)
		assert.JSONEq(t, `{"email":"g@gmail.com","isAuthenticated":true}`, string(raw))

		me, err := uc.CurrentUser(ctx, client)
		require.NoError(t, err)
		assert.Equal(t, marker, me)

		require.NoError(t, uc.Logout(ctx, client))
		me, err = uc.CurrentUser(ctx, client)
		require.NoError(t, err)
		assert.Nil(t, me)
	})
}

func TestHealthUsecase(t *testing.T) {
	store := new(MockSlotStore)
	store.On("Ping", mock.Anything).Return(errors.New("down")).Once()
	store.On("Ping", mock.Anything).Return(nil).Once()

	uc := usecase.NewHealthUsecase(store, "redis")

	status, ok := uc.Check(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "degraded", status["status"])

	status, ok = uc.Check(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "redis", status["storage"])
	store.AssertExpectations(t)
}
