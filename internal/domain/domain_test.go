package domain_test

import (
	"encoding/json"
	"testing"

	"edu-finder-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedSetToggle(t *testing.T) {
	t.Run("adds when absent and removes when present", func(t *testing.T) {
		s := domain.SavedSet{"opp-1", "ent-2"}

		added, ok := s.Toggle("gov-3")
		assert.True(t, ok)
		assert.Equal(t, domain.SavedSet{"opp-1", "ent-2", "gov-3"}, added)

		removed, ok := added.Toggle("opp-1")
		assert.False(t, ok)
		assert.Equal(t, domain.SavedSet{"ent-2", "gov-3"}, removed)
	})

	t.Run("is its own inverse", func(t *testing.T) {
		for _, s := range []domain.SavedSet{nil, {}, {"a"}, {"a", "b", "c"}} {
			for _, id := range []string{"a", "b", "z"} {
				once, _ := s.Toggle(id)
				twice, _ := once.Toggle(id)
				assert.ElementsMatch(t, s, twice, "toggle %q twice on %v", id, s)
				assert.NotEqual(t, s.Contains(id), once.Contains(id))
			}
		}
	})

	t.Run("never modifies the receiver", func(t *testing.T) {
		s := domain.SavedSet{"a", "b"}
		_, _ = s.Toggle("a")
		_, _ = s.Toggle("c")
		assert.Equal(t, domain.SavedSet{"a", "b"}, s)
	})
}

func TestDateJSON(t *testing.T) {
	d := domain.MustDate("2024-02-15")
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-15"`, string(b))

	var back domain.Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, d.Equal(back.Time))

	assert.Error(t, json.Unmarshal([]byte(`"15/02/2024"`), &back))
}

func TestProfileAttribute(t *testing.T) {
	p := &domain.UserProfile{State: "Kerala", RuralArea: true}

	v, ok := p.Attribute(domain.AttrState)
	assert.True(t, ok)
	assert.Equal(t, "Kerala", v)

	v, ok = p.Attribute(domain.AttrRuralArea)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	_, ok = p.Attribute("shoeSize")
	assert.False(t, ok)

	var none *domain.UserProfile
	_, ok = none.Attribute(domain.AttrState)
	assert.False(t, ok)
}
