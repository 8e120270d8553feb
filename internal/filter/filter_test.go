package filter_test

import (
	"testing"

	"edu-finder-backend/internal/filter"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID       string
	Title    string
	Body     string
	Category string
	State    string
	Tags     []string
}

var spec = filter.Spec[record]{
	Text: []func(record) []string{
		filter.One(func(r record) string { return r.Title }),
		filter.One(func(r record) string { return r.Body }),
		func(r record) []string { return r.Tags },
	},
	Fields: map[string]filter.Field[record]{
		"category": {Get: func(r record) string { return r.Category }, Any: "All"},
		"state":    {Get: func(r record) string { return r.State }, Any: "All States", Universal: "All States"},
	},
	Flags: map[string]filter.Predicate[record]{
		"girlsOnly": filter.HasAnyTag(func(r record) []string { return r.Tags }, "Girls"),
		"scSt":      filter.HasAnyTag(func(r record) []string { return r.Tags }, "SC", "ST"),
		"examsOnly": filter.Equals(func(r record) string { return r.Category }, "Exam"),
	},
}

func fakeCatalog(f *gofakeit.Faker, n int) []record {
	categories := []string{"Engineering", "Medical", "Law", "Exam"}
	states := []string{"All States", "Karnataka", "Tamil Nadu", "Delhi"}
	tags := []string{"Girls", "SC", "ST", "Minority", "Merit"}

	out := make([]record, n)
	for i := range out {
		out[i] = record{
			ID:       f.UUID(),
			Title:    f.Sentence(4),
			Body:     f.Paragraph(1, 2, 8, " "),
			Category: categories[f.IntRange(0, len(categories)-1)],
			State:    states[f.IntRange(0, len(states)-1)],
			Tags:     []string{tags[f.IntRange(0, len(tags)-1)], tags[f.IntRange(0, len(tags)-1)]},
		}
	}
	return out
}

func randomQuery(f *gofakeit.Faker) filter.Query {
	return filter.Query{
		Text: f.RandomString([]string{"", "a", "the", "eng", "xyz"}),
		Fields: map[string]string{
			"category": f.RandomString([]string{"All", "Engineering", "Medical", ""}),
			"state":    f.RandomString([]string{"All States", "Karnataka", "Delhi"}),
		},
		Flags: map[string]bool{
			"girlsOnly": f.Bool(),
			"scSt":      f.Bool(),
		},
	}
}

func TestApply_EmptyQueryIsIdentity(t *testing.T) {
	f := gofakeit.New(42)
	for i := 0; i < 20; i++ {
		catalog := fakeCatalog(f, f.IntRange(0, 30))
		got := spec.Apply(catalog, filter.Query{})
		if diff := cmp.Diff(catalog, got); diff != "" {
			t.Fatalf("empty query changed the catalog (-want +got):\n%s", diff)
		}
	}
}

func TestApply_SentinelsOnlyIsIdentity(t *testing.T) {
	catalog := fakeCatalog(gofakeit.New(7), 25)
	q := filter.Query{
		Fields: map[string]string{"category": "All", "state": "All States"},
		Flags:  map[string]bool{"girlsOnly": false, "scSt": false},
	}
	assert.Empty(t, cmp.Diff(catalog, spec.Apply(catalog, q)))
	assert.False(t, spec.Active(q))
}

func TestApply_IdempotentAndPure(t *testing.T) {
	f := gofakeit.New(1234)
	for i := 0; i < 50; i++ {
		catalog := fakeCatalog(f, 40)
		before := make([]record, len(catalog))
		copy(before, catalog)

		q := randomQuery(f)
		once := spec.Apply(catalog, q)
		twice := spec.Apply(once, q)

		require.Empty(t, cmp.Diff(once, twice), "filter must be idempotent for %+v", q)
		require.Empty(t, cmp.Diff(before, catalog), "filter must not mutate its input")
		require.Empty(t, cmp.Diff(once, spec.Apply(catalog, q)), "same inputs must give same output")
	}
}

func TestApply_PreservesOrder(t *testing.T) {
	catalog := fakeCatalog(gofakeit.New(99), 60)
	got := spec.Apply(catalog, filter.Query{Fields: map[string]string{"state": "Karnataka"}})

	j := 0
	for _, r := range got {
		for j < len(catalog) && catalog[j].ID != r.ID {
			j++
		}
		require.Less(t, j, len(catalog), "result is not a subsequence of the catalog")
		j++
	}
}

func TestApply_Scenarios(t *testing.T) {
	t.Run("category mismatch yields empty result", func(t *testing.T) {
		catalog := []record{{ID: "1", Category: "Engineering"}}
		got := spec.Apply(catalog, filter.Query{Fields: map[string]string{"category": "Medical"}})
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("All States record matches any state", func(t *testing.T) {
		catalog := []record{
			{ID: "1", State: "All States"},
			{ID: "2", State: "Tamil Nadu"},
			{ID: "3", State: "Karnataka"},
		}
		got := spec.Apply(catalog, filter.Query{Fields: map[string]string{"state": "Karnataka"}})
		assert.Equal(t, []string{"1", "3"}, ids(got))
	})

	t.Run("search is a case-insensitive substring match", func(t *testing.T) {
		catalog := []record{{ID: "1", Title: "NEET 2024"}, {ID: "2", Title: "JEE Main 2024"}}
		got := spec.Apply(catalog, filter.Query{Text: "neet"})
		assert.Equal(t, []string{"1"}, ids(got))
	})

	t.Run("search covers list fields", func(t *testing.T) {
		catalog := []record{{ID: "1", Title: "x", Tags: []string{"Physics"}}, {ID: "2", Title: "y"}}
		got := spec.Apply(catalog, filter.Query{Text: "PHYS"})
		assert.Equal(t, []string{"1"}, ids(got))
	})

	t.Run("flags require one of their tags", func(t *testing.T) {
		catalog := []record{
			{ID: "1", Tags: []string{"SC", "Pre-matric", "Girls"}},
			{ID: "2", Tags: []string{"ST"}},
			{ID: "3", Tags: []string{"Minority", "Girls"}},
			{ID: "4", Tags: []string{"Merit"}},
		}
		assert.Equal(t, []string{"1", "2"}, ids(spec.Apply(catalog, filter.Query{Flags: map[string]bool{"scSt": true}})))
		assert.Equal(t, []string{"1", "3"}, ids(spec.Apply(catalog, filter.Query{Flags: map[string]bool{"girlsOnly": true}})))
		assert.Equal(t, []string{"1"}, ids(spec.Apply(catalog, filter.Query{Flags: map[string]bool{"girlsOnly": true, "scSt": true}})))
	})

	t.Run("predicates are ANDed", func(t *testing.T) {
		catalog := []record{
			{ID: "1", Title: "Girls scholarship", Category: "Exam", State: "Delhi", Tags: []string{"Girls"}},
			{ID: "2", Title: "Girls scholarship", Category: "Law", State: "Delhi", Tags: []string{"Girls"}},
			{ID: "3", Title: "Other", Category: "Exam", State: "Delhi", Tags: []string{"Girls"}},
		}
		q := filter.Query{
			Text:   "scholarship",
			Fields: map[string]string{"state": "Delhi"},
			Flags:  map[string]bool{"examsOnly": true},
		}
		assert.Equal(t, []string{"1"}, ids(spec.Apply(catalog, q)))
	})

	t.Run("unknown names are ignored", func(t *testing.T) {
		catalog := []record{{ID: "1"}, {ID: "2"}}
		q := filter.Query{Fields: map[string]string{"colour": "red"}, Flags: map[string]bool{"ruralOnly": true}}
		assert.Equal(t, []string{"1", "2"}, ids(spec.Apply(catalog, q)))
		assert.False(t, spec.Active(q))
	})

	t.Run("nil catalog yields empty result", func(t *testing.T) {
		got := spec.Apply(nil, filter.Query{Text: "anything"})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestEmptyTextNeverExcludes(t *testing.T) {
	f := gofakeit.New(5)
	catalog := fakeCatalog(f, 30)
	keep := spec.Compile(filter.Query{Text: ""})
	for _, r := range catalog {
		assert.True(t, keep(r))
	}
}

func ids(rs []record) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}
