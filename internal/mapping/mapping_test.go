package mapping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Enjoy-Consult/restopro-site-web/internal/airtable"
)

func TestTags(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"comma string", "a, b,c", []string{"a", "b", "c"}},
		{"single value string", "haccp", []string{"haccp"}},
		{"native list", []any{"a", "b"}, []string{"a", "b"}},
		{"string slice", []string{"a", "b"}, []string{"a", "b"}},
		{"absent", nil, []string{}},
		{"empty string", "", []string{}},
		{"non-string value", 42.0, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tags(tt.in))
		})
	}
}

func TestArticle_PublishedDefault(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want bool
	}{
		{"absent", map[string]any{}, true},
		{"explicit true", map[string]any{"published": true}, true},
		{"explicit false", map[string]any{"published": false}, false},
		// Only a real boolean false unpublishes; loose falsy values keep
		// the default.
		{"string false", map[string]any{"published": "false"}, true},
		{"zero number", map[string]any{"published": 0.0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Article(airtable.Record{ID: "rec1", Fields: tt.raw})
			assert.Equal(t, tt.want, a.Published)
		})
	}
}

func TestArticle_Defaults(t *testing.T) {
	created := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	a := Article(airtable.Record{ID: "recA", CreatedTime: created, Fields: map[string]any{}})

	assert.Equal(t, "recA", a.ID)
	assert.Empty(t, a.Title)
	assert.Empty(t, a.Slug)
	assert.Equal(t, []string{}, a.Tags)
	assert.True(t, a.Published)
	assert.Equal(t, 5, a.ReadingTime)
	assert.Equal(t, created, a.CreatedDate)
	assert.Equal(t, created, a.UpdatedDate, "updated_date falls back to createdTime")
}

func TestArticle_FullRecord(t *testing.T) {
	created := time.Date(2025, 1, 2, 10, 30, 0, 0, time.UTC)
	a := Article(airtable.Record{
		ID:          "recB",
		CreatedTime: created,
		Fields: map[string]any{
			"title":           "Contrôle DDPP: les points vérifiés",
			"slug":            "controle-ddpp-points-verifies",
			"excerpt":         "Ce que l'inspecteur regarde en premier.",
			"content":         "# Le jour J\n...",
			"featured_image":  "https://example.com/img.jpg",
			"category":        "reglementation",
			"tags":            "ddpp, hygiène,contrôle",
			"published":       true,
			"seo_title":       "Contrôle DDPP",
			"seo_description": "Préparer un contrôle sanitaire.",
			"reading_time":    8.0,
			"updated_date":    "2025-02-01",
		},
	})

	assert.Equal(t, "controle-ddpp-points-verifies", a.Slug)
	assert.Equal(t, []string{"ddpp", "hygiène", "contrôle"}, a.Tags)
	assert.Equal(t, 8, a.ReadingTime)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), a.UpdatedDate)
}

func TestArticle_ReadingTimeNonPositive(t *testing.T) {
	a := Article(airtable.Record{Fields: map[string]any{"reading_time": 0.0}})
	assert.Equal(t, 5, a.ReadingTime)
}

func TestTestimonial_Defaults(t *testing.T) {
	created := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	tm := Testimonial(airtable.Record{ID: "recT", CreatedTime: created, Fields: map[string]any{
		"author_name": "Marie Dupont",
	}})

	require.Equal(t, "recT", tm.ID)
	assert.Equal(t, "Marie Dupont", tm.AuthorName)
	assert.Equal(t, 5, tm.Rating, "rating is never absent in output")
	assert.False(t, tm.IsFeatured)
	assert.Equal(t, created, tm.CreatedDate)
}

func TestTestimonial_RatingPassthrough(t *testing.T) {
	tm := Testimonial(airtable.Record{Fields: map[string]any{"rating": 3.0}})
	assert.Equal(t, 3, tm.Rating)
}
