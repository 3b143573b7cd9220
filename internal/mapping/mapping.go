// Package mapping translates between the Airtable schema (human-readable,
// French column names, loosely typed values) and the internal models. All
// functions here are pure and fail-soft: a sparse or malformed record maps
// to a fully defaulted entity, never to an error.
package mapping

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/Enjoy-Consult/restopro-site-web/internal/airtable"
	"github.com/Enjoy-Consult/restopro-site-web/pkg/models"
)

// Article maps a raw BlogPost record to the normalized article shape.
func Article(rec airtable.Record) models.Article {
	f := rec.Fields
	created := rec.CreatedTime
	updated := parseDate(str(f, "updated_date"))
	if updated.IsZero() {
		updated = created
	}

	return models.Article{
		ID:             rec.ID,
		Title:          str(f, "title"),
		Slug:           str(f, "slug"),
		Excerpt:        str(f, "excerpt"),
		Content:        str(f, "content"),
		FeaturedImage:  str(f, "featured_image"),
		Category:       str(f, "category"),
		Tags:           Tags(f["tags"]),
		Published:      published(f["published"]),
		SEOTitle:       str(f, "seo_title"),
		SEODescription: str(f, "seo_description"),
		ReadingTime:    positiveInt(f["reading_time"], 5),
		CreatedDate:    created,
		UpdatedDate:    updated,
	}
}

// Testimonial maps a raw Avis record to the normalized testimonial shape.
// Rating is never zero in the output: absent or non-positive values default
// to 5.
func Testimonial(rec airtable.Record) models.Testimonial {
	f := rec.Fields
	return models.Testimonial{
		ID:             rec.ID,
		AuthorName:     str(f, "author_name"),
		RestaurantName: str(f, "restaurant_name"),
		Location:       str(f, "location"),
		Content:        str(f, "content"),
		Rating:         positiveInt(f["rating"], 5),
		IsFeatured:     boolField(f["is_featured"]),
		CreatedDate:    rec.CreatedTime,
	}
}

// Tags normalizes the tags column, which Airtable may store either as a
// comma-separated string or as a native list. Strings are split on commas
// and each segment trimmed; lists pass through; anything else is empty.
func Tags(v any) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return []string{}
		}
		return lo.Map(strings.Split(t, ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		})
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

// published defaults to true: only an explicit JSON boolean false unpublishes
// an article. A "false" string or a 0 keeps the default, matching the
// loosest of the legacy backends.
func published(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

func boolField(v any) bool {
	b, _ := v.(bool)
	return b
}

func str(f map[string]any, key string) string {
	s, _ := f[key].(string)
	return s
}

// positiveInt coerces a numeric field, substituting def when the value is
// absent, non-numeric or not strictly positive.
func positiveInt(v any, def int) int {
	switch n := v.(type) {
	case float64:
		if n > 0 {
			return int(n)
		}
	case int:
		if n > 0 {
			return n
		}
	}
	return def
}

// parseDate accepts the two timestamp shapes Airtable emits for date
// columns; a zero time means "absent or unparseable".
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
