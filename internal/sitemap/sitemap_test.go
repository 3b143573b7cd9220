package sitemap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Enjoy-Consult/restopro-site-web/pkg/models"
)

var testNow = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func TestGenerate_StaticRoutes(t *testing.T) {
	body, err := Generate("https://restoclair.fr", DefaultStaticRoutes(), nil, testNow)
	require.NoError(t, err)

	out := string(body)
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>https://restoclair.fr/</loc>")
	assert.Contains(t, out, "<loc>https://restoclair.fr/Services</loc>")
	assert.Contains(t, out, "<loc>https://restoclair.fr/Blog</loc>")
	assert.Contains(t, out, "<priority>1.0</priority>")
	// static routes are stamped with the generation date
	assert.Contains(t, out, "<lastmod>2025-07-01</lastmod>")
}

func TestGenerate_ArticleEntries(t *testing.T) {
	articles := []models.Article{
		{
			Slug:        "controle ddpp été",
			CreatedDate: time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
			UpdatedDate: time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			Slug:        "sans-update",
			CreatedDate: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		},
	}
	body, err := Generate("https://restoclair.fr/", nil, articles, testNow)
	require.NoError(t, err)

	out := string(body)
	// slug is query-escaped
	assert.Contains(t, out, "<loc>https://restoclair.fr/BlogPost?slug=controle+ddpp+%C3%A9t%C3%A9</loc>")
	assert.Contains(t, out, "<lastmod>2025-02-01</lastmod>")
	// created date when no update date
	assert.Contains(t, out, "<lastmod>2025-03-04</lastmod>")
	assert.Contains(t, out, "<changefreq>monthly</changefreq>")
	assert.Contains(t, out, "<priority>0.7</priority>")
}

func TestGenerate_LastModFallsBackToNow(t *testing.T) {
	body, err := Generate("https://restoclair.fr", nil, []models.Article{{Slug: "neuf"}}, testNow)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<lastmod>2025-07-01</lastmod>")
}

func TestGenerate_Deterministic(t *testing.T) {
	articles := []models.Article{
		{Slug: "a", CreatedDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Slug: "b", CreatedDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	first, err := Generate("https://restoclair.fr", DefaultStaticRoutes(), articles, testNow)
	require.NoError(t, err)
	second, err := Generate("https://restoclair.fr", DefaultStaticRoutes(), articles, testNow)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same inputs and date must yield byte-identical output")
}
