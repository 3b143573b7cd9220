// Package sitemap derives the sitemap.xml document from the site's static
// pages and its published blog articles. The document is recomputed on
// every call and is byte-identical for identical inputs and date.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Enjoy-Consult/restopro-site-web/pkg/models"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Change frequencies used by the site's pages.
const (
	Daily   = "daily"
	Weekly  = "weekly"
	Monthly = "monthly"
)

// Entry is one sitemap URL before rendering. A zero LastMod means "stamp
// with the generation date".
type Entry struct {
	Path       string
	LastMod    time.Time
	ChangeFreq string
	Priority   string
}

// DefaultStaticRoutes lists the site's fixed pages with their crawl hints.
func DefaultStaticRoutes() []Entry {
	return []Entry{
		{Path: "/", ChangeFreq: Weekly, Priority: "1.0"},
		{Path: "/Services", ChangeFreq: Monthly, Priority: "0.9"},
		{Path: "/Blog", ChangeFreq: Daily, Priority: "0.9"},
		{Path: "/About", ChangeFreq: Monthly, Priority: "0.8"},
		{Path: "/Contact", ChangeFreq: Monthly, Priority: "0.8"},
	}
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Generate renders the sitemap for the given static routes and articles.
// Callers are expected to pass published articles only. now supplies the
// date used when an entry has no modification time of its own.
func Generate(baseURL string, static []Entry, articles []models.Article, now time.Time) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")
	today := now.Format("2006-01-02")

	set := urlSet{Xmlns: xmlns}
	for _, e := range static {
		lastMod := today
		if !e.LastMod.IsZero() {
			lastMod = e.LastMod.Format("2006-01-02")
		}
		set.URLs = append(set.URLs, urlEntry{
			Loc:        base + e.Path,
			LastMod:    lastMod,
			ChangeFreq: e.ChangeFreq,
			Priority:   e.Priority,
		})
	}

	for _, a := range articles {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        fmt.Sprintf("%s/BlogPost?slug=%s", base, url.QueryEscape(a.Slug)),
			LastMod:    articleLastMod(a, today),
			ChangeFreq: Monthly,
			Priority:   "0.7",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("sitemap: marshal: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// articleLastMod picks updated date, then created date, then today.
func articleLastMod(a models.Article, today string) string {
	if !a.UpdatedDate.IsZero() {
		return a.UpdatedDate.Format("2006-01-02")
	}
	if !a.CreatedDate.IsZero() {
		return a.CreatedDate.Format("2006-01-02")
	}
	return today
}
