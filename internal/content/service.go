// Package content exposes the site's read operations: normalized blog
// articles and testimonials sourced from the remote Airtable base.
package content

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/Enjoy-Consult/restopro-site-web/internal/airtable"
	"github.com/Enjoy-Consult/restopro-site-web/internal/mapping"
	"github.com/Enjoy-Consult/restopro-site-web/pkg/models"
)

// ErrNotFound reports a slug lookup with no matching published article.
// It is a normal outcome, not a transport failure.
var ErrNotFound = errors.New("content: article not found")

// RecordFetcher is the slice of the Airtable client the service reads
// through.
type RecordFetcher interface {
	FetchRecords(ctx context.Context, table string, opts airtable.QueryOptions) ([]airtable.Record, error)
}

// Tables names the remote tables and the articles view to read from.
type Tables struct {
	Articles     string
	ArticlesView string
	Testimonials string
}

type Service struct {
	store  RecordFetcher
	tables Tables
}

func NewService(store RecordFetcher, tables Tables) *Service {
	return &Service{store: store, tables: tables}
}

// ArticleFilter narrows ListArticles. The zero value returns published
// articles only, which is what every page of the site wants.
type ArticleFilter struct {
	IncludeUnpublished bool
}

// ListArticles fetches and normalizes the blog table, drops unpublished
// articles unless asked otherwise, and orders by creation date descending.
func (s *Service) ListArticles(ctx context.Context, filter ArticleFilter) ([]models.Article, error) {
	records, err := s.store.FetchRecords(ctx, s.tables.Articles, airtable.QueryOptions{View: s.tables.ArticlesView})
	if err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}

	articles := lo.Map(records, func(rec airtable.Record, _ int) models.Article {
		return mapping.Article(rec)
	})
	if !filter.IncludeUnpublished {
		articles = lo.Filter(articles, func(a models.Article, _ int) bool {
			return a.Published
		})
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].CreatedDate.After(articles[j].CreatedDate)
	})
	return articles, nil
}

// GetArticleBySlug finds one published article by its slug. A missing slug
// yields ErrNotFound.
func (s *Service) GetArticleBySlug(ctx context.Context, slug string) (models.Article, error) {
	articles, err := s.ListArticles(ctx, ArticleFilter{})
	if err != nil {
		return models.Article{}, err
	}
	for _, a := range articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return models.Article{}, ErrNotFound
}

// ListTestimonials returns the full normalized testimonial set in remote
// record order.
func (s *Service) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	records, err := s.store.FetchRecords(ctx, s.tables.Testimonials, airtable.QueryOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetch testimonials: %w", err)
	}
	return lo.Map(records, func(rec airtable.Record, _ int) models.Testimonial {
		return mapping.Testimonial(rec)
	}), nil
}

// ListFeaturedTestimonials keeps only featured testimonials and truncates
// to limit. A non-positive limit disables truncation.
func (s *Service) ListFeaturedTestimonials(ctx context.Context, limit int) ([]models.Testimonial, error) {
	all, err := s.ListTestimonials(ctx)
	if err != nil {
		return nil, err
	}
	featured := lo.Filter(all, func(t models.Testimonial, _ int) bool {
		return t.IsFeatured
	})
	if limit > 0 && len(featured) > limit {
		featured = featured[:limit]
	}
	return featured, nil
}
