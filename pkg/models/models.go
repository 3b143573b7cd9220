package models

import "time"

// Article is the normalized blog article shape served to the site.
// Raw Airtable records are mapped into this structure; every field has a
// defined default so a sparse record never breaks a page.
type Article struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Excerpt        string    `json:"excerpt"`
	Content        string    `json:"content"`
	FeaturedImage  string    `json:"featured_image"`
	Category       string    `json:"category"`
	Tags           []string  `json:"tags"`
	Published      bool      `json:"published"`
	SEOTitle       string    `json:"seo_title"`
	SEODescription string    `json:"seo_description"`
	ReadingTime    int       `json:"reading_time"`
	CreatedDate    time.Time `json:"created_date"`
	UpdatedDate    time.Time `json:"updated_date"`
}

// Testimonial is a normalized customer review.
type Testimonial struct {
	ID             string    `json:"id"`
	AuthorName     string    `json:"author_name"`
	RestaurantName string    `json:"restaurant_name"`
	Location       string    `json:"location"`
	Content        string    `json:"content"`
	Rating         int       `json:"rating"`
	IsFeatured     bool      `json:"is_featured"`
	CreatedDate    time.Time `json:"created_date"`
}

// ContactRequest carries one contact form submission. It is never persisted
// locally; it exists only long enough to be formatted and forwarded to the
// leads table. All fields are optional here, required-field enforcement
// belongs to the presentation layer.
type ContactRequest struct {
	RestaurantName string `json:"restaurant_name"`
	ContactName    string `json:"contact_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ServiceType    string `json:"service_type"`
	Urgency        string `json:"urgency"`
	Message        string `json:"message"`
}
