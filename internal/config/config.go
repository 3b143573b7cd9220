// Package config loads the process configuration from environment
// variables and an optional HCL file. The Airtable credential and base ID
// are required; the service refuses to start without them.
package config

import (
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
)

type Config struct {
	ListenAddr  string        `hcl:"listen_addr" env:"LISTEN_ADDR" default:":8080"`
	HTTPTimeout time.Duration `hcl:"http_timeout" env:"HTTP_TIMEOUT" default:"10s"`
	SiteBaseURL string        `hcl:"site_base_url" env:"SITE_BASE_URL" default:"https://restoclair.fr"`

	AirtableToken  string `hcl:"airtable_token" env:"AIRTABLE_TOKEN" required:"true"`
	AirtableBaseID string `hcl:"airtable_base_id" env:"AIRTABLE_BASE_ID" required:"true"`

	ArticlesTable     string `hcl:"articles_table" env:"ARTICLES_TABLE" default:"BlogPost"`
	ArticlesView      string `hcl:"articles_view" env:"ARTICLES_VIEW" default:"Grid view"`
	TestimonialsTable string `hcl:"testimonials_table" env:"TESTIMONIALS_TABLE" default:"Avis Site Web"`
	LeadsTable        string `hcl:"leads_table" env:"LEADS_TABLE" default:"Base de donnée client"`

	AllowedOrigins []string `hcl:"allowed_origins" env:"ALLOWED_ORIGINS" default:"https://restoclair.fr,https://www.restoclair.fr"`
}

// Load reads the configuration; a missing required value is returned as an
// error so main can fail fast instead of limping along unauthenticated.
func Load() (Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "RESTOPRO",
		Files:     []string{"./config.hcl", "./config.local.hcl"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".hcl": aconfighcl.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
