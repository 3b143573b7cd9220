package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Enjoy-Consult/restopro-site-web/internal/airtable"
	"github.com/Enjoy-Consult/restopro-site-web/internal/api"
	"github.com/Enjoy-Consult/restopro-site-web/internal/config"
	"github.com/Enjoy-Consult/restopro-site-web/internal/contact"
	"github.com/Enjoy-Consult/restopro-site-web/internal/content"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client, err := airtable.NewClient(airtable.Config{
		Token:   cfg.AirtableToken,
		BaseID:  cfg.AirtableBaseID,
		Timeout: cfg.HTTPTimeout,
	})
	if err != nil {
		log.Fatalf("airtable client: %v", err)
	}

	contentSvc := content.NewService(client, content.Tables{
		Articles:     cfg.ArticlesTable,
		ArticlesView: cfg.ArticlesView,
		Testimonials: cfg.TestimonialsTable,
	})
	contactSvc := contact.NewService(client, cfg.LeadsTable, time.Now)

	handler := api.NewHandler(contentSvc, contactSvc, cfg.SiteBaseURL, time.Now)

	router := gin.Default()
	router.Use(api.RequestID(), api.CORS(cfg.AllowedOrigins))
	api.RegisterRoutes(router, handler)

	log.Printf("[INFO] listening on %s", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
