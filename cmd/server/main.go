// Read API over the persisted scrape document, for the dashboard.
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"go-jobpulse-automation/internal/config"
	"go-jobpulse-automation/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "JobPulse API is running!",
			"status":  "healthy",
		})
	})

	r.GET("/api/v1/jobdata", func(c *gin.Context) {
		doc, err := store.LoadDocument(cfg.OutputPath)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no scrape document available yet"})
			return
		}
		c.JSON(http.StatusOK, doc)
	})

	log.Printf("Server listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
