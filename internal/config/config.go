package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kerimovok/go-pkg-utils/config"
	"gopkg.in/yaml.v3"
)

// ContentStorageConfig holds settings for the on-disk image store
type ContentStorageConfig struct {
	Dir        string `yaml:"dir"`
	PublicPath string `yaml:"public_path"`
}

// DownloadConfig holds settings for fetching remote images
type DownloadConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// GalleryConfig holds the complete gallery configuration
type GalleryConfig struct {
	Storage  ContentStorageConfig `yaml:"storage"`
	Download DownloadConfig       `yaml:"download"`
}

// MainConfig holds the root configuration
type MainConfig struct {
	Gallery GalleryConfig `yaml:"gallery"`
}

var (
	Config MainConfig
)

// LoadConfig loads the configuration from the specified path
func LoadConfig() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if config.GetEnv("GO_ENV") != "production" {
			log.Println("Warning: Failed to load .env file")
		}
	}

	// Read config file
	data, err := os.ReadFile("config/gallery.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var parsed MainConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	parsed.Gallery.applyDefaults()

	// Store config globally
	Config = parsed

	log.Println("Gallery configuration loaded successfully from config/gallery.yaml")
	return nil
}

func (c *GalleryConfig) applyDefaults() {
	if c.Storage.Dir == "" {
		c.Storage.Dir = "public/logos"
	}
	if c.Storage.PublicPath == "" {
		c.Storage.PublicPath = "/logos"
	}
	if c.Download.TimeoutSeconds <= 0 {
		c.Download.TimeoutSeconds = 15
	}
}

// GetConfig returns the current configuration
func GetConfig() MainConfig {
	return Config
}
