package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"eduportal/internal/auth"
	"eduportal/internal/cache"
	"eduportal/internal/config"
	"eduportal/internal/db"
	"eduportal/internal/model"
	"eduportal/internal/repository"
	"eduportal/internal/service"
)

// SeedFile is the content seed document: categories with their materials and videos.
type SeedFile struct {
	Categories []SeedCategory `json:"categories"`
}

// SeedCategory is one category of the seed document.
type SeedCategory struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Materials   []SeedMaterial `json:"materials"`
	Videos      []SeedVideo    `json:"videos"`
}

// SeedMaterial is one material of a seed category.
type SeedMaterial struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Status  string `json:"status"`
}

// SeedVideo is one video of a seed category.
type SeedVideo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
	Duration    int    `json:"duration"`
	Status      string `json:"status"`
}

type seedStats struct {
	categoriesCreated int
	categoriesReused  int
	itemsCreated      int
	itemsSkipped      int
}

func main() {
	initAdmin := flag.Bool("init", false, "create the default admin from ADMIN_EMAIL/ADMIN_PASSWORD if no admin exists")
	reset := flag.Bool("reset", false, "reset the password of the admin given by -email")
	email := flag.String("email", "", "admin email for -reset")
	password := flag.String("password", "", "new password for -reset")
	content := flag.String("content", "", "path or http(s) URL of a JSON content seed document")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if !*initAdmin && !*reset && *content == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()

	gormDB, err := db.Open(db.Options{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
		PoolSize: 2,
	})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info("Connected to database, schema up to date")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	adminService := service.NewAdminService(
		repository.NewAdminRepository(gormDB),
		auth.NewJWTService(cfg.JWTSecret),
		cfg.AdminEmail,
		cfg.AdminPassword,
	)

	if *initAdmin {
		result, err := adminService.Initialize(ctx)
		if err != nil {
			logger.Fatalf("Failed to initialize admin: %v", err)
		}
		if result.Created {
			logger.WithField("email", result.Email).Info("Default admin created; change the temporary password after first login")
		} else {
			logger.WithField("count", result.Count).Info("Admin already exists, nothing to do")
		}
	}

	if *reset {
		if err := adminService.ResetPassword(ctx, *email, *password); err != nil {
			logger.Fatalf("Failed to reset password for %q: %v", *email, err)
		}
		logger.WithField("email", *email).Info("Password reset")
	}

	if *content != "" {
		doc, err := loadSeedFile(ctx, *content)
		if err != nil {
			logger.Fatalf("Failed to load content seed: %v", err)
		}
		// Invalidates the server's read cache when REDIS_ADDR is shared.
		cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer cacheClient.Close()
		catalog := service.NewCatalogService(
			repository.NewCategoryRepository(gormDB),
			repository.NewMaterialRepository(gormDB),
			repository.NewVideoRepository(gormDB),
			cacheClient,
		)
		stats, err := seedContent(ctx, catalog, doc)
		if err != nil {
			logger.Fatalf("Failed to seed content: %v", err)
		}
		logger.WithFields(logrus.Fields{
			"categories_created": stats.categoriesCreated,
			"categories_reused":  stats.categoriesReused,
			"items_created":      stats.itemsCreated,
			"items_skipped":      stats.itemsSkipped,
		}).Info("Seed completed successfully")
	}
}

// loadSeedFile reads the seed document from a local path or an http(s) URL.
func loadSeedFile(ctx context.Context, source string) (*SeedFile, error) {
	var body []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err = fetch(ctx, source)
	} else {
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var doc SeedFile
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &doc, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed source returned status code: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// seedContent creates missing categories and the materials and videos whose
// titles are not already present in their category.
func seedContent(ctx context.Context, catalog service.CatalogService, doc *SeedFile) (seedStats, error) {
	var stats seedStats

	categories, err := catalog.ListCategories(ctx)
	if err != nil {
		return stats, err
	}
	byName := make(map[string]uint, len(categories))
	for _, c := range categories {
		byName[strings.ToLower(c.Name)] = c.ID
	}

	materials, err := catalog.ListMaterials(ctx)
	if err != nil {
		return stats, err
	}
	videos, err := catalog.ListVideos(ctx)
	if err != nil {
		return stats, err
	}
	existing := make(map[string]bool, len(materials)+len(videos))
	for _, m := range materials {
		existing[itemKey("material", m.CategoryID, m.Title)] = true
	}
	for _, v := range videos {
		existing[itemKey("video", v.CategoryID, v.Title)] = true
	}

	for _, sc := range doc.Categories {
		id, found := byName[strings.ToLower(sc.Name)]
		if found {
			stats.categoriesReused++
		} else {
			category := &model.Category{Name: sc.Name, Description: optional(sc.Description)}
			if err := catalog.CreateCategory(ctx, category); err != nil {
				return stats, fmt.Errorf("error creating category %q: %w", sc.Name, err)
			}
			id = category.ID
			byName[strings.ToLower(sc.Name)] = id
			stats.categoriesCreated++
		}
		categoryID := id

		for _, sm := range sc.Materials {
			if existing[itemKey("material", &categoryID, sm.Title)] {
				stats.itemsSkipped++
				continue
			}
			material := &model.Material{
				Title:      sm.Title,
				Content:    sm.Content,
				Author:     optional(sm.Author),
				CategoryID: &categoryID,
				Status:     model.ContentStatus(sm.Status),
			}
			if err := catalog.CreateMaterial(ctx, material); err != nil {
				return stats, fmt.Errorf("error creating material %q: %w", sm.Title, err)
			}
			stats.itemsCreated++
		}

		for _, sv := range sc.Videos {
			if existing[itemKey("video", &categoryID, sv.Title)] {
				stats.itemsSkipped++
				continue
			}
			video := &model.Video{
				Title:       sv.Title,
				Description: optional(sv.Description),
				VideoURL:    sv.VideoURL,
				Duration:    sv.Duration,
				CategoryID:  &categoryID,
				Status:      model.ContentStatus(sv.Status),
			}
			if err := catalog.CreateVideo(ctx, video); err != nil {
				return stats, fmt.Errorf("error creating video %q: %w", sv.Title, err)
			}
			stats.itemsCreated++
		}
	}
	return stats, nil
}

func itemKey(kind string, categoryID *uint, title string) string {
	var id uint
	if categoryID != nil {
		id = *categoryID
	}
	return fmt.Sprintf("%s/%d/%s", kind, id, strings.ToLower(title))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
