package main

import (
	"encoding/json"
	"log"

	"github.com/jiftek/website/internal/config"
	"github.com/jiftek/website/internal/db"
	"github.com/jiftek/website/internal/service"
)

// Seeds roles, permissions, default accounts, the standard pages and sample
// content. Safe to run repeatedly.
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	roles := service.NewRoleService(db.DB)

	contentPerms := []string{db.PermContentManage, db.PermPageManage}
	allPerms := append([]string{db.PermUserManage}, contentPerms...)
	for _, perm := range allPerms {
		if _, err := roles.EnsurePermission(perm); err != nil {
			log.Fatalf("failed to ensure permission %s: %v", perm, err)
		}
	}

	if _, err := roles.EnsureRole(db.RoleAdmin, "Full access to content and accounts"); err != nil {
		log.Fatalf("failed to ensure admin role: %v", err)
	}
	if err := roles.SyncPermissions(db.RoleAdmin, allPerms); err != nil {
		log.Fatalf("failed to sync admin permissions: %v", err)
	}

	if _, err := roles.EnsureRole(db.RoleEditor, "Edit site content"); err != nil {
		log.Fatalf("failed to ensure editor role: %v", err)
	}
	if err := roles.SyncPermissions(db.RoleEditor, contentPerms); err != nil {
		log.Fatalf("failed to sync editor permissions: %v", err)
	}

	adminName, adminPass := cfg.AdminUserName, cfg.AdminPassword
	if adminName == "" {
		adminName, adminPass = "admin", "admin123"
	}
	admin, err := db.EnsureUser(db.DB, adminName, adminPass, "Administrator")
	if err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}
	if admin != nil {
		if err := roles.AssignRoles(admin.ID, []string{db.RoleAdmin}); err != nil {
			log.Fatalf("failed to assign admin role: %v", err)
		}
	}

	editorName, editorPass := cfg.EditorName, cfg.EditorPass
	if editorName == "" {
		editorName, editorPass = "editor", "editor123"
	}
	editor, err := db.EnsureUser(db.DB, editorName, editorPass, "Content Editor")
	if err != nil {
		log.Fatalf("failed to ensure editor user: %v", err)
	}
	if editor != nil {
		if err := roles.AssignRoles(editor.ID, []string{db.RoleEditor}); err != nil {
			log.Fatalf("failed to assign editor role: %v", err)
		}
	}

	pages := service.NewPageService(db.DB)
	for _, slug := range db.DefaultPageSlugs() {
		if _, err := pages.GetOrCreate(slug); err != nil {
			log.Fatalf("failed to ensure page %s: %v", slug, err)
		}
	}

	var actingID uint
	if admin != nil {
		actingID = admin.ID
	}
	seedSampleContent(pages, actingID)

	log.Println("seed complete")
}

func seedSampleContent(pages *service.PageService, actingID uint) {
	var count int64
	db.DB.Model(&db.ContentSection{}).Count(&count)
	if count == 0 {
		hero, _ := json.Marshal(map[string]interface{}{
			"items": []map[string]string{
				{
					"title":    "Technology that moves your business forward",
					"subtitle": "Jiftek builds and runs the digital platforms behind growing companies.",
				},
			},
		})
		if _, err := pages.UpsertSection(db.PageSlugHome, service.SectionKeyHero, hero, 0, actingID); err != nil {
			log.Printf("failed to seed hero section: %v", err)
		}

		mission, _ := json.Marshal(map[string]string{
			"title": "Our mission",
			"body":  "We help ambitious teams ship reliable software.",
		})
		if _, err := pages.UpsertSection(db.PageSlugAbout, service.SectionKeyMission, mission, 0, actingID); err != nil {
			log.Printf("failed to seed mission section: %v", err)
		}
	}

	services := service.NewServiceService(db.DB)
	db.DB.Model(&db.Service{}).Count(&count)
	if count == 0 {
		_, err := services.Create(service.ServiceInput{
			ContentInput: service.ContentInput{
				Title:       "Cloud Engineering",
				Description: "Design, build and operate cloud infrastructure.",
			},
			Icon:     "cloud",
			Features: []string{"Architecture reviews", "Migration", "24/7 operations"},
		}, actingID)
		if err != nil {
			log.Printf("failed to seed service: %v", err)
		}
	}

	studies := service.NewCaseStudyService(db.DB)
	db.DB.Model(&db.CaseStudy{}).Count(&count)
	if count == 0 {
		_, err := studies.Create(service.CaseStudyInput{
			ContentInput: service.ContentInput{
				Title:       "Digital Transformation for Financial Services",
				Description: "Modernizing a legacy banking platform.",
			},
			ClientName: "Meridian Bank",
			Industry:   "Financial Services",
			Challenge:  "A decade-old monolith slowed every release.",
			Approach:   "Incremental strangler migration to managed services.",
			Results:    "Release cadence went from quarterly to weekly.",
		}, actingID)
		if err != nil {
			log.Printf("failed to seed case study: %v", err)
		}
	}
}
