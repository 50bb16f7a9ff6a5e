package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"studioportal/internal/models"
)

// SeedCategory describes one catalog category in the seed fixture.
type SeedCategory struct {
	Slug        string
	Name        string
	Description string
	Icon        string
	Color       string
	SortOrder   int
}

// SeedTemplate describes one catalog template in the seed fixture.
// Templates reference their category by slug; the slug is resolved to a
// category id at seed time.
type SeedTemplate struct {
	Slug          string
	Name          string
	CategorySlug  string
	Description   string
	PagesIncluded int
	Tiers         []models.Tier
	Popular       bool
	Features      []string
}

// CatalogCategories is the fixed catalog category seed, keyed by slug.
var CatalogCategories = []SeedCategory{
	{Slug: "restaurant", Name: "Restaurant & Café", Description: "Menus, reservations, and dining atmosphere.", Icon: "utensils", Color: "#E0704A", SortOrder: 1},
	{Slug: "retail", Name: "Retail & Shop", Description: "Storefronts and product showcases.", Icon: "shopping-bag", Color: "#4A90E0", SortOrder: 2},
	{Slug: "portfolio", Name: "Portfolio & Creative", Description: "Work galleries for creatives and studios.", Icon: "palette", Color: "#9B59B6", SortOrder: 3},
	{Slug: "corporate", Name: "Corporate & Business", Description: "Professional services and consultancies.", Icon: "briefcase", Color: "#2C3E50", SortOrder: 4},
	{Slug: "healthcare", Name: "Healthcare & Clinics", Description: "Practices, clinics, and appointment booking.", Icon: "heart-pulse", Color: "#1ABC9C", SortOrder: 5},
	{Slug: "fitness", Name: "Fitness & Wellness", Description: "Gyms, studios, and class schedules.", Icon: "dumbbell", Color: "#E67E22", SortOrder: 6},
	{Slug: "real-estate", Name: "Real Estate", Description: "Listings and property presentation.", Icon: "home", Color: "#16A085", SortOrder: 7},
	{Slug: "education", Name: "Education & Courses", Description: "Schools, tutors, and online courses.", Icon: "graduation-cap", Color: "#2980B9", SortOrder: 8},
	{Slug: "salon", Name: "Beauty & Salon", Description: "Salons, barbers, and beauty services.", Icon: "scissors", Color: "#E91E8C", SortOrder: 9},
	{Slug: "travel", Name: "Travel & Tourism", Description: "Tours, guides, and destinations.", Icon: "plane", Color: "#F1C40F", SortOrder: 10},
}

// CatalogTemplates is the fixed template seed, two templates per category.
var CatalogTemplates = []SeedTemplate{
	{Slug: "savoria-restaurant", Name: "Savoria", CategorySlug: "restaurant", Description: "Elegant fine-dining site with menu showcase and table reservations.", PagesIncluded: 6, Tiers: []models.Tier{models.TierLaunch, models.TierGrowth}, Popular: true, Features: []string{"Menu pages", "Reservation form", "Gallery", "Opening hours"}},
	{Slug: "bistro-modern", Name: "Bistro Modern", CategorySlug: "restaurant", Description: "Casual bistro layout with daily specials board and delivery links.", PagesIncluded: 5, Tiers: []models.Tier{models.TierLaunch}, Features: []string{"Specials board", "Location map", "Instagram feed"}},
	{Slug: "urban-storefront", Name: "Urban Storefront", CategorySlug: "retail", Description: "Product-first shop layout with collection grids and lookbook.", PagesIncluded: 7, Tiers: []models.Tier{models.TierGrowth, models.TierCommerce}, Popular: true, Features: []string{"Collection grid", "Lookbook", "Stockist page"}},
	{Slug: "craftly-goods", Name: "Craftly Goods", CategorySlug: "retail", Description: "Warm handmade-goods storefront for small makers.", PagesIncluded: 5, Tiers: []models.Tier{models.TierLaunch, models.TierCommerce}, Features: []string{"Product stories", "Maker profile", "Newsletter signup"}},
	{Slug: "studio-frame", Name: "Studio Frame", CategorySlug: "portfolio", Description: "Minimal grid portfolio for design studios and photographers.", PagesIncluded: 4, Tiers: []models.Tier{models.TierLaunch}, Popular: true, Features: []string{"Masonry gallery", "Case study pages", "Contact"}},
	{Slug: "lens-folio", Name: "Lens Folio", CategorySlug: "portfolio", Description: "Full-bleed photography showcase with client proofing area.", PagesIncluded: 5, Tiers: []models.Tier{models.TierGrowth}, Features: []string{"Fullscreen slides", "Client galleries", "Print shop"}},
	{Slug: "atlas-consulting", Name: "Atlas Consulting", CategorySlug: "corporate", Description: "Authoritative consulting site with team and insights sections.", PagesIncluded: 8, Tiers: []models.Tier{models.TierGrowth, models.TierScale}, Popular: true, Features: []string{"Team profiles", "Insights blog", "Careers"}},
	{Slug: "nordic-advisory", Name: "Nordic Advisory", CategorySlug: "corporate", Description: "Clean Scandinavian layout for advisory and legal firms.", PagesIncluded: 6, Tiers: []models.Tier{models.TierScale}, Features: []string{"Practice areas", "Publications", "Secure contact"}},
	{Slug: "clearcare-clinic", Name: "ClearCare Clinic", CategorySlug: "healthcare", Description: "Reassuring clinic site with doctor profiles and appointment booking.", PagesIncluded: 7, Tiers: []models.Tier{models.TierGrowth}, Features: []string{"Doctor profiles", "Appointment form", "FAQ"}},
	{Slug: "dentara", Name: "Dentara", CategorySlug: "healthcare", Description: "Bright dental practice layout with treatment pricing tables.", PagesIncluded: 5, Tiers: []models.Tier{models.TierLaunch, models.TierGrowth}, Features: []string{"Treatment list", "Pricing tables", "Before/after gallery"}},
	{Slug: "pulse-gym", Name: "Pulse Gym", CategorySlug: "fitness", Description: "High-energy gym site with class timetable and trainer bios.", PagesIncluded: 6, Tiers: []models.Tier{models.TierLaunch, models.TierGrowth}, Popular: true, Features: []string{"Class timetable", "Trainer bios", "Membership plans"}},
	{Slug: "yoga-haven", Name: "Yoga Haven", CategorySlug: "fitness", Description: "Calm studio layout with retreat pages and schedule embeds.", PagesIncluded: 5, Tiers: []models.Tier{models.TierLaunch}, Features: []string{"Schedule embed", "Retreats", "Teacher profiles"}},
	{Slug: "habitat-homes", Name: "Habitat Homes", CategorySlug: "real-estate", Description: "Listing-driven agency site with map search and agent cards.", PagesIncluded: 8, Tiers: []models.Tier{models.TierScale}, Popular: true, Features: []string{"Listing grid", "Map search", "Agent cards"}},
	{Slug: "skyline-estates", Name: "Skyline Estates", CategorySlug: "real-estate", Description: "Premium property presentation with cinematic hero sections.", PagesIncluded: 6, Tiers: []models.Tier{models.TierGrowth, models.TierScale}, Features: []string{"Property pages", "Video hero", "Viewing requests"}},
	{Slug: "campus-online", Name: "Campus Online", CategorySlug: "education", Description: "Course-catalog layout for academies and training providers.", PagesIncluded: 9, Tiers: []models.Tier{models.TierScale}, Features: []string{"Course catalog", "Enrollment form", "Instructor pages"}},
	{Slug: "bright-tutors", Name: "Bright Tutors", CategorySlug: "education", Description: "Friendly tutoring site with subject pages and booking.", PagesIncluded: 5, Tiers: []models.Tier{models.TierLaunch}, Features: []string{"Subject pages", "Booking form", "Testimonials"}},
	{Slug: "glow-salon", Name: "Glow Salon", CategorySlug: "salon", Description: "Soft, photographic salon layout with service menu and booking.", PagesIncluded: 5, Tiers: []models.Tier{models.TierLaunch, models.TierGrowth}, Popular: true, Features: []string{"Service menu", "Stylist team", "Online booking"}},
	{Slug: "barber-craft", Name: "Barber Craft", CategorySlug: "salon", Description: "Bold barbershop layout with walk-in info and price list.", PagesIncluded: 4, Tiers: []models.Tier{models.TierLaunch}, Features: []string{"Price list", "Walk-in hours", "Gallery"}},
	{Slug: "wanderlane", Name: "Wanderlane", CategorySlug: "travel", Description: "Story-led travel agency site with itinerary pages.", PagesIncluded: 7, Tiers: []models.Tier{models.TierGrowth}, Features: []string{"Itinerary pages", "Destination guides", "Inquiry form"}},
	{Slug: "coastal-tours", Name: "Coastal Tours", CategorySlug: "travel", Description: "Tour-operator layout with seasonal schedules and booking links.", PagesIncluded: 5, Tiers: []models.Tier{models.TierLaunch, models.TierGrowth}, Features: []string{"Tour schedule", "Booking links", "Reviews"}},
}

// Seed populates the database with development data: an admin profile, a
// demo client, and the template catalog. Safe to run repeatedly: profiles
// are inserted only when missing and the catalog is upserted by slug.
func Seed(db *sql.DB) error {
	_, err := db.Exec(`
		INSERT INTO profiles (name, email, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
	`, "Studio Admin", "admin@studioportal.local", string(models.RoleAdmin))
	if err != nil {
		return fmt.Errorf("seed admin profile: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO profiles (name, email, company, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING
	`, "Demo Client", "client@studioportal.local", "Demo Company", string(models.RoleClient))
	if err != nil {
		return fmt.Errorf("seed demo client: %w", err)
	}

	if err := SeedCatalog(db); err != nil {
		return err
	}

	slog.Info("database seeded",
		"categories", len(CatalogCategories),
		"templates", len(CatalogTemplates),
	)
	return nil
}

// SeedCatalog upserts the fixed catalog fixture. Categories are keyed by
// slug; templates are keyed by slug and resolve their category slug to a
// category id. A template whose category cannot be resolved is skipped with
// a warning rather than failing the whole seed.
func SeedCatalog(db *sql.DB) error {
	categoryIDs := make(map[string]string, len(CatalogCategories))

	for _, c := range CatalogCategories {
		var id string
		err := db.QueryRow(`
			INSERT INTO template_categories (slug, name, description, icon, color, sort_order, active)
			VALUES ($1, $2, $3, $4, $5, $6, TRUE)
			ON CONFLICT (slug)
			DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description,
			              icon = EXCLUDED.icon, color = EXCLUDED.color,
			              sort_order = EXCLUDED.sort_order, updated_at = NOW()
			RETURNING id
		`, c.Slug, c.Name, c.Description, c.Icon, c.Color, c.SortOrder).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", c.Slug, err)
		}
		categoryIDs[c.Slug] = id
	}

	for i, t := range CatalogTemplates {
		categoryID, ok := categoryIDs[t.CategorySlug]
		if !ok {
			slog.Warn("seed template skipped, unresolved category",
				"template", t.Slug,
				"category", t.CategorySlug,
			)
			continue
		}

		tiers, err := json.Marshal(t.Tiers)
		if err != nil {
			return fmt.Errorf("seed template %s tiers: %w", t.Slug, err)
		}
		features, err := json.Marshal(t.Features)
		if err != nil {
			return fmt.Errorf("seed template %s features: %w", t.Slug, err)
		}

		_, err = db.Exec(`
			INSERT INTO templates (slug, name, category_id, description, pages_included,
			                       tier_compatibility, popular, features, sort_order, active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
			ON CONFLICT (slug)
			DO UPDATE SET name = EXCLUDED.name, category_id = EXCLUDED.category_id,
			              description = EXCLUDED.description,
			              pages_included = EXCLUDED.pages_included,
			              tier_compatibility = EXCLUDED.tier_compatibility,
			              popular = EXCLUDED.popular, features = EXCLUDED.features,
			              sort_order = EXCLUDED.sort_order, updated_at = NOW()
		`, t.Slug, t.Name, categoryID, t.Description, t.PagesIncluded,
			tiers, t.Popular, features, i+1)
		if err != nil {
			return fmt.Errorf("seed template %s: %w", t.Slug, err)
		}
	}

	return nil
}
