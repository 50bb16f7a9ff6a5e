package store

import (
	"testing"

	"studioportal/internal/models"
)

func TestCampaignToggleOnlyFlipsActive(t *testing.T) {
	db := testDB(t)
	cleanCampaigns(t, db, "Toggle Test Sale")
	t.Cleanup(func() { cleanCampaigns(t, db, "Toggle Test Sale") })

	campaigns := NewCampaignStore(db)

	created, err := campaigns.Create(&models.Campaign{
		Template:      "spring-sale",
		Title:         "Toggle Test Sale",
		Description:   "original description",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 20,
		BannerText:    "20% off",
		BannerColor:   "#ff6600",
		CTAText:       "Shop now",
		CTALink:       "/templates",
		Placement:     models.PlacementBanner,
		Active:        false,
	})
	if err != nil {
		t.Fatalf("create campaign: %v", err)
	}

	found, err := campaigns.FindByID(created.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found == nil || found.Title != created.Title {
		t.Fatalf("found campaign = %+v, want %s", found, created.Title)
	}

	toggled, err := campaigns.SetActive(created.ID, true)
	if err != nil {
		t.Fatalf("set active: %v", err)
	}
	if !toggled.Active {
		t.Error("campaign not active after toggle")
	}
	// The toggle must not touch editor fields.
	if toggled.Description != "original description" || toggled.DiscountValue != 20 {
		t.Errorf("toggle changed editor fields: %+v", toggled)
	}
}

func TestCampaignUpdateAllFields(t *testing.T) {
	db := testDB(t)
	cleanCampaigns(t, db, "Update Test Sale", "Renamed Sale")
	t.Cleanup(func() { cleanCampaigns(t, db, "Update Test Sale", "Renamed Sale") })

	campaigns := NewCampaignStore(db)

	created, err := campaigns.Create(&models.Campaign{
		Template:     "summer-sale",
		Title:        "Update Test Sale",
		DiscountType: models.DiscountFixed,
		Placement:    models.PlacementHero,
	})
	if err != nil {
		t.Fatalf("create campaign: %v", err)
	}

	code := "SUMMER50"
	updated, err := campaigns.Update(&models.Campaign{
		ID:            created.ID,
		Template:      "summer-sale",
		Title:         "Renamed Sale",
		Description:   "updated",
		DiscountType:  models.DiscountFixed,
		DiscountValue: 50,
		DiscountCode:  &code,
		BannerText:    "50 EUR off",
		BannerColor:   "#0066ff",
		CTAText:       "Get it",
		CTALink:       "/pricing",
		Placement:     models.PlacementPricing,
		Active:        true,
	})
	if err != nil {
		t.Fatalf("update campaign: %v", err)
	}
	if updated.Title != "Renamed Sale" || updated.Placement != models.PlacementPricing {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.DiscountCode == nil || *updated.DiscountCode != "SUMMER50" {
		t.Errorf("discount code = %v, want SUMMER50", updated.DiscountCode)
	}
}
