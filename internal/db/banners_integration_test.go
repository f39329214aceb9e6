package db

import (
	"database/sql"
	"slices"
	"testing"
	"time"
)

func TestActiveBanners_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)
	now := time.Now()

	t.Run("AllPositions", func(t *testing.T) {
		banners, err := repo.ActiveBanners(ctx, "", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids := bannerIDs(banners)
		slices.Sort(ids)
		if want := []string{"ban-header", "ban-sidebar"}; !slices.Equal(ids, want) {
			t.Errorf("expected %v, got %v", want, ids)
		}
	})

	t.Run("ExpiredExcludedEvenIfActive", func(t *testing.T) {
		banners, err := repo.ActiveBanners(ctx, "header", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := bannerIDs(banners); !slices.Equal(got, []string{"ban-header"}) {
			t.Errorf("expected only ban-header, got %v", got)
		}
	})

	t.Run("NotStartedYet", func(t *testing.T) {
		banners, err := repo.ActiveBanners(ctx, "content-top", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(banners) != 0 {
			t.Errorf("expected no banners, got %v", bannerIDs(banners))
		}
	})

	t.Run("InsideWindow", func(t *testing.T) {
		banners, err := repo.ActiveBanners(ctx, "content-top", time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := bannerIDs(banners); !slices.Equal(got, []string{"ban-future"}) {
			t.Errorf("expected ban-future, got %v", got)
		}
	})
}

func TestBannerCounters_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	for i := 0; i < 2; i++ {
		ok, err := repo.IncrementClicks(ctx, "ban-sidebar")
		if err != nil || !ok {
			t.Fatalf("increment clicks failed: ok=%v err=%v", ok, err)
		}
	}
	ok, err := repo.IncrementImpressions(ctx, "ban-sidebar")
	if err != nil || !ok {
		t.Fatalf("increment impressions failed: ok=%v err=%v", ok, err)
	}

	banner, err := repo.BannerByID(ctx, "ban-sidebar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if banner.Clicks != 2 || banner.Impressions != 1 {
		t.Errorf("expected 2 clicks / 1 impression, got %d / %d", banner.Clicks, banner.Impressions)
	}

	ok, err = repo.IncrementClicks(ctx, "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected false for missing banner")
	}
}

func TestBannerCRUD_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	created, err := repo.AddBanner(ctx, &Banner{
		Title:     "Promo",
		ImageURL:  "https://cdn.example.com/promo.png",
		LinkURL:   "https://example.com/promo",
		Position:  "content-bottom",
		IsActive:  true,
		CreatedAt: BaseTime,
		UpdatedAt: BaseTime,
	})
	if err != nil {
		t.Fatalf("failed to add banner: %v", err)
	}

	created.Title = "Promo 2"
	created.Clicks = 99
	ok, err := repo.UpdateBanner(ctx, created)
	if err != nil || !ok {
		t.Fatalf("failed to update banner: ok=%v err=%v", ok, err)
	}

	got, err := repo.BannerByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Promo 2" || got.Clicks != 0 {
		t.Errorf("expected title update without counter change, got %q clicks=%d", got.Title, got.Clicks)
	}

	list, err := repo.Banners(ctx, BannerFilter{Position: "content-bottom", IsActive: sql.NullBool{Bool: true, Valid: true}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ids := bannerIDs(list); !slices.Equal(ids, []string{created.ID}) {
		t.Errorf("expected filtered list with new banner, got %v", ids)
	}

	ok, err = repo.DeleteBanner(ctx, created.ID)
	if err != nil || !ok {
		t.Fatalf("failed to delete banner: ok=%v err=%v", ok, err)
	}
}

func TestDeactivateExhausted_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	n, err := repo.DeactivateExhausted(ctx, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected expired and capped banners to be deactivated, got %d", n)
	}

	for _, id := range []string{"ban-expired", "ban-capped"} {
		banner, err := repo.BannerByID(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if banner.IsActive {
			t.Errorf("expected %s to be inactive", id)
		}
	}

	header, err := repo.BannerByID(ctx, "ban-header")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !header.IsActive {
		t.Error("ban-header must stay active")
	}
}
