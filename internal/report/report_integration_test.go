package report

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

var testReport *Report

func TestMain(m *testing.M) {
	database, err := db.SetupTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to prepare test database: %v\n", err)
		os.Exit(1)
	}
	_ = database.Close()

	conn, err := Connect(context.Background(), db.TestDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	testReport = New(conn)

	code := m.Run()
	_ = conn.Close()
	os.Exit(code)
}

func TestPositionTotals_Integration(t *testing.T) {
	totals, err := testReport.PositionTotals(context.Background())
	require.NoError(t, err)
	require.Len(t, totals, len(newsportal.Positions))

	byPosition := make(map[string]newsportal.PositionStats, len(totals))
	for _, p := range totals {
		byPosition[p.Position] = p
	}

	assert.Equal(t, newsportal.PositionStats{Position: "header", Banners: 2, ActiveBanners: 2, Clicks: 3, Impressions: 14}, byPosition["header"])
	assert.Equal(t, newsportal.PositionStats{Position: "sidebar-bottom", Banners: 1, ActiveBanners: 0, Clicks: 3, Impressions: 6}, byPosition["sidebar-bottom"])
	assert.Equal(t, newsportal.PositionStats{Position: "content-bottom"}, byPosition["content-bottom"])
	assert.Equal(t, "between-news", totals[0].Position)
}

func TestTopBannersByCTR_Integration(t *testing.T) {
	top, err := testReport.TopBannersByCTR(context.Background(), 3)
	require.NoError(t, err)

	ids := make([]string, len(top))
	for i := range top {
		ids[i] = top[i].ID
	}
	assert.Equal(t, []string{"ban-inactive", "ban-expired", "ban-header"}, ids)
	assert.Equal(t, "Inactive", top[0].Title)
	assert.Equal(t, int64(6), top[0].Impressions)

	empty, err := testReport.TopBannersByCTR(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
