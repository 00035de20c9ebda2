package AdminRepository

import (
	"fmt"
	"time"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// DashboardStats - içerik ve mesaj sayıları için özet görünüm
type DashboardStats struct {
	Products       int `json:"products"`
	Services       int `json:"services"`
	PublishedPosts int `json:"publishedPosts"`
	DraftPosts     int `json:"draftPosts"`
	Faqs           int `json:"faqs"`
	NewContacts    int `json:"newContacts"`
	TotalContacts  int `json:"totalContacts"`
	Images         int `json:"images"`
	TotalBlogViews int `json:"totalBlogViews"`
}

func (r *Repository) SelectDashboardStats() (DashboardStats, error) {
	defer utils.TimeTrack(time.Now(), "Admin -> Select Dashboard Stats")

	var stats DashboardStats

	query := `
		SELECT
			(SELECT COUNT(*) FROM products WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM services WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM blog_posts WHERE status = $1 AND is_active = TRUE),
			(SELECT COUNT(*) FROM blog_posts WHERE status = $2 AND is_active = TRUE),
			(SELECT COUNT(*) FROM faqs WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM contacts WHERE status = $3),
			(SELECT COUNT(*) FROM contacts),
			(SELECT COUNT(*) FROM images),
			(SELECT COALESCE(SUM(view_count), 0) FROM blog_posts WHERE is_active = TRUE)`

	err := r.db.QueryRow(query, types.BlogStatusPublished, types.BlogStatusDraft, types.ContactStatusNew).Scan(
		&stats.Products,
		&stats.Services,
		&stats.PublishedPosts,
		&stats.DraftPosts,
		&stats.Faqs,
		&stats.NewContacts,
		&stats.TotalContacts,
		&stats.Images,
		&stats.TotalBlogViews,
	)
	if err != nil {
		return stats, fmt.Errorf("dashboard stats query failed: %w", err)
	}

	return stats, nil
}
