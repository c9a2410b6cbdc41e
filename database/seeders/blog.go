package seeders

import (
	"log"

	"gorm.io/gorm"

	"ziada-travel/models/blog"
	"ziada-travel/models/user"
	"ziada-travel/utils"
)

// SeedBlog creates the launch categories and posts. Unlike the catalog seed,
// posts are only created when missing so editorial changes survive re-runs.
func SeedBlog(db *gorm.DB) {
	log.Printf("🔍 Seeding blog categories and posts...")

	var author *user.User
	var first user.User
	if err := db.Order("id ASC").First(&first).Error; err == nil {
		author = &first
	}

	categories := []blog.Category{
		{Title: "Safari Guides", Description: "Practical safari tips and travel planning insights.", Active: true},
		{Title: "Destination Highlights", Description: "Stories and highlights from East Africa.", Active: true},
		{Title: "Luxury Travel", Description: "Premium stays, bespoke services, and refined experiences.", Active: true},
	}

	categoryIDs := map[string]uint{}
	for i := range categories {
		category := &categories[i]
		category.Slug = utils.Slugify(category.Title, 100)

		var existing blog.Category
		err := db.Where("slug = ?", category.Slug).First(&existing).Error
		switch {
		case err == nil:
			categoryIDs[category.Title] = existing.ID
			continue
		case err != gorm.ErrRecordNotFound:
			log.Printf("❌ Failed to check category %q: %v", category.Slug, err)
			continue
		}

		if err := db.Create(category).Error; err != nil {
			log.Printf("❌ Failed to seed category %q: %v", category.Slug, err)
			continue
		}
		categoryIDs[category.Title] = category.ID
	}

	posts := []struct {
		Title    string
		Excerpt  string
		Content  string
		Category string
		Featured bool
		Trending bool
		Tags     blog.StringSlice
	}{
		{
			Title:    "The Great Migration: When and Where to See It",
			Excerpt:  "<p>Plan your journey around the Great Migration and enjoy iconic wildlife moments.</p>",
			Content:  "<p>The Great Migration is one of Africa's most breathtaking spectacles. Our team recommends...</p>",
			Category: "Safari Guides",
			Featured: true,
			Trending: true,
			Tags:     blog.StringSlice{"safari", "migration", "kenya"},
		},
		{
			Title:    "Luxury Beach Escapes Along the Kenyan Coast",
			Excerpt:  "<p>Discover serene coastlines, private villas, and curated ocean adventures.</p>",
			Content:  "<p>From Diani to Watamu, the Kenyan coast offers warm waters and refined hospitality...</p>",
			Category: "Luxury Travel",
			Featured: true,
			Tags:     blog.StringSlice{"beach", "luxury"},
		},
		{
			Title:    "Top 5 Safari Destinations for First-Time Travelers",
			Excerpt:  "<p>New to safari? These destinations offer unforgettable wildlife experiences.</p>",
			Content:  "<p>Maasai Mara, Amboseli, Tsavo, Samburu, and Laikipia are top choices for first-timers...</p>",
			Category: "Destination Highlights",
			Trending: true,
			Tags:     blog.StringSlice{"safari", "destinations"},
		},
		{
			Title:    "How to Pack for a Safari: The Ziada Checklist",
			Excerpt:  "<p>Pack smart with our practical checklist curated by Ziada travel experts.</p>",
			Content:  "<p>Think light layers, neutral tones, and a reliable camera kit. Here is our full checklist...</p>",
			Category: "Safari Guides",
			Tags:     blog.StringSlice{"safari", "packing"},
		},
	}

	created := 0
	for _, data := range posts {
		slug := utils.Slugify(data.Title, 1000)

		var existing blog.Post
		err := db.Where("slug = ?", slug).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("❌ Failed to check post %q: %v", slug, err)
			continue
		}

		post := blog.Post{
			Title:    data.Title,
			Slug:     slug,
			Excerpt:  data.Excerpt,
			Content:  data.Content,
			Tags:     data.Tags,
			Status:   blog.PostStatusPublished,
			Featured: data.Featured,
			Trending: data.Trending,
			PID:      utils.NewPID(),
		}
		if author != nil {
			post.UserID = &author.ID
		}
		if categoryID, ok := categoryIDs[data.Category]; ok {
			id := categoryID
			post.CategoryID = &id
		}

		if err := db.Create(&post).Error; err != nil {
			log.Printf("❌ Failed to seed post %q: %v", slug, err)
			continue
		}
		created++
	}

	log.Printf("✅ Blog seeding completed, %d posts created", created)
}
