package blog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	blogModel "ziada-travel/models/blog"
)

// ErrNotFound is returned when a slug or PID matches no published record.
var ErrNotFound = errors.New("blog: not found")

// Service is the public read model over blog posts and categories. Only
// published posts are visible; drafts and posts in review never leave this
// package.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

func (s *Service) published() *gorm.DB {
	return s.DB.Where("status = ?", blogModel.PostStatusPublished)
}

// ListPosts returns all published posts, newest first, with author and
// category preloaded.
func (s *Service) ListPosts() ([]blogModel.Post, error) {
	var posts []blogModel.Post
	err := s.published().
		Preload("User").
		Preload("Category").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, nil
}

// FeaturedPosts returns up to the three newest published featured posts.
func (s *Service) FeaturedPosts() ([]blogModel.Post, error) {
	var posts []blogModel.Post
	err := s.published().
		Where("featured = ?", true).
		Preload("Category").
		Order("created_at DESC").
		Limit(3).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("listing featured posts: %w", err)
	}
	return posts, nil
}

// TrendingPosts returns up to the five newest published trending posts.
func (s *Service) TrendingPosts() ([]blogModel.Post, error) {
	var posts []blogModel.Post
	err := s.published().
		Where("trending = ?", true).
		Preload("Category").
		Order("created_at DESC").
		Limit(5).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("listing trending posts: %w", err)
	}
	return posts, nil
}

// ListCategories returns all active categories ordered by title.
func (s *Service) ListCategories() ([]blogModel.Category, error) {
	var categories []blogModel.Category
	err := s.DB.
		Where("active = ?", true).
		Order("title ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

// Search returns published posts whose title, excerpt or content contains the
// query, newest first. An empty query matches everything, so the full
// published listing comes back.
func (s *Service) Search(query string) ([]blogModel.Post, error) {
	tx := s.published()
	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where("title LIKE ? OR excerpt LIKE ? OR content LIKE ?", pattern, pattern, pattern)
	}

	var posts []blogModel.Post
	err := tx.
		Preload("Category").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("searching posts for %q: %w", query, err)
	}
	return posts, nil
}

// CategoryBySlug returns one active category and its published posts.
func (s *Service) CategoryBySlug(slug string) (*blogModel.Category, []blogModel.Post, error) {
	var category blogModel.Category
	err := s.DB.Where("slug = ? AND active = ?", slug, true).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("loading category %q: %w", slug, err)
	}

	var posts []blogModel.Post
	err = s.published().
		Where("category_id = ?", category.ID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, nil, fmt.Errorf("listing posts for category %q: %w", slug, err)
	}
	return &category, posts, nil
}

// GetPost returns one published post by slug with author and category loaded.
func (s *Service) GetPost(slug string) (*blogModel.Post, error) {
	var post blogModel.Post
	err := s.published().
		Where("slug = ?", slug).
		Preload("User").
		Preload("Category").
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading post %q: %w", slug, err)
	}
	return &post, nil
}

// RecordView increments the post's view counter in a single UPDATE so
// concurrent readers never lose counts. UpdatedAt is left untouched.
func (s *Service) RecordView(postID uint) error {
	err := s.DB.Model(&blogModel.Post{}).
		Where("id = ?", postID).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		return fmt.Errorf("recording view for post %d: %w", postID, err)
	}
	return nil
}

// ResolveByPID maps a short public identifier to the post's current slug,
// used by the stable /blog/p/:pid/ redirect.
func (s *Service) ResolveByPID(pid string) (string, error) {
	var post blogModel.Post
	err := s.published().
		Select("slug").
		Where("pid = ?", pid).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("resolving pid %q: %w", pid, err)
	}
	return post.Slug, nil
}
