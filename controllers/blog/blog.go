package blog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ziada-travel/logger"
	blogService "ziada-travel/services/blog"
)

// BlogController serves the public blog: listing, search, categories,
// article pages and the stable short-link redirect.
type BlogController struct {
	Blog   *blogService.Service
	Logger *logger.AsyncLogger
}

// NewBlogController creates a new blog controller
func NewBlogController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *BlogController {
	return &BlogController{
		Blog:   blogService.NewService(db),
		Logger: asyncLogger,
	}
}

// List renders the blog landing page: all published posts plus the featured
// and trending rails and the category navigation.
func (bc *BlogController) List(c *fiber.Ctx) error {
	posts, err := bc.Blog.ListPosts()
	if err != nil {
		logger.Error("Failed to load posts", err)
		return fiber.ErrInternalServerError
	}
	featured, err := bc.Blog.FeaturedPosts()
	if err != nil {
		logger.Error("Failed to load featured posts", err)
		featured = nil
	}
	trending, err := bc.Blog.TrendingPosts()
	if err != nil {
		logger.Error("Failed to load trending posts", err)
		trending = nil
	}
	categories, err := bc.Blog.ListCategories()
	if err != nil {
		logger.Error("Failed to load categories", err)
		categories = nil
	}

	return c.Render("blog_list", fiber.Map{
		"title":      "Blog",
		"posts":      posts,
		"featured":   featured,
		"trending":   trending,
		"categories": categories,
	})
}

// Search renders posts matching the q query parameter.
func (bc *BlogController) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	posts, err := bc.Blog.Search(query)
	if err != nil {
		logger.Error("Failed to search posts", err)
		return fiber.ErrInternalServerError
	}
	return c.Render("blog_search", fiber.Map{
		"title": fmt.Sprintf("Search: %s", query),
		"query": query,
		"posts": posts,
	})
}

// Category renders one category and its published posts.
func (bc *BlogController) Category(c *fiber.Ctx) error {
	category, posts, err := bc.Blog.CategoryBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, blogService.ErrNotFound) {
			return fiber.ErrNotFound
		}
		logger.Error("Failed to load category", err)
		return fiber.ErrInternalServerError
	}
	return c.Render("category_detail", fiber.Map{
		"title":    category.Title,
		"category": category,
		"posts":    posts,
	})
}

// Detail renders one published post and records the view. A failed counter
// update never blocks the page.
func (bc *BlogController) Detail(c *fiber.Ctx) error {
	post, err := bc.Blog.GetPost(c.Params("slug"))
	if err != nil {
		if errors.Is(err, blogService.ErrNotFound) {
			return fiber.ErrNotFound
		}
		logger.Error("Failed to load post", err)
		return fiber.ErrInternalServerError
	}

	if err := bc.Blog.RecordView(post.ID); err != nil {
		logger.Warning(fmt.Sprintf("View count update failed for post %d: %v", post.ID, err))
	}

	return c.Render("blog_detail", fiber.Map{
		"title": post.Title,
		"post":  post,
	})
}

// Redirect maps a short public identifier to the post's current slug.
func (bc *BlogController) Redirect(c *fiber.Ctx) error {
	slug, err := bc.Blog.ResolveByPID(c.Params("pid"))
	if err != nil {
		if errors.Is(err, blogService.ErrNotFound) {
			return fiber.ErrNotFound
		}
		logger.Error("Failed to resolve post id", err)
		return fiber.ErrInternalServerError
	}
	return c.Redirect(fmt.Sprintf("/blog/post/%s/", slug), fiber.StatusFound)
}
