package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/lib/slug"
	"artfolio/internal/repository"
	"artfolio/internal/transport/http/dto"
)

// Tagger links tag names to an entity, creating tags on first use.
type Tagger interface {
	TagEntity(ctx context.Context, kind models.TagKind, id uuid.UUID, names []string, replace bool) error
}

type BlogService struct {
	log  *slog.Logger
	repo repository.BlogRepository
	tags Tagger
}

func NewBlogService(log *slog.Logger, repo repository.BlogRepository, tags Tagger) *BlogService {
	return &BlogService{log: log, repo: repo, tags: tags}
}

// CreatePost stores a post written by authorID. published_at is set by the database.
func (s *BlogService) CreatePost(ctx context.Context, authorID uuid.UUID, req dto.CreateBlogPostRequest) (models.BlogPost, error) {
	const op = "blog_service.CreatePost"

	log := s.log.With(
		slog.String("op", op),
		slog.String("author_id", authorID.String()),
	)

	log.Info("creating new blog post", slog.String("title", req.Title))

	title := strings.TrimSpace(req.Title)
	if title == "" {
		log.Warn("post title is required")
		return models.BlogPost{}, fmt.Errorf("%s: post title is required: %w", op, models.ErrInvalidInput)
	}
	if authorID == uuid.Nil {
		log.Warn("author ID is required")
		return models.BlogPost{}, fmt.Errorf("%s: author ID is required: %w", op, models.ErrInvalidInput)
	}
	if err := checkSummary(req.Summary); err != nil {
		return models.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}

	postSlug := req.Slug
	if postSlug == "" {
		var err error
		postSlug, err = slug.Derive(ctx, title, "post", models.PostSlugLength, s.repo.BlogSlugExists)
		if err != nil {
			log.Error("failed to derive slug", sl.Err(err))
			return models.BlogPost{}, fmt.Errorf("%s: %w", op, err)
		}
		log.Debug("generated slug", slog.String("slug", postSlug))
	}

	post, err := s.repo.SaveBlogPost(ctx, models.BlogPost{
		Title:      title,
		Slug:       postSlug,
		CoverImage: req.CoverImage,
		Content:    req.Content,
		Summary:    req.Summary,
		AuthorID:   authorID,
	})
	if err != nil {
		log.Warn("failed to save post", sl.Err(err))
		return models.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(req.Tags) > 0 {
		if err := s.tags.TagEntity(ctx, models.TagKindPost, post.ID, req.Tags, true); err != nil {
			log.Error("failed to tag post", sl.Err(err))
			return models.BlogPost{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Info("post created", slog.String("id", post.ID.String()), slog.String("slug", post.Slug))

	return s.GetPostByID(ctx, post.ID)
}

// UpdatePost applies the present fields. Author and publication time never change.
func (s *BlogService) UpdatePost(ctx context.Context, postID uuid.UUID, req dto.UpdateBlogPostRequest) (models.BlogPost, error) {
	const op = "blog_service.UpdatePost"

	log := s.log.With(
		slog.String("op", op),
		slog.String("post_id", postID.String()),
	)

	log.Info("updating blog post")

	post, err := s.repo.GetBlogPostByID(ctx, postID)
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}

	if req.Title != nil {
		post.Title = strings.TrimSpace(*req.Title)
		if post.Title == "" {
			return models.BlogPost{}, fmt.Errorf("%s: post title is required: %w", op, models.ErrInvalidInput)
		}
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.CoverImage != nil {
		post.CoverImage = req.CoverImage
		if *req.CoverImage == "" {
			post.CoverImage = nil
		}
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Summary != nil {
		if err := checkSummary(*req.Summary); err != nil {
			return models.BlogPost{}, fmt.Errorf("%s: %w", op, err)
		}
		post.Summary = *req.Summary
	}

	if _, err := s.repo.UpdateBlogPost(ctx, post); err != nil {
		log.Warn("failed to update post", sl.Err(err))
		return models.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}

	if req.Tags != nil {
		if err := s.tags.TagEntity(ctx, models.TagKindPost, postID, *req.Tags, true); err != nil {
			log.Error("failed to replace tags", sl.Err(err))
			return models.BlogPost{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Info("post updated successfully")

	return s.GetPostByID(ctx, postID)
}

func (s *BlogService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	const op = "blog_service.DeletePost"

	if err := s.repo.DeleteBlogPost(ctx, postID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("post deleted", slog.String("op", op), slog.String("post_id", postID.String()))

	return nil
}

func (s *BlogService) GetPostByID(ctx context.Context, id uuid.UUID) (models.BlogPost, error) {
	const op = "blog_service.GetPostByID"

	post, err := s.repo.GetBlogPostByID(ctx, id)
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}

	return post, nil
}

func (s *BlogService) GetPostBySlug(ctx context.Context, postSlug string) (models.BlogPost, error) {
	const op = "blog_service.GetPostBySlug"

	post, err := s.repo.GetBlogPostBySlug(ctx, postSlug)
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}

	return post, nil
}

// ListPosts returns a page of posts, newest first. An empty tagSlug lists every post.
func (s *BlogService) ListPosts(ctx context.Context, tagSlug string, page, perPage int) ([]models.BlogPost, int, error) {
	const op = "blog_service.ListPosts"

	posts, total, err := s.repo.GetBlogPosts(ctx, tagSlug, page, perPage)
	if err != nil {
		s.log.Error("failed to list posts", slog.String("op", op), sl.Err(err))
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return posts, total, nil
}

// TagPost adds tags to the post, keeping the existing ones.
func (s *BlogService) TagPost(ctx context.Context, postID uuid.UUID, names []string) (models.BlogPost, error) {
	const op = "blog_service.TagPost"

	if err := s.tags.TagEntity(ctx, models.TagKindPost, postID, names, false); err != nil {
		return models.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetPostByID(ctx, postID)
}

func checkSummary(summary string) error {
	if n := utf8.RuneCountInString(summary); n > models.MaxSummaryLength {
		return fmt.Errorf("summary is %d characters, limit is %d: %w", n, models.MaxSummaryLength, models.ErrInvalidInput)
	}
	return nil
}
