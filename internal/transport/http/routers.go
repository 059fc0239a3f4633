package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/lib/slug"
	mediaservice "artfolio/internal/services/media_service"
	tokenservice "artfolio/internal/services/token_service"
	userservice "artfolio/internal/services/user_service"
	"artfolio/internal/storage"
	"artfolio/internal/transport/http/dto"
	"artfolio/internal/transport/http/dto/response"

	_ "artfolio/docs"
)

// ContextUserID is the echo context key holding the authenticated admin id.
const ContextUserID = "user_id"

type UserService interface {
	Login(ctx context.Context, email, password string) (models.User, *models.TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	GetUser(ctx context.Context, userID uuid.UUID) (models.User, error)
}

type TokenService interface {
	RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

type TaxonomyService interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (models.GalleryCategory, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (models.GalleryCategory, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	GetCategoryBySlug(ctx context.Context, categorySlug string) (models.GalleryCategory, error)
	ListCategories(ctx context.Context) ([]models.GalleryCategory, error)
	ListTags(ctx context.Context, kind models.TagKind) ([]models.Tag, error)
}

type ArtworkService interface {
	CreateArtwork(ctx context.Context, req dto.CreateArtworkRequest) (models.Artwork, error)
	UpdateArtwork(ctx context.Context, id uuid.UUID, req dto.UpdateArtworkRequest) (models.Artwork, error)
	DeleteArtwork(ctx context.Context, id uuid.UUID) error
	GetArtworkByID(ctx context.Context, id uuid.UUID) (models.Artwork, error)
	GetArtworkBySlug(ctx context.Context, artworkSlug string) (models.Artwork, error)
	ListArtworks(ctx context.Context, filter models.ArtworkFilter, page, perPage int) ([]models.Artwork, int, error)
	AddImage(ctx context.Context, artworkID uuid.UUID, req dto.AddArtworkImageRequest) (models.AdditionalArtworkImage, error)
	RemoveImage(ctx context.Context, artworkID, imageID uuid.UUID) error
	ListImages(ctx context.Context, artworkID uuid.UUID) ([]models.AdditionalArtworkImage, error)
	TagArtwork(ctx context.Context, id uuid.UUID, names []string) (models.Artwork, error)
}

type BlogService interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, req dto.CreateBlogPostRequest) (models.BlogPost, error)
	UpdatePost(ctx context.Context, postID uuid.UUID, req dto.UpdateBlogPostRequest) (models.BlogPost, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
	GetPostByID(ctx context.Context, id uuid.UUID) (models.BlogPost, error)
	GetPostBySlug(ctx context.Context, postSlug string) (models.BlogPost, error)
	ListPosts(ctx context.Context, tagSlug string, page, perPage int) ([]models.BlogPost, int, error)
	TagPost(ctx context.Context, postID uuid.UUID, names []string) (models.BlogPost, error)
}

type HomepageService interface {
	GetHomepageContent(ctx context.Context) (models.HomepageContent, error)
	CreateHeroSlide(ctx context.Context, req dto.CreateHeroSlideRequest) (models.HeroSlide, error)
	UpdateHeroSlide(ctx context.Context, id uuid.UUID, req dto.UpdateHeroSlideRequest) (models.HeroSlide, error)
	DeleteHeroSlide(ctx context.Context, id uuid.UUID) error
	ListHeroSlides(ctx context.Context) ([]models.HeroSlide, error)
	CreateFeatured(ctx context.Context, req dto.CreateFeaturedRequest) (models.FeaturedHomepageArtwork, error)
	UpdateFeatured(ctx context.Context, id uuid.UUID, req dto.UpdateFeaturedRequest) (models.FeaturedHomepageArtwork, error)
	DeleteFeatured(ctx context.Context, id uuid.UUID) error
	ListFeatured(ctx context.Context) ([]models.FeaturedHomepageArtwork, error)
	CreateSocialLink(ctx context.Context, req dto.CreateSocialLinkRequest) (models.SocialLink, error)
	UpdateSocialLink(ctx context.Context, id uuid.UUID, req dto.UpdateSocialLinkRequest) (models.SocialLink, error)
	DeleteSocialLink(ctx context.Context, id uuid.UUID) error
	ListSocialLinks(ctx context.Context, all bool) ([]models.SocialLink, error)
}

type MediaService interface {
	UploadImage(ctx context.Context, r io.Reader, size int64) (dto.ImageUploadResponse, error)
}

type ImportService interface {
	StageBatch(ctx context.Context, items []dto.StageItemRequest) (dto.StageBatchResponse, error)
	Promote(ctx context.Context, itemID uuid.UUID, req dto.PromoteRequest) (models.Artwork, error)
	Ignore(ctx context.Context, ids []uuid.UUID) (int64, error)
	Reset(ctx context.Context, ids []uuid.UUID) (int64, error)
	GetItem(ctx context.Context, id uuid.UUID) (models.InstagramImportedItem, error)
	ListItems(ctx context.Context, status models.ImportStatus, page, perPage int) ([]models.InstagramImportedItem, int, error)
}

type SubscriptionService interface {
	Subscribe(ctx context.Context, email string) (models.Subscriber, error)
	Confirm(ctx context.Context, token uuid.UUID) (models.Subscriber, error)
	Unsubscribe(ctx context.Context, token uuid.UUID) (models.Subscriber, error)
	ListSubscribers(ctx context.Context, active *bool, page, perPage int) ([]models.Subscriber, int, error)
}

// Services groups the dependencies of Routers.
type Services struct {
	User         UserService
	Token        TokenService
	Taxonomy     TaxonomyService
	Artwork      ArtworkService
	Blog         BlogService
	Homepage     HomepageService
	Media        MediaService
	Import       ImportService
	Subscription SubscriptionService
}

type Routers struct {
	log                 *slog.Logger
	UserService         UserService
	TokenService        TokenService
	TaxonomyService     TaxonomyService
	ArtworkService      ArtworkService
	BlogService         BlogService
	HomepageService     HomepageService
	MediaService        MediaService
	ImportService       ImportService
	SubscriptionService SubscriptionService
}

func NewRouter(log *slog.Logger, s Services) *Routers {
	return &Routers{
		log:                 log,
		UserService:         s.User,
		TokenService:        s.Token,
		TaxonomyService:     s.Taxonomy,
		ArtworkService:      s.Artwork,
		BlogService:         s.Blog,
		HomepageService:     s.Homepage,
		MediaService:        s.Media,
		ImportService:       s.Import,
		SubscriptionService: s.Subscription,
	}
}

type errorMapping struct {
	target error
	status int
	code   string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{storage.ErrNotFound, http.StatusNotFound, "not_found"},
	{userservice.ErrUserNotFound, http.StatusNotFound, "not_found"},
	{storage.ErrDuplicateName, http.StatusConflict, "duplicate_name"},
	{storage.ErrDuplicateSlug, http.StatusConflict, "duplicate_slug"},
	{slug.ErrExhausted, http.StatusConflict, "slug_exhausted"},
	{storage.ErrCapacityExceeded, http.StatusConflict, "capacity_exceeded"},
	{storage.ErrDuplicateExternalID, http.StatusConflict, "duplicate_external_id"},
	{storage.ErrDuplicateEmail, http.StatusConflict, "duplicate_email"},
	{storage.ErrReferentialIntegrity, http.StatusConflict, "referential_integrity"},
	{storage.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
	{userservice.ErrUserExist, http.StatusConflict, "user_exists"},
	{models.ErrInvalidInput, http.StatusBadRequest, "invalid_request"},
	{slug.ErrEmpty, http.StatusBadRequest, "invalid_request"},
	{storage.ErrInvalidFileType, http.StatusUnsupportedMediaType, "invalid_file_type"},
	{storage.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "file_too_large"},
	{mediaservice.ErrFetchFailed, http.StatusBadGateway, "fetch_failed"},
	{userservice.ErrInvalidCredentials, http.StatusUnauthorized, "authentication_failed"},
	{tokenservice.ErrInvalidToken, http.StatusUnauthorized, "authentication_failed"},
	{tokenservice.ErrTokenNotInStorage, http.StatusUnauthorized, "authentication_failed"},
}

// writeError maps a service error onto a status and the error envelope.
// Unknown errors are logged and reported as 500 without details.
func writeError(c echo.Context, log *slog.Logger, err error) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			log.Warn("request rejected", slog.String("code", m.code), sl.Err(err))
			return c.JSON(m.status, response.ErrorResponseWithDetails(m.code, m.target.Error()))
		}
	}

	log.Error("request failed", sl.Err(err))
	return c.JSON(http.StatusInternalServerError, response.ErrInternal)
}

// bind decodes and validates req. On failure the 400 response has
// already been written and handled is true.
func bind(c echo.Context, req interface{}) (handled bool, err error) {
	if err := c.Bind(req); err != nil {
		return true, c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return true, c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	return false, nil
}

func invalidParam(c echo.Context, name string) error {
	return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid "+name))
}

func currentUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextUserID).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func pageOf(q dto.PageQuery) (int, int) {
	lr := dto.NewListResponse(nil, 0, q)
	return lr.Page, lr.PerPage
}
