package repository

import (
	"github.com/jackc/pgx/v4/pgxpool"

	redisapp "artfolio/internal/storage/redis"
)

// Repository bundles every repository over one pool.
type Repository struct {
	User       UserRepository
	Token      TokenRepository
	Category   CategoryRepository
	Tag        TagRepository
	Artwork    ArtworkRepository
	Blog       BlogRepository
	Homepage   HomepageRepository
	SocialLink SocialLinkRepository
	Import     ImportRepository
	Subscriber SubscriberRepository
}

func NewRepository(db *pgxpool.Pool, redis *redisapp.Client) *Repository {
	tags := NewTagRepo(db)

	return &Repository{
		User:       NewUserRepository(db),
		Token:      NewRedisTokenRepo(redis),
		Category:   NewCategoryRepo(db),
		Tag:        tags,
		Artwork:    NewArtworkRepo(db, tags),
		Blog:       NewBlogRepo(db, tags),
		Homepage:   NewHomepageRepo(db),
		SocialLink: NewSocialLinkRepo(db),
		Import:     NewImportRepo(db),
		Subscriber: NewSubscriberRepo(db),
	}
}
