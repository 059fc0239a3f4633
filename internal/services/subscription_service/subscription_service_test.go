package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/logger/handlers/slogdiscard"
	"artfolio/internal/storage"
)

type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) CreateSubscriber(ctx context.Context, s models.Subscriber) (models.Subscriber, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(models.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) DeleteSubscriber(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSubscriberRepository) Activate(ctx context.Context, token uuid.UUID) (models.Subscriber, bool, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(models.Subscriber), args.Bool(1), args.Error(2)
}

func (m *MockSubscriberRepository) Deactivate(ctx context.Context, token uuid.UUID) (models.Subscriber, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(models.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) SubscriberByEmail(ctx context.Context, email string) (models.Subscriber, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) ListSubscribers(ctx context.Context, active *bool, page, perPage int) ([]models.Subscriber, int, error) {
	args := m.Called(ctx, active, page, perPage)
	return args.Get(0).([]models.Subscriber), args.Int(1), args.Error(2)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

const siteURL = "https://art.example/"

func newService() (*SubscriptionService, *MockSubscriberRepository, *MockSender) {
	repo := new(MockSubscriberRepository)
	sender := new(MockSender)
	return NewSubscriptionService(slogdiscard.NewDiscardLogger(), repo, sender, siteURL), repo, sender
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	email := strings.ToLower(gofakeit.Email())

	t.Run("pending subscriber with distinct tokens gets a confirmation link", func(t *testing.T) {
		service, repo, sender := newService()

		created := models.Subscriber{
			ID:                uuid.New(),
			Email:             email,
			ConfirmationToken: uuid.New(),
			UnsubscribeToken:  uuid.New(),
		}
		repo.On("CreateSubscriber", ctx, mock.MatchedBy(func(s models.Subscriber) bool {
			return s.ConfirmationToken != uuid.Nil &&
				s.UnsubscribeToken != uuid.Nil &&
				s.ConfirmationToken != s.UnsubscribeToken &&
				!s.IsActive
		})).Return(created, nil).Once()

		var body string
		sender.On("Send", ctx, email, "Confirm your subscription", mock.Anything).
			Run(func(args mock.Arguments) { body = args.String(3) }).
			Return(nil).Once()

		sub, err := service.Subscribe(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, created.ID, sub.ID)
		assert.Contains(t, body, "https://art.example/api/v1/subscribe/confirm/"+created.ConfirmationToken.String())
		assert.NotContains(t, body, created.UnsubscribeToken.String())
		sender.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		service, repo, sender := newService()
		repo.On("CreateSubscriber", ctx, mock.Anything).Return(models.Subscriber{}, storage.ErrDuplicateEmail).Once()

		_, err := service.Subscribe(ctx, email)
		assert.ErrorIs(t, err, storage.ErrDuplicateEmail)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("mail failure removes the record", func(t *testing.T) {
		service, repo, sender := newService()
		id := uuid.New()
		boom := errors.New("smtp down")

		repo.On("CreateSubscriber", ctx, mock.Anything).Return(models.Subscriber{ID: id, Email: email}, nil).Once()
		sender.On("Send", ctx, email, mock.Anything, mock.Anything).Return(boom).Once()
		repo.On("DeleteSubscriber", ctx, id).Return(nil).Once()

		_, err := service.Subscribe(ctx, email)
		assert.ErrorIs(t, err, boom)
		repo.AssertExpectations(t)
	})

	t.Run("email is normalised", func(t *testing.T) {
		service, repo, sender := newService()

		repo.On("CreateSubscriber", ctx, mock.MatchedBy(func(s models.Subscriber) bool {
			return s.Email == "someone@example.com"
		})).Return(models.Subscriber{ID: uuid.New(), Email: "someone@example.com"}, nil).Once()
		sender.On("Send", ctx, "someone@example.com", mock.Anything, mock.Anything).Return(nil).Once()

		_, err := service.Subscribe(ctx, "  Someone@Example.COM ")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()
	token := uuid.New()
	sub := models.Subscriber{ID: uuid.New(), Email: "a@example.com", IsActive: true, UnsubscribeToken: uuid.New()}

	t.Run("first confirmation sends the welcome mail", func(t *testing.T) {
		service, repo, sender := newService()

		repo.On("Activate", ctx, token).Return(sub, true, nil).Once()
		sender.On("Send", ctx, sub.Email, "Welcome", mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "https://art.example/api/v1/subscribe/unsubscribe/"+sub.UnsubscribeToken.String())
		})).Return(nil).Once()

		got, err := service.Confirm(ctx, token)
		require.NoError(t, err)
		assert.True(t, got.IsActive)
		sender.AssertExpectations(t)
	})

	t.Run("second confirmation is idempotent", func(t *testing.T) {
		service, repo, sender := newService()

		repo.On("Activate", ctx, token).Return(sub, false, nil).Once()

		got, err := service.Confirm(ctx, token)
		require.NoError(t, err)
		assert.True(t, got.IsActive)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("welcome failure does not fail confirmation", func(t *testing.T) {
		service, repo, sender := newService()

		repo.On("Activate", ctx, token).Return(sub, true, nil).Once()
		sender.On("Send", ctx, sub.Email, "Welcome", mock.Anything).Return(errors.New("smtp down")).Once()

		_, err := service.Confirm(ctx, token)
		assert.NoError(t, err)
	})

	t.Run("unknown token", func(t *testing.T) {
		service, repo, _ := newService()

		repo.On("Activate", ctx, token).Return(models.Subscriber{}, false, storage.ErrNotFound).Once()

		_, err := service.Confirm(ctx, token)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestUnsubscribe(t *testing.T) {
	ctx := context.Background()
	token := uuid.New()

	t.Run("unconfirmed subscriber", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("Deactivate", ctx, token).Return(models.Subscriber{ID: uuid.New(), IsActive: false}, nil).Once()

		sub, err := service.Unsubscribe(ctx, token)
		require.NoError(t, err)
		assert.False(t, sub.IsActive)
	})

	t.Run("unknown token", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("Deactivate", ctx, token).Return(models.Subscriber{}, storage.ErrNotFound).Once()

		_, err := service.Unsubscribe(ctx, token)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
