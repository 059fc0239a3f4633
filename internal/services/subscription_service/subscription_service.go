package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/mailer"
	"artfolio/internal/metrics"
	"artfolio/internal/repository"
)

const (
	confirmPath     = "/api/v1/subscribe/confirm/"
	unsubscribePath = "/api/v1/subscribe/unsubscribe/"
)

var (
	confirmTmpl = template.Must(template.New("confirm").Parse(
		`<p>Thanks for subscribing!</p>` +
			`<p>Please confirm your subscription: <a href="{{.Link}}">{{.Link}}</a></p>` +
			`<p>If you did not subscribe, ignore this message.</p>`))
	welcomeTmpl = template.Must(template.New("welcome").Parse(
		`<p>Your subscription is confirmed. You will hear about new artworks and posts.</p>` +
			`<p>To stop receiving updates: <a href="{{.Link}}">{{.Link}}</a></p>`))
)

// SubscriptionService runs the double opt-in newsletter ledger.
type SubscriptionService struct {
	log     *slog.Logger
	repo    repository.SubscriberRepository
	mail    mailer.Sender
	siteURL string
}

func NewSubscriptionService(log *slog.Logger, repo repository.SubscriberRepository, mail mailer.Sender, siteURL string) *SubscriptionService {
	return &SubscriptionService{
		log:     log,
		repo:    repo,
		mail:    mail,
		siteURL: strings.TrimRight(siteURL, "/"),
	}
}

// Subscribe records a pending subscriber and mails the confirmation link.
// If the mail cannot be sent the record is removed again.
func (s *SubscriptionService) Subscribe(ctx context.Context, email string) (models.Subscriber, error) {
	const op = "subscription_service.Subscribe"

	email = strings.ToLower(strings.TrimSpace(email))

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	if email == "" {
		return models.Subscriber{}, fmt.Errorf("%s: email is required: %w", op, models.ErrInvalidInput)
	}

	sub, err := s.repo.CreateSubscriber(ctx, models.Subscriber{
		Email:             email,
		ConfirmationToken: uuid.New(),
		UnsubscribeToken:  uuid.New(),
	})
	if err != nil {
		log.Warn("failed to create subscriber", sl.Err(err))
		return models.Subscriber{}, fmt.Errorf("%s: %w", op, err)
	}

	body, err := render(confirmTmpl, s.siteURL+confirmPath+sub.ConfirmationToken.String())
	if err == nil {
		err = s.mail.Send(ctx, email, "Confirm your subscription", body)
	}
	countMail("confirm", err)
	if err != nil {
		log.Error("failed to send confirmation", sl.Err(err))
		if delErr := s.repo.DeleteSubscriber(ctx, sub.ID); delErr != nil {
			log.Error("failed to remove subscriber", sl.Err(delErr))
		}
		return models.Subscriber{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("subscriber pending confirmation", slog.String("id", sub.ID.String()))

	return sub, nil
}

// Confirm activates the subscriber owning token. Confirming twice is a no-op;
// the welcome mail goes out on activation only.
func (s *SubscriptionService) Confirm(ctx context.Context, token uuid.UUID) (models.Subscriber, error) {
	const op = "subscription_service.Confirm"

	log := s.log.With(slog.String("op", op))

	sub, activated, err := s.repo.Activate(ctx, token)
	if err != nil {
		return models.Subscriber{}, fmt.Errorf("%s: %w", op, err)
	}

	if !activated {
		log.Debug("already active", slog.String("id", sub.ID.String()))
		return sub, nil
	}

	log.Info("subscriber confirmed", slog.String("id", sub.ID.String()))

	body, err := render(welcomeTmpl, s.siteURL+unsubscribePath+sub.UnsubscribeToken.String())
	if err == nil {
		err = s.mail.Send(ctx, sub.Email, "Welcome", body)
	}
	countMail("welcome", err)
	if err != nil {
		log.Warn("failed to send welcome mail", sl.Err(err))
	}

	return sub, nil
}

// Unsubscribe deactivates the subscriber owning token, confirmed or not.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, token uuid.UUID) (models.Subscriber, error) {
	const op = "subscription_service.Unsubscribe"

	sub, err := s.repo.Deactivate(ctx, token)
	if err != nil {
		return models.Subscriber{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("subscriber deactivated", slog.String("op", op), slog.String("id", sub.ID.String()))

	return sub, nil
}

func (s *SubscriptionService) ListSubscribers(ctx context.Context, active *bool, page, perPage int) ([]models.Subscriber, int, error) {
	const op = "subscription_service.ListSubscribers"

	subs, total, err := s.repo.ListSubscribers(ctx, active, page, perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return subs, total, nil
}

func render(t *template.Template, link string) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, struct{ Link string }{link}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func countMail(kind string, err error) {
	result := "sent"
	if err != nil {
		result = "failed"
	}
	metrics.SubscriptionEmailsTotal.WithLabelValues(kind, result).Inc()
}
