// internal/services/engagement_service.go
package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Mythicool/vaporlax/internal/config"
	"github.com/Mythicool/vaporlax/internal/models"
	"github.com/Mythicool/vaporlax/internal/utils"
)

var ErrAlreadySubscribed = errors.New("email already subscribed")

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=3,max=200"`
	Message string `json:"message" validate:"required,min=10"`
}

type VerifyAgeRequest struct {
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

// EngagementService handles the marketing side surfaces: newsletter
// signups, contact-form submissions and the age gate. Submissions are
// held in memory for the session; there is no real mail or CRM backend.
type EngagementService struct {
	config *config.Config

	mtx         sync.Mutex
	subscribers map[string]models.NewsletterSubscription
	messages    []models.ContactMessage
}

func NewEngagementService(cfg *config.Config) *EngagementService {
	return &EngagementService{
		config:      cfg,
		subscribers: make(map[string]models.NewsletterSubscription),
	}
}

func (s *EngagementService) Subscribe(ctx context.Context, req *SubscribeRequest) (*models.NewsletterSubscription, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.subscribers[email]; ok {
		return nil, ErrAlreadySubscribed
	}

	sub := models.NewsletterSubscription{
		ID:           uuid.New(),
		Email:        email,
		SubscribedAt: time.Now(),
	}
	s.subscribers[email] = sub

	logrus.WithField("email", email).Info("Newsletter subscription recorded")
	return &sub, nil
}

func (s *EngagementService) SubmitContact(ctx context.Context, req *ContactRequest) (*models.ContactMessage, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	msg := models.ContactMessage{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:     req.Subject,
		Message:     req.Message,
		SubmittedAt: time.Now(),
	}

	s.mtx.Lock()
	s.messages = append(s.messages, msg)
	s.mtx.Unlock()

	logrus.WithFields(logrus.Fields{
		"message_id": msg.ID,
		"subject":    msg.Subject,
	}).Info("Contact message received")
	return &msg, nil
}

// VerifyAge reports whether the given birth date makes the customer at
// least 21 today. Vape products cannot be sold below that age.
func (s *EngagementService) VerifyAge(req *VerifyAgeRequest) (bool, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return false, err
	}

	birth, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return false, err
	}

	return utils.IsOfAge(birth, time.Now(), 21), nil
}

// SubscriberCount is a read-only selector for the admin-free dashboard
// widgets; it never errors.
func (s *EngagementService) SubscriberCount() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.subscribers)
}
