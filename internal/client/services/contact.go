package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
)

// DefaultContactName is sent when the signed-in profile has no name.
const DefaultContactName = "User"

type QueriesAPI interface {
	CreateQuery(ctx context.Context, query models.QueryRequest) error
}

type ContactService interface {
	// DefaultMobile is the value pre-filled into the mobile field.
	DefaultMobile() string
	Send(ctx context.Context, mobile, message string) error
}

type contactService struct {
	api     QueriesAPI
	session Session
}

func NewContactService(api QueriesAPI, s Session) ContactService {
	return &contactService{api: api, session: s}
}

func (s *contactService) DefaultMobile() string {
	if u := s.session.State().User; u != nil {
		return u.Phone
	}
	return ""
}

func (s *contactService) Send(ctx context.Context, mobile, message string) error {
	if err := requireUser(s.session); err != nil {
		return err
	}
	user := s.session.State().User
	if user == nil {
		return ErrLoginRequired
	}

	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		mobile = strings.TrimSpace(user.Phone)
	}
	if mobile == "" {
		return fmt.Errorf("send message: mobile number is required: %w", ErrInvalidInput)
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return fmt.Errorf("send message: message is required: %w", ErrInvalidInput)
	}
	name := strings.TrimSpace(user.Name)
	if name == "" {
		name = DefaultContactName
	}

	if err := s.api.CreateQuery(ctx, models.QueryRequest{Name: name, Mobile: mobile, Message: message}); err != nil {
		return fmt.Errorf("send message: %w", authFailure(ctx, s.session, err))
	}
	return nil
}
