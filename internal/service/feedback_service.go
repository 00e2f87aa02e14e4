package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checklist-service/internal/model"
	"checklist-service/internal/repository"
)

type FeedbackService struct {
	scopes   ScopeResolver
	feedback FeedbackStore
}

func NewFeedbackService(scopes ScopeResolver, feedback FeedbackStore) *FeedbackService {
	return &FeedbackService{scopes: scopes, feedback: feedback}
}

func (s *FeedbackService) ListComplaints(ctx context.Context, principal model.Principal) ([]model.Complaint, error) {
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}
	return s.feedback.ListComplaints(ctx, scope)
}

func (s *FeedbackService) CreateComplaint(ctx context.Context, principal model.Principal, message string) (*model.Complaint, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	complaint := &model.Complaint{
		AuthorID:   principal.UserID,
		AuthorName: principal.Name,
		Location:   principal.Location,
		Message:    message,
	}
	if err := s.feedback.CreateComplaint(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

func (s *FeedbackService) ListSuggestions(ctx context.Context, principal model.Principal) ([]model.Suggestion, error) {
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}
	return s.feedback.ListSuggestions(ctx, scope)
}

func (s *FeedbackService) CreateSuggestion(ctx context.Context, principal model.Principal, message string) (*model.Suggestion, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	suggestion := &model.Suggestion{
		AuthorID:   principal.UserID,
		AuthorName: principal.Name,
		Location:   principal.Location,
		Message:    message,
	}
	if err := s.feedback.CreateSuggestion(ctx, suggestion); err != nil {
		return nil, err
	}
	return suggestion, nil
}

func (s *FeedbackService) ListNotifications(ctx context.Context, principal model.Principal, unreadOnly bool) ([]model.Notification, error) {
	return s.feedback.ListNotifications(ctx, principal.UserID, unreadOnly)
}

func (s *FeedbackService) MarkNotificationRead(ctx context.Context, principal model.Principal, notificationID uuid.UUID) error {
	err := s.feedback.MarkNotificationRead(ctx, principal.UserID, notificationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *FeedbackService) resolveScope(ctx context.Context, principal model.Principal) (model.Scope, error) {
	scope, err := s.scopes.ResolveScope(ctx, principal)
	if err != nil {
		if errors.Is(err, repository.ErrScopeUnsupported) {
			return model.Scope{}, ErrPermissionDenied
		}
		return model.Scope{}, err
	}
	return scope, nil
}
