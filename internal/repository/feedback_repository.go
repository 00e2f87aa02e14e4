package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checklist-service/internal/model"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func applyAuthorScope(query *gorm.DB, scope model.Scope) *gorm.DB {
	switch scope.Type {
	case model.ScopeAll:
		return query
	case model.ScopeLocation:
		return query.Where("location = ?", scope.Location)
	case model.ScopeOperator:
		return query.Where("author_id = ?", scope.UserID)
	default:
		return query.Where("1=0")
	}
}

func (r *FeedbackRepository) ListComplaints(ctx context.Context, scope model.Scope) ([]model.Complaint, error) {
	query := applyAuthorScope(r.db.WithContext(ctx).Model(&model.Complaint{}), scope)
	var complaints []model.Complaint
	if err := query.Order("created_at DESC").Limit(200).Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *FeedbackRepository) CreateComplaint(ctx context.Context, complaint *model.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

func (r *FeedbackRepository) ListSuggestions(ctx context.Context, scope model.Scope) ([]model.Suggestion, error) {
	query := applyAuthorScope(r.db.WithContext(ctx).Model(&model.Suggestion{}), scope)
	var suggestions []model.Suggestion
	if err := query.Order("created_at DESC").Limit(200).Find(&suggestions).Error; err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *FeedbackRepository) CreateSuggestion(ctx context.Context, suggestion *model.Suggestion) error {
	return r.db.WithContext(ctx).Create(suggestion).Error
}

func (r *FeedbackRepository) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]model.Notification, error) {
	query := r.db.WithContext(ctx).Model(&model.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = FALSE")
	}
	var notifications []model.Notification
	if err := query.Order("created_at DESC").Limit(200).Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *FeedbackRepository) CreateNotifications(ctx context.Context, notifications []model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&notifications).Error
}

func (r *FeedbackRepository) MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
