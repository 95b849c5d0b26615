package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"washly/config"
	"washly/infras/kafka"
	"washly/infras/otel"
	"washly/internal/domains/notification/model"
	"washly/internal/domains/notification/model/dto"
	"washly/internal/domains/notification/repository"
	userModel "washly/internal/domains/user/model"
	userRepo "washly/internal/domains/user/repository"
	"washly/shared"
	"washly/shared/constant"
	gDto "washly/shared/dto"
	"washly/shared/failure"
	gModel "washly/shared/model"
	"washly/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	senderSystem = "system"
)

// Notification persists per-user notifications and mirrors them onto the
// event bus. Callers treat dispatch as best effort, a failed notification
// never fails the operation that triggered it.
type Notification interface {
	NotifyUser(ctx context.Context, userID, title, message string) error
	NotifyAdmins(ctx context.Context, title, message string) error
	GetMine(ctx context.Context, req gDto.QueryParams, userID string) (dto.GetNotificationsResponse, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type serviceImpl struct {
	repo     repository.Notification
	userRepo userRepo.User
	kafka    kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Notification, userRepo userRepo.User, kafkaClient kafka.Client, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		kafka:    kafkaClient,
		cfg:      cfg,
		otel:     otel,
	}
}

func newNotification(userID, title, message string) model.Notification {
	return model.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   title,
		Message: message,
		Status:  model.StatusUnread,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  senderSystem,
			ModifiedBy: senderSystem,
		},
	}
}

func (s *serviceImpl) publish(ctx context.Context, notification model.Notification) {
	if s.kafka == nil {
		return
	}

	event := dto.NotificationEvent{
		NotificationID: notification.ID,
		UserID:         notification.UserID,
		Title:          notification.Title,
		Message:        notification.Message,
	}

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingEvents, kafka.Message{
		Key:   notification.UserID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", notification.UserID).Msg("failed to publish notification event")
	}
}

func (s *serviceImpl) NotifyUser(ctx context.Context, userID, title, message string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NotifyUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	notification := newNotification(userID, title, message)

	if err = s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to persist notification")

		return fmt.Errorf("failed to persist notification: %w", err)
	}

	s.publish(ctx, notification)

	return nil
}

func (s *serviceImpl) NotifyAdmins(ctx context.Context, title, message string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NotifyAdmins")
	defer scope.End()
	defer scope.TraceIfError(err)

	adminFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldRole,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.RoleAdmin,
				Table:    userModel.TableName,
			},
		},
	}

	admins, err := s.userRepo.GetAll(ctx, gDto.QueryParams{}, adminFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list admins for broadcast")

		return fmt.Errorf("failed to list admins for broadcast: %w", err)
	}

	if len(admins) == 0 {
		return nil
	}

	notifications := make([]model.Notification, len(admins))
	for i, admin := range admins {
		notifications[i] = newNotification(admin.ID, title, message)
	}

	if err = s.repo.InsertBulk(ctx, notifications); err != nil {
		log.Error().Err(err).Msg("failed to persist admin notifications")

		return fmt.Errorf("failed to persist admin notifications: %w", err)
	}

	for _, notification := range notifications {
		s.publish(ctx, notification)
	}

	return nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams, userID string) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(userID, model.FieldUserID, model.TableName)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	notification, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get notification")

		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.ID == constant.Empty {
		return failure.NotFound("notification not found")
	}

	if notification.UserID != userID {
		return failure.Forbidden("this notification does not belong to you")
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusRead,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark notification read")

		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}
