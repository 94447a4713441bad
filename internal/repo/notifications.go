package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/SergeyBogomolovv/orderflow/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type notificationRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewNotificationRepo(db *sqlx.DB) *notificationRepo {
	return &notificationRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *notificationRepo) SaveNotification(ctx context.Context, n entities.Notification) error {
	query, args := r.qb.Insert("notifications").
		Columns(notificationColumns...).
		Values(
			n.ID, n.UserID, string(n.Type), n.Title, n.Message,
			n.IsRead, nullString(n.RelatedEntityID), n.CreatedAt,
		).
		MustSql()

	if _, err := trm.Executor(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]entities.Notification, error) {
	where := sq.Eq{"user_id": userID}
	if unreadOnly {
		where["is_read"] = false
	}

	query, args := r.qb.Select(notificationColumns...).
		From("notifications").
		Where(where).
		OrderBy("created_at DESC", "id").
		MustSql()

	var rows []Notification
	if err := trm.Executor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select notifications: %w", err)
	}

	result := make([]entities.Notification, 0, len(rows))
	for _, row := range rows {
		result = append(result, NotificationToEntity(row))
	}
	return result, nil
}

func (r *notificationRepo) CountUnread(ctx context.Context, userID int64) (int64, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("notifications").
		Where(sq.Eq{"user_id": userID, "is_read": false}).
		MustSql()

	var count int64
	if err := trm.Executor(ctx, r.db).GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *notificationRepo) GetNotificationByID(ctx context.Context, id string) (entities.Notification, error) {
	if _, err := uuid.Parse(id); err != nil {
		return entities.Notification{}, entities.ErrNotificationNotFound
	}

	query, args := r.qb.Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"id": id}).
		MustSql()

	var row Notification
	err := trm.Executor(ctx, r.db).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Notification{}, entities.ErrNotificationNotFound
	}
	if err != nil {
		return entities.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}
	return NotificationToEntity(row), nil
}

func (r *notificationRepo) MarkAsRead(ctx context.Context, id string) error {
	query, args := r.qb.Update("notifications").
		Set("is_read", true).
		Where(sq.Eq{"id": id}).
		MustSql()

	if _, err := trm.Executor(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}

func (r *notificationRepo) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	query, args := r.qb.Update("notifications").
		Set("is_read", true).
		Where(sq.Eq{"user_id": userID, "is_read": false}).
		MustSql()

	res, err := trm.Executor(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected, nil
}
