// Package authsvc - helper kiểm tra quyền admin và truyền userID qua context.
package authsvc

import (
	"context"
	"errors"

	models "newborn_tracking/internal/api/auth/models"
	"newborn_tracking/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsUserAdministrator kiểm tra xem user có role admin không
func IsUserAdministrator(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	userService, err := NewUserService()
	if err != nil {
		return false, err
	}
	user, err := userService.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}

type contextKey string

const userIDContextKey contextKey = "user_id"

// SetUserIDToContext lưu userID vào context
func SetUserIDToContext(ctx context.Context, userID primitive.ObjectID) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// GetUserIDFromContext lấy userID từ context
func GetUserIDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	userID, ok := ctx.Value(userIDContextKey).(primitive.ObjectID)
	return userID, ok
}

// IsUserAdministratorFromContext kiểm tra user trong context có role admin không
func IsUserAdministratorFromContext(ctx context.Context) (bool, error) {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return false, nil
	}
	return IsUserAdministrator(ctx, userID)
}
