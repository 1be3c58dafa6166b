// Package middleware chứa các middleware xác thực và phân quyền cho API.
package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "newborn_tracking/internal/api/auth/models"
	authsvc "newborn_tracking/internal/api/auth/service"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/global"
	"newborn_tracking/internal/utility"
)

// FindUserByToken tìm user theo JWT token. Token có thể nằm ở field token
// (token mới nhất) hoặc trong mảng tokens (token theo từng thiết bị).
func FindUserByToken(ctx context.Context, userService *authsvc.UserService, token string) (*authmodels.User, error) {
	user, err := userService.BaseServiceMongoImpl.FindOne(ctx, bson.M{"token": token}, nil)
	if err == nil {
		return &user, nil
	}

	user, err = userService.BaseServiceMongoImpl.FindOne(ctx, bson.M{"tokens.jwtToken": token}, nil)
	if err == nil {
		return &user, nil
	}

	user, err = userService.BaseServiceMongoImpl.FindOne(ctx, bson.M{
		"tokens": bson.M{"$elemMatch": bson.M{"jwtToken": token}},
	}, nil)
	if err == nil {
		return &user, nil
	}

	return nil, common.ErrTokenInvalid
}

// AuthMiddleware xác thực JWT token và kiểm tra role của người dùng.
// Nếu roles rỗng thì chỉ cần đăng nhập hợp lệ, không giới hạn role.
// Middleware gán vào Locals: user_id, user, user_role, user_zone
// để các handler phía sau dùng cho zone scoping.
func AuthMiddleware(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			HandleErrorResponse(c, common.NewError(common.ErrCodeAuthToken, "Token phải có định dạng Bearer", common.StatusUnauthorized, nil))
			return nil
		}

		// Kiểm tra chữ ký JWT trước khi tra database
		if _, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, token); err != nil {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		userService, err := authsvc.NewUserService()
		if err != nil {
			HandleErrorResponse(c, common.NewError(common.ErrCodeInternalServer, "Không thể khởi tạo user service", common.StatusInternalServerError, err))
			return nil
		}

		user, err := FindUserByToken(c.Context(), userService, token)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		if user.IsBlock {
			HandleErrorResponse(c, common.ErrAccountDeactive)
			return nil
		}
		if !user.Verified {
			HandleErrorResponse(c, common.ErrAccountNotVerified)
			return nil
		}

		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if user.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				logrus.WithFields(logrus.Fields{
					"user_id":   user.ID.Hex(),
					"user_role": user.Role,
					"required":  roles,
					"path":      c.Path(),
				}).Warn("⚠️ AuthMiddleware: Từ chối truy cập do không đủ quyền")
				HandleErrorResponse(c, common.NewError(common.ErrCodeAuthRole, "Không có quyền truy cập chức năng này", common.StatusForbidden, map[string]interface{}{
					"requiredRoles": roles,
				}))
				return nil
			}
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", *user)
		c.Locals("user_role", user.Role)
		c.Locals("user_zone", user.Zone)

		return c.Next()
	}
}
