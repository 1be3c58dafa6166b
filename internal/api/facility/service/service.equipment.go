package facilitysvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "newborn_tracking/internal/api/base/service"
	models "newborn_tracking/internal/api/facility/models"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/global"
)

// EquipmentService là cấu trúc chứa các phương thức liên quan đến thiết bị y tế
type EquipmentService struct {
	*basesvc.BaseServiceMongoImpl[models.Equipment]
}

// NewEquipmentService tạo mới EquipmentService
func NewEquipmentService() (*EquipmentService, error) {
	equipmentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Equipments)
	if !exist {
		return nil, fmt.Errorf("failed to get equipments collection: %v", common.ErrNotFound)
	}

	return &EquipmentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Equipment](equipmentCollection),
	}, nil
}

// SetStatus chuyển trạng thái của thiết bị (Available / Not Available)
func (s *EquipmentService) SetStatus(ctx context.Context, equipmentID primitive.ObjectID, status string) (*models.Equipment, error) {
	if status != models.EquipmentStatusAvailable && status != models.EquipmentStatusNotAvailable {
		return nil, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Trạng thái thiết bị %q không hợp lệ", status), common.StatusBadRequest, nil)
	}
	updated, err := s.UpdateById(ctx, equipmentID, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
