// Package facilitysvc - service quản lý phòng xét nghiệm, thiết bị và bảo trì.
package facilitysvc

import (
	"fmt"

	basesvc "newborn_tracking/internal/api/base/service"
	models "newborn_tracking/internal/api/facility/models"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/global"
)

// LaboratoryService là cấu trúc chứa các phương thức liên quan đến phòng xét nghiệm
type LaboratoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Laboratory]
}

// NewLaboratoryService tạo mới LaboratoryService
func NewLaboratoryService() (*LaboratoryService, error) {
	labCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Laboratories)
	if !exist {
		return nil, fmt.Errorf("failed to get laboratories collection: %v", common.ErrNotFound)
	}

	return &LaboratoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Laboratory](labCollection),
	}, nil
}
