// Package newbornsvc - service hồ sơ phụ huynh và trẻ sơ sinh.
package newbornsvc

import (
	"fmt"

	basesvc "newborn_tracking/internal/api/base/service"
	models "newborn_tracking/internal/api/newborn/models"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/global"
)

// ParentService là cấu trúc chứa các phương thức liên quan đến hồ sơ phụ huynh
type ParentService struct {
	*basesvc.BaseServiceMongoImpl[models.Parent]
}

// NewParentService tạo mới ParentService
func NewParentService() (*ParentService, error) {
	parentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Parents)
	if !exist {
		return nil, fmt.Errorf("failed to get parents collection: %v", common.ErrNotFound)
	}

	return &ParentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Parent](parentCollection),
	}, nil
}
