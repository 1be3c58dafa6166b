// Package vaccinationsvc - service quản lý vaccine, tồn kho và tiêm chủng.
package vaccinationsvc

import (
	"fmt"

	basesvc "newborn_tracking/internal/api/base/service"
	models "newborn_tracking/internal/api/vaccination/models"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/global"
)

// BrandService là cấu trúc chứa các phương thức liên quan đến nhãn hiệu vaccine
type BrandService struct {
	*basesvc.BaseServiceMongoImpl[models.Brand]
}

// NewBrandService tạo mới BrandService
func NewBrandService() (*BrandService, error) {
	brandCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Brands)
	if !exist {
		return nil, fmt.Errorf("failed to get brands collection: %v", common.ErrNotFound)
	}

	return &BrandService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Brand](brandCollection),
	}, nil
}
