// Package vaccinationhdl xử lý các request thuộc domain vaccination.
package vaccinationhdl

import (
	"fmt"

	basehdl "newborn_tracking/internal/api/base/handler"
	vaccinationdto "newborn_tracking/internal/api/vaccination/dto"
	models "newborn_tracking/internal/api/vaccination/models"
	vaccinationsvc "newborn_tracking/internal/api/vaccination/service"
)

// BrandHandler xử lý các request liên quan đến nhãn hiệu vaccine
type BrandHandler struct {
	*basehdl.BaseHandler[models.Brand, vaccinationdto.BrandCreateInput, vaccinationdto.BrandUpdateInput]
}

// NewBrandHandler tạo instance mới của BrandHandler
func NewBrandHandler() (*BrandHandler, error) {
	brandService, err := vaccinationsvc.NewBrandService()
	if err != nil {
		return nil, fmt.Errorf("failed to create brand service: %v", err)
	}
	return &BrandHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Brand, vaccinationdto.BrandCreateInput, vaccinationdto.BrandUpdateInput](brandService),
	}, nil
}
