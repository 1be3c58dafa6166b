package newbornhdl

import (
	"fmt"

	basehdl "newborn_tracking/internal/api/base/handler"
	newborndto "newborn_tracking/internal/api/newborn/dto"
	models "newborn_tracking/internal/api/newborn/models"
	newbornsvc "newborn_tracking/internal/api/newborn/service"
)

// ParentHandler xử lý các request liên quan đến hồ sơ phụ huynh
type ParentHandler struct {
	*basehdl.BaseHandler[models.Parent, newborndto.ParentCreateInput, newborndto.ParentUpdateInput]
}

// NewParentHandler tạo instance mới của ParentHandler
func NewParentHandler() (*ParentHandler, error) {
	parentService, err := newbornsvc.NewParentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create parent service: %v", err)
	}
	return &ParentHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Parent, newborndto.ParentCreateInput, newborndto.ParentUpdateInput](parentService),
	}, nil
}
