// Package newbornsvc - service hồ sơ trẻ sơ sinh: CRUD + view chi tiết kèm phụ huynh.
package newbornsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "newborn_tracking/internal/api/base/service"
	models "newborn_tracking/internal/api/newborn/models"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/global"
)

// NewbornService là cấu trúc chứa các phương thức liên quan đến hồ sơ trẻ sơ sinh
type NewbornService struct {
	*basesvc.BaseServiceMongoImpl[models.Newborn]
	parentService *ParentService
}

// NewNewbornService tạo mới NewbornService
func NewNewbornService() (*NewbornService, error) {
	newbornCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Newborns)
	if !exist {
		return nil, fmt.Errorf("failed to get newborns collection: %v", common.ErrNotFound)
	}
	parentService, err := NewParentService()
	if err != nil {
		return nil, err
	}

	return &NewbornService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Newborn](newbornCollection),
		parentService:        parentService,
	}, nil
}

// detailPipeline dựng pipeline $lookup newborns → parents cho view NewbornDetail.
func detailPipeline(filter interface{}) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: global.MongoDB_ColNames.Parents},
			{Key: "localField", Value: "motherId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "mother"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$mother"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

// FindDetail trả về danh sách hồ sơ trẻ kèm thông tin phụ huynh (typed join).
func (s *NewbornService) FindDetail(ctx context.Context, filter interface{}) ([]models.NewbornDetail, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := s.Collection().Aggregate(ctx, detailPipeline(filter))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []models.NewbornDetail
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// FindDetailById trả về một hồ sơ trẻ kèm thông tin phụ huynh.
func (s *NewbornService) FindDetailById(ctx context.Context, id primitive.ObjectID) (*models.NewbornDetail, error) {
	results, err := s.FindDetail(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}
	return &results[0], nil
}

// ResolveZone trả về zone của hồ sơ trẻ: nếu input không có zone thì copy từ phụ huynh.
func (s *NewbornService) ResolveZone(ctx context.Context, newborn *models.Newborn) error {
	if newborn.Zone != "" {
		return nil
	}
	parent, err := s.parentService.FindOneById(ctx, newborn.MotherID)
	if err != nil {
		return common.NewError(common.ErrCodeValidationInput, "Không tìm thấy hồ sơ phụ huynh (motherId)", common.StatusBadRequest, err)
	}
	newborn.Zone = parent.Zone
	return nil
}
