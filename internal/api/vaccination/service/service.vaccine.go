package vaccinationsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "newborn_tracking/internal/api/base/service"
	models "newborn_tracking/internal/api/vaccination/models"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/global"
	"newborn_tracking/internal/utility"
)

// VaccineService là cấu trúc chứa các phương thức liên quan đến vaccine và tồn kho theo lô
type VaccineService struct {
	*basesvc.BaseServiceMongoImpl[models.Vaccine]
}

// NewVaccineService tạo mới VaccineService
func NewVaccineService() (*VaccineService, error) {
	vaccineCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Vaccines)
	if !exist {
		return nil, fmt.Errorf("failed to get vaccines collection: %v", common.ErrNotFound)
	}

	return &VaccineService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Vaccine](vaccineCollection),
	}, nil
}

// ==========================================
// QUẢN LÝ LÔ TỒN KHO
// ==========================================

// AddBatch thêm một lô mới vào vaccine. Số lô phải chưa tồn tại trong vaccine.
func (s *VaccineService) AddBatch(ctx context.Context, vaccineID primitive.ObjectID, batch models.Batch) (*models.Vaccine, error) {
	if batch.BatchNumber == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "Số lô không được để trống", common.StatusBadRequest, nil)
	}
	if batch.Stock < 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Tồn kho của lô không được âm", common.StatusBadRequest, nil)
	}
	batch.AddedAt = utility.CurrentTimeInMilli()

	// Filter loại trừ vaccine đã có lô cùng số, tránh trùng batchNumber
	filter := bson.M{
		"_id":                 vaccineID,
		"batches.batchNumber": bson.M{"$ne": batch.BatchNumber},
	}
	updated, err := s.UpdateOne(ctx, filter, &basesvc.UpdateData{
		Push: map[string]interface{}{"batches": batch},
	}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Phân biệt vaccine không tồn tại với lô bị trùng
			if _, findErr := s.FindOneById(ctx, vaccineID); findErr != nil {
				return nil, findErr
			}
			return nil, common.NewError(common.ErrCodeBusinessState, fmt.Sprintf("Lô %s đã tồn tại trong vaccine này", batch.BatchNumber), common.StatusConflict, nil)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"vaccineId":   vaccineID.Hex(),
		"batchNumber": batch.BatchNumber,
		"stock":       batch.Stock,
	}).Info("📦 Vaccine: Đã thêm lô mới")
	return &updated, nil
}

// UpdateBatch cập nhật tồn kho hoặc hạn dùng của một lô theo số lô
func (s *VaccineService) UpdateBatch(ctx context.Context, vaccineID primitive.ObjectID, batchNumber string, stock int, expirationDate int64) (*models.Vaccine, error) {
	if stock < 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Tồn kho của lô không được âm", common.StatusBadRequest, nil)
	}

	setFields := bson.M{
		"batches.$[elem].stock": stock,
		"updatedAt":             utility.CurrentTimeInMilli(),
	}
	if expirationDate > 0 {
		setFields["batches.$[elem].expirationDate"] = expirationDate
	}

	result, err := s.Collection().UpdateOne(ctx,
		bson.M{"_id": vaccineID},
		bson.M{"$set": setFields},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: bson.A{bson.M{"elem.batchNumber": batchNumber}},
		}),
	)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return nil, common.ErrNotFound
	}
	if result.ModifiedCount == 0 {
		// Vaccine tồn tại nhưng không lô nào khớp số lô, hoặc giá trị không đổi
		vaccine, findErr := s.FindOneById(ctx, vaccineID)
		if findErr != nil {
			return nil, findErr
		}
		for _, b := range vaccine.Batches {
			if b.BatchNumber == batchNumber {
				return &vaccine, nil
			}
		}
		return nil, common.NewError(common.ErrCodeBusinessState, fmt.Sprintf("Không tìm thấy lô %s trong vaccine này", batchNumber), common.StatusNotFound, nil)
	}

	vaccine, err := s.FindOneById(ctx, vaccineID)
	if err != nil {
		return nil, err
	}
	return &vaccine, nil
}

// DecrementBatchStock trừ tồn kho của một lô đi 1 một cách nguyên tử.
// Điều kiện stock > 0 nằm ngay trong arrayFilters nên hai request song song
// không thể đưa tồn kho xuống dưới 0; khi lô đã hết, trả về ErrCodeBusinessStock.
func (s *VaccineService) DecrementBatchStock(ctx context.Context, vaccineID primitive.ObjectID, batchNumber string) error {
	result, err := s.Collection().UpdateOne(ctx,
		bson.M{"_id": vaccineID},
		bson.M{
			"$inc": bson.M{"batches.$[elem].stock": -1},
			"$set": bson.M{"updatedAt": utility.CurrentTimeInMilli()},
		},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: bson.A{bson.M{"elem.batchNumber": batchNumber, "elem.stock": bson.M{"$gt": 0}}},
		}),
	)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return common.ErrNotFound
	}
	if result.ModifiedCount == 0 {
		return common.NewError(common.ErrCodeBusinessStock, fmt.Sprintf("Lô %s đã hết tồn kho", batchNumber), common.StatusBadRequest, nil)
	}
	return nil
}

// RestoreBatchStock hoàn trả 1 liều về lô khi bước ghi mũi tiêm phía sau thất bại
func (s *VaccineService) RestoreBatchStock(ctx context.Context, vaccineID primitive.ObjectID, batchNumber string) error {
	_, err := s.Collection().UpdateOne(ctx,
		bson.M{"_id": vaccineID},
		bson.M{
			"$inc": bson.M{"batches.$[elem].stock": 1},
			"$set": bson.M{"updatedAt": utility.CurrentTimeInMilli()},
		},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: bson.A{bson.M{"elem.batchNumber": batchNumber}},
		}),
	)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"vaccineId":   vaccineID.Hex(),
			"batchNumber": batchNumber,
		}).Error("❌ Vaccine: Không thể hoàn trả tồn kho lô")
		return common.ConvertMongoError(err)
	}
	return nil
}

// ==========================================
// TRUY VẤN CHI TIẾT
// ==========================================

// detailPipeline dựng pipeline join vaccines với brands
func (s *VaccineService) detailPipeline(filter interface{}) mongo.Pipeline {
	if filter == nil {
		filter = bson.M{}
	}
	return mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Brands,
			"localField":   "brandId",
			"foreignField": "_id",
			"as":           "brand",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$brand",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

// FindDetail trả về danh sách vaccine kèm thông tin nhãn hiệu (typed join)
func (s *VaccineService) FindDetail(ctx context.Context, filter interface{}) ([]models.VaccineDetail, error) {
	cursor, err := s.Collection().Aggregate(ctx, s.detailPipeline(filter))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []models.VaccineDetail
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if results == nil {
		results = []models.VaccineDetail{}
	}
	return results, nil
}

// FindDetailById trả về một vaccine kèm nhãn hiệu theo ID
func (s *VaccineService) FindDetailById(ctx context.Context, id primitive.ObjectID) (*models.VaccineDetail, error) {
	results, err := s.FindDetail(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}
	return &results[0], nil
}
