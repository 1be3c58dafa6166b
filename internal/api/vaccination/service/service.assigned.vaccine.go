package vaccinationsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "newborn_tracking/internal/api/base/service"
	models "newborn_tracking/internal/api/vaccination/models"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/global"
	"newborn_tracking/internal/utility"
)

// AssignedVaccineService là cấu trúc chứa các phương thức liên quan đến phác đồ tiêm được gán cho trẻ
type AssignedVaccineService struct {
	*basesvc.BaseServiceMongoImpl[models.AssignedVaccine]
	vaccineService *VaccineService
}

// NewAssignedVaccineService tạo mới AssignedVaccineService
func NewAssignedVaccineService() (*AssignedVaccineService, error) {
	assignedCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AssignedVaccines)
	if !exist {
		return nil, fmt.Errorf("failed to get assigned_vaccines collection: %v", common.ErrNotFound)
	}

	vaccineService, err := NewVaccineService()
	if err != nil {
		return nil, err
	}

	return &AssignedVaccineService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AssignedVaccine](assignedCollection),
		vaccineService:       vaccineService,
	}, nil
}

// AssignDefaultSchedule gán phác đồ tiêm chuẩn cho một trẻ mới sinh:
// mỗi vaccine có totalDoses > 0 sinh một bản ghi assigned_vaccines.
// Phác đồ đã tồn tại cho cặp (trẻ, vaccine) được bỏ qua nhờ unique index.
// Trả về số phác đồ đã gán mới.
func (s *AssignedVaccineService) AssignDefaultSchedule(ctx context.Context, newbornID primitive.ObjectID) (int, error) {
	vaccines, err := s.vaccineService.Find(ctx, bson.M{"totalDoses": bson.M{"$gt": 0}}, nil)
	if err != nil {
		return 0, err
	}

	assigned := 0
	now := utility.CurrentTimeInMilli()
	for _, vaccine := range vaccines {
		_, err := s.InsertOne(ctx, models.AssignedVaccine{
			NewbornID:  newbornID,
			VaccineID:  vaccine.ID,
			TotalDoses: vaccine.TotalDoses,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			if errors.Is(err, common.ErrMongoDuplicate) {
				continue
			}
			return assigned, err
		}
		assigned++
	}

	logrus.WithFields(logrus.Fields{
		"newbornId": newbornID.Hex(),
		"assigned":  assigned,
	}).Info("✅ AssignedVaccine: Đã gán phác đồ tiêm chuẩn cho trẻ")
	return assigned, nil
}

// AssignVaccine gán thêm một vaccine ngoài phác đồ chuẩn cho trẻ.
// totalDoses lấy theo phác đồ chuẩn của vaccine nếu không truyền vào.
func (s *AssignedVaccineService) AssignVaccine(ctx context.Context, newbornID, vaccineID primitive.ObjectID, totalDoses int) (*models.AssignedVaccine, error) {
	vaccine, err := s.vaccineService.FindOneById(ctx, vaccineID)
	if err != nil {
		return nil, err
	}
	if totalDoses <= 0 {
		totalDoses = vaccine.TotalDoses
	}
	if totalDoses <= 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Số mũi của phác đồ phải lớn hơn 0", common.StatusBadRequest, nil)
	}

	now := utility.CurrentTimeInMilli()
	inserted, err := s.InsertOne(ctx, models.AssignedVaccine{
		NewbornID:  newbornID,
		VaccineID:  vaccineID,
		TotalDoses: totalDoses,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(common.ErrCodeBusinessState, "Trẻ đã được gán phác đồ cho vaccine này", common.StatusConflict, err)
		}
		return nil, err
	}
	return &inserted, nil
}

// FindByNewborn trả về toàn bộ phác đồ tiêm của một trẻ
func (s *AssignedVaccineService) FindByNewborn(ctx context.Context, newbornID primitive.ObjectID) ([]models.AssignedVaccine, error) {
	return s.Find(ctx, bson.M{"newbornId": newbornID}, nil)
}
