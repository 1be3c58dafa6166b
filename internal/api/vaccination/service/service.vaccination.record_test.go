// Package vaccinationsvc - Test validate tham số và dựng mũi tiêm kế tiếp.
package vaccinationsvc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "newborn_tracking/internal/api/vaccination/models"
	"newborn_tracking/internal/common"
)

func hopLamParams() RecordDoseParams {
	return RecordDoseParams{
		NewbornID:      primitive.NewObjectID(),
		VaccineID:      primitive.NewObjectID(),
		AdministeredBy: primitive.NewObjectID(),
		DateGiven:      1700000000000,
		Status:         models.DoseStatusCompleted,
	}
}

func TestValidateRecordDoseParams_DayDuThongTin(t *testing.T) {
	assert.NoError(t, validateRecordDoseParams(hopLamParams()))
}

func TestValidateRecordDoseParams_ThieuTruongBatBuoc(t *testing.T) {
	// Thiếu toàn bộ trường bắt buộc
	err := validateRecordDoseParams(RecordDoseParams{})
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeValidationInput.Code, appErr.Code.Code)
	assert.Equal(t, common.StatusBadRequest, appErr.StatusCode)

	details, ok := appErr.Details.(map[string]interface{})
	require.True(t, ok)
	missing, ok := details["missingFields"].([]string)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"newbornId", "vaccineId", "administeredBy", "dateGiven", "status"}, missing)
}

func TestValidateRecordDoseParams_ThieuMotTruong(t *testing.T) {
	params := hopLamParams()
	params.AdministeredBy = primitive.NilObjectID
	err := validateRecordDoseParams(params)
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	details := appErr.Details.(map[string]interface{})
	assert.Equal(t, []string{"administeredBy"}, details["missingFields"])
}

func TestValidateRecordDoseParams_TrangThaiKhongHopLe(t *testing.T) {
	params := hopLamParams()
	params.Status = "unknown"
	err := validateRecordDoseParams(params)
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeValidationInput.Code, appErr.Code.Code)

	// Cả ba trạng thái hợp lệ đều được chấp nhận
	for _, status := range []string{models.DoseStatusCompleted, models.DoseStatusScheduled, models.DoseStatusMissed} {
		params.Status = status
		assert.NoError(t, validateRecordDoseParams(params))
	}
}

func TestNewDose_DoseNumberNoiTiep(t *testing.T) {
	params := hopLamParams()
	batch := &models.Batch{BatchNumber: "LO-001", ExpirationDate: 1800000000000}

	// Mũi thứ N có doseNumber = N với N = 1, 2, 3
	for _, doseCount := range []int{0, 1, 2} {
		dose := newDose(params, batch, doseCount)
		assert.Equal(t, doseCount+1, dose.DoseNumber)
	}
}

func TestNewDose_GiuNgayTiemVaVetLo(t *testing.T) {
	params := hopLamParams()
	params.Status = models.DoseStatusMissed
	params.NextDueDate = 1705000000000
	params.Remarks = "Hoãn do sốt"
	batch := &models.Batch{BatchNumber: "LO-002", ExpirationDate: 1800000000000}

	dose := newDose(params, batch, 1)
	assert.Equal(t, params.DateGiven, dose.DateGiven)
	assert.Equal(t, models.DoseStatusMissed, dose.Status)
	assert.Equal(t, params.NextDueDate, dose.NextDueDate)
	assert.Equal(t, params.AdministeredBy, dose.AdministeredBy)
	assert.Equal(t, "LO-002", dose.BatchNumber)
	assert.Equal(t, int64(1800000000000), dose.ExpirationDateUsed)
	assert.Equal(t, "Hoãn do sốt", dose.Remarks)
}
