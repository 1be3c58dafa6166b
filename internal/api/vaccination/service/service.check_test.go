// Package vaccinationsvc - Test đánh giá trạng thái lịch tiêm (hoàn thành / chưa tiêm mũi nào).
package vaccinationsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "newborn_tracking/internal/api/vaccination/models"
)

func TestEvaluateCompletion_DuMuiToanBoPhacDo(t *testing.T) {
	v1 := primitive.NewObjectID()
	v2 := primitive.NewObjectID()
	assignments := []models.AssignedVaccine{
		{VaccineID: v1, TotalDoses: 3},
		{VaccineID: v2, TotalDoses: 1},
	}
	counts := map[primitive.ObjectID]int{v1: 3, v2: 1}

	status, overdose := evaluateCompletion(assignments, counts)
	assert.Equal(t, completionReady, status)
	assert.Nil(t, overdose)
}

func TestEvaluateCompletion_ConPhacDoThieuMui(t *testing.T) {
	v1 := primitive.NewObjectID()
	v2 := primitive.NewObjectID()
	assignments := []models.AssignedVaccine{
		{VaccineID: v1, TotalDoses: 3},
		{VaccineID: v2, TotalDoses: 2},
	}
	// v2 mới tiêm 1/2 mũi
	counts := map[primitive.ObjectID]int{v1: 3, v2: 1}

	status, _ := evaluateCompletion(assignments, counts)
	assert.Equal(t, completionIncomplete, status)
}

func TestEvaluateCompletion_ChuaCoHoSoTiemNao(t *testing.T) {
	v1 := primitive.NewObjectID()
	assignments := []models.AssignedVaccine{{VaccineID: v1, TotalDoses: 1}}

	status, _ := evaluateCompletion(assignments, map[primitive.ObjectID]int{})
	assert.Equal(t, completionIncomplete, status)
}

func TestEvaluateCompletion_VuotPhacDoLaBatThuong(t *testing.T) {
	v1 := primitive.NewObjectID()
	assignments := []models.AssignedVaccine{{VaccineID: v1, TotalDoses: 2}}
	counts := map[primitive.ObjectID]int{v1: 3}

	status, overdose := evaluateCompletion(assignments, counts)
	assert.Equal(t, completionOverdose, status)
	if assert.NotNil(t, overdose) {
		assert.Equal(t, v1, overdose.VaccineID)
	}
}

func TestEvaluateCompletion_DaGuiThongBaoTruocDo(t *testing.T) {
	// Đủ mũi nhưng mọi phác đồ đều đã sentComplete: không gửi lại
	v1 := primitive.NewObjectID()
	assignments := []models.AssignedVaccine{
		{VaccineID: v1, TotalDoses: 1, SentComplete: true},
	}
	counts := map[primitive.ObjectID]int{v1: 1}

	status, _ := evaluateCompletion(assignments, counts)
	assert.Equal(t, completionAlreadySent, status)
}

func TestEvaluateCompletion_KhongCoPhacDo(t *testing.T) {
	status, _ := evaluateCompletion(nil, map[primitive.ObjectID]int{})
	assert.Equal(t, completionIncomplete, status)
}

func TestIsUnvaccinated_ChuaTiemMuiNao(t *testing.T) {
	v1 := primitive.NewObjectID()
	v2 := primitive.NewObjectID()
	assignments := []models.AssignedVaccine{
		{VaccineID: v1, TotalDoses: 3},
		{VaccineID: v2, TotalDoses: 1},
	}

	assert.True(t, isUnvaccinated(assignments, map[primitive.ObjectID]int{}))
}

func TestIsUnvaccinated_DaTiemItNhatMotMui(t *testing.T) {
	v1 := primitive.NewObjectID()
	v2 := primitive.NewObjectID()
	assignments := []models.AssignedVaccine{
		{VaccineID: v1, TotalDoses: 3},
		{VaccineID: v2, TotalDoses: 1},
	}
	counts := map[primitive.ObjectID]int{v2: 1}

	assert.False(t, isUnvaccinated(assignments, counts))
}

func TestIsUnvaccinated_KhongCoPhacDo(t *testing.T) {
	assert.False(t, isUnvaccinated(nil, map[primitive.ObjectID]int{}))
}
