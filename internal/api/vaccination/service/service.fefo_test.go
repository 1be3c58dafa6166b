// Package vaccinationsvc - Test chọn lô theo nguyên tắc First-Expire-First-Out.
package vaccinationsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	models "newborn_tracking/internal/api/vaccination/models"
)

func TestSelectFEFOBatch_ChonLoHetHanSomNhat(t *testing.T) {
	batches := []models.Batch{
		{BatchNumber: "L-03", Stock: 5, ExpirationDate: 3000},
		{BatchNumber: "L-01", Stock: 2, ExpirationDate: 1000},
		{BatchNumber: "L-02", Stock: 8, ExpirationDate: 2000},
	}

	idx, batch := SelectFEFOBatch(batches)
	assert.Equal(t, 1, idx)
	if assert.NotNil(t, batch) {
		assert.Equal(t, "L-01", batch.BatchNumber)
	}
}

func TestSelectFEFOBatch_BoQuaLoHetTonKho(t *testing.T) {
	// Lô hết hạn sớm nhất đã cạn, phải chọn lô kế tiếp còn hàng
	batches := []models.Batch{
		{BatchNumber: "L-01", Stock: 0, ExpirationDate: 1000},
		{BatchNumber: "L-02", Stock: 3, ExpirationDate: 2000},
	}

	idx, batch := SelectFEFOBatch(batches)
	assert.Equal(t, 1, idx)
	if assert.NotNil(t, batch) {
		assert.Equal(t, "L-02", batch.BatchNumber)
	}
}

func TestSelectFEFOBatch_CungHanUuTienLoDungTruoc(t *testing.T) {
	batches := []models.Batch{
		{BatchNumber: "L-01", Stock: 1, ExpirationDate: 1000},
		{BatchNumber: "L-02", Stock: 9, ExpirationDate: 1000},
	}

	idx, batch := SelectFEFOBatch(batches)
	assert.Equal(t, 0, idx)
	if assert.NotNil(t, batch) {
		assert.Equal(t, "L-01", batch.BatchNumber)
	}
}

func TestSelectFEFOBatch_KhongConLoNao(t *testing.T) {
	idx, batch := SelectFEFOBatch(nil)
	assert.Equal(t, -1, idx)
	assert.Nil(t, batch)

	idx, batch = SelectFEFOBatch([]models.Batch{
		{BatchNumber: "L-01", Stock: 0, ExpirationDate: 1000},
		{BatchNumber: "L-02", Stock: 0, ExpirationDate: 2000},
	})
	assert.Equal(t, -1, idx)
	assert.Nil(t, batch)
}

func TestSelectFEFOBatch_TraVeBanSao(t *testing.T) {
	// Batch trả về là bản sao, sửa nó không được ảnh hưởng mảng gốc
	batches := []models.Batch{
		{BatchNumber: "L-01", Stock: 5, ExpirationDate: 1000},
	}

	_, batch := SelectFEFOBatch(batches)
	batch.Stock = 0
	assert.Equal(t, 5, batches[0].Stock)
}
