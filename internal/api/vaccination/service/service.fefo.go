package vaccinationsvc

import (
	models "newborn_tracking/internal/api/vaccination/models"
)

// SelectFEFOBatch chọn lô theo nguyên tắc First-Expire-First-Out:
// trong các lô còn tồn kho (stock > 0), lấy lô có expirationDate sớm nhất.
// Khi hai lô cùng hạn, lô đứng trước trong mảng được ưu tiên.
// Trả về index của lô trong mảng và bản sao của lô; trả về (-1, nil)
// khi không còn lô nào có tồn kho.
func SelectFEFOBatch(batches []models.Batch) (int, *models.Batch) {
	selectedIdx := -1
	for i := range batches {
		if batches[i].Stock <= 0 {
			continue
		}
		if selectedIdx == -1 || batches[i].ExpirationDate < batches[selectedIdx].ExpirationDate {
			selectedIdx = i
		}
	}
	if selectedIdx == -1 {
		return -1, nil
	}
	selected := batches[selectedIdx]
	return selectedIdx, &selected
}
