package vaccinationdto

// BrandCreateInput dữ liệu đầu vào khi tạo nhãn hiệu vaccine
type BrandCreateInput struct {
	Name         string `json:"name" validate:"required"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Country      string `json:"country,omitempty"`
}

// BrandUpdateInput dữ liệu đầu vào khi cập nhật nhãn hiệu vaccine
type BrandUpdateInput struct {
	Name         string `json:"name,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Country      string `json:"country,omitempty"`
}

// VaccineCreateInput dữ liệu đầu vào khi tạo vaccine.
// Lô tồn kho được thêm riêng qua endpoint add-batch.
type VaccineCreateInput struct {
	Name        string `json:"name" validate:"required"`
	BrandID     string `json:"brandId,omitempty" transform:"str_objectid,optional"`
	Dosage      string `json:"dosage,omitempty"`
	Description string `json:"description,omitempty"`
	TotalDoses  int    `json:"totalDoses" validate:"required,min=1"`
}

// VaccineUpdateInput dữ liệu đầu vào khi cập nhật vaccine
type VaccineUpdateInput struct {
	Name        string `json:"name,omitempty"`
	BrandID     string `json:"brandId,omitempty" transform:"str_objectid,optional"`
	Dosage      string `json:"dosage,omitempty"`
	Description string `json:"description,omitempty"`
	TotalDoses  int    `json:"totalDoses,omitempty" validate:"omitempty,min=1"`
}

// BatchAddInput dữ liệu đầu vào khi thêm lô vaccine.
// ExpirationDate nhận dạng "2006-01-02" và được chuyển về UnixMilli.
type BatchAddInput struct {
	BatchNumber    string `json:"batchNumber" validate:"required"`
	Stock          int    `json:"stock" validate:"min=0"`
	ExpirationDate string `json:"expirationDate" validate:"required" transform:"str_time,format=2006-01-02"`
}

// BatchUpdateInput dữ liệu đầu vào khi cập nhật một lô theo số lô
type BatchUpdateInput struct {
	BatchNumber    string `json:"batchNumber" validate:"required"`
	Stock          int    `json:"stock" validate:"min=0"`
	ExpirationDate string `json:"expirationDate,omitempty" transform:"str_time,format=2006-01-02,optional"`
}

// AssignVaccineInput dữ liệu đầu vào khi gán thêm vaccine cho trẻ ngoài phác đồ chuẩn
type AssignVaccineInput struct {
	NewbornID  string `json:"newbornId" validate:"required" transform:"str_objectid"`
	VaccineID  string `json:"vaccineId" validate:"required" transform:"str_objectid"`
	TotalDoses int    `json:"totalDoses,omitempty" validate:"omitempty,min=1"`
}

// AssignedVaccineUpdateInput dữ liệu đầu vào khi cập nhật phác đồ đã gán
type AssignedVaccineUpdateInput struct {
	TotalDoses int `json:"totalDoses,omitempty" validate:"omitempty,min=1"`
}

// RecordDoseInput dữ liệu đầu vào khi ghi nhận một mũi tiêm.
// AdministeredBy lấy từ user đã xác thực, không nhận từ client.
// DateGiven cho phép ghi nhận mũi tiêm trong quá khứ (nhập liệu hồi cứu).
type RecordDoseInput struct {
	NewbornID   string `json:"newbornId" validate:"required" transform:"str_objectid"`
	VaccineID   string `json:"vaccineId" validate:"required" transform:"str_objectid"`
	DateGiven   string `json:"dateGiven" validate:"required" transform:"str_time,format=2006-01-02"`
	Status      string `json:"status" validate:"required,oneof=completed scheduled missed"`
	NextDueDate string `json:"nextDueDate,omitempty" transform:"str_time,format=2006-01-02,optional"`
	Remarks     string `json:"remarks,omitempty"`
}
