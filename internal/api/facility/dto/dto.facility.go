package facilitydto

// LaboratoryCreateInput dữ liệu đầu vào khi tạo phòng xét nghiệm
type LaboratoryCreateInput struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// LaboratoryUpdateInput dữ liệu đầu vào khi cập nhật phòng xét nghiệm
type LaboratoryUpdateInput struct {
	Name        string `json:"name,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// EquipmentCreateInput dữ liệu đầu vào khi tạo thiết bị.
// AcquiredAt nhận dạng "2006-01-02" và được chuyển về UnixMilli.
type EquipmentCreateInput struct {
	Name         string `json:"name" validate:"required"`
	SerialNumber string `json:"serialNumber" validate:"required"`
	Category     string `json:"category,omitempty"`
	LaboratoryID string `json:"laboratoryId,omitempty" transform:"str_objectid,optional"`
	Condition    string `json:"condition,omitempty"`
	AcquiredAt   string `json:"acquiredAt,omitempty" transform:"str_time,format=2006-01-02,optional"`
}

// EquipmentUpdateInput dữ liệu đầu vào khi cập nhật thiết bị.
// Status không cập nhật trực tiếp, nó đi theo vòng đời yêu cầu bảo trì.
type EquipmentUpdateInput struct {
	Name         string `json:"name,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Category     string `json:"category,omitempty"`
	LaboratoryID string `json:"laboratoryId,omitempty" transform:"str_objectid,optional"`
	Condition    string `json:"condition,omitempty"`
	AcquiredAt   string `json:"acquiredAt,omitempty" transform:"str_time,format=2006-01-02,optional"`
}

// MaintenanceRequestCreateInput dữ liệu đầu vào khi tạo yêu cầu bảo trì
type MaintenanceRequestCreateInput struct {
	EquipmentID string `json:"equipmentId" validate:"required" transform:"str_objectid"`
	Description string `json:"description,omitempty"`
	ScheduledAt string `json:"scheduledAt,omitempty" transform:"str_time,format=2006-01-02,optional"`
}

// MaintenanceRequestUpdateInput dữ liệu đầu vào khi cập nhật yêu cầu bảo trì
type MaintenanceRequestUpdateInput struct {
	Description string `json:"description,omitempty"`
	ScheduledAt string `json:"scheduledAt,omitempty" transform:"str_time,format=2006-01-02,optional"`
}
