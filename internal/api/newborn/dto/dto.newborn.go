package newborndto

// ParentCreateInput dữ liệu đầu vào khi tạo hồ sơ phụ huynh
type ParentCreateInput struct {
	MotherName  string `json:"motherName" validate:"required"`
	MotherEmail string `json:"motherEmail,omitempty" validate:"omitempty,email"`
	FatherName  string `json:"fatherName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Zone        string `json:"zone" validate:"required"`
	UserID      string `json:"userId,omitempty" transform:"str_objectid,optional"`
}

// ParentUpdateInput dữ liệu đầu vào khi cập nhật hồ sơ phụ huynh
type ParentUpdateInput struct {
	MotherName  string `json:"motherName,omitempty"`
	MotherEmail string `json:"motherEmail,omitempty" validate:"omitempty,email"`
	FatherName  string `json:"fatherName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Zone        string `json:"zone,omitempty"`
	UserID      string `json:"userId,omitempty" transform:"str_objectid,optional"`
}

// NewbornCreateInput dữ liệu đầu vào khi tạo hồ sơ trẻ.
// BirthDate nhận dạng "2006-01-02" và được chuyển về UnixMilli.
type NewbornCreateInput struct {
	Name             string  `json:"name" validate:"required"`
	Gender           string  `json:"gender" validate:"required,oneof=male female"`
	BirthDate        string  `json:"birthDate" validate:"required" transform:"str_time,format=2006-01-02"`
	BirthWeightGrams int     `json:"birthWeightGrams,omitempty"`
	BirthHeightCm    float64 `json:"birthHeightCm,omitempty"`
	MotherID         string  `json:"motherId" validate:"required" transform:"str_objectid"`
	Zone             string  `json:"zone,omitempty"`
	PlaceOfBirth     string  `json:"placeOfBirth,omitempty"`
}

// NewbornUpdateInput dữ liệu đầu vào khi cập nhật hồ sơ trẻ
type NewbornUpdateInput struct {
	Name             string  `json:"name,omitempty"`
	Gender           string  `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	BirthDate        string  `json:"birthDate,omitempty" transform:"str_time,format=2006-01-02,optional"`
	BirthWeightGrams int     `json:"birthWeightGrams,omitempty"`
	BirthHeightCm    float64 `json:"birthHeightCm,omitempty"`
	PlaceOfBirth     string  `json:"placeOfBirth,omitempty"`
}
