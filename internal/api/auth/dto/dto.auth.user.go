package authdto

// UserCreateInput đầu vào tạo người dùng (CRUD, chỉ admin).
type UserCreateInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"required,oneof=admin staff bhw parent"`
	Zone     string `json:"zone"`
}

// UserUpdateInput đầu vào cập nhật người dùng (CRUD, chỉ admin).
type UserUpdateInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role" validate:"omitempty,oneof=admin staff bhw parent"`
	Zone  string `json:"zone"`
}

// RegisterInput đầu vào đăng ký tài khoản. Tài khoản đăng ký mới luôn có role parent,
// các role khác do admin cấp.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`
}

// LoginInput đầu vào đăng nhập bằng email/mật khẩu.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Hwid     string `json:"hwid" validate:"required"`
}

// UserLogoutInput đầu vào đăng xuất người dùng.
type UserLogoutInput struct {
	Hwid string `json:"hwid" validate:"required"`
}

// VerifyEmailInput đầu vào xác thực email bằng token gửi qua mail.
type VerifyEmailInput struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required"`
}

// ResendVerificationInput đầu vào gửi lại email xác thực.
type ResendVerificationInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ChangePasswordInput đầu vào đổi mật khẩu.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// UserChangeInfoInput đầu vào thay đổi thông tin người dùng.
type UserChangeInfoInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// BlockUserInput đầu vào khóa người dùng.
type BlockUserInput struct {
	Email string `json:"email" validate:"required"`
	Note  string `json:"note" validate:"required"`
}

// UnBlockUserInput đầu vào mở khóa người dùng.
type UnBlockUserInput struct {
	Email string `json:"email" validate:"required"`
}

// SetRoleInput đầu vào gán role cho người dùng (chỉ admin).
// Zone bắt buộc khi role là bhw.
type SetRoleInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin staff bhw parent"`
	Zone  string `json:"zone"`
}
