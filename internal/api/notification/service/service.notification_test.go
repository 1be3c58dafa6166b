package notifsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "newborn_tracking/internal/api/auth/models"
)

func TestCollectRecipientEmails_GomDayDuNguoiNhan(t *testing.T) {
	users := []authmodels.User{
		{ID: primitive.NewObjectID(), Email: "admin@tyt.vn", Role: authmodels.RoleAdmin},
		{ID: primitive.NewObjectID(), Email: "bhw.zone1@tyt.vn", Role: authmodels.RoleBHW},
		{ID: primitive.NewObjectID(), Email: "me@gmail.com", Role: authmodels.RoleParent},
	}

	// Một email gửi chung cho admin, BHW theo zone và mẹ
	emails := collectRecipientEmails(users, "me.lienhe@gmail.com")
	assert.ElementsMatch(t, []string{"admin@tyt.vn", "bhw.zone1@tyt.vn", "me@gmail.com", "me.lienhe@gmail.com"}, emails)
}

func TestCollectRecipientEmails_LoaiTrungVaRong(t *testing.T) {
	users := []authmodels.User{
		{ID: primitive.NewObjectID(), Email: "admin@tyt.vn"},
		{ID: primitive.NewObjectID(), Email: ""}, // tài khoản chưa khai báo email
		{ID: primitive.NewObjectID(), Email: "me@gmail.com"},
	}

	// Email liên hệ của mẹ trùng với email tài khoản thì chỉ gửi một lần
	emails := collectRecipientEmails(users, "me@gmail.com", "")
	assert.Equal(t, []string{"admin@tyt.vn", "me@gmail.com"}, emails)
}

func TestCollectRecipientEmails_KhongCoNguoiNhan(t *testing.T) {
	assert.Empty(t, collectRecipientEmails(nil))
	assert.Empty(t, collectRecipientEmails([]authmodels.User{{ID: primitive.NewObjectID()}}, ""))
}

func TestBuildViewers_KhoiTaoChuaDoc(t *testing.T) {
	recipients := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
	viewers := buildViewers(recipients)

	assert.Len(t, viewers, 2)
	for i, viewer := range viewers {
		assert.Equal(t, recipients[i], viewer.UserID)
		assert.False(t, viewer.IsRead)
	}
}
