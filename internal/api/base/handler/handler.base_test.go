// Package basehdl - Test parse phân trang, filter và giới hạn khu vực của BaseHandler.
package basehdl

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// benhNhiTest là model giả lập có field Zone để test giới hạn khu vực
type benhNhiTest struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
	Zone string             `bson:"zone"`
}

type benhNhiInputTest struct {
	Name string `json:"name"`
	Zone string `json:"zone"`
}

func newTestHandler() *BaseHandler[benhNhiTest, benhNhiInputTest, benhNhiInputTest] {
	// BaseService không được gọi trong các test này nên để nil
	return NewBaseHandler[benhNhiTest, benhNhiInputTest, benhNhiInputTest](nil)
}

// chayTrongFiber chạy fn bên trong một request Fiber thật để có fiber.Ctx hợp lệ
func chayTrongFiber(t *testing.T, target string, locals map[string]interface{}, fn func(c fiber.Ctx)) {
	t.Helper()

	app := fiber.New()
	app.Get("/test", func(c fiber.Ctx) error {
		for k, v := range locals {
			c.Locals(k, v)
		}
		fn(c)
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", target, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
}

func TestParsePagination_GiaTriMacDinh(t *testing.T) {
	h := newTestHandler()

	// Không truyền gì: mặc định page=1, limit=100
	chayTrongFiber(t, "/test", nil, func(c fiber.Ctx) {
		page, limit := h.ParsePagination(c)
		assert.Equal(t, int64(1), page)
		assert.Equal(t, int64(100), limit)
	})

	// Giá trị hợp lệ được giữ nguyên
	chayTrongFiber(t, "/test?page=3&limit=25", nil, func(c fiber.Ctx) {
		page, limit := h.ParsePagination(c)
		assert.Equal(t, int64(3), page)
		assert.Equal(t, int64(25), limit)
	})

	// Giá trị không hợp lệ hoặc âm rơi về mặc định
	chayTrongFiber(t, "/test?page=abc&limit=-5", nil, func(c fiber.Ctx) {
		page, limit := h.ParsePagination(c)
		assert.Equal(t, int64(1), page)
		assert.Equal(t, int64(100), limit)
	})

	chayTrongFiber(t, "/test?page=0&limit=0", nil, func(c fiber.Ctx) {
		page, limit := h.ParsePagination(c)
		assert.Equal(t, int64(1), page)
		assert.Equal(t, int64(100), limit)
	})
}

func TestProcessFilter_ChuyenDoiObjectID(t *testing.T) {
	h := newTestHandler()
	id := primitive.NewObjectID()

	// Field kết thúc bằng "Id" với giá trị hex hợp lệ được chuyển thành ObjectID
	chayTrongFiber(t, `/test?filter={"newbornId":"`+id.Hex()+`"}`, nil, func(c fiber.Ctx) {
		filter, err := h.ProcessFilter(c)
		require.NoError(t, err)
		assert.Equal(t, id, filter["newbornId"])
	})

	// Field thường giữ nguyên string
	chayTrongFiber(t, `/test?filter={"name":"`+id.Hex()+`"}`, nil, func(c fiber.Ctx) {
		filter, err := h.ProcessFilter(c)
		require.NoError(t, err)
		assert.Equal(t, id.Hex(), filter["name"])
	})

	// Extended JSON {"$oid": ...} cũng được chuyển đổi
	chayTrongFiber(t, `/test?filter={"mother":{"$oid":"`+id.Hex()+`"}}`, nil, func(c fiber.Ctx) {
		filter, err := h.ProcessFilter(c)
		require.NoError(t, err)
		assert.Equal(t, id, filter["mother"])
	})

	// $in trên ID field chuyển từng phần tử
	chayTrongFiber(t, `/test?filter={"vaccineId":{"$in":["`+id.Hex()+`"]}}`, nil, func(c fiber.Ctx) {
		filter, err := h.ProcessFilter(c)
		require.NoError(t, err)
		inner, ok := filter["vaccineId"].(map[string]interface{})
		require.True(t, ok)
		arr, ok := inner["$in"].([]interface{})
		require.True(t, ok)
		require.Len(t, arr, 1)
		assert.Equal(t, id, arr[0])
	})
}

func TestProcessFilter_ValidateBaoMat(t *testing.T) {
	h := newTestHandler()

	// Filter không phải JSON hợp lệ
	chayTrongFiber(t, `/test?filter=khong-phai-json`, nil, func(c fiber.Ctx) {
		_, err := h.ProcessFilter(c)
		assert.Error(t, err)
	})

	// Trường nhạy cảm bị cấm filter
	chayTrongFiber(t, `/test?filter={"password":"x"}`, nil, func(c fiber.Ctx) {
		_, err := h.ProcessFilter(c)
		assert.Error(t, err)
	})

	// Operator không nằm trong danh sách cho phép
	chayTrongFiber(t, `/test?filter={"name":{"$where":"1"}}`, nil, func(c fiber.Ctx) {
		_, err := h.ProcessFilter(c)
		assert.Error(t, err)
	})

	// Operator hợp lệ được chấp nhận
	chayTrongFiber(t, `/test?filter={"doses":{"$gte":2}}`, nil, func(c fiber.Ctx) {
		_, err := h.ProcessFilter(c)
		assert.NoError(t, err)
	})
}

func TestProcessMongoOptions_SortMacDinhTheoCreatedAt(t *testing.T) {
	h := newTestHandler()

	// Không truyền sort: mặc định createdAt giảm dần (mới nhất trước)
	chayTrongFiber(t, "/test?page=2&limit=5", nil, func(c fiber.Ctx) {
		raw, err := h.processMongoOptions(c, false)
		require.NoError(t, err)
		opts, ok := raw.(*mongoopts.FindOptions)
		require.True(t, ok)
		assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, opts.Sort)
	})

	// Client truyền sort thì dùng sort của client, không ghi đè
	chayTrongFiber(t, `/test?options={"sort":{"name":1}}`, nil, func(c fiber.Ctx) {
		raw, err := h.processMongoOptions(c, false)
		require.NoError(t, err)
		opts, ok := raw.(*mongoopts.FindOptions)
		require.True(t, ok)
		assert.Equal(t, bson.D{{Key: "name", Value: 1}}, opts.Sort)
	})
}

func TestApplyZoneScope(t *testing.T) {
	h := newTestHandler()

	// BHW có zone: filter được bổ sung điều kiện zone
	locals := map[string]interface{}{"user_role": "bhw", "user_zone": "phuong-5"}
	chayTrongFiber(t, "/test", locals, func(c fiber.Ctx) {
		result := h.ApplyZoneScope(c, map[string]interface{}{})
		assert.Equal(t, map[string]interface{}{"zone": "phuong-5"}, result)

		// Có baseFilter: kết hợp bằng $and
		combined := h.ApplyZoneScope(c, map[string]interface{}{"name": "An"})
		andClauses, ok := combined["$and"].([]map[string]interface{})
		require.True(t, ok)
		require.Len(t, andClauses, 2)
		assert.Equal(t, "phuong-5", andClauses[1]["zone"])
	})

	// Admin không bị giới hạn khu vực
	locals = map[string]interface{}{"user_role": "admin", "user_zone": "phuong-5"}
	chayTrongFiber(t, "/test", locals, func(c fiber.Ctx) {
		base := map[string]interface{}{"name": "An"}
		assert.Equal(t, base, h.ApplyZoneScope(c, base))
	})

	// BHW nhưng không có zone: giữ nguyên filter
	locals = map[string]interface{}{"user_role": "bhw"}
	chayTrongFiber(t, "/test", locals, func(c fiber.Ctx) {
		base := map[string]interface{}{"name": "An"}
		assert.Equal(t, base, h.ApplyZoneScope(c, base))
	})
}

func TestSetZoneFromContext(t *testing.T) {
	h := newTestHandler()

	locals := map[string]interface{}{"user_role": "bhw", "user_zone": "phuong-5"}
	chayTrongFiber(t, "/test", locals, func(c fiber.Ctx) {
		// Model chưa có zone: gán từ context
		m := &benhNhiTest{Name: "An"}
		h.SetZoneFromContext(c, m)
		assert.Equal(t, "phuong-5", m.Zone)

		// Giá trị từ request body được ưu tiên, không override
		m2 := &benhNhiTest{Name: "Binh", Zone: "phuong-9"}
		h.SetZoneFromContext(c, m2)
		assert.Equal(t, "phuong-9", m2.Zone)
	})

	// Admin không bị gán zone
	locals = map[string]interface{}{"user_role": "admin", "user_zone": "phuong-5"}
	chayTrongFiber(t, "/test", locals, func(c fiber.Ctx) {
		m := &benhNhiTest{Name: "An"}
		h.SetZoneFromContext(c, m)
		assert.Equal(t, "", m.Zone)
	})
}
