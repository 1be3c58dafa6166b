// Package utility - Test cơ chế transform DTO → Model qua struct tag.
package utility

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTransformTag(t *testing.T) {
	config, err := ParseTransformTag("str_objectid,optional")
	require.NoError(t, err)
	assert.Equal(t, "str_objectid", config.Type)
	assert.True(t, config.Optional)
	assert.False(t, config.Required)

	config, err = ParseTransformTag("str_time,format=2006-01-02,required")
	require.NoError(t, err)
	assert.Equal(t, "str_time", config.Type)
	assert.Equal(t, "2006-01-02", config.Format)
	assert.True(t, config.Required)

	config, err = ParseTransformTag("str_objectid,map=NewbornID")
	require.NoError(t, err)
	assert.Equal(t, "NewbornID", config.MapTo)

	// Tag rỗng: không transform, format mặc định
	config, err = ParseTransformTag("")
	require.NoError(t, err)
	assert.Equal(t, "", config.Type)
	assert.Equal(t, "2006-01-02T15:04:05", config.Format)
}

func TestTransformFieldValue_StrObjectID(t *testing.T) {
	config, err := ParseTransformTag("str_objectid")
	require.NoError(t, err)

	id := primitive.NewObjectID()
	targetType := reflect.TypeOf(primitive.ObjectID{})

	value, err := TransformFieldValue(id.Hex(), config, targetType)
	require.NoError(t, err)
	assert.Equal(t, id, value)

	// Chuỗi không phải hex 24 ký tự thì báo lỗi
	_, err = TransformFieldValue("khong-phai-objectid", config, targetType)
	assert.Error(t, err)
}

func TestTransformFieldValue_StrTime(t *testing.T) {
	config, err := ParseTransformTag("str_time,format=2006-01-02")
	require.NoError(t, err)

	value, err := TransformFieldValue("2025-03-15", config, reflect.TypeOf(int64(0)))
	require.NoError(t, err)

	expected, _ := time.Parse("2006-01-02", "2025-03-15")
	assert.Equal(t, expected.UnixMilli(), value)

	_, err = TransformFieldValue("15/03/2025", config, reflect.TypeOf(int64(0)))
	assert.Error(t, err)
}

func TestTransformFieldValue_OptionalVaRequired(t *testing.T) {
	targetType := reflect.TypeOf(primitive.ObjectID{})

	optional, err := ParseTransformTag("str_objectid,optional")
	require.NoError(t, err)
	value, err := TransformFieldValue("", optional, targetType)
	require.NoError(t, err)
	assert.Nil(t, value)

	required, err := ParseTransformTag("str_objectid,required")
	require.NoError(t, err)
	_, err = TransformFieldValue("", required, targetType)
	assert.Error(t, err)

	_, err = TransformFieldValue(nil, required, targetType)
	assert.Error(t, err)
}

func TestTransformFieldValue_DefaultValue(t *testing.T) {
	config, err := ParseTransformTag("str_int64,default=100")
	require.NoError(t, err)

	value, err := TransformFieldValue("", config, reflect.TypeOf(int64(0)))
	require.NoError(t, err)
	assert.Equal(t, int64(100), value)
}

func TestTransformFieldValue_KhongCoTransformType(t *testing.T) {
	config, err := ParseTransformTag("")
	require.NoError(t, err)

	value, err := TransformFieldValue("giu-nguyen", config, reflect.TypeOf(""))
	require.NoError(t, err)
	assert.Equal(t, "giu-nguyen", value)
}
