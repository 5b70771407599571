// Package utility - Test parse tag transform và convert string → ObjectID.
package utility

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTransformTag_TypeOnly(t *testing.T) {
	config, err := ParseTransformTag("str_objectid")
	if err != nil {
		t.Fatalf("parse lỗi: %v", err)
	}
	if config.Type != "str_objectid" {
		t.Errorf("Type sai: %q", config.Type)
	}
	if config.Optional || config.Required {
		t.Error("không khai báo thì Optional/Required phải là false")
	}
}

func TestParseTransformTag_Flags(t *testing.T) {
	config, err := ParseTransformTag("str_objectid,optional,map=StateID")
	if err != nil {
		t.Fatalf("parse lỗi: %v", err)
	}
	if !config.Optional {
		t.Error("flag optional không được nhận")
	}
	if config.MapTo != "StateID" {
		t.Errorf("map=StateID không được nhận, MapTo=%q", config.MapTo)
	}
}

func TestParseTransformTag_Format(t *testing.T) {
	config, err := ParseTransformTag("str_time,format=2006-01-02")
	if err != nil {
		t.Fatalf("parse lỗi: %v", err)
	}
	if config.Format != "2006-01-02" {
		t.Errorf("format tùy chỉnh không được nhận: %q", config.Format)
	}

	config, _ = ParseTransformTag("str_time")
	if config.Format != "2006-01-02T15:04:05" {
		t.Errorf("không có format thì dùng mặc định, nhận %q", config.Format)
	}
}

func TestTransformFieldValue_ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	config, _ := ParseTransformTag("str_objectid")
	targetType := reflect.TypeOf(primitive.ObjectID{})

	got, err := TransformFieldValue(id.Hex(), config, targetType)
	if err != nil {
		t.Fatalf("hex hợp lệ phải convert được: %v", err)
	}
	if got != id {
		t.Errorf("ObjectID sau convert không khớp: %v != %v", got, id)
	}

	if _, err := TransformFieldValue("khong-phai-hex", config, targetType); err == nil {
		t.Error("hex không hợp lệ phải trả lỗi")
	}
}

func TestTransformFieldValue_OptionalEmpty(t *testing.T) {
	config, _ := ParseTransformTag("str_objectid,optional")
	targetType := reflect.TypeOf(primitive.ObjectID{})

	got, err := TransformFieldValue("", config, targetType)
	if err != nil {
		t.Fatalf("optional rỗng phải được bỏ qua: %v", err)
	}
	if got != nil {
		t.Errorf("optional rỗng phải trả về nil, nhận %v", got)
	}
}

func TestTransformFieldValue_RequiredEmpty(t *testing.T) {
	config, _ := ParseTransformTag("str_objectid,required")
	targetType := reflect.TypeOf(primitive.ObjectID{})

	if _, err := TransformFieldValue("", config, targetType); err == nil {
		t.Error("required rỗng phải trả lỗi")
	}
	if _, err := TransformFieldValue(nil, config, targetType); err == nil {
		t.Error("required nil phải trả lỗi")
	}
}
