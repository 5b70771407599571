package utility

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển đổi chuỗi hex thành ObjectID.
// Chuỗi không hợp lệ trả về NilObjectID thay vì lỗi - caller dùng trong
// các path đã validate hex từ trước (route param, filter đã qua DTO).
func String2ObjectID(id string) primitive.ObjectID {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectID
}
