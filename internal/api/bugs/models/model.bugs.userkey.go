package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResolveUserKey chuyển userId dạng chuỗi từ request thành khóa lưu trữ:
// ObjectID nếu là hex 24 ký tự hợp lệ, ngược lại giữ nguyên chuỗi (demo user).
// Resolve một lần tại ingress; mọi query sau đó dùng giá trị đã resolve.
func ResolveUserKey(raw string) interface{} {
	if len(raw) == 24 {
		if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
			return oid
		}
	}
	return raw
}
