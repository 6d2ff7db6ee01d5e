// Package models - Test resolve user key dạng hỗn hợp (ObjectID hoặc string).
package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResolveUserKey_ObjectID(t *testing.T) {
	key := ResolveUserKey("507f1f77bcf86cd799439011")
	oid, ok := key.(primitive.ObjectID)
	if !ok {
		t.Fatalf("hex 24 ký tự hợp lệ phải thành ObjectID, got %T", key)
	}
	if oid.Hex() != "507f1f77bcf86cd799439011" {
		t.Errorf("ObjectID hex = %s, muốn 507f1f77bcf86cd799439011", oid.Hex())
	}
}

func TestResolveUserKey_RawString(t *testing.T) {
	cases := []string{
		"demo-user",
		"507f1f77bcf86cd79943901",   // 23 ký tự
		"507f1f77bcf86cd7994390111", // 25 ký tự
		"507f1f77bcf86cd79943901z",  // không phải hex
		"",
	}
	for _, in := range cases {
		key := ResolveUserKey(in)
		s, ok := key.(string)
		if !ok {
			t.Errorf("ResolveUserKey(%q) phải giữ nguyên string, got %T", in, key)
			continue
		}
		if s != in {
			t.Errorf("ResolveUserKey(%q) = %q, phải giữ nguyên", in, s)
		}
	}
}
