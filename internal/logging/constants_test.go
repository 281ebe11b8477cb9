package logging

import (
	"testing"
)

func TestConstants(t *testing.T) {
	if FieldFile == "" {
		t.Error("FieldFile constant should not be empty")
	}
	if FieldCount == "" {
		t.Error("FieldCount constant should not be empty")
	}
	if FieldTransactionID == "" {
		t.Error("FieldTransactionID constant should not be empty")
	}
	if FieldPayee == "" {
		t.Error("FieldPayee constant should not be empty")
	}
	if FieldMonth == "" {
		t.Error("FieldMonth constant should not be empty")
	}
}
