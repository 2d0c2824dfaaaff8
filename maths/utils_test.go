package maths

import "testing"

// TestGenericHelpers 泛型辅助函数。
func TestGenericHelpers(t *testing.T) {
	if Abs(-3.5) != 3.5 || Abs(2) != 2 {
		t.Error("Abs incorrect")
	}
	if Max(1, 2) != 2 || Max(2.5, -1.0) != 2.5 {
		t.Error("Max incorrect")
	}
	if Min(1, 2) != 1 || Min(-2.5, 1.0) != -2.5 {
		t.Error("Min incorrect")
	}
}
