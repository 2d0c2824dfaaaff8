package maths

import (
	"math"
	"testing"
)

// TestMatrixBasic 基本读写与叠加。
func TestMatrixBasic(t *testing.T) {
	m := NewMatrix(2, 3)
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("dimension mismatch: %dx%d", m.Rows(), m.Cols())
	}
	m.Set(0, 1, 2.5)
	m.Increment(0, 1, 0.5)
	if m.Get(0, 1) != 3 {
		t.Errorf("Get(0,1) = %v, expected 3", m.Get(0, 1))
	}

	c := m.Clone()
	c.Set(0, 1, 9)
	if m.Get(0, 1) != 3 {
		t.Error("Clone shares backing storage with source")
	}

	m.Zero()
	if m.Get(0, 1) != 0 {
		t.Error("Zero did not clear matrix")
	}
}

// TestMatrixBadEntry NaN/Inf 检测。
func TestMatrixBadEntry(t *testing.T) {
	m := NewMatrix(2, 2)
	if m.HasBadEntry() {
		t.Error("zero matrix flagged as bad")
	}
	m.Set(1, 0, math.Inf(1))
	if !m.HasBadEntry() {
		t.Error("Inf entry not detected")
	}
	m.Set(1, 0, 0)
	m.Set(0, 1, math.NaN())
	if !m.HasBadEntry() {
		t.Error("NaN entry not detected")
	}
}
