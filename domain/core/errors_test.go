package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorTaxonomy(t *testing.T) {
	allocErr := NewAllocationError("occurrence counts", 10)
	if !IsAllocationError(allocErr) {
		t.Error("allocation error not recognized")
	}
	if !IsRecoverable(allocErr) {
		t.Error("allocation error should be recoverable")
	}

	totalErr := NewWeightTotalError(-1)
	if !IsWeightTotalError(totalErr) {
		t.Error("weight total error not recognized")
	}
	if !IsRecoverable(totalErr) {
		t.Error("weight total error should be recoverable")
	}

	if IsRecoverable(errors.New("something else")) {
		t.Error("unrelated error reported as recoverable")
	}
}

func TestErrorWrappingSurvivesContext(t *testing.T) {
	err := fmt.Errorf("generating bag 3: %w", NewWeightTotalError(0))
	if !IsWeightTotalError(err) {
		t.Error("wrapped weight total error not recognized")
	}
}
