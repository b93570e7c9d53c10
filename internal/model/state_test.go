package model

import "testing"

func TestAttachmentState_IsAttached(t *testing.T) {
	tests := []struct {
		state    AttachmentState
		expected bool
	}{
		{StateDetached, false},
		{StateAttaching, false},
		{StateAttached, true},
		{StateLost, false},
	}

	for _, test := range tests {
		result := test.state.IsAttached()
		if result != test.expected {
			t.Errorf("AttachmentState(%s).IsAttached() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestAttachmentState_InProgress(t *testing.T) {
	tests := []struct {
		state    AttachmentState
		expected bool
	}{
		{StateDetached, false},
		{StateAttaching, true},
		{StateAttached, false},
		{StateLost, false},
	}

	for _, test := range tests {
		result := test.state.InProgress()
		if result != test.expected {
			t.Errorf("AttachmentState(%s).InProgress() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestAttachmentState_IsSettled(t *testing.T) {
	tests := []struct {
		state    AttachmentState
		expected bool
	}{
		{StateDetached, true},
		{StateAttaching, false},
		{StateAttached, true},
		{StateLost, true},
	}

	for _, test := range tests {
		result := test.state.IsSettled()
		if result != test.expected {
			t.Errorf("AttachmentState(%s).IsSettled() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestAttachmentState_String(t *testing.T) {
	state := StateAttached
	expected := "Attached"
	result := state.String()

	if result != expected {
		t.Errorf("AttachmentState.String() = %s, expected %s", result, expected)
	}
}

func TestHandles_IsZero(t *testing.T) {
	if !HostHandle(0).IsZero() {
		t.Error("HostHandle(0).IsZero() should be true")
	}
	if HostHandle(0xDEAD).IsZero() {
		t.Error("HostHandle(0xDEAD).IsZero() should be false")
	}
	if !SurfaceHandle(0).IsZero() {
		t.Error("SurfaceHandle(0).IsZero() should be true")
	}
	if SurfaceHandle(42).IsZero() {
		t.Error("SurfaceHandle(42).IsZero() should be false")
	}
}
