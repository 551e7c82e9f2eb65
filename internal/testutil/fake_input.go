// Package testutil provides fake native bindings that record every call.
package testutil

import "github.com/frudas24/winsim/internal/wininput"

// FakeInput implements wininput.Native and records every SendInput batch.
type FakeInput struct {
	Batches        [][]wininput.Record
	ExtraInfo      uintptr
	ExtraInfoCalls int

	Width, Height               int32
	VirtualWidth, VirtualHeight int32
	// OriginX and OriginY place the virtual desktop's top-left in screen coordinates.
	OriginX, OriginY int32

	CursorX, CursorY int32
	CursorErr        error

	// Limit caps how many records a batch queues when positive.
	Limit   int
	SendErr error
}

// Ensure FakeInput implements the interface.
var _ wininput.Native = (*FakeInput)(nil)

// NewFakeInput returns a fake with a 1920x1080 primary display inside a 3840x1080 virtual desktop.
func NewFakeInput() *FakeInput {
	return &FakeInput{
		Width:         1920,
		Height:        1080,
		VirtualWidth:  3840,
		VirtualHeight: 1080,
	}
}

// SendInput records a copy of the batch.
func (f *FakeInput) SendInput(records []wininput.Record) (uint32, error) {
	batch := make([]wininput.Record, len(records))
	copy(batch, records)
	f.Batches = append(f.Batches, batch)
	if f.Limit > 0 && f.Limit < len(records) {
		return uint32(f.Limit), f.SendErr
	}
	return uint32(len(records)), nil
}

// MessageExtraInfo returns ExtraInfo and counts the read.
func (f *FakeInput) MessageExtraInfo() uintptr {
	f.ExtraInfoCalls++
	return f.ExtraInfo
}

// ScreenSize returns the primary display size.
func (f *FakeInput) ScreenSize() (int32, int32) {
	return f.Width, f.Height
}

// VirtualScreenSize returns the virtual desktop size.
func (f *FakeInput) VirtualScreenSize() (int32, int32) {
	return f.VirtualWidth, f.VirtualHeight
}

// VirtualScreenOrigin returns the configured virtual desktop origin.
func (f *FakeInput) VirtualScreenOrigin() (int32, int32) {
	return f.OriginX, f.OriginY
}

// CursorPos returns the configured cursor or CursorErr.
func (f *FakeInput) CursorPos() (int32, int32, error) {
	if f.CursorErr != nil {
		return 0, 0, f.CursorErr
	}
	return f.CursorX, f.CursorY, nil
}

// Last returns the most recent batch, or nil.
func (f *FakeInput) Last() []wininput.Record {
	if len(f.Batches) == 0 {
		return nil
	}
	return f.Batches[len(f.Batches)-1]
}
