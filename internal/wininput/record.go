package wininput

// Record kinds, matching the INPUT type field.
const (
	KindMouse    uint32 = 0
	KindKeyboard uint32 = 1
	KindHardware uint32 = 2
)

// Keyboard event flags (KEYBDINPUT.dwFlags).
const (
	KeyEventExtendedKey uint32 = 0x0001
	KeyEventKeyUp       uint32 = 0x0002
	KeyEventUnicode     uint32 = 0x0004
	KeyEventScanCode    uint32 = 0x0008
)

// Mouse event flags (MOUSEINPUT.dwFlags).
const (
	MouseEventMove        uint32 = 0x0001
	MouseEventLeftDown    uint32 = 0x0002
	MouseEventLeftUp      uint32 = 0x0004
	MouseEventRightDown   uint32 = 0x0008
	MouseEventRightUp     uint32 = 0x0010
	MouseEventMiddleDown  uint32 = 0x0020
	MouseEventMiddleUp    uint32 = 0x0040
	MouseEventXDown       uint32 = 0x0080
	MouseEventXUp         uint32 = 0x0100
	MouseEventWheel       uint32 = 0x0800
	MouseEventHWheel      uint32 = 0x1000
	MouseEventVirtualDesk uint32 = 0x4000
	MouseEventAbsolute    uint32 = 0x8000
)

// Extra button identifiers carried in MOUSEINPUT.mouseData.
const (
	XButtonData1 int32 = 0x0001
	XButtonData2 int32 = 0x0002
)

// KeyboardInput mirrors KEYBDINPUT without the timestamp.
type KeyboardInput struct {
	VK        uint16
	Scan      uint16
	Flags     uint32
	ExtraInfo uintptr
}

// MouseInput mirrors MOUSEINPUT without the timestamp.
type MouseInput struct {
	DX        int32
	DY        int32
	Data      int32
	Flags     uint32
	ExtraInfo uintptr
}

// HardwareInput mirrors HARDWAREINPUT.
type HardwareInput struct {
	Msg    uint32
	ParamL uint16
	ParamH uint16
}

// Record is one entry of a SendInput batch. Kind selects which payload is meaningful.
type Record struct {
	Kind     uint32
	Keyboard KeyboardInput
	Mouse    MouseInput
	Hardware HardwareInput
}

// keyboardRecord returns a keyboard record without extra info.
func keyboardRecord(vk, scan uint16, flags uint32) Record {
	return Record{Kind: KindKeyboard, Keyboard: KeyboardInput{VK: vk, Scan: scan, Flags: flags}}
}

// mouseRecord returns a mouse record without extra info.
func mouseRecord(dx, dy, data int32, flags uint32) Record {
	return Record{Kind: KindMouse, Mouse: MouseInput{DX: dx, DY: dy, Data: data, Flags: flags}}
}

// withExtraInfo stamps every keyboard and mouse record with the same extra info value.
func withExtraInfo(records []Record, extra uintptr) []Record {
	for i := range records {
		switch records[i].Kind {
		case KindKeyboard:
			records[i].Keyboard.ExtraInfo = extra
		case KindMouse:
			records[i].Mouse.ExtraInfo = extra
		}
	}
	return records
}
