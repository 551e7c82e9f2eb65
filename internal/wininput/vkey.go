package wininput

import (
	"fmt"
	"strings"
)

// VirtualKey identifies a key of the Windows virtual-key table.
//
// See https://learn.microsoft.com/en-us/windows/win32/inputdev/virtual-key-codes.
type VirtualKey uint8

// Virtual keys, in table order.
const (
	// Num0 is digit 0 on the main row.
	Num0 VirtualKey = iota
	// Num1 is digit 1 on the main row.
	Num1
	// Num2 is digit 2 on the main row.
	Num2
	// Num3 is digit 3 on the main row.
	Num3
	// Num4 is digit 4 on the main row.
	Num4
	// Num5 is digit 5 on the main row.
	Num5
	// Num6 is digit 6 on the main row.
	Num6
	// Num7 is digit 7 on the main row.
	Num7
	// Num8 is digit 8 on the main row.
	Num8
	// Num9 is digit 9 on the main row.
	Num9
	// A is letter A.
	A
	// B is letter B.
	B
	// C is letter C.
	C
	// D is letter D.
	D
	// E is letter E.
	E
	// F is letter F.
	F
	// G is letter G.
	G
	// H is letter H.
	H
	// I is letter I.
	I
	// J is letter J.
	J
	// K is letter K.
	K
	// L is letter L.
	L
	// M is letter M.
	M
	// N is letter N.
	N
	// O is letter O.
	O
	// P is letter P.
	P
	// Q is letter Q.
	Q
	// R is letter R.
	R
	// S is letter S.
	S
	// T is letter T.
	T
	// U is letter U.
	U
	// V is letter V.
	V
	// W is letter W.
	W
	// X is letter X.
	X
	// Y is letter Y.
	Y
	// Z is letter Z.
	Z
	// AbntC1 is Brazilian ABNT C1.
	AbntC1
	// AbntC2 is Brazilian ABNT C2.
	AbntC2
	DbeAlphanumeric
	DbeCodeInput
	DbeDbcsChar
	DbeDetermineString
	DbeEnterDlgConversionMode
	DbeEnterImeConfigMode
	DbeEnterWordRegisterMode
	DbeFlushString
	DbeHiragana
	DbeKatakana
	DbeNoCodeInput
	DbeNoRoman
	DbeRoman
	DbeSbcsChar
	// LButton is left mouse button.
	LButton
	// RButton is right mouse button.
	RButton
	// Cancel is control-break processing.
	Cancel
	// MButton is middle mouse button.
	MButton
	// XButton1 is first extra (forward) mouse button.
	XButton1
	// XButton2 is second extra (back) mouse button.
	XButton2
	Backspace
	Tab
	Clear
	Enter
	Shift
	Control
	// Alt is the VK_MENU key.
	Alt
	Pause
	// CapsLock is the VK_CAPITAL key.
	CapsLock
	// Kana is IME Kana mode.
	Kana
	// Hangul is IME Hangul mode.
	Hangul
	ImeOn
	Junja
	Final
	// Hanja is IME Hanja mode.
	Hanja
	// Kanji is IME Kanji mode.
	Kanji
	ImeOff
	Escape
	Convert
	NonConvert
	Accept
	ModeChange
	Space
	// PageUp is the VK_PRIOR key.
	PageUp
	// PageDown is the VK_NEXT key.
	PageDown
	End
	Home
	LeftArrow
	UpArrow
	RightArrow
	DownArrow
	Select
	Print
	Execute
	// PrintScreen is the VK_SNAPSHOT key.
	PrintScreen
	Insert
	Delete
	Help
	LWin
	RWin
	Apps
	Sleep
	NumPad0
	NumPad1
	NumPad2
	NumPad3
	NumPad4
	NumPad5
	NumPad6
	NumPad7
	NumPad8
	NumPad9
	Multiply
	Add
	Separator
	Subtract
	Decimal
	Divide
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24
	NavigationView
	NavigationMenu
	NavigationUp
	NavigationDown
	NavigationLeft
	NavigationRight
	NavigationAccept
	NavigationCancel
	NumLock
	ScrollLock
	OemNecEqual
	OemFjJisho
	OemFjMasshou
	OemFjTouroku
	OemFjLoya
	OemFjRoya
	LShift
	RShift
	LControl
	RControl
	// LAlt is the VK_LMENU key.
	LAlt
	// RAlt is the VK_RMENU key.
	RAlt
	BrowserBack
	BrowserForward
	BrowserRefresh
	BrowserStop
	BrowserSearch
	BrowserFavorites
	BrowserHome
	VolumeMute
	VolumeDown
	VolumeUp
	MediaNextTrack
	MediaPrevTrack
	MediaStop
	MediaPlayPause
	LaunchMail
	LaunchMediaSelect
	LaunchApp1
	LaunchApp2
	// Oem1 is ;: on US layouts.
	Oem1
	OemPlus
	OemComma
	OemMinus
	OemPeriod
	// Oem2 is /? on US layouts.
	Oem2
	// Oem3 is `~ on US layouts.
	Oem3
	GamepadA
	GamepadB
	GamepadX
	GamepadY
	GamepadRightShoulder
	GamepadLeftShoulder
	GamepadLeftTrigger
	GamepadRightTrigger
	GamepadDPadUp
	GamepadDPadDown
	GamepadDPadLeft
	GamepadDPadRight
	GamepadMenu
	GamepadView
	GamepadLeftThumbStickButton
	GamepadRightThumbStickButton
	GamepadLeftThumbStickUp
	GamepadLeftThumbStickDown
	GamepadLeftThumbStickRight
	GamepadLeftThumbStickLeft
	GamepadRightThumbStickUp
	GamepadRightThumbStickDown
	GamepadRightThumbStickRight
	GamepadRightThumbStickLeft
	// Oem4 is [{ on US layouts.
	Oem4
	// Oem5 is \| on US layouts.
	Oem5
	// Oem6 is ]} on US layouts.
	Oem6
	// Oem7 is quote key on US layouts.
	Oem7
	Oem8
	OemAx
	// Oem102 is <> or \| on the 102-key layout.
	Oem102
	IcoHelp
	Ico00
	ProcessKey
	IcoClear
	OemReset
	OemJump
	OemPa1
	OemPa2
	OemPa3
	OemWsctrl
	OemCusel
	OemAttn
	OemFinish
	OemCopy
	OemAuto
	OemEnlw
	OemBacktab
	Attn
	CrSel
	ExSel
	ErEof
	Play
	Zoom
	NoName
	Pa1
	OemClear

	virtualKeyCount
)

type keyEntry struct {
	name string
	code uint16
}

// keyTable maps every VirtualKey to its name and native code.
var keyTable = [virtualKeyCount]keyEntry{
	Num0:                         {"Num0", 0x30},
	Num1:                         {"Num1", 0x31},
	Num2:                         {"Num2", 0x32},
	Num3:                         {"Num3", 0x33},
	Num4:                         {"Num4", 0x34},
	Num5:                         {"Num5", 0x35},
	Num6:                         {"Num6", 0x36},
	Num7:                         {"Num7", 0x37},
	Num8:                         {"Num8", 0x38},
	Num9:                         {"Num9", 0x39},
	A:                            {"A", 0x41},
	B:                            {"B", 0x42},
	C:                            {"C", 0x43},
	D:                            {"D", 0x44},
	E:                            {"E", 0x45},
	F:                            {"F", 0x46},
	G:                            {"G", 0x47},
	H:                            {"H", 0x48},
	I:                            {"I", 0x49},
	J:                            {"J", 0x4A},
	K:                            {"K", 0x4B},
	L:                            {"L", 0x4C},
	M:                            {"M", 0x4D},
	N:                            {"N", 0x4E},
	O:                            {"O", 0x4F},
	P:                            {"P", 0x50},
	Q:                            {"Q", 0x51},
	R:                            {"R", 0x52},
	S:                            {"S", 0x53},
	T:                            {"T", 0x54},
	U:                            {"U", 0x55},
	V:                            {"V", 0x56},
	W:                            {"W", 0x57},
	X:                            {"X", 0x58},
	Y:                            {"Y", 0x59},
	Z:                            {"Z", 0x5A},
	AbntC1:                       {"AbntC1", 0xC1},
	AbntC2:                       {"AbntC2", 0xC2},
	DbeAlphanumeric:              {"DbeAlphanumeric", 0xF0},
	DbeCodeInput:                 {"DbeCodeInput", 0xFA},
	DbeDbcsChar:                  {"DbeDbcsChar", 0xF4},
	DbeDetermineString:           {"DbeDetermineString", 0xFC},
	DbeEnterDlgConversionMode:    {"DbeEnterDlgConversionMode", 0xFD},
	DbeEnterImeConfigMode:        {"DbeEnterImeConfigMode", 0xF8},
	DbeEnterWordRegisterMode:     {"DbeEnterWordRegisterMode", 0xF7},
	DbeFlushString:               {"DbeFlushString", 0xF9},
	DbeHiragana:                  {"DbeHiragana", 0xF2},
	DbeKatakana:                  {"DbeKatakana", 0xF1},
	DbeNoCodeInput:               {"DbeNoCodeInput", 0xFB},
	DbeNoRoman:                   {"DbeNoRoman", 0xF6},
	DbeRoman:                     {"DbeRoman", 0xF5},
	DbeSbcsChar:                  {"DbeSbcsChar", 0xF3},
	LButton:                      {"LButton", 0x01},
	RButton:                      {"RButton", 0x02},
	Cancel:                       {"Cancel", 0x03},
	MButton:                      {"MButton", 0x04},
	XButton1:                     {"XButton1", 0x05},
	XButton2:                     {"XButton2", 0x06},
	Backspace:                    {"Backspace", 0x08},
	Tab:                          {"Tab", 0x09},
	Clear:                        {"Clear", 0x0C},
	Enter:                        {"Enter", 0x0D},
	Shift:                        {"Shift", 0x10},
	Control:                      {"Control", 0x11},
	Alt:                          {"Alt", 0x12},
	Pause:                        {"Pause", 0x13},
	CapsLock:                     {"CapsLock", 0x14},
	Kana:                         {"Kana", 0x15},
	Hangul:                       {"Hangul", 0x15},
	ImeOn:                        {"ImeOn", 0x16},
	Junja:                        {"Junja", 0x17},
	Final:                        {"Final", 0x18},
	Hanja:                        {"Hanja", 0x19},
	Kanji:                        {"Kanji", 0x19},
	ImeOff:                       {"ImeOff", 0x1A},
	Escape:                       {"Escape", 0x1B},
	Convert:                      {"Convert", 0x1C},
	NonConvert:                   {"NonConvert", 0x1D},
	Accept:                       {"Accept", 0x1E},
	ModeChange:                   {"ModeChange", 0x1F},
	Space:                        {"Space", 0x20},
	PageUp:                       {"PageUp", 0x21},
	PageDown:                     {"PageDown", 0x22},
	End:                          {"End", 0x23},
	Home:                         {"Home", 0x24},
	LeftArrow:                    {"LeftArrow", 0x25},
	UpArrow:                      {"UpArrow", 0x26},
	RightArrow:                   {"RightArrow", 0x27},
	DownArrow:                    {"DownArrow", 0x28},
	Select:                       {"Select", 0x29},
	Print:                        {"Print", 0x2A},
	Execute:                      {"Execute", 0x2B},
	PrintScreen:                  {"PrintScreen", 0x2C},
	Insert:                       {"Insert", 0x2D},
	Delete:                       {"Delete", 0x2E},
	Help:                         {"Help", 0x2F},
	LWin:                         {"LWin", 0x5B},
	RWin:                         {"RWin", 0x5C},
	Apps:                         {"Apps", 0x5D},
	Sleep:                        {"Sleep", 0x5F},
	NumPad0:                      {"NumPad0", 0x60},
	NumPad1:                      {"NumPad1", 0x61},
	NumPad2:                      {"NumPad2", 0x62},
	NumPad3:                      {"NumPad3", 0x63},
	NumPad4:                      {"NumPad4", 0x64},
	NumPad5:                      {"NumPad5", 0x65},
	NumPad6:                      {"NumPad6", 0x66},
	NumPad7:                      {"NumPad7", 0x67},
	NumPad8:                      {"NumPad8", 0x68},
	NumPad9:                      {"NumPad9", 0x69},
	Multiply:                     {"Multiply", 0x6A},
	Add:                          {"Add", 0x6B},
	Separator:                    {"Separator", 0x6C},
	Subtract:                     {"Subtract", 0x6D},
	Decimal:                      {"Decimal", 0x6E},
	Divide:                       {"Divide", 0x6F},
	F1:                           {"F1", 0x70},
	F2:                           {"F2", 0x71},
	F3:                           {"F3", 0x72},
	F4:                           {"F4", 0x73},
	F5:                           {"F5", 0x74},
	F6:                           {"F6", 0x75},
	F7:                           {"F7", 0x76},
	F8:                           {"F8", 0x77},
	F9:                           {"F9", 0x78},
	F10:                          {"F10", 0x79},
	F11:                          {"F11", 0x7A},
	F12:                          {"F12", 0x7B},
	F13:                          {"F13", 0x7C},
	F14:                          {"F14", 0x7D},
	F15:                          {"F15", 0x7E},
	F16:                          {"F16", 0x7F},
	F17:                          {"F17", 0x80},
	F18:                          {"F18", 0x81},
	F19:                          {"F19", 0x82},
	F20:                          {"F20", 0x83},
	F21:                          {"F21", 0x84},
	F22:                          {"F22", 0x85},
	F23:                          {"F23", 0x86},
	F24:                          {"F24", 0x87},
	NavigationView:               {"NavigationView", 0x88},
	NavigationMenu:               {"NavigationMenu", 0x89},
	NavigationUp:                 {"NavigationUp", 0x8A},
	NavigationDown:               {"NavigationDown", 0x8B},
	NavigationLeft:               {"NavigationLeft", 0x8C},
	NavigationRight:              {"NavigationRight", 0x8D},
	NavigationAccept:             {"NavigationAccept", 0x8E},
	NavigationCancel:             {"NavigationCancel", 0x8F},
	NumLock:                      {"NumLock", 0x90},
	ScrollLock:                   {"ScrollLock", 0x91},
	OemNecEqual:                  {"OemNecEqual", 0x92},
	OemFjJisho:                   {"OemFjJisho", 0x92},
	OemFjMasshou:                 {"OemFjMasshou", 0x93},
	OemFjTouroku:                 {"OemFjTouroku", 0x94},
	OemFjLoya:                    {"OemFjLoya", 0x95},
	OemFjRoya:                    {"OemFjRoya", 0x96},
	LShift:                       {"LShift", 0xA0},
	RShift:                       {"RShift", 0xA1},
	LControl:                     {"LControl", 0xA2},
	RControl:                     {"RControl", 0xA3},
	LAlt:                         {"LAlt", 0xA4},
	RAlt:                         {"RAlt", 0xA5},
	BrowserBack:                  {"BrowserBack", 0xA6},
	BrowserForward:               {"BrowserForward", 0xA7},
	BrowserRefresh:               {"BrowserRefresh", 0xA8},
	BrowserStop:                  {"BrowserStop", 0xA9},
	BrowserSearch:                {"BrowserSearch", 0xAA},
	BrowserFavorites:             {"BrowserFavorites", 0xAB},
	BrowserHome:                  {"BrowserHome", 0xAC},
	VolumeMute:                   {"VolumeMute", 0xAD},
	VolumeDown:                   {"VolumeDown", 0xAE},
	VolumeUp:                     {"VolumeUp", 0xAF},
	MediaNextTrack:               {"MediaNextTrack", 0xB0},
	MediaPrevTrack:               {"MediaPrevTrack", 0xB1},
	MediaStop:                    {"MediaStop", 0xB2},
	MediaPlayPause:               {"MediaPlayPause", 0xB3},
	LaunchMail:                   {"LaunchMail", 0xB4},
	LaunchMediaSelect:            {"LaunchMediaSelect", 0xB5},
	LaunchApp1:                   {"LaunchApp1", 0xB6},
	LaunchApp2:                   {"LaunchApp2", 0xB7},
	Oem1:                         {"Oem1", 0xBA},
	OemPlus:                      {"OemPlus", 0xBB},
	OemComma:                     {"OemComma", 0xBC},
	OemMinus:                     {"OemMinus", 0xBD},
	OemPeriod:                    {"OemPeriod", 0xBE},
	Oem2:                         {"Oem2", 0xBF},
	Oem3:                         {"Oem3", 0xC0},
	GamepadA:                     {"GamepadA", 0xC3},
	GamepadB:                     {"GamepadB", 0xC4},
	GamepadX:                     {"GamepadX", 0xC5},
	GamepadY:                     {"GamepadY", 0xC6},
	GamepadRightShoulder:         {"GamepadRightShoulder", 0xC7},
	GamepadLeftShoulder:          {"GamepadLeftShoulder", 0xC8},
	GamepadLeftTrigger:           {"GamepadLeftTrigger", 0xC9},
	GamepadRightTrigger:          {"GamepadRightTrigger", 0xCA},
	GamepadDPadUp:                {"GamepadDPadUp", 0xCB},
	GamepadDPadDown:              {"GamepadDPadDown", 0xCC},
	GamepadDPadLeft:              {"GamepadDPadLeft", 0xCD},
	GamepadDPadRight:             {"GamepadDPadRight", 0xCE},
	GamepadMenu:                  {"GamepadMenu", 0xCF},
	GamepadView:                  {"GamepadView", 0xD0},
	GamepadLeftThumbStickButton:  {"GamepadLeftThumbStickButton", 0xD1},
	GamepadRightThumbStickButton: {"GamepadRightThumbStickButton", 0xD2},
	GamepadLeftThumbStickUp:      {"GamepadLeftThumbStickUp", 0xD3},
	GamepadLeftThumbStickDown:    {"GamepadLeftThumbStickDown", 0xD4},
	GamepadLeftThumbStickRight:   {"GamepadLeftThumbStickRight", 0xD5},
	GamepadLeftThumbStickLeft:    {"GamepadLeftThumbStickLeft", 0xD6},
	GamepadRightThumbStickUp:     {"GamepadRightThumbStickUp", 0xD7},
	GamepadRightThumbStickDown:   {"GamepadRightThumbStickDown", 0xD8},
	GamepadRightThumbStickRight:  {"GamepadRightThumbStickRight", 0xD9},
	GamepadRightThumbStickLeft:   {"GamepadRightThumbStickLeft", 0xDA},
	Oem4:                         {"Oem4", 0xDB},
	Oem5:                         {"Oem5", 0xDC},
	Oem6:                         {"Oem6", 0xDD},
	Oem7:                         {"Oem7", 0xDE},
	Oem8:                         {"Oem8", 0xDF},
	OemAx:                        {"OemAx", 0xE1},
	Oem102:                       {"Oem102", 0xE2},
	IcoHelp:                      {"IcoHelp", 0xE3},
	Ico00:                        {"Ico00", 0xE4},
	ProcessKey:                   {"ProcessKey", 0xE5},
	IcoClear:                     {"IcoClear", 0xE6},
	OemReset:                     {"OemReset", 0xE9},
	OemJump:                      {"OemJump", 0xEA},
	OemPa1:                       {"OemPa1", 0xEB},
	OemPa2:                       {"OemPa2", 0xEC},
	OemPa3:                       {"OemPa3", 0xED},
	OemWsctrl:                    {"OemWsctrl", 0xEE},
	OemCusel:                     {"OemCusel", 0xEF},
	OemAttn:                      {"OemAttn", 0xF0},
	OemFinish:                    {"OemFinish", 0xF1},
	OemCopy:                      {"OemCopy", 0xF2},
	OemAuto:                      {"OemAuto", 0xF3},
	OemEnlw:                      {"OemEnlw", 0xF4},
	OemBacktab:                   {"OemBacktab", 0xF5},
	Attn:                         {"Attn", 0xF6},
	CrSel:                        {"CrSel", 0xF7},
	ExSel:                        {"ExSel", 0xF8},
	ErEof:                        {"ErEof", 0xF9},
	Play:                         {"Play", 0xFA},
	Zoom:                         {"Zoom", 0xFB},
	NoName:                       {"NoName", 0xFC},
	Pa1:                          {"Pa1", 0xFD},
	OemClear:                     {"OemClear", 0xFE},
}
var keysByName = func() map[string]VirtualKey {
	m := make(map[string]VirtualKey, len(keyTable))
	for i, e := range keyTable {
		m[strings.ToLower(e.name)] = VirtualKey(i)
	}
	return m
}()

// Code returns the native virtual-key code for k, or zero for an unknown key.
func (k VirtualKey) Code() uint16 {
	if !k.Valid() {
		return 0
	}
	return keyTable[k].code
}

// Valid reports whether k is one of the enumerated keys.
func (k VirtualKey) Valid() bool {
	return k < virtualKeyCount
}

// String returns the key name.
func (k VirtualKey) String() string {
	if !k.Valid() {
		return fmt.Sprintf("VirtualKey(%d)", uint8(k))
	}
	return keyTable[k].name
}

// ParseVirtualKey looks a key up by name, ignoring case.
func ParseVirtualKey(name string) (VirtualKey, error) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown virtual key %q", name)
	}
	return k, nil
}

// VirtualKeys returns every enumerated key in table order.
func VirtualKeys() []VirtualKey {
	out := make([]VirtualKey, virtualKeyCount)
	for i := range out {
		out[i] = VirtualKey(i)
	}
	return out
}
