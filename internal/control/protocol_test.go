package control

import (
	"encoding/json"
	"testing"
)

// TestProtocol_Key verifies decoding a key message.
func TestProtocol_Key(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"key","key":"Enter","down":true}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "key" || msg.Key != "Enter" || !msg.Down {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Move verifies decoding signed coordinates.
func TestProtocol_Move(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"moveBy","x":-12,"y":40}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "moveBy" || msg.X != -12 || msg.Y != 40 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_PostButton verifies decoding a window-targeted message.
func TestProtocol_PostButton(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"postButton","hwnd":65538,"button":"x1","down":true,"x":5,"y":-3}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.HWND != 65538 || msg.Button != "x1" || msg.X != 5 || msg.Y != -3 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_InputEnabled verifies the kill switch payload distinguishes false from missing.
func TestProtocol_InputEnabled(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"inputEnabled","enabled":false}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.Enabled == nil || *msg.Enabled {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Reply verifies reply encoding omits empty fields.
func TestProtocol_Reply(t *testing.T) {
	data, err := json.Marshal(Reply{T: replyOK, Of: "key"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"t":"ok","of":"key"}` {
		t.Fatalf("unexpected reply %s", data)
	}
}
