// Package control handles the input websocket protocol and pointer gestures.
package control

// Message is a control websocket payload.
type Message struct {
	T       string  `json:"t"`
	ID      int     `json:"id,omitempty"`
	Key     string  `json:"key,omitempty"`
	Button  string  `json:"button,omitempty"`
	Text    string  `json:"text,omitempty"`
	Down    bool    `json:"down,omitempty"`
	X       int32   `json:"x,omitempty"`
	Y       int32   `json:"y,omitempty"`
	NX      float64 `json:"nx,omitempty"`
	NY      float64 `json:"ny,omitempty"`
	Idx     int     `json:"idx,omitempty"`
	HWND    uint64  `json:"hwnd,omitempty"`
	Space   string  `json:"space,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
}

// Reply acknowledges one Message.
type Reply struct {
	T       string `json:"t"`
	Of      string `json:"of"`
	Error   string `json:"error,omitempty"`
	Skipped bool   `json:"skipped,omitempty"`
}

const (
	replyOK    = "ok"
	replyError = "error"
)
