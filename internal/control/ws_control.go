package control

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/frudas24/winsim/internal/monitor"
	"github.com/frudas24/winsim/internal/session"
	"github.com/frudas24/winsim/internal/simulate"
	"github.com/frudas24/winsim/internal/wininput"
	"github.com/frudas24/winsim/internal/winmsg"
)

// ErrPostingUnavailable is returned for post* messages when no poster is configured.
var ErrPostingUnavailable = errors.New("message posting unavailable")

// MonitorProvider returns the current list of monitors.
type MonitorProvider func() ([]monitor.Monitor, error)

// Server handles websocket control input.
type Server struct {
	mu           sync.Mutex
	upgrader     websocket.Upgrader
	session      *session.Session
	input        simulate.Input
	poster       *winmsg.Poster
	listMonitors MonitorProvider
	gestures     *GestureState
	debug        bool
	conn         *websocket.Conn
}

// NewServer creates a control websocket server. poster and listMonitors may be nil.
func NewServer(sess *session.Session, input simulate.Input, poster *winmsg.Poster, listMonitors MonitorProvider, debug bool) *Server {
	return &Server{
		session:      sess,
		input:        input,
		poster:       poster,
		listMonitors: listMonitors,
		gestures:     NewGestureState(),
		debug:        debug,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()))
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		reply := Reply{T: replyOK, Of: msg.T}
		skipped, err := s.handleMessage(msg)
		if err != nil {
			if s.debug {
				log.Printf("control: %s: %v", msg.T, err)
			}
			reply.T = replyError
			reply.Error = err.Error()
		}
		reply.Skipped = skipped
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// handleMessage dispatches a single control message.
// skipped reports input dropped by the kill switch or the gesture throttle.
func (s *Server) handleMessage(msg Message) (skipped bool, err error) {
	switch msg.T {
	case "ping":
		return false, nil
	case "inputEnabled":
		if msg.Enabled != nil {
			s.session.SetInputEnabled(*msg.Enabled)
		}
		return false, nil
	case "space":
		space, err := simulate.ParseSpace(msg.Space)
		if err != nil {
			return false, badMessage(err)
		}
		s.session.SetMoveSpace(space)
		return false, nil
	}

	if !s.session.InputEnabled() {
		return true, nil
	}
	switch msg.T {
	case "postKey", "postButton", "postChar":
		return false, s.handlePost(msg)
	}

	actions, err := s.actionsFor(msg)
	if err != nil {
		return false, err
	}
	if len(actions) == 0 {
		return true, nil
	}
	return false, s.applyActions(actions)
}

// actionsFor builds the actions for an input message, including gestures and monitor moves.
func (s *Server) actionsFor(msg Message) ([]simulate.Action, error) {
	actions, ok, err := ActionsFor(msg)
	if ok || err != nil {
		return actions, err
	}
	switch msg.T {
	case "down":
		b, err := ParseButton(msg.Button)
		if err != nil {
			return nil, err
		}
		return s.gestures.HandleDown(msg.ID, msg.X, msg.Y, b), nil
	case "move":
		return s.gestures.HandleMove(msg.ID, msg.X, msg.Y), nil
	case "up":
		return s.gestures.HandleUp(msg.ID, msg.X, msg.Y), nil
	case "moveToMonitor":
		x, y, err := s.monitorPoint(msg)
		if err != nil {
			return nil, err
		}
		return []simulate.Action{simulate.SetPosition{X: x, Y: y}}, nil
	}
	return nil, badMessage(fmt.Errorf("unknown message type %q", msg.T))
}

// monitorPoint maps normalized monitor coordinates to virtual-desktop pixels.
func (s *Server) monitorPoint(msg Message) (int32, int32, error) {
	if s.listMonitors == nil {
		return 0, 0, monitor.ErrNoMonitors
	}
	monitors, err := s.listMonitors()
	if err != nil {
		return 0, 0, err
	}
	m, ok := monitor.GetMonitorByIndex(monitors, msg.Idx)
	if !ok {
		return 0, 0, badMessage(fmt.Errorf("monitor %d not found", msg.Idx))
	}
	bounds, err := monitor.Bounds(monitors)
	if err != nil {
		return 0, 0, err
	}
	if s.session.MoveSpace() == simulate.Primary {
		// Primary-space moves cannot leave the primary display.
		if !m.Primary {
			return 0, 0, badMessage(fmt.Errorf("monitor %d is not primary in primary space", msg.Idx))
		}
		bounds = monitor.Monitor{}
	}
	x, y := monitor.DesktopPoint(m, bounds, msg.NX, msg.NY)
	return int32(x), int32(y), nil
}

// handlePost delivers a message straight to a window queue.
func (s *Server) handlePost(msg Message) error {
	if s.poster == nil {
		return ErrPostingUnavailable
	}
	hwnd := uintptr(msg.HWND)
	if hwnd == 0 {
		return badMessage(errors.New("hwnd is required"))
	}
	switch msg.T {
	case "postKey":
		vk, err := wininput.ParseVirtualKey(msg.Key)
		if err != nil {
			return badMessage(err)
		}
		if msg.Down {
			return s.poster.KeyDown(hwnd, vk)
		}
		return s.poster.KeyUp(hwnd, vk)
	case "postButton":
		b, err := wininput.ParseMouseButton(msg.Button)
		if err != nil {
			return badMessage(err)
		}
		if msg.X < math.MinInt16 || msg.X > math.MaxInt16 || msg.Y < math.MinInt16 || msg.Y > math.MaxInt16 {
			return badMessage(fmt.Errorf("client position (%d,%d) out of range", msg.X, msg.Y))
		}
		if msg.Down {
			return s.poster.ButtonDown(hwnd, b, int16(msg.X), int16(msg.Y))
		}
		return s.poster.ButtonUp(hwnd, b, int16(msg.X), int16(msg.Y))
	case "postChar":
		for _, r := range msg.Text {
			if err := s.poster.Char(hwnd, r); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

// applyActions executes actions in order and stops at the first failure.
func (s *Server) applyActions(actions []simulate.Action) error {
	backend := simulate.NewWindows(s.input, s.session.MoveSpace())
	for _, action := range actions {
		if err := backend.Simulate(action); err != nil {
			return err
		}
		s.session.RecordAction()
	}
	return nil
}
