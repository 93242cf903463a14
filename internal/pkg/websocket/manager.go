package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/taximeter/internal/pkg/constants"
	"github.com/piresc/taximeter/internal/pkg/logger"
	"github.com/piresc/taximeter/internal/pkg/models"
)

const writeWait = 10 * time.Second

// Client is a connected WebSocket peer. Writes go through the Manager, which serializes them.
type Client struct {
	ID   string
	Conn *websocket.Conn

	writeMu sync.Mutex
}

// Manager manages WebSocket connections
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request and runs handleClient until it returns
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client := &Client{ID: uuid.NewString(), Conn: ws}
	m.AddClient(client)
	defer m.RemoveClient(client.ID)

	logger.Debug("WebSocket client connected",
		logger.String("client_id", client.ID),
		logger.String("remote_addr", c.RealIP()))

	return handleClient(client)
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.ID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(clientID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, clientID)
}

// ClientCount returns the number of connected clients
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// SendMessage sends a message to a WebSocket client
func (m *Manager) SendMessage(client *Client, event string, data interface{}) error {
	if client == nil || client.Conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %v", err)
	}

	client.writeMu.Lock()
	defer client.writeMu.Unlock()
	if err := client.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return client.Conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(client *Client, code string, message string) error {
	return m.SendMessage(client, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// SendCategorizedError logs err and sends the client a message matching its severity
func (m *Manager) SendCategorizedError(client *Client, err error, code string, severity constants.ErrorSeverity) error {
	logger.Warn("WebSocket operation failed",
		logger.String("client_id", client.ID),
		logger.String("error_code", code),
		logger.Err(err))

	if severity == constants.ErrorSeverityClient {
		return m.SendErrorMessage(client, code, err.Error())
	}
	return m.SendErrorMessage(client, code, "Operation failed")
}
