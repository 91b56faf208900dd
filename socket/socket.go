package socket

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net"
	"os"
	"sync"
	"time"

	b "warlands/binary"
	"warlands/game"
	"warlands/types"
)

var server *GameServer

type GameConnection struct {
	// TCP client connection
	conn net.Conn
	// Unique connection ID
	connID uint32

	// Address bound at login; empty until then. Authorization for every
	// operation is checked against this address.
	address string

	server *GameServer
	mu     sync.RWMutex // Mutex for thread-safe access

	lastHeartbeat time.Time
}

type GameServer struct {
	connections map[uint32]*GameConnection
	ledger      *game.Ledger
	mu          sync.RWMutex
}

func NewGameServer(ledger *game.Ledger) *GameServer {
	return &GameServer{
		connections: make(map[uint32]*GameConnection),
		ledger:      ledger,
	}
}

func NewGameConnection(conn net.Conn, server *GameServer) *GameConnection {
	// Generate a unique connection ID
	var connID uint32
	for {
		connID = rand.Uint32()
		unique := true
		server.mu.RLock()
		_, exists := server.connections[connID]
		if exists {
			unique = false
		}
		server.mu.RUnlock()

		if unique {
			break
		}
	}
	return &GameConnection{
		conn:          conn,
		connID:        connID,
		server:        server,
		lastHeartbeat: time.Now(),
	}
}

func (gc *GameConnection) caller() string {
	gc.mu.RLock()
	defer gc.mu.RUnlock()
	return gc.address
}

func (gc *GameConnection) SendTCPMessage(msg b.Message) error {
	if gc == nil || gc.conn == nil {
		return fmt.Errorf("invalid connection")
	}

	gc.mu.RLock()
	conn := gc.conn
	gc.mu.RUnlock()

	rawData, err := b.EncodeRawMessage(msg)
	if err != nil {
		return err
	}

	// Combine length and data into a single buffer
	messageBuffer := make([]byte, 4+len(rawData))
	binary.LittleEndian.PutUint32(messageBuffer[:4], uint32(len(rawData)))
	copy(messageBuffer[4:], rawData)

	// Write entire message in a single call
	if _, err := conn.Write(messageBuffer); err != nil {
		return fmt.Errorf("failed to write message: %v", err)
	}

	return nil
}

// reply sends a JSON payload back under the request's message type.
func (gc *GameConnection) reply(msgType types.MessageType, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		gc.replyError(msgType, err)
		return
	}
	if err := gc.SendTCPMessage(b.Message{Type: msgType, Data: data}); err != nil {
		log.Printf("Error replying to %s: %v\n", gc.conn.RemoteAddr().String(), err)
	}
}

// replyError sends the dotted error code for ledger failures and hides
// internal errors behind a generic code.
func (gc *GameConnection) replyError(msgType types.MessageType, err error) {
	code := "error.internal"
	switch err.(type) {
	case *game.Error, *game.CooldownError:
		code = err.Error()
	default:
		log.Printf("Internal error on message type %d: %v\n", msgType, err)
	}
	gc.SendTCPMessage(b.Message{Type: msgType, Error: code})
}

// handleDisconnect must be called with server mutex locked
func (gc *GameConnection) handleDisconnect() {
	log.Printf("Disconnected: %s\n", gc.conn.RemoteAddr().String())
	delete(gc.server.connections, gc.connID)
}

func (s *GameServer) cleanupInactiveConnections() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.RLock()
		connectionsCopy := make([]*GameConnection, 0, len(s.connections))
		for _, gc := range s.connections {
			connectionsCopy = append(connectionsCopy, gc)
		}
		s.mu.RUnlock()

		now := time.Now()
		connectionsToRemove := make([]*GameConnection, 0)

		for _, gc := range connectionsCopy {
			gc.mu.RLock()
			shouldRemove := now.Sub(gc.lastHeartbeat) > 30*time.Second
			gc.mu.RUnlock()

			if shouldRemove {
				connectionsToRemove = append(connectionsToRemove, gc)
			}
		}

		if len(connectionsToRemove) > 0 {
			s.mu.Lock()
			for _, gc := range connectionsToRemove {
				gc.handleDisconnect()
				gc.conn.Close()
			}
			s.mu.Unlock()
		}
	}
}

func StartServer(ledger *game.Ledger) {
	port := os.Getenv("APP_PORT")
	server = NewGameServer(ledger)

	// Start cleanup routine
	go server.cleanupInactiveConnections()

	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		log.Fatalf("Server could not be started: %v", err)
	}
	defer listener.Close()

	fmt.Printf("TCP server is running on port %s...\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Printf("Error accepting connection: %v", err)
			continue
		}

		// Handle connection
		go handleTCPConnection(server, conn)
	}
}
