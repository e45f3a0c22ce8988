// Package client connects the TUI to a running huddled.
package client

import (
	"github.com/matheus3301/huddle/internal/rpc"
	"google.golang.org/grpc"
)

// Client holds typed service clients sharing one connection to the daemon.
type Client struct {
	conn    *grpc.ClientConn
	Roster  *rpc.RosterClient
	Thread  *rpc.ThreadClient
	Session *rpc.SessionClient
}

// New dials the daemon's Unix domain socket.
func New(socketPath string) (*Client, error) {
	conn, err := rpc.Dial(socketPath)
	if err != nil {
		return nil, err
	}
	return FromConn(conn), nil
}

// FromConn wraps an existing connection. The Client takes ownership of conn.
func FromConn(conn *grpc.ClientConn) *Client {
	return &Client{
		conn:    conn,
		Roster:  rpc.NewRosterClient(conn),
		Thread:  rpc.NewThreadClient(conn),
		Session: rpc.NewSessionClient(conn),
	}
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
