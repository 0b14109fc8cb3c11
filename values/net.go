package values

import (
	"bufio"
	"crypto/tls"
	"fmt"
	"net"
	"sync"

	"github.com/google/uuid"
)

// Socket wraps a plain TCP connection. Equality is by handle identity,
// which pointer equality on *Socket already gives for free. ID is a UUID
// stamped on creation and never compared for equality; typeOf and
// toString output do not include it (String prints the remote address).
type Socket struct {
	ID   uuid.UUID
	Conn net.Conn

	mu     sync.Mutex
	reader *bufio.Reader
}

func NewSocket(conn net.Conn) *Socket {
	return &Socket{ID: uuid.New(), Conn: conn}
}

func (*Socket) Kind() Kind { return KindSocket }

func (s *Socket) String() string {
	return fmt.Sprintf("<socket %s>", s.Conn.RemoteAddr())
}

// Reader returns a buffered reader over the connection, created once and
// reused so successive `read` calls don't drop already-buffered bytes.
func (s *Socket) Reader() *bufio.Reader {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reader == nil {
		s.reader = bufio.NewReader(s.Conn)
	}
	return s.reader
}

// TlsSocket wraps a TLS connection. Kept as a distinct Kind from Socket
// rather than folded into it, since plain and TLS connections need
// different dial/accept natives.
type TlsSocket struct {
	ID   uuid.UUID
	Conn *tls.Conn

	mu     sync.Mutex
	reader *bufio.Reader
}

func NewTlsSocket(conn *tls.Conn) *TlsSocket {
	return &TlsSocket{ID: uuid.New(), Conn: conn}
}

func (*TlsSocket) Kind() Kind { return KindTlsSocket }

func (s *TlsSocket) String() string {
	return fmt.Sprintf("<tls-socket %s>", s.Conn.RemoteAddr())
}

func (s *TlsSocket) Reader() *bufio.Reader {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reader == nil {
		s.reader = bufio.NewReader(s.Conn)
	}
	return s.reader
}

// Server wraps a listening socket, returned by the `listen` native and
// consumed by `accept`.
type Server struct {
	ID       uuid.UUID
	Listener net.Listener
}

func NewServer(l net.Listener) *Server {
	return &Server{ID: uuid.New(), Listener: l}
}

func (*Server) Kind() Kind { return KindServer }

func (s *Server) String() string {
	return fmt.Sprintf("<server %s>", s.Listener.Addr())
}
