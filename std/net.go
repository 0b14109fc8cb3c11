package std

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/lumenscript/lumen/values"
)

func init() {
	register(
		&values.NativeFunction{Name: "listen", Arity: 1, Fn: nativeListen},
		&values.NativeFunction{Name: "connect", Arity: 2, Fn: nativeConnect},
		&values.NativeFunction{Name: "connectTLS", Arity: 2, Fn: nativeConnectTLS},
		&values.NativeFunction{Name: "accept", Arity: 1, Fn: nativeAccept},
		&values.NativeFunction{Name: "read", Arity: 1, Fn: nativeRead},
		&values.NativeFunction{Name: "write", Arity: 2, Fn: nativeWrite},
	)
}

// nativeListen submits a task that opens a TCP listener on the given port
// and returns its Promise immediately, the same calling convention every
// net native shares.
func nativeListen(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("listen", args, 1); err != nil {
		return nil, err
	}
	port, err := number("listen", args, 0)
	if err != nil {
		return nil, err
	}
	promise := rt.SubmitTask(func() (values.Value, error) {
		l, err := net.Listen("tcp", fmt.Sprintf(":%d", int(port)))
		if err != nil {
			return nil, values.NewRuntimeError(values.ErrIO, 0, "listen: %s", err)
		}
		return values.NewServer(l), nil
	})
	return promise, nil
}

func nativeConnect(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("connect", args, 2); err != nil {
		return nil, err
	}
	addr, err := str("connect", args, 0)
	if err != nil {
		return nil, err
	}
	port, err := number("connect", args, 1)
	if err != nil {
		return nil, err
	}
	promise := rt.SubmitTask(func() (values.Value, error) {
		conn, err := net.Dial("tcp", net.JoinHostPort(addr, strconv.Itoa(int(port))))
		if err != nil {
			return nil, values.NewRuntimeError(values.ErrIO, 0, "connect: %s", err)
		}
		return values.NewSocket(conn), nil
	})
	return promise, nil
}

func nativeConnectTLS(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("connectTLS", args, 2); err != nil {
		return nil, err
	}
	addr, err := str("connectTLS", args, 0)
	if err != nil {
		return nil, err
	}
	port, err := number("connectTLS", args, 1)
	if err != nil {
		return nil, err
	}
	promise := rt.SubmitTask(func() (values.Value, error) {
		hostPort := net.JoinHostPort(addr, strconv.Itoa(int(port)))
		conn, err := tls.Dial("tcp", hostPort, &tls.Config{ServerName: addr})
		if err != nil {
			return nil, values.NewRuntimeError(values.ErrIO, 0, "connectTLS: %s", err)
		}
		return values.NewTlsSocket(conn), nil
	})
	return promise, nil
}

func nativeAccept(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("accept", args, 1); err != nil {
		return nil, err
	}
	server, ok := args[0].(*values.Server)
	if !ok {
		return nil, values.NewRuntimeError(values.ErrTypeMismatch, 0,
			"accept expects a server, got %s", args[0].Kind())
	}
	promise := rt.SubmitTask(func() (values.Value, error) {
		conn, err := server.Listener.Accept()
		if err != nil {
			return nil, values.NewRuntimeError(values.ErrIO, 0, "accept: %s", err)
		}
		return values.NewSocket(conn), nil
	})
	return promise, nil
}

func nativeRead(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("read", args, 1); err != nil {
		return nil, err
	}
	switch sock := args[0].(type) {
	case *values.Socket:
		return submitRead(rt, sock.Reader()), nil
	case *values.TlsSocket:
		return submitRead(rt, sock.Reader()), nil
	default:
		return nil, values.NewRuntimeError(values.ErrTypeMismatch, 0,
			"read expects a socket, got %s", args[0].Kind())
	}
}

func submitRead(rt values.Runtime, reader interface{ ReadString(byte) (string, error) }) *values.Promise {
	return rt.SubmitTask(func() (values.Value, error) {
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				return nil, values.NewRuntimeError(values.ErrIO, 0, "read: connection closed")
			}
			return nil, values.NewRuntimeError(values.ErrIO, 0, "read: %s", err)
		}
		return values.String{V: strings.TrimRight(line, "\r\n")}, nil
	})
}

// nativeWrite replaces the literal two-character escape sequences \r\n,
// \n, \r with their real control bytes before writing.
func nativeWrite(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("write", args, 2); err != nil {
		return nil, err
	}
	payload, err := str("write", args, 1)
	if err != nil {
		return nil, err
	}
	payload = unescapeNewlines(payload)

	var writer io.Writer
	switch sock := args[0].(type) {
	case *values.Socket:
		writer = sock.Conn
	case *values.TlsSocket:
		writer = sock.Conn
	default:
		return nil, values.NewRuntimeError(values.ErrTypeMismatch, 0,
			"write expects a socket, got %s", args[0].Kind())
	}

	promise := rt.SubmitTask(func() (values.Value, error) {
		n, err := io.WriteString(writer, payload)
		if err != nil {
			return nil, values.NewRuntimeError(values.ErrIO, 0, "write: %s", err)
		}
		return values.Number{V: float64(n)}, nil
	})
	return promise, nil
}

func unescapeNewlines(s string) string {
	s = strings.ReplaceAll(s, `\r\n`, "\r\n")
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\r`, "\r")
	return s
}
