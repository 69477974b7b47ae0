// Package listener is a debug receiver: it binds a UDP port and decodes the
// datagrams a sender emits. It stands in for the game-side receiver when
// checking that codes arrive as expected.
package listener

import (
	"context"
	stderrors "errors"
	"net"
	"os"
	"time"

	"github.com/zhubert/wowint/internal/errors"
	"github.com/zhubert/wowint/internal/logger"
	"github.com/zhubert/wowint/internal/registry"
	"github.com/zhubert/wowint/internal/wire"
)

// pollInterval bounds how long a read blocks before the context is rechecked.
const pollInterval = 200 * time.Millisecond

// Datagram is one decoded message.
type Datagram struct {
	From  net.Addr
	Index int32
	Code  int32
	// Name describes the code ("LeftArrow (press)", "PressA"), empty if unknown.
	Name string
	// Err is set when the payload was not 8 bytes; Index and Code are then zero.
	Err error
}

// Listener receives datagrams on a UDP socket.
type Listener struct {
	conn net.PacketConn
}

// Listen binds addr (host:port, host may be empty for the wildcard address).
func Listen(addr string) (*Listener, error) {
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return nil, errors.ListenFailed(addr, err)
	}
	logger.ComponentLogger("listener").Info("listening", "addr", conn.LocalAddr().String())
	return &Listener{conn: conn}, nil
}

// Addr returns the bound local address.
func (l *Listener) Addr() net.Addr {
	return l.conn.LocalAddr()
}

// Close releases the socket.
func (l *Listener) Close() error {
	return l.conn.Close()
}

// Receive waits for the next datagram. It returns ctx.Err() once ctx is done.
func (l *Listener) Receive(ctx context.Context) (Datagram, error) {
	buf := make([]byte, 64)
	for {
		if err := ctx.Err(); err != nil {
			return Datagram{}, err
		}
		if err := l.conn.SetReadDeadline(time.Now().Add(pollInterval)); err != nil {
			return Datagram{}, errors.E(errors.Op("listener.Receive"), errors.KindIO, err)
		}
		n, from, err := l.conn.ReadFrom(buf)
		if err != nil {
			if stderrors.Is(err, os.ErrDeadlineExceeded) {
				continue
			}
			return Datagram{}, errors.E(errors.Op("listener.Receive"), errors.KindIO, err)
		}
		return decode(from, buf[:n]), nil
	}
}

// Serve calls handle for every datagram until ctx is done or limit datagrams
// were handled (limit <= 0 means no limit).
func (l *Listener) Serve(ctx context.Context, limit int, handle func(Datagram)) error {
	for count := 0; limit <= 0 || count < limit; count++ {
		d, err := l.Receive(ctx)
		if err != nil {
			if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
		handle(d)
	}
	return nil
}

func decode(from net.Addr, payload []byte) Datagram {
	index, code, err := wire.Decode(payload)
	if err != nil {
		return Datagram{From: from, Err: err}
	}
	return Datagram{
		From:  from,
		Index: index,
		Code:  code,
		Name:  registry.Describe(registry.Code(code)),
	}
}
