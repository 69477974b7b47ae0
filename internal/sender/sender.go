// Package sender transmits action codes to a remote receiver as 8-byte UDP datagrams.
//
// A Target is a stateless capability: every send opens a fresh ephemeral UDP
// endpoint on the wildcard address, writes one datagram to the destination and
// closes the endpoint. There is no connection, retry, buffering or
// acknowledgment. A Target is safe for concurrent use.
package sender

import (
	"net"
	"strconv"

	"github.com/zhubert/wowint/internal/errors"
	"github.com/zhubert/wowint/internal/wire"
)

// Sender is the set of send operations offered by a Target.
type Sender interface {
	SendToDefaultTarget(code int32) error
	SendToTargetAtIndex(index, code int32) error
	SendToAll(code int32) error
}

// Target identifies a receiver and the player index it controls by default.
type Target struct {
	host  string
	port  uint16
	index int32
}

var _ Sender = (*Target)(nil)

// New returns a Target. It performs no I/O and does not validate the host.
func New(host string, port uint16, index int32) *Target {
	return &Target{host: host, port: port, index: index}
}

// Host returns the destination host.
func (t *Target) Host() string { return t.host }

// Port returns the destination port.
func (t *Target) Port() uint16 { return t.port }

// Index returns the default target index.
func (t *Target) Index() int32 { return t.index }

// Addr returns the destination as host:port. IPv6 literals are bracketed.
func (t *Target) Addr() string {
	return net.JoinHostPort(t.host, strconv.Itoa(int(t.port)))
}

// SendToDefaultTarget sends code addressed to the default index.
func (t *Target) SendToDefaultTarget(code int32) error {
	return t.SendToTargetAtIndex(t.index, code)
}

// SendToTargetAtIndex sends code addressed to index.
func (t *Target) SendToTargetAtIndex(index, code int32) error {
	addr := t.Addr()
	dst, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return errors.ResolveFailed(addr, err)
	}

	conn, err := net.ListenPacket("udp", ":0")
	if err != nil {
		return errors.EndpointFailed(err)
	}
	defer conn.Close()

	payload := wire.Encode(index, code)
	if _, err := conn.WriteTo(payload[:], dst); err != nil {
		return errors.SendFailed(addr, err)
	}
	return nil
}

// SendToAll sends code to every player. A Target has a single destination, so
// this is the same as SendToDefaultTarget; fan out to several receivers by
// holding one Target per destination.
func (t *Target) SendToAll(code int32) error {
	return t.SendToDefaultTarget(code)
}
