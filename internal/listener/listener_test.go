package listener

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/zhubert/wowint/internal/errors"
	"github.com/zhubert/wowint/internal/logger"
	"github.com/zhubert/wowint/internal/sender"
)

func startListener(t *testing.T) (*Listener, *sender.Target) {
	t.Helper()
	logger.Reset()
	if err := logger.Init(filepath.Join(t.TempDir(), "listener.log")); err != nil {
		t.Fatalf("logger.Init: %v", err)
	}
	t.Cleanup(logger.Reset)

	l, err := Listen("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	t.Cleanup(func() { l.Close() })

	port := l.Addr().(*net.UDPAddr).Port
	return l, sender.New("127.0.0.1", uint16(port), 2)
}

func TestReceive_DecodesSenderOutput(t *testing.T) {
	l, target := startListener(t)

	if err := target.SendToDefaultTarget(2037); err != nil {
		t.Fatalf("send: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	d, err := l.Receive(ctx)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if d.Err != nil {
		t.Fatalf("datagram error: %v", d.Err)
	}
	if d.Index != 2 || d.Code != 2037 {
		t.Errorf("got (%d, %d), want (2, 2037)", d.Index, d.Code)
	}
	if d.Name != "LeftArrow (release)" {
		t.Errorf("Name = %q, want %q", d.Name, "LeftArrow (release)")
	}
}

func TestReceive_BadPayload(t *testing.T) {
	l, target := startListener(t)

	conn, err := net.Dial("udp", target.Addr())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()
	if _, err := conn.Write([]byte{1, 2, 3}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	d, err := l.Receive(ctx)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if !errors.Is(d.Err, errors.KindInvalid) {
		t.Errorf("datagram Err = %v, want invalid payload", d.Err)
	}
}

func TestReceive_ContextCancelled(t *testing.T) {
	l, _ := startListener(t)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	start := time.Now()
	if _, err := l.Receive(ctx); err == nil {
		t.Fatal("Receive should fail once the context is done")
	}
	if time.Since(start) > 2*time.Second {
		t.Error("Receive did not honour the context deadline")
	}
}

func TestServe_Max(t *testing.T) {
	l, target := startListener(t)

	for _, code := range []int32{1013, 2013, 1300} {
		if err := target.SendToDefaultTarget(code); err != nil {
			t.Fatalf("send: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var got []int32
	if err := l.Serve(ctx, 3, func(d Datagram) { got = append(got, d.Code) }); err != nil {
		t.Fatalf("Serve: %v", err)
	}
	if len(got) != 3 || got[0] != 1013 || got[1] != 2013 || got[2] != 1300 {
		t.Errorf("got %v, want [1013 2013 1300]", got)
	}
}

func TestListen_Error(t *testing.T) {
	_, err := Listen("not-an-address")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.KindIO) {
		t.Errorf("kind = %v, want I/O error", errors.GetKind(err))
	}
}
