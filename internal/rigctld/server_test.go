package rigctld

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/rig"
)

func startTestServer(t *testing.T) *Server {
	t.Helper()
	r, err := rig.New(driver.ModelDummy, "/dev/null")
	if err != nil {
		t.Fatalf("rig.New failed: %v", err)
	}
	if err := r.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { r.Destroy(context.Background()) })

	s := NewServer(r, Config{Address: "127.0.0.1:0"})
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(func() { s.Stop() })
	return s
}

func dialTestServer(t *testing.T, s *Server) (net.Conn, *bufio.Reader) {
	t.Helper()
	conn, err := net.DialTimeout("tcp", s.Addr().String(), 2*time.Second)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetDeadline(time.Now().Add(5 * time.Second))
	return conn, bufio.NewReader(conn)
}

func readLine(t *testing.T, rd *bufio.Reader) string {
	t.Helper()
	line, err := rd.ReadString('\n')
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return line
}

func TestServerCommandRoundTrip(t *testing.T) {
	s := startTestServer(t)
	conn, rd := dialTestServer(t, s)

	fmt.Fprintf(conn, "\\set_freq 7074000\n")
	if got := readLine(t, rd); got != "RPRT 0\n" {
		t.Fatalf("set_freq reply = %q", got)
	}

	fmt.Fprintf(conn, "\\get_freq\n")
	if got := readLine(t, rd); got != "7074000\n" {
		t.Errorf("get_freq reply = %q", got)
	}

	// The backslash prefix is optional.
	fmt.Fprintf(conn, "get_freq\n")
	if got := readLine(t, rd); got != "7074000\n" {
		t.Errorf("unprefixed get_freq reply = %q", got)
	}
}

func TestServerQuitClosesConnection(t *testing.T) {
	s := startTestServer(t)
	conn, rd := dialTestServer(t, s)

	fmt.Fprintf(conn, "q\n")
	if _, err := rd.ReadString('\n'); err == nil {
		t.Error("connection still open after quit")
	}
}

func TestServerConcurrentClients(t *testing.T) {
	s := startTestServer(t)

	done := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func(n int) {
			conn, err := net.DialTimeout("tcp", s.Addr().String(), 2*time.Second)
			if err != nil {
				done <- err
				return
			}
			defer conn.Close()
			conn.SetDeadline(time.Now().Add(5 * time.Second))
			rd := bufio.NewReader(conn)

			for j := 0; j < 5; j++ {
				fmt.Fprintf(conn, "\\set_freq %d\n", 14_000_000+n*1000+j)
				if line, err := rd.ReadString('\n'); err != nil || line != "RPRT 0\n" {
					done <- fmt.Errorf("set_freq reply %q, err %v", line, err)
					return
				}
				fmt.Fprintf(conn, "\\get_freq\n")
				if _, err := rd.ReadString('\n'); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}(i)
	}

	for i := 0; i < 4; i++ {
		if err := <-done; err != nil {
			t.Fatalf("client failed: %v", err)
		}
	}
}

func TestServerStopUnblocksClients(t *testing.T) {
	s := startTestServer(t)
	conn, rd := dialTestServer(t, s)

	fmt.Fprintf(conn, "\\get_freq\n")
	readLine(t, rd)

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if _, err := rd.ReadString('\n'); err == nil {
		t.Error("connection survived server stop")
	}

	// Stop is idempotent.
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop failed: %v", err)
	}
}
