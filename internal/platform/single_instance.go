package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"net"
	"sync"
	"time"
)

var (
	// ErrAlreadyRunning indicates another instance already holds the lock.
	ErrAlreadyRunning = errors.New("instance already running")
	// ErrPortInUse indicates the lock port is held by something that does not
	// answer like a running instance.
	ErrPortInUse = errors.New("single instance port in use")
)

const (
	activateMessage = "activate\n"
	ackMessage      = "ok\n"
	replyTimeout    = time.Second
)

// InstanceGuard holds the single-instance lock. Later launches connect to it
// to ask the running instance to raise its window.
type InstanceGuard struct {
	listener net.Listener
	address  string

	mu         sync.Mutex
	onActivate func()
	done       chan struct{}
}

// AcquireSingleInstance attempts to bind a deterministic localhost port. When
// the port is taken it asks the owner to activate and returns ErrAlreadyRunning
// once the owner acknowledges, or ErrPortInUse when it does not.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	return acquire(addressFor(appName))
}

func acquire(address string) (*InstanceGuard, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		if notifyErr := notifyRunning(address); notifyErr != nil {
			return nil, fmt.Errorf("%w at %s: %v", ErrPortInUse, address, notifyErr)
		}
		return nil, fmt.Errorf("%w at %s", ErrAlreadyRunning, address)
	}

	guard := &InstanceGuard{
		listener: listener,
		address:  address,
		done:     make(chan struct{}),
	}
	go guard.serve()
	return guard, nil
}

// SetOnActivate registers the handler run when another launch is attempted.
// The handler runs on the guard's goroutine.
func (guard *InstanceGuard) SetOnActivate(handler func()) {
	guard.mu.Lock()
	defer guard.mu.Unlock()
	guard.onActivate = handler
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	<-guard.done
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func (guard *InstanceGuard) serve() {
	defer close(guard.done)
	for {
		conn, err := guard.listener.Accept()
		if err != nil {
			return
		}
		buffer := make([]byte, len(activateMessage))
		_ = conn.SetDeadline(time.Now().Add(replyTimeout))
		count, _ := io.ReadFull(conn, buffer)
		if string(buffer[:count]) != activateMessage {
			_ = conn.Close()
			continue
		}
		_, _ = conn.Write([]byte(ackMessage))
		_ = conn.Close()

		guard.mu.Lock()
		handler := guard.onActivate
		guard.mu.Unlock()
		if handler != nil {
			handler()
		}
	}
}

func notifyRunning(address string) error {
	conn, err := net.DialTimeout("tcp", address, time.Second)
	if err != nil {
		return fmt.Errorf("dial running instance: %w", err)
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(replyTimeout))
	if _, err := conn.Write([]byte(activateMessage)); err != nil {
		return fmt.Errorf("notify running instance: %w", err)
	}
	reply := make([]byte, len(ackMessage))
	if _, err := io.ReadFull(conn, reply); err != nil {
		return fmt.Errorf("read activation reply: %w", err)
	}
	if string(reply) != ackMessage {
		return fmt.Errorf("unexpected activation reply %q", reply)
	}
	return nil
}

func addressFor(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
}

func portFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
