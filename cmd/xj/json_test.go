package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/require"

	"github.com/signadot/xj/parse"
)

func TestOpenInputs(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "a.xml")
	require.NoError(t, os.WriteFile(good, []byte("<a>1</a>"), 0644))
	cc := &cli.Context{In: io.NopCloser(strings.NewReader("<b/>"))}

	readers, err := openInputs(cc, []string{good, "-"})
	require.NoError(t, err)
	require.Len(t, readers, 2)
	for _, r := range readers {
		require.NoError(t, r.Close())
	}

	readers, err = openInputs(cc, []string{good, filepath.Join(dir, "missing.xml")})
	require.Error(t, err)
	require.Nil(t, readers)
}

// gatedReader blocks its first Read until open is closed and notes a Close
// arriving while a Read is in flight.
type gatedReader struct {
	open chan struct{}
	r    io.Reader

	mu          sync.Mutex
	reading     bool
	closedEarly bool
	closed      bool
}

func (g *gatedReader) Read(p []byte) (int, error) {
	g.mu.Lock()
	g.reading = true
	g.mu.Unlock()
	<-g.open
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reading = false
	if g.closed {
		return 0, errors.New("read after close")
	}
	return g.r.Read(p)
}

func (g *gatedReader) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.reading {
		g.closedEarly = true
	}
	g.closed = true
	return nil
}

func TestCloseInputsWaits(t *testing.T) {
	g := &gatedReader{open: make(chan struct{}), r: strings.NewReader("<a>1</a>")}
	fut := parse.ParseAsync(g)
	done := make(chan struct{})
	go func() {
		closeInputs([]*parse.Future{fut}, []io.ReadCloser{g})
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("closed before the conversion finished")
	case <-time.After(20 * time.Millisecond):
	}
	close(g.open)
	<-done
	require.False(t, g.closedEarly)
	_, err := fut.Wait()
	require.NoError(t, err)

	// readers whose conversion never started are still closed
	idle := &gatedReader{open: make(chan struct{})}
	closeInputs([]*parse.Future{nil}, []io.ReadCloser{idle})
	require.True(t, idle.closed)
}
