package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    *sync.Mutex
	order *[]string
	name  string
	delay time.Duration
}

func (r recorder) Shutdown() {
	time.Sleep(r.delay)
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.order = append(*r.order, r.name)
}

func TestShutdownReverseOrder(t *testing.T) {
	var mu sync.Mutex
	var order []string

	m := NewManager(nil)
	m.Register("first", recorder{mu: &mu, order: &order, name: "first"})
	m.Register("second", recorder{mu: &mu, order: &order, name: "second"})

	m.Shutdown()
	m.Shutdown()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"second", "first"}, order)

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
	assert.Error(t, m.Context().Err())
}

func TestShutdownStepTimeout(t *testing.T) {
	var mu sync.Mutex
	var order []string

	m := NewManager(nil)
	m.stepTimeout = 10 * time.Millisecond
	m.Register("slow", recorder{mu: &mu, order: &order, name: "slow", delay: 200 * time.Millisecond})
	m.Register("fast", recorder{mu: &mu, order: &order, name: "fast"})

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), 150*time.Millisecond)
}
