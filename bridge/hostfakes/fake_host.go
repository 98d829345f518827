package hostfakes

import (
	"sync"

	"github.com/nexuzy/hypechats-go/bridge"
)

var _ bridge.Host = (*FakeHost)(nil)

// FakeHost records every host-side effect for assertions.
type FakeHost struct {
	mu sync.Mutex

	Toasts       []string
	Scripts      []string
	Navigations  []string
	BackCalls    int
	ForwardCalls int

	BackAvailable    bool
	ForwardAvailable bool
}

func NewFakeHost() *FakeHost {
	return &FakeHost{}
}

func (h *FakeHost) ShowToast(message string, long bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Toasts = append(h.Toasts, message)
}

func (h *FakeHost) CanGoBack() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.BackAvailable
}

func (h *FakeHost) GoBack() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.BackCalls++
}

func (h *FakeHost) CanGoForward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ForwardAvailable
}

func (h *FakeHost) GoForward() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ForwardCalls++
}

func (h *FakeHost) Navigate(destination, params string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Navigations = append(h.Navigations, destination)
}

func (h *FakeHost) PushScript(js string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Scripts = append(h.Scripts, js)
}
