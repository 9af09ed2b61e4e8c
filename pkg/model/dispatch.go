package model

import (
	"sync"

	"github.com/meshkit/btmesh/pkg/access"
)

// HandlerID identifies a registered handler for later removal.
type HandlerID int

type handlerEntry struct {
	id HandlerID
	fn Handler
}

// dispatchTable maps opcodes to ordered handler lists for one key context.
type dispatchTable struct {
	mu       sync.Mutex
	nextID   HandlerID
	handlers map[access.Opcode][]handlerEntry
}

func newDispatchTable() *dispatchTable {
	return &dispatchTable{
		handlers: make(map[access.Opcode][]handlerEntry),
	}
}

func (t *dispatchTable) add(op access.Opcode, h Handler) HandlerID {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	id := t.nextID
	t.handlers[op] = append(t.handlers[op], handlerEntry{id: id, fn: h})
	return id
}

func (t *dispatchTable) remove(op access.Opcode, id HandlerID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	list := t.handlers[op]
	for i, entry := range list {
		if entry.id == id {
			t.handlers[op] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot returns the handlers for an opcode as of now. Dispatch runs on
// the snapshot so handlers may register or unregister without deadlocking.
func (t *dispatchTable) snapshot(op access.Opcode) []handlerEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	list := t.handlers[op]
	out := make([]handlerEntry, len(list))
	copy(out, list)
	return out
}
