package host

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var ErrBlockNotFound = errors.Base("block not found")

// MemoryStore is an in-process BlockStore. Updating a block detaches the
// inputs handed out for it, the same way an editor re-render does.
type MemoryStore struct {
	mu      sync.Mutex
	blocks  map[string]*memoryBlock
	order   []string
	current string
}

type memoryBlock struct {
	content string
	input   *MemoryInput
}

var _ BlockStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blocks: map[string]*memoryBlock{}}
}

// Insert adds a block and returns its id.
func (me *MemoryStore) Insert(content string) string {
	me.mu.Lock()
	defer me.mu.Unlock()

	id := uuid.NewString()
	me.blocks[id] = &memoryBlock{content: content}
	me.order = append(me.order, id)
	return id
}

// Content returns the stored text of a block.
func (me *MemoryStore) Content(id string) (string, bool) {
	me.mu.Lock()
	defer me.mu.Unlock()

	b, ok := me.blocks[id]
	if !ok {
		return "", false
	}
	return b.content, true
}

// Blocks returns block ids in insertion order.
func (me *MemoryStore) Blocks() []string {
	me.mu.Lock()
	defer me.mu.Unlock()

	return append([]string(nil), me.order...)
}

// Edit enters edit mode on a block and selects [start, end).
func (me *MemoryStore) Edit(id string, start, end int) (*MemoryInput, error) {
	me.mu.Lock()
	defer me.mu.Unlock()

	b, ok := me.blocks[id]
	if !ok {
		return nil, errors.Errorf("%w: %s", ErrBlockNotFound, id)
	}

	me.current = id
	b.input = &MemoryInput{store: me, id: id, attached: true, start: start, end: end}
	return b.input, nil
}

// StopEditing leaves edit mode.
func (me *MemoryStore) StopEditing() {
	me.mu.Lock()
	defer me.mu.Unlock()

	me.current = ""
}

func (me *MemoryStore) CurrentBlock(ctx context.Context) (*Block, error) {
	me.mu.Lock()
	defer me.mu.Unlock()

	if me.current == "" {
		return nil, nil
	}
	b, ok := me.blocks[me.current]
	if !ok {
		return nil, nil
	}
	return &Block{UUID: me.current, Content: b.content}, nil
}

func (me *MemoryStore) UpdateBlock(ctx context.Context, id string, content string) error {
	me.mu.Lock()
	defer me.mu.Unlock()

	b, ok := me.blocks[id]
	if !ok {
		return errors.Errorf("%w: %s", ErrBlockNotFound, id)
	}

	b.content = content
	if b.input != nil {
		b.input.detach()
		b.input = nil
	}

	zerolog.Ctx(ctx).Trace().Str("block", id).Int("len", len(content)).Msg("block updated")

	return nil
}

func (me *MemoryStore) EditBlock(ctx context.Context, id string) (Input, error) {
	b, ok := me.lookup(id)
	if !ok {
		return nil, errors.Errorf("%w: %s", ErrBlockNotFound, id)
	}

	me.mu.Lock()
	defer me.mu.Unlock()

	me.current = id
	b.input = &MemoryInput{store: me, id: id, attached: true}
	return b.input, nil
}

func (me *MemoryStore) lookup(id string) (*memoryBlock, bool) {
	me.mu.Lock()
	defer me.mu.Unlock()

	b, ok := me.blocks[id]
	return b, ok
}

// MemoryInput is the input of a MemoryStore block.
type MemoryInput struct {
	store *MemoryStore
	id    string

	mu       sync.Mutex
	attached bool
	focused  bool
	start    int
	end      int
}

var _ Input = (*MemoryInput)(nil)

func (me *MemoryInput) ID() string {
	return me.id
}

func (me *MemoryInput) Value() string {
	content, _ := me.store.Content(me.id)
	return content
}

func (me *MemoryInput) Selection() (int, int) {
	me.mu.Lock()
	defer me.mu.Unlock()

	return me.start, me.end
}

func (me *MemoryInput) Attached() bool {
	me.mu.Lock()
	defer me.mu.Unlock()

	return me.attached
}

// Focused reports whether Focus was called since the input was created.
func (me *MemoryInput) Focused() bool {
	me.mu.Lock()
	defer me.mu.Unlock()

	return me.focused
}

func (me *MemoryInput) Focus(ctx context.Context) error {
	me.mu.Lock()
	defer me.mu.Unlock()

	if !me.attached {
		return errors.Errorf("input for %s is detached", me.id)
	}
	me.focused = true
	return nil
}

func (me *MemoryInput) SetSelectionRange(ctx context.Context, start, end int) error {
	me.mu.Lock()
	defer me.mu.Unlock()

	if !me.attached {
		return errors.Errorf("input for %s is detached", me.id)
	}
	me.start, me.end = start, end
	return nil
}

func (me *MemoryInput) detach() {
	me.mu.Lock()
	defer me.mu.Unlock()

	me.attached = false
}
