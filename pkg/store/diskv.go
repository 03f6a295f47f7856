// Package store keeps tasks on disk for the development API server.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/weekly/pkg/todo"
)

// ErrNotFound is returned when no task has the requested id.
var ErrNotFound = errors.New("store: task not found")

// Persistence defines the storage contract behind the development API.
type Persistence interface {
	List(ctx context.Context) ([]todo.Task, error)
	Get(id string) (todo.Task, error)
	Create(text string, day todo.Day) (todo.Task, error)
	SetCompleted(id string, completed bool) (todo.Task, error)
	Delete(id string) error
}

const bucket = "todos"

// Load creates a Persistence backed by diskv rooted at basePath.
func Load(basePath string) (Persistence, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		now: time.Now,
	}, nil
}

type persistence struct {
	mu  sync.Mutex
	d   *diskv.Diskv
	now func() time.Time
}

// record is the on-disk shape; Created orders List output.
type record struct {
	todo.Task
	Created time.Time `json:"created"`
}

func (p *persistence) read(id string) (record, error) {
	if !p.d.Has(id) {
		return record{}, ErrNotFound
	}
	val, err := p.d.Read(id)
	if err != nil {
		return record{}, err
	}
	var r record
	if err := json.Unmarshal(val, &r); err != nil {
		return record{}, fmt.Errorf("store: decode %s: %w", id, err)
	}
	r.ID = id
	return r, nil
}

func (p *persistence) write(r record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return p.d.Write(r.ID, data)
}

func (p *persistence) List(ctx context.Context) ([]todo.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var keys []string
	for key := range p.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all := make([]record, 0, len(keys))
	for _, key := range keys {
		r, err := p.read(key)
		if err != nil {
			return nil, err
		}
		all = append(all, r)
	}
	sortRecords(all)

	tasks := make([]todo.Task, len(all))
	for i, r := range all {
		tasks[i] = r.Task
	}
	return tasks, nil
}

func (p *persistence) Get(id string) (todo.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, err := p.read(id)
	if err != nil {
		return todo.Task{}, err
	}
	return r.Task, nil
}

func (p *persistence) Create(text string, day todo.Day) (todo.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	r := record{
		Task: todo.Task{
			ID:   strings.ReplaceAll(uuid.NewString(), "-", ""),
			Text: text,
			Day:  day,
		},
		Created: p.now(),
	}
	if err := p.write(r); err != nil {
		return todo.Task{}, err
	}
	return r.Task, nil
}

func (p *persistence) SetCompleted(id string, completed bool) (todo.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	r, err := p.read(id)
	if err != nil {
		return todo.Task{}, err
	}
	r.Completed = completed
	if err := p.write(r); err != nil {
		return todo.Task{}, err
	}
	return r.Task, nil
}

func (p *persistence) Delete(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.d.Has(id) {
		return ErrNotFound
	}
	return p.d.Erase(id)
}

func sortRecords(records []record) {
	sort.SliceStable(records, func(i, j int) bool {
		lt, rt := records[i].Created, records[j].Created
		if lt.Equal(rt) {
			return records[i].ID < records[j].ID
		}
		return lt.Before(rt)
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{bucket},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
