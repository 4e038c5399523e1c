// Package store là tầng lưu trữ JSON của server: mỗi collection là một
// file data/<tên>.json chứa một mảng bản ghi. Mọi thao tác đều đọc cả file,
// sửa trong bộ nhớ rồi ghi lại cả file; một mutex cho mỗi collection
// serialize toàn bộ chu kỳ read-modify-write nên hai writer không bao giờ
// đè lên nhau trong cùng một collection.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ducanh6502/quan-an-online/internal/errs"
)

// Record là bản ghi có id riêng trong một collection
type Record interface {
	RecordID() string
}

// Collection quản lý một file JSON duy nhất
type Collection[T Record] struct {
	name string
	path string
	mu   sync.Mutex
}

// NewCollection mở (hoặc tạo) file data/<name>.json
func NewCollection[T Record](dataDir, name string) (*Collection[T], error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errs.Store("mkdir", err)
	}
	c := &Collection[T]{
		name: name,
		path: filepath.Join(dataDir, name+".json"),
	}
	if _, err := os.Stat(c.path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(c.path, []byte("[]\n"), 0o644); err != nil {
			return nil, errs.Store("init "+name, err)
		}
	} else if err != nil {
		return nil, errs.Store("stat "+name, err)
	}
	return c, nil
}

// Name trả về tên collection
func (c *Collection[T]) Name() string { return c.name }

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, errs.Store("đọc "+c.name, err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errs.Store("parse "+c.name, err)
	}
	return records, nil
}

func (c *Collection[T]) save(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errs.Store("encode "+c.name, err)
	}
	if err := os.WriteFile(c.path, append(data, '\n'), 0o644); err != nil {
		return errs.Store("ghi "+c.name, err)
	}
	return nil
}

// LoadAll trả về toàn bộ bản ghi trong collection
func (c *Collection[T]) LoadAll() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Filter trả về các bản ghi thỏa điều kiện keep
func (c *Collection[T]) Filter(keep func(T) bool) ([]T, error) {
	all, err := c.LoadAll()
	if err != nil {
		return nil, err
	}
	out := []T{}
	for _, rec := range all {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// FindByID tìm bản ghi theo id, trả errs.ErrNotFound nếu không có
func (c *Collection[T]) FindByID(id string) (T, error) {
	var zero T
	all, err := c.LoadAll()
	if err != nil {
		return zero, err
	}
	for _, rec := range all {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	return zero, errs.NotFound(c.name + " " + id)
}

// Append thêm bản ghi mới vào cuối collection
func (c *Collection[T]) Append(rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	all, err := c.load()
	if err != nil {
		return zero, err
	}
	all = append(all, rec)
	if err := c.save(all); err != nil {
		return zero, err
	}
	return rec, nil
}

// Replace tìm bản ghi theo id, cho mutate sửa tại chỗ rồi ghi lại.
// Trả errs.ErrNotFound nếu id không tồn tại.
func (c *Collection[T]) Replace(id string, mutate func(*T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	all, err := c.load()
	if err != nil {
		return zero, err
	}
	for i := range all {
		if all[i].RecordID() == id {
			mutate(&all[i])
			if err := c.save(all); err != nil {
				return zero, err
			}
			return all[i], nil
		}
	}
	return zero, errs.NotFound(c.name + " " + id)
}

// RemoveByID xóa bản ghi theo id, trả errs.ErrNotFound nếu không có
func (c *Collection[T]) RemoveByID(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	all, err := c.load()
	if err != nil {
		return err
	}
	kept := all[:0]
	found := false
	for _, rec := range all {
		if rec.RecordID() == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return errs.NotFound(c.name + " " + id)
	}
	return c.save(kept)
}
