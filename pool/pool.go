// Package pool keeps reusable objects on a bounded free list so hot paths
// like projectile spawning do not allocate every frame.
//
// A Pool is not safe for concurrent use.
package pool

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrExhausted is returned by Obtain when the pool has already constructed
// its maximum number of objects and none are free.
var ErrExhausted = errors.New("pool exhausted")

// Poolable objects are cleared with Reset before they go back on the free list.
type Poolable interface {
	comparable
	Reset()
}

type Pool[T Poolable] struct {
	factory func() T
	free    []T
	onFree  map[T]struct{}
	owned   map[T]struct{}
	created int
	max     int
	peak    int
}

// New returns a pool that builds objects with factory. initialCapacity sizes
// the free list up front; max caps how many objects the pool will ever
// construct, with max <= 0 meaning no cap.
func New[T Poolable](factory func() T, initialCapacity, max int) *Pool[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	if max > 0 && initialCapacity > max {
		initialCapacity = max
	}
	return &Pool[T]{
		factory: factory,
		free:    make([]T, 0, initialCapacity),
		onFree:  make(map[T]struct{}, initialCapacity),
		owned:   make(map[T]struct{}, initialCapacity),
		max:     max,
	}
}

// Obtain returns a free object, constructing one if the cap allows.
func (p *Pool[T]) Obtain() (T, error) {
	if n := len(p.free); n > 0 {
		obj := p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
		delete(p.onFree, obj)
		return obj, nil
	}
	if p.max > 0 && p.created >= p.max {
		var zero T
		return zero, fmt.Errorf("%w: %d of %d in use", ErrExhausted, p.created, p.max)
	}
	return p.construct(), nil
}

func (p *Pool[T]) construct() T {
	obj := p.factory()
	p.created++
	p.owned[obj] = struct{}{}
	return obj
}

// Free resets obj and returns it to the free list. Freeing the zero value,
// an object that is already free, or one this pool did not construct does
// nothing.
func (p *Pool[T]) Free(obj T) {
	var zero T
	if obj == zero {
		return
	}
	if _, ok := p.owned[obj]; !ok {
		log.Warn("freed object not from this pool", "type", fmt.Sprintf("%T", obj))
		return
	}
	if _, ok := p.onFree[obj]; ok {
		log.Warn("object freed twice", "type", fmt.Sprintf("%T", obj))
		return
	}
	obj.Reset()
	p.free = append(p.free, obj)
	p.onFree[obj] = struct{}{}
	if len(p.free) > p.peak {
		p.peak = len(p.free)
	}
}

// FreeAll frees every object in objs.
func (p *Pool[T]) FreeAll(objs []T) {
	for _, obj := range objs {
		p.Free(obj)
	}
}

// Fill constructs objects until n are free or the cap is reached.
func (p *Pool[T]) Fill(n int) {
	for len(p.free) < n && (p.max <= 0 || p.created < p.max) {
		p.Free(p.construct())
	}
}

// FreeCount is the number of objects waiting on the free list.
func (p *Pool[T]) FreeCount() int { return len(p.free) }

// Created is the number of objects the pool has constructed.
func (p *Pool[T]) Created() int { return p.created }

// Max is the construction cap, or 0 when uncapped.
func (p *Pool[T]) Max() int {
	if p.max < 0 {
		return 0
	}
	return p.max
}

// Peak is the largest the free list has been.
func (p *Pool[T]) Peak() int { return p.peak }
