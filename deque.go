// Package ringdeque provides a generic double-ended queue backed by a growable
// circular buffer.
package ringdeque

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
)

// DefaultCapacity is the capacity of a Deque created with New.
const DefaultCapacity = 8

// Deque is a double-ended queue that can be used for either LIFO or FIFO
// ordering, or something in between.
//
// Elements live in a circular buffer: the element at logical position i is
// stored in slot (off+i) % Cap(). When a push finds the buffer full, the
// buffer is reallocated to twice its size, or to 1 if its capacity is 0. It
// never shrinks on its own; call Reserve or Shrink for that.
//
// The zero value is an empty Deque with capacity 0, ready to use. A nil *Deque
// answers Len, Cap and the iterators as if empty, and panics on anything else.
//
// A Deque is not safe for concurrent use.
type Deque[T any] struct {
	buf []T
	off int
	n   int
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// New allocates a Deque with DefaultCapacity slots.
func New[T any]() *Deque[T] {
	return &Deque[T]{buf: make([]T, DefaultCapacity)}
}

// NewWithCapacity allocates a Deque with exactly capacity slots. A capacity of
// 0 is allowed: the first push grows it. Returns ErrNegativeCapacity if
// capacity is negative.
func NewWithCapacity[T any](capacity int) (*Deque[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	return &Deque[T]{buf: make([]T, capacity)}, nil
}

// FromSlice allocates a Deque holding a copy of s, with s[0] at the front. The
// capacity is the larger of len(s) and DefaultCapacity. Memory is not shared
// with s.
func FromSlice[T any](s []T) *Deque[T] {
	d := &Deque[T]{buf: make([]T, max(len(s), DefaultCapacity))}
	d.n = copy(d.buf, s)
	return d
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.n
}

// Empty returns whether the Deque is empty.
func (d *Deque[T]) Empty() bool { return d.Len() == 0 }

// Full returns whether the Deque is full. Pushing to a full Deque reallocates.
func (d *Deque[T]) Full() bool { return d.n == len(d.buf) }

// PushBack puts its arguments at the back of the Deque, in order, so the last
// argument becomes the new back. Use PushBack and PopFront for FIFO ordering,
// or PushBack and PopBack for LIFO ordering.
func (d *Deque[T]) PushBack(ts ...T) {
	for _, t := range ts {
		d.growIfFull()
		d.buf[d.slot(d.n)] = t
		d.n++
	}
}

// PushFront puts its arguments at the front of the Deque, in order, so the
// last argument becomes the new front.
func (d *Deque[T]) PushFront(ts ...T) {
	for _, t := range ts {
		d.growIfFull()
		d.off--
		if d.off < 0 {
			d.off += len(d.buf)
		}
		d.buf[d.off] = t
		d.n++
	}
}

// PeekBack returns the last element in the Deque, or ErrEmpty.
func (d *Deque[T]) PeekBack() (t T, err error) {
	if d.n == 0 {
		return t, ErrEmpty
	}
	return d.buf[d.slot(d.n-1)], nil
}

// PeekFront returns the first element in the Deque, or ErrEmpty.
func (d *Deque[T]) PeekFront() (t T, err error) {
	if d.n == 0 {
		return t, ErrEmpty
	}
	return d.buf[d.off], nil
}

// PopBack removes the last element in the Deque and returns it, or ErrEmpty.
// The vacated slot is not zeroed, so whatever the element references stays
// reachable until the slot is overwritten. If your elements have references,
// prefer PopBackZero.
func (d *Deque[T]) PopBack() (t T, err error) {
	if t, err = d.PeekBack(); err == nil {
		d.n--
	}
	return
}

// PopBackZero is PopBack, but it also zeroes the vacated slot so the garbage
// collector can reclaim what the element referenced.
func (d *Deque[T]) PopBackZero() (t T, err error) {
	if t, err = d.PopBack(); err == nil {
		var zero T
		d.buf[d.slot(d.n)] = zero
	}
	return
}

// PopFront removes the first element in the Deque and returns it, or
// ErrEmpty. Like PopBack, it does not zero the vacated slot. If your elements
// have references, prefer PopFrontZero.
func (d *Deque[T]) PopFront() (t T, err error) {
	if t, err = d.PeekFront(); err == nil {
		d.off = (d.off + 1) % len(d.buf)
		d.n--
	}
	return
}

// PopFrontZero is PopFront, but it also zeroes the vacated slot.
func (d *Deque[T]) PopFrontZero() (t T, err error) {
	if d.n == 0 {
		return t, ErrEmpty
	}
	var zero T
	t, d.buf[d.off] = d.buf[d.off], zero
	d.off = (d.off + 1) % len(d.buf)
	d.n--
	return t, nil
}

// Clear empties the Deque, zeroing the elements it held. Capacity is kept.
func (d *Deque[T]) Clear() {
	a, b := d.slices()
	clear(a)
	clear(b)
	d.off, d.n = 0, 0
}

/*****************************************************************************
 * CAPACITY API
 *****************************************************************************/

// Cap returns the current Deque capacity or 0 if nil.
func (d *Deque[T]) Cap() int {
	if d == nil {
		return 0
	}
	return len(d.buf)
}

// Reserve sets the capacity of the Deque to exactly capacity. Elements keep
// their order and are moved to the start of a new buffer. Reserving the
// current capacity does nothing.
//
// It returns ErrNegativeCapacity if capacity is negative, and
// ErrNotEnoughCapacity if capacity cannot hold the existing elements. In both
// cases the Deque is left untouched.
func (d *Deque[T]) Reserve(capacity int) error {
	if capacity < 0 {
		return ErrNegativeCapacity
	}
	if capacity < d.n {
		return ErrNotEnoughCapacity
	}
	if capacity != len(d.buf) {
		d.relocate(capacity)
	}
	return nil
}

// Grow ensures there's enough capacity to push at least n more elements
// without reallocating. It returns ErrNegativeCapacity if n is negative.
func (d *Deque[T]) Grow(n int) error {
	if n < 0 {
		return ErrNegativeCapacity
	}
	if d.n+n > len(d.buf) {
		d.relocate(d.n + n)
	}
	return nil
}

// Shrink reallocates the buffer to hold exactly Len elements and returns the
// new capacity.
func (d *Deque[T]) Shrink() int {
	// Len is always a valid capacity.
	_ = d.Reserve(d.n)
	return len(d.buf)
}

// growIfFull makes room for one more element.
func (d *Deque[T]) growIfFull() {
	if d.n < len(d.buf) {
		return
	}
	d.relocate(max(1, 2*len(d.buf)))
}

// relocate is the only place the buffer is replaced. newCap must be >= d.n.
func (d *Deque[T]) relocate(newCap int) {
	newBuf := make([]T, newCap)
	d.copyOut(newBuf)
	d.buf = newBuf
	d.off = 0
}

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// slices returns the occupied range as up to two runs of the buffer, front
// first. b is nil unless the range wraps past the end of the buffer.
func (d *Deque[T]) slices() (a, b []T) {
	if d == nil || d.n == 0 {
		return nil, nil
	}
	if end := d.off + d.n; end <= len(d.buf) {
		return d.buf[d.off:end], nil
	}
	return d.buf[d.off:], d.buf[:d.off+d.n-len(d.buf)]
}

func (d *Deque[T]) copyOut(dst []T) int {
	a, b := d.slices()
	n := copy(dst, a)
	return n + copy(dst[n:], b)
}

// Slice allocates a slice holding every element, front first.
func (d *Deque[T]) Slice() []T {
	s := make([]T, d.Len())
	d.copyOut(s)
	return s
}

// CopyTo copies every element, front first, into dst starting at dst[index],
// and returns the number of elements copied. It returns ErrInvalidArgument,
// copying nothing, if index is negative or dst[index:] cannot hold Len
// elements.
func (d *Deque[T]) CopyTo(dst []T, index int) (int, error) {
	if index < 0 || index > len(dst) {
		return 0, fmt.Errorf("%w: index %d out of range for destination of length %d",
			ErrInvalidArgument, index, len(dst))
	}
	if room := len(dst) - index; room < d.Len() {
		return 0, fmt.Errorf("%w: destination has room for %d of %d elements",
			ErrInvalidArgument, room, d.Len())
	}
	return d.copyOut(dst[index:]), nil
}

// At indexes into the i-th position in the Deque. Panics if out of bounds.
func (d *Deque[T]) At(i int) T {
	d.checkBounds(i)
	return d.buf[d.slot(i)]
}

// Set writes t to the i-th position in the Deque. Panics if out of bounds.
func (d *Deque[T]) Set(i int, t T) {
	d.checkBounds(i)
	d.buf[d.slot(i)] = t
}

// Swap swaps the elements in the i-th and j-th positions. Panics if out of
// bounds.
func (d *Deque[T]) Swap(i, j int) {
	d.checkBounds(i)
	d.checkBounds(j)
	si, sj := d.slot(i), d.slot(j)
	d.buf[si], d.buf[sj] = d.buf[sj], d.buf[si]
}

// Contains returns whether an element equal to t is in the Deque. This must
// not be a method, otherwise Deque would be constrained to comparable
// elements. It has the same semantics as slices.Contains.
func Contains[T comparable](d *Deque[T], t T) bool {
	a, b := d.slices()
	return slices.Contains(a, t) || slices.Contains(b, t)
}

// ContainsFunc returns whether an element satisfying f is in the Deque.
func (d *Deque[T]) ContainsFunc(f func(T) bool) bool {
	a, b := d.slices()
	return slices.ContainsFunc(a, f) || slices.ContainsFunc(b, f)
}

// Index returns the position of the first occurrence of t in the Deque or -1
// if absent.
func Index[T comparable](d *Deque[T], t T) int {
	return d.IndexFunc(func(e T) bool { return e == t })
}

// IndexFunc returns the position of the first element that satisfies f or -1
// if none do.
func (d *Deque[T]) IndexFunc(f func(T) bool) int {
	a, b := d.slices()
	if i := slices.IndexFunc(a, f); i != -1 {
		return i
	}
	if i := slices.IndexFunc(b, f); i != -1 {
		return i + len(a)
	}
	return -1
}

// Equal returns whether both Deques have the same length and the same elements
// in the same order. Two nil Deques are equal, but an empty Deque and nil are
// not. Capacity and buffer layout are irrelevant.
func Equal[T comparable](d1, d2 *Deque[T]) bool {
	return d1.EqualFunc(d2, func(a, b T) bool { return a == b })
}

// EqualFunc is Equal with f as the element comparison.
func (d *Deque[T]) EqualFunc(other *Deque[T], f func(T, T) bool) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.n != other.n {
		return false
	}
	for i := range d.n {
		if !f(d.buf[d.slot(i)], other.buf[other.slot(i)]) {
			return false
		}
	}
	return true
}

// Max returns the maximum element in the Deque. Like slices.Max, it panics on
// an empty Deque.
func Max[T cmp.Ordered](d *Deque[T]) T {
	a, b := d.slices()
	result := slices.Max(a)
	if b != nil {
		result = max(result, slices.Max(b))
	}
	return result
}

// Min returns the minimum element in the Deque. Like slices.Min, it panics on
// an empty Deque.
func Min[T cmp.Ordered](d *Deque[T]) T {
	a, b := d.slices()
	result := slices.Min(a)
	if b != nil {
		result = min(result, slices.Min(b))
	}
	return result
}

// String formats the elements front first, the way fmt formats a slice.
func (d *Deque[T]) String() string {
	return fmt.Sprint(d.Slice())
}

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// Iter returns an iterator over the elements, front first. The buffer, offset
// and length are captured when iteration starts, and every range over the
// iterator starts again from the front. Modifying the Deque during iteration
// does not panic, but what the iterator yields afterwards is unspecified.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		a, b := d.slices()
		for _, t := range a {
			if !yield(t) {
				return
			}
		}
		for _, t := range b {
			if !yield(t) {
				return
			}
		}
	}
}

// All returns an iterator over position-value pairs, front first, with the
// same semantics as Iter. If you don't need positions, use Iter instead.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a, b := d.slices()
		for i, t := range a {
			if !yield(i, t) {
				return
			}
		}
		for i, t := range b {
			if !yield(len(a)+i, t) {
				return
			}
		}
	}
}

// Backward returns an iterator over position-value pairs, back first.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a, b := d.slices()
		for i := len(b) - 1; i >= 0; i-- {
			if !yield(len(a)+i, b[i]) {
				return
			}
		}
		for i := len(a) - 1; i >= 0; i-- {
			if !yield(i, a[i]) {
				return
			}
		}
	}
}

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrEmpty is returned when reading or removing from an empty Deque.
var ErrEmpty = errors.New("deque is empty")

// ErrInvalidArgument is the kind of every error caused by an argument the
// Deque cannot honor. Use errors.Is to test for it.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotEnoughCapacity is returned when reserving a capacity that cannot hold
// the existing elements.
var ErrNotEnoughCapacity = fmt.Errorf("%w: cannot hold existing elements in asked capacity", ErrInvalidArgument)

// ErrNegativeCapacity is returned when asked for a negative capacity.
var ErrNegativeCapacity = fmt.Errorf("%w: capacity cannot be negative", ErrInvalidArgument)

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// slot maps logical position i to its index in buf. The buffer must not be
// empty.
func (d *Deque[T]) slot(i int) int {
	return (d.off + i) % len(d.buf)
}

func (d *Deque[T]) checkBounds(i int) {
	if i < 0 || i >= d.Len() {
		panic(fmt.Sprintf("deque: index %d out of bounds with length %d", i, d.Len()))
	}
}
