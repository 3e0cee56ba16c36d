// This file was automatically generated by genny.
// Any changes will be lost if this file is regenerated.
// see https://github.com/cheekybits/genny

package item

import (
	"fmt"
	"strings"

	"github.com/snwfog/lifo.go/pkg/guard"
)

// region Node
type node struct {
	elem Item
	next *node // nil is the empty link
}

// endregion

// region ItemList

// ItemList is a singly linked LIFO stack. It is owned by one goroutine; the
// embedded guard rejects any access that would let a mutable handle alias
// another handle into the same list.
type ItemList struct {
	head *node
	len  int

	guard      guard.Guard
	onteardown func(released int)
}

func NewItemList() *ItemList {
	return &ItemList{}
}

// OnTeardown registers fn to be called once, after every node has been
// released by Close. It panics on a list that was moved or torn down.
func (l *ItemList) OnTeardown(fn func(released int)) {
	guard.Must(l.guard.Alive("on_teardown"))
	l.onteardown = fn
}

func (l *ItemList) State() guard.State {
	return l.guard.State()
}

func (l *ItemList) Len() int {
	guard.Must(l.guard.Shared("len"))
	return l.len
}

func (l *ItemList) IsEmpty() bool {
	return l.Len() == 0
}

func (l *ItemList) Push(elem Item) {
	guard.Must(l.guard.Exclusive("push"))

	l.head = &node{
		elem: elem,
		next: l.head,
	}
	l.len++
	l.guard.Touch()
}

func (l *ItemList) Pop() (Item, bool) {
	guard.Must(l.guard.Exclusive("pop"))

	n := l.head
	if n == nil {
		var zero Item
		return zero, false
	}

	l.head, n.next = n.next, nil
	l.len--
	return n.elem, true
}

func (l *ItemList) Peek() (Item, bool) {
	guard.Must(l.guard.Shared("peek"))

	if l.head == nil {
		var zero Item
		return zero, false
	}

	return l.head.elem, true
}

// PeekMut returns a handle on the head element that holds the list mutably
// borrowed until it is closed.
func (l *ItemList) PeekMut() (*ItemRef, bool) {
	guard.Must(l.guard.Exclusive("peek_mut"))

	if l.head == nil {
		return nil, false
	}

	b, err := l.guard.BorrowMut("peek_mut")
	guard.Must(err)

	return &ItemRef{
		elem:   &l.head.elem,
		borrow: b,
	}, true
}

// IntoIter moves the whole chain into the returned iterator. The list itself
// is unusable afterwards.
func (l *ItemList) IntoIter() *ItemIntoIterator {
	guard.Must(l.guard.Move("into_iter"))

	inner := &ItemList{
		head:       l.head,
		len:        l.len,
		onteardown: l.onteardown,
	}
	inner.guard.Touch()

	l.head, l.len, l.onteardown = nil, 0, nil
	return &ItemIntoIterator{list: inner}
}

// Iter borrows the list until the iterator is exhausted or closed. An
// iterator dropped early must be closed, or the list stays borrowed; Range
// does this for you.
func (l *ItemList) Iter() *ItemIterator {
	b, err := l.guard.Borrow("iter")
	guard.Must(err)

	return &ItemIterator{
		next:   l.head,
		borrow: b,
	}
}

// IterMut borrows the list exclusively until the iterator is exhausted or
// closed. An iterator dropped early must be closed, or the list stays
// borrowed; RangeMut does this for you.
func (l *ItemList) IterMut() *ItemMutIterator {
	b, err := l.guard.BorrowMut("iter_mut")
	guard.Must(err)

	return &ItemMutIterator{
		next:   l.head,
		borrow: b,
	}
}

// Range calls fn for each element, head first, until fn returns false.
func (l *ItemList) Range(fn func(elem Item) bool) {
	it := l.Iter()
	defer it.Close()

	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		if !fn(elem) {
			return
		}
	}
}

// RangeMut is Range with write access to each element.
func (l *ItemList) RangeMut(fn func(elem *Item) bool) {
	it := l.IterMut()
	defer it.Close()

	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		if !fn(elem) {
			return
		}
	}
}

func (l *ItemList) String() string {
	switch l.guard.State() {
	case guard.TornDown, guard.Moved:
		return "[" + l.guard.State().String() + "]"
	}

	if l.guard.Writer() {
		return "[mutably-borrowed]"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	l.Range(func(elem Item) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, elem)
		return true
	})
	sb.WriteByte(']')

	return sb.String()
}

// Close releases every node one at a time, front to back, and never lets
// the release of one node reach into the next.
func (l *ItemList) Close() error {
	if err := l.guard.TearDown("close"); err != nil {
		return err
	}

	released := 0
	curr := l.head
	l.head = nil
	for curr != nil {
		next := curr.next
		curr.next = nil
		curr = next
		released++
	}
	l.len = 0

	if l.onteardown != nil {
		l.onteardown(released)
	}

	return nil
}

// endregion

// region ItemRef
type ItemRef struct {
	elem   *Item
	borrow *guard.Borrow
}

// Get returns the head element, or nil once the handle is closed.
func (r *ItemRef) Get() *Item {
	if r.borrow.Released() {
		return nil
	}

	return r.elem
}

// Close ends the borrow. Closing twice is a no-op.
func (r *ItemRef) Close() {
	r.elem = nil
	r.borrow.Release()
}

// endregion

// region ItemIntoIterator
type ItemIntoIterator struct {
	list *ItemList
}

func (it *ItemIntoIterator) Next() (Item, bool) {
	if it.list == nil {
		var zero Item
		return zero, false
	}

	elem, ok := it.list.Pop()
	if !ok {
		_ = it.Close()
	}

	return elem, ok
}

// Len reports how many elements are left.
func (it *ItemIntoIterator) Len() int {
	if it.list == nil {
		return 0
	}

	return it.list.Len()
}

// Close drops whatever is left. It is called automatically on exhaustion.
func (it *ItemIntoIterator) Close() error {
	if it.list == nil {
		return nil
	}

	l := it.list
	it.list = nil
	return l.Close()
}

// endregion

// region ItemIterator
type ItemIterator struct {
	next   *node
	borrow *guard.Borrow
}

func (it *ItemIterator) Next() (Item, bool) {
	n := it.next
	if n == nil || it.borrow.Released() {
		it.Close()
		var zero Item
		return zero, false
	}

	it.next = n.next
	return n.elem, true
}

// Close ends the borrow early. It is called automatically on exhaustion.
func (it *ItemIterator) Close() {
	it.next = nil
	it.borrow.Release()
}

// endregion

// region ItemMutIterator
type ItemMutIterator struct {
	next   *node
	borrow *guard.Borrow
}

// Next hands out the current element and moves on. The cursor is cleared
// before it advances so the iterator never holds the node it just yielded.
func (it *ItemMutIterator) Next() (*Item, bool) {
	n := it.next
	it.next = nil
	if n == nil || it.borrow.Released() {
		it.borrow.Release()
		return nil, false
	}

	it.next = n.next
	return &n.elem, true
}

// Close ends the borrow early. It is called automatically on exhaustion.
func (it *ItemMutIterator) Close() {
	it.next = nil
	it.borrow.Release()
}

// endregion
