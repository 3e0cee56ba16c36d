package generic

//go:generate genny -in=stack.go -out=../int/stack.go -pkg=int gen "Value=int"
//go:generate genny -in=stack.go -out=../item/stack.go -pkg=item gen "Value=Item"

import (
	"fmt"
	"strings"

	"github.com/cheekybits/genny/generic"

	"github.com/snwfog/lifo.go/pkg/guard"
)

type Value generic.Type

// region Node
type node struct {
	elem Value
	next *node // nil is the empty link
}

// endregion

// region ValueList

// ValueList is a singly linked LIFO stack. It is owned by one goroutine; the
// embedded guard rejects any access that would let a mutable handle alias
// another handle into the same list.
type ValueList struct {
	head *node
	len  int

	guard      guard.Guard
	onteardown func(released int)
}

func NewValueList() *ValueList {
	return &ValueList{}
}

// OnTeardown registers fn to be called once, after every node has been
// released by Close. It panics on a list that was moved or torn down.
func (l *ValueList) OnTeardown(fn func(released int)) {
	guard.Must(l.guard.Alive("on_teardown"))
	l.onteardown = fn
}

func (l *ValueList) State() guard.State {
	return l.guard.State()
}

func (l *ValueList) Len() int {
	guard.Must(l.guard.Shared("len"))
	return l.len
}

func (l *ValueList) IsEmpty() bool {
	return l.Len() == 0
}

func (l *ValueList) Push(elem Value) {
	guard.Must(l.guard.Exclusive("push"))

	l.head = &node{
		elem: elem,
		next: l.head,
	}
	l.len++
	l.guard.Touch()
}

func (l *ValueList) Pop() (Value, bool) {
	guard.Must(l.guard.Exclusive("pop"))

	n := l.head
	if n == nil {
		var zero Value
		return zero, false
	}

	l.head, n.next = n.next, nil
	l.len--
	return n.elem, true
}

func (l *ValueList) Peek() (Value, bool) {
	guard.Must(l.guard.Shared("peek"))

	if l.head == nil {
		var zero Value
		return zero, false
	}

	return l.head.elem, true
}

// PeekMut returns a handle on the head element that holds the list mutably
// borrowed until it is closed.
func (l *ValueList) PeekMut() (*ValueRef, bool) {
	guard.Must(l.guard.Exclusive("peek_mut"))

	if l.head == nil {
		return nil, false
	}

	b, err := l.guard.BorrowMut("peek_mut")
	guard.Must(err)

	return &ValueRef{
		elem:   &l.head.elem,
		borrow: b,
	}, true
}

// IntoIter moves the whole chain into the returned iterator. The list itself
// is unusable afterwards.
func (l *ValueList) IntoIter() *ValueIntoIterator {
	guard.Must(l.guard.Move("into_iter"))

	inner := &ValueList{
		head:       l.head,
		len:        l.len,
		onteardown: l.onteardown,
	}
	inner.guard.Touch()

	l.head, l.len, l.onteardown = nil, 0, nil
	return &ValueIntoIterator{list: inner}
}

// Iter borrows the list until the iterator is exhausted or closed. An
// iterator dropped early must be closed, or the list stays borrowed; Range
// does this for you.
func (l *ValueList) Iter() *ValueIterator {
	b, err := l.guard.Borrow("iter")
	guard.Must(err)

	return &ValueIterator{
		next:   l.head,
		borrow: b,
	}
}

// IterMut borrows the list exclusively until the iterator is exhausted or
// closed. An iterator dropped early must be closed, or the list stays
// borrowed; RangeMut does this for you.
func (l *ValueList) IterMut() *ValueMutIterator {
	b, err := l.guard.BorrowMut("iter_mut")
	guard.Must(err)

	return &ValueMutIterator{
		next:   l.head,
		borrow: b,
	}
}

// Range calls fn for each element, head first, until fn returns false.
func (l *ValueList) Range(fn func(elem Value) bool) {
	it := l.Iter()
	defer it.Close()

	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		if !fn(elem) {
			return
		}
	}
}

// RangeMut is Range with write access to each element.
func (l *ValueList) RangeMut(fn func(elem *Value) bool) {
	it := l.IterMut()
	defer it.Close()

	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		if !fn(elem) {
			return
		}
	}
}

func (l *ValueList) String() string {
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
	l.Range(func(elem Value) bool {
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
func (l *ValueList) Close() error {
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

// region ValueRef
type ValueRef struct {
	elem   *Value
	borrow *guard.Borrow
}

// Get returns the head element, or nil once the handle is closed.
func (r *ValueRef) Get() *Value {
	if r.borrow.Released() {
		return nil
	}

	return r.elem
}

// Close ends the borrow. Closing twice is a no-op.
func (r *ValueRef) Close() {
	r.elem = nil
	r.borrow.Release()
}

// endregion

// region ValueIntoIterator
type ValueIntoIterator struct {
	list *ValueList
}

func (it *ValueIntoIterator) Next() (Value, bool) {
	if it.list == nil {
		var zero Value
		return zero, false
	}

	elem, ok := it.list.Pop()
	if !ok {
		_ = it.Close()
	}

	return elem, ok
}

// Len reports how many elements are left.
func (it *ValueIntoIterator) Len() int {
	if it.list == nil {
		return 0
	}

	return it.list.Len()
}

// Close drops whatever is left. It is called automatically on exhaustion.
func (it *ValueIntoIterator) Close() error {
	if it.list == nil {
		return nil
	}

	l := it.list
	it.list = nil
	return l.Close()
}

// endregion

// region ValueIterator
type ValueIterator struct {
	next   *node
	borrow *guard.Borrow
}

func (it *ValueIterator) Next() (Value, bool) {
	n := it.next
	if n == nil || it.borrow.Released() {
		it.Close()
		var zero Value
		return zero, false
	}

	it.next = n.next
	return n.elem, true
}

// Close ends the borrow early. It is called automatically on exhaustion.
func (it *ValueIterator) Close() {
	it.next = nil
	it.borrow.Release()
}

// endregion

// region ValueMutIterator
type ValueMutIterator struct {
	next   *node
	borrow *guard.Borrow
}

// Next hands out the current element and moves on. The cursor is cleared
// before it advances so the iterator never holds the node it just yielded.
func (it *ValueMutIterator) Next() (*Value, bool) {
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
func (it *ValueMutIterator) Close() {
	it.next = nil
	it.borrow.Release()
}

// endregion
