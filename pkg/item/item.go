package item

import (
	"fmt"

	"github.com/dchest/siphash"
	"go.uber.org/atomic"
)

const (
	// generated by splitting the md5 sum of "hashmap"
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd
)

// Item is copied by value into an ItemList. Copies share AccessCount.
type Item struct {
	Id          int
	Name        string
	AccessCount *atomic.Int64
}

func NewItem(id int, name string) Item {
	return Item{
		Id:          id,
		Name:        name,
		AccessCount: atomic.NewInt64(0),
	}
}

func (it Item) ID() uint64 {
	return uint64(it.Id)
}

// Key is a keyed hash of Name, stable across processes.
func (it Item) Key() uint64 {
	return siphash.Hash(sipHashKey1, sipHashKey2, []byte(it.Name))
}

// Touch records one access and returns the new count.
func (it Item) Touch() int64 {
	if it.AccessCount == nil {
		return 0
	}

	return it.AccessCount.Inc()
}

func (it Item) String() string {
	return fmt.Sprintf("%d:%s", it.Id, it.Name)
}
