package list

import (
	"fmt"

	"github.com/google/uuid"
)

// owner 是句柄的所有权令牌
// 同一个句柄的所有拷贝共享同一个 owner，因此一旦被取代，所有拷贝一起失效。
type owner struct {
	id         uuid.UUID
	superseded bool
}

func issue() *owner {
	return &owner{id: uuid.New()}
}

// mustLive 检查句柄是否仍然有效
func (l List[T]) mustLive(op string) {
	if l.owner != nil && l.owner.superseded {
		panic(fmt.Errorf("%s: handle %s: %w", op, l.owner.id, SupersededHandleErr))
	}
}

// handOver 让当前句柄失效，并把 head 交给新句柄
// 空链表总是零值，不需要令牌。
func (l List[T]) handOver(head *node[T]) List[T] {
	if l.owner != nil {
		l.owner.superseded = true
	}
	if head == nil {
		return List[T]{}
	}
	return List[T]{head: head, owner: issue()}
}
