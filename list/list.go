package list

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/zyedidia/generic"
)

// End 渲染时表示链表结尾的标记
const End = "END"

var (
	EmptyListErr        = errors.New("list is empty")
	SupersededHandleErr = errors.New("list handle has been superseded")
)

// node 单链表节点，next 只被前驱节点（或句柄）持有
type node[T comparable] struct {
	value T
	next  *node[T]
}

// List 单链表句柄
// 每个修改操作都会消耗当前句柄并返回一个新句柄，调用方必须使用返回值：
//
//	l = l.Prepend(1)
//
// 旧句柄（以及它的所有拷贝）随即失效，再次使用会 panic。零值就是空链表。
type List[T comparable] struct {
	head  *node[T]
	owner *owner
}

// Empty 返回空链表
func Empty[T comparable]() List[T] {
	return List[T]{}
}

// New 创建只有一个节点的链表
func New[T comparable](value T) List[T] {
	return List[T]{head: &node[T]{value: value}, owner: issue()}
}

// Free 释放所有节点，返回空链表
// 对空链表调用是无操作的；对同一个非空句柄调用两次会 panic。
func (l List[T]) Free() List[T] {
	l.mustLive("Free")

	var zero T
	cur := l.head
	for cur != nil {
		toFree := cur
		cur = cur.next
		toFree.next = nil
		toFree.value = zero
	}

	return l.handOver(nil)
}

// Prepend 在头部添加一个元素
func (l List[T]) Prepend(value T) List[T] {
	l.mustLive("Prepend")

	head := &node[T]{value: value, next: l.head}
	return l.handOver(head)
}

// Append 在尾部添加一个元素
// 注意：对空链表 Append 什么也不做，直接返回空链表。
func (l List[T]) Append(value T) List[T] {
	l.mustLive("Append")
	if l.head == nil {
		return l
	}

	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = &node[T]{value: value}

	return l.handOver(l.head)
}

// PullFront 移除并返回头部元素的值
// 链表为空时返回 EmptyListErr，原句柄保持有效。
func (l List[T]) PullFront() (List[T], T, error) {
	l.mustLive("PullFront")

	var value T
	if l.head == nil {
		return l, value, EmptyListErr
	}

	toFree := l.head
	value = toFree.value
	next := toFree.next
	toFree.next = nil

	return l.handOver(next), value, nil
}

// PopBack 移除并返回尾部元素的值
// 链表为空时返回 EmptyListErr，原句柄保持有效。
func (l List[T]) PopBack() (List[T], T, error) {
	l.mustLive("PopBack")

	var value T
	if l.head == nil {
		return l, value, EmptyListErr
	}

	var prior *node[T]
	cur := l.head
	for cur.next != nil {
		prior = cur
		cur = cur.next
	}
	value = cur.value

	// 只有一个节点
	if prior == nil {
		return l.handOver(nil), value, nil
	}

	prior.next = nil
	return l.handOver(l.head), value, nil
}

// Contains 判断链表中是否存在 value
func (l List[T]) Contains(value T) bool {
	return l.ContainsFunc(value, generic.Equals[T])
}

// ContainsFunc 使用自定义的相等函数查找 value
func (l List[T]) ContainsFunc(value T, eq generic.EqualsFn[T]) bool {
	l.mustLive("Contains")

	for cur := l.head; cur != nil; cur = cur.next {
		if eq(cur.value, value) {
			return true
		}
	}
	return false
}

// Len 返回节点数量
func (l List[T]) Len() int {
	l.mustLive("Len")

	n := 0
	for cur := l.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// IsEmpty 判断链表是否为空
func (l List[T]) IsEmpty() bool {
	l.mustLive("IsEmpty")
	return l.head == nil
}

// All 从头到尾依次产出每个值，只用于展示
// 每次 range 都会重新从头遍历。
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.mustLive("All")
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// String 渲染为 (v1)->(v2)->...->END
func (l List[T]) String() string {
	var b strings.Builder
	// strings.Builder 的写入不会失败
	_ = l.Fprint(&b)
	return b.String()
}

// Fprint 把渲染结果写入 w
func (l List[T]) Fprint(w io.Writer) error {
	for v := range l.All() {
		if _, err := fmt.Fprintf(w, "(%v)->", v); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, End)
	return err
}
