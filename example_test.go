package squeue_test

import (
	"fmt"

	"github.com/smartwalle/squeue"
)

func Example() {
	var q = squeue.New()
	defer q.Free()

	for _, v := range []string{"gerbil", "bear", "dolphin", "bear"} {
		if err := q.InsertTail(v); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Println(q, q.Size())

	q.Sort()
	fmt.Println(q)

	if err := q.DeleteDup(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(q)

	// Output:
	// [gerbil bear dolphin bear] 4
	// [bear bear dolphin gerbil]
	// [dolphin gerbil]
}

func ExampleQueue_RemoveHead() {
	var q = squeue.New()
	defer q.Free()
	if err := q.InsertTail("meerkat"); err != nil {
		fmt.Println(err)
		return
	}

	var buf = make([]byte, 5)
	var e = q.RemoveHead(buf)
	fmt.Println(e.Value, string(buf[:4]), buf[4])
	squeue.Release(e)

	// Output:
	// meerkat meer 0
}

func ExampleQueue_Swap() {
	var q = squeue.New()
	defer q.Free()
	for _, v := range []string{"1", "2", "3", "4", "5"} {
		if err := q.InsertTail(v); err != nil {
			fmt.Println(err)
			return
		}
	}
	q.Swap()
	fmt.Println(q)
	q.Reverse()
	fmt.Println(q)

	// Output:
	// [2 1 4 3 5]
	// [5 3 4 1 2]
}

func ExampleQueue_DeleteMid() {
	var q = squeue.New()
	defer q.Free()
	for _, v := range []string{"a", "b", "c", "d", "e", "f"} {
		if err := q.InsertTail(v); err != nil {
			fmt.Println(err)
			return
		}
	}
	if err := q.DeleteMid(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(q)

	// Output:
	// [a b c e f]
}
