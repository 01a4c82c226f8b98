// ABOUTME: Runnable examples for the history log
// ABOUTME: Mirrors the counter walkthrough: commit, navigate, branch, trim

package history_test

import (
	"fmt"

	"github.com/mauromedda/statehistory/pkg/history"
)

func Example() {
	h := history.New(0)
	h.Set(1)
	h.Apply(func(c int) int { return c + 1 })

	h.Back()
	fmt.Println(h.Current(), h.Position())

	h.Go(0)
	h.Set(9)
	fmt.Println(h.Snapshot(), h.Position())
	// Output:
	// 1 1
	// [0 9] 1
}

func ExampleLog_TrimStart() {
	h := history.New(0)
	for i := 1; i <= 3; i++ {
		h.Set(i)
	}
	h.Back()
	h.TrimStart()
	fmt.Println(h.Snapshot(), h.Position(), h.Current())
	// Output: [2 3] 0 2
}

func ExampleLog_Subscribe() {
	h := history.New("draft")
	unsub := h.Subscribe(func(c history.Change[string]) {
		fmt.Printf("%s -> %q at %d\n", c.Op, c.State.Value, c.State.Pointer)
	})
	defer unsub()

	h.Set("final")
	h.Back()
	h.Back() // already at the oldest entry
	// Output:
	// commit -> "final" at 1
	// back -> "draft" at 0
}
