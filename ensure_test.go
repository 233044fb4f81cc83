package goring

import (
	"strings"
	"testing"
)

// ensurePanic invokes callback and reports an error unless it panics with a
// message containing every one of contains.
func ensurePanic(tb testing.TB, callback func(), contains ...string) {
	tb.Helper()
	defer func() {
		r := recover()
		if r == nil {
			tb.Errorf("GOT: %v; WANT: %v", r, contains)
			return
		}
		message, ok := r.(string)
		if !ok {
			tb.Errorf("GOT: %T; WANT: string", r)
			return
		}
		for _, stub := range contains {
			if stub != "" && !strings.Contains(message, stub) {
				tb.Errorf("GOT: %v; WANT: %q", message, stub)
			}
		}
	}()
	callback()
}

// ensurePops pops once for each element of want, where a nil element means
// the pop must report no value.
func ensurePops(tb testing.TB, r *Ring[int], want ...*int) {
	tb.Helper()
	for i, w := range want {
		got, ok := r.Pop()
		if w == nil {
			if ok {
				tb.Errorf("%d: GOT: %v; WANT: no value", i, got)
			}
			continue
		}
		if !ok {
			tb.Errorf("%d: GOT: no value; WANT: %v", i, *w)
		} else if got != *w {
			tb.Errorf("%d: GOT: %v; WANT: %v", i, got, *w)
		}
	}
}

func some(v int) *int { return &v }

func ensureValuesMatch(tb testing.TB, got, want []int) {
	tb.Helper()

	la, lb := len(got), len(want)

	max := la
	if max < lb {
		max = lb
	}

	for i := 0; i < max; i++ {
		if i < la && i < lb {
			if got, want := got[i], want[i]; got != want {
				tb.Errorf("%d: GOT: %v; WANT: %v", i, got, want)
			}
		} else if i < la {
			tb.Errorf("%d: GOT: extra value: %v", i, got[i])
		} else /* i < lb */ {
			tb.Errorf("%d: WANT: extra value: %v", i, want[i])
		}
	}
}
