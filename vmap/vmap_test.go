package vmap

import (
	"sync"
	"testing"
)

func TestClearThenPopulateThenRead(t *testing.T) {
	v := New()
	p := Point{X: 1, Y: 2, Mass: 1}
	v.Set(p, Vector2{X: 3, Y: 4})
	if v.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", v.Len())
	}

	v.Clear()
	if v.Len() != 0 {
		t.Fatalf("Len() after Clear() = %d, want 0", v.Len())
	}
	if got := v.Velocity(p); got != (Vector2{}) {
		t.Fatalf("Velocity() after Clear() = %+v, want zero value", got)
	}
}

func TestConcurrentReadersAfterPopulation(t *testing.T) {
	v := New()
	const n = 200
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		p := Point{X: float64(i), Y: float64(i), Mass: 1}
		pts[i] = p
		v.Set(p, Vector2{X: float64(i), Y: -float64(i)})
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got := v.Velocity(pts[i])
			want := Vector2{X: float64(i), Y: -float64(i)}
			if got != want {
				t.Errorf("Velocity(%d) = %+v, want %+v", i, got, want)
			}
		}(i)
	}
	wg.Wait()
}
