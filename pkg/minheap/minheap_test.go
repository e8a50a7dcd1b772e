package minheap

import (
	"math/rand"
	"sort"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHeap(t *testing.T) {
	Convey("Given an empty heap", t, func() {
		h := New[string]()

		Convey("Pop and Peek report nothing", func() {
			_, _, ok := h.Pop()
			So(ok, ShouldBeFalse)
			_, _, ok = h.Peek()
			So(ok, ShouldBeFalse)
			So(h.Len(), ShouldEqual, 0)
		})

		Convey("When items are pushed out of order", func() {
			h.Push(3, "c")
			h.Push(1, "a")
			h.Push(2, "b")

			Convey("Peek shows the smallest without removing it", func() {
				score, item, ok := h.Peek()
				So(ok, ShouldBeTrue)
				So(score, ShouldEqual, 1.0)
				So(item, ShouldEqual, "a")
				So(h.Len(), ShouldEqual, 3)
			})

			Convey("Pop returns them by ascending score", func() {
				var got []string
				for h.Len() > 0 {
					_, item, _ := h.Pop()
					got = append(got, item)
				}
				So(got, ShouldResemble, []string{"a", "b", "c"})
			})
		})

		Convey("When scores are duplicated", func() {
			h.Push(5, "first")
			h.Push(1, "low")
			h.Push(5, "second")
			h.Push(5, "third")

			Convey("Every duplicate is kept and ties pop in push order", func() {
				So(h.Len(), ShouldEqual, 4)
				var got []string
				for h.Len() > 0 {
					_, item, _ := h.Pop()
					got = append(got, item)
				}
				So(got, ShouldResemble, []string{"low", "first", "second", "third"})
			})
		})
	})
}

func TestHeapRandom(t *testing.T) {
	Convey("Random scores pop in non-decreasing order", t, func() {
		rnd := rand.New(rand.NewSource(0x4ea9))
		h := New[int]()
		scores := make([]float64, 10_000)
		for i := range scores {
			scores[i] = float64(rnd.Intn(500))
			h.Push(scores[i], i)
		}
		sort.Float64s(scores)

		for i := range scores {
			score, _, ok := h.Pop()
			So(ok, ShouldBeTrue)
			So(score, ShouldEqual, scores[i])
		}
		So(h.Len(), ShouldEqual, 0)
	})
}
