package ranklist

import (
	"fmt"
	"io"
	"os"
	"ranklist/pkg/skiplist"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestBoardBasic(t *testing.T) {
	b := NewBoard[string, int](skiplist.Options{Seed: 1})
	b.Put("carol", 3)
	b.Put("alice", 1)
	b.Put("bob", 2)

	v, ok := b.Get("bob")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	rank, ok := b.Rank("carol")
	assert.True(t, ok)
	assert.Equal(t, 2, rank)

	k, v, ok := b.At(0)
	assert.True(t, ok)
	assert.Equal(t, "alice", k)
	assert.Equal(t, 1, v)

	_, _, ok = b.At(3)
	assert.False(t, ok)
	_, _, ok = b.At(-1)
	assert.False(t, ok)

	assert.True(t, b.Delete("alice"))
	assert.False(t, b.Delete("alice"))
	assert.Equal(t, 2, b.Len())
	rank, _ = b.Rank("carol")
	assert.Equal(t, 1, rank)
}

func TestBoardRange(t *testing.T) {
	b := NewBoard[int, string](skiplist.Options{Seed: 2})
	for i := range 20 {
		b.Put(i, fmt.Sprint(i))
	}

	var keys []int
	b.Range(5, 9, func(k int, _ string) bool {
		keys = append(keys, k)
		return true
	})
	assert.Equal(t, []int{5, 6, 7, 8}, keys)

	keys = keys[:0]
	b.Range(-3, 100, func(k int, _ string) bool {
		keys = append(keys, k)
		return len(keys) < 3
	})
	assert.Equal(t, []int{0, 1, 2}, keys)

	called := false
	b.Range(15, 10, func(int, string) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

func TestBoardConcurrent(t *testing.T) {
	const (
		writers = 8
		perW    = 500
	)
	b := NewBoard[int, int](skiplist.Options{Seed: 3})

	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := range perW {
				b.Put(w*perW+i, i)
			}
		}()
		go func() {
			defer wg.Done()
			for i := range perW {
				b.Get(i)
				b.Rank(i)
				b.At(i)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, writers*perW, b.Len())
	for k := range writers * perW {
		rank, ok := b.Rank(k)
		require.True(t, ok)
		assert.Equal(t, k, rank)
	}
}
