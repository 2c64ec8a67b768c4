package chflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReceive(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 42

		v, ok := Receive(t.Context(), ch)
		assert.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		v, ok := Receive(ctx, make(chan int))
		assert.False(t, ok)
		assert.Zero(t, v)
	})

	t.Run("closed", func(t *testing.T) {
		ch := make(chan string)
		close(ch)

		v, ok := Receive(t.Context(), ch)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("waits for a late value", func(t *testing.T) {
		ch := make(chan int)
		go func() {
			time.Sleep(5 * time.Millisecond)
			ch <- 7
		}()

		v, ok := Receive(t.Context(), ch)
		assert.True(t, ok)
		assert.Equal(t, 7, v)
	})
}

func TestSend(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		ch := make(chan int, 1)

		assert.True(t, Send(t.Context(), ch, 1))
		assert.Equal(t, 1, <-ch)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(t.Context(), 5*time.Millisecond)
		defer cancel()

		assert.False(t, Send(ctx, make(chan int), 1))
	})
}

func TestDrain(t *testing.T) {
	ch := make(chan struct{}, 3)
	ch <- struct{}{}
	ch <- struct{}{}

	assert.Equal(t, 2, Drain(ch))
	assert.Equal(t, 0, Drain(ch))

	close(ch)
	assert.Equal(t, 0, Drain(ch))
}

func TestLines(t *testing.T) {
	t.Run("feeds until exhausted", func(t *testing.T) {
		values := []string{"a", "b", "c"}
		next := func() (string, bool) {
			if len(values) == 0 {
				return "", false
			}
			v := values[0]
			values = values[1:]
			return v, true
		}

		var got []string
		for v := range Lines(t.Context(), next) {
			got = append(got, v)
		}
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("stops on cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		ch := Lines(ctx, func() (int, bool) { return 1, true })

		<-ch
		cancel()

		assert.Eventually(t, func() bool {
			select {
			case _, ok := <-ch:
				return !ok
			default:
				return false
			}
		}, time.Second, time.Millisecond)
	})
}
