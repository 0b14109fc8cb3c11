package asyncrt

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAndWaitFulfilled(t *testing.T) {
	rt := New(2)
	defer rt.Shutdown()

	task := rt.Submit(func() (interface{}, error) {
		time.Sleep(5 * time.Millisecond)
		return 42, nil
	})
	result, err := task.Wait()
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestWaitIsIdempotent(t *testing.T) {
	rt := New(1)
	defer rt.Shutdown()

	task := rt.Submit(func() (interface{}, error) { return "once", nil })
	r1, _ := task.Wait()
	r2, _ := task.Wait()
	assert.Equal(t, r1, r2)
}

func TestSubmitRejected(t *testing.T) {
	rt := New(1)
	defer rt.Shutdown()

	boom := errors.New("boom")
	task := rt.Submit(func() (interface{}, error) { return nil, boom })
	_, err := task.Wait()
	assert.Equal(t, boom, err)
}

func TestDoneReflectsCompletion(t *testing.T) {
	rt := New(1)
	defer rt.Shutdown()

	gate := make(chan struct{})
	task := rt.Submit(func() (interface{}, error) {
		<-gate
		return nil, nil
	})
	assert.False(t, task.Done())
	close(gate)
	task.Wait()
	assert.True(t, task.Done())
}

func TestManyConcurrentTasks(t *testing.T) {
	rt := New(4)
	defer rt.Shutdown()

	tasks := make([]*Task, 50)
	for i := range tasks {
		i := i
		tasks[i] = rt.Submit(func() (interface{}, error) { return i * i, nil })
	}
	for i, task := range tasks {
		result, err := task.Wait()
		require.NoError(t, err)
		assert.Equal(t, i*i, result)
	}
}
