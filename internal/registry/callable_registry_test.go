package registry

import (
	stderrors "errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/textsig/internal/errors"
	"github.com/toyz/textsig/internal/models"
)

func callable(name, owner string, line int) models.Callable {
	return models.Callable{
		Name:     name,
		Owner:    owner,
		Location: errors.SourceLocation{File: "lib.rs", Line: line, Column: 1},
	}
}

func TestCallableRegistry_Register(t *testing.T) {
	tests := []struct {
		name        string
		callables   []models.Callable
		expectError bool
		expectLen   int
	}{
		{
			name:      "distinct names",
			callables: []models.Callable{callable("a", "", 1), callable("b", "", 2)},
			expectLen: 2,
		},
		{
			name:      "same name on different owners",
			callables: []models.Callable{callable("method", "A", 1), callable("method", "B", 2), callable("method", "", 3)},
			expectLen: 3,
		},
		{
			name:        "duplicate function",
			callables:   []models.Callable{callable("a", "", 1), callable("a", "", 5)},
			expectError: true,
			expectLen:   1,
		},
		{
			name:        "duplicate method",
			callables:   []models.Callable{callable("m", "A", 1), callable("m", "A", 5)},
			expectError: true,
			expectLen:   1,
		},
		{
			name:        "empty name",
			callables:   []models.Callable{callable("", "", 1)},
			expectError: true,
			expectLen:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewCallableRegistry()
			var lastErr error
			for _, c := range tt.callables {
				if err := r.Register(c); err != nil {
					lastErr = err
				}
			}

			if tt.expectError {
				require.Error(t, lastErr)
				var ve *errors.ValidationError
				assert.True(t, stderrors.As(lastErr, &ve))
			} else {
				assert.NoError(t, lastErr)
			}
			assert.Equal(t, tt.expectLen, len(r.List()))
		})
	}
}

func TestCallableRegistry_DuplicateKeepsFirst(t *testing.T) {
	r := NewCallableRegistry()
	require.NoError(t, r.Register(callable("f", "", 3)))

	err := r.Register(callable("f", "", 9))
	require.Error(t, err)

	var ve *errors.ValidationError
	require.True(t, stderrors.As(err, &ve))
	assert.Equal(t, 9, ve.Location().Line)
	assert.Equal(t, "lib.rs:3:1", ve.Context()["previous"])
	require.Len(t, ve.Suggestions(), 1)
	assert.Contains(t, ve.Suggestions()[0], "lib.rs:3:1")

	kept := r.List()
	require.Len(t, kept, 1)
	assert.Equal(t, 3, kept[0].Location.Line)
}

func TestCallableRegistry_ListPreservesOrder(t *testing.T) {
	r := NewCallableRegistry()
	for i, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, r.Register(callable(name, "", i+1)))
	}

	var names []string
	for _, c := range r.List() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}

func TestCallableRegistry_ConcurrentRegister(t *testing.T) {
	r := NewCallableRegistry()
	var wg sync.WaitGroup
	errs := make(chan error, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.Register(callable("shared", "", 1)); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	assert.Equal(t, 1, len(r.List()))
	assert.Len(t, errs, 49)
}
