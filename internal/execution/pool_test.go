package execution

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsel/internal/config"
	"tsel/internal/engine"
	"tsel/internal/platform"
	"tsel/internal/selection"
)

func poolFixture(t *testing.T, suiteCount int) (*Pool, []platform.Class) {
	t.Helper()
	eng := engine.New(selection.Skipper{})
	var classes []platform.Class
	for i := 0; i < suiteCount; i++ {
		name := fmt.Sprintf("Suite%02d", i)
		classID := fmt.Sprintf("[class:%s]", name)
		require.NoError(t, eng.Register(&engine.Suite{
			Class: platform.Class{Name: name},
			Root: &platform.Descriptor{
				Identifier: platform.Identifier{
					UniqueID: classID,
					Kind:     platform.KindContainer,
				},
				MayRegisterTests: true,
				Children: []*platform.Descriptor{
					{
						Identifier: platform.Identifier{
							UniqueID:    classID + "/[test:t]",
							DisplayName: "t",
							Kind:        platform.KindTest,
						},
					},
				},
			},
		}))
		classes = append(classes, platform.Class{Name: name})
	}

	finder, err := selection.NewFinder(eng, selection.GroupConfig{}, nil)
	require.NoError(t, err)

	cfg := config.New()
	cfg.Processors = 4
	return NewPool(cfg, finder), classes
}

func TestPool_SelectsAllClasses(t *testing.T) {
	pool, classes := poolFixture(t, 9)

	results, duration, err := pool.Select(classes)
	require.NoError(t, err)
	require.Len(t, results, 9)
	assert.GreaterOrEqual(t, duration.Nanoseconds(), int64(0))

	for i, res := range results {
		assert.Equal(t, fmt.Sprintf("Suite%02d", i), res.Class.Name, "results are sorted by class")
		require.NoError(t, res.Err)
		assert.Len(t, res.Tests, 1)
	}
}

func TestPool_EmptyInput(t *testing.T) {
	pool, _ := poolFixture(t, 1)

	results, _, err := pool.Select(nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPool_PerClassErrors(t *testing.T) {
	pool, classes := poolFixture(t, 2)
	classes = append(classes, platform.Class{Name: "Unregistered"})

	results, _, err := pool.Select(classes)
	require.NoError(t, err)
	require.Len(t, results, 3)

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			assert.Equal(t, "Unregistered", res.Class.Name)
		}
	}
	assert.Equal(t, 1, failed, "one class fails, the others still select")
}
