package turing_test

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// pingPong bounces between two cells forever.
const pingPong = `pingpong
p,q
a
a,_
p
_

(p,a,q,a,R)
(q,_,p,_,L)
`

func parse(t *testing.T, src string) *domain.Definition {
	t.Helper()
	def, err := compiler.NewParser().Parse(strings.NewReader(src))
	require.NoError(t, err)
	return def
}

func TestLoad_LineFormat(t *testing.T) {
	eng, err := turing.Load("examples/rewind/machine.tm")
	require.NoError(t, err)
	assert.Equal(t, "machine", eng.Name)

	out, err := eng.Transduce(context.Background(), "ab")
	require.NoError(t, err)
	assert.Equal(t, "ab_", out)

	verdict, err := eng.Recognize(context.Background(), "ab")
	require.NoError(t, err)
	assert.Equal(t, domain.Accept, verdict)
}

func TestLoad_Document(t *testing.T) {
	eng, err := turing.Load("examples/binary-increment/machine.yaml", turing.WithName("inc"))
	require.NoError(t, err)
	assert.Equal(t, "inc", eng.Name)

	tests := []struct {
		input string
		want  string
	}{
		{"1011", "1100_"},
		{"0", "1_"},
		{"1", "10_"},
		{"111", "1000_"},
		{"", "1_"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out, err := eng.Transduce(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := turing.Load("examples/does-not-exist.tm")
	assert.Error(t, err)

	_, err = turing.New(nil)
	assert.Error(t, err)
}

func TestEngine_StepLimit(t *testing.T) {
	eng, err := turing.New(parse(t, pingPong), turing.WithStepLimit(100))
	require.NoError(t, err)

	_, err = eng.Recognize(context.Background(), "a")
	require.ErrorIs(t, err, domain.ErrStepLimitExceeded)

	var limitErr *domain.StepLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 100, limitErr.Limit)

	_, err = eng.Transduce(context.Background(), "a")
	assert.ErrorIs(t, err, domain.ErrStepLimitExceeded)
}

func TestEngine_Cancellation(t *testing.T) {
	eng, err := turing.New(parse(t, pingPong))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := eng.Run(ctx, domain.ModeRecognizer, "a")
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Equal(t, domain.HaltCanceled, res.Halt)
}

func TestEngine_RunBatch_PreservesOrder(t *testing.T) {
	def := parse(t, `parity
q0,q1
0,1
0,1,_
q0
_
q1
(q0,0,q1,0,R)
(q0,1,q0,1,R)
`)
	inputs := make([]string, 200)
	for i := range inputs {
		inputs[i] = strings.Repeat("1", i%7) + fmt.Sprint(i%2)
	}

	seq, err := turing.New(def)
	require.NoError(t, err)
	par, err := turing.New(def, turing.WithWorkers(8))
	require.NoError(t, err)

	ctx := context.Background()
	want := seq.RunBatch(ctx, domain.ModeRecognizer, inputs)
	got := par.RunBatch(ctx, domain.ModeRecognizer, inputs)

	require.Len(t, got, len(inputs))
	assert.Equal(t, want, got)
	for i, res := range got {
		assert.Equal(t, inputs[i], res.Input)
	}
}

func TestEngine_RunBatch_Empty(t *testing.T) {
	eng, err := turing.New(parse(t, pingPong), turing.WithWorkers(4))
	require.NoError(t, err)

	assert.Empty(t, eng.RunBatch(context.Background(), domain.ModeTransducer, nil))
}

func TestEngine_Cache(t *testing.T) {
	var runs atomic.Int32
	hooks := domain.LifecycleHooks{
		OnRunEnd: func(ctx context.Context, e *domain.RunEvent) { runs.Add(1) },
	}
	cache := memory.NewCache()

	eng, err := turing.Load("examples/rewind/machine.tm",
		turing.WithCache(cache),
		turing.WithLifecycleHooks(hooks),
	)
	require.NoError(t, err)
	ctx := context.Background()

	first := eng.Run(ctx, domain.ModeTransducer, "ab")
	second := eng.Run(ctx, domain.ModeTransducer, "ab")

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), runs.Load(), "second run must be served from the cache")
	assert.Equal(t, 1, cache.Len())

	// The same input in the other mode is a different entry.
	verdict, err := eng.Recognize(ctx, "ab")
	require.NoError(t, err)
	assert.Equal(t, domain.Accept, verdict)
	assert.Equal(t, 2, cache.Len())
}

func TestEngine_CacheSkipsUnhaltedRuns(t *testing.T) {
	cache := memory.NewCache()
	eng, err := turing.New(parse(t, pingPong), turing.WithCache(cache), turing.WithStepLimit(10))
	require.NoError(t, err)

	res := eng.Run(context.Background(), domain.ModeRecognizer, "a")
	require.Error(t, res.Err)
	assert.Equal(t, 0, cache.Len())
}

func TestEngine_HooksCarryRunID(t *testing.T) {
	var starts, ends []string
	hooks := domain.LifecycleHooks{
		OnRunStart: func(ctx context.Context, e *domain.RunEvent) { starts = append(starts, e.RunID) },
		OnRunEnd:   func(ctx context.Context, e *domain.RunEvent) { ends = append(ends, e.RunID) },
	}
	eng, err := turing.Load("examples/parity/machine.tm", turing.WithLifecycleHooks(hooks))
	require.NoError(t, err)

	eng.RunBatch(context.Background(), domain.ModeRecognizer, []string{"0", "1"})

	require.Len(t, starts, 2)
	assert.Equal(t, starts, ends)
	assert.NotEmpty(t, starts[0])
	assert.NotEqual(t, starts[0], starts[1])
}
