package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/testutils"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parity = `parity
q0,q1
0,1
0,1,_
q0
_
q1
(q0,0,q1,0,R)
(q0,1,q0,1,R)
`

func writeFiles(t *testing.T, definition, input string) (string, string) {
	t.Helper()
	return testutils.WriteFile(t, "machine.tm", definition), testutils.WriteFile(t, "input.txt", input)
}

func TestExecute(t *testing.T) {
	defPath, inPath := writeFiles(t, parity, "recognizer\n0\n1\n110\n")

	var out bytes.Buffer
	err := Execute(context.Background(), RunOptions{
		DefinitionPath: defPath,
		InputPath:      inPath,
		Config:         config.Default(),
		Output:         &out,
	}, logging.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "accept\nreject\naccept\n", out.String())
}

func TestExecute_UnknownMode(t *testing.T) {
	defPath, inPath := writeFiles(t, parity, "decider\n0\n")

	var out bytes.Buffer
	err := Execute(context.Background(), RunOptions{
		DefinitionPath: defPath,
		InputPath:      inPath,
		Config:         config.Default(),
		Output:         &out,
	}, logging.NewNop())

	assert.ErrorIs(t, err, domain.ErrUnknownMode)
	assert.Empty(t, out.String())
}

func TestExecute_MalformedDefinition(t *testing.T) {
	defPath, inPath := writeFiles(t, "header\nq0\n0\n0,_\nq0\n", "recognizer\n0\n")

	err := Execute(context.Background(), RunOptions{
		DefinitionPath: defPath,
		InputPath:      inPath,
		Config:         config.Default(),
		Output:         &bytes.Buffer{},
	}, logging.NewNop())

	assert.ErrorIs(t, err, domain.ErrDefinitionFormat)
}

func TestExecute_MissingInput(t *testing.T) {
	defPath, _ := writeFiles(t, parity, "")

	err := Execute(context.Background(), RunOptions{
		DefinitionPath: defPath,
		InputPath:      filepath.Join(t.TempDir(), "missing.txt"),
		Config:         config.Default(),
		Output:         &bytes.Buffer{},
	}, logging.NewNop())

	assert.Error(t, err)
}

func TestCreateEngine_Caches(t *testing.T) {
	defPath, _ := writeFiles(t, parity, "")
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		cfg := config.Default()
		cfg.Cache.Backend = config.CacheMemory

		eng, cleanup, err := CreateEngine(ctx, defPath, cfg, logging.NewNop(), domain.LifecycleHooks{})
		require.NoError(t, err)
		defer cleanup()

		verdict, err := eng.Recognize(ctx, "0")
		require.NoError(t, err)
		assert.Equal(t, domain.Accept, verdict)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := config.Default()
		cfg.Cache.Backend = config.CacheRedis
		cfg.Cache.RedisAddr = mr.Addr()
		cfg.Cache.Prefix = "test:"

		eng, cleanup, err := CreateEngine(ctx, defPath, cfg, logging.NewNop(), domain.LifecycleHooks{})
		require.NoError(t, err)
		defer cleanup()

		verdict, err := eng.Recognize(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, domain.Reject, verdict)
		assert.Len(t, mr.Keys(), 1)
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		cfg := config.Default()
		cfg.Cache.Backend = config.CacheRedis
		cfg.Cache.RedisAddr = addr

		_, _, err := CreateEngine(ctx, defPath, cfg, logging.NewNop(), domain.LifecycleHooks{})
		assert.Error(t, err)
	})
}

func TestNewLogger_File(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "debug"
	cfg.LogFile = filepath.Join(t.TempDir(), "turing.log")

	logger, closer, err := NewLogger(cfg)
	require.NoError(t, err)
	logger.Debug("hello", "k", "v")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)

	cfg.LogLevel = "loud"
	_, _, err = NewLogger(cfg)
	assert.Error(t, err)
}
