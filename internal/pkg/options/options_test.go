package options

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"

	"github.com/cropsight/pointset/internal/pkg/env"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o := NewOptions()
	o.BindPersistentFlags(flags)
	return flags
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()
	flags := testFlags()
	assert.NoError(t, flags.Parse([]string{}))

	o := NewOptions()
	assert.NoError(t, o.Load(env.Empty(), flags))
	assert.False(t, o.Verbose)
	assert.Empty(t, o.LogFilePath)
	assert.NotEmpty(t, o.WorkingDirectory)
}

func TestLoadFromFlags(t *testing.T) {
	t.Parallel()
	flags := testFlags()
	assert.NoError(t, flags.Parse([]string{"--verbose", "--log-file", "/tmp/log.txt"}))

	o := NewOptions()
	assert.NoError(t, o.Load(env.Empty(), flags))
	assert.True(t, o.Verbose)
	assert.Equal(t, "/tmp/log.txt", o.LogFilePath)
}

func TestLoadFromEnv(t *testing.T) {
	t.Parallel()
	flags := testFlags()
	assert.NoError(t, flags.Parse([]string{}))

	envs := env.FromMap(map[string]string{
		"POINTSET_VERBOSE":  "true",
		"POINTSET_LOG_FILE": "/tmp/env-log.txt",
	})

	o := NewOptions()
	assert.NoError(t, o.Load(envs, flags))
	assert.True(t, o.Verbose)
	assert.Equal(t, "/tmp/env-log.txt", o.LogFilePath)
}

func TestFlagTakesPrecedenceOverEnv(t *testing.T) {
	t.Parallel()
	flags := testFlags()
	assert.NoError(t, flags.Parse([]string{"--log-file", "/tmp/flag-log.txt"}))

	envs := env.FromMap(map[string]string{"POINTSET_LOG_FILE": "/tmp/env-log.txt"})

	o := NewOptions()
	assert.NoError(t, o.Load(envs, flags))
	assert.Equal(t, "/tmp/flag-log.txt", o.LogFilePath)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	o := NewOptions()
	assert.Empty(t, o.Validate(nil))

	msg := o.Validate([]string{"LogFilePath"})
	assert.Contains(t, msg, "Missing log file path.")
	assert.Contains(t, msg, `"--log-file" flag`)
	assert.Contains(t, msg, "POINTSET_LOG_FILE")
}
