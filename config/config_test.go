package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessira/dlog/core"
)

func testScope(query string) core.Scope {
	return core.NewScope(core.RuntimeServer, core.SystemClock, query)
}

func TestApplyDirectives(t *testing.T) {
	t.Run("enable override remove", func(t *testing.T) {
		s := New(testScope(""))
		s.ApplyDirectives("foo,bar=debug,!foo")

		assert.False(t, s.DefaultEnabled("foo"))
		assert.True(t, s.DefaultEnabled("bar"))

		level, ok := s.Override("bar")
		require.True(t, ok)
		assert.Equal(t, core.LevelDebug, level)

		_, ok = s.Override("foo")
		assert.False(t, ok)
	})

	t.Run("later tokens win", func(t *testing.T) {
		s := New(testScope(""))
		s.ApplyDirectives("foo,!foo,foo")
		assert.True(t, s.DefaultEnabled("foo"))
		assert.Equal(t, []string{"foo"}, s.EnabledNames())
	})

	t.Run("trailing equals is a bare name", func(t *testing.T) {
		s := New(testScope(""))
		s.ApplyDirectives("foo=")
		assert.True(t, s.DefaultEnabled("foo"))
		_, ok := s.Override("foo")
		assert.False(t, ok)
	})

	t.Run("unknown override level silences", func(t *testing.T) {
		s := New(testScope(""))
		s.ApplyDirectives("foo=loud")
		level, ok := s.Override("foo")
		require.True(t, ok)
		assert.Equal(t, core.LevelNone, level)
	})

	t.Run("whitespace and empty tokens", func(t *testing.T) {
		s := New(testScope(""))
		s.ApplyDirectives(" a , ,b=info,")
		assert.Equal(t, []string{"a", "b"}, s.EnabledNames())
	})
}

func TestLoadPrecedence(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := Load(testScope(""))
		assert.Equal(t, core.LevelOff, s.GlobalLevel())
		assert.True(t, s.Timestamp())
		assert.Empty(t, s.EnabledNames())
	})

	t.Run("dev category raises global level", func(t *testing.T) {
		t.Setenv("DLOG_ENV", "local")
		s := Load(testScope(""))
		assert.Equal(t, core.LevelInfo, s.GlobalLevel())
	})

	t.Run("default loggers seed the enabled set", func(t *testing.T) {
		t.Setenv("DLOG_DEFAULT_LOGGERS", " render , router ")
		s := Load(testScope(""))
		assert.Equal(t, []string{"render", "router"}, s.EnabledNames())
	})

	t.Run("query directives beat environment directives", func(t *testing.T) {
		t.Setenv("DLOG_LOGGERS", "fromenv")
		s := Load(testScope("loggers=fromquery"))
		assert.True(t, s.DefaultEnabled("fromquery"))
		assert.False(t, s.DefaultEnabled("fromenv"))
	})

	t.Run("environment directives used without query", func(t *testing.T) {
		t.Setenv("DLOG_LOGGERS", "fromenv=trace")
		s := Load(testScope(""))
		assert.True(t, s.DefaultEnabled("fromenv"))
		level, ok := s.Override("fromenv")
		require.True(t, ok)
		assert.Equal(t, core.LevelTrace, level)
	})

	t.Run("directives can remove seeded names", func(t *testing.T) {
		t.Setenv("DLOG_DEFAULT_LOGGERS", "render,router")
		s := Load(testScope("loggers=!render"))
		assert.False(t, s.DefaultEnabled("render"))
		assert.True(t, s.DefaultEnabled("router"))
	})

	t.Run("loglevel overrides the category default", func(t *testing.T) {
		t.Setenv("DLOG_ENV", "local")
		s := Load(testScope("loglevel=trace"))
		assert.Equal(t, core.LevelTrace, s.GlobalLevel())
	})

	t.Run("loglevel accepts a rank", func(t *testing.T) {
		s := Load(testScope("loglevel=6"))
		assert.Equal(t, core.LevelDebug, s.GlobalLevel())
	})

	t.Run("unknown loglevel silences", func(t *testing.T) {
		t.Setenv("DLOG_ENV", "dev")
		s := Load(testScope("loglevel=shout"))
		assert.Equal(t, core.LevelNone, s.GlobalLevel())
	})

	t.Run("timestamp flag", func(t *testing.T) {
		t.Setenv("DLOG_TIMESTAMP", "false")
		s := Load(testScope(""))
		assert.False(t, s.Timestamp())
	})
}

func TestReplace(t *testing.T) {
	seeded := New(testScope(""))
	prev := Replace(seeded)
	defer Replace(prev)

	assert.Same(t, seeded, Current())

	got := Replace(prev)
	assert.Same(t, seeded, got)
}

func TestSettingsMutators(t *testing.T) {
	s := New(testScope(""))

	s.SetGlobalLevel(core.LevelWarn)
	assert.Equal(t, core.LevelWarn, s.GlobalLevel())

	s.SetTimestamp(false)
	assert.False(t, s.Timestamp())

	s.SetOverride("x", core.LevelTrace)
	level, ok := s.Override("x")
	require.True(t, ok)
	assert.Equal(t, core.LevelTrace, level)
}
