package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/tessira/dlog/core"
	"github.com/tessira/dlog/queryparse"
)

// Deploy-time environment variables, all under the DLOG_ prefix.
const (
	// envPrefix is the viper environment prefix.
	envPrefix = "DLOG"

	// keyLoggers (DLOG_LOGGERS) carries a directives string in the
	// same grammar as the "loggers" query parameter.
	keyLoggers = "loggers"
	// keyDefaultLoggers (DLOG_DEFAULT_LOGGERS) is a comma-separated
	// list of names enabled by default.
	keyDefaultLoggers = "default_loggers"
	// keyEnv (DLOG_ENV) names the deployment category; "local" and
	// "dev" pick an info global level, anything else picks off.
	keyEnv = "env"
	// keyTimestamp (DLOG_TIMESTAMP) toggles timestamp prefixing,
	// default true.
	keyTimestamp = "timestamp"
)

// Query parameters understood by Load.
const (
	// QueryLoggers is the directives query parameter. It takes
	// precedence over DLOG_LOGGERS.
	QueryLoggers = "loggers"
	// QueryLogLevel overrides the global level with a name or rank.
	QueryLogLevel = "loglevel"
)

func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyTimestamp, true)
	return v
}

// Load assembles Settings for the scope. Precedence, later steps
// mutating the same collections:
//
//  1. enabled-set := DLOG_DEFAULT_LOGGERS names, trimmed
//  2. global level := info when DLOG_ENV is local/dev, else off
//  3. directives from the "loggers" query parameter, else
//     DLOG_LOGGERS, folded in token order
//  4. the "loglevel" query parameter replaces the global level
func Load(scope core.Scope) *Settings {
	env := newEnv()
	s := New(scope)

	for _, name := range strings.Split(env.GetString(keyDefaultLoggers), ",") {
		if name = strings.TrimSpace(name); name != "" {
			s.addEnabled(name)
		}
	}

	if isDevCategory(env.GetString(keyEnv)) {
		s.level = core.LevelInfo
	}

	q := queryparse.Parse(scope.Query())
	directives := q.Get(QueryLoggers)
	if directives == "" {
		directives = env.GetString(keyLoggers)
	}
	s.ApplyDirectives(directives)

	if q.Has(QueryLogLevel) {
		// An unknown value parses to LevelNone and silences all
		// output, matching the degrade-to-silence contract.
		s.level = core.ParseLevel(q.Get(QueryLogLevel))
	}

	s.timestamp = env.GetBool(keyTimestamp)
	return s
}

func isDevCategory(category string) bool {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "local", "dev", "development":
		return true
	}
	return false
}
