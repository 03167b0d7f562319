//go:build !js

package core

import (
	"os"
	"strings"
)

// QueryEnv is the environment variable holding the ambient query
// string on server builds, e.g. "loggers=render,router&loglevel=debug".
const QueryEnv = "DLOG_QUERY"

func detectRuntime() Runtime { return RuntimeServer }

func topQuery() (string, error) { return localQuery(), nil }

// localQuery tolerates a leading "?" so the variable can be set by
// copy-pasting a URL fragment.
func localQuery() string {
	return strings.TrimPrefix(os.Getenv(QueryEnv), "?")
}
