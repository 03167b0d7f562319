//go:build js

package core

import (
	"fmt"
	"strings"
	"syscall/js"
)

func detectRuntime() Runtime { return RuntimeBrowser }

// topQuery reads the top-level page's query string. Accessing
// window.top.location throws when the page is framed cross-origin;
// the panic surfaces as an error so the caller falls back to the
// local location.
func topQuery() (q string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("top location inaccessible: %v", r)
		}
	}()
	search := js.Global().Get("top").Get("location").Get("search")
	if !search.Truthy() {
		return "", nil
	}
	return strings.TrimPrefix(search.String(), "?"), nil
}

func localQuery() string {
	loc := js.Global().Get("location")
	if !loc.Truthy() {
		return ""
	}
	return strings.TrimPrefix(loc.Get("search").String(), "?")
}
