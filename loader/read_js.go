// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js

package loader

import (
	"fmt"
	"syscall/js"
)

// readFile fetches path relative to the page. Runs on a loader
// goroutine, so blocking on the promise is fine.
func readFile(path string) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)

	promise := js.Global().Call("fetch", path)
	var onBuf, onResp, onErr js.Func
	onBuf = js.FuncOf(func(_ js.Value, args []js.Value) any {
		buf := js.Global().Get("Uint8Array").New(args[0])
		data := make([]byte, buf.Get("length").Int())
		js.CopyBytesToGo(data, buf)
		ch <- result{data: data}
		return nil
	})
	onResp = js.FuncOf(func(_ js.Value, args []js.Value) any {
		resp := args[0]
		if !resp.Get("ok").Bool() {
			ch <- result{err: fmt.Errorf("loader: fetch %s: status %d", path, resp.Get("status").Int())}
			return nil
		}
		resp.Call("arrayBuffer").Call("then", onBuf, onErr)
		return nil
	})
	onErr = js.FuncOf(func(_ js.Value, args []js.Value) any {
		ch <- result{err: fmt.Errorf("loader: fetch %s: %s", path, args[0].Call("toString").String())}
		return nil
	})
	promise.Call("then", onResp, onErr)

	r := <-ch
	onBuf.Release()
	onResp.Release()
	onErr.Release()
	return r.data, r.err
}
