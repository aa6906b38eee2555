//go:build js && wasm

package unicase

import (
	"hash/maphash"
	"syscall/js"
)

// On js/wasm the generated fold table is not consulted: equality and
// ordering delegate to the host's locale-aware String.prototype
// .localeCompare and hashing to toLocaleLowerCase. The caller-visible
// contract is unchanged: Compare == 0 iff Equal, and Equal implies
// equal hashes.

func jsCompare(a, b string) int {
	opts := js.ValueOf(map[string]interface{}{"sensitivity": "accent"})
	return clamp(js.ValueOf(a).Call("localeCompare", b, "en", opts).Int())
}

func jsToLower(s string) string {
	return js.ValueOf(s).Call("toLocaleLowerCase", "en").String()
}

func foldEqual(s, t string) bool {
	return jsCompare(s, t) == 0
}

func foldCompare(s, t string) int {
	return jsCompare(s, t)
}

func foldHash(h *maphash.Hash, s string) {
	h.WriteString(jsToLower(s))
}

func foldString(s string) string {
	return jsToLower(s)
}
