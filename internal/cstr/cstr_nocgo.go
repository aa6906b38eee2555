//go:build !cgo
// +build !cgo

package cstr

// Enabled reports whether the libc reference is available.
func Enabled() bool { return false }

// LocaleEnabled reports whether the en_US.UTF-8 locale was successfully
// installed at init.
func LocaleEnabled() bool { return false }

func Strcasecmp(s, t string) int { panic("cstr: built without cgo") }

func Wcscasecmp(s, t string) int { panic("cstr: built without cgo") }
