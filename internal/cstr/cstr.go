//go:build cgo
// +build cgo

// Package cstr exposes libc's case-insensitive string comparisons for
// use as a reference implementation in tests.
package cstr

/*
#include <locale.h>
#include <stdlib.h>
#include <strings.h>
#include <wchar.h>

static int cstr_locale_ok = 0;

static void cstr_init_locale(void) {
	cstr_locale_ok = setlocale(LC_ALL, "en_US.UTF-8") != NULL;
}

static int cstr_have_locale(void) {
	return cstr_locale_ok;
}

static int cstr_wcscasecmp(const char *s1, const char *s2) {
	size_t n1 = mbstowcs(NULL, s1, 0);
	size_t n2 = mbstowcs(NULL, s2, 0);
	if (n1 == (size_t)-1 || n2 == (size_t)-1) {
		return strcasecmp(s1, s2);
	}
	wchar_t *w1 = calloc(n1 + 1, sizeof(wchar_t));
	wchar_t *w2 = calloc(n2 + 1, sizeof(wchar_t));
	if (w1 == NULL || w2 == NULL) {
		free(w1);
		free(w2);
		return strcasecmp(s1, s2);
	}
	mbstowcs(w1, s1, n1 + 1);
	mbstowcs(w2, s2, n2 + 1);
	int ret = wcscasecmp(w1, w2);
	free(w1);
	free(w2);
	return ret;
}
*/
import "C"

import "unsafe"

func init() {
	C.cstr_init_locale()
}

// Enabled reports whether the libc reference is available.
func Enabled() bool { return true }

// LocaleEnabled reports whether the en_US.UTF-8 locale was successfully
// installed at init. When false, wide-character comparisons run in the
// C locale and are only meaningful for ASCII input.
func LocaleEnabled() bool { return C.cstr_have_locale() != 0 }

func clamp(n int) int {
	if n < 0 {
		return -1
	}
	if n > 0 {
		return 1
	}
	return 0
}

// Strcasecmp compares s and t with libc strcasecmp. Only meaningful for
// ASCII input and inputs without NUL bytes.
func Strcasecmp(s, t string) int {
	cs := C.CString(s)
	ct := C.CString(t)
	ret := clamp(int(C.strcasecmp(cs, ct)))
	C.free(unsafe.Pointer(cs))
	C.free(unsafe.Pointer(ct))
	return ret
}

// Wcscasecmp compares s and t with the locale-aware wide-character
// wcscasecmp after converting both to wide strings. Results beyond the
// ASCII range are only meaningful when LocaleEnabled reports true.
func Wcscasecmp(s, t string) int {
	cs := C.CString(s)
	ct := C.CString(t)
	ret := clamp(int(C.cstr_wcscasecmp(cs, ct)))
	C.free(unsafe.Pointer(cs))
	C.free(unsafe.Pointer(ct))
	return ret
}
