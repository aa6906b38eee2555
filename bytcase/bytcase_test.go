package bytcase

import (
	"testing"

	"github.com/charlievieth/unicase/internal/test"
)

func TestEqual(t *testing.T) { test.Equal(t, test.ByteEqualFunc(Equal)) }

func TestCompare(t *testing.T) { test.Compare(t, test.ByteCompareFunc(Compare)) }

func TestFold(t *testing.T) { test.Fold(t, test.ByteFoldFunc(Fold)) }

// The zero-copy view must not allocate on the comparison paths.
func TestEqualAllocs(t *testing.T) {
	s := []byte("Grüße, WELT")
	tr := []byte("grüsse, welt")
	allocs := testing.AllocsPerRun(100, func() {
		if !Equal(s, tr) {
			t.Fatal("Equal = false")
		}
		if Compare(s, tr) != 0 {
			t.Fatal("Compare != 0")
		}
	})
	if allocs != 0 {
		t.Errorf("allocated %.1f times per run; want: 0", allocs)
	}
}

func TestFoldNil(t *testing.T) {
	if got := Fold(nil); len(got) != 0 {
		t.Errorf("Fold(nil) = %q; want: empty", got)
	}
	if !Equal(nil, []byte("")) {
		t.Error(`Equal(nil, "") = false; want: true`)
	}
	if Compare(nil, nil) != 0 {
		t.Error("Compare(nil, nil) != 0")
	}
}
