package unicase_test

import (
	"encoding/json"
	"fmt"

	"github.com/charlievieth/unicase"
)

func ExampleEqual() {
	// ASCII
	fmt.Println(unicase.Equal("Content-Type", "content-type"))
	fmt.Println(unicase.Equal("a", "b"))

	// Unicode
	fmt.Println(unicase.Equal("Maße", "MASSE"))
	fmt.Println(unicase.Equal("ﬂour", "FLOUR"))
	fmt.Println(unicase.Equal("ΣΊΣΥΦΟΣ", "Σίσυφος"))
	// Output:
	// true
	// false
	// true
	// true
	// true
}

func ExampleCompare() {
	// ASCII
	fmt.Println(unicase.Compare("A", "b"))
	fmt.Println(unicase.Compare("A", "a"))
	fmt.Println(unicase.Compare("B", "a"))

	// Unicode
	fmt.Println(unicase.Compare("ß", "ss"))
	fmt.Println(unicase.Compare("αβδ", "ΑΒΔ"))
	// Output:
	// -1
	// 0
	// 1
	// 0
	// 0
}

func ExampleFold() {
	fmt.Printf("%q\n", unicase.Fold("Maße"))
	fmt.Printf("%q\n", unicase.Fold("ΣΊΣΥΦΟΣ"))
	fmt.Printf("%q\n", unicase.Fold("ﬃ"))
	// Output:
	// "masse"
	// "σίσυφοσ"
	// "ffi"
}

func ExampleNew() {
	u := unicase.New("Groß")
	fmt.Println(u, u.IsASCII())
	fmt.Println(u.EqualString("GROSS"))
	// Output:
	// Groß false
	// true
}

func ExampleMap() {
	m := unicase.NewMap[string]()
	m.Set(unicase.New("Content-Type"), "text/plain")
	m.Set(unicase.New("Straße"), "street")

	// Lookups take a plain string and allocate nothing.
	v, ok := m.Get("CONTENT-TYPE")
	fmt.Println(v, ok)
	v, ok = m.Get("STRASSE")
	fmt.Println(v, ok)

	// The stored key keeps the spelling it was inserted with.
	key, _, _ := m.GetKey("content-type")
	fmt.Println(key)
	// Output:
	// text/plain true
	// street true
	// Content-Type
}

func ExampleSet() {
	s := unicase.NewSet()
	s.Add(unicase.New("Kelvin"))
	fmt.Println(s.Contains("KELVIN"))
	fmt.Println(s.Contains("Kelvin")) // KELVIN SIGN
	fmt.Println(s.Contains("Celsius"))
	// Output:
	// true
	// true
	// false
}

func ExampleUniCase_MarshalText() {
	type header struct {
		Name  unicase.UniCase `json:"name"`
		Value string          `json:"value"`
	}
	data, _ := json.Marshal(header{Name: unicase.New("Content-Type"), Value: "text/plain"})
	fmt.Println(string(data))
	// Output:
	// {"name":"Content-Type","value":"text/plain"}
}

func ExampleNewAscii() {
	a, err := unicase.NewAscii("Host")
	fmt.Println(a, err)
	_, err = unicase.NewAscii("Straße")
	fmt.Println(err)
	// Output:
	// Host <nil>
	// unicase: non-ASCII content: "Straße"
}
