// Package value provides the JSON-like tree consumed by the renderer.
//
// Unlike map[string]any, a Value keeps object members in the order they
// were written and numbers as their literal text, so rendering a decoded
// document reproduces its keys and numbers exactly:
//
//	v, err := value.Parse(`{"b": 1.50, "a": [true, null]}`)
//	v.Keys()                         // ["b", "a"]
//	v.MemberAt(0).Value.NumberText() // "1.50"
//
// Go values are converted with FromGo; streams of concatenated or
// newline-delimited documents are read with NewDecoder(r).Next.
package value
