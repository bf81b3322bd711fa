// Package render writes JSON values to a sink, coloring each token by its
// syntactic role.
//
// The output is always valid JSON once style sequences are removed: keys
// keep their order, numbers keep their literal text and strings are escaped
// minimally. Pretty output matches encoding/json's Indent byte for byte,
// and compact output matches Compact.
//
//	v := value.MustParse(`{"name":"jsontint","ok":true}`)
//	s := sink.New(os.Stdout, sink.ColorAuto, sink.KindTerm)
//	err := render.Render(v, theme.Default(), s, render.DefaultOptions())
//
// Render never buffers the whole document; each token goes to the sink as
// soon as it is produced.
package render
