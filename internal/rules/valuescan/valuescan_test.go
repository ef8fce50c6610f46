package valuescan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`red`, `red`},
		{`"#fff" #abc`, `"    " #abc`},
		{`'a\'b' .5`, `'    ' .5`},
		{`url(a.5.png) #000`, `url(       ) #000`},
		{`URL("x#y")`, `URL(     )`},
		{`my-url(#1)`, `my-url(#1)`},
		{`"unterminated`, `"            `},
		{`#fff /* #bad */ .5`, `#fff            .5`},
		{`1px/**/2px`, `1px    2px`},
		{`0 /*/ #x`, `0       `},
		{`"/* in string */" #a`, `"               " #a`},
	}
	for _, tt := range tests {
		got := Mask(tt.in)
		assert.Equal(t, tt.want, got, "Mask(%q)", tt.in)
		assert.Len(t, got, len(tt.in), "Mask(%q) changed length", tt.in)
	}
}
