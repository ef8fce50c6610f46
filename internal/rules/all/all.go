// Package all registers every built-in rule. Import it for side effects.
package all

import (
	_ "github.com/jeduden/tidystyle/internal/rules/blocknoempty"
	_ "github.com/jeduden/tidystyle/internal/rules/colornoinvalidhex"
	_ "github.com/jeduden/tidystyle/internal/rules/declarationblocknoduplicateproperties"
	_ "github.com/jeduden/tidystyle/internal/rules/declarationnoimportant"
	_ "github.com/jeduden/tidystyle/internal/rules/maxemptylines"
	_ "github.com/jeduden/tidystyle/internal/rules/maxlinelength"
	_ "github.com/jeduden/tidystyle/internal/rules/noeolwhitespace"
	_ "github.com/jeduden/tidystyle/internal/rules/nohardtabs"
	_ "github.com/jeduden/tidystyle/internal/rules/nomissingeofnewline"
	_ "github.com/jeduden/tidystyle/internal/rules/numberleadingzero"
)
