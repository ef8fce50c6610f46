package plugin

import (
	"fmt"
	"os"
	"path/filepath"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"github.com/jeduden/tidystyle/internal/config"
	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/log"
	"github.com/jeduden/tidystyle/internal/rule"
	"github.com/jeduden/tidystyle/internal/stylesheet"
)

// EntryPoint is the global a plugin script must define:
//
//	def rule(primary, secondary):
//	    def check(root, result):
//	        for d in root.decls:
//	            if d.prop == "color" and d.value == "red":
//	                result.warn("no red", line = d.line, column = d.column)
//	    return check
//
// rule may return None to skip the check for the given options.
const EntryPoint = "rule"

// StarlarkLoader loads rules from .star scripts.
type StarlarkLoader struct {
	Log *log.Logger
}

// LoadRule implements ModuleLoader.
func (s *StarlarkLoader) LoadRule(name, path string) (rule.Func, error) {
	if ext := filepath.Ext(path); ext != ".star" {
		return nil, config.Errorf("plugin %q: %s is not a Starlark module (.star)", name, path)
	}
	content, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the module resolver
	if err != nil {
		return nil, fmt.Errorf("reading plugin: %w", err)
	}

	thread := s.thread("load:" + name)
	globals, err := starlark.ExecFile(thread, path, content, predeclared()) //nolint:staticcheck // SA1019: will migrate to ExecFileOptions later
	if err != nil {
		return nil, fmt.Errorf("starlark execution error: %w", err)
	}

	entry, ok := globals[EntryPoint].(starlark.Callable)
	if !ok {
		return nil, config.Errorf("plugin %q (%s) does not define a %q function", name, path, EntryPoint)
	}

	return func(primary, secondary any) rule.Check {
		thread := s.thread("rule:" + name)
		p, err := optionValue(primary)
		if err != nil {
			return failed(fmt.Errorf("plugin %q primary option: %w", name, err))
		}
		sec, err := optionValue(secondary)
		if err != nil {
			return failed(fmt.Errorf("plugin %q secondary option: %w", name, err))
		}
		bound, err := starlark.Call(thread, entry, starlark.Tuple{p, sec}, nil)
		if err != nil {
			return failed(fmt.Errorf("plugin %q: %w", name, err))
		}
		if bound == starlark.None {
			return func(*lint.File, *lint.Result) error { return nil }
		}
		check, ok := bound.(starlark.Callable)
		if !ok {
			return failed(fmt.Errorf("plugin %q: %s() returned %s, want a function or None",
				name, EntryPoint, bound.Type()))
		}

		return func(f *lint.File, res *lint.Result) error {
			args := starlark.Tuple{rootValue(f), resultValue(name, res)}
			if _, err := starlark.Call(thread, check, args, nil); err != nil {
				return fmt.Errorf("plugin %q: %w", name, err)
			}
			return nil
		}
	}, nil
}

func (s *StarlarkLoader) thread(name string) *starlark.Thread {
	return &starlark.Thread{
		Name: name,
		Print: func(t *starlark.Thread, msg string) {
			s.Log.Printf("%s: %s", t.Name, msg)
		},
	}
}

func failed(err error) rule.Check {
	return func(*lint.File, *lint.Result) error { return err }
}

func predeclared() starlark.StringDict {
	return starlark.StringDict{
		"struct": starlark.NewBuiltin("struct", starlarkstruct.Make),
	}
}

func rootValue(f *lint.File) starlark.Value {
	var all, rules, atRules, decls, comments []starlark.Value
	_ = f.Root.Walk(func(n *stylesheet.Node) error {
		v := nodeValue(n)
		all = append(all, v)
		switch n.Kind {
		case stylesheet.RuleNode:
			rules = append(rules, v)
		case stylesheet.AtRuleNode:
			atRules = append(atRules, v)
		case stylesheet.DeclNode:
			decls = append(decls, v)
		case stylesheet.CommentNode:
			comments = append(comments, v)
		}
		return nil
	})

	top := make([]starlark.Value, len(f.Root.Nodes))
	for i, n := range f.Root.Nodes {
		top[i] = nodeValue(n)
	}

	return starlarkstruct.FromStringDict(starlark.String("root"), starlark.StringDict{
		"path":      starlark.String(f.Path),
		"source":    starlark.String(f.Source),
		"nodes":     starlark.NewList(top),
		"all_nodes": starlark.NewList(all),
		"rules":     starlark.NewList(rules),
		"at_rules":  starlark.NewList(atRules),
		"decls":     starlark.NewList(decls),
		"comments":  starlark.NewList(comments),
	})
}

func nodeValue(n *stylesheet.Node) starlark.Value {
	children := make([]starlark.Value, len(n.Nodes))
	for i, c := range n.Nodes {
		children[i] = nodeValue(c)
	}
	return starlarkstruct.FromStringDict(starlark.String("node"), starlark.StringDict{
		"type":       starlark.String(n.Kind.String()),
		"selector":   starlark.String(n.Selector),
		"name":       starlark.String(n.Name),
		"params":     starlark.String(n.Params),
		"prop":       starlark.String(n.Prop),
		"value":      starlark.String(n.Value),
		"important":  starlark.Bool(n.Important),
		"text":       starlark.String(n.Text),
		"line":       starlark.MakeInt(n.Start.Line),
		"column":     starlark.MakeInt(n.Start.Column),
		"end_line":   starlark.MakeInt(n.End.Line),
		"end_column": starlark.MakeInt(n.End.Column),
		"nodes":      starlark.NewList(children),
	})
}

func resultValue(name string, res *lint.Result) starlark.Value {
	warn := starlark.NewBuiltin("warn", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var (
			msg          string
			line, column = 1, 1
		)
		if err := starlark.UnpackArgs(b.Name(), args, kwargs,
			"message", &msg, "line?", &line, "column?", &column); err != nil {
			return nil, err
		}
		res.Report(name, lint.Position{Line: line, Column: column}, msg)
		return starlark.None, nil
	})
	invalid := starlark.NewBuiltin("invalid_option", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var msg string
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &msg); err != nil {
			return nil, err
		}
		res.InvalidOption(name, msg)
		return starlark.None, nil
	})
	return starlarkstruct.FromStringDict(starlark.String("result"), starlark.StringDict{
		"rule":           starlark.String(name),
		"warn":           warn,
		"invalid_option": invalid,
	})
}
