package plugin

import (
	"fmt"
	"sort"

	"go.starlark.net/starlark"
)

// optionValue turns a rule option into the Starlark value the plugin's
// rule() receives. Options arrive in the shape config.Value.Interface
// produces: nil, string, bool, int, float64, []any and map[string]any.
// Mappings become dicts with keys in sorted order.
func optionValue(v any) (starlark.Value, error) {
	switch v := v.(type) {
	case nil:
		return starlark.None, nil
	case string:
		return starlark.String(v), nil
	case bool:
		return starlark.Bool(v), nil
	case int:
		return starlark.MakeInt(v), nil
	case float64:
		return starlark.Float(v), nil
	case []any:
		elems := make([]starlark.Value, 0, len(v))
		for i := range v {
			e, err := optionValue(v[i])
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			elems = append(elems, e)
		}
		return starlark.NewList(elems), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		d := starlark.NewDict(len(keys))
		for _, k := range keys {
			e, err := optionValue(v[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			// SetKey only fails for unhashable keys or frozen dicts.
			_ = d.SetKey(starlark.String(k), e)
		}
		return d, nil
	}
	return nil, fmt.Errorf("option of type %T cannot be passed to a plugin", v)
}
