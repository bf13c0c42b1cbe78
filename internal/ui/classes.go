package ui

import "strings"

// MergeClasses joins class lists. Duplicates are dropped and, for utilities that set the same
// property under the same variant, the last one wins.
func MergeClasses(lists ...string) string {
	var (
		out    []string
		groups = make(map[string]int)
		seen   = make(map[string]int)
	)

	for _, list := range lists {
		for _, class := range strings.Fields(list) {
			if _, ok := seen[class]; ok {
				continue
			}

			if g := classGroup(class); g != "" {
				if i, ok := groups[g]; ok {
					delete(seen, out[i])
					out[i] = ""
				}

				groups[g] = len(out)
			}

			seen[class] = len(out)
			out = append(out, class)
		}
	}

	res := out[:0]

	for _, class := range out {
		if class != "" {
			res = append(res, class)
		}
	}

	return strings.Join(res, " ")
}

var exactGroups = map[string]string{
	"static":   "position",
	"fixed":    "position",
	"absolute": "position",
	"relative": "position",
	"sticky":   "position",

	"block":        "display",
	"inline-block": "display",
	"inline":       "display",
	"flex":         "display",
	"inline-flex":  "display",
	"grid":         "display",
	"hidden":       "display",

	"font-thin":     "font-weight",
	"font-light":    "font-weight",
	"font-regular":  "font-weight",
	"font-normal":   "font-weight",
	"font-medium":   "font-weight",
	"font-semibold": "font-weight",
	"font-bold":     "font-weight",
}

var prefixGroups = []string{
	"px-", "py-", "pt-", "pr-", "pb-", "pl-", "p-",
	"mx-", "my-", "mt-", "mr-", "mb-", "ml-", "m-",
	"w-", "h-", "min-w-", "min-h-", "max-w-", "max-h-",
	"gap-", "rounded-", "bg-", "z-",
	"top-", "right-", "bottom-", "left-",
}

func classGroup(class string) string {
	variant := ""
	utility := class

	if i := strings.LastIndex(class, ":"); i >= 0 {
		variant, utility = class[:i+1], class[i+1:]
	}

	utility = strings.TrimPrefix(utility, "-")

	if g, ok := exactGroups[utility]; ok {
		return variant + g
	}

	for _, p := range prefixGroups {
		if strings.HasPrefix(utility, p) {
			return variant + p
		}
	}

	return ""
}
