// Package override selects the scheme specific value of a property.
//
// Every property carries a default value and a set of overrides keyed by a
// match key. A match key is either a literal scheme name, a regular
// expression searched for in the scheme name, or an alias declared in the
// file's pattern table that stands for such an expression.
//
// # Precedence
//
//  1. An override key equal to the request key.
//  2. Pattern overrides in lexicographic order of their raw key; the first
//     whose expression is found in the request key wins.
//  3. The property default.
//
// When the property names an associated property only step 1 applies.
package override

import (
	"slices"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout bounds a single pattern evaluation.
const matchTimeout = time.Second

// Pattern is a named regular expression usable as an override key.
type Pattern struct {
	Alias   string `json:"alias" jsonschema:"description=Short name used as an override key"`
	Pattern string `json:"pattern" jsonschema:"description=Regular expression the alias stands for"`
}

// Resolver matches override keys against a request key.
// It is safe for concurrent use.
type Resolver struct {
	aliases map[string]string

	mu    sync.Mutex
	cache map[string]*regexp2.Regexp
}

// NewResolver creates a Resolver for the given pattern table.
// When an alias is declared twice the first declaration wins.
func NewResolver(patterns []Pattern) *Resolver {
	aliases := make(map[string]string, len(patterns))
	for _, p := range patterns {
		if _, ok := aliases[p.Alias]; ok {
			continue
		}

		aliases[p.Alias] = p.Pattern
	}

	return &Resolver{
		aliases: aliases,
		cache:   make(map[string]*regexp2.Regexp),
	}
}

// Expand substitutes an alias with its pattern. Unknown keys are returned unchanged.
func (r *Resolver) Expand(key string) string {
	if p, ok := r.aliases[key]; ok {
		return p
	}

	return key
}

// Match returns the override key selected for requestKey among keys. A key
// equal to requestKey wins unless it is an alias, which only matches through
// its pattern.
func (r *Resolver) Match(keys []string, requestKey string, exactOnly bool) (string, bool) {
	_, aliased := r.aliases[requestKey]

	if (exactOnly || !aliased) && slices.Contains(keys, requestKey) {
		return requestKey, true
	}

	if exactOnly {
		return "", false
	}

	sorted := slices.Clone(keys)
	slices.Sort(sorted)

	for _, key := range sorted {
		if r.search(r.Expand(key), requestKey) {
			return key, true
		}
	}

	return "", false
}

// Resolve returns the override selected for requestKey together with its key.
// ok is false when no override applies and the caller should use its default.
func Resolve[T any](r *Resolver, overrides map[string]T, requestKey string, exactOnly bool) (value T, key string, ok bool) {
	if len(overrides) == 0 {
		return value, "", false
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}

	key, ok = r.Match(keys, requestKey, exactOnly)
	if !ok {
		return value, "", false
	}

	return overrides[key], key, true
}

// ValueFor returns the resolved value, falling back to def.
func ValueFor[T any](r *Resolver, def T, overrides map[string]T, requestKey string, exactOnly bool) T {
	if v, _, ok := Resolve(r, overrides, requestKey, exactOnly); ok {
		return v
	}

	return def
}

// search reports whether pattern is found anywhere in s.
// Patterns that do not compile never match.
func (r *Resolver) search(pattern, s string) bool {
	re := r.compile(pattern)
	if re == nil {
		return false
	}

	ok, err := re.MatchString(s)

	return err == nil && ok
}

func (r *Resolver) compile(pattern string) *regexp2.Regexp {
	r.mu.Lock()
	defer r.mu.Unlock()

	if re, ok := r.cache[pattern]; ok {
		return re
	}

	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		re = nil
	} else {
		re.MatchTimeout = matchTimeout
	}

	r.cache[pattern] = re

	return re
}
