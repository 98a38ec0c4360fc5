package deploy

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// BatchContract is one entry in a batch deployment request.
type BatchContract struct {
	ContractName    string
	ABI             []map[string]any
	Bytecode        string
	ConstructorArgs []any
	GasLimit        uint64
	SourceCode      string   // optional, used for dependency inference
	Dependencies    []string // explicit dependency names
}

var importRe = regexp.MustCompile(`(?m)^\s*import\s+(?:\{[^}]*\}\s+from\s+)?"([^"]+)"`)

// InferDependencies merges a contract's explicit dependencies with ones
// inferred from its source: import statements naming sibling contracts and
// textual references to sibling contract types. known maps lowercase
// contract names to their canonical batch names.
func InferDependencies(c BatchContract, known map[string]string) []string {
	deps := make(map[string]bool)
	for _, d := range c.Dependencies {
		if canonical, ok := known[strings.ToLower(d)]; ok && canonical != c.ContractName {
			deps[canonical] = true
		}
	}

	if c.SourceCode != "" {
		// import "./Token.sol" → depends on batch contract named Token.
		for _, m := range importRe.FindAllStringSubmatch(c.SourceCode, -1) {
			base := strings.TrimSuffix(pathBase(m[1]), ".sol")
			if canonical, ok := known[strings.ToLower(base)]; ok && canonical != c.ContractName {
				deps[canonical] = true
			}
		}

		// References to sibling contract types: declarations, casts, `new`.
		for _, canonical := range known {
			if canonical == c.ContractName || deps[canonical] {
				continue
			}
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(canonical) + `\b`)
			if re.MatchString(c.SourceCode) {
				deps[canonical] = true
			}
		}
	}

	out := make([]string, 0, len(deps))
	for d := range deps {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func pathBase(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}

// BuildLayers partitions contracts into Kahn layers: layer 0 holds
// contracts with no unmet dependencies, layer k+1 holds contracts whose
// dependencies all sit in layers 0..k. Dependencies on names outside the
// batch are ignored (they are assumed already deployed).
//
// On a cycle it returns one single-element layer per contract in input
// order, plus cyclic=true, so the caller degrades to sequential
// deployment.
func BuildLayers(contracts []BatchContract) (layers [][]int, cyclic bool, err error) {
	n := len(contracts)
	if n == 0 {
		return nil, false, fmt.Errorf("empty batch")
	}

	known := make(map[string]string, n)
	indexByName := make(map[string]int, n)
	for i, c := range contracts {
		if c.ContractName == "" {
			return nil, false, fmt.Errorf("contract %d has no name", i)
		}
		if _, dup := indexByName[c.ContractName]; dup {
			return nil, false, fmt.Errorf("duplicate contract name %q in batch", c.ContractName)
		}
		known[strings.ToLower(c.ContractName)] = c.ContractName
		indexByName[c.ContractName] = i
	}

	// Adjacency: edges[i] = indexes i depends on.
	edges := make([][]int, n)
	for i, c := range contracts {
		for _, dep := range InferDependencies(c, known) {
			if j, ok := indexByName[dep]; ok {
				edges[i] = append(edges[i], j)
			}
		}
	}

	placed := make([]bool, n)
	remaining := n
	for remaining > 0 {
		var layer []int
		for i := 0; i < n; i++ {
			if placed[i] {
				continue
			}
			ready := true
			for _, dep := range edges[i] {
				if !placed[dep] {
					ready = false
					break
				}
			}
			if ready {
				layer = append(layer, i)
			}
		}

		if len(layer) == 0 {
			// Cycle: fall back to sequential input order.
			fallback := make([][]int, 0, n)
			for i := 0; i < n; i++ {
				fallback = append(fallback, []int{i})
			}
			return fallback, true, nil
		}

		for _, i := range layer {
			placed[i] = true
		}
		remaining -= len(layer)
		layers = append(layers, layer)
	}
	return layers, false, nil
}
