package llm

import (
	"regexp"
	"strings"
)

// solidityFence matches a fenced Solidity code block. The language tag is
// optional so plain ``` fences around contract code are also accepted.
var solidityFence = regexp.MustCompile("(?s)```(?:solidity)?\\s*\n(.*?)```")

// ExtractSolidity pulls contract source out of an LLM response. If the
// response contains a fenced Solidity block, the block body is returned;
// otherwise the trimmed response is assumed to be bare source.
func ExtractSolidity(response string) string {
	if m := solidityFence.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(response)
}
