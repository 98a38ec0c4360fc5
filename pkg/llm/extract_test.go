package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSolidity(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			name: "fenced solidity block",
			response: "Here is your contract:\n```solidity\npragma solidity 0.8.27;\ncontract A {}\n```\nEnjoy!",
			want: "pragma solidity 0.8.27;\ncontract A {}",
		},
		{
			name: "plain fence",
			response: "```\npragma solidity 0.8.27;\ncontract B {}\n```",
			want: "pragma solidity 0.8.27;\ncontract B {}",
		},
		{
			name:     "no fence returns trimmed response",
			response: "  pragma solidity 0.8.27;\ncontract C {}  \n",
			want:     "pragma solidity 0.8.27;\ncontract C {}",
		},
		{
			name: "first block wins",
			response: "```solidity\ncontract First {}\n```\n```solidity\ncontract Second {}\n```",
			want: "contract First {}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSolidity(tt.response))
		})
	}
}
