package models

// BatchContractInput is one contract in a batch deployment request.
type BatchContractInput struct {
	ContractName    string           `json:"contract_name"`
	ABI             []map[string]any `json:"abi"`
	Bytecode        string           `json:"bytecode"`
	ConstructorArgs []any            `json:"constructor_args,omitempty"`
	GasLimit        uint64           `json:"gas_limit,omitempty"`
	SourceCode      string           `json:"source_code,omitempty"`
	Dependencies    []string         `json:"dependencies,omitempty"`
}

// BatchDeployRequest is the input to POST /deployments/batch.
type BatchDeployRequest struct {
	Contracts   []BatchContractInput `json:"contracts"`
	Network     string               `json:"network"`
	UsePEF      bool                 `json:"use_pef"`
	MaxParallel int                  `json:"max_parallel,omitempty"`
}
