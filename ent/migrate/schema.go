// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditRecordsColumns holds the columns for the "audit_records" table.
	AuditRecordsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "audit_level", Type: field.TypeString, Default: "standard"},
		{Name: "findings", Type: field.TypeJSON, Nullable: true},
		{Name: "critical_count", Type: field.TypeInt, Default: 0},
		{Name: "high_count", Type: field.TypeInt, Default: 0},
		{Name: "medium_count", Type: field.TypeInt, Default: 0},
		{Name: "low_count", Type: field.TypeInt, Default: 0},
		{Name: "info_count", Type: field.TypeInt, Default: 0},
		{Name: "risk_score", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"passed", "warning", "failed"}},
		{Name: "tools_run", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "contract_id", Type: field.TypeString},
	}
	// AuditRecordsTable holds the schema information for the "audit_records" table.
	AuditRecordsTable = &schema.Table{
		Name:       "audit_records",
		Columns:    AuditRecordsColumns,
		PrimaryKey: []*schema.Column{AuditRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_records_contracts_audits",
				Columns:    []*schema.Column{AuditRecordsColumns[13]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditrecord_contract_id",
				Unique:  false,
				Columns: []*schema.Column{AuditRecordsColumns[13]},
			},
		},
	}
	// ContractsColumns holds the columns for the "contracts" table.
	ContractsColumns = []*schema.Column{
		{Name: "contract_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "source_code", Type: field.TypeString, Size: 2147483647},
		{Name: "source_hash", Type: field.TypeString},
		{Name: "abi", Type: field.TypeJSON, Nullable: true},
		{Name: "bytecode", Type: field.TypeString, Size: 2147483647},
		{Name: "deployed_bytecode", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "solidity_version", Type: field.TypeString, Default: "0.8.27"},
		{Name: "constructor_params", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// ContractsTable holds the schema information for the "contracts" table.
	ContractsTable = &schema.Table{
		Name:       "contracts",
		Columns:    ContractsColumns,
		PrimaryKey: []*schema.Column{ContractsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contracts_workflows_contracts",
				Columns:    []*schema.Column{ContractsColumns[10]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contract_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[10]},
			},
			{
				Name:    "contract_source_hash",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[3]},
			},
		},
	}
	// DeploymentsColumns holds the columns for the "deployments" table.
	DeploymentsColumns = []*schema.Column{
		{Name: "deployment_id", Type: field.TypeString, Unique: true},
		{Name: "network", Type: field.TypeString},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "tx_hash", Type: field.TypeString, Nullable: true},
		{Name: "block_number", Type: field.TypeInt64, Nullable: true},
		{Name: "gas_used", Type: field.TypeUint64, Nullable: true},
		{Name: "deployer_address", Type: field.TypeString},
		{Name: "eigenda_commitment", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "failed"}, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "submitted_at", Type: field.TypeTime},
		{Name: "confirmed_at", Type: field.TypeTime, Nullable: true},
		{Name: "contract_id", Type: field.TypeString},
	}
	// DeploymentsTable holds the schema information for the "deployments" table.
	DeploymentsTable = &schema.Table{
		Name:       "deployments",
		Columns:    DeploymentsColumns,
		PrimaryKey: []*schema.Column{DeploymentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "deployments_contracts_deployments",
				Columns:    []*schema.Column{DeploymentsColumns[12]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deployment_contract_id",
				Unique:  false,
				Columns: []*schema.Column{DeploymentsColumns[12]},
			},
			{
				Name:    "deployment_network",
				Unique:  false,
				Columns: []*schema.Column{DeploymentsColumns[1]},
			},
			{
				Name:    "deployment_status",
				Unique:  false,
				Columns: []*schema.Column{DeploymentsColumns[8]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "source_stage", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_workflows_events",
				Columns:    []*schema.Column{EventsColumns[6]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_workflow_id_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[6], EventsColumns[0]},
			},
			{
				Name:    "event_event_type",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
		},
	}
	// TemplatesColumns holds the columns for the "templates" table.
	TemplatesColumns = []*schema.Column{
		{Name: "template_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "contract_type", Type: field.TypeString},
		{Name: "source_code", Type: field.TypeString, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TemplatesTable holds the schema information for the "templates" table.
	TemplatesTable = &schema.Table{
		Name:       "templates",
		Columns:    TemplatesColumns,
		PrimaryKey: []*schema.Column{TemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "template_contract_type",
				Unique:  false,
				Columns: []*schema.Column{TemplatesColumns[2]},
			},
			{
				Name:    "template_active",
				Unique:  false,
				Columns: []*schema.Column{TemplatesColumns[6]},
			},
		},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeString, Unique: true},
		{Name: "owner", Type: field.TypeString, Nullable: true},
		{Name: "nlp_description", Type: field.TypeString, Size: 2147483647},
		{Name: "contract_type", Type: field.TypeString, Default: "Custom"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"created", "generating", "compiling", "auditing", "testing", "deploying", "completed", "failed", "cancelled"}, Default: "created"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "network", Type: field.TypeString},
		{Name: "metisvm_enabled", Type: field.TypeBool, Default: false},
		{Name: "floating_point_enabled", Type: field.TypeBool, Default: false},
		{Name: "ai_inference_enabled", Type: field.TypeBool, Default: false},
		{Name: "eigenda_enabled", Type: field.TypeBool, Default: false},
		{Name: "pef_batch_enabled", Type: field.TypeBool, Default: false},
		{Name: "audit_level", Type: field.TypeString, Default: "standard"},
		{Name: "skip_audit", Type: field.TypeBool, Default: false},
		{Name: "skip_testing", Type: field.TypeBool, Default: false},
		{Name: "gas_limit", Type: field.TypeUint64, Default: 0},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflow_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[4]},
			},
			{
				Name:    "workflow_network",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[6]},
			},
			{
				Name:    "workflow_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[4], WorkflowsColumns[20]},
			},
			{
				Name:    "workflow_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[4], WorkflowsColumns[24]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditRecordsTable,
		ContractsTable,
		DeploymentsTable,
		EventsTable,
		TemplatesTable,
		WorkflowsTable,
	}
)

func init() {
	AuditRecordsTable.ForeignKeys[0].RefTable = ContractsTable
	ContractsTable.ForeignKeys[0].RefTable = WorkflowsTable
	DeploymentsTable.ForeignKeys[0].RefTable = ContractsTable
	EventsTable.ForeignKeys[0].RefTable = WorkflowsTable
}
