// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditRecord is the predicate function for auditrecord builders.
type AuditRecord func(*sql.Selector)

// Contract is the predicate function for contract builders.
type Contract func(*sql.Selector)

// Deployment is the predicate function for deployment builders.
type Deployment func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Template is the predicate function for template builders.
type Template func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)
