// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chainforge-ai/chainforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldWorkflowID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldName, v))
}

// SourceCode applies equality check predicate on the "source_code" field. It's identical to SourceCodeEQ.
func SourceCode(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSourceCode, v))
}

// SourceHash applies equality check predicate on the "source_hash" field. It's identical to SourceHashEQ.
func SourceHash(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSourceHash, v))
}

// Bytecode applies equality check predicate on the "bytecode" field. It's identical to BytecodeEQ.
func Bytecode(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldBytecode, v))
}

// DeployedBytecode applies equality check predicate on the "deployed_bytecode" field. It's identical to DeployedBytecodeEQ.
func DeployedBytecode(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDeployedBytecode, v))
}

// SolidityVersion applies equality check predicate on the "solidity_version" field. It's identical to SolidityVersionEQ.
func SolidityVersion(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSolidityVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldWorkflowID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldName, v))
}

// SourceCodeEQ applies the EQ predicate on the "source_code" field.
func SourceCodeEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSourceCode, v))
}

// SourceCodeNEQ applies the NEQ predicate on the "source_code" field.
func SourceCodeNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldSourceCode, v))
}

// SourceCodeIn applies the In predicate on the "source_code" field.
func SourceCodeIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldSourceCode, vs...))
}

// SourceCodeNotIn applies the NotIn predicate on the "source_code" field.
func SourceCodeNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldSourceCode, vs...))
}

// SourceCodeGT applies the GT predicate on the "source_code" field.
func SourceCodeGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldSourceCode, v))
}

// SourceCodeGTE applies the GTE predicate on the "source_code" field.
func SourceCodeGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldSourceCode, v))
}

// SourceCodeLT applies the LT predicate on the "source_code" field.
func SourceCodeLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldSourceCode, v))
}

// SourceCodeLTE applies the LTE predicate on the "source_code" field.
func SourceCodeLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldSourceCode, v))
}

// SourceCodeContains applies the Contains predicate on the "source_code" field.
func SourceCodeContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldSourceCode, v))
}

// SourceCodeHasPrefix applies the HasPrefix predicate on the "source_code" field.
func SourceCodeHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldSourceCode, v))
}

// SourceCodeHasSuffix applies the HasSuffix predicate on the "source_code" field.
func SourceCodeHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldSourceCode, v))
}

// SourceCodeEqualFold applies the EqualFold predicate on the "source_code" field.
func SourceCodeEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldSourceCode, v))
}

// SourceCodeContainsFold applies the ContainsFold predicate on the "source_code" field.
func SourceCodeContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldSourceCode, v))
}

// SourceHashEQ applies the EQ predicate on the "source_hash" field.
func SourceHashEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSourceHash, v))
}

// SourceHashNEQ applies the NEQ predicate on the "source_hash" field.
func SourceHashNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldSourceHash, v))
}

// SourceHashIn applies the In predicate on the "source_hash" field.
func SourceHashIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldSourceHash, vs...))
}

// SourceHashNotIn applies the NotIn predicate on the "source_hash" field.
func SourceHashNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldSourceHash, vs...))
}

// SourceHashGT applies the GT predicate on the "source_hash" field.
func SourceHashGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldSourceHash, v))
}

// SourceHashGTE applies the GTE predicate on the "source_hash" field.
func SourceHashGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldSourceHash, v))
}

// SourceHashLT applies the LT predicate on the "source_hash" field.
func SourceHashLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldSourceHash, v))
}

// SourceHashLTE applies the LTE predicate on the "source_hash" field.
func SourceHashLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldSourceHash, v))
}

// SourceHashContains applies the Contains predicate on the "source_hash" field.
func SourceHashContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldSourceHash, v))
}

// SourceHashHasPrefix applies the HasPrefix predicate on the "source_hash" field.
func SourceHashHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldSourceHash, v))
}

// SourceHashHasSuffix applies the HasSuffix predicate on the "source_hash" field.
func SourceHashHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldSourceHash, v))
}

// SourceHashEqualFold applies the EqualFold predicate on the "source_hash" field.
func SourceHashEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldSourceHash, v))
}

// SourceHashContainsFold applies the ContainsFold predicate on the "source_hash" field.
func SourceHashContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldSourceHash, v))
}

// AbiIsNil applies the IsNil predicate on the "abi" field.
func AbiIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldAbi))
}

// AbiNotNil applies the NotNil predicate on the "abi" field.
func AbiNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldAbi))
}

// BytecodeEQ applies the EQ predicate on the "bytecode" field.
func BytecodeEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldBytecode, v))
}

// BytecodeNEQ applies the NEQ predicate on the "bytecode" field.
func BytecodeNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldBytecode, v))
}

// BytecodeIn applies the In predicate on the "bytecode" field.
func BytecodeIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldBytecode, vs...))
}

// BytecodeNotIn applies the NotIn predicate on the "bytecode" field.
func BytecodeNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldBytecode, vs...))
}

// BytecodeGT applies the GT predicate on the "bytecode" field.
func BytecodeGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldBytecode, v))
}

// BytecodeGTE applies the GTE predicate on the "bytecode" field.
func BytecodeGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldBytecode, v))
}

// BytecodeLT applies the LT predicate on the "bytecode" field.
func BytecodeLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldBytecode, v))
}

// BytecodeLTE applies the LTE predicate on the "bytecode" field.
func BytecodeLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldBytecode, v))
}

// BytecodeContains applies the Contains predicate on the "bytecode" field.
func BytecodeContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldBytecode, v))
}

// BytecodeHasPrefix applies the HasPrefix predicate on the "bytecode" field.
func BytecodeHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldBytecode, v))
}

// BytecodeHasSuffix applies the HasSuffix predicate on the "bytecode" field.
func BytecodeHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldBytecode, v))
}

// BytecodeEqualFold applies the EqualFold predicate on the "bytecode" field.
func BytecodeEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldBytecode, v))
}

// BytecodeContainsFold applies the ContainsFold predicate on the "bytecode" field.
func BytecodeContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldBytecode, v))
}

// DeployedBytecodeEQ applies the EQ predicate on the "deployed_bytecode" field.
func DeployedBytecodeEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDeployedBytecode, v))
}

// DeployedBytecodeNEQ applies the NEQ predicate on the "deployed_bytecode" field.
func DeployedBytecodeNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldDeployedBytecode, v))
}

// DeployedBytecodeIn applies the In predicate on the "deployed_bytecode" field.
func DeployedBytecodeIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldDeployedBytecode, vs...))
}

// DeployedBytecodeNotIn applies the NotIn predicate on the "deployed_bytecode" field.
func DeployedBytecodeNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldDeployedBytecode, vs...))
}

// DeployedBytecodeGT applies the GT predicate on the "deployed_bytecode" field.
func DeployedBytecodeGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldDeployedBytecode, v))
}

// DeployedBytecodeGTE applies the GTE predicate on the "deployed_bytecode" field.
func DeployedBytecodeGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldDeployedBytecode, v))
}

// DeployedBytecodeLT applies the LT predicate on the "deployed_bytecode" field.
func DeployedBytecodeLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldDeployedBytecode, v))
}

// DeployedBytecodeLTE applies the LTE predicate on the "deployed_bytecode" field.
func DeployedBytecodeLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldDeployedBytecode, v))
}

// DeployedBytecodeContains applies the Contains predicate on the "deployed_bytecode" field.
func DeployedBytecodeContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldDeployedBytecode, v))
}

// DeployedBytecodeHasPrefix applies the HasPrefix predicate on the "deployed_bytecode" field.
func DeployedBytecodeHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldDeployedBytecode, v))
}

// DeployedBytecodeHasSuffix applies the HasSuffix predicate on the "deployed_bytecode" field.
func DeployedBytecodeHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldDeployedBytecode, v))
}

// DeployedBytecodeIsNil applies the IsNil predicate on the "deployed_bytecode" field.
func DeployedBytecodeIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldDeployedBytecode))
}

// DeployedBytecodeNotNil applies the NotNil predicate on the "deployed_bytecode" field.
func DeployedBytecodeNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldDeployedBytecode))
}

// DeployedBytecodeEqualFold applies the EqualFold predicate on the "deployed_bytecode" field.
func DeployedBytecodeEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldDeployedBytecode, v))
}

// DeployedBytecodeContainsFold applies the ContainsFold predicate on the "deployed_bytecode" field.
func DeployedBytecodeContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldDeployedBytecode, v))
}

// SolidityVersionEQ applies the EQ predicate on the "solidity_version" field.
func SolidityVersionEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSolidityVersion, v))
}

// SolidityVersionNEQ applies the NEQ predicate on the "solidity_version" field.
func SolidityVersionNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldSolidityVersion, v))
}

// SolidityVersionIn applies the In predicate on the "solidity_version" field.
func SolidityVersionIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldSolidityVersion, vs...))
}

// SolidityVersionNotIn applies the NotIn predicate on the "solidity_version" field.
func SolidityVersionNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldSolidityVersion, vs...))
}

// SolidityVersionGT applies the GT predicate on the "solidity_version" field.
func SolidityVersionGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldSolidityVersion, v))
}

// SolidityVersionGTE applies the GTE predicate on the "solidity_version" field.
func SolidityVersionGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldSolidityVersion, v))
}

// SolidityVersionLT applies the LT predicate on the "solidity_version" field.
func SolidityVersionLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldSolidityVersion, v))
}

// SolidityVersionLTE applies the LTE predicate on the "solidity_version" field.
func SolidityVersionLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldSolidityVersion, v))
}

// SolidityVersionContains applies the Contains predicate on the "solidity_version" field.
func SolidityVersionContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldSolidityVersion, v))
}

// SolidityVersionHasPrefix applies the HasPrefix predicate on the "solidity_version" field.
func SolidityVersionHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldSolidityVersion, v))
}

// SolidityVersionHasSuffix applies the HasSuffix predicate on the "solidity_version" field.
func SolidityVersionHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldSolidityVersion, v))
}

// SolidityVersionEqualFold applies the EqualFold predicate on the "solidity_version" field.
func SolidityVersionEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldSolidityVersion, v))
}

// SolidityVersionContainsFold applies the ContainsFold predicate on the "solidity_version" field.
func SolidityVersionContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldSolidityVersion, v))
}

// ConstructorParamsIsNil applies the IsNil predicate on the "constructor_params" field.
func ConstructorParamsIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldConstructorParams))
}

// ConstructorParamsNotNil applies the NotNil predicate on the "constructor_params" field.
func ConstructorParamsNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldConstructorParams))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAudits applies the HasEdge predicate on the "audits" edge.
func HasAudits() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditsTable, AuditsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditsWith applies the HasEdge predicate on the "audits" edge with a given conditions (other predicates).
func HasAuditsWith(preds ...predicate.AuditRecord) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newAuditsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDeployments applies the HasEdge predicate on the "deployments" edge.
func HasDeployments() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DeploymentsTable, DeploymentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDeploymentsWith applies the HasEdge predicate on the "deployments" edge with a given conditions (other predicates).
func HasDeploymentsWith(preds ...predicate.Deployment) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newDeploymentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.NotPredicates(p))
}
