// Code generated by ent, DO NOT EDIT.

package deployment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chainforge-ai/chainforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Deployment {
	return predicate.Deployment(sql.FieldContainsFold(FieldID, id))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldContractID, v))
}

// Network applies equality check predicate on the "network" field. It's identical to NetworkEQ.
func Network(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldNetwork, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldAddress, v))
}

// TxHash applies equality check predicate on the "tx_hash" field. It's identical to TxHashEQ.
func TxHash(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldTxHash, v))
}

// BlockNumber applies equality check predicate on the "block_number" field. It's identical to BlockNumberEQ.
func BlockNumber(v int64) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldBlockNumber, v))
}

// GasUsed applies equality check predicate on the "gas_used" field. It's identical to GasUsedEQ.
func GasUsed(v uint64) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldGasUsed, v))
}

// DeployerAddress applies equality check predicate on the "deployer_address" field. It's identical to DeployerAddressEQ.
func DeployerAddress(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldDeployerAddress, v))
}

// EigendaCommitment applies equality check predicate on the "eigenda_commitment" field. It's identical to EigendaCommitmentEQ.
func EigendaCommitment(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldEigendaCommitment, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldErrorMessage, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldSubmittedAt, v))
}

// ConfirmedAt applies equality check predicate on the "confirmed_at" field. It's identical to ConfirmedAtEQ.
func ConfirmedAt(v time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldConfirmedAt, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNotIn(FieldContractID, vs...))
}

// ContractIDGT applies the GT predicate on the "contract_id" field.
func ContractIDGT(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGT(FieldContractID, v))
}

// ContractIDGTE applies the GTE predicate on the "contract_id" field.
func ContractIDGTE(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGTE(FieldContractID, v))
}

// ContractIDLT applies the LT predicate on the "contract_id" field.
func ContractIDLT(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLT(FieldContractID, v))
}

// ContractIDLTE applies the LTE predicate on the "contract_id" field.
func ContractIDLTE(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLTE(FieldContractID, v))
}

// ContractIDContains applies the Contains predicate on the "contract_id" field.
func ContractIDContains(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldContains(FieldContractID, v))
}

// ContractIDHasPrefix applies the HasPrefix predicate on the "contract_id" field.
func ContractIDHasPrefix(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldHasPrefix(FieldContractID, v))
}

// ContractIDHasSuffix applies the HasSuffix predicate on the "contract_id" field.
func ContractIDHasSuffix(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldHasSuffix(FieldContractID, v))
}

// ContractIDEqualFold applies the EqualFold predicate on the "contract_id" field.
func ContractIDEqualFold(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEqualFold(FieldContractID, v))
}

// ContractIDContainsFold applies the ContainsFold predicate on the "contract_id" field.
func ContractIDContainsFold(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldContainsFold(FieldContractID, v))
}

// NetworkEQ applies the EQ predicate on the "network" field.
func NetworkEQ(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldNetwork, v))
}

// NetworkNEQ applies the NEQ predicate on the "network" field.
func NetworkNEQ(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNEQ(FieldNetwork, v))
}

// NetworkIn applies the In predicate on the "network" field.
func NetworkIn(vs ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldIn(FieldNetwork, vs...))
}

// NetworkNotIn applies the NotIn predicate on the "network" field.
func NetworkNotIn(vs ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNotIn(FieldNetwork, vs...))
}

// NetworkGT applies the GT predicate on the "network" field.
func NetworkGT(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGT(FieldNetwork, v))
}

// NetworkGTE applies the GTE predicate on the "network" field.
func NetworkGTE(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGTE(FieldNetwork, v))
}

// NetworkLT applies the LT predicate on the "network" field.
func NetworkLT(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLT(FieldNetwork, v))
}

// NetworkLTE applies the LTE predicate on the "network" field.
func NetworkLTE(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLTE(FieldNetwork, v))
}

// NetworkContains applies the Contains predicate on the "network" field.
func NetworkContains(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldContains(FieldNetwork, v))
}

// NetworkHasPrefix applies the HasPrefix predicate on the "network" field.
func NetworkHasPrefix(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldHasPrefix(FieldNetwork, v))
}

// NetworkHasSuffix applies the HasSuffix predicate on the "network" field.
func NetworkHasSuffix(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldHasSuffix(FieldNetwork, v))
}

// NetworkEqualFold applies the EqualFold predicate on the "network" field.
func NetworkEqualFold(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEqualFold(FieldNetwork, v))
}

// NetworkContainsFold applies the ContainsFold predicate on the "network" field.
func NetworkContainsFold(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldContainsFold(FieldNetwork, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Deployment {
	return predicate.Deployment(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Deployment {
	return predicate.Deployment(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldContainsFold(FieldAddress, v))
}

// TxHashEQ applies the EQ predicate on the "tx_hash" field.
func TxHashEQ(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldTxHash, v))
}

// TxHashNEQ applies the NEQ predicate on the "tx_hash" field.
func TxHashNEQ(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNEQ(FieldTxHash, v))
}

// TxHashIn applies the In predicate on the "tx_hash" field.
func TxHashIn(vs ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldIn(FieldTxHash, vs...))
}

// TxHashNotIn applies the NotIn predicate on the "tx_hash" field.
func TxHashNotIn(vs ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNotIn(FieldTxHash, vs...))
}

// TxHashGT applies the GT predicate on the "tx_hash" field.
func TxHashGT(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGT(FieldTxHash, v))
}

// TxHashGTE applies the GTE predicate on the "tx_hash" field.
func TxHashGTE(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGTE(FieldTxHash, v))
}

// TxHashLT applies the LT predicate on the "tx_hash" field.
func TxHashLT(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLT(FieldTxHash, v))
}

// TxHashLTE applies the LTE predicate on the "tx_hash" field.
func TxHashLTE(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLTE(FieldTxHash, v))
}

// TxHashContains applies the Contains predicate on the "tx_hash" field.
func TxHashContains(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldContains(FieldTxHash, v))
}

// TxHashHasPrefix applies the HasPrefix predicate on the "tx_hash" field.
func TxHashHasPrefix(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldHasPrefix(FieldTxHash, v))
}

// TxHashHasSuffix applies the HasSuffix predicate on the "tx_hash" field.
func TxHashHasSuffix(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldHasSuffix(FieldTxHash, v))
}

// TxHashIsNil applies the IsNil predicate on the "tx_hash" field.
func TxHashIsNil() predicate.Deployment {
	return predicate.Deployment(sql.FieldIsNull(FieldTxHash))
}

// TxHashNotNil applies the NotNil predicate on the "tx_hash" field.
func TxHashNotNil() predicate.Deployment {
	return predicate.Deployment(sql.FieldNotNull(FieldTxHash))
}

// TxHashEqualFold applies the EqualFold predicate on the "tx_hash" field.
func TxHashEqualFold(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEqualFold(FieldTxHash, v))
}

// TxHashContainsFold applies the ContainsFold predicate on the "tx_hash" field.
func TxHashContainsFold(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldContainsFold(FieldTxHash, v))
}

// BlockNumberEQ applies the EQ predicate on the "block_number" field.
func BlockNumberEQ(v int64) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldBlockNumber, v))
}

// BlockNumberNEQ applies the NEQ predicate on the "block_number" field.
func BlockNumberNEQ(v int64) predicate.Deployment {
	return predicate.Deployment(sql.FieldNEQ(FieldBlockNumber, v))
}

// BlockNumberIn applies the In predicate on the "block_number" field.
func BlockNumberIn(vs ...int64) predicate.Deployment {
	return predicate.Deployment(sql.FieldIn(FieldBlockNumber, vs...))
}

// BlockNumberNotIn applies the NotIn predicate on the "block_number" field.
func BlockNumberNotIn(vs ...int64) predicate.Deployment {
	return predicate.Deployment(sql.FieldNotIn(FieldBlockNumber, vs...))
}

// BlockNumberGT applies the GT predicate on the "block_number" field.
func BlockNumberGT(v int64) predicate.Deployment {
	return predicate.Deployment(sql.FieldGT(FieldBlockNumber, v))
}

// BlockNumberGTE applies the GTE predicate on the "block_number" field.
func BlockNumberGTE(v int64) predicate.Deployment {
	return predicate.Deployment(sql.FieldGTE(FieldBlockNumber, v))
}

// BlockNumberLT applies the LT predicate on the "block_number" field.
func BlockNumberLT(v int64) predicate.Deployment {
	return predicate.Deployment(sql.FieldLT(FieldBlockNumber, v))
}

// BlockNumberLTE applies the LTE predicate on the "block_number" field.
func BlockNumberLTE(v int64) predicate.Deployment {
	return predicate.Deployment(sql.FieldLTE(FieldBlockNumber, v))
}

// BlockNumberIsNil applies the IsNil predicate on the "block_number" field.
func BlockNumberIsNil() predicate.Deployment {
	return predicate.Deployment(sql.FieldIsNull(FieldBlockNumber))
}

// BlockNumberNotNil applies the NotNil predicate on the "block_number" field.
func BlockNumberNotNil() predicate.Deployment {
	return predicate.Deployment(sql.FieldNotNull(FieldBlockNumber))
}

// GasUsedEQ applies the EQ predicate on the "gas_used" field.
func GasUsedEQ(v uint64) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldGasUsed, v))
}

// GasUsedNEQ applies the NEQ predicate on the "gas_used" field.
func GasUsedNEQ(v uint64) predicate.Deployment {
	return predicate.Deployment(sql.FieldNEQ(FieldGasUsed, v))
}

// GasUsedIn applies the In predicate on the "gas_used" field.
func GasUsedIn(vs ...uint64) predicate.Deployment {
	return predicate.Deployment(sql.FieldIn(FieldGasUsed, vs...))
}

// GasUsedNotIn applies the NotIn predicate on the "gas_used" field.
func GasUsedNotIn(vs ...uint64) predicate.Deployment {
	return predicate.Deployment(sql.FieldNotIn(FieldGasUsed, vs...))
}

// GasUsedGT applies the GT predicate on the "gas_used" field.
func GasUsedGT(v uint64) predicate.Deployment {
	return predicate.Deployment(sql.FieldGT(FieldGasUsed, v))
}

// GasUsedGTE applies the GTE predicate on the "gas_used" field.
func GasUsedGTE(v uint64) predicate.Deployment {
	return predicate.Deployment(sql.FieldGTE(FieldGasUsed, v))
}

// GasUsedLT applies the LT predicate on the "gas_used" field.
func GasUsedLT(v uint64) predicate.Deployment {
	return predicate.Deployment(sql.FieldLT(FieldGasUsed, v))
}

// GasUsedLTE applies the LTE predicate on the "gas_used" field.
func GasUsedLTE(v uint64) predicate.Deployment {
	return predicate.Deployment(sql.FieldLTE(FieldGasUsed, v))
}

// GasUsedIsNil applies the IsNil predicate on the "gas_used" field.
func GasUsedIsNil() predicate.Deployment {
	return predicate.Deployment(sql.FieldIsNull(FieldGasUsed))
}

// GasUsedNotNil applies the NotNil predicate on the "gas_used" field.
func GasUsedNotNil() predicate.Deployment {
	return predicate.Deployment(sql.FieldNotNull(FieldGasUsed))
}

// DeployerAddressEQ applies the EQ predicate on the "deployer_address" field.
func DeployerAddressEQ(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldDeployerAddress, v))
}

// DeployerAddressNEQ applies the NEQ predicate on the "deployer_address" field.
func DeployerAddressNEQ(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNEQ(FieldDeployerAddress, v))
}

// DeployerAddressIn applies the In predicate on the "deployer_address" field.
func DeployerAddressIn(vs ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldIn(FieldDeployerAddress, vs...))
}

// DeployerAddressNotIn applies the NotIn predicate on the "deployer_address" field.
func DeployerAddressNotIn(vs ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNotIn(FieldDeployerAddress, vs...))
}

// DeployerAddressGT applies the GT predicate on the "deployer_address" field.
func DeployerAddressGT(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGT(FieldDeployerAddress, v))
}

// DeployerAddressGTE applies the GTE predicate on the "deployer_address" field.
func DeployerAddressGTE(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGTE(FieldDeployerAddress, v))
}

// DeployerAddressLT applies the LT predicate on the "deployer_address" field.
func DeployerAddressLT(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLT(FieldDeployerAddress, v))
}

// DeployerAddressLTE applies the LTE predicate on the "deployer_address" field.
func DeployerAddressLTE(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLTE(FieldDeployerAddress, v))
}

// DeployerAddressContains applies the Contains predicate on the "deployer_address" field.
func DeployerAddressContains(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldContains(FieldDeployerAddress, v))
}

// DeployerAddressHasPrefix applies the HasPrefix predicate on the "deployer_address" field.
func DeployerAddressHasPrefix(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldHasPrefix(FieldDeployerAddress, v))
}

// DeployerAddressHasSuffix applies the HasSuffix predicate on the "deployer_address" field.
func DeployerAddressHasSuffix(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldHasSuffix(FieldDeployerAddress, v))
}

// DeployerAddressEqualFold applies the EqualFold predicate on the "deployer_address" field.
func DeployerAddressEqualFold(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEqualFold(FieldDeployerAddress, v))
}

// DeployerAddressContainsFold applies the ContainsFold predicate on the "deployer_address" field.
func DeployerAddressContainsFold(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldContainsFold(FieldDeployerAddress, v))
}

// EigendaCommitmentEQ applies the EQ predicate on the "eigenda_commitment" field.
func EigendaCommitmentEQ(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldEigendaCommitment, v))
}

// EigendaCommitmentNEQ applies the NEQ predicate on the "eigenda_commitment" field.
func EigendaCommitmentNEQ(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNEQ(FieldEigendaCommitment, v))
}

// EigendaCommitmentIn applies the In predicate on the "eigenda_commitment" field.
func EigendaCommitmentIn(vs ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldIn(FieldEigendaCommitment, vs...))
}

// EigendaCommitmentNotIn applies the NotIn predicate on the "eigenda_commitment" field.
func EigendaCommitmentNotIn(vs ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNotIn(FieldEigendaCommitment, vs...))
}

// EigendaCommitmentGT applies the GT predicate on the "eigenda_commitment" field.
func EigendaCommitmentGT(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGT(FieldEigendaCommitment, v))
}

// EigendaCommitmentGTE applies the GTE predicate on the "eigenda_commitment" field.
func EigendaCommitmentGTE(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGTE(FieldEigendaCommitment, v))
}

// EigendaCommitmentLT applies the LT predicate on the "eigenda_commitment" field.
func EigendaCommitmentLT(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLT(FieldEigendaCommitment, v))
}

// EigendaCommitmentLTE applies the LTE predicate on the "eigenda_commitment" field.
func EigendaCommitmentLTE(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLTE(FieldEigendaCommitment, v))
}

// EigendaCommitmentContains applies the Contains predicate on the "eigenda_commitment" field.
func EigendaCommitmentContains(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldContains(FieldEigendaCommitment, v))
}

// EigendaCommitmentHasPrefix applies the HasPrefix predicate on the "eigenda_commitment" field.
func EigendaCommitmentHasPrefix(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldHasPrefix(FieldEigendaCommitment, v))
}

// EigendaCommitmentHasSuffix applies the HasSuffix predicate on the "eigenda_commitment" field.
func EigendaCommitmentHasSuffix(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldHasSuffix(FieldEigendaCommitment, v))
}

// EigendaCommitmentIsNil applies the IsNil predicate on the "eigenda_commitment" field.
func EigendaCommitmentIsNil() predicate.Deployment {
	return predicate.Deployment(sql.FieldIsNull(FieldEigendaCommitment))
}

// EigendaCommitmentNotNil applies the NotNil predicate on the "eigenda_commitment" field.
func EigendaCommitmentNotNil() predicate.Deployment {
	return predicate.Deployment(sql.FieldNotNull(FieldEigendaCommitment))
}

// EigendaCommitmentEqualFold applies the EqualFold predicate on the "eigenda_commitment" field.
func EigendaCommitmentEqualFold(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEqualFold(FieldEigendaCommitment, v))
}

// EigendaCommitmentContainsFold applies the ContainsFold predicate on the "eigenda_commitment" field.
func EigendaCommitmentContainsFold(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldContainsFold(FieldEigendaCommitment, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Deployment {
	return predicate.Deployment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Deployment {
	return predicate.Deployment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Deployment {
	return predicate.Deployment(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Deployment {
	return predicate.Deployment(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Deployment {
	return predicate.Deployment(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Deployment {
	return predicate.Deployment(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Deployment {
	return predicate.Deployment(sql.FieldContainsFold(FieldErrorMessage, v))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldLTE(FieldSubmittedAt, v))
}

// ConfirmedAtEQ applies the EQ predicate on the "confirmed_at" field.
func ConfirmedAtEQ(v time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldEQ(FieldConfirmedAt, v))
}

// ConfirmedAtNEQ applies the NEQ predicate on the "confirmed_at" field.
func ConfirmedAtNEQ(v time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldNEQ(FieldConfirmedAt, v))
}

// ConfirmedAtIn applies the In predicate on the "confirmed_at" field.
func ConfirmedAtIn(vs ...time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtNotIn applies the NotIn predicate on the "confirmed_at" field.
func ConfirmedAtNotIn(vs ...time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldNotIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtGT applies the GT predicate on the "confirmed_at" field.
func ConfirmedAtGT(v time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldGT(FieldConfirmedAt, v))
}

// ConfirmedAtGTE applies the GTE predicate on the "confirmed_at" field.
func ConfirmedAtGTE(v time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldGTE(FieldConfirmedAt, v))
}

// ConfirmedAtLT applies the LT predicate on the "confirmed_at" field.
func ConfirmedAtLT(v time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldLT(FieldConfirmedAt, v))
}

// ConfirmedAtLTE applies the LTE predicate on the "confirmed_at" field.
func ConfirmedAtLTE(v time.Time) predicate.Deployment {
	return predicate.Deployment(sql.FieldLTE(FieldConfirmedAt, v))
}

// ConfirmedAtIsNil applies the IsNil predicate on the "confirmed_at" field.
func ConfirmedAtIsNil() predicate.Deployment {
	return predicate.Deployment(sql.FieldIsNull(FieldConfirmedAt))
}

// ConfirmedAtNotNil applies the NotNil predicate on the "confirmed_at" field.
func ConfirmedAtNotNil() predicate.Deployment {
	return predicate.Deployment(sql.FieldNotNull(FieldConfirmedAt))
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.Deployment {
	return predicate.Deployment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.Deployment {
	return predicate.Deployment(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Deployment) predicate.Deployment {
	return predicate.Deployment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Deployment) predicate.Deployment {
	return predicate.Deployment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Deployment) predicate.Deployment {
	return predicate.Deployment(sql.NotPredicates(p))
}
