package domain

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"tokengated-music/pkg/ethsig"
)

// ConditionKind tags the variant of an AccessCondition.
type ConditionKind string

const (
	ConditionFungibleBalance      ConditionKind = "FUNGIBLE_BALANCE"
	ConditionNonFungibleOwnership ConditionKind = "NON_FUNGIBLE_OWNERSHIP"
	ConditionNonFungibleBalance   ConditionKind = "NON_FUNGIBLE_BALANCE"
)

// Chain ids accepted by name.
var Chains = map[string]int64{
	"mainnet": 1,
	"sepolia": 11155111,
	"polygon": 137,
	"amoy":    80002,
}

// ConditionError reports a missing or malformed condition field.
type ConditionError struct {
	Field  string
	Reason string
}

func (e *ConditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ConditionForm is the raw, unvalidated input of the condition builder.
type ConditionForm struct {
	Kind            ConditionKind `json:"kind"`
	Chain           string        `json:"chain"`
	ContractAddress string        `json:"contract_address"`
	MinBalance      string        `json:"min_balance,omitempty"`
	TokenID         string        `json:"token_id,omitempty"`
}

// AccessCondition is a validated on-chain predicate. Exactly one of
// MinBalance and TokenID is set, depending on Kind.
type AccessCondition struct {
	Kind            ConditionKind
	ChainID         int64
	ContractAddress string
	MinBalance      *big.Int
	TokenID         *big.Int
}

// BuildCondition validates a form into an AccessCondition.
// Each kind checks its own required fields.
func BuildCondition(form ConditionForm) (AccessCondition, error) {
	chainID, err := ParseChain(form.Chain)
	if err != nil {
		return AccessCondition{}, err
	}
	contract, err := parseContract(form.ContractAddress)
	if err != nil {
		return AccessCondition{}, err
	}

	cond := AccessCondition{Kind: form.Kind, ChainID: chainID, ContractAddress: contract}

	switch form.Kind {
	case ConditionFungibleBalance, ConditionNonFungibleBalance:
		cond.MinBalance, err = parseUint("min_balance", form.MinBalance, 1)
	case ConditionNonFungibleOwnership:
		cond.TokenID, err = parseUint("token_id", form.TokenID, 0)
	case "":
		return AccessCondition{}, &ConditionError{Field: "kind", Reason: "is required"}
	default:
		return AccessCondition{}, &ConditionError{Field: "kind", Reason: fmt.Sprintf("unknown condition kind %q", form.Kind)}
	}
	if err != nil {
		return AccessCondition{}, err
	}
	return cond, nil
}

// Validate re-checks completeness of an already built condition.
func (c AccessCondition) Validate() error {
	if c.ChainID <= 0 {
		return &ConditionError{Field: "chain", Reason: "is required"}
	}
	if !ethsig.IsHexAddress(c.ContractAddress) {
		return &ConditionError{Field: "contract_address", Reason: "must be a 20-byte hex address"}
	}
	switch c.Kind {
	case ConditionFungibleBalance, ConditionNonFungibleBalance:
		if c.MinBalance == nil || c.MinBalance.Sign() < 1 {
			return &ConditionError{Field: "min_balance", Reason: "must be at least 1"}
		}
	case ConditionNonFungibleOwnership:
		if c.TokenID == nil || c.TokenID.Sign() < 0 {
			return &ConditionError{Field: "token_id", Reason: "is required"}
		}
	default:
		return &ConditionError{Field: "kind", Reason: fmt.Sprintf("unknown condition kind %q", c.Kind)}
	}
	return nil
}

// Form renders the condition back into builder input.
func (c AccessCondition) Form() ConditionForm {
	f := ConditionForm{Kind: c.Kind, Chain: strconv.FormatInt(c.ChainID, 10), ContractAddress: c.ContractAddress}
	if c.MinBalance != nil {
		f.MinBalance = c.MinBalance.String()
	}
	if c.TokenID != nil {
		f.TokenID = c.TokenID.String()
	}
	return f
}

// ParseChain accepts a known chain name or a positive decimal chain id.
func ParseChain(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ConditionError{Field: "chain", Reason: "is required"}
	}
	if id, ok := Chains[strings.ToLower(s)]; ok {
		return id, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, &ConditionError{Field: "chain", Reason: fmt.Sprintf("unknown chain %q", s)}
	}
	return id, nil
}

func parseContract(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &ConditionError{Field: "contract_address", Reason: "is required"}
	}
	addr, err := ethsig.ChecksumAddress(s)
	if err != nil {
		return "", &ConditionError{Field: "contract_address", Reason: "must be a 20-byte hex address"}
	}
	return addr, nil
}

func parseUint(field, s string, min int64) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &ConditionError{Field: field, Reason: "is required"}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, &ConditionError{Field: field, Reason: "must be a decimal integer"}
	}
	if n.Cmp(big.NewInt(min)) < 0 {
		return nil, &ConditionError{Field: field, Reason: fmt.Sprintf("must be at least %d", min)}
	}
	return n, nil
}

// ---- Threshold-network condition JSON ----

// UserAddressParam is substituted with the requester's address during evaluation.
const UserAddressParam = ":userAddress"

// ConditionSpec is the JSON condition embedded in a message kit header.
type ConditionSpec struct {
	ConditionType        string          `json:"conditionType"`
	Chain                int64           `json:"chain"`
	ContractAddress      string          `json:"contractAddress"`
	StandardContractType string          `json:"standardContractType"`
	Method               string          `json:"method"`
	Parameters           []string        `json:"parameters"`
	ReturnValueTest      ReturnValueTest `json:"returnValueTest"`
}

// ReturnValueTest compares the contract call result against Value.
type ReturnValueTest struct {
	Comparator string `json:"comparator"`
	Value      string `json:"value"`
}

// Spec converts the condition into its wire form.
func (c AccessCondition) Spec() ConditionSpec {
	s := ConditionSpec{
		ConditionType:   "contract",
		Chain:           c.ChainID,
		ContractAddress: c.ContractAddress,
	}
	switch c.Kind {
	case ConditionFungibleBalance:
		s.StandardContractType = "ERC20"
		s.Method = "balanceOf"
		s.Parameters = []string{UserAddressParam}
		s.ReturnValueTest = ReturnValueTest{Comparator: ">=", Value: c.MinBalance.String()}
	case ConditionNonFungibleBalance:
		s.StandardContractType = "ERC721"
		s.Method = "balanceOf"
		s.Parameters = []string{UserAddressParam}
		s.ReturnValueTest = ReturnValueTest{Comparator: ">=", Value: c.MinBalance.String()}
	case ConditionNonFungibleOwnership:
		s.StandardContractType = "ERC721"
		s.Method = "ownerOf"
		s.Parameters = []string{c.TokenID.String()}
		s.ReturnValueTest = ReturnValueTest{Comparator: "==", Value: UserAddressParam}
	}
	return s
}

// JSON returns the marshaled spec.
func (c AccessCondition) JSON() ([]byte, error) {
	return json.Marshal(c.Spec())
}

// ParseConditionSpec rebuilds an AccessCondition from its wire form.
func ParseConditionSpec(s ConditionSpec) (AccessCondition, error) {
	if s.ConditionType != "contract" {
		return AccessCondition{}, fmt.Errorf("unsupported condition type %q", s.ConditionType)
	}

	form := ConditionForm{Chain: strconv.FormatInt(s.Chain, 10), ContractAddress: s.ContractAddress}
	switch {
	case s.StandardContractType == "ERC20" && s.Method == "balanceOf" && s.ReturnValueTest.Comparator == ">=":
		form.Kind = ConditionFungibleBalance
		form.MinBalance = s.ReturnValueTest.Value
	case s.StandardContractType == "ERC721" && s.Method == "balanceOf" && s.ReturnValueTest.Comparator == ">=":
		form.Kind = ConditionNonFungibleBalance
		form.MinBalance = s.ReturnValueTest.Value
	case s.StandardContractType == "ERC721" && s.Method == "ownerOf" && s.ReturnValueTest.Comparator == "==":
		if len(s.Parameters) != 1 || s.ReturnValueTest.Value != UserAddressParam {
			return AccessCondition{}, fmt.Errorf("malformed ownerOf condition")
		}
		form.Kind = ConditionNonFungibleOwnership
		form.TokenID = s.Parameters[0]
	default:
		return AccessCondition{}, fmt.Errorf("unsupported condition %s.%s %s",
			s.StandardContractType, s.Method, s.ReturnValueTest.Comparator)
	}
	return BuildCondition(form)
}

// ParseConditionJSON decodes a marshaled ConditionSpec.
func ParseConditionJSON(data []byte) (AccessCondition, error) {
	var s ConditionSpec
	if err := json.Unmarshal(data, &s); err != nil {
		return AccessCondition{}, fmt.Errorf("decode condition: %w", err)
	}
	return ParseConditionSpec(s)
}
