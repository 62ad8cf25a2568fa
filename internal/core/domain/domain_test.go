package domain

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenX = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"

func TestBuildCondition_Variants(t *testing.T) {
	tests := []struct {
		name      string
		form      ConditionForm
		method    string
		std       string
		params    []string
		test      ReturnValueTest
		minBal    *big.Int
		tokenID   *big.Int
		wantChain int64
	}{
		{
			name:      "fungible balance on sepolia",
			form:      ConditionForm{Kind: ConditionFungibleBalance, Chain: "sepolia", ContractAddress: tokenX, MinBalance: "1"},
			method:    "balanceOf",
			std:       "ERC20",
			params:    []string{UserAddressParam},
			test:      ReturnValueTest{Comparator: ">=", Value: "1"},
			minBal:    big.NewInt(1),
			wantChain: 11155111,
		},
		{
			name:      "nft ownership by numeric chain",
			form:      ConditionForm{Kind: ConditionNonFungibleOwnership, Chain: "137", ContractAddress: tokenX, TokenID: "0"},
			method:    "ownerOf",
			std:       "ERC721",
			params:    []string{"0"},
			test:      ReturnValueTest{Comparator: "==", Value: UserAddressParam},
			tokenID:   big.NewInt(0),
			wantChain: 137,
		},
		{
			name:      "nft balance",
			form:      ConditionForm{Kind: ConditionNonFungibleBalance, Chain: "Mainnet", ContractAddress: tokenX, MinBalance: "3"},
			method:    "balanceOf",
			std:       "ERC721",
			params:    []string{UserAddressParam},
			test:      ReturnValueTest{Comparator: ">=", Value: "3"},
			minBal:    big.NewInt(3),
			wantChain: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := BuildCondition(tt.form)
			require.NoError(t, err)
			require.NoError(t, cond.Validate())

			assert.Equal(t, tt.wantChain, cond.ChainID)
			assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", cond.ContractAddress)
			assertBig(t, tt.minBal, cond.MinBalance)
			assertBig(t, tt.tokenID, cond.TokenID)

			spec := cond.Spec()
			assert.Equal(t, "contract", spec.ConditionType)
			assert.Equal(t, tt.std, spec.StandardContractType)
			assert.Equal(t, tt.method, spec.Method)
			assert.Equal(t, tt.params, spec.Parameters)
			assert.Equal(t, tt.test, spec.ReturnValueTest)

			back, err := ParseConditionSpec(spec)
			require.NoError(t, err)
			assert.Equal(t, cond.Form(), back.Form())
		})
	}
}

func assertBig(t *testing.T, want, got *big.Int) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got)
		return
	}
	require.NotNil(t, got)
	assert.Equal(t, want.String(), got.String())
}

func TestBuildCondition_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		form  ConditionForm
		field string
	}{
		{"no kind", ConditionForm{Chain: "sepolia", ContractAddress: tokenX, MinBalance: "1"}, "kind"},
		{"unknown kind", ConditionForm{Kind: "DAO_VOTE", Chain: "sepolia", ContractAddress: tokenX}, "kind"},
		{"no chain", ConditionForm{Kind: ConditionFungibleBalance, ContractAddress: tokenX, MinBalance: "1"}, "chain"},
		{"unknown chain", ConditionForm{Kind: ConditionFungibleBalance, Chain: "goerli", ContractAddress: tokenX, MinBalance: "1"}, "chain"},
		{"no contract", ConditionForm{Kind: ConditionFungibleBalance, Chain: "sepolia", MinBalance: "1"}, "contract_address"},
		{"short contract", ConditionForm{Kind: ConditionFungibleBalance, Chain: "sepolia", ContractAddress: "0x1234", MinBalance: "1"}, "contract_address"},
		{"balance missing", ConditionForm{Kind: ConditionFungibleBalance, Chain: "sepolia", ContractAddress: tokenX}, "min_balance"},
		{"balance zero", ConditionForm{Kind: ConditionNonFungibleBalance, Chain: "sepolia", ContractAddress: tokenX, MinBalance: "0"}, "min_balance"},
		{"balance not a number", ConditionForm{Kind: ConditionFungibleBalance, Chain: "sepolia", ContractAddress: tokenX, MinBalance: "1e18"}, "min_balance"},
		{"token id missing", ConditionForm{Kind: ConditionNonFungibleOwnership, Chain: "sepolia", ContractAddress: tokenX, MinBalance: "1"}, "token_id"},
		{"token id negative", ConditionForm{Kind: ConditionNonFungibleOwnership, Chain: "sepolia", ContractAddress: tokenX, TokenID: "-1"}, "token_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildCondition(tt.form)
			var condErr *ConditionError
			require.True(t, errors.As(err, &condErr), "got %v", err)
			assert.Equal(t, tt.field, condErr.Field)
		})
	}
}

func TestAccessCondition_ValidateZeroValue(t *testing.T) {
	assert.Error(t, AccessCondition{}.Validate())
	assert.Error(t, AccessCondition{Kind: ConditionFungibleBalance, ChainID: 1, ContractAddress: tokenX}.Validate())
}

func TestParseConditionSpec_Rejects(t *testing.T) {
	_, err := ParseConditionSpec(ConditionSpec{ConditionType: "time"})
	assert.Error(t, err)

	_, err = ParseConditionSpec(ConditionSpec{
		ConditionType: "contract", Chain: 1, ContractAddress: tokenX,
		StandardContractType: "ERC1155", Method: "balanceOf",
		ReturnValueTest: ReturnValueTest{Comparator: ">=", Value: "1"},
	})
	assert.Error(t, err)
}

func TestParseConditionJSON(t *testing.T) {
	cond, err := BuildCondition(ConditionForm{Kind: ConditionFungibleBalance, Chain: "amoy", ContractAddress: tokenX, MinBalance: "1000000000000000000000"})
	require.NoError(t, err)
	raw, err := cond.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"standardContractType":"ERC20"`)

	back, err := ParseConditionJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, 0, cond.MinBalance.Cmp(back.MinBalance))
	assert.Equal(t, int64(80002), back.ChainID)

	_, err = ParseConditionJSON([]byte("{"))
	assert.Error(t, err)
}

func TestMessageKit_EncodeParse(t *testing.T) {
	cond, _ := BuildCondition(ConditionForm{Kind: ConditionFungibleBalance, Chain: "sepolia", ContractAddress: tokenX, MinBalance: "1"})
	kit := &MessageKit{
		Header: MessageKitHeader{
			Version:    1,
			Domain:     "lynx",
			RitualID:   27,
			Condition:  cond.Spec(),
			Encryptor:  "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf",
			WrappedKey: []byte{1, 2, 3},
		},
		Payload: []byte("ciphertext"),
	}

	raw, err := kit.Bytes()
	require.NoError(t, err)
	assert.Equal(t, MessageKitMagic, raw[:4])

	parsed, err := ParseMessageKit(raw)
	require.NoError(t, err)
	assert.Equal(t, kit.Header, parsed.Header)
	assert.Equal(t, []byte("ciphertext"), parsed.Payload)
}

func TestParseMessageKit_Malformed(t *testing.T) {
	tests := map[string][]byte{
		"empty":           nil,
		"wrong magic":     []byte("RIFF\x00\x00\x00\x02{}"),
		"header overruns": append([]byte("TMK1\x00\x00\x10\x00"), '{', '}'),
		"zero header":     []byte("TMK1\x00\x00\x00\x00payload"),
		"bad json":        []byte("TMK1\x00\x00\x00\x02{]"),
		"wrong version":   []byte("TMK1\x00\x00\x00\x07{\"v\":9}x"),
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMessageKit(raw)
			assert.ErrorIs(t, err, ErrMalformedKit)
		})
	}
}

func TestSignInMessage_StringParse(t *testing.T) {
	msg := SignInMessage{
		Domain:   "localhost",
		Address:  "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf",
		URI:      "http://localhost:8080",
		ChainID:  11155111,
		Nonce:    "abc123",
		IssuedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	text := msg.String()
	assert.Contains(t, text, "localhost wants you to sign in with your Ethereum account:\n0x7E5F")
	assert.Contains(t, text, "Chain ID: 11155111")

	parsed, err := ParseSignInMessage(text)
	require.NoError(t, err)
	assert.Equal(t, msg, parsed)
}

func TestParseSignInMessage_Malformed(t *testing.T) {
	for _, s := range []string{
		"",
		"hello",
		"localhost wants you to sign in with your Ethereum account:\n0xabc\n\nChain ID: x",
		"localhost wants you to sign in with your Ethereum account:\n0xabc\n\nNonce: n",
	} {
		_, err := ParseSignInMessage(s)
		assert.ErrorIs(t, err, ErrMalformedSignIn, s)
	}
}

func TestPlaybackStatus_IsLoaded(t *testing.T) {
	assert.False(t, PlaybackIdle.IsLoaded())
	assert.False(t, PlaybackDecrypting.IsLoaded())
	assert.True(t, PlaybackPlaying.IsLoaded())
	assert.True(t, PlaybackPaused.IsLoaded())
}

func TestOrphanPin_Fail_Backoff(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	o := &OrphanPin{CID: "bafy"}

	want := []time.Duration{time.Minute, 5 * time.Minute, 30 * time.Minute, 2 * time.Hour, 2 * time.Hour}
	for i, d := range want {
		o.Fail(now, errors.New("pinata 500"))
		assert.Equal(t, i+1, o.Attempts)
		assert.Equal(t, now.Add(d), o.NextRetryAt, "attempt %d", i+1)
	}
	require.NotNil(t, o.LastError)
	assert.Equal(t, "pinata 500", *o.LastError)
}

func TestTrack_HasCoverArt(t *testing.T) {
	empty := ""
	cid := "bafkrei"
	assert.False(t, (&Track{}).HasCoverArt())
	assert.False(t, (&Track{CoverArtCID: &empty}).HasCoverArt())
	assert.True(t, (&Track{CoverArtCID: &cid}).HasCoverArt())
}
