package types

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

const (
	EventTypeBurn                   = "bridge_burn"
	EventTypeMint                   = "bridge_mint"
	EventTypeInitialized            = "bridge_initialized"
	EventTypeMintAuthorityTaken     = "bridge_mint_authority_taken"
	EventTypeForeignTokenRegistered = "bridge_foreign_token_registered"

	AttributeKeyAccount        = "account"
	AttributeKeyDenom          = "denom"
	AttributeKeyAmount         = "amount"
	AttributeKeyForeignChain   = "foreign_chain"
	AttributeKeyForeignAddress = "foreign_address"
	AttributeKeyRecipient      = "recipient"
	AttributeKeyRelayer        = "relayer"
	AttributeKeyOwner          = "owner"
	AttributeKeyMintAuthority  = "mint_authority"
	AttributeKeyPreviousAdmin  = "previous_admin"
)

// BurnEvent is the record a relayer watches for to release tokens on the
// foreign chain.
type BurnEvent struct {
	Account      string
	Denom        string
	Amount       uint64
	ForeignChain vaa.ChainID
	// Recipient is zero when the burner did not name one.
	Recipient vaa.Address
}

func (e BurnEvent) ToEvent() sdk.Event {
	attrs := []sdk.Attribute{
		sdk.NewAttribute(AttributeKeyAccount, e.Account),
		sdk.NewAttribute(AttributeKeyDenom, e.Denom),
		sdk.NewAttribute(AttributeKeyAmount, strconv.FormatUint(e.Amount, 10)),
		sdk.NewAttribute(AttributeKeyForeignChain, strconv.FormatUint(uint64(e.ForeignChain), 10)),
	}
	if e.Recipient != (vaa.Address{}) {
		attrs = append(attrs, sdk.NewAttribute(AttributeKeyRecipient, e.Recipient.String()))
	}
	return sdk.NewEvent(EventTypeBurn, attrs...)
}

// MintEvent records a mint performed by the relayer.
type MintEvent struct {
	Account        string
	Denom          string
	Amount         uint64
	ForeignAddress vaa.Address
	Relayer        string
}

func (e MintEvent) ToEvent() sdk.Event {
	return sdk.NewEvent(EventTypeMint,
		sdk.NewAttribute(AttributeKeyAccount, e.Account),
		sdk.NewAttribute(AttributeKeyDenom, e.Denom),
		sdk.NewAttribute(AttributeKeyAmount, strconv.FormatUint(e.Amount, 10)),
		sdk.NewAttribute(AttributeKeyForeignAddress, e.ForeignAddress.String()),
		sdk.NewAttribute(AttributeKeyRelayer, e.Relayer),
	)
}

func eventAttributes(ev sdk.Event, want string) (map[string]string, error) {
	if ev.Type != want {
		return nil, ErrMalformedEvent.Wrapf("expected %s, got %s", want, ev.Type)
	}
	attrs := make(map[string]string, len(ev.Attributes))
	for _, a := range ev.Attributes {
		attrs[a.Key] = a.Value
	}
	return attrs, nil
}

func parseAmount(attrs map[string]string) (uint64, error) {
	amount, err := strconv.ParseUint(attrs[AttributeKeyAmount], 10, 64)
	if err != nil {
		return 0, ErrMalformedEvent.Wrapf("amount: %s", err)
	}
	return amount, nil
}

// ParseBurnEvent decodes an event produced by BurnEvent.ToEvent.
func ParseBurnEvent(ev sdk.Event) (BurnEvent, error) {
	attrs, err := eventAttributes(ev, EventTypeBurn)
	if err != nil {
		return BurnEvent{}, err
	}
	amount, err := parseAmount(attrs)
	if err != nil {
		return BurnEvent{}, err
	}
	chain, err := strconv.ParseUint(attrs[AttributeKeyForeignChain], 10, 16)
	if err != nil {
		return BurnEvent{}, ErrMalformedEvent.Wrapf("foreign chain: %s", err)
	}
	out := BurnEvent{
		Account:      attrs[AttributeKeyAccount],
		Denom:        attrs[AttributeKeyDenom],
		Amount:       amount,
		ForeignChain: vaa.ChainID(chain),
	}
	if r, ok := attrs[AttributeKeyRecipient]; ok {
		out.Recipient, err = vaa.StringToAddress(r)
		if err != nil {
			return BurnEvent{}, ErrMalformedEvent.Wrapf("recipient: %s", err)
		}
	}
	return out, nil
}

// ParseMintEvent decodes an event produced by MintEvent.ToEvent.
func ParseMintEvent(ev sdk.Event) (MintEvent, error) {
	attrs, err := eventAttributes(ev, EventTypeMint)
	if err != nil {
		return MintEvent{}, err
	}
	amount, err := parseAmount(attrs)
	if err != nil {
		return MintEvent{}, err
	}
	foreign, err := vaa.StringToAddress(attrs[AttributeKeyForeignAddress])
	if err != nil {
		return MintEvent{}, ErrMalformedEvent.Wrapf("foreign address: %s", err)
	}
	return MintEvent{
		Account:        attrs[AttributeKeyAccount],
		Denom:          attrs[AttributeKeyDenom],
		Amount:         amount,
		ForeignAddress: foreign,
		Relayer:        attrs[AttributeKeyRelayer],
	}, nil
}
