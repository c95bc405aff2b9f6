package types

// DONTCOVER

import (
	errorsmod "cosmossdk.io/errors"
)

// x/bridge module sentinel errors
var (
	ErrUnauthorized          = errorsmod.Register(ModuleName, 1100, "signer is not authorized for this operation")
	ErrAlreadyInitialized    = errorsmod.Register(ModuleName, 1101, "bridge config already initialized")
	ErrDuplicateRegistration = errorsmod.Register(ModuleName, 1102, "foreign token already registered")
	ErrUnregisteredToken     = errorsmod.Register(ModuleName, 1103, "foreign token is not registered for this denom")
	ErrAllocationFailed      = errorsmod.Register(ModuleName, 1104, "could not allocate bridge record")
	ErrInvalidMint           = errorsmod.Register(ModuleName, 1105, "denom does not support mint authority transfer")
	ErrNotInitialized        = errorsmod.Register(ModuleName, 1106, "bridge config not set")
	ErrInvalidAmount         = errorsmod.Register(ModuleName, 1107, "amount must be positive")
	ErrInvalidForeignAddress = errorsmod.Register(ModuleName, 1108, "invalid foreign address")
	ErrInvalidParams         = errorsmod.Register(ModuleName, 1109, "invalid bridge params")
	ErrMalformedEvent        = errorsmod.Register(ModuleName, 1110, "malformed bridge event")
)
