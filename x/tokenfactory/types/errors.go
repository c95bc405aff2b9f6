package types

// DONTCOVER

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

// x/tokenfactory module sentinel errors
var (
	ErrDenomExists              = errorsmod.Register(ModuleName, 2, "attempting to create a denom that already exists")
	ErrInvalidDenom             = errorsmod.Register(ModuleName, 3, "invalid denom")
	ErrInvalidCreator           = errorsmod.Register(ModuleName, 4, "invalid creator")
	ErrInvalidAuthorityMetadata = errorsmod.Register(ModuleName, 5, "invalid authority metadata")
	ErrSubdenomTooLong          = errorsmod.Register(ModuleName, 6, fmt.Sprintf("subdenom too long, max length is %d bytes", MaxSubdenomLength))
	ErrCreatorTooLong           = errorsmod.Register(ModuleName, 7, fmt.Sprintf("creator too long, max length is %d bytes", MaxCreatorLength))
	ErrDenomDoesNotExist        = errorsmod.Register(ModuleName, 8, "denom does not exist")
	ErrModuleAccount            = errorsmod.Register(ModuleName, 9, "module accounts cannot hold or burn factory tokens")
	ErrInvalidGenesis           = errorsmod.Register(ModuleName, 10, "invalid genesis")
)
