package types

const (
	// ModuleName defines the module name
	ModuleName = "bridge"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the bridge
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

func KeyPrefix(p string) []byte {
	return []byte(p)
}

const (
	ConfigKey = "Config-value-"
	ParamsKey = "Params-value-"
)

// ConfigSeed is the derivation key of the bridge mint authority. Together with
// the module name it fully determines the authority address, so the address can
// be recomputed by anyone and no private key exists for it.
var ConfigSeed = []byte("config")
