package sdk

// Address identifies an account on the host chain, e.g. "hive:someone".
type Address string

func (a Address) String() string { return string(a) }

// Asset is a liquid token symbol the chain can move between accounts.
type Asset string

const (
	AssetHive Asset = "hive"
	AssetHbd  Asset = "hbd"
)

func (a Asset) String() string { return string(a) }

// Intent is an instruction attached to the calling transaction, e.g. a
// transfer allowance the contract may draw against.
type Intent struct {
	Type string
	Args map[string]string
}

// Env carries the call context the host exposes to the contract.
type Env struct {
	Sender struct {
		Address Address
	}
	TxId    string
	Intents []Intent
}
