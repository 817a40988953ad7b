package common

const (
	// VERIFIER name to identify the verifier gateway component
	VERIFIER = "verifier"
	// L1WATCHER name to identify the L1 blockhash watcher component
	L1WATCHER = "l1watcher"
	// RPC name to identify the rpc component
	RPC = "rpc"
)
