package config

// DefaultVars are the values that depend on the environment / deployment.
// They are expected to be overridden, the defaults only suit a local setup.
const DefaultVars = `
# Layer 1 (Ethereum) RPC provider URL
L1URL = "http://localhost:8545"

# FossilDBPath is the sqlite file holding the MMR state
FossilDBPath = "/tmp/fossil_relayer.sqlite"

# VerifierSenderAddress is the identity the verifier gateway uses to drive
# store updates, must match the address the store was initialized with
VerifierSenderAddress = "0x0000000000000000000000000000000000000000"

# VerifyingKeyPath is the path to the Groth16 BN254 verifying key
VerifyingKeyPath = "/app/keys/groth16_vk.bin"

[Log]
Environment = "development"
Level = "info"
`

// DefaultValues is the default configuration
const DefaultValues = `
[Log]
Environment = "{{Log.Environment}}" # "production" or "development"
Level = "{{Log.Level}}"
Outputs = ["stderr"]

[MMRStore]
DBPath = "{{FossilDBPath}}"

[Verifier]
VerifyingKeyPath = "{{VerifyingKeyPath}}"
SenderAddress = "{{VerifierSenderAddress}}"

[L1Watcher]
PollInterval = "30s"
BlockFinality = "FinalizedBlock"
URLRPCL1 = "{{L1URL}}"

[RPC]
Host = "0.0.0.0"
Port = 5576
ReadTimeout = "2s"
WriteTimeout = "10s"
MaxRequestsPerIPAndSecond = 500
`
