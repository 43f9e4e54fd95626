package domain

// KeyPrefix is the default namespace for keys written to the KV store.
const KeyPrefix = "dirsearch:"

// GlobalTag is the conventional location tag for entries available everywhere.
const GlobalTag = "Global"
