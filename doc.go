// Package chanlog gates console output by named channel.
//
// A Gate holds a set of active channel names. Log, Error and Debug emit a
// prefixed record to their writer only when the call's channel is active;
// everything else is silently dropped. The active set is replaced wholesale
// with SetChannels and is seeded either explicitly or from the LOG_CHANNELS
// environment variable (comma-separated) via FromEnv.
//
// Channel matching is exact and case-sensitive. SetChannels trims the names
// it stores, but the emit operations compare the raw channel argument
// against the stored set: Log(" db ", ...) never matches an active "db"
// channel. Trim channel names before passing them to the emit operations.
package chanlog
