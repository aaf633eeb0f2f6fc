package cli

import "strings"

// command is the closed set of menu actions.
type command int

const (
	cmdUnknown command = iota
	cmdDeposit
	cmdWithdraw
	cmdStatement
	cmdNewUser
	cmdNewAccount
	cmdListAccounts
	cmdListBalances
	cmdQuit
)

// parseCommand maps one menu token to its command. Anything unrecognized
// maps to cmdUnknown; the dispatch loop reports it and keeps going.
func parseCommand(token string) command {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "d":
		return cmdDeposit
	case "s":
		return cmdWithdraw
	case "e":
		return cmdStatement
	case "nu", "new user":
		return cmdNewUser
	case "nc", "new account":
		return cmdNewAccount
	case "lc":
		return cmdListAccounts
	case "lcx":
		return cmdListBalances
	case "q":
		return cmdQuit
	}
	return cmdUnknown
}
