package tui

import "strings"

// Command names accepted in command mode.
const (
	CmdChats   = "chats"
	CmdFriends = "friends"
	CmdInvite  = "invite"
	CmdSignOut = "signout"
	CmdRefresh = "refresh"
	CmdHelp    = "help"
	CmdQuit    = "quit"
)

var commandAliases = map[string]string{
	"c":       CmdChats,
	"chat":    CmdChats,
	"f":       CmdFriends,
	"friend":  CmdFriends,
	"i":       CmdInvite,
	"qr":      CmdInvite,
	"logout":  CmdSignOut,
	"r":       CmdRefresh,
	"h":       CmdHelp,
	"?":       CmdHelp,
	"q":       CmdQuit,
	"q!":      CmdQuit,
	"exit":    CmdQuit,
	"signoff": CmdSignOut,
}

// Command is a parsed command-mode line.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a command line without its leading ':'. Aliases
// resolve to their command name.
func ParseCommand(input string) Command {
	input = strings.TrimPrefix(strings.TrimSpace(input), ":")
	name, args, _ := strings.Cut(input, " ")
	name = strings.ToLower(name)
	if canonical, ok := commandAliases[name]; ok {
		name = canonical
	}
	return Command{Name: name, Args: strings.TrimSpace(args)}
}
