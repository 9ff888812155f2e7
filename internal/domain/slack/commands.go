package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdList     CommandType = "list"
	CmdNext     CommandType = "next"
	CmdOverride CommandType = "override"
	CmdClear    CommandType = "clear"
	CmdNotify   CommandType = "notify"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "list", "ls", "schedule":
		cmd.Type = CmdList
	case "next":
		cmd.Type = CmdNext
	case "override", "swap":
		cmd.Type = CmdOverride
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "clear", "reset":
		cmd.Type = CmdClear
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "notify":
		cmd.Type = CmdNotify
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Schedule:*
• ` + "`/rota list`" + ` - Shows the Friday rota for the rest of the year
• ` + "`/rota next`" + ` - Shows who is on duty next Friday

*Overrides:*
• ` + "`/rota override YYYY-MM-DD Name`" + ` - Assigns someone else to a date (name or @mention)
• ` + "`/rota clear YYYY-MM-DD`" + ` - Removes the override for a date

*Notifications:*
• ` + "`/rota notify`" + ` - Sends the reminder for next Friday now`
}
