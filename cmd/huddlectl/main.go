package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/matheus3301/huddle/internal/profile"
	"github.com/matheus3301/huddle/internal/roster"
	"github.com/matheus3301/huddle/internal/rpc"
	"github.com/matheus3301/huddle/internal/thread"
	"github.com/matheus3301/huddle/internal/tui/client"
)

func main() {
	profileFlag := flag.String("profile", "", "profile name (overrides config default)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Parse()

	cfg, err := profile.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	profileName := profile.Resolve(*profileFlag, cfg)
	if err := profile.ValidateName(profileName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	socketPath := profile.SocketPath(profileName)
	c, err := client.New(socketPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot connect to daemon for profile %q: %v\n", profileName, err)
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch args[0] {
	case "status":
		cmdStatus(ctx, c, *jsonFlag)
	case "signin":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: huddlectl signin <email> <password>")
			os.Exit(1)
		}
		cmdSignIn(ctx, c, args[1], args[2], *jsonFlag)
	case "signout":
		cmdSignOut(ctx, c, *jsonFlag)
	case "chats":
		cmdChats(ctx, c, strings.Join(args[1:], " "), *jsonFlag)
	case "friends":
		cmdFriends(ctx, c, args[1:], *jsonFlag)
	case "messages":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: huddlectl messages <conversation-id>")
			os.Exit(1)
		}
		cmdMessages(ctx, c, args[1], *jsonFlag)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: huddlectl [--profile <name>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  status                      Show profile and sign-in status")
	fmt.Fprintln(os.Stderr, "  signin <email> <password>   Sign in and wait for the result")
	fmt.Fprintln(os.Stderr, "  signout                     Sign out")
	fmt.Fprintln(os.Stderr, "  chats [query]               List conversations")
	fmt.Fprintln(os.Stderr, "  friends [--online] [query]  List friends and pending requests")
	fmt.Fprintln(os.Stderr, "  messages <id>               Show a conversation's messages")
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func cmdStatus(ctx context.Context, c *client.Client, jsonOut bool) {
	resp, err := c.Session.GetStatus(ctx, &rpc.GetStatusRequest{})
	if err != nil {
		fail(err)
	}
	if jsonOut {
		outputJSON(resp)
		return
	}
	fmt.Printf("Profile: %s\n", resp.Profile)
	fmt.Printf("Status:  %s\n", resp.Status)
	fmt.Printf("Uptime:  %dms\n", resp.UptimeMs)
	if resp.Account != nil {
		fmt.Printf("Account: %s (%s)\n", resp.Account.DisplayName, resp.Account.Handle)
	}
}

func cmdSignIn(ctx context.Context, c *client.Client, email, password string, jsonOut bool) {
	resp, err := c.Session.SignIn(ctx, &rpc.SignInRequest{Email: email, Password: password})
	if err != nil {
		fail(err)
	}
	if jsonOut {
		outputJSON(resp.Account)
		return
	}
	fmt.Printf("Signed in as %s (%s)\n", resp.Account.DisplayName, resp.Account.Handle)
}

func cmdSignOut(ctx context.Context, c *client.Client, jsonOut bool) {
	resp, err := c.Session.SignOut(ctx, &rpc.SignOutRequest{})
	if err != nil {
		fail(err)
	}
	if jsonOut {
		outputJSON(resp)
		return
	}
	fmt.Printf("Status: %s\n", resp.Status)
}

func cmdChats(ctx context.Context, c *client.Client, query string, jsonOut bool) {
	resp, err := c.Roster.ListConversations(ctx, &rpc.ListConversationsRequest{Query: query})
	if err != nil {
		fail(err)
	}
	if jsonOut {
		outputJSON(resp.View)
		return
	}
	if resp.View.Total == 0 {
		fmt.Println("No conversations.")
		return
	}
	printSection := func(header string, rows []roster.ConversationRow) {
		if header != "" && len(rows) > 0 {
			fmt.Println(header)
		}
		for _, r := range rows {
			badge := ""
			if r.Badge != "" {
				badge = "(" + r.Badge + ")"
			}
			fmt.Printf("  %-4s %-24s %-10s %-5s %s\n", r.ID, r.Name, r.Time, badge, r.Preview)
		}
	}
	printSection(resp.View.PinnedHeader, resp.View.Pinned)
	printSection(resp.View.RegularHeader, resp.View.Regular)
}

func cmdFriends(ctx context.Context, c *client.Client, args []string, jsonOut bool) {
	fs := flag.NewFlagSet("friends", flag.ExitOnError)
	online := fs.Bool("online", false, "only show friends who are online")
	_ = fs.Parse(args)

	filter := roster.FilterAll
	if *online {
		filter = roster.FilterOnline
	}
	resp, err := c.Roster.ListContacts(ctx, &rpc.ListContactsRequest{
		Query:  strings.Join(fs.Args(), " "),
		Filter: string(filter),
	})
	if err != nil {
		fail(err)
	}
	if jsonOut {
		outputJSON(resp.View)
		return
	}
	v := resp.View
	fmt.Printf("%s | %s\n", v.OnlineTab, v.AllTab)
	if v.RequestsHeader != "" {
		fmt.Println(v.RequestsHeader)
		for _, r := range v.Requests {
			fmt.Printf("  %-24s %-16s %s\n", r.Name, r.Handle, r.Received)
		}
	}
	if len(v.Contacts) == 0 {
		fmt.Println("No friends.")
		return
	}
	for _, r := range v.Contacts {
		fmt.Printf("  %-24s %-16s %-8s %s\n", r.Name, r.Handle, r.Presence, r.Subtitle)
	}
}

func cmdMessages(ctx context.Context, c *client.Client, id string, jsonOut bool) {
	resp, err := c.Thread.ListMessages(ctx, &rpc.ListMessagesRequest{ConversationID: id})
	if err != nil {
		fail(err)
	}
	if jsonOut {
		outputJSON(resp)
		return
	}
	fmt.Printf("%s\n", resp.Conversation.Name)
	for _, it := range resp.Items {
		if it.Kind == thread.KindDay {
			fmt.Printf("-- %s --\n", it.Day)
			continue
		}
		sender := it.Sender
		if it.Own {
			sender = "You"
		}
		fmt.Printf("[%s] %s: %s\n", it.Clock, sender, it.Content)
	}
}

func outputJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
	}
}
