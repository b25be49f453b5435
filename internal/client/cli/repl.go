package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	refreshAuth()

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error

	List(ctx context.Context) error
	Next(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Show(ctx context.Context, id int) error
	Own(ctx context.Context, id int) error
	Unown(ctx context.Context, id int) error
	Makers(ctx context.Context) error

	Collection(ctx context.Context) error
	Upload(ctx context.Context, ownershipID int, ref string) error

	Groups(ctx context.Context) error
	Group(ctx context.Context, id int) error
	User(ctx context.Context, id int) error
}

const (
	helpSignedOut = "Available commands: register, login, (l)ist, next, search, show, groups, group, makers, user, status, exit"
	helpSignedIn  = "Available commands: (l)ist, next, search, show, own, unown, collection, upload, groups, group, makers, user, status, logout, exit"
)

// runREPL reads commands from scanner and dispatches them to a until input
// ends or the user types "exit" or "quit". Handler errors are printed and
// the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		a.refreshAuth()
		printlnFn(fmt.Sprintf("pk %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "status":
			err = a.Status(ctx)

		case "l", "list":
			err = a.List(ctx)
		case "next":
			err = a.Next(ctx)
		case "search":
			err = a.Search(ctx, strings.Join(args, " "))
		case "show":
			err = withID(args, "show <id>", func(id int) error { return a.Show(ctx, id) })
		case "own":
			err = withID(args, "own <id>", func(id int) error { return a.Own(ctx, id) })
		case "unown":
			err = withID(args, "unown <id>", func(id int) error { return a.Unown(ctx, id) })
		case "makers":
			err = a.Makers(ctx)

		case "collection":
			err = a.Collection(ctx)
		case "upload":
			if len(args) != 2 {
				printlnFn("Usage: upload <ownership-id> <path|url|s3://bucket/key>")
				continue
			}
			err = withID(args[:1], "upload <ownership-id> <path|url|s3://bucket/key>", func(id int) error {
				return a.Upload(ctx, id, args[1])
			})

		case "groups":
			err = a.Groups(ctx)
		case "group":
			err = withID(args, "group <id>", func(id int) error { return a.Group(ctx, id) })
		case "user":
			err = withID(args, "user <id>", func(id int) error { return a.User(ctx, id) })

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}

// withID parses the single numeric argument of a command, printing usage
// when it is missing or malformed.
func withID(args []string, usage string, fn func(id int) error) error {
	if len(args) != 1 {
		printlnFn("Usage:", usage)
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		printlnFn("Usage:", usage)
		return nil
	}
	return fn(id)
}
