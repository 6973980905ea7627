package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	beforeCommand(cmd string)

	Home(ctx context.Context) error
	Products(ctx context.Context, args []string) error
	Product(ctx context.Context, id string) error
	Like(ctx context.Context, id string) error
	Order(ctx context.Context, id string) error
	Review(ctx context.Context, id string) error
	Contact(ctx context.Context) error
	Call(ctx context.Context) error
	Brands(ctx context.Context) error
	Ads(ctx context.Context, args []string) error

	Login(ctx context.Context) error
	Profile(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: home, products [tab] [search], product <id>, like <id>, order <id>, review <id>, contact, call, brands, ads [n], login, exit"
	helpSigned = "Available commands: home, products [tab] [search], product <id>, like <id>, order <id>, review <id>, contact, call, brands, ads [n], profile, whoami, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the storefront.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Commands taking a product id print their
// usage when it is missing. The loop exits on EOF, when ctx is cancelled,
// or when the user types "exit" or "quit".
//
// Errors returned by command handlers are not printed here; handlers
// notify the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("hari %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]
		a.beforeCommand(cmd)

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSigned)
			} else {
				printlnFn(helpGuest)
			}

		case "home":
			_ = a.Home(ctx)

		case "products":
			_ = a.Products(ctx, args)

		case "product", "like", "order", "review":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			switch cmd {
			case "product":
				_ = a.Product(ctx, args[0])
			case "like":
				_ = a.Like(ctx, args[0])
			case "order":
				_ = a.Order(ctx, args[0])
			case "review":
				_ = a.Review(ctx, args[0])
			}

		case "contact":
			_ = a.Contact(ctx)

		case "call":
			_ = a.Call(ctx)

		case "brands":
			_ = a.Brands(ctx)

		case "ads":
			_ = a.Ads(ctx, args)

		case "login":
			_ = a.Login(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
