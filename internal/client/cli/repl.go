package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Create(ctx context.Context) error
	Like(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
}

// runREPL reads commands from scanner until EOF, "exit" or "quit", or until
// ctx is cancelled.
//
//	Not logged in:
//	  help, register, login, (l)ist, like <n>, exit
//
//	Logged in:
//	  help, (l)ist, create, like <n>, delete <n>, logout, exit
//
// Errors returned by commands are shown through notifications, so they are
// ignored here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "blogs %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: (l)ist, create, like <n>, delete <n>, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, (l)ist, like <n>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "create":
			if !a.isLoggedIn() {
				fmt.Fprintln(w, "log in first")
				continue
			}
			_ = a.Create(ctx)

		case "like":
			if arg == "" {
				fmt.Fprintln(w, "Usage: like <n>")
				continue
			}
			_ = a.Like(ctx, arg)

		case "delete":
			if arg == "" {
				fmt.Fprintln(w, "Usage: delete <n>")
				continue
			}
			_ = a.Delete(ctx, arg)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
