package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to SkinAid CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "skinaid %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: dashboard, onboard, analyze, routine, checker, market, kit, simulate, report, post, consult, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, exit")
			}

		case "register":
			a.runCommand(ctx, cmd, a.Register)
		case "login":
			a.runCommand(ctx, cmd, a.Login)
		case "logout":
			a.runCommand(ctx, cmd, a.Logout)
		case "onboard":
			a.runLoggedIn(ctx, cmd, a.Onboard)
		case "dashboard":
			a.runLoggedIn(ctx, cmd, a.Dashboard)
		case "analyze":
			a.runLoggedIn(ctx, cmd, a.Analyze)
		case "routine":
			a.runLoggedIn(ctx, cmd, a.Routine)
		case "checker":
			a.runLoggedIn(ctx, cmd, a.Checker)
		case "market":
			a.runLoggedIn(ctx, cmd, a.Market)
		case "kit":
			a.runLoggedIn(ctx, cmd, a.Kit)
		case "simulate":
			a.runLoggedIn(ctx, cmd, a.Simulate)
		case "report":
			a.runLoggedIn(ctx, cmd, a.Report)
		case "post":
			a.runLoggedIn(ctx, cmd, a.Post)
		case "consult":
			a.runLoggedIn(ctx, cmd, a.Consult)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) runCommand(ctx context.Context, name string, fn func(ctx context.Context) error) {
	if err := fn(ctx); err != nil {
		a.logger.Error(ctx, "command failed", "command", name, "error", err.Error())
		fmt.Fprintln(a.out, "Error:", err)
	}
}

func (a *App) runLoggedIn(ctx context.Context, name string, fn func(ctx context.Context) error) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first.")
		return
	}
	a.runCommand(ctx, name, fn)
}
