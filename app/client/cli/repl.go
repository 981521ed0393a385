package cli

import (
	"context"
	"strings"

	"kokoro-diary/app/client/nav"

	"go.uber.org/zap"
)

// Run starts the read-eval-print loop. Every view change is dispatched
// through the router so the navigation guard applies uniformly; handler
// errors are logged and the loop keeps going.
func (a *App) Run(ctx context.Context) {
	authenticated, _ := a.session.Current()
	if authenticated {
		a.dispatch(ctx, func() error { return a.router.Go(ctx, nav.ViewHome) })
	} else {
		a.printf("Welcome to kokoro-diary. Type 'login' or 'register' to begin.")
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "home":
			a.dispatch(ctx, func() error { return a.router.Go(ctx, nav.ViewHome) })

		case "login":
			a.dispatch(ctx, func() error { return a.router.Go(ctx, nav.ViewLogin) })

		case "register":
			a.dispatch(ctx, func() error { return a.router.Go(ctx, nav.ViewRegister) })

		case "l", "list":
			a.dispatch(ctx, func() error { return a.router.Go(ctx, nav.ViewDiaries) })

		case "show":
			a.dispatch(ctx, func() error { return a.router.Go(ctx, nav.ViewDiaryDetail, args...) })

		case "new":
			a.dispatch(ctx, func() error { return a.router.Go(ctx, nav.ViewDiaryNew) })

		case "edit":
			if len(args) == 0 {
				a.printf("Usage: edit <id>")
				continue
			}
			a.dispatch(ctx, func() error { return a.editDiary(ctx, args[0]) })

		case "delete":
			if len(args) == 0 {
				a.printf("Usage: delete <id>")
				continue
			}
			a.dispatch(ctx, func() error { return a.deleteDiary(ctx, args[0]) })

		case "logout":
			a.dispatch(ctx, func() error { return a.logout(ctx) })

		case "exit", "quit":
			a.printf("Bye!")
			return

		default:
			a.printf("Unknown command: %s", cmd)
		}
	}
}

func (a *App) dispatch(ctx context.Context, fn func() error) {
	if err := fn(); err != nil {
		a.l.Error("command failed", zap.Error(err))
		a.printf("Something went wrong: %v", err)
	}
}

func (a *App) printHelp() {
	if authenticated, _ := a.session.Current(); authenticated {
		a.printf("Available commands: home, (l)ist, show <id>, new, edit <id>, delete <id>, logout, exit")
	} else {
		a.printf("Available commands: login, register, exit")
	}
}
