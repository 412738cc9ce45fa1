// Command simnet runs the guessing-game contract on the local chain
// emulator so rounds can be played end to end without a deployment.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/decred/slog"
	"github.com/pterm/pterm"

	"numberhunt/chainsim"
	"numberhunt/sdk"
)

type config struct {
	DBPath  string `env:"SIMNET_DB" envDefault:"simnet.db"`
	Funding uint64 `env:"SIMNET_FUNDING" envDefault:"100000000"`
	Account string `env:"SIMNET_ACCOUNT" envDefault:"hive:player"`
	Debug   bool   `env:"SIMNET_DEBUG"`
}

func main() {
	if err := run(); err != nil {
		pterm.Error.Printfln("simnet: %v", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	log := slog.NewBackend(os.Stderr).Logger("SIMN")
	if cfg.Debug {
		log.SetLevel(slog.LevelTrace)
	}

	chain, err := chainsim.Open(cfg.DBPath, log)
	if err != nil {
		return err
	}
	defer chain.Close()

	sender := sdk.Address(cfg.Account)
	if err := chain.Fund(sender, sdk.AssetHive, cfg.Funding); err != nil {
		return err
	}

	pterm.DefaultHeader.Println("number jackpot simnet")
	pterm.Info.Printfln("db %s, height %d, acting as %s", cfg.DBPath, chain.Height(), sender)
	pterm.Info.Println("type 'help' for commands")

	for {
		line, _ := pterm.DefaultInteractiveTextInput.Show(string(sender))
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if fields[0] == "as" && len(fields) == 2 {
			sender = sdk.Address(fields[1])
			pterm.Info.Printfln("now acting as %s", sender)
			continue
		}
		if err := dispatch(chain, sender, fields); err != nil {
			var callErr *chainsim.CallError
			if errors.As(err, &callErr) {
				pterm.Error.Printfln("abort %d: %s", callErr.Code, callErr.Msg)
			} else {
				pterm.Error.Printfln("%v", err)
			}
		}
	}
}

func dispatch(chain *chainsim.Chain, sender sdk.Address, fields []string) error {
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		printHelp()
		return nil

	case "fund":
		if len(args) != 2 {
			return fmt.Errorf("usage: fund <account> <amount>")
		}
		var amount uint64
		if _, err := fmt.Sscanf(args[1], "%d", &amount); err != nil {
			return fmt.Errorf("bad amount %q", args[1])
		}
		if err := chain.Fund(sdk.Address(args[0]), sdk.AssetHive, amount); err != nil {
			return err
		}
		pterm.Success.Printfln("funded %s with %d hive", args[0], amount)
		return nil

	case "balance":
		account := sender
		if len(args) == 1 {
			account = sdk.Address(args[0])
		}
		bal, err := chain.Balance(account, sdk.AssetHive)
		if err != nil {
			return err
		}
		pterm.Info.Printfln("%s holds %d hive", account, bal)
		return nil

	case "create":
		if len(args) < 3 || len(args) > 4 {
			return fmt.Errorf("usage: create <min> <max> <fee> [asset]")
		}
		res, err := chain.Call(sender, "g_create", strings.Join(args, "|"))
		if err != nil {
			return err
		}
		pterm.Success.Printfln("created game %s", *res)
		return nil

	case "guess":
		if len(args) != 2 {
			return fmt.Errorf("usage: guess <gameId> <number>")
		}
		res, err := chain.Call(sender, "g_guess", args[0]+"|"+args[1])
		if err != nil {
			return err
		}
		if *res == "1" {
			pterm.Success.Println("you hit the secret, pool paid out!")
		} else {
			pterm.Info.Println("no hit, fee added to the pool")
		}
		return nil

	case "info":
		if len(args) != 1 {
			return fmt.Errorf("usage: info <gameId>")
		}
		res, err := chain.Call(sender, "g_get", args[0])
		if err != nil {
			return err
		}
		if res == nil {
			pterm.Warning.Println("no such game")
			return nil
		}
		printGame(*res)
		return nil

	case "pool", "winner", "count", "active", "total", "guesses", "attempt":
		return query(chain, sender, cmd, args)
	}
	return fmt.Errorf("unknown command %q, try 'help'", cmd)
}

func query(chain *chainsim.Chain, sender sdk.Address, cmd string, args []string) error {
	entry := map[string]string{
		"pool":    "g_pool",
		"winner":  "g_winner",
		"count":   "g_guesscount",
		"active":  "g_active",
		"total":   "g_total",
		"guesses": "g_playerguesses",
		"attempt": "g_attempt",
	}[cmd]

	payload := strings.Join(args, "|")
	res, err := chain.Call(sender, entry, payload)
	if err != nil {
		return err
	}
	if res == nil || *res == "" {
		pterm.Warning.Println("(absent)")
		return nil
	}
	pterm.Info.Println(*res)
	return nil
}

func printGame(record string) {
	fields := strings.Split(record, "|")
	if len(fields) != 12 {
		pterm.Info.Println(record)
		return
	}
	status := "active"
	if fields[8] == "2" {
		status = "won"
	}
	rows := pterm.TableData{
		{"id", fields[0]},
		{"creator", fields[1]},
		{"range", fields[2] + " to " + fields[3]},
		{"fee", fields[4] + " " + fields[5]},
		{"pool", fields[6]},
		{"guesses", fields[7]},
		{"status", status},
		{"winner", fields[9]},
		{"created at", fields[10]},
		{"secret", fields[11]},
	}
	_ = pterm.DefaultTable.WithData(rows).Render()
}

func printHelp() {
	pterm.Info.Println(strings.TrimSpace(`
as <account>                switch the acting account
fund <account> <amount>     credit hive from the faucet
balance [account]           show a balance
create <min> <max> <fee>    open a game, optional asset arg (hive/hbd)
guess <gameId> <number>     submit a paid guess
info <gameId>               full game record
pool|winner|count|active <gameId>
guesses <gameId> <player>   one player's guesses
attempt <gameId> <n>        the nth guess across all players
total                       number of games
quit`))
}
