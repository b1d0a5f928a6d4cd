// Command terminal runs a hot-seat match in the terminal.
//
// Cells are chosen with 1-9, "r" starts a new round and "q" quits.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tresenraya-backend/internal/config"
	"github.com/rocketscienceinc/tresenraya-backend/internal/entity"
	"github.com/rocketscienceinc/tresenraya-backend/internal/presenter"
	"github.com/rocketscienceinc/tresenraya-backend/internal/tictactoe"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml with player identities")
	debug := flag.Bool("debug", false, "log rejected moves to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	roster := entity.DefaultRoster()
	if *configPath != "" {
		roster = config.MustLoad(*configPath).Players.Roster()
	}

	view := presenter.New(roster)
	terminal := presenter.NewTerminal(os.Stdout, view)

	controller := tictactoe.NewGameController(nil)
	controller.Subscribe(terminal.HandleEvent)

	terminal.Render(controller.Match())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		input := strings.TrimSpace(strings.ToLower(scanner.Text()))

		switch input {
		case "q":
			return
		case "r":
			controller.Reset()
			continue
		case "":
			continue
		}

		cell, err := strconv.Atoi(input)
		if err != nil {
			logger.Debug("ignored input", "input", input)
			continue
		}

		if err = controller.MakeTurn(cell - 1); err != nil {
			logger.Debug("move rejected", "cell", cell, "error", err)
		}
	}
}
