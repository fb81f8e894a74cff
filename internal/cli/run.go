package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"selectkit/internal/config"
	"selectkit/internal/eventbus"
	"selectkit/internal/logging"
	"selectkit/internal/ui"
)

// loadConfig reads the config file and applies the command line
// overrides.
func loadConfig(opts rootOptions) (*config.Config, error) {
	cfg, err := config.NewConfigService(opts.configPath).Load()
	if err != nil {
		return nil, err
	}
	if opts.mode != "" {
		cfg.Selection.Mode = opts.mode
	}
	if opts.orientation != "" {
		cfg.List.Orientation = opts.orientation
	}
	if opts.logFile != "" {
		cfg.Logging.File = opts.logFile
	}
	if opts.debug {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, opts rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, closeLog, err := logging.Init(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer closeLog()

	bus := eventbus.New(logging.Component(log, "eventbus"))
	eventChan := make(chan eventbus.DomainEvent, 100)
	defer func() {
		bus.Close()
		close(eventChan)
	}()
	logEvents(bus, log)

	model, err := ui.NewModel(bus, cfg, log)
	if err != nil {
		return err
	}
	model.SetConfigService(config.NewConfigServiceWithBus(opts.configPath, bus))

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithInput(cmd.InOrStdin()),
	)

	// Set up event forwarding to UI
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn().Str("event", string(e.Type())).Msg("event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventConfigSaved, forward)
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	log.Info().Str("config", opts.configPath).Str("mode", cfg.Selection.Mode).Msg("starting")
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	if opts.print {
		if m, ok := final.(*ui.Model); ok {
			for _, item := range m.List().Selection().SortedSelection() {
				fmt.Fprintln(cmd.OutOrStdout(), item.Label)
			}
		}
	}
	return nil
}

// logEvents records domain events in the log file.
func logEvents(bus eventbus.EventBus, log zerolog.Logger) {
	log = logging.Component(log, "events")
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SelectionChangedEvent)
		log.Debug().
			Str("source", ev.Selection.Source).
			Str("mode", ev.Selection.Mode).
			Str("context", ev.Selection.Context).
			Strs("labels", ev.Selection.Labels).
			Str("lead", ev.Selection.Lead).
			Msg("selection changed")
	})
	bus.Subscribe(eventbus.EventSelectedChanged, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SelectedChangedEvent)
		log.Info().Str("source", ev.Source).Str("old", ev.Old).Str("new", ev.New).Msg("selected item changed")
	})
	bus.Subscribe(eventbus.EventModeChanged, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ModeChangedEvent)
		log.Info().Str("source", ev.Source).Str("mode", ev.Mode).Msg("mode changed")
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ErrorEvent)
		log.Warn().Err(ev.Err).Msg(ev.Message)
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		log.Info().Str("path", e.(eventbus.ConfigSavedEvent).Path).Msg("config saved")
	})
}
