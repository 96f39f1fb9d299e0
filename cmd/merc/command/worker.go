package command

import (
	"context"
	"fmt"

	"github.com/dungeonmerc/go-merc/internal/commands"
	"github.com/dungeonmerc/go-merc/internal/driver"
	"github.com/dungeonmerc/go-merc/internal/game"
	"github.com/dungeonmerc/go-merc/internal/listener"
	"github.com/dungeonmerc/go-merc/internal/messaging"
	"github.com/dungeonmerc/go-merc/internal/session"
	service "github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Create the message broker
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	// Build the world, from room assets when configured, otherwise the
	// built-in starting area
	startRoom := cfg.World.startingRoom()
	world, err := cfg.Storage.BuildWorld(startRoom)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	// Create the account manager
	accounts, err := cfg.Storage.BuildAccountManager()
	if err != nil {
		return nil, fmt.Errorf("creating account manager: %w", err)
	}

	// Create the command handler
	publisher := messaging.NewPublisher(natsServer, world)
	handler, err := buildCommandHandler(world, publisher)
	if err != nil {
		return nil, fmt.Errorf("creating command handler: %w", err)
	}

	// Create the session registry
	registry := session.NewManager(world, handler, accounts, natsServer, startRoom, cfg.World.Motd)
	cm := listener.NewConnectionManager(registry)

	// Create listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	// Setup the driver
	var driverOpts []driver.DriverOpt
	tick, err := cfg.tickInterval()
	if err != nil {
		return nil, fmt.Errorf("parsing tick_interval: %w", err)
	}
	if tick > 0 {
		driverOpts = append(driverOpts, driver.WithTickLength(tick))
	}

	drv := driver.NewDriver([]driver.Manager{
		registry,
		driver.ManagerFunc(func(ctx context.Context) error {
			world.Tick()
			return nil
		}),
	}, driverOpts...)

	// Create a worker list
	return service.WorkerList{
		"nats":      natsServer,
		"driver":    drv,
		"listeners": &listeners,
	}, nil
}

func buildCommandHandler(world *game.World, publisher *messaging.Publisher) (*commands.Handler, error) {
	handler := commands.NewHandler()

	factories := []commands.HandlerFactory{
		commands.NewLookHandlerFactory(world, publisher),
		commands.NewMoveHandlerFactory(world, publisher),
		commands.NewPlayersHandlerFactory(world, publisher),
		commands.NewSayHandlerFactory(world, publisher),
		commands.NewWhoHandlerFactory(world, publisher),
		commands.NewScoreHandlerFactory(world, publisher),
		commands.NewInventoryHandlerFactory(world, publisher),
		commands.NewUseHandlerFactory(world, publisher),
		commands.NewQuitHandlerFactory(world),
		commands.NewHelpHandlerFactory(handler, publisher),
	}

	for _, f := range factories {
		if err := handler.Register(f); err != nil {
			return nil, err
		}
	}

	return handler, nil
}
