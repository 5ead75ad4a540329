// Package main is the user app: it binds the user service client (transport builder, client factory and service
// binding), then runs the create/get call sites named on the command line and renders the resulting user as JSON
// on stdout.
//
// Usage:
//
//	userapp                 create the user "tony"
//	userapp create <name>   create a user
//	userapp get [id]        get a user; an empty id asks the service for its first user
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"myuserapp/auth"
	"myuserapp/domain"
	"myuserapp/helpers"
	"myuserapp/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const tokenTTL = time.Hour

// command is one call-site action parsed from the command line.
type command struct {
	op  string
	arg string
}

// parseCommand maps the command line to a call-site action. No arguments reproduce the app's default action.
func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{op: "create", arg: "tony"}, nil
	}
	switch args[0] {
	case "create":
		if len(args) != 2 {
			return command{}, fmt.Errorf("usage: create <name>")
		}
		return command{op: "create", arg: args[1]}, nil
	case "get":
		if len(args) > 2 {
			return command{}, fmt.Errorf("usage: get [id]")
		}
		c := command{op: "get"}
		if len(args) == 2 {
			c.arg = args[1]
		}
		return c, nil
	default:
		return command{}, fmt.Errorf("unknown command %q (want create or get)", args[0])
	}
}

// levelOption maps a LOG_LEVEL value to the go-kit level filter.
func levelOption(name string) (level.Option, error) {
	switch strings.ToLower(name) {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("%s must be debug|info|warn|error, got %q", envLogLevel, name)
	}
}

// bearerToken returns the token sent with every call: AuthToken when set, otherwise a token signed with AuthSecret,
// otherwise "" (no authorization header).
func bearerToken(cfg *Config, now time.Time) (string, error) {
	if cfg.AuthToken != "" || len(cfg.AuthSecret) == 0 {
		return cfg.AuthToken, nil
	}
	return auth.CreateToken(cfg.AuthSubject, now.Add(tokenTTL), now, cfg.AuthSecret)
}

// Exit codes of the user app.
const (
	exitOK         = 0
	exitCallFailed = 1
	exitUsage      = 2
)

// exitCode maps the outcome of the command to the process exit code: an address or argument the call could not be
// built from is a usage error; any other failure is a failed call.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case domain.IsInvalidAddress(err), domain.IsInvalidArgument(err):
		return exitUsage
	default:
		return exitCallFailed
	}
}

// run loads the configuration, binds the user service and runs the command in args. The state is rendered as JSON to
// stdout on every applied change.
//
// Parameters: ctx - canceled on SIGINT/SIGTERM; args - command line without the program name; stdout - render target; logger - base logger.
//
// Returns: process exit code (exitOK, exitCallFailed or exitUsage).
//
// Called from main and tests.
func run(ctx context.Context, args []string, stdout io.Writer, logger log.Logger) int {
	cfg, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		return exitUsage
	}
	lvl, _ := levelOption(cfg.LogLevel)
	logger = level.NewFilter(logger, lvl)

	cmd, err := parseCommand(args)
	if err != nil {
		level.Error(logger).Log("msg", "Invalid command line", "err", err)
		return exitUsage
	}

	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"user_service_address", cfg.ServiceAddress,
		"call_timeout", cfg.CallTimeout,
		"auth", cfg.AuthToken != "" || len(cfg.AuthSecret) > 0,
	)

	token, err := bearerToken(cfg, time.Now().UTC())
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create auth token", "err", err)
		return exitCallFailed
	}

	var factory *service.ClientFactory
	{
		headers := helpers.NewHeaderProcessorChain(
			helpers.NewAuthTokenProcessor(token),
			helpers.RequestIDProcessor{},
		)
		factory = service.NewClientFactory(service.NewConnFactory(headers), logger)
	}
	defer factory.Close()

	users, err := service.NewUserServiceBinding(cfg.ServiceAddress, factory, logger).UserService()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to bind user service", "err", err)
		return exitCode(err)
	}

	render := json.NewEncoder(stdout)
	callSite := service.NewUserCallSite(users, cfg.CallTimeout, logger, service.WithOnChange(func(u domain.User) {
		if err := render.Encode(u); err != nil {
			level.Error(logger).Log("msg", "render", "err", err)
		}
	}))

	var result <-chan service.CallResult
	switch cmd.op {
	case "create":
		result = callSite.TriggerCreateUser(ctx, cmd.arg)
	case "get":
		result = callSite.TriggerGetUser(ctx, cmd.arg)
	}

	var r service.CallResult
	select {
	case r = <-result:
	case <-ctx.Done():
		level.Info(logger).Log("msg", "Interrupted, canceling call")
		callSite.Cancel()
		r = <-result
	}
	if r.Err != nil {
		level.Info(logger).Log("msg", "Call finished without update", "op", cmd.op, "state", fmt.Sprintf("%+v", callSite.State()))
	}
	return exitCode(r.Err)
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, logger)
	stop()
	os.Exit(code)
}
