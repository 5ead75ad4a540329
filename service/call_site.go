package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"myuserapp/domain"
	"myuserapp/helpers"
	"myuserapp/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	opCreateUser = "CreateUser"
	opGetUser    = "GetUser"
)

// CallResult is the outcome of one call-site request. Applied is true when User became the call site's state;
// a successful response of a request that is no longer the latest is returned with Applied false.
type CallResult struct {
	RequestID uint64
	User      domain.User
	Applied   bool
	Err       error
}

// CallSiteOption configures a UserCallSite.
type CallSiteOption func(*UserCallSite)

// WithOnChange registers fn to be called with the new state every time a response is applied. fn runs while the
// call site's lock is held and must not call back into the call site.
func WithOnChange(fn func(domain.User)) CallSiteOption {
	return func(c *UserCallSite) {
		c.onChange = fn
	}
}

// UserCallSite runs CreateUser and GetUser on behalf of user events and owns the displayed user state. Every
// request gets a new monotonically increasing id; a response updates the state only when its request is the
// latest one issued, so the last triggered request wins regardless of network arrival order. Failures (including
// a response without a user) are logged and returned and leave the state unchanged.
type UserCallSite struct {
	users    interfaces.UserService
	timeout  time.Duration
	logger   log.Logger
	onChange func(domain.User)

	mu       sync.Mutex
	state    domain.User
	lastID   uint64
	inflight map[uint64]context.CancelFunc
}

// NewUserCallSite creates a call site over users. Panics on nil users or logger.
//
// Parameters: users - typed user service client (UserServiceClient in production, mock in tests); timeout - per-call deadline (0 disables); logger - logger; opts - WithOnChange.
//
// Returns: *UserCallSite with the zero User as state.
//
// Called from cmd/userapp after the binding produced the user client.
func NewUserCallSite(users interfaces.UserService, timeout time.Duration, logger log.Logger, opts ...CallSiteOption) *UserCallSite {
	c := &UserCallSite{
		users:    helpers.NilPanic(users, "service.call_site.go: users is required"),
		timeout:  timeout,
		logger:   log.With(helpers.NilPanic(logger, "service.call_site.go: logger is required"), "component", "call_site"),
		inflight: make(map[uint64]context.CancelFunc),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the currently displayed user (zero until a response is applied).
func (c *UserCallSite) State() domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CreateUser sends a creation request carrying only name and waits for it.
//
// Returns: (User with non-empty ID, nil) on success; (domain.User{}, ClientError) CodeInvalidArgument for a blank name, CodeEmptyResponse when the response has no user, CodeTransportFailure on RPC failure.
func (c *UserCallSite) CreateUser(ctx context.Context, name string) (domain.User, error) {
	r := c.createUser(ctx, name)
	return r.User, r.Err
}

// GetUser sends a lookup request carrying id (empty allowed) and waits for it.
//
// Returns: (User, nil) on success; (domain.User{}, ClientError) CodeEmptyResponse when the response has no user, CodeTransportFailure on RPC failure.
func (c *UserCallSite) GetUser(ctx context.Context, id string) (domain.User, error) {
	r := c.getUser(ctx, id)
	return r.User, r.Err
}

// TriggerCreateUser starts CreateUser on its own goroutine, as a user event does, and returns a channel that
// delivers exactly one CallResult.
func (c *UserCallSite) TriggerCreateUser(ctx context.Context, name string) <-chan CallResult {
	return c.trigger(func() CallResult { return c.createUser(ctx, name) })
}

// TriggerGetUser starts GetUser on its own goroutine and returns a channel that delivers exactly one CallResult.
func (c *UserCallSite) TriggerGetUser(ctx context.Context, id string) <-chan CallResult {
	return c.trigger(func() CallResult { return c.getUser(ctx, id) })
}

// Cancel cancels every in-flight request. Their results carry a transport failure and do not change the state.
//
// Called from cmd/userapp on shutdown.
func (c *UserCallSite) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, cancel := range c.inflight {
		cancel()
		delete(c.inflight, id)
	}
}

func (c *UserCallSite) trigger(call func() CallResult) <-chan CallResult {
	out := make(chan CallResult, 1)
	go func() {
		out <- call()
	}()
	return out
}

func (c *UserCallSite) createUser(ctx context.Context, name string) CallResult {
	if strings.TrimSpace(name) == "" {
		err := domain.NewInvalidArgumentError("name is required", nil)
		level.Warn(c.logger).Log("msg", "create user rejected", "err", err)
		return CallResult{Err: err}
	}
	return c.run(ctx, opCreateUser, func(ctx context.Context) (*domain.User, error) {
		return c.users.CreateUser(ctx, name)
	})
}

func (c *UserCallSite) getUser(ctx context.Context, id string) CallResult {
	return c.run(ctx, opGetUser, func(ctx context.Context) (*domain.User, error) {
		return c.users.GetUser(ctx, id)
	})
}

// run issues one request: it registers a new request id, performs call under the call-site deadline and applies a
// populated user when the request is still the latest one.
func (c *UserCallSite) run(ctx context.Context, op string, call func(context.Context) (*domain.User, error)) CallResult {
	id, ctx := c.begin(ctx)
	defer c.end(id)

	logger := log.With(c.logger, "op", op, "request_id", id)
	u, err := call(ctx)
	if err != nil {
		err = asClientError(op, err)
		level.Error(logger).Log("msg", "call failed", "err", err)
		return CallResult{RequestID: id, Err: err}
	}
	if u == nil || u.ID == "" {
		err := domain.NewEmptyResponseError(op+" response has no user", nil)
		level.Warn(logger).Log("msg", "state unchanged", "err", err)
		return CallResult{RequestID: id, Err: err}
	}
	applied := c.apply(id, *u)
	if !applied {
		level.Debug(logger).Log("msg", "stale response dropped", "user_id", u.ID)
	}
	return CallResult{RequestID: id, User: *u, Applied: applied}
}

// begin allocates the next request id and derives the request context: request id for the x-request-id header,
// optional timeout, and a cancel func registered for Cancel.
func (c *UserCallSite) begin(parent context.Context) (uint64, context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastID++
	id := c.lastID

	ctx := helpers.WithRequestID(parent, id)
	var cancel context.CancelFunc
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	c.inflight[id] = cancel
	return id, ctx
}

func (c *UserCallSite) end(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cancel, ok := c.inflight[id]; ok {
		cancel()
		delete(c.inflight, id)
	}
}

// apply stores u as the state when id is the latest request id. Returns whether the state changed.
func (c *UserCallSite) apply(id uint64, u domain.User) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id != c.lastID {
		return false
	}
	c.state = u
	if c.onChange != nil {
		c.onChange(u)
	}
	return true
}
