package service

import (
	"sync"

	"myuserapp/adapters/userpb"
	"myuserapp/domain"
	"myuserapp/helpers"
	"myuserapp/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// ServiceBinding is the application-wide accessor of the client of one service description. It builds the
// transport of its address once and asks the factory for the client once; later calls return the same
// instance. Errors are not memoized. Each service gets its own binding.
type ServiceBinding struct {
	desc    protoreflect.ServiceDescriptor
	address string
	factory *ClientFactory
	logger  log.Logger

	mu        sync.Mutex
	transport domain.Transport
	client    interfaces.Client
}

// NewServiceBinding creates a binding of desc to the service at address. Panics on nil desc, factory, logger or empty address.
//
// Parameters: desc - service description; address - base address passed to BuildTransport (validated lazily by Client); factory - shared client factory; logger - logger.
//
// Returns: *ServiceBinding.
//
// Called from NewUserServiceBinding.
func NewServiceBinding(desc protoreflect.ServiceDescriptor, address string, factory *ClientFactory, logger log.Logger) *ServiceBinding {
	return &ServiceBinding{
		desc:    helpers.NilPanic(desc, "service.binding.go: desc is required"),
		address: helpers.StrPanic(address, "service.binding.go: address is required"),
		factory: helpers.NilPanic(factory, "service.binding.go: factory is required"),
		logger:  log.With(helpers.NilPanic(logger, "service.binding.go: logger is required"), "component", "binding", "service", desc.FullName()),
	}
}

// Transport returns the memoized transport of the binding's address, building it on first use.
//
// Returns: (domain.Transport, nil); (domain.Transport{}, ClientError CodeInvalidAddress) when the address is invalid.
func (b *ServiceBinding) Transport() (domain.Transport, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.transportLocked()
}

func (b *ServiceBinding) transportLocked() (domain.Transport, error) {
	if !b.transport.IsZero() {
		return b.transport, nil
	}
	t, err := BuildTransport(b.address)
	if err != nil {
		return domain.Transport{}, err
	}
	b.transport = t
	level.Info(b.logger).Log("msg", "transport built", "target", t.Target, "encoding", t.Encoding())
	return t, nil
}

// Client returns the binding's client, building transport and client on first use.
//
// Returns: (interfaces.Client, nil) - the same instance on every successful call; (nil, error) from BuildTransport or ClientFactory.BuildClient.
//
// Called from UserServiceBinding.UserService and cmd/userapp.
func (b *ServiceBinding) Client() (interfaces.Client, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.client != nil {
		return b.client, nil
	}
	t, err := b.transportLocked()
	if err != nil {
		return nil, err
	}
	c, err := b.factory.BuildClient(b.desc, t)
	if err != nil {
		return nil, err
	}
	b.client = c
	return c, nil
}

// UserServiceBinding is the ServiceBinding fixed to api.v1.UserService.
type UserServiceBinding struct {
	*ServiceBinding
}

// NewUserServiceBinding creates the binding of the user service at address.
//
// Called from cmd/userapp at startup.
func NewUserServiceBinding(address string, factory *ClientFactory, logger log.Logger) *UserServiceBinding {
	return &UserServiceBinding{ServiceBinding: NewServiceBinding(userpb.UserService, address, factory, logger)}
}

// UserService returns the typed user client over the bound client.
//
// Returns: (*UserServiceClient, nil); (nil, error) from Client.
//
// Called from cmd/userapp before building the call site.
func (b *UserServiceBinding) UserService() (*UserServiceClient, error) {
	c, err := b.Client()
	if err != nil {
		return nil, err
	}
	return NewUserServiceClient(c)
}
