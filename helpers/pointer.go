package helpers

import "reflect"

// StrPanic panics with panicMessage if s is empty (only s == "" is checked, no TrimSpace); otherwise returns s.
// Used for fail-fast validation of required constructor strings (binding address, redis key prefix).
//
// Parameters: s - string to check; panicMessage - value passed to panic.
//
// Returns: s unchanged when non-empty.
//
// Called from service.NewServiceBinding and adapters/redis.NewUserStore.
func StrPanic(s string, panicMessage string) string {
	if s == "" {
		panic(panicMessage)
	}
	return s
}

// NilPanic panics with panicMessage if v is nil (nil interface, pointer, slice, map, chan or func, checked via reflect); otherwise returns v as T.
//
// Parameters: v - dependency to check; panicMessage - panic value (convention: "<pkg>.<file>: <name> is required").
//
// Returns: v unchanged when non-nil.
//
// Called from every constructor that takes a required dependency: service.NewClientFactory, service.NewServiceBinding,
// service.NewUserServiceClient, service.NewUserCallSite, handlers.NewUserServer, helpers.NewHeaderProcessorChain and others.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// isNil reports whether v is nil or a typed nil pointer/slice/map/chan/func/interface.
//
// Called only from NilPanic.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
