package ports

// Actor is the authenticated identity acting on a request, as resolved by the
// authentication middleware from the token claims. Services receive it
// explicitly instead of digging it out of ambient request state.
type Actor struct {
	ID   int64
	Role string
}
