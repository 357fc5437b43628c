package core

// Entity is a unique identifier for an entity
// Zero is never handed out and doubles as "no entity"
type Entity uint64

// NoEntity is the zero entity handle
const NoEntity Entity = 0
