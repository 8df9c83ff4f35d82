package contract

// State is the host key/value storage the engine persists everything in.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}
