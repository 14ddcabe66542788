package server

// Server owns the listeners of one catalog instance.
type Server interface {
	// RunServer serves until a termination signal arrives.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
