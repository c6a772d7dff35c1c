package exec_commander

// Commander runs external tools on behalf of a platform backend.
type Commander interface {
	Output(name string, args ...string) ([]byte, error)
	Run(name string, args ...string) error
	Available(name string) bool
}
