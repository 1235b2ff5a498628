package render

// Renderer writes a use case result in the configured output format
type Renderer[T any] interface {
	Render(result T) error
}
