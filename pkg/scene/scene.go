package scene

import (
	"fmt"

	"github.com/agourlay/ray-tracer/pkg/renderer"
	"github.com/agourlay/ray-tracer/pkg/world"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World  *world.World
	Camera *renderer.Camera
}

// SceneInfo represents an available scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // UI display name
	Description string `json:"description"` // Optional description
}

// Names returns the available scene names in alphabetical order.
func Names() []string {
	return []string{"demo", "patterns"}
}

// ListScenes returns the available scenes with their metadata.
func ListScenes() []SceneInfo {
	return []SceneInfo{
		{
			ID:          "demo",
			Name:        "Demo",
			Description: "Three spheres in a room built from flattened spheres",
		},
		{
			ID:          "patterns",
			Name:        "Patterns",
			Description: "Patterned spheres over a checkered plane floor",
		},
	}
}

// Build constructs the named scene sized for the requested image dimensions.
func Build(name string, width, height int) (*Scene, error) {
	switch name {
	case "demo":
		return Demo(width, height), nil
	case "patterns":
		return Patterns(width, height), nil
	default:
		return nil, fmt.Errorf("Unknown scene: %s", name)
	}
}
