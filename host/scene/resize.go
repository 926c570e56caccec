package scene

// ResizeHandler keeps the renderer output and camera projection in step
// with the viewport.
type ResizeHandler struct {
	state    *RenderState
	renderer Renderer
	camera   Camera
}

func NewResizeHandler(scene *Scene) *ResizeHandler {
	return &ResizeHandler{
		state:    scene.State,
		renderer: scene.Renderer,
		camera:   scene.Camera,
	}
}

// Resize applies a new viewport size in pixels. Empty viewports, such as a
// minimized window, are ignored.
func (h *ResizeHandler) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	h.state.Width = width
	h.state.Height = height
	h.renderer.SetSize(width, height)
	h.camera.SetAspect(float64(width) / float64(height))
	h.camera.UpdateProjection()
}
