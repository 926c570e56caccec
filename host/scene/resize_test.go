package scene

import "testing"

func TestResize(t *testing.T) {
	provider, scene := newTestScene(t, 1)
	handler := NewResizeHandler(scene)

	handler.Resize(1600, 900)
	if provider.renderer.width != 1600 || provider.renderer.height != 900 {
		t.Fatalf("renderer size %dx%d", provider.renderer.width, provider.renderer.height)
	}
	if provider.camera.aspect != 1600.0/900.0 {
		t.Fatalf("aspect %v", provider.camera.aspect)
	}
	if provider.camera.projections != 1 {
		t.Fatalf("projection updated %d times", provider.camera.projections)
	}
	if scene.State.Width != 1600 || scene.State.Height != 900 {
		t.Fatalf("state size %dx%d", scene.State.Width, scene.State.Height)
	}
}

func TestResizeIdempotent(t *testing.T) {
	once, onceScene := newTestScene(t, 1)
	NewResizeHandler(onceScene).Resize(800, 600)

	twice, twiceScene := newTestScene(t, 1)
	handler := NewResizeHandler(twiceScene)
	handler.Resize(800, 600)
	handler.Resize(800, 600)

	if once.renderer.width != twice.renderer.width || once.renderer.height != twice.renderer.height {
		t.Fatal("renderer size differs")
	}
	if once.camera.aspect != twice.camera.aspect {
		t.Fatalf("aspect differs: %v vs %v", once.camera.aspect, twice.camera.aspect)
	}
}

func TestResizeIgnoresEmptyViewport(t *testing.T) {
	provider, scene := newTestScene(t, 1)
	handler := NewResizeHandler(scene)
	handler.Resize(640, 480)
	handler.Resize(0, 0)
	handler.Resize(640, -1)
	if provider.renderer.width != 640 || provider.renderer.height != 480 {
		t.Fatalf("renderer size %dx%d", provider.renderer.width, provider.renderer.height)
	}
	if provider.camera.projections != 1 {
		t.Fatalf("projection updated %d times", provider.camera.projections)
	}
}
