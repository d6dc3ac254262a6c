// Package graphics provides tests for the Ebitengine backend without requiring a display
package graphics

import (
	"bytes"
	"errors"
	"testing"
)

// MockEbitengineBackend simulates the behavior of EbitengineBackend for testing rendering failures
type MockEbitengineBackend struct {
	initialized     bool
	config          Config
	createWindowErr error
	game            *MockGame
}

type MockGame struct {
	frameBuffer    []byte
	updateCalled   bool
	renderCalled   bool
	emulatorUpdate func() error
}

type MockWindow struct {
	backend     *MockEbitengineBackend
	shouldClose bool
	game        *MockGame
	renderError error
}

func (m *MockEbitengineBackend) Initialize(config Config) error {
	if m.initialized {
		return errors.New("backend already initialized")
	}
	m.config = config
	m.initialized = true
	return nil
}

func (m *MockEbitengineBackend) CreateWindow(title string, width, height int) (Window, error) {
	if !m.initialized {
		return nil, errors.New("backend not initialized")
	}
	if m.createWindowErr != nil {
		return nil, m.createWindowErr
	}

	game := &MockGame{}
	m.game = game

	return &MockWindow{
		backend: m,
		game:    game,
	}, nil
}

func (m *MockEbitengineBackend) Cleanup() error {
	m.initialized = false
	return nil
}

func (m *MockEbitengineBackend) IsHeadless() bool {
	return m.config.Headless
}

func (m *MockEbitengineBackend) GetName() string {
	return "MockEbitengine"
}

func (w *MockWindow) SetTitle(title string) {}

func (w *MockWindow) GetSize() (width, height int) {
	return 800, 600
}

func (w *MockWindow) ShouldClose() bool {
	return w.shouldClose
}

func (w *MockWindow) SwapBuffers() {}

func (w *MockWindow) PollEvents() []InputEvent {
	return nil
}

func (w *MockWindow) RenderFrame(frameBuffer []byte) error {
	if w.renderError != nil {
		return w.renderError
	}
	if w.game == nil {
		return errors.New("game not initialized")
	}

	w.game.frameBuffer = append(w.game.frameBuffer[:0], frameBuffer...)
	w.game.renderCalled = true
	return nil
}

func (w *MockWindow) Cleanup() error {
	w.shouldClose = true
	return nil
}

func (g *MockGame) Update() error {
	g.updateCalled = true
	if g.emulatorUpdate != nil {
		return g.emulatorUpdate()
	}
	return nil
}

// solidFrame builds a FrameBytes-long RGBA buffer where every pixel is (r,g,b,255).
func solidFrame(r, g, b byte) []byte {
	buf := make([]byte, FrameBytes)
	for i := 0; i < FrameBytes; i += 4 {
		buf[i], buf[i+1], buf[i+2], buf[i+3] = r, g, b, 255
	}
	return buf
}

func TestRenderingPipeline_MockBackend_FailsWithoutRenderCalls(t *testing.T) {
	backend := &MockEbitengineBackend{}

	if _, err := backend.CreateWindow("Test", 800, 600); err == nil {
		t.Fatal("Expected error when creating window on uninitialized backend")
	}

	config := Config{WindowTitle: "Test", Headless: false}
	if err := backend.Initialize(config); err != nil {
		t.Fatalf("Backend initialization failed: %v", err)
	}

	window, err := backend.CreateWindow("Test", 800, 600)
	if err != nil {
		t.Fatalf("Window creation failed: %v", err)
	}
	mockWindow := window.(*MockWindow)

	if mockWindow.game.renderCalled {
		t.Error("Render should not have been called yet")
	}

	frame := solidFrame(0xFF, 0x00, 0x00)
	if err := window.RenderFrame(frame); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	if !mockWindow.game.renderCalled {
		t.Error("RenderFrame should have been called")
	}
	if !bytes.Equal(mockWindow.game.frameBuffer, frame) {
		t.Error("Frame buffer was not transferred correctly")
	}
}

func TestRenderingPipeline_MockBackend_FailsWithoutEmulatorUpdate(t *testing.T) {
	backend := &MockEbitengineBackend{}
	if err := backend.Initialize(Config{WindowTitle: "Test"}); err != nil {
		t.Fatalf("Backend initialization failed: %v", err)
	}

	window, err := backend.CreateWindow("Test", 800, 600)
	if err != nil {
		t.Fatalf("Window creation failed: %v", err)
	}
	mockWindow := window.(*MockWindow)

	if err := mockWindow.game.Update(); err != nil {
		t.Fatalf("Game update without emulator function should not fail: %v", err)
	}
	if !mockWindow.game.updateCalled {
		t.Error("Game update should have been called")
	}

	updateCallCount := 0
	mockWindow.game.emulatorUpdate = func() error {
		updateCallCount++
		return errors.New("emulator update failed")
	}

	if err := mockWindow.game.Update(); err == nil {
		t.Error("Expected emulator update error to be propagated")
	}
	if updateCallCount != 1 {
		t.Errorf("Expected emulator update to be called once, got %d", updateCallCount)
	}
}

func TestRenderingPipeline_MockBackend_FailsWithBrokenWindow(t *testing.T) {
	brokenWindow := &MockWindow{game: nil}

	err := brokenWindow.RenderFrame(solidFrame(0, 0, 0))
	if err == nil {
		t.Fatal("Expected error when rendering with nil game")
	}
	if err.Error() != "game not initialized" {
		t.Errorf("Expected error message 'game not initialized', got '%s'", err.Error())
	}
}

func TestRenderingPipeline_MockBackend_FrameBufferIntegrity(t *testing.T) {
	backend := &MockEbitengineBackend{}
	if err := backend.Initialize(Config{WindowTitle: "Test"}); err != nil {
		t.Fatalf("Backend initialization failed: %v", err)
	}

	window, err := backend.CreateWindow("Test", 800, 600)
	if err != nil {
		t.Fatalf("Window creation failed: %v", err)
	}
	mockWindow := window.(*MockWindow)

	patterns := [][3]byte{
		{0xFF, 0x00, 0x00}, // Red
		{0x00, 0xFF, 0x00}, // Green
		{0x00, 0x00, 0xFF}, // Blue
		{0xFF, 0xFF, 0xFF}, // White
		{0x00, 0x00, 0x00}, // Black
	}

	for i, p := range patterns {
		frame := solidFrame(p[0], p[1], p[2])
		if err := window.RenderFrame(frame); err != nil {
			t.Fatalf("Frame %d render failed: %v", i, err)
		}
		if !bytes.Equal(mockWindow.game.frameBuffer, frame) {
			t.Errorf("Frame %d: buffer mismatch after render", i)
		}
	}
}

func TestRenderingPipeline_MockBackend_ErrorHandling(t *testing.T) {
	backend := &MockEbitengineBackend{createWindowErr: errors.New("window creation failed")}

	if err := backend.Initialize(Config{WindowTitle: "Test"}); err != nil {
		t.Fatalf("Backend initialization failed: %v", err)
	}
	if _, err := backend.CreateWindow("Test", 800, 600); err == nil {
		t.Fatal("Expected window creation to fail")
	}

	backend.createWindowErr = nil
	window, err := backend.CreateWindow("Test", 800, 600)
	if err != nil {
		t.Fatalf("Window creation failed: %v", err)
	}

	mockWindow := window.(*MockWindow)
	mockWindow.renderError = errors.New("render failed")

	err = window.RenderFrame(solidFrame(0, 0, 0))
	if err == nil {
		t.Fatal("Expected render to fail")
	}
	if err.Error() != "render failed" {
		t.Errorf("Expected error 'render failed', got '%s'", err.Error())
	}
}

// TestRenderingPipeline_VerifyRenderRequirements captures the end-to-end
// render contract: initialize, create, render, update.
func TestRenderingPipeline_VerifyRenderRequirements(t *testing.T) {
	backend := &MockEbitengineBackend{}

	if _, err := backend.CreateWindow("Test", 800, 600); err == nil {
		t.Fatal("Creating window without backend initialization should fail")
	}

	if err := backend.Initialize(Config{WindowTitle: "Test"}); err != nil {
		t.Fatalf("Backend initialization failed: %v", err)
	}

	window, err := backend.CreateWindow("Test", 800, 600)
	if err != nil {
		t.Fatalf("Window creation should succeed after backend initialization: %v", err)
	}
	mockWindow := window.(*MockWindow)

	if mockWindow.game.renderCalled {
		t.Error("renderCalled should be false before calling RenderFrame")
	}

	frame := make([]byte, FrameBytes)
	for i := range frame {
		frame[i] = byte(i)
	}
	if err := window.RenderFrame(frame); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	if !mockWindow.game.renderCalled {
		t.Error("renderCalled should be true after calling RenderFrame")
	}
	if !bytes.Equal(mockWindow.game.frameBuffer, frame) {
		t.Error("Frame buffer transfer did not preserve content")
	}

	updateCalled := false
	mockWindow.game.emulatorUpdate = func() error {
		updateCalled = true
		return nil
	}
	if err := mockWindow.game.Update(); err != nil {
		t.Fatalf("Game update failed: %v", err)
	}
	if !updateCalled {
		t.Error("Emulator update function should have been called during game update")
	}
}
