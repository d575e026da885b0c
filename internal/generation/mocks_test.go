package generation

import (
	"context"
	"sync"

	"comic-backend/internal/ai"
)

// stubDecomposer 고정 장면 목록(또는 에러)을 돌려주는 ScriptDecomposer
type stubDecomposer struct {
	scenes []ai.ScenePanel
	err    error
}

func (d *stubDecomposer) Decompose(_ context.Context, _ string) ([]ai.ScenePanel, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.scenes, nil
}

// stubRenderer 호출 순서를 기록하고, 지정된 호출 번호(1부터)에서 실패하는 ImageRenderer
type stubRenderer struct {
	mu      sync.Mutex
	prompts []string
	failOn  map[int]error
	img     *ai.RenderedImage
}

func newStubRenderer() *stubRenderer {
	return &stubRenderer{
		failOn: make(map[int]error),
		img:    &ai.RenderedImage{Data: []byte("fake-png"), MimeType: "image/png"},
	}
}

func (r *stubRenderer) Render(_ context.Context, prompt string) (*ai.RenderedImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prompts = append(r.prompts, prompt)
	if err, ok := r.failOn[len(r.prompts)]; ok {
		return nil, err
	}
	return r.img, nil
}

func (r *stubRenderer) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.prompts...)
}
