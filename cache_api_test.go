package gooey

import "testing"

type stubRasterBackend struct {
	calls int
}

func (b *stubRasterBackend) Rasterize(pathData []byte, viewbox [4]float32, deviceSize [2]uint32, scratch []byte, hasFill bool, stroke StrokeOptions) (RasterizedResult, error) {
	b.calls++
	w, h := deviceSize[0], deviceSize[1]
	for i := 0; i < int(w)*int(h)*4; i++ {
		scratch[i] = 0xFF
	}
	return RasterizedResult{Width: w, Height: h}, nil
}

func TestRasterCacheMissThenHit(t *testing.T) {
	backend := &stubRasterBackend{}
	c := NewRasterCache(backend, WithCacheCapacity(64), WithMaxRasterizationsPerFrame(4))
	key := NewRasterKey(1, 16, 16, 1, true, false, 0)

	slot1, err := c.GetOrRasterize(key, []byte("M0 0"), [4]float32{0, 0, 16, 16}, [2]float32{16, 16}, true, StrokeOptions{})
	if err != nil {
		t.Fatalf("GetOrRasterize() = %v", err)
	}
	if backend.calls != 1 {
		t.Fatalf("backend called %d times, want 1", backend.calls)
	}

	slot2, err := c.GetOrRasterize(key, nil, [4]float32{}, [2]float32{16, 16}, true, StrokeOptions{})
	if err != nil {
		t.Fatalf("GetOrRasterize() (hit) = %v", err)
	}
	if backend.calls != 1 {
		t.Fatalf("backend called %d times on a hit, want still 1", backend.calls)
	}
	if slot1 != slot2 {
		t.Errorf("hit returned a different slot: %+v vs %+v", slot1, slot2)
	}
}

func TestRasterCacheDeferredAfterBudget(t *testing.T) {
	backend := &stubRasterBackend{}
	c := NewRasterCache(backend, WithCacheCapacity(128), WithMaxRasterizationsPerFrame(4))

	for i := 0; i < 4; i++ {
		key := NewRasterKey(uint64(i), 8, 8, 1, true, false, 0)
		if _, err := c.GetOrRasterize(key, []byte("p"), [4]float32{}, [2]float32{8, 8}, true, StrokeOptions{}); err != nil {
			t.Fatalf("icon %d: GetOrRasterize() = %v", i, err)
		}
	}

	deferredCount := 0
	for i := 4; i < 10; i++ {
		key := NewRasterKey(uint64(i), 8, 8, 1, true, false, 0)
		if _, err := c.GetOrRasterize(key, []byte("p"), [4]float32{}, [2]float32{8, 8}, true, StrokeOptions{}); err == ErrRasterizationDeferred {
			deferredCount++
		}
	}
	if deferredCount != 6 {
		t.Fatalf("got %d deferred, want 6", deferredCount)
	}
	if !c.HasDeferredWork() {
		t.Error("HasDeferredWork() = false, want true")
	}

	c.ResetFrameBudget()
	if c.HasDeferredWork() {
		t.Error("HasDeferredWork() after reset = true, want false")
	}
}

func TestRasterCacheSetScaleFactorClears(t *testing.T) {
	backend := &stubRasterBackend{}
	c := NewRasterCache(backend)
	key := NewRasterKey(1, 16, 16, 1, true, false, 0)
	if _, err := c.GetOrRasterize(key, []byte("p"), [4]float32{}, [2]float32{16, 16}, true, StrokeOptions{}); err != nil {
		t.Fatalf("GetOrRasterize() = %v", err)
	}
	c.SetScaleFactor(2)
	backend.calls = 0
	if _, err := c.GetOrRasterize(key, []byte("p"), [4]float32{}, [2]float32{16, 16}, true, StrokeOptions{}); err != nil {
		t.Fatalf("GetOrRasterize() after scale change = %v", err)
	}
	if backend.calls != 1 {
		t.Errorf("backend called %d times after scale change, want 1 (cache should have been cleared)", backend.calls)
	}
}

func TestRasterCacheWithAtlasLocked(t *testing.T) {
	backend := &stubRasterBackend{}
	c := NewRasterCache(backend, WithCacheCapacity(32))
	var sawSize uint32
	c.WithAtlasLocked(func(atlas []byte, atlasSize uint32) {
		sawSize = atlasSize
		if len(atlas) != int(atlasSize)*int(atlasSize)*4 {
			t.Errorf("atlas buffer length mismatch: %d", len(atlas))
		}
	})
	if sawSize != 32 {
		t.Errorf("sawSize = %d, want 32", sawSize)
	}
}
