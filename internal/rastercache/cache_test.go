package rastercache

import "testing"

func TestGetOrRasterizeMissThenHit(t *testing.T) {
	backend := &stubBackend{}
	c := NewCache(backend, 64, 256, 32, 4)
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

func TestGetOrRasterizeDeferredAfterBudget(t *testing.T) {
	backend := &stubBackend{}
	c := NewCache(backend, 128, 256, 32, 4)

	for i := 0; i < 4; i++ {
		key := NewRasterKey(uint64(i), 8, 8, 1, true, false, 0)
		if _, err := c.GetOrRasterize(key, []byte("p"), [4]float32{}, [2]float32{8, 8}, true, StrokeOptions{}); err != nil {
			t.Fatalf("icon %d: GetOrRasterize() = %v", i, err)
		}
	}

	deferredCount := 0
	for i := 4; i < 10; i++ {
		key := NewRasterKey(uint64(i), 8, 8, 1, true, false, 0)
		_, err := c.GetOrRasterize(key, []byte("p"), [4]float32{}, [2]float32{8, 8}, true, StrokeOptions{})
		if err == ErrRasterizationDeferred {
			deferredCount++
		} else if err != nil {
			t.Fatalf("icon %d: unexpected error %v", i, err)
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
	for i := 4; i < 8; i++ {
		key := NewRasterKey(uint64(i), 8, 8, 1, true, false, 0)
		if _, err := c.GetOrRasterize(key, []byte("p"), [4]float32{}, [2]float32{8, 8}, true, StrokeOptions{}); err != nil {
			t.Fatalf("post-reset icon %d: GetOrRasterize() = %v", i, err)
		}
	}
}

func TestCacheGrowthUpdatesExistingSlotAtlasSize(t *testing.T) {
	backend := &stubBackend{}
	c := NewCache(backend, 16, 64, 16, 100)

	key1 := NewRasterKey(1, 12, 12, 1, true, false, 0)
	slot1, err := c.GetOrRasterize(key1, []byte("p"), [4]float32{}, [2]float32{12, 12}, true, StrokeOptions{})
	if err != nil {
		t.Fatalf("GetOrRasterize() = %v", err)
	}
	if slot1.AtlasSize != 16 {
		t.Fatalf("initial AtlasSize = %d, want 16", slot1.AtlasSize)
	}

	// A second icon that forces the atlas to grow past 16.
	key2 := NewRasterKey(2, 12, 12, 1, true, false, 0)
	if _, err := c.GetOrRasterize(key2, []byte("p"), [4]float32{}, [2]float32{12, 12}, true, StrokeOptions{}); err != nil {
		t.Fatalf("GetOrRasterize() = %v", err)
	}

	updated, ok := c.entries[key1]
	if !ok {
		t.Fatal("first slot missing after growth")
	}
	if updated.AtlasSize != c.atlasSize {
		t.Errorf("slot1.AtlasSize = %d, want %d (current atlas size)", updated.AtlasSize, c.atlasSize)
	}
}

func TestSetScaleFactorClearsCache(t *testing.T) {
	backend := &stubBackend{}
	c := NewCache(backend, 64, 256, 32, 4)
	key := NewRasterKey(1, 16, 16, 1, true, false, 0)
	if _, err := c.GetOrRasterize(key, []byte("p"), [4]float32{}, [2]float32{16, 16}, true, StrokeOptions{}); err != nil {
		t.Fatalf("GetOrRasterize() = %v", err)
	}
	if len(c.entries) != 1 {
		t.Fatalf("expected 1 entry before scale change, got %d", len(c.entries))
	}
	c.SetScaleFactor(2)
	if len(c.entries) != 0 {
		t.Errorf("expected cache to clear on scale change, got %d entries", len(c.entries))
	}
}

func TestWithAtlasLockedExposesBuffer(t *testing.T) {
	backend := &stubBackend{}
	c := NewCache(backend, 64, 256, 32, 4)
	var sawSize uint32
	c.WithAtlasLocked(func(atlas []byte, atlasSize uint32) {
		sawSize = atlasSize
		if len(atlas) != int(atlasSize)*int(atlasSize)*bytesPerPixel {
			t.Errorf("atlas buffer length mismatch: %d vs %d", len(atlas), int(atlasSize)*int(atlasSize)*bytesPerPixel)
		}
	})
	if sawSize != 64 {
		t.Errorf("sawSize = %d, want 64", sawSize)
	}
}

func TestRasterKeyStableForSameInputs(t *testing.T) {
	a := NewRasterKey(42, 16, 16, 2, true, true, 1.5)
	b := NewRasterKey(42, 16, 16, 2, true, true, 1.5)
	if a != b {
		t.Errorf("keys differ: %+v vs %+v", a, b)
	}
}

func TestRasterKeyDistinguishesNoStrokeFromZeroWidth(t *testing.T) {
	noStroke := NewRasterKey(1, 16, 16, 1, true, false, 0)
	zeroStroke := NewRasterKey(1, 16, 16, 1, true, true, 0)
	if noStroke == zeroStroke {
		t.Error("no-stroke and zero-width-stroke keys should differ")
	}
}
