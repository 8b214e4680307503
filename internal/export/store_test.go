package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStoreSaveLoad(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "runs"))
	if err := st.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	r := makeResult1D(t, 5)
	id, err := st.Save("eit", r)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(id, "eit_") {
		t.Errorf("run ID %q, want eit_ prefix", id)
	}

	for _, name := range []string{metadataFile, dataFile} {
		if _, err := os.Stat(filepath.Join(st.base, id, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	info, err := st.Load(id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if info.Name != "eit" {
		t.Errorf("name %q, want eit", info.Name)
	}
	if info.Parameter != "probe_detuning" {
		t.Errorf("parameter %q, want probe_detuning", info.Parameter)
	}
	if info.Points != 5 {
		t.Errorf("points %d, want 5", info.Points)
	}
	if info.Shape != [2]int{5, 1} {
		t.Errorf("shape %v, want {5 1}", info.Shape)
	}

	loaded, err := st.LoadResult(id)
	if err != nil {
		t.Fatalf("LoadResult: %v", err)
	}
	for i := range r.ParamValues {
		if loaded.ParamValues[i] != r.ParamValues[i] {
			t.Errorf("value %d: %v, want %v", i, loaded.ParamValues[i], r.ParamValues[i])
		}
		if loaded.Chi3[i] != r.Chi3[i] {
			t.Errorf("chi3 %d: %v, want %v", i, loaded.Chi3[i], r.Chi3[i])
		}
		if loaded.Intensity[i] != r.Intensity[i] {
			t.Errorf("intensity %d: %v, want %v", i, loaded.Intensity[i], r.Intensity[i])
		}
	}
	for k, v := range r.Fixed {
		if loaded.Fixed[k] != v {
			t.Errorf("fixed %q: %v, want %v", k, loaded.Fixed[k], v)
		}
	}
}

func TestStoreLoadResult2D(t *testing.T) {
	st := NewStore(t.TempDir())

	r := makeResult2D(t, 3, 2)
	id, err := st.Save("grid", r)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := st.LoadResult(id)
	if err != nil {
		t.Fatalf("LoadResult: %v", err)
	}
	if !loaded.Is2D() {
		t.Fatal("loaded result is not 2D")
	}
	if loaded.Shape != r.Shape {
		t.Fatalf("shape %v, want %v", loaded.Shape, r.Shape)
	}
	for i := 0; i < r.Shape[0]; i++ {
		if loaded.ParamValues[i] != r.ParamValues[i] {
			t.Errorf("primary %d: %v, want %v", i, loaded.ParamValues[i], r.ParamValues[i])
		}
		for j := 0; j < r.Shape[1]; j++ {
			wantChi3, wantIntensity := r.At(i, j)
			gotChi3, gotIntensity := loaded.At(i, j)
			if gotChi3 != wantChi3 || gotIntensity != wantIntensity {
				t.Errorf("at (%d, %d): (%v, %v), want (%v, %v)",
					i, j, gotChi3, gotIntensity, wantChi3, wantIntensity)
			}
		}
	}
	for j := range r.SecondaryValues {
		if loaded.SecondaryValues[j] != r.SecondaryValues[j] {
			t.Errorf("secondary %d: %v, want %v", j, loaded.SecondaryValues[j], r.SecondaryValues[j])
		}
	}
}

func TestStoreList(t *testing.T) {
	st := NewStore(t.TempDir())

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("got %d runs, want 0", len(runs))
	}

	if _, err := st.Save("alpha", makeResult1D(t, 3)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := st.Save("beta", makeResult1D(t, 4)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
}

func TestStoreListMissingBase(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "missing"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs, want 0", len(runs))
	}
}

func TestStoreListSkipsMalformed(t *testing.T) {
	st := NewStore(t.TempDir())

	if _, err := st.Save("good", makeResult1D(t, 3)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	badDir := filepath.Join(st.base, "bad_0")
	if err := os.MkdirAll(badDir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(badDir, metadataFile), []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Name != "good" {
		t.Errorf("run name %q, want good", runs[0].Name)
	}
}

func TestStoreLoadMissingRun(t *testing.T) {
	st := NewStore(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("want error for missing run")
	}
	if _, err := st.LoadResult("nope"); err == nil {
		t.Error("want error for missing run data")
	}
}
